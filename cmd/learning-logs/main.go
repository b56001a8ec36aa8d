package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"
	"gopkg.in/natefinch/lumberjack.v2"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	_ "modernc.org/sqlite"

	"github.com/learninglogs/learninglogs"
	"github.com/learninglogs/learninglogs/adapters/relica"
	"github.com/learninglogs/learninglogs/adapters/zlog"
	"github.com/learninglogs/learninglogs/cmd/learning-logs/internal/commands"
	"github.com/learninglogs/learninglogs/cmd/learning-logs/internal/config"
	"github.com/learninglogs/learninglogs/cmd/learning-logs/internal/printer"
	"github.com/learninglogs/learninglogs/retry"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	version = "dev"
	commit  = "HEAD"
	date    = "now"
)

func build() string {
	short := commit
	if len(commit) > 7 {
		short = commit[:7]
	}

	return fmt.Sprintf("%s (%s) %s", version, short, date)
}

func main() {
	if err := setupLogger("info", ""); err != nil {
		panic(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	p := printer.NewPlain(os.Stdout)
	if term.IsTerminal(int(os.Stdout.Fd())) {
		p = printer.New(os.Stdout)
	}
	ctx = printer.NewContext(ctx, p)

	flags := &commands.Flags{}

	app := &cli.Command{
		Name:      "learning-logs",
		Usage:     "Keep a log of the topics you are learning",
		UsageText: "learning-logs [global options] [command [command options]]",
		Description: `Learning Logs stores the topics you study in a relational database.

Run 'learning-logs' with no arguments to open the interactive menu.
Run 'learning-logs add <name>' or 'learning-logs ls' for one-shot use.`,
		Version: build(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal, panic)",
				Sources:     cli.EnvVars("LEARNING_LOGS_LOG_LEVEL"),
				Value:       "info",
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to a rotating log file (optional)",
				Sources:     cli.EnvVars("LEARNING_LOGS_LOG_FILE"),
				Destination: &flags.LogFile,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file",
				Sources:     cli.EnvVars("LEARNING_LOGS_CONFIG"),
				Value:       commands.DefaultConfigPath(),
				Destination: &flags.ConfigPath,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			if err := setupLogger(flags.LogLevel, flags.LogFile); err != nil {
				return ctx, err
			}

			cfg, err := config.Load(flags.ConfigPath)
			if err != nil {
				return ctx, fmt.Errorf("load config: %w", err)
			}
			flags.Config = cfg

			journal, err := newJournal(cfg)
			if err != nil {
				return ctx, err
			}
			flags.Journal = journal
			return ctx, nil
		},
	}

	menuCmd := commands.NewMenuCmd(flags)

	app = commands.NewAddCmd(flags).Register(app)
	app = commands.NewLsCmd(flags).Register(app)

	app.Action = func(ctx context.Context, c *cli.Command) error {
		if c.Args().Len() > 0 {
			return fmt.Errorf("unknown command %q. Run 'learning-logs --help' for usage", c.Args().First())
		}
		return menuCmd.Run(ctx, c)
	}

	exitCode := 0
	if err := app.Run(ctx, os.Args); err != nil {
		fmt.Println()
		printer.Ctx(ctx).FatalError(err)
		exitCode = 1
	}

	stop()
	os.Exit(exitCode)
}

// newJournal wires the connection provider, repository and journal.
func newJournal(cfg *config.Config) (*learninglogs.Journal, error) {
	logger := zlog.New(log.With().Str("component", "learning-logs").Logger())

	opts := []learninglogs.ProviderOption{
		learninglogs.WithProviderLogger(logger),
	}
	if cfg.ConnectRetries > 0 {
		opts = append(opts, learninglogs.WithConnectRetry(
			retry.DefaultStrategy().WithMaxAttempts(cfg.ConnectRetries+1),
		))
	}

	provider, err := learninglogs.NewConnectionProvider(cfg.Database, opts...)
	if err != nil {
		return nil, err
	}

	return learninglogs.NewJournal(
		learninglogs.WithTopicRepository(relica.NewTopicRepositoryWithTable(provider, cfg.Table)),
		learninglogs.WithJournalLogger(logger),
	)
}

func setupLogger(level string, logFile string) error {
	parsedLevel, err := zerolog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("failed to parse log level: %w", err)
	}

	console := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "2006-01-02 15:04:05"}
	var output io.Writer = console

	if logFile != "" {
		if err := os.MkdirAll(filepath.Dir(logFile), 0o755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}

		fileConsole := zerolog.ConsoleWriter{
			Out: &lumberjack.Logger{
				Filename:   logFile,
				MaxSize:    10,
				MaxBackups: 3,
				MaxAge:     28,
			},
			TimeFormat: "2006-01-02 15:04:05",
			NoColor:    true,
		}
		output = zerolog.MultiLevelWriter(console, fileConsole)
	}

	log.Logger = zerolog.New(output).With().Timestamp().Logger().Level(parsedLevel)

	return nil
}
