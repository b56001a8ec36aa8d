package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/learninglogs/learninglogs/cmd/learning-logs/internal/printer"
	"github.com/learninglogs/learninglogs/cmd/learning-logs/internal/shell"
)

type LsCmd struct {
	flags *Flags
}

// NewLsCmd creates a new ls command
func NewLsCmd(flags *Flags) *LsCmd {
	return &LsCmd{flags: flags}
}

// Register adds the ls command to the application
func (cmd *LsCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:        "ls",
		Aliases:     []string{"list"},
		Usage:       "List all topics",
		UsageText:   "learning-logs ls",
		Description: "Prints every stored topic with its creation time, followed by the total.",
		Action:      cmd.run,
	})

	return app
}

func (cmd *LsCmd) run(ctx context.Context, _ *cli.Command) error {
	sh := shell.New(cmd.flags.Journal, os.Stdin, printer.Ctx(ctx))
	if err := sh.ListTopics(ctx); err != nil {
		return fmt.Errorf("list topics: %w", err)
	}
	return nil
}
