package commands

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/learninglogs/learninglogs/cmd/learning-logs/internal/printer"
	"github.com/learninglogs/learninglogs/cmd/learning-logs/internal/shell"
)

type AddCmd struct {
	flags *Flags
}

// NewAddCmd creates a new add command
func NewAddCmd(flags *Flags) *AddCmd {
	return &AddCmd{flags: flags}
}

// Register adds the add command to the application
func (cmd *AddCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "add",
		Usage:     "Add a new topic",
		UsageText: "learning-logs add <name...>",
		Description: `Stores a single topic without opening the menu.

All arguments are joined with spaces to form the topic name.

Example:
  learning-logs add Java Basics`,
		Action: cmd.run,
	})

	return app
}

func (cmd *AddCmd) run(ctx context.Context, c *cli.Command) error {
	name := strings.Join(c.Args().Slice(), " ")

	sh := shell.New(cmd.flags.Journal, os.Stdin, printer.Ctx(ctx))
	if err := sh.AddTopic(ctx, name); err != nil {
		return fmt.Errorf("add topic: %w", err)
	}
	return nil
}
