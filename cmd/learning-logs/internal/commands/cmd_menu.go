package commands

import (
	"context"
	"errors"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/learninglogs/learninglogs/cmd/learning-logs/internal/printer"
	"github.com/learninglogs/learninglogs/cmd/learning-logs/internal/shell"
)

type MenuCmd struct {
	flags *Flags
}

// NewMenuCmd creates the interactive menu, the default action
func NewMenuCmd(flags *Flags) *MenuCmd {
	return &MenuCmd{flags: flags}
}

// Run starts the menu loop on stdin. Interrupting it is a normal exit.
func (cmd *MenuCmd) Run(ctx context.Context, _ *cli.Command) error {
	sh := shell.New(cmd.flags.Journal, os.Stdin, printer.Ctx(ctx))

	err := sh.Run(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
