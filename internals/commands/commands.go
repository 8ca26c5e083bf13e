// Package commands wraps cobra commands with rich error rendering.
package commands

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// Runner is the thing a Command actually executes
type Runner interface {
	RunE(cmd *cobra.Command, args []string) error
}

// Command is a cobra command whose runner errors are rendered in an
// error box before exiting
type Command struct {
	*cobra.Command
	runner Runner
}

// New wires a runner into the given cobra command
func New(cmd *cobra.Command, run Runner) *Command {
	built := &Command{cmd, run}
	built.Command.Run = func(cmd *cobra.Command, args []string) {
		if err := run.RunE(cmd, args); err != nil {
			var cliErr *CliError
			if errors.As(err, &cliErr) {
				fmt.Println(cliErr.RichError() + "\n")
			} else {
				fmt.Println(ErrorBox(err.Error(), ""))
			}
			os.Exit(1)
		}
	}
	return built
}
