package commands

import (
	"github.com/spf13/cobra"

	"github.com/idelchi/gocaesar/internal/cipher"
)

// NewHelpCommand creates the help command.
// It accepts no argument or the name of one command. Any other arguments are
// treated as a default invocation whose shift is "help", and fail the same way.
func NewHelpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "help [command]",
		Short: "Help about any command",
		Args:  helpArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			target := cmd.Root()

			if len(args) == 1 {
				target = subcommand(cmd.Root(), args[0])
			}

			return target.Help()
		},
	}
}

func helpArgs(cmd *cobra.Command, args []string) error {
	switch {
	case len(args) == 0:
		return nil
	case len(args) == 1 && subcommand(cmd.Root(), args[0]) != nil:
		return nil
	}

	positional := append([]string{cmd.Name()}, args...)

	if err := requiredArgs(cmd, positional); err != nil {
		return err
	}

	_, err := cipher.ParseShift(positional[0])

	return err
}

// subcommand returns the direct child of root named or aliased name, or nil.
func subcommand(root *cobra.Command, name string) *cobra.Command {
	for _, cmd := range root.Commands() {
		if cmd.Name() == name || cmd.HasAlias(name) {
			return cmd
		}
	}

	return nil
}
