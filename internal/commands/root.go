package commands

import (
	"github.com/spf13/cobra"

	"github.com/idelchi/gogen/pkg/cobraext"
	"github.com/idelchi/gocaesar/internal/config"
	"github.com/idelchi/gocaesar/internal/failure"
)

// NewRootCommand creates the root command with common configuration.
// It sets up environment variable binding and flag handling.
// Without a subcommand, the root command encrypts.
func NewRootCommand(cfg *config.Config, version string) *cobra.Command {
	root := cobraext.NewDefaultRootCommand(version)

	root.Use = "gocaesar [flags] [command] <shift> <input> <output>"
	root.Short = "Caesar cipher for files and streams"
	root.Long = `Shift the ASCII letters of a file or stream by a fixed amount.

Uppercase and lowercase letters are rotated within their own alphabet.
Every other byte is copied unchanged, so the output is always as long as the input.

  <shift>   integer between 1 and 25
  <input>   file to read, or "-" for standard input
  <output>  file to write, or "-" for standard output

Running without a command encrypts. "decrypt" reverses an encryption
performed with the same shift.

Exit codes:
  0  success
  1  wrong number of arguments
  2  input or output could not be opened
  3  shift is not a number between 0 and 255
  4  shift is not between 1 and 25
  5  invalid flags`
	root.Example = `  gocaesar 23 plain.txt secret.txt
  gocaesar decrypt 23 secret.txt -
  echo "Hello" | gocaesar 3 - -`

	// Flag errors are only routed through FlagErrorFunc when commands are found without traversal.
	root.TraverseChildren = false

	root.Args = requiredArgs
	root.PreRunE = preRun(cfg)
	root.RunE = run(cfg)

	root.PersistentFlags().BoolP("show", "s", false, "Show the configuration and exit")
	root.PersistentFlags().BoolP("quiet", "q", false, "Suppress the completion notice")
	root.PersistentFlags().BoolP("verbose", "v", false, "Show debug diagnostics")

	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return failure.Wrap(err, failure.InvalidFlags, "invalid flags")
	})

	root.SetHelpCommand(NewHelpCommand())
	root.AddCommand(NewEncryptCommand(cfg), NewDecryptCommand(cfg))

	return root
}
