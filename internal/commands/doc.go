// Package commands provides the command-line interface for the gocaesar tool.
//
// It implements commands for:
//   - encryption (also the default when no command is named)
//   - decryption
//
// The package handles command-line parsing, flag binding through viper and
// configuration validation. Every user mistake is returned as a
// failure.Error so that the caller can map it to an exit code.
package commands

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/idelchi/gogen/pkg/cobraext"
	"github.com/idelchi/gocaesar/internal/config"
	"github.com/idelchi/gocaesar/internal/failure"
	"github.com/idelchi/gocaesar/internal/logger"
	"github.com/idelchi/gocaesar/internal/logic"
	"github.com/idelchi/gocaesar/internal/stream"
)

// requiredArgs validates the positional arguments <shift> <input> <output>.
func requiredArgs(_ *cobra.Command, args []string) error {
	const want = 3

	if len(args) != want {
		return failure.New(failure.WrongNumberOfArguments,
			"there are %d required arguments: <shift> <input> <output>. Got %q of length %d instead",
			want, args, len(args))
	}

	return nil
}

// preRun returns a PreRunE handler that assigns the positional arguments,
// then unmarshals the bound flags into cfg and validates it.
func preRun(cfg *config.Config) func(*cobra.Command, []string) error {
	return func(_ *cobra.Command, args []string) error {
		cfg.Shift, cfg.Input, cfg.Output = args[0], args[1], args[2]

		if err := cobraext.Validate(cfg, cfg); err != nil {
			if errors.Is(err, config.ErrUsage) {
				return failure.Wrap(err, failure.InvalidFlags, "invalid flags")
			}

			return err
		}

		return nil
	}
}

// run returns a RunE handler that executes the transform on the command's standard streams.
func run(cfg *config.Config) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		log := logger.New(cmd.ErrOrStderr(), cfg.Verbose, cfg.Quiet)
		opener := stream.NewOpener(cmd.InOrStdin(), cmd.OutOrStdout())

		_, err := logic.Run(cfg, opener, log)

		return err
	}
}

// Positional inserts a "--" terminator before the first single-dash token that
// is not a cluster of known shorthand flags, so that shifts such as "-1" or
// "-5x" reach the shift parser instead of being rejected as unknown flags.
// Long flags and "-" are left alone. args is returned unchanged if it already
// contains a terminator before such a token.
func Positional(root *cobra.Command, args []string) []string {
	shorthands := knownShorthands(root)
	out := make([]string, 0, len(args)+1)

	for i, arg := range args {
		if arg == "--" {
			return append(out, args[i:]...)
		}

		if isShorthandToken(arg) && !allKnown(arg[1:], shorthands) {
			out = append(out, "--")

			return append(out, args[i:]...)
		}

		out = append(out, arg)
	}

	return out
}

func isShorthandToken(arg string) bool {
	return len(arg) > 1 && arg[0] == '-' && arg[1] != '-'
}

// allKnown reports whether every character of a shorthand cluster names a known flag.
// A "=value" suffix ends the cluster.
func allKnown(cluster string, shorthands map[byte]struct{}) bool {
	cluster, _, _ = strings.Cut(cluster, "=")

	for i := range len(cluster) {
		if _, ok := shorthands[cluster[i]]; !ok {
			return false
		}
	}

	return cluster != ""
}

// knownShorthands collects the shorthand flags of root and its direct subcommands,
// along with the "-h" help flag that cobra adds during execution.
func knownShorthands(root *cobra.Command) map[byte]struct{} {
	shorthands := map[byte]struct{}{'h': {}}

	collect := func(flags *pflag.FlagSet) {
		flags.VisitAll(func(flag *pflag.Flag) {
			if flag.Shorthand != "" {
				shorthands[flag.Shorthand[0]] = struct{}{}
			}
		})
	}

	collect(root.PersistentFlags())
	collect(root.Flags())

	for _, cmd := range root.Commands() {
		collect(cmd.Flags())
	}

	return shorthands
}
