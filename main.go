// Command gocaesar shifts the ASCII letters of a file or stream by a fixed amount.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/idelchi/gogen/pkg/cobraext"

	"github.com/idelchi/gocaesar/internal/commands"
	"github.com/idelchi/gocaesar/internal/config"
	"github.com/idelchi/gocaesar/internal/failure"
	"github.com/idelchi/gocaesar/internal/logger"
)

// Global variable for CI stamping.
var version = "unknown - unofficial & generated by unknown"

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes the command line and returns the process exit code.
// Showing the configuration with --show exits successfully.
// User mistakes print their message and exit with their kind's code.
// Anything else is logged as an internal error with failure.ExitInternal.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg := &config.Config{}

	root := commands.NewRootCommand(cfg, version)
	root.SetArgs(commands.Positional(root, args))
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()
	if err == nil || errors.Is(err, cobraext.ErrExitGracefully) {
		return 0
	}

	if fail, ok := failure.As(err); ok {
		fmt.Fprintln(stderr, fail.Error()) //nolint:errcheck

		return fail.Kind.ExitCode()
	}

	log := logger.New(stderr, true, false)
	log.Error().Err(err).Msg("internal error")

	return failure.ExitInternal
}
