package commands

import (
	"github.com/spf13/cobra"

	"github.com/idelchi/gocaesar/internal/config"
)

// NewEncryptCommand creates a new cobra command for the encrypt subcommand.
func NewEncryptCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:     "encrypt [flags] <shift> <input> <output>",
		Aliases: []string{"enc"},
		Short:   "Shift letters forward",
		Args:    requiredArgs,
		PreRunE: preRun(cfg),
		RunE:    run(cfg),
	}
}
