package commands

import (
	"github.com/spf13/cobra"

	"github.com/idelchi/gocaesar/internal/config"
)

// NewDecryptCommand creates a new cobra command for the decrypt subcommand.
func NewDecryptCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:     "decrypt [flags] <shift> <input> <output>",
		Aliases: []string{"dec"},
		Short:   "Shift letters back",
		Args:    requiredArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			cfg.Decrypt = true

			return preRun(cfg)(cmd, args)
		},
		RunE: run(cfg),
	}
}
