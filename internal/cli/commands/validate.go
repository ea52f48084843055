package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/srcds-tools/timeoutfinder/pkg/config"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <config-file>",
		Short: "Validate a configuration file",
		Long: `Check a configuration file for errors without scanning anything.

Exit codes:
  0 - Configuration is valid
  2 - Configuration is invalid`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			cfg, err := config.Load(ctx, args[0])
			if err != nil {
				return err
			}

			fmt.Printf("%s: valid (threshold %g min, chunk size %d)\n",
				args[0], cfg.ThresholdMinutes, cfg.ChunkSize)
			return nil
		},
	}
}
