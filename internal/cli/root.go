// Package cli provides the command-line interface for timeoutfinder.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/srcds-tools/timeoutfinder/internal/cli/commands"
)

// Execute runs the root command and returns the exit code.
func Execute() int {
	rootCmd := NewRootCommand()

	if err := rootCmd.Execute(); err != nil {
		// Print error to stderr (SilenceErrors prevents Cobra from doing this)
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2 // Configuration or runtime error
	}
	return commands.ExitCode
}

// NewRootCommand creates the root cobra command.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "timeoutfinder",
		Short: "Detect short-playtime timeouts in game server logs",
		Long: `timeoutfinder scans srcds/LGSM console logs for short-playtime timeouts:
players who entered the game and were disconnected by a timeout within a
few minutes of connecting. A high rate of these usually points at a
connection or server problem rather than normal play.

For each calendar day it reports the short-timeout count relative to total
connections and writes a structured JSON record per day.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(commands.NewScanCommand())
	rootCmd.AddCommand(commands.NewValidateCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	return rootCmd
}
