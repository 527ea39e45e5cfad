package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/blockberries/stateberry/logging"
)

var (
	// Version information (set at build time)
	Version   = "dev"
	GitCommit = "unknown"
	BuildTime = "unknown"

	// Global flags
	verbose bool
	logJSON bool
)

var rootCmd = &cobra.Command{
	Use:   "stateberry",
	Short: "Global-state key and value codec tool",
	Long: `Stateberry is the addressing and canonical-encoding layer for
blockchain global state.

This tool encodes and decodes state keys, storable values and access
rights in the canonical on-chain binary format, and evaluates the
access-rights lattice from the command line.`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildTime),
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&logJSON, "json", false, "log in JSON format")

	// Add subcommands
	rootCmd.AddCommand(decodeCmd)
	rootCmd.AddCommand(encodeCmd)
	rootCmd.AddCommand(rightsCmd)
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("Stateberry %s\n", Version)
		fmt.Printf("  Git commit: %s\n", GitCommit)
		fmt.Printf("  Built:      %s\n", BuildTime)
	},
}

// newLogger builds the CLI logger from the global flags.
func newLogger() *logging.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	if logJSON {
		return logging.NewJSONLogger(os.Stderr, level)
	}
	return logging.NewTextLogger(os.Stderr, level)
}
