// Hexforge is the binary image inspection and patching utility of the
// HexForge flashing toolkit.
//
// It loads a firmware, boot or archive image into memory, identifies
// known structures, computes checksums, searches and patches byte
// patterns with undo-safe semantics, and exports hex dumps and analysis
// reports.
//
// Usage:
//
//	hexforge [command] [flags]
//
// See 'hexforge --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/draal/hexforge/internal/logging"
	"github.com/draal/hexforge/internal/version"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "hexforge",
	Short: "HexForge Binary Image Utility",
	Long: `A standalone utility for inspecting and patching binary images.

Loads firmware images, boot partitions and archives into memory for
structure detection, checksumming, string extraction, byte-pattern
search and undo-safe patching, and exports hex dumps and analysis
reports for the rest of the flashing workflow.`,
	Version: version.Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Silent unless HEXFORGE_LOG_LEVEL is set
		return logging.InitializeFromEnv()
	},
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("hexforge %s (commit: %s)\n", version.Version, version.Commit)
	},
}
