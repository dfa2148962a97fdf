// =============================================================================
// Shipping Refund Calculator - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. All other commands
// ('process', 'stats', 'version') are attached to it.
//
// COBRA CLI STRUCTURE:
//   rootCmd (refunds)
//   ├── processCmd (refunds process)
//   ├── statsCmd   (refunds stats)
//   └── versionCmd (refunds version)
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/shipping-refund-calculator/internal/session"
)

// cfgFile holds the path to the configuration file. Overridden with the
// --config flag.
var cfgFile string

// verbose enables debug logging when set to true.
var verbose bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "refunds",
	Short: "Shipping Refund Calculator - Compute per-recipient shipping refunds from order exports",
	Long: `Shipping Refund Calculator imports order data from a CSV export, groups
orders by recipient, and computes the shipping refund owed to each recipient:
the shipping they paid across their orders minus what shipping actually cost.

The processed purchases can be exported back to CSV or to an XLSX workbook
whose cell highlights flag missing or invalid data the same way the grid
does. Summary and per-customer statistics are available as a separate export.

Example Usage:
  refunds process orders.csv                  # Compute refunds, export purchases CSV
  refunds process orders.csv --workbook       # Also export the highlighted XLSX workbook
  refunds stats orders.csv                    # Export summary and customer statistics
  refunds process orders.csv --config my.yaml # Use a custom column mapping`,

	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// sessionLogger picks the logger implementation for the --verbose setting.
func sessionLogger() session.Logger {
	if verbose {
		return &session.VerboseLogger{}
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"config.yaml",
		"Path to the configuration file (default is config.yaml)",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable verbose output for debugging",
	)
}
