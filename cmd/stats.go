// =============================================================================
// Shipping Refund Calculator - Stats Command
// =============================================================================
//
// This file defines the 'stats' command, which imports an order export, runs
// the refund pipeline, prints the summary and customer statistics, and
// exports them as a two-column Metric,Value CSV.
//
// COMMAND USAGE:
//   refunds stats <file.csv> [flags]
//
// =============================================================================

package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/shipping-refund-calculator/internal/config"
	"github.com/ginjaninja78/shipping-refund-calculator/internal/csvio"
	"github.com/ginjaninja78/shipping-refund-calculator/internal/session"
	"github.com/ginjaninja78/shipping-refund-calculator/internal/stats"
	"github.com/ginjaninja78/shipping-refund-calculator/pkg/utils"
)

// statsNoExport only prints the statistics, writing nothing.
var statsNoExport bool

// statsOutDir overrides the configured output directory.
var statsOutDir string

// statsCmd represents the 'stats' command.
var statsCmd = &cobra.Command{
	Use:   "stats <file.csv>",
	Short: "Compute order and customer statistics for an order export",
	Long: `The stats command reads an order-export CSV, runs the refund pipeline,
and reports order-level statistics (counts, refund rate, sums, averages,
medians, min/max) and customer-level statistics (distinct customers, repeat
rate, top customers by order count, shipping averages).

The metrics are printed to stdout and exported as a Metric,Value CSV.`,

	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStats(args[0])
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)

	statsCmd.Flags().BoolVar(
		&statsNoExport,
		"no-export",
		false,
		"Print the statistics without writing the export file",
	)

	statsCmd.Flags().StringVar(
		&statsOutDir,
		"out",
		"",
		"Output directory (overrides the configuration)",
	)
}

// runStats executes the statistics pipeline for one input file.
func runStats(inputPath string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if statsOutDir != "" {
		cfg.Output.Dir = statsOutDir
	}

	rows, err := csvio.ReadRows(inputPath, cfg.CSV)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	sess := session.New(cfg, sessionLogger())
	if _, err := sess.Process(rows.Records); err != nil {
		return err
	}

	metricRows := append([]stats.MetricRow{}, sess.Summary().Rows()...)
	metricRows = append(metricRows, sess.Customers().Rows()...)

	fmt.Println("=== Statistics ===")
	for _, row := range metricRows {
		fmt.Printf("%-32s %s\n", row.Label, row.Value)
	}

	if statsNoExport {
		return nil
	}

	if err := utils.EnsureDir(cfg.Output.Dir); err != nil {
		return err
	}

	statsPath := filepath.Join(cfg.Output.Dir,
		utils.GenerateOutputFileName(cfg.Output.StatsFormat, inputPath))
	if err := csvio.WriteStats(statsPath, metricRows); err != nil {
		return fmt.Errorf("failed to export statistics: %w", err)
	}
	fmt.Printf("\nStatistics exported to %s\n", statsPath)

	return nil
}
