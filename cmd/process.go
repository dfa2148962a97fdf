// =============================================================================
// Shipping Refund Calculator - Process Command
// =============================================================================
//
// This file defines the 'process' command, the main command for computing
// refunds. It orchestrates the full pipeline for one order-export file.
//
// COMMAND USAGE:
//   refunds process <file.csv> [flags]
//
// FLAGS:
//   --dry-run    : Run the pipeline and report the summary without writing
//                  any output files
//   --workbook   : Also export the highlighted XLSX workbook
//   --out        : Override the output directory from the configuration
//
// PROCESSING PIPELINE:
//   1. Load configuration (column mapping, CSV settings, output settings)
//   2. Read the input CSV into header-addressed rows
//   3. Ingest rows into canonical records (drop blanks, sort)
//   4. Compute per-recipient shipping totals and refunds
//   5. Append the grand-totals row
//   6. Export the processed purchases (CSV, optionally XLSX)
//   7. Print the run summary
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
	"github.com/ginjaninja78/shipping-refund-calculator/pkg/utils"
)

// dryRun runs the pipeline without writing output files.
var dryRun bool

// workbook additionally exports the XLSX workbook.
var workbook bool

// outDir overrides the configured output directory.
var outDir string

// processCmd represents the 'process' command.
var processCmd = &cobra.Command{
	Use:   "process <file.csv>",
	Short: "Compute shipping refunds for an order export",
	Long: `The process command reads an order-export CSV, groups the orders by
recipient, computes each recipient's shipping refund (shipping paid minus
shipping cost across their orders), appends a grand-totals row, and exports
the processed purchases.

Rows with no recipient and fully blank rows are dropped; a malformed money
value in one row never aborts the run, it is simply treated as absent and
flagged in the workbook highlights.`,

	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runProcess(args[0])
	},
}

func init() {
	rootCmd.AddCommand(processCmd)

	processCmd.Flags().BoolVar(
		&dryRun,
		"dry-run",
		false,
		"Run the pipeline without writing output files",
	)

	processCmd.Flags().BoolVar(
		&workbook,
		"workbook",
		false,
		"Also export the highlighted XLSX workbook",
	)

	processCmd.Flags().StringVar(
		&outDir,
		"out",
		"",
		"Output directory (overrides the configuration)",
	)
}

// runProcess executes the refund pipeline for one input file.
func runProcess(inputPath string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if outDir != "" {
		cfg.Output.Dir = outDir
	}

	fmt.Println("=== Shipping Refund Calculator ===")
	fmt.Printf("Processing %s\n", inputPath)

	rows, err := csvio.ReadRows(inputPath, cfg.CSV)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	sess := session.New(cfg, sessionLogger())
	result, err := sess.Process(rows.Records)
	if err != nil {
		return err
	}

	if dryRun {
		printRunSummary(result, "(dry run, nothing written)")
		return nil
	}

	if err := utils.EnsureDir(cfg.Output.Dir); err != nil {
		return err
	}

	purchasesPath := filepath.Join(cfg.Output.Dir,
		utils.GenerateOutputFileName(cfg.Output.PurchasesFormat, inputPath))
	if err := csvio.WritePurchases(purchasesPath, sess.Records(), cfg.Columns); err != nil {
		return fmt.Errorf("failed to export purchases: %w", err)
	}
	fmt.Printf("Purchases exported to %s\n", purchasesPath)

	if workbook {
		workbookPath := filepath.Join(cfg.Output.Dir,
			utils.GenerateOutputFileName(cfg.Output.WorkbookFormat, inputPath))
		if err := csvio.WriteWorkbook(workbookPath, sess.Records(), cfg.Columns,
			sess.Summary(), sess.Customers()); err != nil {
			return fmt.Errorf("failed to export workbook: %w", err)
		}
		fmt.Printf("Workbook exported to %s\n", workbookPath)
	}

	printRunSummary(result, "")
	return nil
}

// printRunSummary prints the run statistics.
func printRunSummary(result session.Stats, note string) {
	fmt.Println("\n=== Processing Complete ===")
	if note != "" {
		fmt.Println(note)
	}
	fmt.Printf("Rows read:       %d\n", result.RowsRead)
	fmt.Printf("Rows dropped:    %d\n", result.RowsDropped)
	fmt.Printf("Recipients:      %d\n", result.Groups)
	fmt.Printf("Refunded:        %d\n", result.RefundedGroups)
	fmt.Printf("Time elapsed:    %s\n", result.ProcessingTime)
}
