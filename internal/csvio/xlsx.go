// =============================================================================
// Shipping Refund Calculator - XLSX Workbook Export
// =============================================================================
//
// This module writes the spreadsheet rendition of the grid: a Purchases
// sheet with the cell highlights applied as fills, and a Statistics sheet
// with the summary and customer metric rows. The highlight colors mirror the
// on-screen grid, driven entirely by the cell classifier.
//
// =============================================================================

package csvio

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/ginjaninja78/shipping-refund-calculator/internal/classify"
	"github.com/ginjaninja78/shipping-refund-calculator/internal/config"
	"github.com/ginjaninja78/shipping-refund-calculator/internal/record"
	"github.com/ginjaninja78/shipping-refund-calculator/internal/stats"
)

// categoryFills maps highlight categories to cell fill colors. Normal cells
// get no fill.
var categoryFills = map[classify.Category]string{
	classify.GroupFirst:           "DDEBF7",
	classify.MissingShippingPaid:  "FFC7CE",
	classify.MissingShippingCost:  "FFEB9C",
	classify.RefundValid:          "C6EFCE",
	classify.RefundZeroOrNegative: "D9D9D9",
	classify.RefundMissingData:    "FFEB9C",
	classify.Totals:               "BFBFBF",
}

// WriteWorkbook writes the records and statistics to an XLSX workbook.
func WriteWorkbook(path string, records []record.Record, columns config.ColumnMapping, summary stats.Summary, customers stats.Customers) error {
	f := excelize.NewFile()
	defer f.Close()

	const purchasesSheet = "Purchases"
	const statsSheet = "Statistics"

	if err := f.SetSheetName("Sheet1", purchasesSheet); err != nil {
		return fmt.Errorf("failed to name purchases sheet: %w", err)
	}
	if _, err := f.NewSheet(statsSheet); err != nil {
		return fmt.Errorf("failed to create statistics sheet: %w", err)
	}

	if err := writePurchasesSheet(f, purchasesSheet, records, columns); err != nil {
		return err
	}
	if err := writeStatsSheet(f, statsSheet, summary, customers); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

// writePurchasesSheet fills the purchases sheet and applies the highlight
// fills from the cell classifier.
func writePurchasesSheet(f *excelize.File, sheet string, records []record.Record, columns config.ColumnMapping) error {
	for col, header := range columns.Headers() {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("failed to resolve header cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}
	}

	classifier := classify.New(records)

	// Styles are created once per category and reused across cells.
	styles := make(map[classify.Category]int)
	for category, color := range categoryFills {
		styleID, err := f.NewStyle(&excelize.Style{
			Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{color}},
		})
		if err != nil {
			return fmt.Errorf("failed to create style for %s: %w", category, err)
		}
		styles[category] = styleID
	}

	for i := range records {
		for col, role := range record.AllRoles {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return fmt.Errorf("failed to resolve cell: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, records[i].Field(role)); err != nil {
				return fmt.Errorf("failed to write row %d: %w", i+1, err)
			}
			if styleID, ok := styles[classifier.Classify(i, role)]; ok {
				if err := f.SetCellStyle(sheet, cell, cell, styleID); err != nil {
					return fmt.Errorf("failed to style row %d: %w", i+1, err)
				}
			}
		}
	}

	return nil
}

// writeStatsSheet fills the statistics sheet with the metric rows, summary
// first, then customers.
func writeStatsSheet(f *excelize.File, sheet string, summary stats.Summary, customers stats.Customers) error {
	rows := append([]stats.MetricRow{}, summary.Rows()...)
	rows = append(rows, customers.Rows()...)

	if err := f.SetSheetRow(sheet, "A1", &[]string{"Metric", "Value"}); err != nil {
		return fmt.Errorf("failed to write statistics header: %w", err)
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("failed to resolve cell: %w", err)
		}
		if err := f.SetSheetRow(sheet, cell, &[]string{row.Label, row.Value}); err != nil {
			return fmt.Errorf("failed to write metric %q: %w", row.Label, err)
		}
	}

	return nil
}
