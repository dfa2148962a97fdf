// =============================================================================
// Shipping Refund Calculator - CSV Writers
// =============================================================================
//
// This module serializes the record collection and the statistics back to
// CSV. Values are written verbatim: numeric fields keep the decimal-formatted
// strings already computed by the engine, so export/re-import is a lossless
// text round trip for the non-derived fields.
//
// =============================================================================

package csvio

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/ginjaninja78/shipping-refund-calculator/internal/config"
	"github.com/ginjaninja78/shipping-refund-calculator/internal/record"
	"github.com/ginjaninja78/shipping-refund-calculator/internal/stats"
)

// WritePurchases writes the record collection to a CSV file: the mapped
// header names, then one line per record (including the totals row when
// present) in display column order.
func WritePurchases(path string, records []record.Record, columns config.ColumnMapping) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	w := csv.NewWriter(file)

	if err := w.Write(columns.Headers()); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	line := make([]string, len(record.AllRoles))
	for i := range records {
		for j, role := range record.AllRoles {
			line[j] = records[i].Field(role)
		}
		if err := w.Write(line); err != nil {
			return fmt.Errorf("failed to write record %d: %w", i+1, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}
	return nil
}

// WriteStats writes metric rows to a two-column Metric,Value CSV file.
// Summary and customer rows are typically concatenated into one export.
func WriteStats(path string, rows []stats.MetricRow) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	w := csv.NewWriter(file)

	if err := w.Write([]string{"Metric", "Value"}); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, row := range rows {
		if err := w.Write([]string{row.Label, row.Value}); err != nil {
			return fmt.Errorf("failed to write metric %q: %w", row.Label, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}
	return nil
}
