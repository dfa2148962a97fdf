// =============================================================================
// Shipping Refund Calculator - Record Ingestor Module
// =============================================================================
//
// This module converts raw imported rows (header-name -> cell-text maps, as
// produced by the CSV reader) into the canonical record set the engine works
// on. Ingestion is strict about structural prerequisites and lenient about
// row content:
//
//   - No rows at all, or no recipient column mapping, fails the import with
//     a typed error.
//   - A row that is entirely blank, or has no recipient, is silently dropped;
//     one bad row never aborts the whole import.
//
// The surviving records are sorted by (recipient ascending, order id
// ascending) with lexical comparison on the raw order-id text. The sort is
// stable, so rows that tie keep their original input order.
//
// =============================================================================

package ingest

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ginjaninja78/shipping-refund-calculator/internal/config"
	"github.com/ginjaninja78/shipping-refund-calculator/internal/record"
)

// =============================================================================
// ERRORS
// =============================================================================

// IngestionError reports an import that could not start: the input had no
// usable rows.
type IngestionError struct {
	// Reason describes what was missing.
	Reason string
}

// Error implements the error interface.
func (e *IngestionError) Error() string {
	return fmt.Sprintf("ingestion failed: %s", e.Reason)
}

// MissingColumnError reports a required role with no header mapping.
type MissingColumnError struct {
	// Role is the unmapped role.
	Role record.Role
}

// Error implements the error interface.
func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("required role %q is not mapped to any column", e.Role)
}

// =============================================================================
// INGESTOR
// =============================================================================

// Ingestor builds canonical records from raw rows using a column mapping
// resolved once at construction time.
type Ingestor struct {
	columns config.ColumnMapping
}

// New creates an Ingestor for the given column mapping.
func New(columns config.ColumnMapping) *Ingestor {
	return &Ingestor{columns: columns}
}

// Ingest converts raw rows into the sorted canonical record set.
//
// Each raw row maps header names to already-decoded cell text. Fields whose
// header is absent from a row default to "", so the four derived/optional
// roles always exist on every record even when the source file never had
// those columns.
func (in *Ingestor) Ingest(rows []map[string]string) ([]record.Record, error) {
	if len(rows) == 0 {
		return nil, &IngestionError{Reason: "input contains no rows"}
	}
	if in.columns.Recipient == "" {
		return nil, &MissingColumnError{Role: record.RoleRecipient}
	}

	// Build one record per raw row, then drop the unusable ones. The two
	// drop conditions are checked independently: a row with data but no
	// recipient is still dropped.
	records := make([]record.Record, 0, len(rows))
	for _, row := range rows {
		rec := record.Record{}
		for _, role := range record.AllRoles {
			header := in.columns.Header(role)
			if header == "" {
				continue
			}
			rec.SetField(role, row[header])
		}

		if rec.IsBlank() {
			continue
		}
		if strings.TrimSpace(rec.Recipient) == "" {
			continue
		}

		records = append(records, rec)
	}

	// Stable sort keeps original input order for full ties.
	sort.SliceStable(records, func(i, j int) bool {
		if records[i].Recipient != records[j].Recipient {
			return records[i].Recipient < records[j].Recipient
		}
		return records[i].OrderID < records[j].OrderID
	})

	return records, nil
}
