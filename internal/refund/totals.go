// =============================================================================
// Shipping Refund Calculator - Totals Aggregator
// =============================================================================
//
// AppendTotals maintains the synthetic grand-totals row at the end of the
// record collection. Recomputation is idempotent by remove-then-add: any
// existing totals row is dropped before the new one is summed and appended,
// so the collection never holds more than one.
//
// =============================================================================

package refund

import (
	"github.com/shopspring/decimal"

	"github.com/ginjaninja78/shipping-refund-calculator/internal/currency"
	"github.com/ginjaninja78/shipping-refund-calculator/internal/record"
)

// totalRoles are the numeric columns summed into the totals row.
var totalRoles = []record.Role{
	record.RoleQuantity,
	record.RoleOrderTotal,
	record.RoleShippingPaid,
	record.RoleTotalShippingPaid,
	record.RoleShippingCost,
	record.RoleRefundAmount,
}

// AppendTotals removes any existing totals row, sums every numeric column
// across the remaining records with the lenient parse, and appends a fresh
// totals row. Calling it twice in a row produces the same single row.
func AppendTotals(records []record.Record) []record.Record {
	kept := records[:0]
	for i := range records {
		if records[i].IsTotals() {
			continue
		}
		kept = append(kept, records[i])
	}

	totals := record.Record{OrderID: record.TotalsSentinel}
	for _, role := range totalRoles {
		sum := decimal.Zero
		for i := range kept {
			sum = sum.Add(currency.ParseOrZero(kept[i].Field(role)))
		}
		totals.SetField(role, currency.Format(sum))
	}

	return append(kept, totals)
}
