// =============================================================================
// Shipping Refund Calculator - Refund Engine Module
// =============================================================================
//
// This module contains the core refund computation. Records are partitioned
// into recipient groups by exact string equality of the recipient field,
// preserving encounter order, and each group's shipping totals are derived:
//
//   totalPaid = sum of shipping-paid over the group (lenient parse)
//   totalCost = sum of shipping-cost over the group (lenient parse)
//   refund    = totalPaid - totalCost
//
// The first record of each group carries the group totals; every other
// record's derived fields are set to the empty string. That "first row
// carries the total" convention is how the grid displays one refund per
// recipient, and it makes recomputation idempotent: each run rebuilds both
// derived fields for every row from the non-derived inputs alone.
//
// Edge-case policy: a group where both sums are zero gets an empty refund,
// not "0.00". Absent stays absent.
//
// =============================================================================

package refund

import (
	"github.com/shopspring/decimal"

	"github.com/ginjaninja78/shipping-refund-calculator/internal/currency"
	"github.com/ginjaninja78/shipping-refund-calculator/internal/record"
)

// Group is one recipient's set of record indices, in encounter order within
// the sorted record slice.
type Group struct {
	// Recipient is the exact grouping key.
	Recipient string

	// Indexes are the positions of the group's records in the record slice.
	// The first entry is the group-first record.
	Indexes []int
}

// GroupRecords partitions records into recipient groups. Group order is the
// order of first occurrence; membership order is encounter order. The totals
// row, if present, is never part of a group.
func GroupRecords(records []record.Record) []Group {
	byRecipient := make(map[string]int)
	var groups []Group

	for i := range records {
		if records[i].IsTotals() {
			continue
		}
		key := records[i].Recipient
		gi, ok := byRecipient[key]
		if !ok {
			gi = len(groups)
			byRecipient[key] = gi
			groups = append(groups, Group{Recipient: key})
		}
		groups[gi].Indexes = append(groups[gi].Indexes, i)
	}

	return groups
}

// ComputeRefunds derives the group-level shipping total and refund for every
// recipient group, mutating the records in place. Re-running on already
// processed records reproduces the same result exactly.
func ComputeRefunds(records []record.Record) []record.Record {
	for _, g := range GroupRecords(records) {
		totalPaid := decimal.Zero
		totalCost := decimal.Zero
		for _, i := range g.Indexes {
			totalPaid = totalPaid.Add(currency.ParseOrZero(records[i].ShippingPaid))
			totalCost = totalCost.Add(currency.ParseOrZero(records[i].ShippingCost))
		}

		// Only the group-first record carries values; the rest are blanked.
		first := g.Indexes[0]
		if totalPaid.IsZero() {
			records[first].TotalShippingPaid = ""
		} else {
			records[first].TotalShippingPaid = currency.Format(totalPaid)
		}
		if totalPaid.IsZero() && totalCost.IsZero() {
			records[first].RefundAmount = ""
		} else {
			records[first].RefundAmount = currency.Format(totalPaid.Sub(totalCost))
		}

		for _, i := range g.Indexes[1:] {
			records[i].TotalShippingPaid = ""
			records[i].RefundAmount = ""
		}
	}

	return records
}
