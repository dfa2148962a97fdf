// =============================================================================
// Shipping Refund Calculator - Cell Classifier Module
// =============================================================================
//
// This module decides the highlight category for every displayed cell. The
// presentation layer (grid or spreadsheet export) maps categories to colors;
// the classifier itself knows nothing about rendering.
//
// Rules are evaluated in priority order and the first applicable rule wins:
//
//   1. Totals row                       -> Totals (whole row)
//   2. Shipping-paid column, value
//      empty/unparseable/zero          -> MissingShippingPaid (any row)
//   3. Group-first row, shipping-cost
//      column, value empty/unparseable -> MissingShippingCost
//   4. Group-first row, refund column  -> RefundZeroOrNegative /
//                                         RefundMissingData / RefundValid
//   5. Group-first row, other columns  -> GroupFirst (base highlight)
//   6. Otherwise                       -> Normal
//
// =============================================================================

package classify

import (
	"github.com/ginjaninja78/shipping-refund-calculator/internal/currency"
	"github.com/ginjaninja78/shipping-refund-calculator/internal/record"
	"github.com/ginjaninja78/shipping-refund-calculator/internal/refund"
)

// =============================================================================
// CATEGORIES
// =============================================================================

// Category is the highlight category of one cell.
type Category int

const (
	// Normal is an unhighlighted cell.
	Normal Category = iota

	// GroupFirst is the base highlight for every cell of a group-first row
	// not claimed by a more specific rule.
	GroupFirst

	// MissingShippingPaid marks a shipping-paid cell with no usable value.
	MissingShippingPaid

	// MissingShippingCost marks a group-first shipping-cost cell with no
	// usable value.
	MissingShippingCost

	// RefundValid marks a positive refund with valid shipping inputs.
	RefundValid

	// RefundZeroOrNegative marks a refund of zero or less.
	RefundZeroOrNegative

	// RefundMissingData marks a positive refund computed from incomplete
	// shipping inputs.
	RefundMissingData

	// Totals marks every cell of the synthetic totals row.
	Totals
)

// categoryNames maps categories to display names.
var categoryNames = map[Category]string{
	Normal:               "normal",
	GroupFirst:           "group_first",
	MissingShippingPaid:  "missing_shipping_paid",
	MissingShippingCost:  "missing_shipping_cost",
	RefundValid:          "refund_valid",
	RefundZeroOrNegative: "refund_zero_or_negative",
	RefundMissingData:    "refund_missing_data",
	Totals:               "totals",
}

// String returns the display name of the category.
func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return "unknown"
}

// =============================================================================
// CLASSIFIER
// =============================================================================

// Classifier answers highlight categories for a fixed record slice. Group
// membership is resolved once at construction; classification itself is a
// pure lookup plus value checks.
type Classifier struct {
	records    []record.Record
	groupFirst map[int]bool
}

// New builds a Classifier over the given records.
func New(records []record.Record) *Classifier {
	firsts := make(map[int]bool)
	for _, g := range refund.GroupRecords(records) {
		firsts[g.Indexes[0]] = true
	}
	return &Classifier{records: records, groupFirst: firsts}
}

// Classify returns the highlight category for the cell at (row index, role).
func (c *Classifier) Classify(index int, role record.Role) Category {
	rec := &c.records[index]

	if rec.IsTotals() {
		return Totals
	}

	if role == record.RoleShippingPaid && shippingPaidInvalid(rec) {
		return MissingShippingPaid
	}

	if !c.groupFirst[index] {
		return Normal
	}

	switch role {
	case record.RoleShippingCost:
		if shippingCostInvalid(rec) {
			return MissingShippingCost
		}
	case record.RoleRefundAmount:
		if !currency.ParseOrZero(rec.RefundAmount).IsPositive() {
			return RefundZeroOrNegative
		}
		if shippingPaidInvalid(rec) || shippingCostInvalid(rec) {
			return RefundMissingData
		}
		return RefundValid
	}

	return GroupFirst
}

// shippingPaidInvalid reports an empty, unparseable, or zero shipping-paid
// value.
func shippingPaidInvalid(rec *record.Record) bool {
	d, ok := currency.TryParse(rec.ShippingPaid)
	return !ok || d.IsZero()
}

// shippingCostInvalid reports an empty or unparseable shipping-cost value.
// Unlike shipping paid, an explicit zero cost is valid (free shipping).
func shippingCostInvalid(rec *record.Record) bool {
	_, ok := currency.TryParse(rec.ShippingCost)
	return !ok
}
