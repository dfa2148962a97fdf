// =============================================================================
// Shipping Refund Calculator - Statistics Engine Module
// =============================================================================
//
// This module computes the two statistics views shown in the stats tabs:
//
//   Summary   - order-level metrics: counts, refund rate, and
//               sum/average/median/min/max over the money columns.
//   Customers - recipient-level metrics: distinct customers, purchase-count
//               distribution, repeat rate, top-N by order count, and
//               shipping averages.
//
// Both views are computed fresh from the current records on every call and
// are never persisted. The synthetic totals row is always excluded.
//
// Population rules: a metric's population holds only the values that match
// a plain decimal-number pattern after stripping '$' and ','. A present but
// malformed value is excluded (absent, not zero), so garbage in one cell
// shifts no average. The median is the lower median: the ascending-sorted
// population's element at index (n-1)/2.
//
// =============================================================================

package stats

import (
	"sort"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/ginjaninja78/shipping-refund-calculator/internal/currency"
	"github.com/ginjaninja78/shipping-refund-calculator/internal/record"
	"github.com/ginjaninja78/shipping-refund-calculator/internal/refund"
)

// DefaultTopCustomers is the top-N size used when the configuration does not
// override it.
const DefaultTopCustomers = 5

// =============================================================================
// RESULT TYPES
// =============================================================================

// Summary holds the order-level statistics.
type Summary struct {
	OrderCount    int
	RefundedCount int

	// RefundRate is refunded orders per hundred orders, rounded to two
	// decimals. Zero when there are no orders.
	RefundRate decimal.Decimal

	OrderTotalSum    decimal.Decimal
	OrderTotalAvg    decimal.Decimal
	OrderTotalMedian decimal.Decimal
	OrderTotalMin    decimal.Decimal
	OrderTotalMax    decimal.Decimal

	ShippingCostSum    decimal.Decimal
	ShippingCostAvg    decimal.Decimal
	ShippingCostMedian decimal.Decimal
	ShippingCostMin    decimal.Decimal
	ShippingCostMax    decimal.Decimal

	ShippingPaidSum decimal.Decimal
	RefundSum       decimal.Decimal
}

// CustomerCount is one (recipient, order count) pair.
type CustomerCount struct {
	Recipient string
	Orders    int
}

// Customers holds the recipient-level statistics.
type Customers struct {
	TotalCustomers int

	// AvgPurchases is the mean order count per recipient, rounded to two
	// decimals.
	AvgPurchases decimal.Decimal

	// MedPurchases is the lower median of per-recipient order counts.
	MedPurchases int

	// RepeatRate is recipients with more than one order per hundred
	// recipients, rounded to two decimals.
	RepeatRate decimal.Decimal

	// Top lists the top-N recipients by order count, ties kept in original
	// group order.
	Top []CustomerCount

	AvgShippingPaid decimal.Decimal
	AvgShippingCost decimal.Decimal
}

// MetricRow is one (label, pre-formatted value) pair for tabular renderers
// and the statistics export.
type MetricRow struct {
	Label string
	Value string
}

// =============================================================================
// SUMMARY STATISTICS
// =============================================================================

// ComputeSummary computes the order-level statistics over the given records,
// excluding the totals row.
func ComputeSummary(records []record.Record) Summary {
	orderTotals := population(records, record.RoleOrderTotal)
	shippingPaid := population(records, record.RoleShippingPaid)
	shippingCosts := population(records, record.RoleShippingCost)
	refunds := population(records, record.RoleRefundAmount)

	s := Summary{OrderCount: len(orderTotals)}

	for _, r := range refunds {
		if r.IsPositive() {
			s.RefundedCount++
		}
	}
	if s.OrderCount > 0 {
		s.RefundRate = decimal.NewFromInt(int64(s.RefundedCount)).
			Mul(decimal.NewFromInt(100)).
			Div(decimal.NewFromInt(int64(s.OrderCount))).
			Round(2)
	}

	s.OrderTotalSum = sum(orderTotals)
	s.OrderTotalAvg = mean(orderTotals)
	s.OrderTotalMedian, s.OrderTotalMin, s.OrderTotalMax = medianMinMax(orderTotals)

	s.ShippingCostSum = sum(shippingCosts)
	s.ShippingCostAvg = mean(shippingCosts)
	s.ShippingCostMedian, s.ShippingCostMin, s.ShippingCostMax = medianMinMax(shippingCosts)

	s.ShippingPaidSum = sum(shippingPaid)
	s.RefundSum = sum(refunds)

	return s
}

// Rows returns the summary metrics as ordered label/value pairs.
func (s Summary) Rows() []MetricRow {
	return []MetricRow{
		{"Total Orders", strconv.Itoa(s.OrderCount)},
		{"Refunded Orders", strconv.Itoa(s.RefundedCount)},
		{"Refund Rate", s.RefundRate.StringFixed(2) + "%"},
		{"Order Total Sum", currency.Format(s.OrderTotalSum)},
		{"Order Total Average", currency.Format(s.OrderTotalAvg)},
		{"Order Total Median", currency.Format(s.OrderTotalMedian)},
		{"Order Total Min", currency.Format(s.OrderTotalMin)},
		{"Order Total Max", currency.Format(s.OrderTotalMax)},
		{"Shipping Cost Sum", currency.Format(s.ShippingCostSum)},
		{"Shipping Cost Average", currency.Format(s.ShippingCostAvg)},
		{"Shipping Cost Median", currency.Format(s.ShippingCostMedian)},
		{"Shipping Cost Min", currency.Format(s.ShippingCostMin)},
		{"Shipping Cost Max", currency.Format(s.ShippingCostMax)},
		{"Shipping Paid Sum", currency.Format(s.ShippingPaidSum)},
		{"Refund Sum", currency.Format(s.RefundSum)},
	}
}

// =============================================================================
// CUSTOMER STATISTICS
// =============================================================================

// ComputeCustomers computes the recipient-level statistics over the given
// records. All rows count toward a recipient's order count, including the
// blank-refund follow-on rows of a group; the totals row is excluded. topN
// bounds the top-customer list; zero or negative means DefaultTopCustomers.
func ComputeCustomers(records []record.Record, topN int) Customers {
	if topN <= 0 {
		topN = DefaultTopCustomers
	}

	// Only distinct non-empty recipients count as customers. Ingestion
	// guarantees non-empty recipients, but callers can hand in records
	// that never went through it.
	var groups []refund.Group
	for _, g := range refund.GroupRecords(records) {
		if g.Recipient == "" {
			continue
		}
		groups = append(groups, g)
	}

	c := Customers{TotalCustomers: len(groups)}

	sizes := make([]int, len(groups))
	repeat := 0
	totalRows := 0
	for i, g := range groups {
		sizes[i] = len(g.Indexes)
		totalRows += len(g.Indexes)
		if len(g.Indexes) > 1 {
			repeat++
		}
	}

	if c.TotalCustomers > 0 {
		c.AvgPurchases = decimal.NewFromInt(int64(totalRows)).
			Div(decimal.NewFromInt(int64(c.TotalCustomers))).
			Round(2)
		c.RepeatRate = decimal.NewFromInt(int64(repeat)).
			Mul(decimal.NewFromInt(100)).
			Div(decimal.NewFromInt(int64(c.TotalCustomers))).
			Round(2)

		sorted := append([]int(nil), sizes...)
		sort.Ints(sorted)
		c.MedPurchases = sorted[(len(sorted)-1)/2]
	}

	// Top-N by order count, descending; stable sort keeps ties in original
	// group order.
	top := make([]CustomerCount, len(groups))
	for i, g := range groups {
		top[i] = CustomerCount{Recipient: g.Recipient, Orders: len(g.Indexes)}
	}
	sort.SliceStable(top, func(i, j int) bool {
		return top[i].Orders > top[j].Orders
	})
	if len(top) > topN {
		top = top[:topN]
	}
	c.Top = top

	c.AvgShippingPaid = mean(population(records, record.RoleShippingPaid))
	c.AvgShippingCost = mean(population(records, record.RoleShippingCost))

	return c
}

// Rows returns the customer metrics as ordered label/value pairs, with one
// row per top customer.
func (c Customers) Rows() []MetricRow {
	rows := []MetricRow{
		{"Total Customers", strconv.Itoa(c.TotalCustomers)},
		{"Average Purchases per Customer", c.AvgPurchases.StringFixed(2)},
		{"Median Purchases per Customer", strconv.Itoa(c.MedPurchases)},
		{"Repeat Purchase Rate", c.RepeatRate.StringFixed(2) + "%"},
	}
	for i, t := range c.Top {
		rows = append(rows, MetricRow{
			Label: "Top Customer #" + strconv.Itoa(i+1),
			Value: t.Recipient + " (" + strconv.Itoa(t.Orders) + " orders)",
		})
	}
	rows = append(rows,
		MetricRow{"Average Shipping Paid", currency.Format(c.AvgShippingPaid)},
		MetricRow{"Average Shipping Cost", currency.Format(c.AvgShippingCost)},
	)
	return rows
}

// =============================================================================
// POPULATION HELPERS
// =============================================================================

// population collects the parseable values of one role across all non-totals
// records.
func population(records []record.Record, role record.Role) []decimal.Decimal {
	var pop []decimal.Decimal
	for i := range records {
		if records[i].IsTotals() {
			continue
		}
		if d, ok := currency.ParseStat(records[i].Field(role)); ok {
			pop = append(pop, d)
		}
	}
	return pop
}

// sum is the plain arithmetic sum of the population.
func sum(pop []decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, d := range pop {
		total = total.Add(d)
	}
	return total
}

// mean is the arithmetic mean rounded to two decimals, zero for an empty
// population.
func mean(pop []decimal.Decimal) decimal.Decimal {
	if len(pop) == 0 {
		return decimal.Zero
	}
	return sum(pop).Div(decimal.NewFromInt(int64(len(pop)))).Round(2)
}

// medianMinMax returns the lower median, minimum, and maximum of the
// population, all zero for an empty population.
func medianMinMax(pop []decimal.Decimal) (median, min, max decimal.Decimal) {
	if len(pop) == 0 {
		return decimal.Zero, decimal.Zero, decimal.Zero
	}
	sorted := append([]decimal.Decimal(nil), pop...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].LessThan(sorted[j])
	})
	return sorted[(len(sorted)-1)/2], sorted[0], sorted[len(sorted)-1]
}
