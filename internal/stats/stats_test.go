package stats_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ginjaninja78/shipping-refund-calculator/internal/record"
	"github.com/ginjaninja78/shipping-refund-calculator/internal/stats"
)

func TestComputeSummaryBasics(t *testing.T) {
	t.Parallel()

	records := []record.Record{
		{Recipient: "Alice", OrderID: "1", OrderTotal: "10"},
		{Recipient: "Bob", OrderID: "2", OrderTotal: "20"},
		{Recipient: "Carol", OrderID: "3", OrderTotal: "30"},
	}

	s := stats.ComputeSummary(records)

	assert.Equal(t, 3, s.OrderCount)
	assert.Equal(t, "20.00", s.OrderTotalAvg.StringFixed(2))
	assert.Equal(t, "20.00", s.OrderTotalMedian.StringFixed(2))
	assert.Equal(t, "10.00", s.OrderTotalMin.StringFixed(2))
	assert.Equal(t, "30.00", s.OrderTotalMax.StringFixed(2))
	assert.Equal(t, "60.00", s.OrderTotalSum.StringFixed(2))
}

func TestComputeSummaryRefundRate(t *testing.T) {
	t.Parallel()

	records := []record.Record{
		{Recipient: "Alice", OrderID: "1", OrderTotal: "10", RefundAmount: "5.00"},
		{Recipient: "Bob", OrderID: "2", OrderTotal: "20", RefundAmount: "0.00"},
		{Recipient: "Carol", OrderID: "3", OrderTotal: "30", RefundAmount: "-1.00"},
	}

	s := stats.ComputeSummary(records)

	// Only refunds strictly greater than zero count as refunded.
	assert.Equal(t, 1, s.RefundedCount)
	assert.Equal(t, "33.33", s.RefundRate.StringFixed(2))
	assert.Equal(t, "4.00", s.RefundSum.StringFixed(2))
}

func TestComputeSummaryExclusions(t *testing.T) {
	t.Parallel()

	records := []record.Record{
		{Recipient: "Alice", OrderID: "1", OrderTotal: "$10"},
		// Present but malformed: excluded from the population, not zeroed.
		{Recipient: "Bob", OrderID: "2", OrderTotal: "n/a"},
		// The totals row never joins any population.
		{OrderID: record.TotalsSentinel, OrderTotal: "10.00"},
	}

	s := stats.ComputeSummary(records)

	assert.Equal(t, 1, s.OrderCount)
	assert.Equal(t, "10.00", s.OrderTotalSum.StringFixed(2))
	assert.Equal(t, "10.00", s.OrderTotalAvg.StringFixed(2))
}

func TestComputeSummaryEmpty(t *testing.T) {
	t.Parallel()

	s := stats.ComputeSummary(nil)

	assert.Zero(t, s.OrderCount)
	assert.True(t, s.RefundRate.IsZero())
	assert.True(t, s.OrderTotalAvg.IsZero())
	assert.True(t, s.OrderTotalMedian.IsZero())
	assert.True(t, s.OrderTotalMin.IsZero())
	assert.True(t, s.OrderTotalMax.IsZero())
}

func TestLowerMedianEvenPopulation(t *testing.T) {
	t.Parallel()

	records := []record.Record{
		{Recipient: "A", OrderID: "1", OrderTotal: "10"},
		{Recipient: "B", OrderID: "2", OrderTotal: "20"},
		{Recipient: "C", OrderID: "3", OrderTotal: "30"},
		{Recipient: "D", OrderID: "4", OrderTotal: "40"},
	}

	s := stats.ComputeSummary(records)

	// Lower-median convention: index (n-1)/2 of the sorted population, no
	// averaging of the two middle values.
	assert.Equal(t, "20.00", s.OrderTotalMedian.StringFixed(2))
}

func TestComputeCustomers(t *testing.T) {
	t.Parallel()

	records := []record.Record{
		{Recipient: "Alice", OrderID: "1"},
		{Recipient: "Bob", OrderID: "2"},
		{Recipient: "Bob", OrderID: "3"},
		{Recipient: "Carol", OrderID: "4"},
	}

	c := stats.ComputeCustomers(records, 5)

	assert.Equal(t, 3, c.TotalCustomers)
	assert.Equal(t, "1.33", c.AvgPurchases.StringFixed(2))
	assert.Equal(t, 1, c.MedPurchases)
	assert.Equal(t, "33.33", c.RepeatRate.StringFixed(2))

	require.Len(t, c.Top, 3)
	assert.Equal(t, stats.CustomerCount{Recipient: "Bob", Orders: 2}, c.Top[0])
	// Ties keep original group order.
	assert.Equal(t, "Alice", c.Top[1].Recipient)
	assert.Equal(t, "Carol", c.Top[2].Recipient)
}

func TestComputeCustomersTopNBound(t *testing.T) {
	t.Parallel()

	var records []record.Record
	for _, name := range []string{"A", "B", "C", "D", "E", "F", "G"} {
		records = append(records, record.Record{Recipient: name, OrderID: name})
	}

	c := stats.ComputeCustomers(records, 5)
	assert.Len(t, c.Top, 5)

	// Zero falls back to the default of five.
	c = stats.ComputeCustomers(records, 0)
	assert.Len(t, c.Top, 5)
}

func TestComputeCustomersIgnoresEmptyRecipients(t *testing.T) {
	t.Parallel()

	// Records that bypassed ingestion can carry empty recipients; they
	// must not count as a customer or skew the distribution.
	records := []record.Record{
		{Recipient: "Alice", OrderID: "1"},
		{Recipient: "Alice", OrderID: "2"},
		{Recipient: "", OrderID: "3"},
	}

	c := stats.ComputeCustomers(records, 5)

	assert.Equal(t, 1, c.TotalCustomers)
	assert.Equal(t, "2.00", c.AvgPurchases.StringFixed(2))
	assert.Equal(t, "100.00", c.RepeatRate.StringFixed(2))
	require.Len(t, c.Top, 1)
	assert.Equal(t, "Alice", c.Top[0].Recipient)
}

func TestComputeCustomersShippingAverages(t *testing.T) {
	t.Parallel()

	records := []record.Record{
		{Recipient: "Alice", OrderID: "1", ShippingPaid: "$10", ShippingCost: "$3"},
		{Recipient: "Alice", OrderID: "2", ShippingPaid: "$5"},
		{Recipient: "Bob", OrderID: "3", ShippingCost: "$1"},
	}

	c := stats.ComputeCustomers(records, 5)

	// Averages run over parseable values across all rows, ungrouped.
	assert.Equal(t, "7.50", c.AvgShippingPaid.StringFixed(2))
	assert.Equal(t, "2.00", c.AvgShippingCost.StringFixed(2))
}

func TestMetricRowsOrdering(t *testing.T) {
	t.Parallel()

	records := []record.Record{
		{Recipient: "Alice", OrderID: "1", OrderTotal: "10", RefundAmount: "2.00"},
	}

	rows := stats.ComputeSummary(records).Rows()
	require.NotEmpty(t, rows)
	assert.Equal(t, "Total Orders", rows[0].Label)
	assert.Equal(t, "1", rows[0].Value)
	assert.Equal(t, "Refund Rate", rows[2].Label)
	assert.Equal(t, "100.00%", rows[2].Value)

	crows := stats.ComputeCustomers(records, 5).Rows()
	require.NotEmpty(t, crows)
	assert.Equal(t, "Total Customers", crows[0].Label)
	assert.Equal(t, "Top Customer #1", crows[4].Label)
	assert.Equal(t, "Alice (1 orders)", crows[4].Value)
}
