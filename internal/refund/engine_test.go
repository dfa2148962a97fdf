package refund_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ginjaninja78/shipping-refund-calculator/internal/currency"
	"github.com/ginjaninja78/shipping-refund-calculator/internal/record"
	"github.com/ginjaninja78/shipping-refund-calculator/internal/refund"
)

func TestComputeRefundsTwoOrderGroup(t *testing.T) {
	t.Parallel()

	records := []record.Record{
		{Recipient: "Alice", OrderID: "1", ShippingPaid: "$10", ShippingCost: "$4"},
		{Recipient: "Alice", OrderID: "2", ShippingPaid: "$5", ShippingCost: "$0"},
	}

	records = refund.ComputeRefunds(records)

	assert.Equal(t, "15.00", records[0].TotalShippingPaid)
	assert.Equal(t, "11.00", records[0].RefundAmount)
	assert.Empty(t, records[1].TotalShippingPaid)
	assert.Empty(t, records[1].RefundAmount)
}

func TestComputeRefundsLoneRowWithoutShipping(t *testing.T) {
	t.Parallel()

	records := refund.ComputeRefunds([]record.Record{
		{Recipient: "Bob", OrderID: "3"},
	})

	// Both sums zero: the derived fields stay blank, not "0.00".
	assert.Empty(t, records[0].TotalShippingPaid)
	assert.Empty(t, records[0].RefundAmount)
}

func TestComputeRefundsCostOnlyGroup(t *testing.T) {
	t.Parallel()

	records := refund.ComputeRefunds([]record.Record{
		{Recipient: "Bob", OrderID: "3", ShippingCost: "$4.50"},
	})

	// Paid is zero so the shipping total stays blank, but one non-zero sum
	// is enough for a refund value: a negative refund is still a value.
	assert.Empty(t, records[0].TotalShippingPaid)
	assert.Equal(t, "-4.50", records[0].RefundAmount)
}

func TestComputeRefundsIdempotent(t *testing.T) {
	t.Parallel()

	records := []record.Record{
		{Recipient: "Alice", OrderID: "1", ShippingPaid: "$10", ShippingCost: "$4"},
		{Recipient: "Alice", OrderID: "2", ShippingPaid: "$5"},
		{Recipient: "Bob", OrderID: "3", ShippingPaid: "$2", ShippingCost: "$2"},
	}

	once := refund.ComputeRefunds(append([]record.Record(nil), records...))
	twice := refund.ComputeRefunds(append([]record.Record(nil), once...))

	assert.Equal(t, once, twice)
}

func TestComputeRefundsGroupingInvariant(t *testing.T) {
	t.Parallel()

	records := []record.Record{
		{Recipient: "Alice", OrderID: "1", ShippingPaid: "$10"},
		{Recipient: "Alice", OrderID: "2", ShippingPaid: "$5"},
		{Recipient: "Bob", OrderID: "3", ShippingPaid: "$7"},
		{Recipient: "Bob", OrderID: "4", ShippingPaid: "$1"},
		{Recipient: "Bob", OrderID: "5"},
	}

	records = refund.ComputeRefunds(records)

	// Per group, the sum of non-blank shipping totals equals the paid sum
	// over the group's raw values: the first record carries it all, every
	// other row is blank.
	for _, g := range refund.GroupRecords(records) {
		paidSum := decimal.Zero
		nonBlankSum := decimal.Zero
		nonBlank := 0
		for _, i := range g.Indexes {
			paidSum = paidSum.Add(currency.ParseOrZero(records[i].ShippingPaid))
			if records[i].TotalShippingPaid != "" {
				nonBlank++
				nonBlankSum = nonBlankSum.Add(currency.ParseOrZero(records[i].TotalShippingPaid))
				assert.Equal(t, g.Indexes[0], i, "non-blank total on a non-first row")
			}
		}
		require.LessOrEqual(t, nonBlank, 1)
		assert.True(t, nonBlankSum.Equal(paidSum),
			"group %s: non-blank totals %s != paid sum %s",
			g.Recipient, nonBlankSum, paidSum)
	}
}

func TestGroupRecordsOrder(t *testing.T) {
	t.Parallel()

	records := []record.Record{
		{Recipient: "Bob", OrderID: "1"},
		{Recipient: "Alice", OrderID: "2"},
		{Recipient: "Bob", OrderID: "3"},
		{OrderID: record.TotalsSentinel},
	}

	groups := refund.GroupRecords(records)
	require.Len(t, groups, 2)

	// First-occurrence order, membership in encounter order, totals row
	// excluded.
	assert.Equal(t, "Bob", groups[0].Recipient)
	assert.Equal(t, []int{0, 2}, groups[0].Indexes)
	assert.Equal(t, "Alice", groups[1].Recipient)
	assert.Equal(t, []int{1}, groups[1].Indexes)
}
