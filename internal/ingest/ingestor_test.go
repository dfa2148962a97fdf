package ingest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ginjaninja78/shipping-refund-calculator/internal/config"
	"github.com/ginjaninja78/shipping-refund-calculator/internal/ingest"
	"github.com/ginjaninja78/shipping-refund-calculator/internal/record"
)

func testColumns() config.ColumnMapping {
	return config.Default().Columns
}

func TestIngestErrors(t *testing.T) {
	t.Parallel()

	t.Run("empty input", func(t *testing.T) {
		_, err := ingest.New(testColumns()).Ingest(nil)
		require.Error(t, err)

		var ingErr *ingest.IngestionError
		assert.ErrorAs(t, err, &ingErr)
	})

	t.Run("unmapped recipient", func(t *testing.T) {
		columns := testColumns()
		columns.Recipient = ""

		_, err := ingest.New(columns).Ingest([]map[string]string{
			{"Order ID": "1"},
		})
		require.Error(t, err)

		var colErr *ingest.MissingColumnError
		require.ErrorAs(t, err, &colErr)
		assert.Equal(t, record.RoleRecipient, colErr.Role)
	})
}

func TestIngestDropRules(t *testing.T) {
	t.Parallel()

	rows := []map[string]string{
		{"Order ID": "1", "Recipient": "Alice", "Order Total": "$10"},
		// Fully blank row.
		{"Order ID": "", "Recipient": "", "Order Total": "  "},
		// Data but no recipient: still dropped.
		{"Order ID": "2", "Recipient": "", "Order Total": "$20"},
	}

	records, err := ingest.New(testColumns()).Ingest(rows)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Alice", records[0].Recipient)
}

func TestIngestDerivedFieldsDefaultEmpty(t *testing.T) {
	t.Parallel()

	// The source row has none of the derived/optional columns.
	rows := []map[string]string{
		{"Order ID": "1", "Recipient": "Alice"},
	}

	records, err := ingest.New(testColumns()).Ingest(rows)
	require.NoError(t, err)
	require.Len(t, records, 1)

	for _, role := range record.DerivedRoles {
		assert.Empty(t, records[0].Field(role), "role %s", role)
	}
}

func TestIngestSortOrder(t *testing.T) {
	t.Parallel()

	rows := []map[string]string{
		{"Order ID": "9", "Recipient": "Bob"},
		{"Order ID": "10", "Recipient": "Alice"},
		{"Order ID": "2", "Recipient": "Alice"},
		{"Order ID": "2", "Recipient": "Alice", "Item Name": "Second"},
	}

	records, err := ingest.New(testColumns()).Ingest(rows)
	require.NoError(t, err)
	require.Len(t, records, 4)

	// Recipient ascending, then order id ascending by lexical comparison:
	// "10" sorts before "2".
	assert.Equal(t, "Alice", records[0].Recipient)
	assert.Equal(t, "10", records[0].OrderID)
	assert.Equal(t, "2", records[1].OrderID)
	assert.Equal(t, "Bob", records[3].Recipient)

	// Stable sort keeps tied rows in input order.
	assert.Empty(t, records[1].ItemName)
	assert.Equal(t, "Second", records[2].ItemName)
}
