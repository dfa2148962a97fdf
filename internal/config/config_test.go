package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ginjaninja78/shipping-refund-calculator/internal/config"
	"github.com/ginjaninja78/shipping-refund-calculator/internal/record"
)

func TestDefaults(t *testing.T) {
	t.Parallel()

	cfg := config.Default()

	assert.Equal(t, "Recipient", cfg.Columns.Recipient)
	assert.Equal(t, "Order ID", cfg.Columns.OrderID)
	assert.Equal(t, ",", cfg.CSV.Delimiter)
	assert.Equal(t, 5, cfg.Stats.TopCustomers)
	assert.Equal(t, "./output", cfg.Output.Dir)
	require.NoError(t, config.Validate(cfg))
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := config.Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoadOverrides(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
columns:
  recipient: "Ship To"
  shipping_paid: "Postage"
csv:
  delimiter: ";"
stats:
  top_customers: 3
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Ship To", cfg.Columns.Recipient)
	assert.Equal(t, "Postage", cfg.Columns.ShippingPaid)
	assert.Equal(t, ";", cfg.CSV.Delimiter)
	assert.Equal(t, 3, cfg.Stats.TopCustomers)

	// Unset options keep their defaults.
	assert.Equal(t, "Order ID", cfg.Columns.OrderID)
	assert.Equal(t, "./output", cfg.Output.Dir)
}

func TestHeadersOrder(t *testing.T) {
	t.Parallel()

	headers := config.Default().Columns.Headers()
	require.Len(t, headers, len(record.AllRoles))
	assert.Equal(t, "Order ID", headers[0])
	assert.Equal(t, "Refund Amount", headers[len(headers)-1])
}

func TestValidateRejectsNegativeTopN(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.Stats.TopCustomers = -1
	assert.Error(t, config.Validate(cfg))
}
