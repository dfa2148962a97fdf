// =============================================================================
// Shipping Refund Calculator - Configuration Module
// =============================================================================
//
// This module loads and validates the application configuration. A single
// YAML file holds everything the engine needs to know about the outside
// world:
//
//   1. Column mapping: which CSV header feeds each of the nine record roles
//   2. CSV settings: delimiter handling for the import
//   3. Output settings: where exports go and how files are named
//   4. Statistics settings: top-N customer count
//
// All settings have defaults, so an empty (or missing) configuration file
// yields a working setup for the standard store-export header names.
//
// =============================================================================

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ginjaninja78/shipping-refund-calculator/internal/record"
)

// =============================================================================
// CONFIGURATION STRUCTURES
// =============================================================================

// Config holds the full application configuration.
type Config struct {
	// Columns maps each record role to its CSV header name.
	Columns ColumnMapping `yaml:"columns"`

	// CSV holds import parsing settings.
	CSV CSVSettings `yaml:"csv"`

	// Output holds export settings.
	Output OutputSettings `yaml:"output"`

	// Stats holds statistics settings.
	Stats StatsSettings `yaml:"stats"`
}

// ColumnMapping maps the nine record roles to concrete CSV header names.
// The recipient mapping is mandatory; everything else falls back to the
// standard export header names.
type ColumnMapping struct {
	OrderID           string `yaml:"order_id"`
	ItemName          string `yaml:"item_name"`
	Recipient         string `yaml:"recipient"`
	Quantity          string `yaml:"quantity"`
	OrderTotal        string `yaml:"order_total"`
	ShippingPaid      string `yaml:"shipping_paid"`
	TotalShippingPaid string `yaml:"total_shipping_paid"`
	ShippingCost      string `yaml:"shipping_cost"`
	RefundAmount      string `yaml:"refund_amount"`
}

// CSVSettings holds import parsing settings.
type CSVSettings struct {
	// Delimiter is the field separator. Accepts a literal character or the
	// aliases "tab", "pipe", "semicolon". Default: ",".
	Delimiter string `yaml:"delimiter"`
}

// OutputSettings holds export settings.
type OutputSettings struct {
	// Dir is the directory exports are written to. Default: "./output".
	Dir string `yaml:"dir"`

	// PurchasesFormat is the output file name pattern for the purchases
	// export. Supports {timestamp} and {uuid} placeholders.
	// Default: "purchases_{timestamp}.csv".
	PurchasesFormat string `yaml:"purchases_format"`

	// StatsFormat is the output file name pattern for the statistics
	// export. Default: "stats_{timestamp}.csv".
	StatsFormat string `yaml:"stats_format"`

	// WorkbookFormat is the output file name pattern for the XLSX export.
	// Default: "refunds_{timestamp}.xlsx".
	WorkbookFormat string `yaml:"workbook_format"`
}

// StatsSettings holds statistics settings.
type StatsSettings struct {
	// TopCustomers is the N for the top-N customers by order count.
	// Default: 5.
	TopCustomers int `yaml:"top_customers"`
}

// =============================================================================
// ROLE RESOLUTION
// =============================================================================

// Header returns the CSV header name mapped to the given role, or "" when
// the role is unmapped.
func (m ColumnMapping) Header(role record.Role) string {
	switch role {
	case record.RoleOrderID:
		return m.OrderID
	case record.RoleItemName:
		return m.ItemName
	case record.RoleRecipient:
		return m.Recipient
	case record.RoleQuantity:
		return m.Quantity
	case record.RoleOrderTotal:
		return m.OrderTotal
	case record.RoleShippingPaid:
		return m.ShippingPaid
	case record.RoleTotalShippingPaid:
		return m.TotalShippingPaid
	case record.RoleShippingCost:
		return m.ShippingCost
	case record.RoleRefundAmount:
		return m.RefundAmount
	}
	return ""
}

// Headers returns the mapped header names in display/export column order.
func (m ColumnMapping) Headers() []string {
	headers := make([]string, 0, len(record.AllRoles))
	for _, role := range record.AllRoles {
		headers = append(headers, m.Header(role))
	}
	return headers
}

// =============================================================================
// LOADING
// =============================================================================

// Load reads the configuration from a YAML file, applies defaults, and
// validates it. A missing file is not an error: the defaults describe the
// standard store-export layout.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(cfg)

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Default returns the configuration for the standard store-export header
// names.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// applyDefaults fills in every unset option.
func applyDefaults(cfg *Config) {
	m := &cfg.Columns
	if m.OrderID == "" {
		m.OrderID = "Order ID"
	}
	if m.ItemName == "" {
		m.ItemName = "Item Name"
	}
	if m.Recipient == "" {
		m.Recipient = "Recipient"
	}
	if m.Quantity == "" {
		m.Quantity = "Quantity"
	}
	if m.OrderTotal == "" {
		m.OrderTotal = "Order Total"
	}
	if m.ShippingPaid == "" {
		m.ShippingPaid = "Shipping Paid"
	}
	if m.TotalShippingPaid == "" {
		m.TotalShippingPaid = "Total Shipping Paid"
	}
	if m.ShippingCost == "" {
		m.ShippingCost = "Shipping Cost"
	}
	if m.RefundAmount == "" {
		m.RefundAmount = "Refund Amount"
	}

	if cfg.CSV.Delimiter == "" {
		cfg.CSV.Delimiter = ","
	}
	if cfg.Output.Dir == "" {
		cfg.Output.Dir = "./output"
	}
	if cfg.Output.PurchasesFormat == "" {
		cfg.Output.PurchasesFormat = "purchases_{timestamp}.csv"
	}
	if cfg.Output.StatsFormat == "" {
		cfg.Output.StatsFormat = "stats_{timestamp}.csv"
	}
	if cfg.Output.WorkbookFormat == "" {
		cfg.Output.WorkbookFormat = "refunds_{timestamp}.xlsx"
	}
	if cfg.Stats.TopCustomers == 0 {
		cfg.Stats.TopCustomers = 5
	}
}

// Validate checks structural prerequisites. The recipient mapping is the
// only hard requirement: without it there is no grouping key and ingestion
// cannot run.
func Validate(cfg *Config) error {
	if cfg.Columns.Recipient == "" {
		return fmt.Errorf("column mapping for role %q is required", record.RoleRecipient)
	}
	if cfg.Stats.TopCustomers < 0 {
		return fmt.Errorf("stats.top_customers must not be negative")
	}
	return nil
}
