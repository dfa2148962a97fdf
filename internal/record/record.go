// =============================================================================
// Shipping Refund Calculator - Shared Record Types
// =============================================================================
//
// This package contains the canonical order record type and the column-role
// enumeration shared across the ingestion, refund, statistics, and
// classification modules. Keeping these types in their own package avoids
// import cycles between the modules that read and mutate records.
//
// =============================================================================

package record

import "strings"

// TotalsSentinel is the order-id value that marks the synthetic totals row
// appended after all data rows. At most one record in the active collection
// carries it.
const TotalsSentinel = "TOTAL"

// =============================================================================
// COLUMN ROLES
// =============================================================================

// Role identifies one of the nine logical columns of an order record.
// Roles are resolved to concrete CSV header names through the column mapping
// in the configuration file.
type Role int

const (
	// RoleOrderID is the order identifier column.
	RoleOrderID Role = iota

	// RoleItemName is the purchased item description column.
	RoleItemName

	// RoleRecipient is the customer/destination column. It is the grouping
	// key for refund computation and must be non-empty after ingestion.
	RoleRecipient

	// RoleQuantity is the item quantity column.
	RoleQuantity

	// RoleOrderTotal is the order total currency column.
	RoleOrderTotal

	// RoleShippingPaid is the per-order shipping paid currency column.
	RoleShippingPaid

	// RoleTotalShippingPaid is the derived group-level shipping total.
	// Only the first record of a recipient group carries a value.
	RoleTotalShippingPaid

	// RoleShippingCost is the actual shipping cost currency column.
	RoleShippingCost

	// RoleRefundAmount is the derived group-level refund amount.
	// Only the first record of a recipient group carries a value.
	RoleRefundAmount
)

// AllRoles lists every role in display/export column order.
var AllRoles = []Role{
	RoleOrderID,
	RoleItemName,
	RoleRecipient,
	RoleQuantity,
	RoleOrderTotal,
	RoleShippingPaid,
	RoleTotalShippingPaid,
	RoleShippingCost,
	RoleRefundAmount,
}

// DerivedRoles lists the four roles that may be absent from source files and
// are filled in (or left empty) by the engine rather than the import.
var DerivedRoles = []Role{
	RoleShippingPaid,
	RoleShippingCost,
	RoleTotalShippingPaid,
	RoleRefundAmount,
}

// roleNames maps roles to their internal names, used in error messages and
// configuration validation output.
var roleNames = map[Role]string{
	RoleOrderID:           "order_id",
	RoleItemName:          "item_name",
	RoleRecipient:         "recipient",
	RoleQuantity:          "quantity",
	RoleOrderTotal:        "order_total",
	RoleShippingPaid:      "shipping_paid",
	RoleTotalShippingPaid: "total_shipping_paid",
	RoleShippingCost:      "shipping_cost",
	RoleRefundAmount:      "refund_amount",
}

// String returns the internal name of the role.
func (r Role) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return "unknown"
}

// =============================================================================
// RECORD
// =============================================================================

// Record is one imported order line. Every field holds display text exactly
// as imported (or as formatted by the refund engine for the two derived
// fields), so that exporting a record reproduces the original text verbatim.
// An empty string means the value is absent, never zero.
type Record struct {
	// OrderID is the raw order identifier text. Compared lexically when
	// sorting, never numerically.
	OrderID string

	// ItemName is the purchased item description.
	ItemName string

	// Recipient is the grouping key. Non-empty for every ingested record.
	Recipient string

	// Quantity is the raw quantity text.
	Quantity string

	// OrderTotal is the raw order total currency text.
	OrderTotal string

	// ShippingPaid is the raw shipping-paid currency text.
	ShippingPaid string

	// TotalShippingPaid is the group shipping total, formatted to two
	// decimals by the refund engine, or "" when absent.
	TotalShippingPaid string

	// ShippingCost is the raw shipping-cost currency text.
	ShippingCost string

	// RefundAmount is the group refund, formatted to two decimals by the
	// refund engine, or "" when absent.
	RefundAmount string
}

// Field returns the text value of the given role.
func (r *Record) Field(role Role) string {
	switch role {
	case RoleOrderID:
		return r.OrderID
	case RoleItemName:
		return r.ItemName
	case RoleRecipient:
		return r.Recipient
	case RoleQuantity:
		return r.Quantity
	case RoleOrderTotal:
		return r.OrderTotal
	case RoleShippingPaid:
		return r.ShippingPaid
	case RoleTotalShippingPaid:
		return r.TotalShippingPaid
	case RoleShippingCost:
		return r.ShippingCost
	case RoleRefundAmount:
		return r.RefundAmount
	}
	return ""
}

// SetField sets the text value of the given role.
func (r *Record) SetField(role Role, value string) {
	switch role {
	case RoleOrderID:
		r.OrderID = value
	case RoleItemName:
		r.ItemName = value
	case RoleRecipient:
		r.Recipient = value
	case RoleQuantity:
		r.Quantity = value
	case RoleOrderTotal:
		r.OrderTotal = value
	case RoleShippingPaid:
		r.ShippingPaid = value
	case RoleTotalShippingPaid:
		r.TotalShippingPaid = value
	case RoleShippingCost:
		r.ShippingCost = value
	case RoleRefundAmount:
		r.RefundAmount = value
	}
}

// IsBlank reports whether every field is empty after trimming whitespace.
// Fully blank rows are dropped during ingestion.
func (r *Record) IsBlank() bool {
	for _, role := range AllRoles {
		if strings.TrimSpace(r.Field(role)) != "" {
			return false
		}
	}
	return true
}

// IsTotals reports whether this record is the synthetic totals row.
func (r *Record) IsTotals() bool {
	return r.OrderID == TotalsSentinel
}
