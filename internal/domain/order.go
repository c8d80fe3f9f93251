// internal/domain/order.go
package domain

import "time"

const (
	// UnknownLabel is the default for absent free-text dimension fields.
	UnknownLabel = "Unknown"
)

// Order is the canonical, immutable record every aggregation computes over.
// The loader is the only producer; after creation nothing mutates it.
type Order struct {
	OrderID string `json:"order_id,omitempty"`

	// OrderDate is nil when the source cell could not be parsed. Records
	// without a date still count in non-date aggregations but are excluded
	// from date-range filters and daily buckets.
	OrderDate *time.Time `json:"order_date,omitempty"`

	// Amount is the order value in currency units, never negative; 0 when
	// the source cell was missing or unparseable.
	Amount float64 `json:"amount"`

	Status             string `json:"status"`
	PaymentMethod      string `json:"payment_method"`
	City               string `json:"city"`
	Pincode            string `json:"pincode"`
	Product            string `json:"product"`
	SKU                string `json:"sku"`
	FulfillmentPartner string `json:"fulfillment_partner"`

	// Extra holds source columns that matched no canonical field. They take
	// no part in aggregation but survive for export and debugging.
	Extra map[string]string `json:"extra,omitempty"`
}

// DateOnly returns the order date truncated to midnight UTC, or false when
// the date is absent. All date-range comparisons are date-only.
func (o *Order) DateOnly() (time.Time, bool) {
	if o.OrderDate == nil {
		return time.Time{}, false
	}
	y, m, d := o.OrderDate.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), true
}
