// internal/domain/status.go
package domain

import "strings"

// Status classification. Order statuses arrive as free text from courier
// exports; every predicate folds case and trims before comparing.
//
// There are deliberately two "counted" taxonomies: KPI totals use the
// narrower CountsTowardTotalOrders set, while delivery-ratio denominators use
// the broader CountsTowardDeliveryRatio set. The asymmetry comes from the
// business side; do not unify the two without product-owner sign-off.

// Payment method classes.
const (
	PaymentCOD   = "COD"
	PaymentPPD   = "PPD"
	PaymentOther = "Other"
)

// NormalizeStatus lowercases and trims a raw status label.
func NormalizeStatus(status string) string {
	return strings.ToLower(strings.TrimSpace(status))
}

// IsDelivered matches "delivered" exactly. Substring matching would wrongly
// catch "not delivered" and "undelivered".
func IsDelivered(status string) bool {
	return NormalizeStatus(status) == "delivered"
}

// IsCancelled matches "cancelled" and any label containing "cancel"
// ("canceled", "cancellation requested", ...).
func IsCancelled(status string) bool {
	s := NormalizeStatus(status)
	return s == "cancelled" || strings.Contains(s, "cancel")
}

// IsRTO matches any return-to-origin or generic return label.
func IsRTO(status string) bool {
	s := NormalizeStatus(status)
	return strings.Contains(s, "rto") || strings.Contains(s, "return")
}

// IsRTS matches the terminal return-to-sender status exactly.
func IsRTS(status string) bool {
	return NormalizeStatus(status) == "rts"
}

// CountsTowardTotalOrders reports whether a status participates in the
// total-orders KPI. Cancelled, booked, manifested, picked, in-transit and
// out-for-delivery orders are all excluded here even though some of them
// count toward the delivery ratio.
func CountsTowardTotalOrders(status string) bool {
	s := NormalizeStatus(status)

	switch s {
	case "rts", "rto", "delivered", "lost", "ndr", "dispatched":
		return true
	}

	if strings.Contains(s, "rto-it") ||
		strings.Contains(s, "rto-ii") ||
		strings.Contains(s, "rto-dispatched") ||
		strings.Contains(s, "rto pending") {
		return true
	}

	// Remaining RTO-I variants; RTO-IT is already handled above and must not
	// be double-classified through this branch.
	if strings.Contains(s, "rto-i") && !strings.Contains(s, "rto-it") {
		return true
	}

	return false
}

// CountsTowardDeliveryRatio reports whether a status belongs in the
// delivery-ratio denominator. This set is wider than the total-orders one:
// in-flight statuses (booked, manifested, picked, in transit, pickup
// pending) count here because they represent shipments the courier owns.
func CountsTowardDeliveryRatio(status string) bool {
	s := NormalizeStatus(status)

	switch s {
	case "booked", "delivered", "dispatched",
		"in transit", "in-transit", "intransit",
		"lost", "manifested", "ndr", "picked",
		"pickup pending", "pickup-pending",
		"rto", "rts":
		return true
	}

	return strings.Contains(s, "rto-dispatched") ||
		strings.Contains(s, "rto-it") ||
		strings.Contains(s, "rto pending")
}

// ClassifyPayment buckets a free-text payment method into COD, PPD or Other.
func ClassifyPayment(method string) string {
	m := strings.ToLower(strings.TrimSpace(method))
	switch {
	case strings.Contains(m, "cod"):
		return PaymentCOD
	case strings.Contains(m, "ppd"), strings.Contains(m, "prepaid"):
		return PaymentPPD
	default:
		return PaymentOther
	}
}
