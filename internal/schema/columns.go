// Package schema maps the header rows of uploaded order sheets onto the
// canonical field set the rest of the system computes against. Upstream
// exports disagree on naming ("Order Value", "Amount (INR)", "Fulfilled By",
// "Pin Code", ...), so every header passes through NormalizeHeader exactly
// once, at load time.
package schema

import "strings"

// Canonical field names. These are the implicit contract between the loader
// and the aggregation code; downstream code never sees raw headers.
const (
	FieldOrderID            = "order_id"
	FieldOrderDate          = "order_date"
	FieldAmount             = "amount"
	FieldStatus             = "status"
	FieldPaymentMethod      = "payment_method"
	FieldCity               = "city"
	FieldPincode            = "pincode"
	FieldProduct            = "product"
	FieldSKU                = "sku"
	FieldFulfillmentPartner = "fulfillment_partner"
)

// exactAliases resolves headers that must win before any keyword rule runs.
// "Product Name" would otherwise be at the mercy of rule ordering, and
// "Pin Code" vs "Pincode" both appear in the wild.
var exactAliases = map[string]string{
	"product name": FieldProduct,
	"pincode":      FieldPincode,
	"pin code":     FieldPincode,
}

// productExclusions guard the product rule: a header like "Product Quantity"
// or "Product Price" carries the product word but is not the product name.
var productExclusions = []string{"quantity", "qty", "amount", "price", "cost", "value"}

var partnerKeywords = []string{"fulfillment", "partner", "vendor", "carrier", "shipping partner", "fulfilled"}

var amountKeywords = []string{"amount", "value", "price", "total", "revenue"}

// Match priorities, one per rule, in rule order. When several source columns
// of one sheet resolve to the same canonical field, the loader keeps the
// column whose rule ranks highest here: an exact alias is a stronger claim on
// the field than any keyword match. MatchNone marks pass-through headers.
const (
	MatchExact = iota
	MatchFulfilledBy
	MatchSKU
	MatchProductName
	MatchPartnerKeyword
	MatchOrderID
	MatchOrderDate
	MatchStatus
	MatchPayment
	MatchCity
	MatchPin
	MatchAmount
	MatchNone
)

// NormalizeHeader maps a raw sheet header to its canonical field name.
// Headers that match no rule pass through verbatim; the loader keeps them as
// extra columns so export and debug flows never lose data.
func NormalizeHeader(header string) string {
	field, _ := MatchHeader(header)
	return field
}

// MatchHeader resolves a raw sheet header to its canonical field name plus
// the priority of the rule that matched, so collisions between source
// columns can be broken deterministically.
func MatchHeader(header string) (string, int) {
	h := strings.ToLower(strings.TrimSpace(header))
	if h == "" {
		return header, MatchNone
	}

	if field, ok := exactAliases[h]; ok {
		return field, MatchExact
	}

	// "Fulfilled By" has the highest priority among the fuzzy rules; several
	// exports use it for the partner column while also carrying a generic
	// "Shipping" column that must not shadow it.
	if strings.Contains(h, "fulfilled by") {
		return FieldFulfillmentPartner, MatchFulfilledBy
	}

	// SKU wins over product: "SKU Name" is a SKU column, never the product.
	if strings.Contains(h, "sku") {
		return FieldSKU, MatchSKU
	}

	if strings.Contains(h, "product") && strings.Contains(h, "name") && !containsAny(h, productExclusions) {
		return FieldProduct, MatchProductName
	}

	if containsAny(h, partnerKeywords) {
		return FieldFulfillmentPartner, MatchPartnerKeyword
	}

	if strings.Contains(h, "order") && containsAny(h, []string{"id", "no", "number"}) && !strings.Contains(h, "date") {
		return FieldOrderID, MatchOrderID
	}

	if strings.Contains(h, "date") {
		return FieldOrderDate, MatchOrderDate
	}

	if strings.Contains(h, "status") {
		return FieldStatus, MatchStatus
	}

	if strings.Contains(h, "payment") {
		return FieldPaymentMethod, MatchPayment
	}

	if strings.Contains(h, "city") {
		return FieldCity, MatchCity
	}

	if strings.Contains(h, "pin") {
		return FieldPincode, MatchPin
	}

	if containsAny(h, amountKeywords) {
		return FieldAmount, MatchAmount
	}

	return header, MatchNone
}

// IsCanonical reports whether name is one of the canonical field names.
func IsCanonical(name string) bool {
	switch name {
	case FieldOrderID, FieldOrderDate, FieldAmount, FieldStatus, FieldPaymentMethod,
		FieldCity, FieldPincode, FieldProduct, FieldSKU, FieldFulfillmentPartner:
		return true
	}
	return false
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
