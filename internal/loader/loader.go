// Package loader turns raw tabular rows from any source (xlsx workbook, CSV
// export, API payload) into normalized order records. Structural problems
// (an empty source) fail the load; per-cell problems never do, they degrade
// to field-level defaults.
package loader

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shubhankar-shipowl/Analytics-Dashboard-sub001/internal/domain"
	"github.com/shubhankar-shipowl/Analytics-Dashboard-sub001/internal/schema"
	"github.com/shubhankar-shipowl/Analytics-Dashboard-sub001/pkg/logger"
)

// ErrEmptySource is returned when a source yields zero data rows. Callers
// surface it as a load failure rather than treating it as an empty dataset.
var ErrEmptySource = errors.New("source contains no rows")

// Source identifies where a batch of raw rows came from.
type Source string

const (
	SourceSpreadsheet Source = "spreadsheet"
	SourceAPI         Source = "api"
)

// RawRow is one source row exactly as read: arbitrary header → cell value.
// Values may be strings, numbers or already-typed dates depending on the
// reader.
type RawRow map[string]any

// Load normalizes a batch of raw rows into order records.
func Load(rows []RawRow, origin Source) ([]domain.Order, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("loading from %s: %w", origin, ErrEmptySource)
	}

	log := logger.Component("loader")
	orders := make([]domain.Order, 0, len(rows))
	badDates := 0

	for _, row := range rows {
		order := normalizeRow(row)
		if order.OrderDate == nil {
			badDates++
		}
		orders = append(orders, order)
	}

	log.Debug().
		Str("origin", string(origin)).
		Int("rows", len(orders)).
		Int("unparseable_dates", badDates).
		Msg("loaded order records")

	return orders, nil
}

// candidate is one source column competing for a canonical field.
type candidate struct {
	header   string
	value    any
	priority int
}

// wins orders colliding source columns for one canonical field: the column
// whose rule matched with higher priority wins, equal rules fall back to the
// header name. Identical tables therefore always resolve identically, no
// matter the map iteration order of the row.
func (c candidate) wins(over candidate) bool {
	if c.priority != over.priority {
		return c.priority < over.priority
	}
	return strings.ToLower(strings.TrimSpace(c.header)) < strings.ToLower(strings.TrimSpace(over.header))
}

// normalizeRow resolves the canonical fields for a single row. When several
// source headers map to the same canonical field, the strongest match rule
// wins; headers that match no rule are preserved in Extra.
func normalizeRow(row RawRow) domain.Order {
	best := make(map[string]candidate, len(row))
	var extra map[string]string

	for header, value := range row {
		field, priority := schema.MatchHeader(header)
		if !schema.IsCanonical(field) {
			if extra == nil {
				extra = make(map[string]string)
			}
			extra[header] = stringify(value)
			continue
		}
		cand := candidate{header: header, value: value, priority: priority}
		if cur, taken := best[field]; !taken || cand.wins(cur) {
			best[field] = cand
		}
	}

	canonical := make(map[string]any, len(best))
	for field, cand := range best {
		canonical[field] = cand.value
	}

	return domain.Order{
		OrderID:            strings.TrimSpace(stringify(canonical[schema.FieldOrderID])),
		OrderDate:          ParseOrderDate(canonical[schema.FieldOrderDate]),
		Amount:             ParseAmount(canonical[schema.FieldAmount]),
		Status:             textField(canonical[schema.FieldStatus]),
		PaymentMethod:      strings.TrimSpace(stringify(canonical[schema.FieldPaymentMethod])),
		City:               textField(canonical[schema.FieldCity]),
		Pincode:            textField(canonical[schema.FieldPincode]),
		Product:            textField(canonical[schema.FieldProduct]),
		SKU:                textField(canonical[schema.FieldSKU]),
		FulfillmentPartner: textField(canonical[schema.FieldFulfillmentPartner]),
		Extra:              extra,
	}
}

// textField trims a free-text dimension value, defaulting to "Unknown".
func textField(v any) string {
	s := strings.TrimSpace(stringify(v))
	if s == "" {
		return domain.UnknownLabel
	}
	return s
}

func stringify(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case bool:
		return strconv.FormatBool(val)
	case time.Time:
		return val.Format(time.RFC3339)
	default:
		return fmt.Sprintf("%v", val)
	}
}
