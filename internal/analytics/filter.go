// internal/analytics/filter.go
package analytics

import (
	"strings"
	"time"

	"github.com/shubhankar-shipowl/Analytics-Dashboard-sub001/internal/domain"
)

// DateRange names the preset windows the dashboard offers.
type DateRange string

const (
	RangeLifetime   DateRange = "lifetime"
	RangeLast7Days  DateRange = "last_7_days"
	RangeLast30Days DateRange = "last_30_days"
	RangeYearly     DateRange = "yearly"
	RangeCustom     DateRange = "custom"
)

// ParseDateRange maps the labels and slugs clients send onto a preset.
// Unrecognized input means no date filtering.
func ParseDateRange(s string) DateRange {
	switch strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "_") {
	case "last_7_days", "last7days", "7d":
		return RangeLast7Days
	case "last_30_days", "last30days", "30d":
		return RangeLast30Days
	case "yearly", "1y":
		return RangeYearly
	case "custom":
		return RangeCustom
	default:
		return RangeLifetime
	}
}

// Filter is the composed record-set filter: date range, then product
// multi-select, then pincode. Stages apply in that fixed order, each on the
// previous stage's output.
type Filter struct {
	Range DateRange

	// From and To bound a custom range; both must be set for the range to
	// apply. To is inclusive through end of day.
	From *time.Time
	To   *time.Time

	// Products keeps only records whose product matches one of the selected
	// values exactly (after trimming). Empty selection keeps everything.
	Products []string

	// Pincode keeps only records of one pincode. "" and "All" keep
	// everything.
	Pincode string
}

// Apply runs the filter pipeline against a record snapshot. now anchors the
// relative presets; comparisons are date-only on both sides. Records without
// a parseable date survive only the Lifetime range.
func (f Filter) Apply(records []domain.Order, now time.Time) []domain.Order {
	out := f.applyDateRange(records, now)
	out = f.applyProducts(out)
	return f.applyPincode(out)
}

func (f Filter) applyDateRange(records []domain.Order, now time.Time) []domain.Order {
	start, end, ok := f.window(now)
	if !ok {
		return records
	}

	out := make([]domain.Order, 0, len(records))
	for _, r := range records {
		day, hasDate := r.DateOnly()
		if !hasDate {
			continue
		}
		if day.Before(start) || day.After(end) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// window resolves the active preset to an inclusive [start, end] date-only
// window. ok is false when no date filtering applies.
func (f Filter) window(now time.Time) (start, end time.Time, ok bool) {
	today := dateOnly(now)

	switch f.Range {
	case RangeLast7Days:
		// Exactly 7 calendar days including today.
		return today.AddDate(0, 0, -6), today, true
	case RangeLast30Days:
		return today.AddDate(0, 0, -29), today, true
	case RangeYearly:
		return today.AddDate(-1, 0, 0), today, true
	case RangeCustom:
		if f.From == nil || f.To == nil {
			return time.Time{}, time.Time{}, false
		}
		// End date is inclusive through end of day; with date-only
		// comparison that is simply its calendar date.
		return dateOnly(*f.From), dateOnly(*f.To), true
	default:
		return time.Time{}, time.Time{}, false
	}
}

func (f Filter) applyProducts(records []domain.Order) []domain.Order {
	if len(f.Products) == 0 {
		return records
	}

	selected := make(map[string]struct{}, len(f.Products))
	for _, p := range f.Products {
		if p = strings.TrimSpace(p); p != "" {
			selected[p] = struct{}{}
		}
	}
	if len(selected) == 0 {
		return records
	}

	out := make([]domain.Order, 0, len(records))
	for _, r := range records {
		if _, ok := selected[strings.TrimSpace(r.Product)]; ok {
			out = append(out, r)
		}
	}
	return out
}

func (f Filter) applyPincode(records []domain.Order) []domain.Order {
	pincode := strings.TrimSpace(f.Pincode)
	if pincode == "" || strings.EqualFold(pincode, "all") {
		return records
	}

	out := make([]domain.Order, 0, len(records))
	for _, r := range records {
		if strings.TrimSpace(r.Pincode) == pincode {
			out = append(out, r)
		}
	}
	return out
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
