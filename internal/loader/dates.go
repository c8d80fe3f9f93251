// internal/loader/dates.go
package loader

import (
	"strconv"
	"strings"
	"time"
)

// excelEpoch is the conventional spreadsheet serial-date epoch, 1899-12-30.
// The two-day offset from 1900-01-01 absorbs the historical 1900 leap-year
// bug, so serials from real exports land on the calendar dates users see in
// their spreadsheet.
var excelEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

const msPerDay = 86400000

// isoLayouts are tried, in order, before falling back to the locale
// day-first convention.
var isoLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006/01/02",
}

// ParseOrderDate coerces a raw cell value into an order date. Already-typed
// dates pass through; strings go through ISO layouts, then the DD/MM/YYYY
// locale convention; plain numbers are spreadsheet day serials. Anything
// unparseable yields nil, never a sentinel date.
func ParseOrderDate(v any) *time.Time {
	switch val := v.(type) {
	case nil:
		return nil
	case time.Time:
		if val.IsZero() {
			return nil
		}
		t := val
		return &t
	case *time.Time:
		return val
	case float64:
		return fromSerial(val)
	case int:
		return fromSerial(float64(val))
	case int64:
		return fromSerial(float64(val))
	case string:
		return parseDateString(val)
	default:
		return nil
	}
}

func parseDateString(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}

	// Numeric strings are serials: cell readers hand raw date cells over as
	// the underlying serial number rendered as text.
	if serial, err := strconv.ParseFloat(s, 64); err == nil {
		return fromSerial(serial)
	}

	return parseDayFirst(s)
}

// parseDayFirst interprets "02/01/2025", "2-1-2025" and friends with the
// day-first locale convention.
func parseDayFirst(s string) *time.Time {
	// Drop any time-of-day suffix before splitting the date part.
	if i := strings.IndexByte(s, ' '); i > 0 {
		s = s[:i]
	}

	sep := "/"
	if !strings.Contains(s, sep) {
		sep = "-"
	}
	parts := strings.Split(s, sep)
	if len(parts) != 3 {
		return nil
	}

	day, err1 := strconv.Atoi(strings.TrimSpace(parts[0]))
	month, err2 := strconv.Atoi(strings.TrimSpace(parts[1]))
	year, err3 := strconv.Atoi(strings.TrimSpace(parts[2]))
	if err1 != nil || err2 != nil || err3 != nil {
		return nil
	}
	if year < 100 {
		year += 2000
	}
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return nil
	}

	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes out-of-range days (31/04 -> 01/05); treat that as
	// unparseable rather than silently shifting the date.
	if t.Day() != day || int(t.Month()) != month {
		return nil
	}
	return &t
}

// fromSerial converts a spreadsheet day serial by adding serial*86400000
// milliseconds to the 1899-12-30 epoch. Serial 1 is 1899-12-31.
func fromSerial(serial float64) *time.Time {
	if serial <= 0 {
		return nil
	}
	ms := int64(serial * msPerDay)
	t := excelEpoch.Add(time.Duration(ms) * time.Millisecond)
	return &t
}
