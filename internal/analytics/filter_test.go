package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/shubhankar-shipowl/Analytics-Dashboard-sub001/internal/domain"
)

var anchor = time.Date(2025, 3, 10, 15, 30, 0, 0, time.UTC)

func TestParseDateRange(t *testing.T) {
	assert.Equal(t, RangeLast7Days, ParseDateRange("Last 7 Days"))
	assert.Equal(t, RangeLast7Days, ParseDateRange("last_7_days"))
	assert.Equal(t, RangeLast7Days, ParseDateRange("7d"))
	assert.Equal(t, RangeLast30Days, ParseDateRange("last 30 days"))
	assert.Equal(t, RangeYearly, ParseDateRange("Yearly"))
	assert.Equal(t, RangeCustom, ParseDateRange("custom"))
	assert.Equal(t, RangeLifetime, ParseDateRange("lifetime"))
	assert.Equal(t, RangeLifetime, ParseDateRange(""))
	assert.Equal(t, RangeLifetime, ParseDateRange("whatever"))
}

func TestFilterLast7DaysBoundary(t *testing.T) {
	records := []domain.Order{
		{OrderID: "in-today", OrderDate: day(2025, 3, 10)},
		{OrderID: "in-edge", OrderDate: day(2025, 3, 4)}, // 7th day including today
		{OrderID: "out-old", OrderDate: day(2025, 3, 3)},
		{OrderID: "out-future", OrderDate: day(2025, 3, 11)},
		{OrderID: "out-undated"},
	}

	got := Filter{Range: RangeLast7Days}.Apply(records, anchor)

	ids := orderIDs(got)
	assert.Equal(t, []string{"in-today", "in-edge"}, ids)
}

func TestFilterLast30Days(t *testing.T) {
	records := []domain.Order{
		{OrderID: "in", OrderDate: day(2025, 2, 9)}, // 30th day including today
		{OrderID: "out", OrderDate: day(2025, 2, 8)},
	}

	got := Filter{Range: RangeLast30Days}.Apply(records, anchor)
	assert.Equal(t, []string{"in"}, orderIDs(got))
}

func TestFilterYearly(t *testing.T) {
	records := []domain.Order{
		{OrderID: "in", OrderDate: day(2024, 3, 10)},
		{OrderID: "out", OrderDate: day(2024, 3, 9)},
	}

	got := Filter{Range: RangeYearly}.Apply(records, anchor)
	assert.Equal(t, []string{"in"}, orderIDs(got))
}

func TestFilterCustomRangeInclusiveEnd(t *testing.T) {
	records := []domain.Order{
		{OrderID: "start", OrderDate: day(2025, 1, 1)},
		{OrderID: "end", OrderDate: day(2025, 1, 31)},
		{OrderID: "before", OrderDate: day(2024, 12, 31)},
		{OrderID: "after", OrderDate: day(2025, 2, 1)},
	}

	f := Filter{Range: RangeCustom, From: day(2025, 1, 1), To: day(2025, 1, 31)}
	got := f.Apply(records, anchor)
	assert.Equal(t, []string{"start", "end"}, orderIDs(got))
}

func TestFilterCustomRangeIgnoresTimeOfDay(t *testing.T) {
	late := time.Date(2025, 1, 31, 23, 55, 0, 0, time.UTC)
	records := []domain.Order{{OrderID: "late", OrderDate: &late}}

	f := Filter{Range: RangeCustom, From: day(2025, 1, 1), To: day(2025, 1, 31)}
	got := f.Apply(records, anchor)
	assert.Equal(t, []string{"late"}, orderIDs(got))
}

func TestFilterIncompleteCustomRangeIsIdentity(t *testing.T) {
	records := []domain.Order{
		{OrderID: "dated", OrderDate: day(2020, 1, 1)},
		{OrderID: "undated"},
	}

	got := Filter{Range: RangeCustom, From: day(2025, 1, 1)}.Apply(records, anchor)
	assert.Equal(t, []string{"dated", "undated"}, orderIDs(got))
}

func TestFilterLifetimeKeepsUndated(t *testing.T) {
	records := []domain.Order{
		{OrderID: "dated", OrderDate: day(2019, 6, 1)},
		{OrderID: "undated"},
	}

	got := Filter{}.Apply(records, anchor)
	assert.Equal(t, []string{"dated", "undated"}, orderIDs(got))
}

func TestFilterProducts(t *testing.T) {
	records := []domain.Order{
		{OrderID: "a", Product: "Bottle"},
		{OrderID: "b", Product: " Bottle "},
		{OrderID: "c", Product: "Mug"},
		{OrderID: "d", Product: "Plate"},
	}

	got := Filter{Products: []string{"Bottle", "Mug"}}.Apply(records, anchor)
	assert.Equal(t, []string{"a", "b", "c"}, orderIDs(got))

	// An all-blank selection keeps everything.
	got = Filter{Products: []string{" ", ""}}.Apply(records, anchor)
	assert.Len(t, got, 4)
}

func TestFilterPincode(t *testing.T) {
	records := []domain.Order{
		{OrderID: "a", Pincode: "411001"},
		{OrderID: "b", Pincode: "560001"},
	}

	got := Filter{Pincode: "411001"}.Apply(records, anchor)
	assert.Equal(t, []string{"a"}, orderIDs(got))

	got = Filter{Pincode: "All"}.Apply(records, anchor)
	assert.Len(t, got, 2)

	got = Filter{Pincode: "  "}.Apply(records, anchor)
	assert.Len(t, got, 2)
}

func TestFilterStagesCompose(t *testing.T) {
	records := []domain.Order{
		{OrderID: "keep", OrderDate: day(2025, 3, 9), Product: "Bottle", Pincode: "411001"},
		{OrderID: "wrong-date", OrderDate: day(2025, 1, 1), Product: "Bottle", Pincode: "411001"},
		{OrderID: "wrong-product", OrderDate: day(2025, 3, 9), Product: "Mug", Pincode: "411001"},
		{OrderID: "wrong-pin", OrderDate: day(2025, 3, 9), Product: "Bottle", Pincode: "560001"},
	}

	f := Filter{Range: RangeLast7Days, Products: []string{"Bottle"}, Pincode: "411001"}
	got := f.Apply(records, anchor)
	assert.Equal(t, []string{"keep"}, orderIDs(got))
}

func orderIDs(records []domain.Order) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.OrderID)
	}
	return out
}
