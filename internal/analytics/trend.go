// internal/analytics/trend.go
package analytics

import (
	"sort"

	"github.com/shubhankar-shipowl/Analytics-Dashboard-sub001/internal/domain"
)

// DailyTrend buckets records by calendar date and sums order count and
// revenue per day, sorted ascending by date. Records without a parseable
// date are left out of the series.
func DailyTrend(records []domain.Order) []TrendPoint {
	var (
		keys    []string
		orders  = make(map[string]int)
		revenue = make(map[string]float64)
	)

	for _, r := range records {
		day, ok := r.DateOnly()
		if !ok {
			continue
		}
		key := day.Format("2006-01-02")
		if _, seen := orders[key]; !seen {
			keys = append(keys, key)
		}
		orders[key]++
		revenue[key] += r.Amount
	}

	sort.Strings(keys)

	out := make([]TrendPoint, 0, len(keys))
	for _, key := range keys {
		out = append(out, TrendPoint{
			Date:    key,
			Orders:  orders[key],
			Revenue: roundFloat(revenue[key], 2),
		})
	}
	return out
}
