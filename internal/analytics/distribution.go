// internal/analytics/distribution.go
package analytics

import (
	"sort"
	"strings"

	"github.com/shubhankar-shipowl/Analytics-Dashboard-sub001/internal/domain"
)

// StatusDistribution groups records by their raw (trimmed) status label and
// returns counts with percentage of the grand total, sorted by count
// descending. Ties keep encounter order.
func StatusDistribution(records []domain.Order) []StatusCount {
	var (
		keys  []string
		count = make(map[string]int)
	)

	for _, r := range records {
		status := strings.TrimSpace(r.Status)
		if status == "" {
			status = domain.UnknownLabel
		}
		if _, seen := count[status]; !seen {
			keys = append(keys, status)
		}
		count[status]++
	}

	out := make([]StatusCount, 0, len(keys))
	for _, key := range keys {
		out = append(out, StatusCount{
			Status:     key,
			Count:      count[key],
			Percentage: percentage(count[key], len(records)),
		})
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out
}

// PaymentDistribution buckets records into COD, PPD and Other. Only non-zero
// buckets are emitted; percentages are relative to the full record count.
func PaymentDistribution(records []domain.Order) []PaymentCount {
	count := make(map[string]int, 3)
	for _, r := range records {
		count[domain.ClassifyPayment(r.PaymentMethod)]++
	}

	out := make([]PaymentCount, 0, 3)
	for _, method := range []string{domain.PaymentCOD, domain.PaymentPPD, domain.PaymentOther} {
		if count[method] == 0 {
			continue
		}
		out = append(out, PaymentCount{
			Method:     method,
			Count:      count[method],
			Percentage: percentage(count[method], len(records)),
		})
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out
}

// priceRanges are the fixed bucket boundaries of the price distribution,
// lower-inclusive and upper-exclusive. The last bucket is open-ended.
var priceRanges = []struct {
	label string
	low   float64
	high  float64
}{
	{"0-500", 0, 500},
	{"500-1000", 500, 1000},
	{"1000-2000", 1000, 2000},
	{"2000-5000", 2000, 5000},
	{"5000-10000", 5000, 10000},
	{"10000+", 10000, 0},
}

// PriceRangeDistribution counts records per fixed price bucket. Each record
// lands in exactly one bucket (first match wins); empty buckets are omitted.
func PriceRangeDistribution(records []domain.Order) []PriceBucket {
	count := make([]int, len(priceRanges))

	for _, r := range records {
		for i, bucket := range priceRanges {
			if r.Amount < bucket.low {
				continue
			}
			if bucket.high > 0 && r.Amount >= bucket.high {
				continue
			}
			count[i]++
			break
		}
	}

	out := make([]PriceBucket, 0, len(priceRanges))
	for i, bucket := range priceRanges {
		if count[i] == 0 {
			continue
		}
		out = append(out, PriceBucket{Range: bucket.label, Count: count[i]})
	}
	return out
}
