// internal/analytics/pincode.go
package analytics

import (
	"sort"
	"strings"

	"github.com/shubhankar-shipowl/Analytics-Dashboard-sub001/internal/domain"
	"github.com/shubhankar-shipowl/Analytics-Dashboard-sub001/pkg/logger"
)

// Good/bad ratio thresholds, both strict: a pair at exactly 60 is not good
// and a pair at exactly 20 is not bad. The band in between is discarded.
const (
	goodRatioThreshold = 60
	badRatioThreshold  = 20
)

// ScorePincodes identifies reliable and unreliable (product, pincode)
// delivery combinations. Low-volume pincodes are suppressed with a
// per-product adaptive gate instead of a hard-coded floor: a pair survives
// only if its actual orders (total minus cancelled) exceed the median actual
// orders across that product's pincodes. When the median is 0 any pair with
// at least one actual order survives.
//
// Pass product to restrict scoring to a single product, or "" for all.
func ScorePincodes(records []domain.Order, product string) PincodePerformance {
	product = strings.TrimSpace(product)

	type key struct{ product, pincode string }
	var (
		order     []key
		total     = make(map[key]int)
		cancelled = make(map[key]int)
		delivered = make(map[key]int)
	)

	for _, r := range records {
		if product != "" && strings.TrimSpace(r.Product) != product {
			continue
		}
		k := key{r.Product, r.Pincode}
		if _, seen := total[k]; !seen {
			order = append(order, k)
		}
		total[k]++
		if domain.IsCancelled(r.Status) {
			cancelled[k]++
		}
		if domain.IsDelivered(r.Status) {
			delivered[k]++
		}
	}

	// Per-product median of actual orders, over pincodes that have any.
	actualByProduct := make(map[string][]int)
	for _, k := range order {
		if actual := total[k] - cancelled[k]; actual > 0 {
			actualByProduct[k.product] = append(actualByProduct[k.product], actual)
		}
	}
	medians := make(map[string]float64, len(actualByProduct))
	for p, actuals := range actualByProduct {
		medians[p] = median(actuals)
	}

	var perf PincodePerformance
	dropped := 0

	for _, k := range order {
		score := PincodeScore{
			Product:         k.product,
			Pincode:         k.pincode,
			TotalOrders:     total[k],
			CancelledOrders: cancelled[k],
			DeliveredOrders: delivered[k],
			ActualOrders:    total[k] - cancelled[k],
		}
		if score.ActualOrders > 0 {
			score.Ratio = roundFloat(float64(score.DeliveredOrders)/float64(score.ActualOrders)*100, 2)
		}

		m := medians[k.product]
		survives := float64(score.ActualOrders) > m
		if m == 0 {
			survives = score.ActualOrders > 0
		}
		if !survives {
			dropped++
			continue
		}

		switch {
		case score.Ratio > goodRatioThreshold:
			perf.Good = append(perf.Good, score)
		case score.Ratio < badRatioThreshold:
			perf.Bad = append(perf.Bad, score)
		}
	}

	sort.SliceStable(perf.Good, func(i, j int) bool { return perf.Good[i].Ratio > perf.Good[j].Ratio })
	sort.SliceStable(perf.Bad, func(i, j int) bool { return perf.Bad[i].Ratio < perf.Bad[j].Ratio })

	log := logger.Component("analytics")
	log.Debug().
		Int("pairs", len(order)).
		Int("below_median", dropped).
		Int("good", len(perf.Good)).
		Int("bad", len(perf.Bad)).
		Msg("scored pincode delivery performance")

	return perf
}
