// internal/analytics/partners.go
package analytics

import (
	"sort"

	"github.com/shubhankar-shipowl/Analytics-Dashboard-sub001/internal/domain"
)

// PartnerSummary groups records by fulfillment partner and sums order count
// and revenue, unfiltered by status, sorted by order count descending.
func PartnerSummary(records []domain.Order) []PartnerStats {
	g := newGrouper()
	for _, r := range records {
		g.add(r.FulfillmentPartner, r.Amount)
	}

	stats := g.stats()
	out := make([]PartnerStats, 0, len(stats))
	for _, s := range stats {
		out = append(out, PartnerStats{Partner: s.Name, Orders: s.Orders, Revenue: s.Revenue})
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Orders > out[j].Orders })
	return out
}

// OverallDeliveryRatio computes the delivered share of ratio-eligible
// records. The denominator is the CountsTowardDeliveryRatio set and the
// numerator is the delivered subset of that denominator.
func OverallDeliveryRatio(records []domain.Order) DeliveryRatio {
	var ratio DeliveryRatio

	for _, r := range records {
		if !domain.CountsTowardDeliveryRatio(r.Status) {
			continue
		}
		ratio.Counted++
		if domain.IsDelivered(r.Status) {
			ratio.Delivered++
		}
	}

	ratio.Ratio = percentage(ratio.Delivered, ratio.Counted)
	return ratio
}

// PartnerDeliveryRatios is OverallDeliveryRatio grouped by fulfillment
// partner, sorted by ratio descending (ties keep encounter order).
func PartnerDeliveryRatios(records []domain.Order) []PartnerRatio {
	var (
		keys      []string
		counted   = make(map[string]int)
		delivered = make(map[string]int)
	)

	for _, r := range records {
		if !domain.CountsTowardDeliveryRatio(r.Status) {
			continue
		}
		if _, seen := counted[r.FulfillmentPartner]; !seen {
			keys = append(keys, r.FulfillmentPartner)
		}
		counted[r.FulfillmentPartner]++
		if domain.IsDelivered(r.Status) {
			delivered[r.FulfillmentPartner]++
		}
	}

	out := make([]PartnerRatio, 0, len(keys))
	for _, key := range keys {
		out = append(out, PartnerRatio{
			Partner:   key,
			Delivered: delivered[key],
			Counted:   counted[key],
			Ratio:     percentage(delivered[key], counted[key]),
		})
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Ratio > out[j].Ratio })
	return out
}
