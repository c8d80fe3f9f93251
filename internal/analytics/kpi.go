// internal/analytics/kpi.go
package analytics

import (
	"github.com/shubhankar-shipowl/Analytics-Dashboard-sub001/internal/domain"
)

// Summary computes the headline KPI row.
//
// Revenue intentionally sums delivered orders only while the order count uses
// the wider total-orders taxonomy, so the average order value divides
// delivered revenue by counted orders. That mirrors how the business reads
// the dashboard; see domain/status.go.
func Summary(records []domain.Order) KPISummary {
	var s KPISummary

	for _, r := range records {
		if domain.CountsTowardTotalOrders(r.Status) {
			s.TotalOrders++
		}
		if domain.IsDelivered(r.Status) {
			s.TotalRevenue += r.Amount
		}
		if domain.IsRTO(r.Status) {
			s.RTOCount++
		}
		if domain.IsRTS(r.Status) {
			s.RTSCount++
		}
	}

	s.TotalRevenue = roundFloat(s.TotalRevenue, 2)
	if s.TotalOrders > 0 {
		s.AvgOrderValue = roundFloat(s.TotalRevenue/float64(s.TotalOrders), 2)
	}
	s.TopPincode = topPincodeByDeliveries(records)

	return s
}

// topPincodeByDeliveries ranks pincodes by delivered-order count and returns
// the winner, first-seen pincode winning ties.
func topPincodeByDeliveries(records []domain.Order) string {
	var (
		keys  []string
		count = make(map[string]int)
	)

	for _, r := range records {
		if !domain.IsDelivered(r.Status) {
			continue
		}
		if _, seen := count[r.Pincode]; !seen {
			keys = append(keys, r.Pincode)
		}
		count[r.Pincode]++
	}

	top := ""
	best := 0
	for _, key := range keys {
		if count[key] > best {
			top = key
			best = count[key]
		}
	}
	return top
}
