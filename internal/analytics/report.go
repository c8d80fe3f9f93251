// internal/analytics/report.go
package analytics

import (
	"github.com/shubhankar-shipowl/Analytics-Dashboard-sub001/internal/domain"
)

// BuildReport computes every dashboard view over an already-filtered record
// set. Like everything else in this package it is pure; callers can invoke
// it repeatedly against the same snapshot from any goroutine.
func BuildReport(records []domain.Order) Report {
	return Report{
		Summary:               Summary(records),
		StatusDistribution:    StatusDistribution(records),
		PaymentDistribution:   PaymentDistribution(records),
		Partners:              PartnerSummary(records),
		DeliveryRatio:         OverallDeliveryRatio(records),
		PartnerDeliveryRatios: PartnerDeliveryRatios(records),
		PriceRanges:           PriceRangeDistribution(records),
		DailyTrend:            DailyTrend(records),
		TopProducts:           TopProducts(records, RankOptions{}),
		TopCities:             TopCities(records, RankOptions{}),
		PincodePerformance:    ScorePincodes(records, ""),
	}
}
