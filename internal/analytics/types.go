// Package analytics derives dashboard views from normalized order records.
// Every function here is pure and total: it never mutates its input, never
// fails, and returns an empty or zeroed result on an empty record set. The
// caller is expected to run the record set through a Filter first.
package analytics

// KPISummary is the headline card row of the dashboard.
//
// TotalOrders and TotalRevenue use different status taxonomies on purpose:
// totals count the CountsTowardTotalOrders set while revenue sums delivered
// orders only.
type KPISummary struct {
	TotalOrders   int     `json:"total_orders"`
	TotalRevenue  float64 `json:"total_revenue"`
	AvgOrderValue float64 `json:"avg_order_value"`
	RTOCount      int     `json:"rto_count"`
	RTSCount      int     `json:"rts_count"`
	TopPincode    string  `json:"top_pincode"`
}

// StatusCount is one row of the order-status distribution.
type StatusCount struct {
	Status     string  `json:"status"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// PaymentCount is one row of the payment-method distribution.
type PaymentCount struct {
	Method     string  `json:"method"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// PartnerStats is one row of the fulfillment-partner analysis.
type PartnerStats struct {
	Partner string  `json:"partner"`
	Orders  int     `json:"orders"`
	Revenue float64 `json:"revenue"`
}

// DeliveryRatio is the delivered share of ratio-eligible orders.
type DeliveryRatio struct {
	Delivered int     `json:"delivered"`
	Counted   int     `json:"counted"`
	Ratio     float64 `json:"ratio"`
}

// PartnerRatio is the per-partner variant of DeliveryRatio.
type PartnerRatio struct {
	Partner   string  `json:"partner"`
	Delivered int     `json:"delivered"`
	Counted   int     `json:"counted"`
	Ratio     float64 `json:"ratio"`
}

// PriceBucket is one row of the price-range distribution.
type PriceBucket struct {
	Range string `json:"range"`
	Count int    `json:"count"`
}

// TrendPoint is one day of the daily trend series.
type TrendPoint struct {
	Date    string  `json:"date"` // ISO calendar date
	Orders  int     `json:"orders"`
	Revenue float64 `json:"revenue"`
}

// DimensionStats is one row of a top-N ranking (products, cities).
type DimensionStats struct {
	Name    string  `json:"name"`
	Orders  int     `json:"orders"`
	Revenue float64 `json:"revenue"`
}

// PincodeScore is one (product, pincode) pair from the pincode scorer.
type PincodeScore struct {
	Product         string  `json:"product"`
	Pincode         string  `json:"pincode"`
	TotalOrders     int     `json:"total_orders"`
	CancelledOrders int     `json:"cancelled_orders"`
	DeliveredOrders int     `json:"delivered_orders"`
	ActualOrders    int     `json:"actual_orders"`
	Ratio           float64 `json:"ratio"`
}

// PincodePerformance partitions surviving (product, pincode) pairs into
// reliable and unreliable sets. Pairs with a ratio inside [20, 60] belong to
// neither.
type PincodePerformance struct {
	Good []PincodeScore `json:"good"`
	Bad  []PincodeScore `json:"bad"`
}

// Report bundles every derived view into the payload the presentation layer
// renders in one round trip.
type Report struct {
	Summary               KPISummary         `json:"summary"`
	StatusDistribution    []StatusCount      `json:"status_distribution"`
	PaymentDistribution   []PaymentCount     `json:"payment_distribution"`
	Partners              []PartnerStats     `json:"partners"`
	DeliveryRatio         DeliveryRatio      `json:"delivery_ratio"`
	PartnerDeliveryRatios []PartnerRatio     `json:"partner_delivery_ratios"`
	PriceRanges           []PriceBucket      `json:"price_ranges"`
	DailyTrend            []TrendPoint       `json:"daily_trend"`
	TopProducts           []DimensionStats   `json:"top_products"`
	TopCities             []DimensionStats   `json:"top_cities"`
	PincodePerformance    PincodePerformance `json:"pincode_performance"`
}
