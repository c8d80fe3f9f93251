// internal/analytics/topn.go
package analytics

import (
	"sort"
	"strings"

	"github.com/shubhankar-shipowl/Analytics-Dashboard-sub001/internal/domain"
)

// Dimension selects the grouping field of a ranking.
type Dimension string

const (
	DimensionProduct Dimension = "product"
	DimensionCity    Dimension = "city"
)

// Metric selects the ranking key.
type Metric string

const (
	MetricOrders  Metric = "orders"
	MetricRevenue Metric = "revenue"
)

// DefaultRankLimit caps rankings when the caller does not ask for a
// specific N.
const DefaultRankLimit = 10

// RankOptions parameterize a top-N ranking. The zero value ranks by order
// count, descending, limited to DefaultRankLimit.
type RankOptions struct {
	Metric    Metric
	Limit     int
	Ascending bool // "bottom N" mode
}

// TopByDimension groups records by the given dimension, sums orders and
// revenue, sorts by the requested metric and truncates to N. The sort is
// stable so equal groups keep their order of first appearance.
func TopByDimension(records []domain.Order, dim Dimension, opts RankOptions) []DimensionStats {
	g := newGrouper()
	for _, r := range records {
		g.add(dimensionValue(&r, dim), r.Amount)
	}

	out := g.stats()

	metric := func(s DimensionStats) float64 {
		if opts.Metric == MetricRevenue {
			return s.Revenue
		}
		return float64(s.Orders)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if opts.Ascending {
			return metric(out[i]) < metric(out[j])
		}
		return metric(out[i]) > metric(out[j])
	})

	limit := opts.Limit
	if limit <= 0 {
		limit = DefaultRankLimit
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// TopProducts ranks products.
func TopProducts(records []domain.Order, opts RankOptions) []DimensionStats {
	return TopByDimension(records, DimensionProduct, opts)
}

// TopCities ranks cities.
func TopCities(records []domain.Order, opts RankOptions) []DimensionStats {
	return TopByDimension(records, DimensionCity, opts)
}

// TopProductsForPincode ranks products among records of a single pincode.
func TopProductsForPincode(records []domain.Order, pincode string, opts RankOptions) []DimensionStats {
	pincode = strings.TrimSpace(pincode)
	subset := make([]domain.Order, 0, len(records))
	for _, r := range records {
		if strings.TrimSpace(r.Pincode) == pincode {
			subset = append(subset, r)
		}
	}
	return TopByDimension(subset, DimensionProduct, opts)
}

func dimensionValue(r *domain.Order, dim Dimension) string {
	switch dim {
	case DimensionCity:
		return r.City
	default:
		return r.Product
	}
}
