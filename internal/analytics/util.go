// internal/analytics/util.go
package analytics

import (
	"math"
	"sort"
)

// roundFloat rounds v to the given number of decimal places.
func roundFloat(v float64, decimals int) float64 {
	if decimals <= 0 {
		return math.Round(v)
	}

	factor := math.Pow(10, float64(decimals))
	return math.Round(v*factor) / factor
}

// percentage is part/total*100 rounded to two decimals, 0 when total is 0.
func percentage(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return roundFloat(float64(part)/float64(total)*100, 2)
}

// median returns the median of values; for an even count it averages the two
// middle values after ascending sort. The input slice is not modified.
func median(values []int) float64 {
	if len(values) == 0 {
		return 0
	}

	sorted := make([]int, len(values))
	copy(sorted, values)
	sort.Ints(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return float64(sorted[mid])
	}
	return float64(sorted[mid-1]+sorted[mid]) / 2
}

// grouper accumulates per-key order counts and revenue while remembering the
// order keys were first seen in. Rankings sort with sort.SliceStable on top
// of this encounter order, which is what makes tie-breaks reproducible.
type grouper struct {
	keys    []string
	orders  map[string]int
	revenue map[string]float64
}

func newGrouper() *grouper {
	return &grouper{
		orders:  make(map[string]int),
		revenue: make(map[string]float64),
	}
}

func (g *grouper) add(key string, amount float64) {
	if _, seen := g.orders[key]; !seen {
		g.keys = append(g.keys, key)
	}
	g.orders[key]++
	g.revenue[key] += amount
}

func (g *grouper) stats() []DimensionStats {
	out := make([]DimensionStats, 0, len(g.keys))
	for _, key := range g.keys {
		out = append(out, DimensionStats{
			Name:    key,
			Orders:  g.orders[key],
			Revenue: roundFloat(g.revenue[key], 2),
		})
	}
	return out
}
