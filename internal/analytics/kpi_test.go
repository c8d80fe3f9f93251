package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/shubhankar-shipowl/Analytics-Dashboard-sub001/internal/domain"
)

// Shared test helpers for the analytics package.

func day(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func delivered(amount float64, pincode string) domain.Order {
	return domain.Order{Status: "Delivered", Amount: amount, Pincode: pincode}
}

func TestSummary(t *testing.T) {
	records := []domain.Order{
		delivered(100, "411001"),
		delivered(200, "411001"),
		delivered(300, "560001"),
		{Status: "RTO", Amount: 150, Pincode: "560001"},
		{Status: "Cancelled", Amount: 999, Pincode: "560001"},
	}

	s := Summary(records)

	// Cancelled is outside the counted taxonomy; RTO is inside it. Revenue
	// and average use delivered amounts only.
	assert.Equal(t, 4, s.TotalOrders)
	assert.Equal(t, 600.0, s.TotalRevenue)
	assert.Equal(t, 150.0, s.AvgOrderValue)
	assert.Equal(t, 1, s.RTOCount)
	assert.Equal(t, 0, s.RTSCount)
	assert.Equal(t, "411001", s.TopPincode)
}

func TestSummaryEmpty(t *testing.T) {
	s := Summary(nil)
	assert.Zero(t, s.TotalOrders)
	assert.Zero(t, s.TotalRevenue)
	assert.Zero(t, s.AvgOrderValue)
	assert.Empty(t, s.TopPincode)
}

func TestSummaryCountsRTSDistinctFromRTO(t *testing.T) {
	records := []domain.Order{
		{Status: "RTS"},
		{Status: "RTO"},
		{Status: "RTO-Dispatched"},
	}

	s := Summary(records)
	assert.Equal(t, 3, s.TotalOrders)
	assert.Equal(t, 1, s.RTSCount)
	assert.Equal(t, 2, s.RTOCount)
}

func TestTopPincodeTieKeepsFirstSeen(t *testing.T) {
	records := []domain.Order{
		delivered(10, "110001"),
		delivered(10, "220002"),
		delivered(10, "110001"),
		delivered(10, "220002"),
	}

	s := Summary(records)
	assert.Equal(t, "110001", s.TopPincode)
}

func TestRoundFloat(t *testing.T) {
	assert.Equal(t, 33.33, roundFloat(33.3333, 2))
	assert.Equal(t, 66.67, roundFloat(66.6666, 2))
	assert.Equal(t, 3.0, roundFloat(3.4, 0))
}

func TestMedian(t *testing.T) {
	assert.Equal(t, 0.0, median(nil))
	assert.Equal(t, 30.0, median([]int{30}))
	assert.Equal(t, 25.0, median([]int{10, 40, 20, 30}))
	assert.Equal(t, 20.0, median([]int{30, 10, 20}))

	// The input must stay untouched.
	in := []int{3, 1, 2}
	median(in)
	assert.Equal(t, []int{3, 1, 2}, in)
}
