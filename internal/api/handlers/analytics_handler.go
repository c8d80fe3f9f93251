package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/shubhankar-shipowl/Analytics-Dashboard-sub001/internal/analytics"
	"github.com/shubhankar-shipowl/Analytics-Dashboard-sub001/internal/service"
)

type AnalyticsHandler struct {
	service *service.AnalyticsService
}

func NewAnalyticsHandler(service *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{service: service}
}

// parseFilter builds the filter pipeline state from query params. Product
// selections are accepted both as repeated params and as comma-separated
// strings, flattened so clients can use either style:
//
//	?products=A&products=B
//	?products=A,B
func (h *AnalyticsHandler) parseFilter(c *gin.Context) analytics.Filter {
	filter := analytics.Filter{
		Range:   analytics.ParseDateRange(c.Query("range")),
		Pincode: strings.TrimSpace(c.Query("pincode")),
	}

	if from := strings.TrimSpace(c.Query("from")); from != "" {
		if t, err := time.Parse("2006-01-02", from); err == nil {
			filter.From = &t
		}
	}
	if to := strings.TrimSpace(c.Query("to")); to != "" {
		if t, err := time.Parse("2006-01-02", to); err == nil {
			filter.To = &t
		}
	}
	if filter.From != nil && filter.To != nil && filter.Range == analytics.RangeLifetime {
		filter.Range = analytics.RangeCustom
	}

	rawProducts := c.QueryArray("products")
	if len(rawProducts) == 0 {
		if single := strings.TrimSpace(c.Query("product")); single != "" {
			rawProducts = []string{single}
		}
	}

	seen := make(map[string]struct{})
	for _, v := range rawProducts {
		for _, part := range strings.Split(v, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			if _, ok := seen[part]; ok {
				continue
			}
			seen[part] = struct{}{}
			filter.Products = append(filter.Products, part)
		}
	}

	return filter
}

func (h *AnalyticsHandler) parseRankOptions(c *gin.Context) analytics.RankOptions {
	opts := analytics.RankOptions{Metric: analytics.MetricOrders}

	if metric := strings.ToLower(strings.TrimSpace(c.Query("metric"))); metric == "revenue" {
		opts.Metric = analytics.MetricRevenue
	}
	if limit, err := strconv.Atoi(c.DefaultQuery("limit", "10")); err == nil && limit > 0 {
		opts.Limit = limit
	}
	if order := strings.ToLower(strings.TrimSpace(c.Query("order"))); order == "asc" || order == "bottom" {
		opts.Ascending = true
	}

	return opts
}

func (h *AnalyticsHandler) GetReport(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Report(c.Request.Context(), h.parseFilter(c)))
}

func (h *AnalyticsHandler) GetSummary(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Summary(c.Request.Context(), h.parseFilter(c)))
}

func (h *AnalyticsHandler) GetStatusDistribution(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"data": h.service.StatusDistribution(c.Request.Context(), h.parseFilter(c)),
	})
}

func (h *AnalyticsHandler) GetPaymentDistribution(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"data": h.service.PaymentDistribution(c.Request.Context(), h.parseFilter(c)),
	})
}

func (h *AnalyticsHandler) GetPartners(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"data": h.service.Partners(c.Request.Context(), h.parseFilter(c)),
	})
}

func (h *AnalyticsHandler) GetDeliveryRatio(c *gin.Context) {
	overall, partners := h.service.DeliveryRatios(c.Request.Context(), h.parseFilter(c))
	c.JSON(http.StatusOK, gin.H{
		"overall":  overall,
		"partners": partners,
	})
}

func (h *AnalyticsHandler) GetPriceRanges(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"data": h.service.PriceRanges(c.Request.Context(), h.parseFilter(c)),
	})
}

func (h *AnalyticsHandler) GetDailyTrend(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"data": h.service.DailyTrend(c.Request.Context(), h.parseFilter(c)),
	})
}

func (h *AnalyticsHandler) GetTopProducts(c *gin.Context) {
	filter := h.parseFilter(c)
	// A ranking restricted to one pincode uses top_pincode so the regular
	// pincode filter stage stays untouched.
	pincode := strings.TrimSpace(c.Query("top_pincode"))
	c.JSON(http.StatusOK, gin.H{
		"data": h.service.TopProducts(c.Request.Context(), filter, pincode, h.parseRankOptions(c)),
	})
}

func (h *AnalyticsHandler) GetTopCities(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"data": h.service.TopCities(c.Request.Context(), h.parseFilter(c), h.parseRankOptions(c)),
	})
}

func (h *AnalyticsHandler) GetPincodePerformance(c *gin.Context) {
	product := strings.TrimSpace(c.Query("score_product"))
	c.JSON(http.StatusOK, h.service.PincodePerformance(c.Request.Context(), h.parseFilter(c), product))
}
