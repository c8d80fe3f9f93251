// internal/api/api.go
package api

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/shubhankar-shipowl/Analytics-Dashboard-sub001/internal/api/handlers"
	"github.com/shubhankar-shipowl/Analytics-Dashboard-sub001/internal/service"
)

func NewRouter(svc *service.AnalyticsService, allowedOrigins []string) *gin.Engine {
	router := gin.New()

	// Add middleware
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	defaultOrigins := []string{"http://localhost:3000", "http://127.0.0.1:3000"}
	corsConfig := cors.Config{
		AllowOrigins:     defaultOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(allowedOrigins) > 0 {
		normalizedOrigins, allowAll := normalizeAllowedOrigins(allowedOrigins)
		if allowAll {
			corsConfig.AllowOrigins = nil
			corsConfig.AllowOriginFunc = func(origin string) bool { return true }
		} else if len(normalizedOrigins) > 0 {
			corsConfig.AllowOrigins = normalizedOrigins
		}
	}
	router.Use(cors.New(corsConfig))

	apiGroup := router.Group("/api/v1")

	if svc != nil {
		analyticsHandler := handlers.NewAnalyticsHandler(svc)
		analyticsGroup := apiGroup.Group("/analytics")
		{
			analyticsGroup.GET("/report", analyticsHandler.GetReport)
			analyticsGroup.GET("/summary", analyticsHandler.GetSummary)
			analyticsGroup.GET("/status_distribution", analyticsHandler.GetStatusDistribution)
			analyticsGroup.GET("/payment_distribution", analyticsHandler.GetPaymentDistribution)
			analyticsGroup.GET("/partners", analyticsHandler.GetPartners)
			analyticsGroup.GET("/delivery_ratio", analyticsHandler.GetDeliveryRatio)
			analyticsGroup.GET("/price_ranges", analyticsHandler.GetPriceRanges)
			analyticsGroup.GET("/trend", analyticsHandler.GetDailyTrend)
			analyticsGroup.GET("/top_products", analyticsHandler.GetTopProducts)
			analyticsGroup.GET("/top_cities", analyticsHandler.GetTopCities)
			analyticsGroup.GET("/pincode_performance", analyticsHandler.GetPincodePerformance)
		}

		ordersHandler := handlers.NewOrdersHandler(svc)
		ordersGroup := apiGroup.Group("/orders")
		{
			ordersGroup.POST("/upload", ordersHandler.Upload)
			ordersGroup.POST("/import", ordersHandler.Import)
			ordersGroup.DELETE("", ordersHandler.DeleteAll)
			ordersGroup.GET("/dataset", ordersHandler.DatasetInfo)
			ordersGroup.GET("/products", ordersHandler.GetProducts)
			ordersGroup.GET("/pincodes", ordersHandler.GetPincodes)
		}
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return router
}

func normalizeAllowedOrigins(origins []string) ([]string, bool) {
	var (
		parsed   []string
		allowAll bool
	)
	for _, origin := range origins {
		parts := strings.Split(origin, ",")
		for _, part := range parts {
			trimmed := strings.TrimSpace(part)
			if trimmed == "" {
				continue
			}
			if trimmed == "*" {
				allowAll = true
				continue
			}
			parsed = append(parsed, trimmed)
		}
	}
	return parsed, allowAll
}
