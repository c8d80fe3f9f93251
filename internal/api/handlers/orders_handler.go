package handlers

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/shubhankar-shipowl/Analytics-Dashboard-sub001/internal/loader"
	"github.com/shubhankar-shipowl/Analytics-Dashboard-sub001/internal/service"
	"github.com/shubhankar-shipowl/Analytics-Dashboard-sub001/pkg/logger"
)

type OrdersHandler struct {
	service *service.AnalyticsService
}

func NewOrdersHandler(service *service.AnalyticsService) *OrdersHandler {
	return &OrdersHandler{service: service}
}

// Upload accepts an order sheet (xlsx or csv) and replaces the dataset
// wholesale with its contents.
func (h *OrdersHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing file field"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unable to read upload"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unable to read upload"})
		return
	}

	ctx := c.Request.Context()
	contentType := fileHeader.Header.Get("Content-Type")
	h.service.ArchiveUpload(ctx, fileHeader.Filename, data, contentType)

	var rows []loader.RawRow
	switch strings.ToLower(filepath.Ext(fileHeader.Filename)) {
	case ".csv":
		rows, err = loader.ReadCSVReader(bytes.NewReader(data))
	default:
		rows, err = loader.ReadWorkbookReader(bytes.NewReader(data))
	}
	if err != nil {
		log := logger.Component("api")
		log.Error().Err(err).Str("file", fileHeader.Filename).Msg("failed to parse upload")
		c.JSON(http.StatusBadRequest, gin.H{"error": "unable to parse uploaded sheet"})
		return
	}

	snap, err := h.service.ReplaceFromRows(ctx, rows, loader.SourceSpreadsheet)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, loader.ErrEmptySource) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"records": len(snap.Records),
		"version": snap.Version,
	})
}

// Import accepts order rows as a JSON array of objects, the API-payload
// origin of the loader.
func (h *OrdersHandler) Import(c *gin.Context) {
	var payload []map[string]any
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "request body must be an array of row objects"})
		return
	}

	snap, err := h.service.ReplaceFromRows(c.Request.Context(), loader.FromPayload(payload), loader.SourceAPI)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, loader.ErrEmptySource) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"records": len(snap.Records),
		"version": snap.Version,
	})
}

// DeleteAll drops the dataset. There is deliberately no partial delete.
func (h *OrdersHandler) DeleteAll(c *gin.Context) {
	snap := h.service.Clear(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{
		"records": 0,
		"version": snap.Version,
	})
}

// DatasetInfo reports the current snapshot generation.
func (h *OrdersHandler) DatasetInfo(c *gin.Context) {
	snap := h.service.Snapshot()
	c.JSON(http.StatusOK, gin.H{
		"records":   len(snap.Records),
		"version":   snap.Version,
		"loaded_at": snap.LoadedAt,
	})
}

// GetProducts lists distinct products for the filter widget.
func (h *OrdersHandler) GetProducts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": h.service.Products()})
}

// GetPincodes lists distinct pincodes for the filter widget.
func (h *OrdersHandler) GetPincodes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": h.service.Pincodes()})
}
