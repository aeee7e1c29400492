package handlers

import (
	"net/http"
	"strconv"

	"ir-analyzer/internal/models"
	"ir-analyzer/internal/services"

	"github.com/gin-gonic/gin"
)

// MetricsHandler handles HTTP requests for score history and trends
type MetricsHandler struct {
	service *services.MetricsService
}

// NewMetricsHandler creates a new metrics handler
func NewMetricsHandler(service *services.MetricsService) *MetricsHandler {
	return &MetricsHandler{service: service}
}

// History handles GET /api/metrics/history
func (h *MetricsHandler) History(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	history, err := h.service.History(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load metrics history", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, history)
}

// ByType handles GET /api/metrics/by-type/:document_type
func (h *MetricsHandler) ByType(c *gin.Context) {
	documentType := c.Param("document_type")
	if !models.IsValidDocumentType(documentType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid document type"})
		return
	}

	history, err := h.service.ByType(documentType)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load metrics", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, history)
}

// Averages handles GET /api/metrics/averages
func (h *MetricsHandler) Averages(c *gin.Context) {
	averages, err := h.service.TypeAverages()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute averages", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, averages)
}
