package handlers

import (
	"errors"
	"net/http"

	"ir-analyzer/internal/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ComparisonsHandler handles HTTP requests for document comparisons
type ComparisonsHandler struct {
	service *services.ComparisonsService
}

// NewComparisonsHandler creates a new comparisons handler
func NewComparisonsHandler(service *services.ComparisonsService) *ComparisonsHandler {
	return &ComparisonsHandler{service: service}
}

// createComparisonRequest is the POST /api/comparisons body
type createComparisonRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	DocumentIDs []uint `json:"document_ids" binding:"required"`
}

// Create handles POST /api/comparisons
func (h *ComparisonsHandler) Create(c *gin.Context) {
	var req createComparisonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	comparison, err := h.service.Create(req.Title, req.Description, req.DocumentIDs)
	if err != nil {
		if errors.Is(err, services.ErrTooFewDocuments) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, comparison)
}

// List handles GET /api/comparisons
func (h *ComparisonsHandler) List(c *gin.Context) {
	comparisons, err := h.service.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list comparisons", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, comparisons)
}

// Get handles GET /api/comparisons/:id, returning the expanded comparison
// with documents and their analyses.
func (h *ComparisonsHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	expanded, err := h.service.Expand(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Comparison not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load comparison", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, expanded)
}

// Delete handles DELETE /api/comparisons/:id
func (h *ComparisonsHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	found, err := h.service.Delete(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete comparison", "details": err.Error()})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Comparison not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
