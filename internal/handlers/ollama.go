package handlers

import (
	"net/http"
	"time"

	"ir-analyzer/internal/ollama"

	"github.com/gin-gonic/gin"
)

// OllamaHandler exposes backend status, model listing, and model tests
type OllamaHandler struct {
	client *ollama.Client
}

// NewOllamaHandler creates a new Ollama handler
func NewOllamaHandler(client *ollama.Client) *OllamaHandler {
	return &OllamaHandler{client: client}
}

// Health handles GET /health
func (h *OllamaHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"service":   "ir-analyzer",
		"timestamp": time.Now().Format(time.RFC3339),
		"ollama":    h.client.CheckStatus(c.Request.Context()),
	})
}

// Status handles GET /api/ollama/status
func (h *OllamaHandler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, h.client.CheckStatus(c.Request.Context()))
}

// Models handles GET /api/ollama/models
func (h *OllamaHandler) Models(c *gin.Context) {
	installed, err := h.client.ListModels(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Ollama not available", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"installed":   installed,
		"recommended": ollama.Recommendations(),
		"count":       len(installed),
	})
}

// testModelRequest is the POST /api/ollama/test-model body
type testModelRequest struct {
	Model string `json:"model" binding:"required"`
}

// TestModel handles POST /api/ollama/test-model
func (h *OllamaHandler) TestModel(c *gin.Context) {
	var req testModelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	result := h.client.TestModel(c.Request.Context(), req.Model)
	if !result.Success {
		c.JSON(http.StatusBadRequest, result)
		return
	}
	c.JSON(http.StatusOK, result)
}
