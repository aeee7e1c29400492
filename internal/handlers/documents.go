package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"ir-analyzer/internal/models"
	"ir-analyzer/internal/ollama"
	"ir-analyzer/internal/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// DocumentsHandler handles HTTP requests for document upload and reads
type DocumentsHandler struct {
	service *services.DocumentsService
	ollama  *ollama.Client
}

// NewDocumentsHandler creates a new documents handler
func NewDocumentsHandler(service *services.DocumentsService, client *ollama.Client) *DocumentsHandler {
	return &DocumentsHandler{service: service, ollama: client}
}

// Upload handles POST /api/documents
func (h *DocumentsHandler) Upload(c *gin.Context) {
	title := c.PostForm("title")
	documentType := c.PostForm("document_type")
	model := c.DefaultPostForm("model", "llama3.2")

	if title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title is required"})
		return
	}

	if !models.IsValidDocumentType(documentType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid document type"})
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File is required"})
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !services.IsDocumentExtension(ext) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("File type %s not supported. Allowed: %s", ext, strings.Join(services.DocumentExtensions, ", ")),
		})
		return
	}

	if file.Size > services.MaxDocumentSizeMB*1024*1024 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("File too large: %.1fMB (max %dMB)", float64(file.Size)/(1024*1024), services.MaxDocumentSizeMB),
		})
		return
	}

	// Best-effort model validation: when the backend is reachable an
	// unknown model is rejected before any processing begins. When it is
	// unreachable the pipeline records the failure on the document.
	if status := h.ollama.CheckStatus(c.Request.Context()); status.Available {
		if !containsModel(status.Models, model) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": fmt.Sprintf("Model '%s' not found. Available models: %s", model, strings.Join(status.Models, ", ")),
			})
			return
		}
	}

	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read uploaded file", "details": err.Error()})
		return
	}
	defer src.Close()

	path, err := h.service.SaveUpload(file.Filename, src)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save uploaded file", "details": err.Error()})
		return
	}

	doc, err := h.service.ProcessDocument(c.Request.Context(), services.ProcessInput{
		Title:        title,
		DocumentType: documentType,
		Model:        model,
		FilePath:     path,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":    "Analysis failed: " + err.Error(),
			"document": doc,
		})
		return
	}

	c.JSON(http.StatusOK, doc)
}

// List handles GET /api/documents
func (h *DocumentsHandler) List(c *gin.Context) {
	docs, err := h.service.ListDocuments()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list documents", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, docs)
}

// Get handles GET /api/documents/:id
func (h *DocumentsHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	doc, err := h.service.GetDocument(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Document not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load document", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, doc)
}

// GetAnalysis handles GET /api/documents/:id/analysis
func (h *DocumentsHandler) GetAnalysis(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if _, err := h.service.GetDocument(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Document not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load document", "details": err.Error()})
		return
	}

	record, err := h.service.GetLatestAnalysis(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Analysis not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load analysis", "details": err.Error()})
		return
	}

	sections, err := h.service.GetSections(record.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load sections", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"analysis": record,
		"sections": sections,
	})
}

// parseID reads the :id path parameter, writing a 400 on failure
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return 0, false
	}
	return uint(id), true
}

func containsModel(available []string, model string) bool {
	for _, m := range available {
		if m == model {
			return true
		}
	}
	return false
}
