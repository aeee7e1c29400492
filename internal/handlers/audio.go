package handlers

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"ir-analyzer/internal/models"
	"ir-analyzer/internal/services"
	"ir-analyzer/internal/transcribe"

	"github.com/gin-gonic/gin"
)

// AudioHandler handles audio transcription and audio document uploads
type AudioHandler struct {
	documents   *services.DocumentsService
	transcriber *transcribe.Service
}

// NewAudioHandler creates a new audio handler
func NewAudioHandler(documents *services.DocumentsService, transcriber *transcribe.Service) *AudioHandler {
	return &AudioHandler{documents: documents, transcriber: transcriber}
}

// Status handles GET /api/audio/status
func (h *AudioHandler) Status(c *gin.Context) {
	availability := h.transcriber.Availability()
	c.JSON(http.StatusOK, gin.H{
		"whisper_local_available": availability.LocalAvailable,
		"whisper_api_available":   availability.APIAvailable,
		"presets":                 transcribe.Presets(),
	})
}

// validateAudioUpload checks the multipart file against the audio
// allow-list and size cap, writing the client error itself.
func (h *AudioHandler) validateAudioUpload(c *gin.Context) (filename string, ok bool) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File is required"})
		return "", false
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !transcribe.IsAudioExtension(ext) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("Audio file type %s not supported. Allowed: %s", ext, strings.Join(transcribe.AudioExtensions, ", ")),
		})
		return "", false
	}

	if file.Size > transcribe.MaxAudioSizeMB*1024*1024 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("File too large: %.1fMB (max %dMB)", float64(file.Size)/(1024*1024), transcribe.MaxAudioSizeMB),
		})
		return "", false
	}

	return file.Filename, true
}

// saveAudioUpload stores the multipart file and returns its path
func (h *AudioHandler) saveAudioUpload(c *gin.Context) (string, bool) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File is required"})
		return "", false
	}

	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read uploaded file", "details": err.Error()})
		return "", false
	}
	defer src.Close()

	path, err := h.documents.SaveUpload(file.Filename, src)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save uploaded file", "details": err.Error()})
		return "", false
	}

	return path, true
}

// Transcribe handles POST /api/audio/transcribe, a standalone endpoint for
// testing transcription without running the analysis pipeline.
func (h *AudioHandler) Transcribe(c *gin.Context) {
	if _, ok := h.validateAudioUpload(c); !ok {
		return
	}

	path, ok := h.saveAudioUpload(c)
	if !ok {
		return
	}

	preset := transcribe.LookupPreset(c.DefaultPostForm("preset", "balanced"))
	detectSpeakers := c.DefaultPostForm("detect_speakers", "true") == "true"

	result, err := h.transcriber.Transcribe(c.Request.Context(), path, transcribe.Params{
		Backend:        preset.Backend,
		Language:       c.DefaultPostForm("language", "en"),
		ModelSize:      preset.ModelSize,
		DetectSpeakers: detectSpeakers,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Transcription failed: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"text":           result.Text,
		"formatted_text": result.FormattedText,
		"language":       result.Language,
		"duration":       result.Duration,
		"segments":       len(result.Segments),
		"backend":        result.Backend,
		"model":          result.Model,
	})
}

// UploadAudio handles POST /api/documents/audio: transcription plus the
// full analysis pipeline in one request. The connection stays open for the
// whole run, which can be many minutes for large audio.
func (h *AudioHandler) UploadAudio(c *gin.Context) {
	title := c.PostForm("title")
	documentType := c.PostForm("document_type")

	if title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title is required"})
		return
	}

	if !models.IsValidDocumentType(documentType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid document type"})
		return
	}

	if _, ok := h.validateAudioUpload(c); !ok {
		return
	}

	path, ok := h.saveAudioUpload(c)
	if !ok {
		return
	}

	doc, transcription, err := h.documents.ProcessAudioDocument(c.Request.Context(), services.ProcessAudioInput{
		Title:               title,
		DocumentType:        documentType,
		AnalysisModel:       c.DefaultPostForm("analysis_model", "llama3.2"),
		TranscriptionPreset: c.DefaultPostForm("transcription_preset", "balanced"),
		Language:            c.DefaultPostForm("language", "en"),
		DetectSpeakers:      c.DefaultPostForm("detect_speakers", "true") == "true",
		FilePath:            path,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":    "Processing failed: " + err.Error(),
			"document": doc,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"document_id": doc.ID,
		"transcription": gin.H{
			"duration": transcription.Duration,
			"language": transcription.Language,
			"segments": len(transcription.Segments),
			"backend":  transcription.Backend,
		},
	})
}
