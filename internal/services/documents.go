package services

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"ir-analyzer/internal/analysis"
	"ir-analyzer/internal/extract"
	"ir-analyzer/internal/models"
	"ir-analyzer/internal/ollama"
	"ir-analyzer/internal/transcribe"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// DocumentExtensions is the accepted text document extension allow-list
var DocumentExtensions = []string{".pdf", ".txt", ".doc", ".docx"}

// MaxDocumentSizeMB is the upload cap for text documents
const MaxDocumentSizeMB = 10

// IsDocumentExtension checks an extension against the document allow-list
func IsDocumentExtension(ext string) bool {
	ext = strings.ToLower(ext)
	for _, allowed := range DocumentExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}

// DocumentsService drives a document from upload to a terminal status.
// Single attempt, synchronous within the request, no resumption: every
// step commits individually and a crash mid-pipeline leaves the document
// stuck in its last recorded status.
type DocumentsService struct {
	db          *gorm.DB
	ollama      *ollama.Client
	analyzer    *analysis.Service
	transcriber *transcribe.Service
	uploadDir   string
}

// NewDocumentsService creates a new documents service
func NewDocumentsService(db *gorm.DB, client *ollama.Client, transcriber *transcribe.Service, uploadDir string) *DocumentsService {
	return &DocumentsService{
		db:          db,
		ollama:      client,
		analyzer:    analysis.NewService(client),
		transcriber: transcriber,
		uploadDir:   uploadDir,
	}
}

// SaveUpload writes an uploaded file under the upload directory with a
// timestamped, collision-free name and returns its path.
func (s *DocumentsService) SaveUpload(filename string, src io.Reader) (string, error) {
	if err := os.MkdirAll(s.uploadDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	name := fmt.Sprintf("%s_%s_%s",
		time.Now().Format("20060102_150405"),
		uuid.New().String()[:8],
		filepath.Base(filename),
	)
	path := filepath.Join(s.uploadDir, name)

	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to write upload file: %w", err)
	}

	return path, nil
}

// ProcessInput describes a text document upload
type ProcessInput struct {
	Title        string
	DocumentType string
	Model        string
	FilePath     string
}

// ProcessAudioInput describes an audio document upload
type ProcessAudioInput struct {
	Title               string
	DocumentType        string
	AnalysisModel       string
	TranscriptionPreset string
	Language            string
	DetectSpeakers      bool
	FilePath            string
}

// setStatus advances the document status through the checked transition
// table and persists the change.
func (s *DocumentsService) setStatus(doc *models.Document, next models.DocumentStatus) error {
	newStatus, err := doc.Status.Transition(next)
	if err != nil {
		return err
	}
	doc.Status = newStatus
	return s.db.Model(doc).Update("status", newStatus).Error
}

// fail marks the document terminally failed. Already-persisted rows are
// left in place; there is no rollback.
func (s *DocumentsService) fail(doc *models.Document, cause error) {
	log.Printf("Processing document %d failed: %v", doc.ID, cause)
	if err := s.setStatus(doc, models.StatusFailed); err != nil {
		log.Printf("Failed to mark document %d as failed: %v", doc.ID, err)
	}
}

// ProcessDocument runs the full text pipeline: persist the document row,
// verify the annotation backend, extract text, analyze, persist results,
// and advance the status to completed. The returned document reflects the
// terminal status; a non-nil error describes the single failure.
func (s *DocumentsService) ProcessDocument(ctx context.Context, input ProcessInput) (*models.Document, error) {
	// Processing must outlive the client connection: a disconnect abandons
	// the response, never the in-flight pipeline.
	ctx = context.WithoutCancel(ctx)

	doc := &models.Document{
		Title:        input.Title,
		DocumentType: input.DocumentType,
		FilePath:     input.FilePath,
		Status:       models.StatusUploading,
	}
	if err := s.db.Create(doc).Error; err != nil {
		return nil, fmt.Errorf("failed to create document record: %w", err)
	}

	// Backend unreachable is a configuration error: fatal, never retried
	if status := s.ollama.CheckStatus(ctx); !status.Available {
		err := fmt.Errorf("Ollama not available: %s", status.Error)
		s.fail(doc, err)
		return doc, err
	}

	if err := s.setStatus(doc, models.StatusProcessing); err != nil {
		s.fail(doc, err)
		return doc, err
	}

	// The audio pipeline validates inside transcribe.Service; mirror that
	// here so direct callers get the same size cap as HTTP uploads.
	if err := extract.ValidateSize(input.FilePath, MaxDocumentSizeMB); err != nil {
		s.fail(doc, err)
		return doc, err
	}

	text, err := extract.FromFile(input.FilePath)
	if err != nil {
		err = fmt.Errorf("text extraction failed: %w", err)
		s.fail(doc, err)
		return doc, err
	}

	if err := s.annotateAndPersist(ctx, doc, text, input.Model); err != nil {
		s.fail(doc, err)
		return doc, err
	}

	return doc, nil
}

// ProcessAudioDocument runs the audio pipeline: transcribe first, then the
// shared annotation and persistence steps.
func (s *DocumentsService) ProcessAudioDocument(ctx context.Context, input ProcessAudioInput) (*models.Document, *transcribe.Result, error) {
	ctx = context.WithoutCancel(ctx)

	doc := &models.Document{
		Title:        input.Title,
		DocumentType: input.DocumentType,
		FilePath:     input.FilePath,
		Status:       models.StatusUploading,
	}
	if err := s.db.Create(doc).Error; err != nil {
		return nil, nil, fmt.Errorf("failed to create document record: %w", err)
	}

	if status := s.ollama.CheckStatus(ctx); !status.Available {
		err := fmt.Errorf("Ollama not available: %s", status.Error)
		s.fail(doc, err)
		return doc, nil, err
	}

	if err := s.setStatus(doc, models.StatusTranscribing); err != nil {
		s.fail(doc, err)
		return doc, nil, err
	}

	preset := transcribe.LookupPreset(input.TranscriptionPreset)
	transcription, err := s.transcriber.Transcribe(ctx, input.FilePath, transcribe.Params{
		Backend:        preset.Backend,
		Language:       input.Language,
		ModelSize:      preset.ModelSize,
		DetectSpeakers: input.DetectSpeakers,
	})
	if err != nil {
		err = fmt.Errorf("transcription failed: %w", err)
		s.fail(doc, err)
		return doc, nil, err
	}

	text := transcription.FormattedText
	if text == "" {
		text = transcription.Text
	}

	// Sidecar transcript next to the audio file; failure here is a
	// pipeline-step error like any other storage failure
	transcriptPath := input.FilePath + ".transcript.txt"
	if err := os.WriteFile(transcriptPath, []byte(text), 0o644); err != nil {
		err = fmt.Errorf("failed to save transcript: %w", err)
		s.fail(doc, err)
		return doc, transcription, err
	}

	if err := s.annotateAndPersist(ctx, doc, text, input.AnalysisModel); err != nil {
		s.fail(doc, err)
		return doc, transcription, err
	}

	return doc, transcription, nil
}

// annotateAndPersist is the shared tail of both pipelines: document-level
// analysis, section-level analysis, metrics snapshot, completed status.
// The annotation calls themselves never fail; degraded defaults are
// persisted with their reason.
func (s *DocumentsService) annotateAndPersist(ctx context.Context, doc *models.Document, text, model string) error {
	if err := s.setStatus(doc, models.StatusAnalyzing); err != nil {
		return err
	}

	docResult := s.analyzer.AnalyzeDocument(ctx, text, model)

	record := &models.Analysis{
		DocumentID:        doc.ID,
		OverallSentiment:  docResult.OverallSentiment,
		SentimentScore:    docResult.SentimentScore,
		ConfidenceScore:   docResult.ConfidenceScore,
		ClarityScore:      docResult.ClarityScore,
		ReadabilityScore:  docResult.ReadabilityScore,
		SpecificityScore:  docResult.SpecificityScore,
		KeyThemes:         datatypes.NewJSONSlice(docResult.KeyThemes),
		EmotionalTone:     datatypes.NewJSONType(docResult.EmotionalTone),
		LinguisticMetrics: datatypes.NewJSONType(docResult.LinguisticMetrics),
		Degraded:          docResult.Degraded,
		DegradedReason:    docResult.DegradedReason,
	}
	if err := s.db.Create(record).Error; err != nil {
		return fmt.Errorf("failed to save analysis: %w", err)
	}

	sectionsResult := s.analyzer.AnalyzeSections(ctx, text, model)
	for idx, section := range sectionsResult.Sections {
		row := &models.Section{
			AnalysisID:        record.ID,
			SectionTitle:      section.SectionTitle,
			SectionType:       section.SectionType,
			Speaker:           section.Speaker,
			OriginalText:      section.OriginalText,
			SentimentScore:    section.SentimentScore,
			ConfidenceScore:   section.ConfidenceScore,
			ClarityScore:      section.ClarityScore,
			ReadabilityScore:  section.ReadabilityScore,
			SpecificityScore:  section.SpecificityScore,
			Issues:            datatypes.NewJSONSlice(section.Issues),
			SuggestedRevision: section.SuggestedRevision,
			RevisionRationale: section.RevisionRationale,
			SectionOrder:      idx,
		}
		if err := s.db.Create(row).Error; err != nil {
			return fmt.Errorf("failed to save section %d: %w", idx, err)
		}
	}

	snapshot := &models.MetricsHistory{
		DocumentID:       doc.ID,
		AnalysisID:       record.ID,
		DocumentType:     doc.DocumentType,
		SentimentScore:   docResult.SentimentScore,
		ConfidenceScore:  docResult.ConfidenceScore,
		ClarityScore:     docResult.ClarityScore,
		ReadabilityScore: docResult.ReadabilityScore,
		SpecificityScore: docResult.SpecificityScore,
	}
	if err := s.db.Create(snapshot).Error; err != nil {
		return fmt.Errorf("failed to save metrics snapshot: %w", err)
	}

	return s.setStatus(doc, models.StatusCompleted)
}

// GetDocument returns a document by id
func (s *DocumentsService) GetDocument(id uint) (*models.Document, error) {
	var doc models.Document
	if err := s.db.First(&doc, id).Error; err != nil {
		return nil, err
	}
	return &doc, nil
}

// ListDocuments returns all documents, newest first
func (s *DocumentsService) ListDocuments() ([]models.Document, error) {
	var docs []models.Document
	if err := s.db.Order("created_at DESC").Find(&docs).Error; err != nil {
		return nil, err
	}
	return docs, nil
}

// GetLatestAnalysis returns the most recent analysis for a document. The
// schema allows multiple rows per document; only the latest is surfaced.
func (s *DocumentsService) GetLatestAnalysis(documentID uint) (*models.Analysis, error) {
	var record models.Analysis
	err := s.db.Where("document_id = ?", documentID).
		Order("created_at DESC, id DESC").
		First(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// GetSections returns the sections of an analysis ordered by section_order
func (s *DocumentsService) GetSections(analysisID uint) ([]models.Section, error) {
	var sections []models.Section
	err := s.db.Where("analysis_id = ?", analysisID).
		Order("section_order").
		Find(&sections).Error
	if err != nil {
		return nil, err
	}
	return sections, nil
}
