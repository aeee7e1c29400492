package services

import (
	"errors"
	"fmt"

	"ir-analyzer/internal/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ErrTooFewDocuments is returned when a comparison names fewer than two documents
var ErrTooFewDocuments = errors.New("at least 2 documents required for comparison")

// ComparisonsService manages named document groupings
type ComparisonsService struct {
	db *gorm.DB
}

// NewComparisonsService creates a new comparisons service
func NewComparisonsService(db *gorm.DB) *ComparisonsService {
	return &ComparisonsService{db: db}
}

// Create validates that every referenced document exists and persists the
// comparison. Rejects groupings of fewer than two documents.
func (s *ComparisonsService) Create(title, description string, documentIDs []uint) (*models.Comparison, error) {
	if len(documentIDs) < 2 {
		return nil, ErrTooFewDocuments
	}

	for _, id := range documentIDs {
		var doc models.Document
		if err := s.db.First(&doc, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("document %d not found", id)
			}
			return nil, err
		}
	}

	comparison := &models.Comparison{
		Title:       title,
		Description: description,
		DocumentIDs: datatypes.NewJSONSlice(documentIDs),
	}
	if err := s.db.Create(comparison).Error; err != nil {
		return nil, fmt.Errorf("failed to create comparison: %w", err)
	}

	return comparison, nil
}

// Get returns a comparison by id
func (s *ComparisonsService) Get(id uint) (*models.Comparison, error) {
	var comparison models.Comparison
	if err := s.db.First(&comparison, id).Error; err != nil {
		return nil, err
	}
	return &comparison, nil
}

// List returns all comparisons, newest first
func (s *ComparisonsService) List() ([]models.Comparison, error) {
	var comparisons []models.Comparison
	if err := s.db.Order("created_at DESC").Find(&comparisons).Error; err != nil {
		return nil, err
	}
	return comparisons, nil
}

// Delete removes a comparison and reports whether it existed
func (s *ComparisonsService) Delete(id uint) (bool, error) {
	result := s.db.Delete(&models.Comparison{}, id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// ComparisonEntry pairs a document with its latest analysis
type ComparisonEntry struct {
	Document *models.Document `json:"document"`
	Analysis *models.Analysis `json:"analysis,omitempty"`
}

// ExpandedComparison is a comparison with its documents and analyses resolved
type ExpandedComparison struct {
	Comparison *models.Comparison `json:"comparison"`
	Documents  []ComparisonEntry  `json:"documents"`
}

// Expand resolves the comparison's documents and their latest analyses.
// There is no cascade on document deletion, so missing documents are
// silently skipped and the expansion simply returns fewer entries.
func (s *ComparisonsService) Expand(id uint) (*ExpandedComparison, error) {
	comparison, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	entries := make([]ComparisonEntry, 0, len(comparison.DocumentIDs))
	for _, docID := range comparison.DocumentIDs {
		var doc models.Document
		if err := s.db.First(&doc, docID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return nil, err
		}

		entry := ComparisonEntry{Document: &doc}

		var record models.Analysis
		err := s.db.Where("document_id = ?", docID).
			Order("created_at DESC, id DESC").
			First(&record).Error
		if err == nil {
			entry.Analysis = &record
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}

		entries = append(entries, entry)
	}

	return &ExpandedComparison{Comparison: comparison, Documents: entries}, nil
}
