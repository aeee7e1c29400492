package services

import (
	"ir-analyzer/internal/models"

	"gorm.io/gorm"
)

// MetricsService reads the append-only score history for trend views
type MetricsService struct {
	db *gorm.DB
}

// NewMetricsService creates a new metrics service
func NewMetricsService(db *gorm.DB) *MetricsService {
	return &MetricsService{db: db}
}

// History returns the most recent snapshots, newest first
func (s *MetricsService) History(limit int) ([]models.MetricsHistory, error) {
	if limit <= 0 {
		limit = 50
	}

	var history []models.MetricsHistory
	err := s.db.Order("recorded_at DESC").Limit(limit).Find(&history).Error
	if err != nil {
		return nil, err
	}
	return history, nil
}

// ByType returns snapshots for one document type, newest first
func (s *MetricsService) ByType(documentType string) ([]models.MetricsHistory, error) {
	var history []models.MetricsHistory
	err := s.db.Where("document_type = ?", documentType).
		Order("recorded_at DESC").
		Find(&history).Error
	if err != nil {
		return nil, err
	}
	return history, nil
}

// TypeAverage is the mean of each summary score across one document type
type TypeAverage struct {
	DocumentType    string  `json:"document_type"`
	DocumentCount   int     `json:"document_count"`
	AvgSentiment    float64 `json:"avg_sentiment"`
	AvgConfidence   float64 `json:"avg_confidence"`
	AvgClarity      float64 `json:"avg_clarity"`
	AvgReadability  float64 `json:"avg_readability"`
	AvgSpecificity  float64 `json:"avg_specificity"`
}

// TypeAverages aggregates the history per document type
func (s *MetricsService) TypeAverages() ([]TypeAverage, error) {
	var averages []TypeAverage
	err := s.db.Model(&models.MetricsHistory{}).
		Select(`document_type,
			COUNT(*) AS document_count,
			AVG(sentiment_score) AS avg_sentiment,
			AVG(confidence_score) AS avg_confidence,
			AVG(clarity_score) AS avg_clarity,
			AVG(readability_score) AS avg_readability,
			AVG(specificity_score) AS avg_specificity`).
		Group("document_type").
		Order("document_type").
		Scan(&averages).Error
	if err != nil {
		return nil, err
	}
	return averages, nil
}
