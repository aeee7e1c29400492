package models

import (
	"time"
)

// MetricsHistory is an append-only snapshot of the summary scores taken the
// moment an analysis completed, tagged with the document type for trend
// aggregation. Never updated or deleted.
type MetricsHistory struct {
	ID         uint `json:"id" gorm:"primaryKey"`
	DocumentID uint `json:"document_id" gorm:"not null;index"`
	AnalysisID uint `json:"analysis_id" gorm:"not null;index"`

	DocumentType string `json:"document_type" gorm:"not null;index"`

	SentimentScore   int `json:"sentiment_score"`
	ConfidenceScore  int `json:"confidence_score"`
	ClarityScore     int `json:"clarity_score"`
	ReadabilityScore int `json:"readability_score"`
	SpecificityScore int `json:"specificity_score"`

	RecordedAt time.Time `json:"recorded_at" gorm:"autoCreateTime"`
}

// TableName sets the table name for the MetricsHistory model
func (MetricsHistory) TableName() string {
	return "metrics_history"
}
