package models

import (
	"time"

	"gorm.io/datatypes"
)

// Analysis holds the document-level scores produced by the annotation model.
// One row per completed processing attempt; immutable after creation. The
// latest row for a document is the one surfaced by reads.
type Analysis struct {
	ID         uint `json:"id" gorm:"primaryKey"`
	DocumentID uint `json:"document_id" gorm:"not null;index"`

	OverallSentiment string `json:"overall_sentiment"` // positive, negative, neutral, mixed
	SentimentScore   int    `json:"sentiment_score"`   // 0-100
	ConfidenceScore  int    `json:"confidence_score"`  // 0-100
	ClarityScore     int    `json:"clarity_score"`     // 0-100
	ReadabilityScore int    `json:"readability_score"` // 0-100
	SpecificityScore int    `json:"specificity_score"` // 0-100

	KeyThemes         datatypes.JSONSlice[string]            `json:"key_themes" gorm:"type:text"`
	EmotionalTone     datatypes.JSONType[map[string]int]     `json:"emotional_tone" gorm:"type:text"`
	LinguisticMetrics datatypes.JSONType[map[string]float64] `json:"linguistic_metrics" gorm:"type:text"`

	// Degraded marks a placeholder result substituted after a backend or
	// parse failure, so it stays distinguishable from a genuinely neutral
	// analysis. DegradedReason records the original failure.
	Degraded       bool   `json:"degraded" gorm:"default:false"`
	DegradedReason string `json:"degraded_reason,omitempty"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`

	// Relationships
	Sections []Section `json:"sections,omitempty" gorm:"foreignKey:AnalysisID"`
}

// TableName sets the table name for the Analysis model
func (Analysis) TableName() string {
	return "analyses"
}
