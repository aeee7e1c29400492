package models

import (
	"time"

	"gorm.io/datatypes"
)

// Section is a model-identified logical subdivision of a document, scored
// independently and paired with a suggested revision. SectionOrder is
// assigned at insertion time, contiguous from 0 within an analysis.
type Section struct {
	ID         uint `json:"id" gorm:"primaryKey"`
	AnalysisID uint `json:"analysis_id" gorm:"not null;index"`

	SectionTitle string `json:"section_title" gorm:"not null"`
	SectionType  string `json:"section_type,omitempty"` // introduction, financial_results, outlook, qa, other
	Speaker      string `json:"speaker,omitempty"`
	OriginalText string `json:"original_text" gorm:"type:text;not null"`

	SentimentScore   int `json:"sentiment_score"`
	ConfidenceScore  int `json:"confidence_score"`
	ClarityScore     int `json:"clarity_score"`
	ReadabilityScore int `json:"readability_score"`
	SpecificityScore int `json:"specificity_score"`

	Issues            datatypes.JSONSlice[string] `json:"issues" gorm:"type:text"`
	SuggestedRevision string                      `json:"suggested_revision" gorm:"type:text"`
	RevisionRationale string                      `json:"revision_rationale" gorm:"type:text"`

	SectionOrder int `json:"section_order" gorm:"index"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName sets the table name for the Section model
func (Section) TableName() string {
	return "sections"
}
