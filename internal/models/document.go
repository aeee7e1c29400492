package models

import (
	"time"
)

// Document represents an uploaded investor relations document (text or audio)
type Document struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	Title        string         `json:"title" gorm:"not null"`
	DocumentType string         `json:"document_type" gorm:"not null"` // press_release, earnings_call, corporate_release, other
	FilePath     string         `json:"file_path"`
	Status       DocumentStatus `json:"status" gorm:"type:text;default:'uploading'"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	// Relationships
	Analyses []Analysis       `json:"analyses,omitempty" gorm:"foreignKey:DocumentID"`
	Metrics  []MetricsHistory `json:"metrics,omitempty" gorm:"foreignKey:DocumentID"`
}

// TableName sets the table name for the Document model
func (Document) TableName() string {
	return "documents"
}
