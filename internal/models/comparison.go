package models

import (
	"time"

	"gorm.io/datatypes"
)

// Comparison is a user-created named grouping of two or more documents.
// Document ids are stored as a serialized list; there is no cascade, so a
// deleted document simply drops out when the comparison is expanded.
type Comparison struct {
	ID          uint                      `json:"id" gorm:"primaryKey"`
	Title       string                    `json:"title" gorm:"not null"`
	Description string                    `json:"description,omitempty"`
	DocumentIDs datatypes.JSONSlice[uint] `json:"document_ids" gorm:"type:text;not null"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName sets the table name for the Comparison model
func (Comparison) TableName() string {
	return "comparisons"
}
