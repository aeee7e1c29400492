package models

import "fmt"

// DocumentStatus is the processing state of a document. Transitions are
// checked against a fixed table; there are no free-form status strings.
type DocumentStatus string

const (
	StatusUploading    DocumentStatus = "uploading"
	StatusTranscribing DocumentStatus = "transcribing"
	StatusProcessing   DocumentStatus = "processing"
	StatusAnalyzing    DocumentStatus = "analyzing"
	StatusCompleted    DocumentStatus = "completed"
	StatusFailed       DocumentStatus = "failed"
)

// statusTransitions is the allowed transition table. completed and failed
// are terminal; failed is reachable from every non-terminal state.
var statusTransitions = map[DocumentStatus][]DocumentStatus{
	StatusUploading:    {StatusTranscribing, StatusProcessing, StatusFailed},
	StatusTranscribing: {StatusAnalyzing, StatusFailed},
	StatusProcessing:   {StatusAnalyzing, StatusFailed},
	StatusAnalyzing:    {StatusCompleted, StatusFailed},
	StatusCompleted:    {},
	StatusFailed:       {},
}

// IsTerminal reports whether no further transitions are allowed.
func (s DocumentStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

// CanTransition reports whether moving from s to next is allowed.
func (s DocumentStatus) CanTransition(next DocumentStatus) bool {
	for _, allowed := range statusTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Transition validates a status change and returns the new status, or an
// error if the change is not in the transition table.
func (s DocumentStatus) Transition(next DocumentStatus) (DocumentStatus, error) {
	if !s.CanTransition(next) {
		return s, fmt.Errorf("invalid status transition: %s -> %s", s, next)
	}
	return next, nil
}

// ValidDocumentTypes are the accepted document_type values for uploads.
var ValidDocumentTypes = []string{"press_release", "earnings_call", "corporate_release", "other"}

// IsValidDocumentType checks a document_type against the allowed set.
func IsValidDocumentType(documentType string) bool {
	for _, t := range ValidDocumentTypes {
		if t == documentType {
			return true
		}
	}
	return false
}
