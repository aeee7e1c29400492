package models

import "testing"

func TestStatusTransitions(t *testing.T) {
	tests := []struct {
		name    string
		from    DocumentStatus
		to      DocumentStatus
		allowed bool
	}{
		{"uploading to processing", StatusUploading, StatusProcessing, true},
		{"uploading to transcribing", StatusUploading, StatusTranscribing, true},
		{"uploading to failed", StatusUploading, StatusFailed, true},
		{"uploading to completed skips analysis", StatusUploading, StatusCompleted, false},
		{"transcribing to analyzing", StatusTranscribing, StatusAnalyzing, true},
		{"processing to analyzing", StatusProcessing, StatusAnalyzing, true},
		{"processing to transcribing", StatusProcessing, StatusTranscribing, false},
		{"analyzing to completed", StatusAnalyzing, StatusCompleted, true},
		{"analyzing to failed", StatusAnalyzing, StatusFailed, true},
		{"completed is terminal", StatusCompleted, StatusFailed, false},
		{"failed is terminal", StatusFailed, StatusUploading, false},
		{"no backwards transition", StatusAnalyzing, StatusProcessing, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.from.CanTransition(tt.to); got != tt.allowed {
				t.Errorf("CanTransition(%s -> %s) = %v, want %v", tt.from, tt.to, got, tt.allowed)
			}

			next, err := tt.from.Transition(tt.to)
			if tt.allowed {
				if err != nil {
					t.Errorf("Transition(%s -> %s) returned error: %v", tt.from, tt.to, err)
				}
				if next != tt.to {
					t.Errorf("Transition returned %s, want %s", next, tt.to)
				}
			} else {
				if err == nil {
					t.Errorf("Transition(%s -> %s) should have been rejected", tt.from, tt.to)
				}
				if next != tt.from {
					t.Errorf("rejected transition changed status to %s", next)
				}
			}
		})
	}
}

func TestIsTerminal(t *testing.T) {
	for _, s := range []DocumentStatus{StatusUploading, StatusTranscribing, StatusProcessing, StatusAnalyzing} {
		if s.IsTerminal() {
			t.Errorf("%s should not be terminal", s)
		}
	}
	for _, s := range []DocumentStatus{StatusCompleted, StatusFailed} {
		if !s.IsTerminal() {
			t.Errorf("%s should be terminal", s)
		}
	}
}

func TestIsValidDocumentType(t *testing.T) {
	for _, valid := range []string{"press_release", "earnings_call", "corporate_release", "other"} {
		if !IsValidDocumentType(valid) {
			t.Errorf("expected %s to be valid", valid)
		}
	}
	for _, invalid := range []string{"", "memo", "Press_Release"} {
		if IsValidDocumentType(invalid) {
			t.Errorf("expected %s to be invalid", invalid)
		}
	}
}
