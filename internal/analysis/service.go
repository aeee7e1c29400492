// Package analysis turns document text into structured sentiment and
// linguistic scores by prompting an Ollama model. Calls never fail hard:
// a transport or parse error produces a degraded default result that
// records why it is a placeholder.
package analysis

import (
	"context"
	"encoding/json"
	"log"

	"ir-analyzer/internal/ollama"
)

// Generator is the slice of the Ollama client the service needs. Tests
// substitute a fake.
type Generator interface {
	Generate(ctx context.Context, request ollama.GenerateRequest) (string, error)
}

// Service performs document and section analysis through a model backend
type Service struct {
	client Generator
}

// NewService creates a new analysis service
func NewService(client Generator) *Service {
	return &Service{client: client}
}

// DocumentResult is the document-level analysis. Degraded is set when the
// scores are a substituted default rather than real model output.
type DocumentResult struct {
	OverallSentiment  string             `json:"overall_sentiment"`
	SentimentScore    int                `json:"sentiment_score"`
	ConfidenceScore   int                `json:"confidence_score"`
	ClarityScore      int                `json:"clarity_score"`
	ReadabilityScore  int                `json:"readability_score"`
	SpecificityScore  int                `json:"specificity_score"`
	KeyThemes         []string           `json:"key_themes"`
	EmotionalTone     map[string]int     `json:"emotional_tone"`
	LinguisticMetrics map[string]float64 `json:"linguistic_metrics"`

	Degraded       bool   `json:"degraded"`
	DegradedReason string `json:"degraded_reason,omitempty"`
}

// SectionResult is the analysis of one model-identified section
type SectionResult struct {
	SectionTitle      string   `json:"section_title"`
	SectionType       string   `json:"section_type"`
	Speaker           string   `json:"speaker"`
	OriginalText      string   `json:"original_text"`
	SentimentScore    int      `json:"sentiment_score"`
	ConfidenceScore   int      `json:"confidence_score"`
	ClarityScore      int      `json:"clarity_score"`
	ReadabilityScore  int      `json:"readability_score"`
	SpecificityScore  int      `json:"specificity_score"`
	Issues            []string `json:"issues"`
	SuggestedRevision string   `json:"suggested_revision"`
	RevisionRationale string   `json:"revision_rationale"`
}

// SectionsResult is the section-level analysis for a whole document
type SectionsResult struct {
	Sections []SectionResult `json:"sections"`

	Degraded       bool   `json:"degraded"`
	DegradedReason string `json:"degraded_reason,omitempty"`
}

// AnalyzeDocument scores the full document text with the given model.
// Backend and parse failures are absorbed into a degraded default; the
// returned result is always usable.
func (s *Service) AnalyzeDocument(ctx context.Context, text, model string) DocumentResult {
	response, err := s.client.Generate(ctx, ollama.GenerateRequest{
		Model:   model,
		Prompt:  documentPrompt(text),
		System:  documentSystemPrompt,
		Stream:  false,
		Format:  "json",
		Options: ollama.GenerateOptions{Temperature: 0.3},
	})
	if err != nil {
		log.Printf("Document analysis call failed: %v", err)
		return DefaultDocumentResult(err.Error())
	}

	var result DocumentResult
	if err := json.Unmarshal([]byte(response), &result); err != nil {
		log.Printf("Document analysis JSON parse error: %v (response: %.200s)", err, response)
		return DefaultDocumentResult("model returned malformed JSON: " + err.Error())
	}

	return result
}

// AnalyzeSections breaks the document into scored sections with revision
// suggestions. On failure it substitutes a single whole-document section
// carrying an explicit unavailability issue.
func (s *Service) AnalyzeSections(ctx context.Context, text, model string) SectionsResult {
	response, err := s.client.Generate(ctx, ollama.GenerateRequest{
		Model:   model,
		Prompt:  sectionsPrompt(text),
		System:  sectionsSystemPrompt,
		Stream:  false,
		Format:  "json",
		Options: ollama.GenerateOptions{Temperature: 0.3},
	})
	if err != nil {
		log.Printf("Section analysis call failed: %v", err)
		return DefaultSectionsResult(text, err.Error())
	}

	var result SectionsResult
	if err := json.Unmarshal([]byte(response), &result); err != nil {
		log.Printf("Section analysis JSON parse error: %v (response: %.200s)", err, response)
		return DefaultSectionsResult(text, "model returned malformed JSON: "+err.Error())
	}

	if len(result.Sections) == 0 {
		return DefaultSectionsResult(text, "model returned no sections")
	}

	return result
}
