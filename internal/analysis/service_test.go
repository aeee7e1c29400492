package analysis

import (
	"context"
	"errors"
	"strings"
	"testing"

	"ir-analyzer/internal/ollama"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeGenerator returns canned responses or errors per call
type fakeGenerator struct {
	response string
	err      error
	requests []ollama.GenerateRequest
}

func (f *fakeGenerator) Generate(_ context.Context, request ollama.GenerateRequest) (string, error) {
	f.requests = append(f.requests, request)
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func TestAnalyzeDocumentParsesModelOutput(t *testing.T) {
	gen := &fakeGenerator{response: `{
		"overall_sentiment": "positive",
		"sentiment_score": 70,
		"confidence_score": 65,
		"clarity_score": 80,
		"readability_score": 75,
		"specificity_score": 60,
		"key_themes": ["growth", "margins"],
		"emotional_tone": {"positive": 60, "negative": 10, "neutral": 30, "confident": 70, "uncertain": 20},
		"linguistic_metrics": {"avgSentenceLength": 18.5, "complexWordRatio": 0.2, "passiveVoiceRatio": 0.1, "jargonDensity": 0.3, "hedgingLanguage": 0.05}
	}`}
	svc := NewService(gen)

	result := svc.AnalyzeDocument(context.Background(), "Revenue grew 20% year over year.", "llama3.2")

	assert.False(t, result.Degraded)
	assert.Equal(t, "positive", result.OverallSentiment)
	assert.Equal(t, 70, result.SentimentScore)
	assert.Equal(t, []string{"growth", "margins"}, result.KeyThemes)
	assert.Equal(t, 70, result.EmotionalTone["confident"])
	assert.InDelta(t, 18.5, result.LinguisticMetrics["avgSentenceLength"], 0.001)

	require.Len(t, gen.requests, 1)
	assert.Equal(t, "llama3.2", gen.requests[0].Model)
	assert.Equal(t, "json", gen.requests[0].Format)
	assert.InDelta(t, 0.3, gen.requests[0].Options.Temperature, 0.001)
}

func TestAnalyzeDocumentDefaultsOnTransportError(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("connection refused")}
	svc := NewService(gen)

	result := svc.AnalyzeDocument(context.Background(), "some text", "llama3.2")

	assert.True(t, result.Degraded)
	assert.Contains(t, result.DegradedReason, "connection refused")
	assert.Equal(t, "neutral", result.OverallSentiment)
	assert.Equal(t, 50, result.SentimentScore)
	assert.Equal(t, 50, result.ConfidenceScore)
	assert.Equal(t, []string{"Analysis unavailable"}, result.KeyThemes)
	assert.Equal(t, 34, result.EmotionalTone["neutral"])
	assert.InDelta(t, 20.0, result.LinguisticMetrics["avgSentenceLength"], 0.001)
}

func TestAnalyzeDocumentDefaultsOnMalformedJSON(t *testing.T) {
	gen := &fakeGenerator{response: "I am sorry, I cannot produce JSON today."}
	svc := NewService(gen)

	result := svc.AnalyzeDocument(context.Background(), "some text", "mistral")

	assert.True(t, result.Degraded)
	assert.Contains(t, result.DegradedReason, "malformed JSON")
	assert.Equal(t, 50, result.SentimentScore)
}

func TestAnalyzeSectionsParsesModelOutput(t *testing.T) {
	gen := &fakeGenerator{response: `{"sections": [
		{"section_title": "Introduction", "section_type": "introduction", "original_text": "Welcome...", "sentiment_score": 60, "confidence_score": 55, "clarity_score": 70, "readability_score": 65, "specificity_score": 40, "issues": ["Vague opening"], "suggested_revision": "Open with the quarter's numbers.", "revision_rationale": "Concrete data builds confidence."},
		{"section_title": "Outlook", "section_type": "outlook", "original_text": "We expect...", "sentiment_score": 72, "confidence_score": 68, "clarity_score": 75, "readability_score": 70, "specificity_score": 55, "issues": [], "suggested_revision": "Quantify the guidance range.", "revision_rationale": "Ranges are more credible than adjectives."}
	]}`}
	svc := NewService(gen)

	result := svc.AnalyzeSections(context.Background(), "full text", "llama3.2")

	assert.False(t, result.Degraded)
	require.Len(t, result.Sections, 2)
	assert.Equal(t, "Introduction", result.Sections[0].SectionTitle)
	assert.Equal(t, "Outlook", result.Sections[1].SectionTitle)
	assert.Equal(t, []string{"Vague opening"}, result.Sections[0].Issues)
}

func TestAnalyzeSectionsDefaultsOnFailure(t *testing.T) {
	gen := &fakeGenerator{response: "not json"}
	svc := NewService(gen)

	text := strings.Repeat("A quarterly report paragraph. ", 40)
	result := svc.AnalyzeSections(context.Background(), text, "llama3.2")

	assert.True(t, result.Degraded)
	require.Len(t, result.Sections, 1)
	section := result.Sections[0]
	assert.Equal(t, "Full Document", section.SectionTitle)
	assert.Equal(t, "other", section.SectionType)
	assert.Equal(t, 50, section.SentimentScore)
	assert.Contains(t, section.Issues, "Analysis unavailable - check Ollama connection")
	assert.LessOrEqual(t, len(section.OriginalText), 500)
}

func TestAnalyzeSectionsDefaultsOnEmptySections(t *testing.T) {
	gen := &fakeGenerator{response: `{"sections": []}`}
	svc := NewService(gen)

	result := svc.AnalyzeSections(context.Background(), "text", "llama3.2")

	assert.True(t, result.Degraded)
	assert.Len(t, result.Sections, 1)
}

func TestPromptTruncation(t *testing.T) {
	long := strings.Repeat("x", maxPromptChars+500)
	prompt := documentPrompt(long)

	assert.NotContains(t, prompt, strings.Repeat("x", maxPromptChars+1))
	assert.Contains(t, prompt, strings.Repeat("x", maxPromptChars))
}
