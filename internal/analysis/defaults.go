package analysis

// excerptLimit caps the text stored in a default whole-document section
const excerptLimit = 500

// DefaultDocumentResult is the fixed neutral analysis substituted when the
// backend fails or returns malformed output. The scores are deliberately
// indistinguishable from a genuinely neutral document; the Degraded fields
// carry the distinction.
func DefaultDocumentResult(reason string) DocumentResult {
	return DocumentResult{
		OverallSentiment: "neutral",
		SentimentScore:   50,
		ConfidenceScore:  50,
		ClarityScore:     50,
		ReadabilityScore: 50,
		SpecificityScore: 50,
		KeyThemes:        []string{"Analysis unavailable"},
		EmotionalTone: map[string]int{
			"positive":  33,
			"negative":  33,
			"neutral":   34,
			"confident": 50,
			"uncertain": 50,
		},
		LinguisticMetrics: map[string]float64{
			"avgSentenceLength": 20.0,
			"complexWordRatio":  0.3,
			"passiveVoiceRatio": 0.2,
			"jargonDensity":     0.25,
			"hedgingLanguage":   0.15,
		},
		Degraded:       true,
		DegradedReason: reason,
	}
}

// DefaultSectionsResult is the single whole-document section substituted
// when section analysis fails. Unlike the document default, the issue list
// names the failure explicitly.
func DefaultSectionsResult(text, reason string) SectionsResult {
	excerpt := text
	if len(excerpt) > excerptLimit {
		excerpt = excerpt[:excerptLimit]
	}

	return SectionsResult{
		Sections: []SectionResult{{
			SectionTitle:      "Full Document",
			SectionType:       "other",
			OriginalText:      excerpt,
			SentimentScore:    50,
			ConfidenceScore:   50,
			ClarityScore:      50,
			ReadabilityScore:  50,
			SpecificityScore:  50,
			Issues:            []string{"Analysis unavailable - check Ollama connection"},
			SuggestedRevision: "Unable to generate suggestions. Please ensure Ollama is running and a model is available.",
			RevisionRationale: "Analysis requires a working Ollama installation with downloaded models.",
		}},
		Degraded:       true,
		DegradedReason: reason,
	}
}
