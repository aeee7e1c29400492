package analysis

import "fmt"

// maxPromptChars is the character budget for document text embedded in a
// prompt. Truncation is by bytes of the head of the text and may cut
// mid-word; sentence boundaries are not respected.
const maxPromptChars = 8000

func truncate(text string, max int) string {
	if len(text) <= max {
		return text
	}
	return text[:max]
}

const documentSystemPrompt = `You are an expert in analyzing investor relations communications for sentiment, tone, and linguistic quality.
You provide detailed analysis in valid JSON format only. Be precise and analytical.`

func documentPrompt(text string) string {
	return fmt.Sprintf(`Analyze the following investor relations document and provide a comprehensive sentiment and linguistic analysis.

Document:
%s

Provide your analysis in the following JSON format (respond with ONLY valid JSON, no other text):
{
    "overall_sentiment": "positive|negative|neutral|mixed",
    "sentiment_score": <0-100>,
    "confidence_score": <0-100>,
    "clarity_score": <0-100>,
    "readability_score": <0-100>,
    "specificity_score": <0-100>,
    "key_themes": ["theme1", "theme2", "theme3"],
    "emotional_tone": {
        "positive": <0-100>,
        "negative": <0-100>,
        "neutral": <0-100>,
        "confident": <0-100>,
        "uncertain": <0-100>
    },
    "linguistic_metrics": {
        "avgSentenceLength": <float>,
        "complexWordRatio": <0-1>,
        "passiveVoiceRatio": <0-1>,
        "jargonDensity": <0-1>,
        "hedgingLanguage": <0-1>
    }
}

Scoring guidelines:
- Sentiment score: 0=very negative, 50=neutral, 100=very positive
- Confidence score: How assertive and certain the language is
- Clarity score: How easy to understand and unambiguous
- Readability score: Accessibility for general audience
- Specificity score: Use of concrete vs. vague language

Respond with ONLY the JSON object, no additional text.`, truncate(text, maxPromptChars))
}

const sectionsSystemPrompt = `You are an expert editor specializing in investor relations communications.
You provide actionable suggestions to improve clarity, confidence, and sentiment.
You respond with valid JSON format only.`

func sectionsPrompt(text string) string {
	return fmt.Sprintf(`Analyze the following investor relations document section by section. Break it into logical sections (e.g., Introduction, Financial Results, Outlook, Q&A) and provide detailed analysis for each.

Document:
%s

For each section, provide analysis in this JSON format (respond with ONLY valid JSON):
{
    "sections": [
        {
            "section_title": "Section name",
            "section_type": "introduction|financial_results|outlook|qa|other",
            "speaker": "Speaker name if applicable or null",
            "original_text": "First 500 chars of section text",
            "sentiment_score": <0-100>,
            "confidence_score": <0-100>,
            "clarity_score": <0-100>,
            "readability_score": <0-100>,
            "specificity_score": <0-100>,
            "issues": ["Issue 1", "Issue 2"],
            "suggested_revision": "Specific text revision suggestion",
            "revision_rationale": "Why this revision improves the text"
        }
    ]
}

Focus on identifying:
- Vague or hedging language that could be more specific
- Complex sentences that could be simplified
- Passive voice that could be active
- Negative framing that could be more positive
- Missing concrete data or metrics

Respond with ONLY the JSON object, no additional text.`, truncate(text, maxPromptChars))
}
