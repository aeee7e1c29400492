// Package transcribe converts audio files into timestamped text segments
// through pluggable speech-to-text backends, with a silence-gap heuristic
// for naive speaker turns.
package transcribe

import "context"

// BackendKind selects a speech-to-text backend
type BackendKind string

const (
	// BackendLocal runs the whisper CLI as a subprocess
	BackendLocal BackendKind = "whisper-local"
	// BackendAPI calls the hosted Whisper transcription API
	BackendAPI BackendKind = "whisper-api"
	// BackendAuto resolves to local when available, otherwise the API
	BackendAuto BackendKind = "auto"
)

// Options are per-call transcription settings
type Options struct {
	Language  string // language code, e.g. "en"
	ModelSize string // whisper model size for the local backend
}

// Segment is a timestamped span of transcribed speech. Speaker is filled
// by the heuristic post-process, not by the backend.
type Segment struct {
	Start   float64 `json:"start"`
	End     float64 `json:"end"`
	Text    string  `json:"text"`
	Speaker string  `json:"speaker,omitempty"`
}

// Result is the common transcription result from any backend
type Result struct {
	Text          string    `json:"text"`
	FormattedText string    `json:"formatted_text,omitempty"`
	Language      string    `json:"language"`
	Duration      float64   `json:"duration"`
	Segments      []Segment `json:"segments"`
	Backend       string    `json:"backend"`
	Model         string    `json:"model"`
}

// Backend is a pluggable speech-to-text implementation
type Backend interface {
	Transcribe(ctx context.Context, audioPath string, opts Options) (*Result, error)
	Name() BackendKind
}
