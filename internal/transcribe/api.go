package transcribe

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

// APIBackend transcribes through the hosted Whisper API
type APIBackend struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewAPIBackend creates the remote backend. A missing API key is a
// configuration error surfaced at construction.
func NewAPIBackend(apiKey, baseURL string) (*APIBackend, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY not set, required for the whisper-api backend")
	}
	if baseURL == "" {
		baseURL = "https://api.openai.com"
	}

	return &APIBackend{
		apiKey:  apiKey,
		baseURL: baseURL,
		httpClient: &http.Client{
			// Large audio uploads and server-side transcription are slow
			Timeout: 10 * time.Minute,
		},
	}, nil
}

// Name returns the backend identifier
func (b *APIBackend) Name() BackendKind {
	return BackendAPI
}

// verboseTranscription is the verbose_json response shape
type verboseTranscription struct {
	Text     string  `json:"text"`
	Language string  `json:"language"`
	Duration float64 `json:"duration"`
	Segments []struct {
		Start float64 `json:"start"`
		End   float64 `json:"end"`
		Text  string  `json:"text"`
	} `json:"segments"`
}

// Transcribe uploads the audio file and parses the verbose JSON response
func (b *APIBackend) Transcribe(ctx context.Context, audioPath string, opts Options) (*Result, error) {
	file, err := os.Open(audioPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open audio file: %w", err)
	}
	defer file.Close()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", filepath.Base(audioPath))
	if err != nil {
		return nil, fmt.Errorf("failed to build multipart request: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, fmt.Errorf("failed to read audio file: %w", err)
	}

	_ = writer.WriteField("model", "whisper-1")
	_ = writer.WriteField("response_format", "verbose_json")
	if opts.Language != "" {
		_ = writer.WriteField("language", opts.Language)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize multipart request: %w", err)
	}

	log.Printf("Transcribing %s via Whisper API", audioPath)

	req, err := http.NewRequestWithContext(ctx, "POST", b.baseURL+"/v1/audio/transcriptions", &body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+b.apiKey)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := b.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("transcription API request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("transcription API error: %d - %.500s", resp.StatusCode, string(respBody))
	}

	var parsed verboseTranscription
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to parse transcription response: %w", err)
	}

	result := &Result{
		Text:     parsed.Text,
		Language: parsed.Language,
		Duration: parsed.Duration,
		Backend:  string(BackendAPI),
		Model:    "whisper-1",
	}
	for _, seg := range parsed.Segments {
		result.Segments = append(result.Segments, Segment{
			Start: seg.Start,
			End:   seg.End,
			Text:  seg.Text,
		})
	}
	if result.Duration == 0 {
		if n := len(result.Segments); n > 0 {
			result.Duration = result.Segments[n-1].End
		}
	}

	return result, nil
}
