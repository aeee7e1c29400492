package transcribe

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/exec"
)

// Config holds transcription settings injected at construction
type Config struct {
	APIKey     string // hosted Whisper API key, empty disables the API backend
	APIBaseURL string // override for tests
}

// LoadConfig loads transcription configuration from environment variables
func LoadConfig() Config {
	return Config{
		APIKey:     os.Getenv("OPENAI_API_KEY"),
		APIBaseURL: os.Getenv("WHISPER_API_BASE_URL"),
	}
}

// Availability is the set of usable backends, determined once by Probe
type Availability struct {
	LocalAvailable bool `json:"whisper_local_available"`
	APIAvailable   bool `json:"whisper_api_available"`
}

// Probe checks backend dependencies once. Call sites resolve "auto"
// against this result instead of re-checking availability per call.
func Probe(config Config) Availability {
	_, localErr := exec.LookPath("whisper")
	return Availability{
		LocalAvailable: localErr == nil,
		APIAvailable:   config.APIKey != "",
	}
}

// Service dispatches transcription to the configured backends
type Service struct {
	config       Config
	availability Availability
}

// NewService probes backend availability and returns the service
func NewService(config Config) *Service {
	availability := Probe(config)
	log.Printf("Transcription backends: local=%v api=%v", availability.LocalAvailable, availability.APIAvailable)
	return &Service{config: config, availability: availability}
}

// Availability returns the probed backend availability
func (s *Service) Availability() Availability {
	return s.availability
}

// resolveBackend maps a requested backend kind to a constructed backend,
// resolving auto local-first.
func (s *Service) resolveBackend(kind BackendKind) (Backend, error) {
	if kind == BackendAuto {
		switch {
		case s.availability.LocalAvailable:
			kind = BackendLocal
		case s.availability.APIAvailable:
			kind = BackendAPI
		default:
			return nil, fmt.Errorf("no transcription backend available: install whisper or set OPENAI_API_KEY")
		}
	}

	switch kind {
	case BackendLocal:
		if !s.availability.LocalAvailable {
			return nil, fmt.Errorf("whisper-local backend unavailable: whisper CLI not found in PATH")
		}
		return NewLocalBackend()
	case BackendAPI:
		if !s.availability.APIAvailable {
			return nil, fmt.Errorf("whisper-api backend unavailable: OPENAI_API_KEY not set")
		}
		return NewAPIBackend(s.config.APIKey, s.config.APIBaseURL)
	default:
		return nil, fmt.Errorf("unknown transcription backend: %s", kind)
	}
}

// Params are high-level transcription parameters
type Params struct {
	Backend        BackendKind
	Language       string
	ModelSize      string
	DetectSpeakers bool
}

// Transcribe validates the file, runs the chosen backend, and optionally
// applies the speaker heuristic and formatted transcript.
func (s *Service) Transcribe(ctx context.Context, audioPath string, params Params) (*Result, error) {
	if err := ValidateFile(audioPath, MaxAudioSizeMB); err != nil {
		return nil, fmt.Errorf("invalid audio file: %w", err)
	}

	backend, err := s.resolveBackend(params.Backend)
	if err != nil {
		return nil, err
	}

	result, err := backend.Transcribe(ctx, audioPath, Options{
		Language:  params.Language,
		ModelSize: params.ModelSize,
	})
	if err != nil {
		return nil, err
	}

	if params.DetectSpeakers && len(result.Segments) > 0 {
		result.Segments = DetectSpeakers(result.Segments)
		result.FormattedText = FormatWithSpeakers(result.Segments)
	} else {
		result.FormattedText = result.Text
	}

	return result, nil
}
