package transcribe

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// LocalBackend transcribes by running the whisper CLI as a subprocess and
// reading its JSON output file.
type LocalBackend struct {
	binary string
}

// NewLocalBackend locates the whisper binary. A missing binary is a
// configuration error surfaced at construction, not per call.
func NewLocalBackend() (*LocalBackend, error) {
	binary, err := exec.LookPath("whisper")
	if err != nil {
		return nil, fmt.Errorf("whisper CLI not found in PATH, install with: pip install openai-whisper")
	}
	return &LocalBackend{binary: binary}, nil
}

// Name returns the backend identifier
func (b *LocalBackend) Name() BackendKind {
	return BackendLocal
}

// whisperOutput is the shape of the whisper CLI JSON output file
type whisperOutput struct {
	Text     string `json:"text"`
	Language string `json:"language"`
	Segments []struct {
		Start float64 `json:"start"`
		End   float64 `json:"end"`
		Text  string  `json:"text"`
	} `json:"segments"`
}

// Transcribe runs whisper on the audio file and parses the JSON it writes
func (b *LocalBackend) Transcribe(ctx context.Context, audioPath string, opts Options) (*Result, error) {
	modelSize := opts.ModelSize
	if modelSize == "" {
		modelSize = "base"
	}
	language := opts.Language
	if language == "" {
		language = "en"
	}

	outputDir, err := os.MkdirTemp("", "whisper-")
	if err != nil {
		return nil, fmt.Errorf("failed to create whisper output directory: %w", err)
	}
	defer os.RemoveAll(outputDir)

	log.Printf("Transcribing %s with whisper model %s", audioPath, modelSize)

	cmd := exec.CommandContext(ctx, b.binary, audioPath,
		"--model", modelSize,
		"--language", language,
		"--output_format", "json",
		"--output_dir", outputDir,
	)
	if output, err := cmd.CombinedOutput(); err != nil {
		return nil, fmt.Errorf("whisper failed: %w (output: %.500s)", err, string(output))
	}

	stem := strings.TrimSuffix(filepath.Base(audioPath), filepath.Ext(audioPath))
	resultPath := filepath.Join(outputDir, stem+".json")

	data, err := os.ReadFile(resultPath)
	if err != nil {
		return nil, fmt.Errorf("whisper produced no output file: %w", err)
	}

	var parsed whisperOutput
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse whisper output: %w", err)
	}

	result := &Result{
		Text:     parsed.Text,
		Language: parsed.Language,
		Backend:  string(BackendLocal),
		Model:    modelSize,
	}
	if result.Language == "" {
		result.Language = language
	}
	for _, seg := range parsed.Segments {
		result.Segments = append(result.Segments, Segment{
			Start: seg.Start,
			End:   seg.End,
			Text:  seg.Text,
		})
	}
	if n := len(result.Segments); n > 0 {
		result.Duration = result.Segments[n-1].End
	}

	return result, nil
}
