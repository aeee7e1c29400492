package transcribe

import (
	"os"
	"path/filepath"
	"testing"
)

func TestValidateFile(t *testing.T) {
	dir := t.TempDir()

	audioPath := filepath.Join(dir, "call.mp3")
	if err := os.WriteFile(audioPath, []byte("fake audio bytes"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := ValidateFile(audioPath, 100); err != nil {
		t.Errorf("valid file rejected: %v", err)
	}

	if err := ValidateFile(filepath.Join(dir, "missing.mp3"), 100); err == nil {
		t.Error("missing file should be rejected")
	}

	textPath := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(textPath, []byte("text"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := ValidateFile(textPath, 100); err == nil {
		t.Error("non-audio extension should be rejected")
	}

	// A zero-MB cap rejects any non-empty file
	if err := ValidateFile(audioPath, 0); err == nil {
		t.Error("file over the size cap should be rejected")
	}
}

func TestIsAudioExtension(t *testing.T) {
	for _, ext := range []string{".mp3", ".WAV", ".m4a", ".ogg", ".flac", ".webm", ".mp4"} {
		if !IsAudioExtension(ext) {
			t.Errorf("expected %s to be accepted", ext)
		}
	}
	for _, ext := range []string{".txt", ".pdf", ".aac", ""} {
		if IsAudioExtension(ext) {
			t.Errorf("expected %s to be rejected", ext)
		}
	}
}

func TestProbeReflectsConfig(t *testing.T) {
	withKey := Probe(Config{APIKey: "sk-test"})
	if !withKey.APIAvailable {
		t.Error("API backend should be available when a key is configured")
	}

	withoutKey := Probe(Config{})
	if withoutKey.APIAvailable {
		t.Error("API backend should be unavailable without a key")
	}
}
