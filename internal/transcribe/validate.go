package transcribe

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// MaxAudioSizeMB is the upload cap for audio files
const MaxAudioSizeMB = 100

// AudioExtensions is the accepted audio file extension allow-list
var AudioExtensions = []string{".mp3", ".wav", ".m4a", ".ogg", ".flac", ".webm", ".mp4"}

// IsAudioExtension checks an extension against the allow-list
func IsAudioExtension(ext string) bool {
	ext = strings.ToLower(ext)
	for _, allowed := range AudioExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}

// ValidateFile checks that an audio file exists, is under the size cap,
// and has an allowed extension.
func ValidateFile(audioPath string, maxSizeMB int64) error {
	info, err := os.Stat(audioPath)
	if err != nil {
		return fmt.Errorf("file not found: %s", audioPath)
	}

	sizeMB := float64(info.Size()) / (1024 * 1024)
	if info.Size() > maxSizeMB*1024*1024 {
		return fmt.Errorf("file too large: %.1fMB (max %dMB)", sizeMB, maxSizeMB)
	}

	if ext := filepath.Ext(audioPath); !IsAudioExtension(ext) {
		return fmt.Errorf("unsupported format: %s", ext)
	}

	return nil
}
