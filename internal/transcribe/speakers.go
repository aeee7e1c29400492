package transcribe

import (
	"fmt"
	"strings"
)

// speakerGapSeconds is the silence gap between consecutive segments that
// marks a speaker change.
const speakerGapSeconds = 2.0

// DetectSpeakers assigns incrementing "Speaker N" labels using a silence
// gap heuristic. This is a coarse placeholder: there is no acoustic speaker
// identification and a recurring speaker gets a new label each turn.
func DetectSpeakers(segments []Segment) []Segment {
	if len(segments) == 0 {
		return segments
	}

	speakerID := 1
	lastEnd := 0.0

	for i := range segments {
		if segments[i].Start-lastEnd > speakerGapSeconds {
			speakerID++
		}
		segments[i].Speaker = fmt.Sprintf("Speaker %d", speakerID)
		lastEnd = segments[i].End
	}

	return segments
}

// FormatWithSpeakers renders segments as speaker-labelled turn blocks
func FormatWithSpeakers(segments []Segment) string {
	var lines []string
	var currentSpeaker string
	var currentText []string

	flush := func() {
		if currentSpeaker != "" && len(currentText) > 0 {
			lines = append(lines, "\n"+currentSpeaker+":")
			lines = append(lines, strings.Join(currentText, " "))
		}
	}

	for _, segment := range segments {
		speaker := segment.Speaker
		if speaker == "" {
			speaker = "Unknown"
		}

		if speaker != currentSpeaker {
			flush()
			currentSpeaker = speaker
			currentText = []string{strings.TrimSpace(segment.Text)}
		} else {
			currentText = append(currentText, strings.TrimSpace(segment.Text))
		}
	}
	flush()

	return strings.Join(lines, "\n")
}
