package transcribe

import "testing"

func TestDetectSpeakersNoLongPause(t *testing.T) {
	// Two segments five seconds apart by start time but with no silence
	// gap between them stay with the same speaker
	segments := []Segment{
		{Start: 0, End: 5, Text: "Good morning everyone."},
		{Start: 5, End: 10, Text: "Let's review the quarter."},
	}

	labelled := DetectSpeakers(segments)

	if labelled[0].Speaker != "Speaker 1" {
		t.Errorf("first segment speaker = %q, want Speaker 1", labelled[0].Speaker)
	}
	if labelled[1].Speaker != "Speaker 1" {
		t.Errorf("second segment speaker = %q, want Speaker 1", labelled[1].Speaker)
	}
}

func TestDetectSpeakersLongPauseStartsNewSpeaker(t *testing.T) {
	segments := []Segment{
		{Start: 0, End: 4, Text: "Thank you for joining."},
		{Start: 6.5, End: 10, Text: "Our first question comes from the line of..."},
		{Start: 10.2, End: 14, Text: "Thanks, my question is about margins."},
	}

	labelled := DetectSpeakers(segments)

	if labelled[0].Speaker != "Speaker 1" {
		t.Errorf("segment 0 speaker = %q, want Speaker 1", labelled[0].Speaker)
	}
	if labelled[1].Speaker != "Speaker 2" {
		t.Errorf("segment 1 speaker = %q, want Speaker 2 after >2s pause", labelled[1].Speaker)
	}
	if labelled[2].Speaker != "Speaker 2" {
		t.Errorf("segment 2 speaker = %q, want Speaker 2", labelled[2].Speaker)
	}
}

func TestDetectSpeakersEmpty(t *testing.T) {
	if got := DetectSpeakers(nil); len(got) != 0 {
		t.Errorf("expected empty result, got %v", got)
	}
}

func TestFormatWithSpeakers(t *testing.T) {
	segments := []Segment{
		{Start: 0, End: 4, Text: " Welcome to the call. ", Speaker: "Speaker 1"},
		{Start: 4, End: 8, Text: "Revenue was strong.", Speaker: "Speaker 1"},
		{Start: 12, End: 16, Text: "What drove the growth?", Speaker: "Speaker 2"},
	}

	formatted := FormatWithSpeakers(segments)

	want := "\nSpeaker 1:\nWelcome to the call. Revenue was strong.\n\nSpeaker 2:\nWhat drove the growth?"
	if formatted != want {
		t.Errorf("formatted transcript mismatch:\ngot:  %q\nwant: %q", formatted, want)
	}
}

func TestLookupPresetFallsBackToBalanced(t *testing.T) {
	preset := LookupPreset("no-such-preset")
	if preset.ModelSize != "base" || preset.Backend != BackendLocal {
		t.Errorf("unknown preset should fall back to balanced, got %+v", preset)
	}

	api := LookupPreset("api")
	if api.Backend != BackendAPI {
		t.Errorf("api preset backend = %s, want %s", api.Backend, BackendAPI)
	}
}
