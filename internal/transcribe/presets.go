package transcribe

// Preset is a named bundle of backend and quality settings
type Preset struct {
	Backend     BackendKind `json:"backend"`
	ModelSize   string      `json:"model_size"`
	Description string      `json:"description"`
}

// presets are the offered transcription configurations
var presets = map[string]Preset{
	"fast":         {Backend: BackendLocal, ModelSize: "tiny", Description: "Fastest, lower accuracy"},
	"balanced":     {Backend: BackendLocal, ModelSize: "base", Description: "Good balance of speed and accuracy"},
	"accurate":     {Backend: BackendLocal, ModelSize: "small", Description: "Better accuracy, slower"},
	"high_quality": {Backend: BackendLocal, ModelSize: "medium", Description: "High accuracy, requires GPU"},
	"api":          {Backend: BackendAPI, ModelSize: "whisper-1", Description: "Hosted Whisper API (requires API key)"},
}

// Presets returns the available transcription presets
func Presets() map[string]Preset {
	return presets
}

// LookupPreset returns the named preset, falling back to "balanced"
func LookupPreset(name string) Preset {
	if p, ok := presets[name]; ok {
		return p
	}
	return presets["balanced"]
}
