package ollama

// ModelRecommendation describes a model suggested for IR analysis
type ModelRecommendation struct {
	Name        string `json:"name"`
	Size        string `json:"size"`
	Description string `json:"description"`
	Recommended bool   `json:"recommended"`
}

// recommendedModels is the fixed recommendation list surfaced alongside the
// installed models.
var recommendedModels = []ModelRecommendation{
	{Name: "llama3.2", Size: "3B", Description: "Fast and efficient, good for quick analysis", Recommended: true},
	{Name: "llama3.1", Size: "8B", Description: "Balanced performance and quality", Recommended: true},
	{Name: "mistral", Size: "7B", Description: "Excellent for analytical tasks", Recommended: true},
	{Name: "phi3", Size: "3.8B", Description: "Compact and fast", Recommended: false},
	{Name: "gemma2", Size: "9B", Description: "High quality analysis", Recommended: false},
}

// Recommendations returns the recommended models for IR analysis
func Recommendations() []ModelRecommendation {
	return recommendedModels
}
