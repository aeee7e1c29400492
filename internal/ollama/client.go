// Package ollama is a typed client for the Ollama HTTP API.
package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// Config holds the Ollama connection settings, injected at construction so
// tests can point the client at a fake server.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// LoadConfig loads Ollama configuration from environment variables
func LoadConfig() Config {
	baseURL := os.Getenv("OLLAMA_BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:11434"
	}
	return Config{
		BaseURL: baseURL,
		Timeout: 120 * time.Second,
	}
}

// Client represents an Ollama API client
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new Ollama client
func NewClient(config Config) *Client {
	if config.BaseURL == "" {
		config.BaseURL = "http://localhost:11434"
	}
	if config.Timeout == 0 {
		// Local inference can be slow, so the default timeout is generous
		config.Timeout = 120 * time.Second
	}

	return &Client{
		baseURL: config.BaseURL,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
	}
}

// GenerateOptions are sampling options passed through to the model
type GenerateOptions struct {
	Temperature float64 `json:"temperature"`
}

// GenerateRequest is the payload for the generate endpoint
type GenerateRequest struct {
	Model   string          `json:"model"`
	Prompt  string          `json:"prompt"`
	System  string          `json:"system,omitempty"`
	Stream  bool            `json:"stream"`
	Format  string          `json:"format,omitempty"`
	Options GenerateOptions `json:"options"`
}

// generateResponse is the non-streaming response shape
type generateResponse struct {
	Response string `json:"response"`
}

// tagsResponse is the model listing response shape
type tagsResponse struct {
	Models []struct {
		Name string `json:"name"`
	} `json:"models"`
}

// Status describes Ollama availability and the installed models
type Status struct {
	Available  bool     `json:"available"`
	Models     []string `json:"models,omitempty"`
	ModelCount int      `json:"model_count"`
	Error      string   `json:"error,omitempty"`
}

// TestResult is the outcome of a model self-test
type TestResult struct {
	Success bool   `json:"success"`
	Model   string `json:"model"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Generate sends a prompt to the model and returns the generated text
func (c *Client) Generate(ctx context.Context, request GenerateRequest) (string, error) {
	body, err := json.Marshal(request)
	if err != nil {
		return "", fmt.Errorf("failed to marshal generate request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/api/generate", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("error calling Ollama: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("Ollama API error: %d - %s", resp.StatusCode, string(respBody))
	}

	var generated generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&generated); err != nil {
		return "", fmt.Errorf("failed to decode generate response: %w", err)
	}

	return generated.Response, nil
}

// ListModels returns the names of the installed models
func (c *Client) ListModels(ctx context.Context) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", c.baseURL+"/api/tags", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error fetching models: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("Ollama API error: %d", resp.StatusCode)
	}

	var tags tagsResponse
	if err := json.NewDecoder(resp.Body).Decode(&tags); err != nil {
		return nil, fmt.Errorf("failed to decode tags response: %w", err)
	}

	models := make([]string, 0, len(tags.Models))
	for _, m := range tags.Models {
		models = append(models, m.Name)
	}
	return models, nil
}

// CheckStatus probes Ollama with a short timeout and reports availability
func (c *Client) CheckStatus(ctx context.Context) Status {
	probeCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	models, err := c.ListModels(probeCtx)
	if err != nil {
		return Status{
			Available: false,
			Error:     fmt.Sprintf("Cannot connect to Ollama. Is it running? (%v)", err),
		}
	}

	return Status{
		Available:  true,
		Models:     models,
		ModelCount: len(models),
	}
}

// TestModel round-trips a trivial prompt and verifies the response parses
// as JSON. Pure read/verify, no side effects.
func (c *Client) TestModel(ctx context.Context, model string) TestResult {
	response, err := c.Generate(ctx, GenerateRequest{
		Model:   model,
		Prompt:  "Respond with a JSON object containing a single field 'status' with value 'ok'",
		Stream:  false,
		Format:  "json",
		Options: GenerateOptions{Temperature: 0.1},
	})
	if err != nil {
		return TestResult{Success: false, Model: model, Error: err.Error()}
	}

	var parsed interface{}
	if err := json.Unmarshal([]byte(response), &parsed); err != nil {
		return TestResult{Success: false, Model: model, Error: fmt.Sprintf("model did not return valid JSON: %v", err)}
	}

	return TestResult{Success: true, Model: model, Message: "Model is working correctly"}
}
