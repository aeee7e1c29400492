package ollama

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/generate", r.URL.Path)
		require.Equal(t, "POST", r.Method)

		var req GenerateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "llama3.2", req.Model)
		assert.False(t, req.Stream)

		json.NewEncoder(w).Encode(map[string]string{"response": `{"ok": true}`})
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL})

	response, err := client.Generate(context.Background(), GenerateRequest{
		Model:  "llama3.2",
		Prompt: "hello",
	})
	require.NoError(t, err)
	assert.Equal(t, `{"ok": true}`, response)
}

func TestGenerateServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not found", http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL})

	_, err := client.Generate(context.Background(), GenerateRequest{Model: "nope"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestListModels(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/tags", r.URL.Path)
		w.Write([]byte(`{"models": [{"name": "llama3.2:latest"}, {"name": "mistral:latest"}]}`))
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL})

	models, err := client.ListModels(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"llama3.2:latest", "mistral:latest"}, models)
}

func TestCheckStatusAvailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"models": [{"name": "llama3.2:latest"}]}`))
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL})

	status := client.CheckStatus(context.Background())
	assert.True(t, status.Available)
	assert.Equal(t, 1, status.ModelCount)
	assert.Empty(t, status.Error)
}

func TestCheckStatusUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewClient(Config{BaseURL: server.URL})

	status := client.CheckStatus(context.Background())
	assert.False(t, status.Available)
	assert.NotEmpty(t, status.Error)
	assert.Zero(t, status.ModelCount)
}

func TestTestModel(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"response": `{"status": "ok"}`})
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL})

	result := client.TestModel(context.Background(), "llama3.2")
	assert.True(t, result.Success)
	assert.Equal(t, "llama3.2", result.Model)
}

func TestTestModelNonJSONResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"response": "sure, here is some JSON:"})
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL})

	result := client.TestModel(context.Background(), "llama3.2")
	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "valid JSON")
}
