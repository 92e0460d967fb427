package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Aditya122221/ElevateAI-sub001/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*OllamaClient, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := NewOllamaClient(config.AIConfig{
		BaseURL:        server.URL,
		Model:          "mistral",
		TimeoutSeconds: 2,
	}, zap.NewNop())
	return client, server
}

func TestOllamaClient_Generate(t *testing.T) {
	var gotBody map[string]interface{}
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/generate", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		json.NewEncoder(w).Encode(map[string]string{"response": "hello there"})
	})

	out, err := client.Generate(context.Background(), "say hello")
	require.NoError(t, err)
	assert.Equal(t, "hello there", out)

	// Wire contract: {model, prompt, stream:false}
	assert.Equal(t, "mistral", gotBody["model"])
	assert.Equal(t, "say hello", gotBody["prompt"])
	assert.Equal(t, false, gotBody["stream"])
}

func TestOllamaClient_NonOKStatus(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := client.Generate(context.Background(), "prompt")
	assert.Error(t, err)
}

func TestOllamaClient_MissingResponseField(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"unexpected": "shape"})
	})

	_, err := client.Generate(context.Background(), "prompt")
	assert.Error(t, err)
}

func TestOllamaClient_ListModels(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/tags", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"models": []map[string]string{
				{"name": "mistral:latest"},
				{"name": "llama3:8b"},
			},
		})
	})

	names, err := client.ListModels(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"mistral:latest", "llama3:8b"}, names)
}

func TestOllamaClient_ListModels_NonOKStatus(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	_, err := client.ListModels(context.Background())
	assert.Error(t, err)
}

func TestOllamaClient_Unreachable(t *testing.T) {
	client, server := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {})
	server.Close()

	_, err := client.Generate(context.Background(), "prompt")
	assert.Error(t, err)
}
