package embedding_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusshare/campusshare/internal/config"
	"github.com/campusshare/campusshare/internal/embedding"
	"github.com/campusshare/campusshare/internal/pkg/apperrors"
)

func inferenceConfig(endpoint string) *config.Config {
	cfg := &config.Config{}
	cfg.Embedding.Provider = "inference"
	cfg.Embedding.Endpoint = endpoint
	cfg.Embedding.Model = "test-model"
	cfg.Embedding.Dimension = 3
	cfg.Embedding.MaxTokens = 4
	cfg.Embedding.TimeoutSeconds = 2
	return cfg
}

func TestInferenceEmbedder_Embed(t *testing.T) {
	t.Run("posts the model and truncated input, returns the vector", func(t *testing.T) {
		var gotBody struct {
			Model string   `json:"model"`
			Input []string `json:"input"`
		}

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/embeddings", r.URL.Path)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

			json.NewEncoder(w).Encode(map[string]any{
				"data": []map[string]any{
					{"embedding": []float64{0.1, 0.2, 0.3}},
				},
			})
		}))
		defer server.Close()

		embedder, err := embedding.NewInferenceEmbedder(inferenceConfig(server.URL))
		require.NoError(t, err)

		vec, err := embedder.Embed(context.Background(), "one two three four five six")
		require.NoError(t, err)
		assert.Equal(t, []float64{0.1, 0.2, 0.3}, vec)

		assert.Equal(t, "test-model", gotBody.Model)
		require.Len(t, gotBody.Input, 1)
		assert.Equal(t, "one two three four", gotBody.Input[0])
	})

	t.Run("non-200 status is a provider error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "model overloaded", http.StatusServiceUnavailable)
		}))
		defer server.Close()

		embedder, err := embedding.NewInferenceEmbedder(inferenceConfig(server.URL))
		require.NoError(t, err)

		_, err = embedder.Embed(context.Background(), "anything")
		assert.ErrorIs(t, err, apperrors.ErrProvider)
	})

	t.Run("empty data is a provider error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]any{"data": []any{}})
		}))
		defer server.Close()

		embedder, err := embedding.NewInferenceEmbedder(inferenceConfig(server.URL))
		require.NoError(t, err)

		_, err = embedder.Embed(context.Background(), "anything")
		assert.ErrorIs(t, err, apperrors.ErrProvider)
	})

	t.Run("unreachable endpoint is a provider error", func(t *testing.T) {
		embedder, err := embedding.NewInferenceEmbedder(inferenceConfig("http://127.0.0.1:1"))
		require.NoError(t, err)

		_, err = embedder.Embed(context.Background(), "anything")
		assert.ErrorIs(t, err, apperrors.ErrProvider)
	})

	t.Run("missing endpoint fails construction", func(t *testing.T) {
		_, err := embedding.NewInferenceEmbedder(inferenceConfig(""))
		assert.Error(t, err)
	})
}
