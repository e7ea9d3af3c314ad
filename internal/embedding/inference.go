package embedding

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/campusshare/campusshare/internal/config"
	"github.com/campusshare/campusshare/internal/pkg/apperrors"
)

// InferenceEmbedder calls an OpenAI-compatible /embeddings endpoint.
// Requests are bounded by the configured timeout; failures and expiries
// surface as provider errors so callers never block indefinitely on a
// remote model.
type InferenceEmbedder struct {
	baseURL    string
	model      string
	dimension  int
	maxTokens  int
	httpClient *http.Client
}

// NewInferenceEmbedder constructs an HTTP-backed embedder from config.
func NewInferenceEmbedder(cfg *config.Config) (*InferenceEmbedder, error) {
	if cfg.Embedding.Endpoint == "" {
		return nil, fmt.Errorf("embedding: missing inference endpoint")
	}

	return &InferenceEmbedder{
		baseURL:    strings.TrimRight(cfg.Embedding.Endpoint, "/"),
		model:      cfg.Embedding.Model,
		dimension:  cfg.Embedding.Dimension,
		maxTokens:  cfg.Embedding.MaxTokens,
		httpClient: &http.Client{Timeout: time.Duration(cfg.Embedding.TimeoutSeconds) * time.Second},
	}, nil
}

// Dimension returns the dimensionality of the produced embedding vectors.
func (e *InferenceEmbedder) Dimension() int { return e.dimension }

// Embed requests an embedding for the given text. The input is truncated
// to the token budget before it is sent.
func (e *InferenceEmbedder) Embed(ctx context.Context, text string) ([]float64, error) {
	text = truncateTokens(text, e.maxTokens)

	reqBody := map[string]any{
		"model": e.model,
		"input": []string{text},
	}

	var parsed struct {
		Data []struct {
			Embedding []float64 `json:"embedding"`
		} `json:"data"`
	}

	if err := e.postJSON(ctx, e.baseURL+"/embeddings", reqBody, &parsed); err != nil {
		return nil, &apperrors.CustomError{Err: apperrors.ErrProvider, Message: err.Error()}
	}

	if len(parsed.Data) == 0 || len(parsed.Data[0].Embedding) == 0 {
		return nil, apperrors.NewProviderError("inference returned empty embedding data")
	}

	return parsed.Data[0].Embedding, nil
}

func (e *InferenceEmbedder) postJSON(ctx context.Context, url string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("inference: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("inference: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("inference: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("inference: unexpected status %d: %s", resp.StatusCode, string(snippet))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("inference: decode response: %w", err)
	}
	return nil
}

// truncateTokens keeps at most n whitespace-delimited tokens of text.
func truncateTokens(text string, n int) string {
	if n <= 0 {
		return text
	}
	fields := strings.Fields(text)
	if len(fields) <= n {
		return text
	}
	return strings.Join(fields[:n], " ")
}
