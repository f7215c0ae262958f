// Package embedding provides a client for the Cohere embed API.
package embedding

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

type CohereClient struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
}

func NewCohereClient(baseURL, apiKey, model string) *CohereClient {
	if baseURL == "" {
		baseURL = "https://api.cohere.ai/v1"
	}
	if model == "" {
		model = "embed-english-light-v2.0"
	}
	return &CohereClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		model:   model,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type embedRequest struct {
	Texts []string `json:"texts"`
	Model string   `json:"model"`
}

type embedResponse struct {
	Embeddings [][]float32 `json:"embeddings"`
	Message    string      `json:"message,omitempty"`
}

// Embed converts a batch of texts into vectors. The response preserves input
// order and every vector has the model's fixed dimensionality.
func (c *CohereClient) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}
	if strings.TrimSpace(c.apiKey) == "" {
		return nil, errors.New("cohere: api key is required")
	}

	b, err := json.Marshal(embedRequest{Texts: texts, Model: c.model})
	if err != nil {
		return nil, err
	}

	url := c.baseURL + "/embed"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("cohere: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4*1024))
		msg := strings.TrimSpace(string(body))
		if msg == "" {
			msg = fmt.Sprintf("status %d", resp.StatusCode)
		}
		return nil, fmt.Errorf("cohere: %s", msg)
	}

	var decoded embedResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("cohere: decode response: %w", err)
	}
	if len(decoded.Embeddings) != len(texts) {
		return nil, fmt.Errorf("cohere: expected %d embeddings, got %d", len(texts), len(decoded.Embeddings))
	}
	return decoded.Embeddings, nil
}
