// Package embedding calls the external embedding API that turns item text
// into vectors. The request/response shape follows the OpenAI embeddings
// endpoint, which local runtimes such as Ollama also serve.
package embedding

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/linenlady/inventory/pkg/config"
	invdomain "github.com/linenlady/inventory/services/inventory/domain"
)

const requestTimeout = 30 * time.Second

// Client is an HTTP client for the embeddings API.
type Client struct {
	httpClient *http.Client
	apiURL     string
	apiKey     string
	model      string
}

// NewClient builds a Client from config.
func NewClient(cfg *config.Config) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: requestTimeout},
		apiURL:     cfg.EmbeddingAPIURL,
		apiKey:     cfg.EmbeddingAPIKey,
		model:      cfg.EmbeddingModel,
	}
}

// Model returns the configured model identifier stored alongside each vector.
func (c *Client) Model() string {
	return c.model
}

type embedRequest struct {
	Model string `json:"model"`
	Input string `json:"input"`
}

type embedResponse struct {
	Data []struct {
		Embedding []float32 `json:"embedding"`
	} `json:"data"`
}

// Embed computes the vector for text. Connectivity failures and 5xx responses
// are wrapped in ErrUnavailable so callers can surface them as retryable.
func (c *Client) Embed(ctx context.Context, text string) ([]float32, error) {
	body, err := json.Marshal(embedRequest{Model: c.model, Input: text})
	if err != nil {
		return nil, fmt.Errorf("embedding: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("embedding: new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: embedding api: %v", invdomain.ErrUnavailable, err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode >= http.StatusInternalServerError {
		return nil, fmt.Errorf("%w: embedding api returned %d", invdomain.ErrUnavailable, resp.StatusCode)
	}
	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("embedding: api returned %d: %s", resp.StatusCode, msg)
	}

	var parsed embedResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("embedding: decode response: %w", err)
	}
	if len(parsed.Data) == 0 || len(parsed.Data[0].Embedding) == 0 {
		return nil, fmt.Errorf("embedding: api returned no vector")
	}
	return parsed.Data[0].Embedding, nil
}
