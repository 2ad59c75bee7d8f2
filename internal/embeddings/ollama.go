package embeddings

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// Compile-time interface check.
var _ Provider = (*OllamaProvider)(nil)

const defaultOllamaURL = "http://localhost:11434"

// OllamaProvider implements Provider using a local Ollama server's
// /api/embed endpoint.
type OllamaProvider struct {
	baseURL string
	model   string
	client  *http.Client
}

// NewOllamaProvider creates an OllamaProvider with a 30-second timeout HTTP
// client. An empty baseURL falls back to the default local address.
func NewOllamaProvider(baseURL, model string) *OllamaProvider {
	if baseURL == "" {
		baseURL = defaultOllamaURL
	}
	return &OllamaProvider{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		model:   model,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// ollamaRequest is the request body for the Ollama embed API.
type ollamaRequest struct {
	Model string   `json:"model"`
	Input []string `json:"input"`
}

// ollamaResponse is the response body from the Ollama embed API.
type ollamaResponse struct {
	Embeddings [][]float64 `json:"embeddings"`
}

// Embed requests an embedding for the given text from the Ollama server.
func (p *OllamaProvider) Embed(ctx context.Context, text string) ([]float64, error) {
	body, err := json.Marshal(ollamaRequest{
		Model: p.model,
		Input: []string{text},
	})
	if err != nil {
		return nil, fmt.Errorf("ollama embed: marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/api/embed", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("ollama embed: creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	slog.Debug("calling ollama embed API", "model", p.model)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ollama embed: sending request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ollama embed: unexpected status code: %d", resp.StatusCode)
	}

	var apiResp ollamaResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("ollama embed: parsing response: %w", err)
	}

	if len(apiResp.Embeddings) == 0 || len(apiResp.Embeddings[0]) == 0 {
		return nil, fmt.Errorf("ollama embed: empty response: no embeddings returned")
	}
	return apiResp.Embeddings[0], nil
}
