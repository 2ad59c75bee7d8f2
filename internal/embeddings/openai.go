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
var _ Provider = (*OpenAIProvider)(nil)

const defaultOpenAIURL = "https://api.openai.com/v1"

// OpenAIProvider implements Provider using the OpenAI Embeddings API (or any
// API-compatible server when baseURL is overridden).
type OpenAIProvider struct {
	baseURL string
	apiKey  string
	model   string
	client  *http.Client
}

// NewOpenAIProvider creates an OpenAIProvider with a 30-second timeout HTTP
// client.
func NewOpenAIProvider(baseURL, apiKey, model string) *OpenAIProvider {
	if baseURL == "" {
		baseURL = defaultOpenAIURL
	}
	return &OpenAIProvider{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		apiKey:  apiKey,
		model:   model,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// openaiRequest is the request body for the OpenAI Embeddings API.
type openaiRequest struct {
	Model string `json:"model"`
	Input string `json:"input"`
}

// openaiResponse is the response body from the OpenAI Embeddings API.
type openaiResponse struct {
	Data []struct {
		Embedding []float64 `json:"embedding"`
	} `json:"data"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Embed requests an embedding for the given text.
func (p *OpenAIProvider) Embed(ctx context.Context, text string) ([]float64, error) {
	body, err := json.Marshal(openaiRequest{
		Model: p.model,
		Input: text,
	})
	if err != nil {
		return nil, fmt.Errorf("openai embed: marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/embeddings", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("openai embed: creating request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+p.apiKey)
	req.Header.Set("Content-Type", "application/json")

	slog.Debug("calling OpenAI embeddings API", "model", p.model)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("openai embed: sending request: %w", err)
	}
	defer resp.Body.Close()

	var apiResp openaiResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("openai embed: parsing response (status %d): %w", resp.StatusCode, err)
	}

	if apiResp.Error != nil {
		return nil, fmt.Errorf("openai embed: API error (status %d): %s", resp.StatusCode, apiResp.Error.Message)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("openai embed: unexpected status code: %d", resp.StatusCode)
	}
	if len(apiResp.Data) == 0 || len(apiResp.Data[0].Embedding) == 0 {
		return nil, fmt.Errorf("openai embed: empty response: no embedding returned")
	}
	return apiResp.Data[0].Embedding, nil
}
