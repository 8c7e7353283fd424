// Package llama talks to a hosted Llama-2 text-completion endpoint over
// plain HTTP. The endpoint accepts a flat prompt plus sampling parameters
// and returns the generated continuation.
package llama

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/qianzmolloy/Llama2-on-HPG/config"
	"github.com/qianzmolloy/Llama2-on-HPG/provider"
)

const defaultBaseURL = "https://api.llama-api.com/v1/completions"

// Config holds Llama provider configuration
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
}

// DefaultConfig returns default Llama configuration
func DefaultConfig(apiKey string) *Config {
	return &Config{
		APIKey:  apiKey,
		BaseURL: defaultBaseURL,
		Model:   "llama-2-13b-chat",
	}
}

// WithBaseURL set BaseURL.
func (cfg *Config) WithBaseURL(url string) *Config {
	cfg.BaseURL = url
	return cfg
}

// WithModel set model.
func (cfg *Config) WithModel(model string) *Config {
	cfg.Model = model
	return cfg
}

// Validate checks the config before first use.
func (cfg *Config) Validate() error {
	return config.ValidateProviderConfig(cfg.APIKey, cfg.Model)
}

// Provider implements the provider.Provider interface for a hosted Llama endpoint
type Provider struct {
	config *Config
	client *http.Client
}

// New creates a new Llama provider
func New(config *Config) *Provider {
	if config == nil {
		config = DefaultConfig("")
	}
	if config.BaseURL == "" {
		config.BaseURL = defaultBaseURL
	}
	if config.Model == "" {
		config.Model = "llama-2-13b-chat"
	}

	return &Provider{
		config: config,
		client: &http.Client{},
	}
}

// llamaRequest represents a completion API request
type llamaRequest struct {
	Model       string  `json:"model"`
	Prompt      string  `json:"prompt"`
	Temperature float64 `json:"temperature"`
	TopP        float64 `json:"top_p"`
	MaxTokens   int     `json:"max_tokens,omitempty"`
}

// llamaChoice represents a choice in the API response
type llamaChoice struct {
	Text string `json:"text"`
}

// llamaResponse represents a completion API response
type llamaResponse struct {
	Choices []llamaChoice `json:"choices"`
	Error   *llamaError   `json:"error,omitempty"`
}

// llamaError represents an error in the API response
type llamaError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
}

// Generate performs one blocking request/response round trip. Any transport
// or service failure is returned to the caller as-is; there is no retry.
func (p *Provider) Generate(ctx context.Context, prompt string, params provider.Params) (string, error) {
	model := params.Model
	if model == "" {
		model = p.config.Model
	}

	req := llamaRequest{
		Model:       model,
		Prompt:      prompt,
		Temperature: params.Temperature,
		TopP:        params.TopP,
		MaxTokens:   params.MaxTokens,
	}

	reqBody, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", p.config.BaseURL, bytes.NewBuffer(reqBody))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	if p.config.APIKey != "" {
		httpReq.Header.Set("Authorization", fmt.Sprintf("Bearer %s", p.config.APIKey))
	}

	httpResp, err := p.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if httpResp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("Llama API error (status %d): %s", httpResp.StatusCode, string(respBody))
	}

	var resp llamaResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return "", fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if resp.Error != nil {
		return "", fmt.Errorf("Llama API error: %s", resp.Error.Message)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices in response")
	}

	return resp.Choices[0].Text, nil
}
