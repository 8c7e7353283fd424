// Package claude backs the provider interface with the official Anthropic SDK.
package claude

import (
	"context"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/anthropics/anthropic-sdk-go/packages/param"
	"github.com/qianzmolloy/Llama2-on-HPG/config"
	"github.com/qianzmolloy/Llama2-on-HPG/provider"
)

// defaultMaxTokens applies when the caller leaves MaxTokens unset; the
// Anthropic API requires the field.
const defaultMaxTokens = 1024

// Config holds Claude provider configuration
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
}

// DefaultConfig returns default Claude configuration
func DefaultConfig(apiKey string) *Config {
	return &Config{
		APIKey: apiKey,
		Model:  "claude-3-5-sonnet-20241022",
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

// Provider implements the provider.Provider interface for Claude
type Provider struct {
	config *Config
	client anthropic.Client
}

// New creates a new Claude provider using the official SDK
func New(config *Config) *Provider {
	if config == nil {
		config = DefaultConfig("")
	}
	if config.Model == "" {
		config.Model = "claude-3-5-sonnet-20241022"
	}

	options := []option.RequestOption{option.WithAPIKey(config.APIKey)}
	if config.BaseURL != "" {
		options = append(options, option.WithBaseURL(config.BaseURL))
	}
	client := anthropic.NewClient(options...)

	return &Provider{
		config: config,
		client: client,
	}
}

// Generate sends the prompt as a single user turn and returns the first text
// block of the reply.
func (p *Provider) Generate(ctx context.Context, prompt string, params provider.Params) (string, error) {
	model := params.Model
	if model == "" {
		model = p.config.Model
	}

	maxTokens := int64(params.MaxTokens)
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}

	req := anthropic.MessageNewParams{
		Model: anthropic.Model(model),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
		MaxTokens:   maxTokens,
		Temperature: param.NewOpt(params.Temperature),
		TopP:        param.NewOpt(params.TopP),
	}

	apiMessage, err := p.client.Messages.New(ctx, req)
	if err != nil {
		return "", fmt.Errorf("Claude API error: %w", err)
	}

	for _, content := range apiMessage.Content {
		if content.Type == "text" {
			return content.Text, nil
		}
	}

	return "", fmt.Errorf("no text content in Claude response")
}
