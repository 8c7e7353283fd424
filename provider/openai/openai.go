// Package openai backs the provider interface with the official OpenAI SDK,
// for runs against OpenAI-compatible chat-completion deployments.
package openai

import (
	"context"
	"fmt"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/packages/param"
	"github.com/qianzmolloy/Llama2-on-HPG/config"
	"github.com/qianzmolloy/Llama2-on-HPG/provider"
)

// Config holds OpenAI provider configuration
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
}

// DefaultConfig returns default OpenAI configuration
func DefaultConfig(apiKey string) *Config {
	return &Config{
		APIKey: apiKey,
		Model:  "gpt-4o-mini",
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

// Provider implements the provider.Provider interface for OpenAI
type Provider struct {
	config *Config
	client openai.Client
}

// New creates a new OpenAI provider using the official SDK
func New(config *Config) *Provider {
	if config == nil {
		config = DefaultConfig("")
	}
	if config.Model == "" {
		config.Model = "gpt-4o-mini"
	}

	options := []option.RequestOption{option.WithAPIKey(config.APIKey)}
	if config.BaseURL != "" {
		options = append(options, option.WithBaseURL(config.BaseURL))
	}
	client := openai.NewClient(options...)

	return &Provider{
		config: config,
		client: client,
	}
}

// Generate sends the prompt as a single user turn. Sampling parameters are
// forwarded as given, including zero values.
func (p *Provider) Generate(ctx context.Context, prompt string, params provider.Params) (string, error) {
	model := params.Model
	if model == "" {
		model = p.config.Model
	}

	req := openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		Model:       openai.ChatModel(model),
		Temperature: param.NewOpt(params.Temperature),
		TopP:        param.NewOpt(params.TopP),
	}
	if params.MaxTokens > 0 {
		req.MaxCompletionTokens = param.NewOpt(int64(params.MaxTokens))
	}

	completion, err := p.client.Chat.Completions.New(ctx, req)
	if err != nil {
		return "", fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("no choices returned from OpenAI")
	}

	return completion.Choices[0].Message.Content, nil
}
