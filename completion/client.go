// Package completion wraps one-shot calls against a hosted text-generation
// service. Each call is a single blocking round trip: no retry, no caching,
// no streaming.
package completion

import (
	"context"
	"log/slog"

	apperrors "github.com/qianzmolloy/Llama2-on-HPG/errors"
	"github.com/qianzmolloy/Llama2-on-HPG/message"
	"github.com/qianzmolloy/Llama2-on-HPG/pkg/logging"
	"github.com/qianzmolloy/Llama2-on-HPG/pkg/telemetry"
	"github.com/qianzmolloy/Llama2-on-HPG/provider"
	"github.com/qianzmolloy/Llama2-on-HPG/transcript"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

// Client issues completions against a single provider. Credentials live in
// the provider's own config; the client never consults process-wide state.
type Client struct {
	provider       provider.Provider
	logger         *slog.Logger
	transcriptOpts []transcript.Option
}

// Option customises the client.
type Option func(*Client)

// WithLogger overrides the component logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithTranscriptOptions sets the prefix mapping used when flattening
// conversations for ChatCompletion.
func WithTranscriptOptions(opts ...transcript.Option) Option {
	return func(c *Client) {
		c.transcriptOpts = opts
	}
}

// NewClient creates a completion client around the given provider.
func NewClient(p provider.Provider, opts ...Option) (*Client, error) {
	if p == nil {
		return nil, apperrors.ErrNoProvider
	}
	c := &Client{
		provider: p,
		logger:   logging.WithComponent("completion"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Completion sends the prompt and parameters to the hosted service and
// returns the generated text verbatim. Failures from the transport or the
// service propagate to the caller unmodified.
func (c *Client) Completion(ctx context.Context, prompt string, params provider.Params) (string, error) {
	ctx, span := otel.Tracer("completion").Start(ctx, "Completion")
	span.SetAttributes(
		attribute.String("llm.model", params.Model),
		attribute.Float64("llm.temperature", params.Temperature),
		attribute.Float64("llm.top_p", params.TopP),
		attribute.Int("llm.max_tokens", params.MaxTokens),
	)

	out, err := c.provider.Generate(ctx, prompt, params)
	telemetry.End(span, err)
	if err != nil {
		c.logger.Error("completion failed", "model", params.Model, "error", err)
		return "", err
	}

	c.logger.Debug("completion succeeded",
		"model", params.Model,
		"prompt_len", len(prompt),
		"output_len", len(out),
	)
	return out, nil
}

// ChatCompletion flattens the conversation into a plain-text transcript and
// delivers it through Completion. Message order in the transcript exactly
// matches input order. A single leading system message becomes the transcript
// preamble; a trailing assistant cue invites the model to continue the
// conversation.
func (c *Client) ChatCompletion(ctx context.Context, msgs []*message.Message, params provider.Params) (string, error) {
	prompt, err := c.flatten(msgs)
	if err != nil {
		return "", err
	}
	return c.Completion(ctx, prompt, params)
}

func (c *Client) flatten(msgs []*message.Message) (string, error) {
	cfg := transcript.DefaultConfig()
	for _, opt := range c.transcriptOpts {
		opt(cfg)
	}

	var preamble string
	if len(msgs) > 0 && msgs[0].Role == message.RoleSystem {
		preamble = msgs[0].Content + cfg.Delimiter
		msgs = msgs[1:]
	}

	body, err := transcript.Build(msgs, c.transcriptOpts...)
	if err != nil {
		return "", err
	}

	if body == "" {
		return preamble + cfg.AssistantPrefix + ":", nil
	}
	return preamble + body + cfg.Delimiter + cfg.AssistantPrefix + ":", nil
}
