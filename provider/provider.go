package provider

import "context"

// Params are the generation parameters forwarded verbatim to the hosted
// service. Nothing here is validated or clamped locally; the service is the
// authority on what it accepts.
type Params struct {
	Model       string
	Temperature float64
	TopP        float64
	MaxTokens   int
}

// Provider is a single-round-trip text generation backend.
type Provider interface {
	Generate(ctx context.Context, prompt string, params Params) (string, error)
}
