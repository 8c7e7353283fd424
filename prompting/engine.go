// Package prompting implements the classic prompt-engineering techniques on
// top of the completion client: zero/few-shot prompting, chain-of-thought,
// self-consistency voting, persona prompting and retrieval-augmented
// generation.
package prompting

import (
	"context"
	"log/slog"

	"github.com/qianzmolloy/Llama2-on-HPG/completion"
	"github.com/qianzmolloy/Llama2-on-HPG/message"
	"github.com/qianzmolloy/Llama2-on-HPG/pkg/logging"
	"github.com/qianzmolloy/Llama2-on-HPG/prompt"
	"github.com/qianzmolloy/Llama2-on-HPG/provider"
)

// TokenCounter measures how many tokens a text occupies. Satisfied by
// tokenizer.Tokenizer.
type TokenCounter interface {
	CountTokens(text string) int
}

// cotCue nudges the model into producing intermediate reasoning steps.
const cotCue = "Let's think through this carefully, step by step."

const ragTemplate = `Given the following information: '{{.fact}}', respond to: '{{.question}}'`

// Engine runs prompting techniques through a single completion client with a
// fixed set of default generation parameters.
type Engine struct {
	client    *completion.Client
	params    provider.Params
	templates *prompt.Manager
	tokens    TokenCounter
	budget    int
	logger    *slog.Logger
}

// Option customises the engine.
type Option func(*Engine)

// WithTokenBudget enables few-shot example trimming: when the rendered
// conversation exceeds maxTokens, the oldest examples are dropped first.
func WithTokenBudget(tok TokenCounter, maxTokens int) Option {
	return func(e *Engine) {
		e.tokens = tok
		e.budget = maxTokens
	}
}

// WithLogger overrides the component logger.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// NewEngine creates a technique engine around the client.
func NewEngine(client *completion.Client, defaults provider.Params, opts ...Option) (*Engine, error) {
	templates := prompt.NewManager()
	if err := templates.Register("rag", ragTemplate); err != nil {
		return nil, err
	}

	e := &Engine{
		client:    client,
		params:    defaults,
		templates: templates,
		logger:    logging.WithComponent("prompting"),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// ZeroShot sends the question directly, with no embedded examples.
func (e *Engine) ZeroShot(ctx context.Context, question string) (string, error) {
	return e.client.Completion(ctx, question, e.params)
}

// ChainOfThought appends the reasoning cue so the model works through
// intermediate steps before answering.
func (e *Engine) ChainOfThought(ctx context.Context, question string) (string, error) {
	p := prompt.NewBuilder().
		Add(question).
		Add(cotCue).
		Build()
	return e.client.Completion(ctx, p, e.params)
}

// Persona prepends a system message describing who the model should answer
// as, then runs the question as a chat turn.
func (e *Engine) Persona(ctx context.Context, persona, question string) (string, error) {
	msgs := []*message.Message{
		message.NewMessage(message.RoleSystem, persona),
		message.NewMessage(message.RoleUser, question),
	}
	return e.client.ChatCompletion(ctx, msgs, e.params)
}
