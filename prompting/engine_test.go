package prompting

import (
	"context"
	"strings"
	"testing"

	"github.com/qianzmolloy/Llama2-on-HPG/completion"
	"github.com/qianzmolloy/Llama2-on-HPG/provider"
)

// scriptedProvider records every prompt and replies from a fixed script,
// repeating the last entry once the script runs out.
type scriptedProvider struct {
	prompts []string
	script  []string
	calls   int
}

func (p *scriptedProvider) Generate(ctx context.Context, prompt string, params provider.Params) (string, error) {
	p.prompts = append(p.prompts, prompt)
	idx := p.calls
	if idx >= len(p.script) {
		idx = len(p.script) - 1
	}
	p.calls++
	if len(p.script) == 0 {
		return "ok", nil
	}
	return p.script[idx], nil
}

func newTestEngine(t *testing.T, p provider.Provider, opts ...Option) *Engine {
	t.Helper()
	client, err := completion.NewClient(p)
	if err != nil {
		t.Fatalf("failed to build client: %v", err)
	}
	engine, err := NewEngine(client, provider.Params{Model: "llama-2-13b-chat", Temperature: 0.6, TopP: 0.9}, opts...)
	if err != nil {
		t.Fatalf("failed to build engine: %v", err)
	}
	return engine
}

func TestZeroShot(t *testing.T) {
	p := &scriptedProvider{script: []string{"blue"}}
	engine := newTestEngine(t, p)

	out, err := engine.ZeroShot(context.Background(), "The typical color of the sky is:")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "blue" {
		t.Errorf("expected 'blue', got %q", out)
	}
	if p.prompts[0] != "The typical color of the sky is:" {
		t.Errorf("prompt was altered: %q", p.prompts[0])
	}
}

func TestChainOfThought(t *testing.T) {
	p := &scriptedProvider{}
	engine := newTestEngine(t, p)

	if _, err := engine.ChainOfThought(context.Background(), "Who lived longer, Mozart or Elvis?"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	sent := p.prompts[0]
	if !strings.HasPrefix(sent, "Who lived longer, Mozart or Elvis?") {
		t.Errorf("question missing from prompt: %q", sent)
	}
	if !strings.Contains(sent, "step by step") {
		t.Errorf("reasoning cue missing from prompt: %q", sent)
	}
}

func TestPersona(t *testing.T) {
	p := &scriptedProvider{}
	engine := newTestEngine(t, p)

	if _, err := engine.Persona(context.Background(), "You respond as a pirate.", "How are you?"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	sent := p.prompts[0]
	if !strings.HasPrefix(sent, "You respond as a pirate.\n") {
		t.Errorf("persona should lead the prompt: %q", sent)
	}
	if !strings.Contains(sent, "USER: How are you?") {
		t.Errorf("question turn missing: %q", sent)
	}
}
