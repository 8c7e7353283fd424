package prompting

import (
	"context"
	"strings"
	"testing"
)

// wordCounter approximates tokens as whitespace-separated words, standing in
// for the tiktoken-backed counter.
type wordCounter struct{}

func (wordCounter) CountTokens(text string) int {
	return len(strings.Fields(text))
}

func TestFewShot(t *testing.T) {
	examples := []Example{
		{Input: "Great taste!", Output: "Positive"},
		{Input: "Never coming back.", Output: "Negative"},
	}

	t.Run("examples become ordered chat turns", func(t *testing.T) {
		p := &scriptedProvider{}
		engine := newTestEngine(t, p)

		if _, err := engine.FewShot(context.Background(), examples, "Service was slow."); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		want := "USER: Great taste!\n" +
			"ASSISTANT: Positive\n" +
			"USER: Never coming back.\n" +
			"ASSISTANT: Negative\n" +
			"USER: Service was slow.\n" +
			"ASSISTANT:"
		if p.prompts[0] != want {
			t.Errorf("few-shot prompt mismatch:\nwant %q\ngot  %q", want, p.prompts[0])
		}
	})

	t.Run("no examples degrades to a single user turn", func(t *testing.T) {
		p := &scriptedProvider{}
		engine := newTestEngine(t, p)

		if _, err := engine.FewShot(context.Background(), nil, "Service was slow."); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.prompts[0] != "USER: Service was slow.\nASSISTANT:" {
			t.Errorf("unexpected prompt: %q", p.prompts[0])
		}
	})

	t.Run("oldest examples are dropped over the token budget", func(t *testing.T) {
		p := &scriptedProvider{}
		// Budget fits one example plus the question, not two.
		engine := newTestEngine(t, p, WithTokenBudget(wordCounter{}, 12))

		if _, err := engine.FewShot(context.Background(), examples, "Service was slow."); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		sent := p.prompts[0]
		if strings.Contains(sent, "Great taste!") {
			t.Errorf("oldest example should have been dropped: %q", sent)
		}
		if !strings.Contains(sent, "Never coming back.") {
			t.Errorf("newest example should survive: %q", sent)
		}
		if !strings.Contains(sent, "Service was slow.") {
			t.Errorf("question must always survive trimming: %q", sent)
		}
	})

	t.Run("question survives even when nothing fits", func(t *testing.T) {
		p := &scriptedProvider{}
		engine := newTestEngine(t, p, WithTokenBudget(wordCounter{}, 1))

		if _, err := engine.FewShot(context.Background(), examples, "Service was slow."); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(p.prompts[0], "Service was slow.") {
			t.Errorf("question missing: %q", p.prompts[0])
		}
	})
}
