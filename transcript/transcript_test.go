package transcript

import (
	"errors"
	"strings"
	"testing"

	apperrors "github.com/qianzmolloy/Llama2-on-HPG/errors"
	"github.com/qianzmolloy/Llama2-on-HPG/message"
)

func TestBuild(t *testing.T) {
	t.Run("preserves order and prefixes", func(t *testing.T) {
		msgs := []*message.Message{
			message.NewMessage(message.RoleUser, "My favorite color is blue."),
			message.NewMessage(message.RoleAssistant, "That's great to hear!"),
			message.NewMessage(message.RoleUser, "What is my favorite color?"),
		}

		out, err := Build(msgs)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		lines := strings.Split(out, "\n")
		if len(lines) != 3 {
			t.Fatalf("Expected 3 lines, got %d: %q", len(lines), out)
		}

		want := []string{
			"USER: My favorite color is blue.",
			"ASSISTANT: That's great to hear!",
			"USER: What is my favorite color?",
		}
		for i, line := range lines {
			if line != want[i] {
				t.Errorf("line %d: expected %q, got %q", i, want[i], line)
			}
		}
	})

	t.Run("round trip reconstructs roles and content", func(t *testing.T) {
		msgs := []*message.Message{
			message.NewMessage(message.RoleUser, "first"),
			message.NewMessage(message.RoleAssistant, "second"),
			message.NewMessage(message.RoleUser, "third"),
			message.NewMessage(message.RoleAssistant, "fourth"),
		}

		out, err := Build(msgs)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		for i, line := range strings.Split(out, "\n") {
			prefix, content, found := strings.Cut(line, ": ")
			if !found {
				t.Fatalf("line %d has no prefix separator: %q", i, line)
			}

			var wantPrefix string
			switch msgs[i].Role {
			case message.RoleUser:
				wantPrefix = "USER"
			case message.RoleAssistant:
				wantPrefix = "ASSISTANT"
			}
			if prefix != wantPrefix {
				t.Errorf("line %d: expected prefix %q, got %q", i, wantPrefix, prefix)
			}
			if content != msgs[i].Content {
				t.Errorf("line %d: expected content %q, got %q", i, msgs[i].Content, content)
			}
		}
	})

	t.Run("custom prefixes and delimiter", func(t *testing.T) {
		msgs := []*message.Message{
			message.NewMessage(message.RoleUser, "hi"),
			message.NewMessage(message.RoleAssistant, "hello"),
		}

		out, err := Build(msgs,
			WithUserPrefix("Human"),
			WithAssistantPrefix("AI"),
			WithDelimiter("\n\n"),
		)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if out != "Human: hi\n\nAI: hello" {
			t.Errorf("unexpected transcript: %q", out)
		}
	})

	t.Run("unrecognized role fails with no partial output", func(t *testing.T) {
		msgs := []*message.Message{
			message.NewMessage(message.RoleUser, "hi"),
			message.NewMessage(message.Role("narrator"), "meanwhile..."),
			message.NewMessage(message.RoleUser, "bye"),
		}

		out, err := Build(msgs)
		if err == nil {
			t.Fatal("expected error for unrecognized role")
		}
		if out != "" {
			t.Errorf("expected empty output on failure, got %q", out)
		}
		if !errors.Is(err, apperrors.ErrUnknownRole) {
			t.Errorf("expected ErrUnknownRole, got %v", err)
		}

		var roleErr *UnknownRoleError
		if !errors.As(err, &roleErr) {
			t.Fatalf("expected UnknownRoleError, got %T", err)
		}
		if roleErr.Index != 1 {
			t.Errorf("expected failing index 1, got %d", roleErr.Index)
		}
	})

	t.Run("system role is not legal inside the transcript body", func(t *testing.T) {
		msgs := []*message.Message{
			message.NewMessage(message.RoleSystem, "You are helpful."),
		}
		if _, err := Build(msgs); err == nil {
			t.Error("expected error for system role in transcript body")
		}
	})

	t.Run("empty conversation builds an empty transcript", func(t *testing.T) {
		out, err := Build(nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out != "" {
			t.Errorf("expected empty transcript, got %q", out)
		}
	})
}
