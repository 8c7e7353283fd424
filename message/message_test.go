package message

import (
	"errors"
	"testing"

	apperrors "github.com/qianzmolloy/Llama2-on-HPG/errors"
)

func TestNewMessage(t *testing.T) {
	msg := NewMessage(RoleUser, "Hello, world!")

	if msg.Role != RoleUser {
		t.Errorf("Expected role %s, got %s", RoleUser, msg.Role)
	}

	if msg.Content != "Hello, world!" {
		t.Errorf("Expected content 'Hello, world!', got '%s'", msg.Content)
	}

	if msg.ID == "" {
		t.Error("Expected non-empty ID")
	}

	if msg.CreatedAt.IsZero() {
		t.Error("Expected non-zero created time")
	}
}

func TestParseRole(t *testing.T) {
	t.Run("recognised roles", func(t *testing.T) {
		for _, raw := range []string{"system", "user", "assistant"} {
			role, err := ParseRole(raw)
			if err != nil {
				t.Errorf("unexpected error for %q: %v", raw, err)
			}
			if string(role) != raw {
				t.Errorf("Expected role %q, got %q", raw, role)
			}
		}
	})

	t.Run("unrecognised role is rejected", func(t *testing.T) {
		_, err := ParseRole("narrator")
		if err == nil {
			t.Fatal("expected error for unrecognised role")
		}
		if !errors.Is(err, apperrors.ErrUnknownRole) {
			t.Errorf("expected ErrUnknownRole, got %v", err)
		}
	})

	t.Run("empty role is rejected", func(t *testing.T) {
		if _, err := ParseRole(""); err == nil {
			t.Error("expected error for empty role")
		}
	})
}

func TestRoleValid(t *testing.T) {
	if !RoleAssistant.Valid() {
		t.Error("assistant should be valid")
	}
	if Role("narrator").Valid() {
		t.Error("narrator should not be valid")
	}
}

func TestClone(t *testing.T) {
	msg := NewMessage(RoleUser, "original")
	msg.Metadata["key"] = "value"

	cloned := Clone(msg)
	cloned.Content = "changed"
	cloned.Metadata["key"] = "other"

	if msg.Content != "original" {
		t.Errorf("clone mutated the original content: %s", msg.Content)
	}
	if msg.Metadata["key"] != "value" {
		t.Errorf("clone mutated the original metadata: %v", msg.Metadata["key"])
	}
}

func TestConversationOrder(t *testing.T) {
	conv := NewConversation().
		User("My favorite color is blue.").
		Assistant("That's great to hear!").
		User("What is my favorite color?")

	msgs := conv.Messages()
	if len(msgs) != 3 {
		t.Fatalf("Expected 3 messages, got %d", len(msgs))
	}

	wantRoles := []Role{RoleUser, RoleAssistant, RoleUser}
	for i, msg := range msgs {
		if msg.Role != wantRoles[i] {
			t.Errorf("message %d: expected role %s, got %s", i, wantRoles[i], msg.Role)
		}
	}

	// Messages returns copies, not the live slice.
	msgs[0].Content = "mutated"
	if conv.Messages()[0].Content != "My favorite color is blue." {
		t.Error("Messages leaked the internal slice")
	}
}
