// Package transcript flattens a conversation into a single prompt string
// for models that accept plain text rather than structured chat messages.
package transcript

import (
	"fmt"
	"strings"

	apperrors "github.com/qianzmolloy/Llama2-on-HPG/errors"
	"github.com/qianzmolloy/Llama2-on-HPG/message"
)

// Config controls how a conversation is rendered.
type Config struct {
	UserPrefix      string
	AssistantPrefix string
	Delimiter       string
}

// Option customises the transcript config.
type Option func(*Config)

// WithUserPrefix overrides the prefix for user turns.
func WithUserPrefix(prefix string) Option {
	return func(cfg *Config) {
		if prefix != "" {
			cfg.UserPrefix = prefix
		}
	}
}

// WithAssistantPrefix overrides the prefix for assistant turns.
func WithAssistantPrefix(prefix string) Option {
	return func(cfg *Config) {
		if prefix != "" {
			cfg.AssistantPrefix = prefix
		}
	}
}

// WithDelimiter overrides the separator between turns.
func WithDelimiter(delim string) Option {
	return func(cfg *Config) {
		if delim != "" {
			cfg.Delimiter = delim
		}
	}
}

// DefaultConfig returns the default prefix mapping.
func DefaultConfig() *Config {
	return &Config{
		UserPrefix:      "USER",
		AssistantPrefix: "ASSISTANT",
		Delimiter:       "\n",
	}
}

// UnknownRoleError reports a message whose role has no transcript prefix.
type UnknownRoleError struct {
	Role  message.Role
	Index int
}

func (e *UnknownRoleError) Error() string {
	return fmt.Sprintf("transcript: unrecognized role %q at message %d", e.Role, e.Index)
}

// Unwrap allows errors.Is checks against the sentinel.
func (e *UnknownRoleError) Unwrap() error {
	return apperrors.ErrUnknownRole
}

// Build serializes the messages into `<PREFIX>: <content>` lines joined by the
// delimiter, preserving input order. Only user and assistant roles are legal
// here; system messages are the caller's responsibility. An unrecognized role
// fails the whole build, producing no partial output.
func Build(msgs []*message.Message, opts ...Option) (string, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	lines := make([]string, 0, len(msgs))
	for i, msg := range msgs {
		var prefix string
		switch msg.Role {
		case message.RoleUser:
			prefix = cfg.UserPrefix
		case message.RoleAssistant:
			prefix = cfg.AssistantPrefix
		default:
			return "", &UnknownRoleError{Role: msg.Role, Index: i}
		}
		lines = append(lines, prefix+": "+msg.Content)
	}

	return strings.Join(lines, cfg.Delimiter), nil
}
