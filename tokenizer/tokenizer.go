// Package tokenizer counts tokens so prompts can be trimmed to a model's
// context budget before the call leaves the process.
package tokenizer

import (
	"github.com/pkoukk/tiktoken-go"
)

// Tokenizer wraps a tiktoken encoding.
type Tokenizer struct {
	enc *tiktoken.Tiktoken
}

// New resolves an encoding by model name, falling back to treating the name
// as an encoding name directly.
func New(name string) (*Tokenizer, error) {
	enc, err := tiktoken.EncodingForModel(name)
	if err != nil {
		enc, err = tiktoken.GetEncoding(name)
		if err != nil {
			return nil, err
		}
	}
	return &Tokenizer{enc: enc}, nil
}

// Encode returns the token ids for the text.
func (t *Tokenizer) Encode(text string) []int {
	return t.enc.Encode(text, nil, nil)
}

// CountTokens returns how many tokens the text occupies.
func (t *Tokenizer) CountTokens(text string) int {
	return len(t.Encode(text))
}

// Decode converts token ids back into text.
func (t *Tokenizer) Decode(ids []int) string {
	return t.enc.Decode(ids)
}
