package prompting

import (
	"context"

	"github.com/qianzmolloy/Llama2-on-HPG/message"
	"github.com/qianzmolloy/Llama2-on-HPG/transcript"
)

// Example is one demonstrated input/output pair embedded in a few-shot
// prompt.
type Example struct {
	Input  string
	Output string
}

// FewShot renders the examples as alternating user/assistant turns, in the
// order given, followed by the real question, and runs the whole
// conversation as one chat completion. When a token budget is configured,
// the oldest examples are dropped first until the conversation fits.
func (e *Engine) FewShot(ctx context.Context, examples []Example, question string) (string, error) {
	examples = e.trimToBudget(examples, question)

	msgs := make([]*message.Message, 0, len(examples)*2+1)
	for _, ex := range examples {
		msgs = append(msgs,
			message.NewMessage(message.RoleUser, ex.Input),
			message.NewMessage(message.RoleAssistant, ex.Output),
		)
	}
	msgs = append(msgs, message.NewMessage(message.RoleUser, question))

	return e.client.ChatCompletion(ctx, msgs, e.params)
}

func (e *Engine) trimToBudget(examples []Example, question string) []Example {
	if e.tokens == nil || e.budget <= 0 {
		return examples
	}

	for len(examples) > 0 {
		if e.conversationTokens(examples, question) <= e.budget {
			break
		}
		dropped := examples[0]
		examples = examples[1:]
		e.logger.Debug("dropped few-shot example over token budget",
			"input", dropped.Input,
			"remaining", len(examples),
		)
	}
	return examples
}

func (e *Engine) conversationTokens(examples []Example, question string) int {
	msgs := make([]*message.Message, 0, len(examples)*2+1)
	for _, ex := range examples {
		msgs = append(msgs,
			message.NewMessage(message.RoleUser, ex.Input),
			message.NewMessage(message.RoleAssistant, ex.Output),
		)
	}
	msgs = append(msgs, message.NewMessage(message.RoleUser, question))

	flattened, err := transcript.Build(msgs)
	if err != nil {
		return 0
	}
	return e.tokens.CountTokens(flattened)
}
