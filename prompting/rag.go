package prompting

import (
	"context"

	"github.com/qianzmolloy/Llama2-on-HPG/retrieval"
)

// RAG looks the key up in the store, injects the (cleaned) fact into the
// retrieval prompt template and completes it. A lookup miss injects the
// store's sentinel value; the model is expected to communicate the
// uncertainty in natural language rather than the call failing.
func (e *Engine) RAG(ctx context.Context, store retrieval.Store, key, question string) (string, error) {
	fact, err := store.Lookup(ctx, key)
	if err != nil {
		return "", err
	}

	p, err := e.templates.Render("rag", map[string]any{
		"fact":     retrieval.CleanFact(fact),
		"question": question,
	})
	if err != nil {
		return "", err
	}

	return e.client.Completion(ctx, p, e.params)
}
