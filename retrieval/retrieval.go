// Package retrieval defines the knowledge-lookup contract used to ground
// prompts in external facts. A miss is not an error: stores substitute a
// sentinel value so downstream generation can express uncertainty in
// natural language instead of failing.
package retrieval

import "context"

// DefaultSentinel is returned by stores when no fact matches the key and no
// store-specific sentinel was configured.
const DefaultSentinel = "unknown"

// Store answers fact lookups by key.
type Store interface {
	// Lookup returns the stored fact for the key, or the store's sentinel
	// value when the key is absent. Errors are reserved for backend
	// failures, never for a plain miss.
	Lookup(ctx context.Context, key string) (string, error)
}
