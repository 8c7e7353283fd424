package store

import (
	"context"
	"sync"
)

// InMemoryStore implements retrieval.Store with a fixed key/value mapping.
// It stands in for a real knowledge base in demos and tests.
type InMemoryStore struct {
	mu       sync.RWMutex
	facts    map[string]string
	sentinel string
}

// NewInMemoryStore creates a store over the given mapping. The sentinel is
// returned on lookup misses.
func NewInMemoryStore(facts map[string]string, sentinel string) *InMemoryStore {
	copied := make(map[string]string, len(facts))
	for k, v := range facts {
		copied[k] = v
	}
	return &InMemoryStore{
		facts:    copied,
		sentinel: sentinel,
	}
}

// NewWeatherStore returns the fixed date-to-temperature mapping used by the
// retrieval-augmented generation demos.
func NewWeatherStore() *InMemoryStore {
	return NewInMemoryStore(map[string]string{
		"2023-12-05": "27 degrees Fahrenheit",
		"2023-12-12": "51 degrees Fahrenheit",
		"2023-12-19": "45 degrees Fahrenheit",
	}, "unknown temperature")
}

// Lookup returns the fact for the key, or the sentinel when absent.
func (s *InMemoryStore) Lookup(ctx context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if fact, ok := s.facts[key]; ok {
		return fact, nil
	}
	return s.sentinel, nil
}

// Set adds or replaces a fact.
func (s *InMemoryStore) Set(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.facts[key] = value
}

// Count returns the number of stored facts.
func (s *InMemoryStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.facts)
}
