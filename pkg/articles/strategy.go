package articles

import (
	"context"
	"fmt"
	"sync"
)

// Strategy discovers source articles from one backend. Implementations are
// safe for concurrent use.
type Strategy interface {
	// Name returns the strategy's dispatch name.
	Name() string

	// GetArticles searches the backend for articles matching the query.
	GetArticles(ctx context.Context, query QueryData) ([]SourceArticle, error)
}

// Registry maps strategy names to implementations. Resolution happens once
// per task from data_source_preference.
type Registry struct {
	mu         sync.RWMutex
	strategies map[string]Strategy
}

// NewRegistry creates an empty strategy registry.
func NewRegistry() *Registry {
	return &Registry{strategies: make(map[string]Strategy)}
}

// Register adds a strategy under its name, replacing any previous entry.
func (r *Registry) Register(s Strategy) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.strategies[s.Name()] = s
}

// Get returns the named strategy.
func (r *Registry) Get(name string) (Strategy, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.strategies[name]
	if !ok {
		return nil, fmt.Errorf("unknown article source %q", name)
	}
	return s, nil
}

// Names returns all registered strategy names.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.strategies))
	for name := range r.strategies {
		names = append(names, name)
	}
	return names
}
