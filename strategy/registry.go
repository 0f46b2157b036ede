package strategy

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Registry resolves file extensions to strategies. It is an explicit,
// constructed object: callers own their registry instance and may register
// additional formats without affecting anyone else's.
type Registry struct {
	mu         sync.RWMutex
	strategies map[string]Strategy
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{strategies: make(map[string]Strategy)}
}

// DefaultRegistry returns a fresh registry with the built-in formats
// registered: JSON, YAML, TOML, and CUE.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(NewJSONStrategy())
	r.Register(NewYAMLStrategy())
	r.Register(NewTOMLStrategy())
	r.Register(NewCUEStrategy())
	return r
}

// Register binds s to every extension it reports, replacing any previous
// binding for those extensions.
func (r *Registry) Register(s Strategy) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, ext := range s.Extensions() {
		r.strategies[normalizeExt(ext)] = s
	}
}

// Lookup returns the strategy registered for ext. The extension match is
// case-insensitive and tolerates a missing leading dot.
func (r *Registry) Lookup(ext string) (Strategy, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.strategies[normalizeExt(ext)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoStrategy, ext)
	}
	return s, nil
}

// Extensions returns every registered extension, sorted.
func (r *Registry) Extensions() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	exts := make([]string, 0, len(r.strategies))
	for ext := range r.strategies {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

func normalizeExt(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}
