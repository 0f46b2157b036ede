package yapfm

import (
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/mawuva/yapfm/cache"
)

// SectionLoader defers loading a value until first use and memoizes the
// result, including a legitimately nil one. Concurrent first loads are
// deduplicated so the load function runs once.
type SectionLoader struct {
	key   string
	cache *cache.Cache[any]
	load  func() (any, error)
	group singleflight.Group

	mu     sync.Mutex
	loaded bool
	value  any
}

// NewSectionLoader builds a loader around load. The cache may be nil, in
// which case the loader memoizes locally only. A non-nil cache is checked
// with Has before loading, so a cached nil value is honored rather than
// reloaded.
func NewSectionLoader(key string, c *cache.Cache[any], load func() (any, error)) *SectionLoader {
	return &SectionLoader{key: key, cache: c, load: load}
}

// Get returns the loaded value, running the load function on first use.
// A failed load is not memoized; the next Get retries.
func (l *SectionLoader) Get() (any, error) {
	l.mu.Lock()
	if l.loaded {
		v := l.value
		l.mu.Unlock()
		return v, nil
	}
	if l.cache != nil && l.cache.Has(l.key) {
		v, _ := l.cache.Get(l.key)
		l.value = v
		l.loaded = true
		l.mu.Unlock()
		return v, nil
	}
	l.mu.Unlock()

	v, err, _ := l.group.Do(l.key, l.load)
	if err != nil {
		return nil, err
	}

	l.mu.Lock()
	l.value = v
	l.loaded = true
	l.mu.Unlock()

	if l.cache != nil {
		l.cache.Set(l.key, v)
	}
	return v, nil
}

// IsLoaded reports whether a value is memoized.
func (l *SectionLoader) IsLoaded() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.loaded
}

// Invalidate drops the memoized value and its cache entry. The next Get
// loads again.
func (l *SectionLoader) Invalidate() {
	l.mu.Lock()
	l.loaded = false
	l.value = nil
	l.mu.Unlock()

	if l.cache != nil {
		l.cache.Delete(l.key)
	}
}
