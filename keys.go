package yapfm

import (
	"strings"

	"github.com/mawuva/yapfm/cache"
	"github.com/mawuva/yapfm/keypath"
)

// Cache key prefixes keep key reads and section reads from colliding.
const (
	keyPrefix     = "key:"
	sectionPrefix = "section:"
)

// GetKey returns the value at the dot-notation path, loading the file first
// if needed. The bool reports whether the path exists; a stored nil value
// is present with a nil result.
func (m *FileManager) GetKey(dotKey string) (any, bool, error) {
	if err := m.LoadIfNeeded(); err != nil {
		return nil, false, err
	}

	ck := keyPrefix + dotKey
	if m.cache != nil && m.cache.Has(ck) {
		v, _ := m.cache.Get(ck)
		return v, true, nil
	}

	v, ok := keypath.Get(m.document, keypath.Segments(dotKey)...)
	if !ok {
		return nil, false, nil
	}
	if m.cache != nil {
		m.cache.Set(ck, v)
	}
	return v, true, nil
}

// SetKey writes the value at the dot-notation path, creating intermediate
// maps as needed, and marks the document dirty.
func (m *FileManager) SetKey(dotKey string, value any) error {
	if err := m.LoadIfNeeded(); err != nil {
		return err
	}
	if err := keypath.Set(m.document, value, keypath.Segments(dotKey)...); err != nil {
		return err
	}
	m.dirty = true
	m.invalidatePath(dotKey)
	return nil
}

// DeleteKey removes the value at the dot-notation path. It reports whether
// anything was removed; deleting an absent path is not an error.
func (m *FileManager) DeleteKey(dotKey string) (bool, error) {
	if err := m.LoadIfNeeded(); err != nil {
		return false, err
	}
	removed := keypath.Delete(m.document, keypath.Segments(dotKey)...)
	if removed {
		m.dirty = true
		m.invalidatePath(dotKey)
	}
	return removed, nil
}

// HasKey reports whether the dot-notation path exists in the document.
// It never touches the cache.
func (m *FileManager) HasKey(dotKey string) (bool, error) {
	if err := m.LoadIfNeeded(); err != nil {
		return false, err
	}
	return keypath.Has(m.document, keypath.Segments(dotKey)...), nil
}

// CacheStats returns a snapshot of the read cache. The bool is false when
// the cache is disabled.
func (m *FileManager) CacheStats() (cache.Stats, bool) {
	if m.cache == nil {
		return cache.Stats{}, false
	}
	return m.cache.Stats(), true
}

// ClearCache drops every cached read and resets lazy section loaders.
func (m *FileManager) ClearCache() {
	if m.cache != nil {
		m.cache.Clear()
	}
	for _, l := range m.lazySections {
		l.Invalidate()
	}
}

// InvalidateCache removes cached reads matching pattern, where * matches
// any run of characters. An empty pattern clears everything. It returns
// the number of entries removed.
func (m *FileManager) InvalidateCache(pattern string) int {
	if m.cache == nil {
		return 0
	}
	if pattern == "" {
		n := m.cache.Len()
		m.ClearCache()
		return n
	}
	return m.cache.InvalidatePattern(pattern)
}

// invalidatePath drops every cached read a write at dotKey can make stale:
// the key and section entries along the path, everything below it, and any
// lazy loader for an affected section.
func (m *FileManager) invalidatePath(dotKey string) {
	if m.cache == nil && len(m.lazySections) == 0 {
		return
	}

	segments := keypath.Segments(dotKey)
	for i := 1; i <= len(segments); i++ {
		prefix := strings.Join(segments[:i], ".")
		if m.cache != nil {
			m.cache.Delete(keyPrefix + prefix)
			m.cache.Delete(sectionPrefix + prefix)
		}
		if l, ok := m.lazySections[prefix]; ok {
			l.Invalidate()
		}
	}
	if m.cache != nil {
		m.cache.InvalidatePattern(keyPrefix + dotKey + ".*")
		m.cache.InvalidatePattern(sectionPrefix + dotKey + ".*")
	}
	for sectionKey, l := range m.lazySections {
		if strings.HasPrefix(sectionKey, dotKey+".") {
			l.Invalidate()
		}
	}
}
