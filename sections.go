package yapfm

import "github.com/mawuva/yapfm/keypath"

// GetSection returns the map at the dot-notation path. The bool is false
// when the path is absent or holds a non-map value.
func (m *FileManager) GetSection(dotKey string) (map[string]any, bool, error) {
	if err := m.LoadIfNeeded(); err != nil {
		return nil, false, err
	}

	if m.lazyEnabled {
		v, err := m.LazySection(dotKey).Get()
		if err != nil {
			return nil, false, err
		}
		section, ok := v.(map[string]any)
		return section, ok, nil
	}

	ck := sectionPrefix + dotKey
	if m.cache != nil && m.cache.Has(ck) {
		v, _ := m.cache.Get(ck)
		section, ok := v.(map[string]any)
		return section, ok, nil
	}

	v, ok := keypath.Get(m.document, keypath.Segments(dotKey)...)
	if !ok {
		return nil, false, nil
	}
	section, ok := v.(map[string]any)
	if !ok {
		return nil, false, nil
	}
	if m.cache != nil {
		m.cache.Set(ck, section)
	}
	return section, true, nil
}

// SetSection replaces the map at the dot-notation path and marks the
// document dirty.
func (m *FileManager) SetSection(dotKey string, section map[string]any) error {
	if err := m.LoadIfNeeded(); err != nil {
		return err
	}
	if err := keypath.Set(m.document, section, keypath.Segments(dotKey)...); err != nil {
		return err
	}
	m.dirty = true
	m.invalidatePath(dotKey)
	return nil
}

// DeleteSection removes the map at the dot-notation path. It reports
// whether anything was removed.
func (m *FileManager) DeleteSection(dotKey string) (bool, error) {
	return m.DeleteKey(dotKey)
}

// LazySection returns a loader that resolves the section on first use and
// memoizes the result. Loaders are shared per path: asking for the same
// section twice returns the same loader. Writes through SetKey, SetSection,
// or DeleteKey along the path invalidate the loader.
func (m *FileManager) LazySection(dotKey string) *SectionLoader {
	if l, ok := m.lazySections[dotKey]; ok {
		return l
	}
	l := NewSectionLoader(sectionPrefix+dotKey, m.cache, func() (any, error) {
		if err := m.LoadIfNeeded(); err != nil {
			return nil, err
		}
		v, ok := keypath.Get(m.document, keypath.Segments(dotKey)...)
		if !ok {
			return nil, nil
		}
		return v, nil
	})
	m.lazySections[dotKey] = l
	return l
}
