package yapfm

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"

	"github.com/mawuva/yapfm/cache"
	"github.com/mawuva/yapfm/strategy"
	"github.com/mawuva/yapfm/streaming"
)

// FileManager owns one structured configuration file: its parsed document,
// its dirty state, and a bounded cache of key and section reads.
//
// The document loads lazily on first access. Writes go to the in-memory
// document and mark it dirty; nothing touches the file until Save,
// SaveIfDirty, or Close.
type FileManager struct {
	path     string
	fs       billy.Filesystem
	registry *strategy.Registry
	strategy strategy.Strategy
	logger   *slog.Logger

	autoCreate   bool
	lazyEnabled  bool
	cacheEnabled bool
	cacheSize    int
	cacheTTL     time.Duration

	document map[string]any
	loaded   bool
	dirty    bool

	cache        *cache.Cache[any]
	lazySections map[string]*SectionLoader
}

// New creates a manager for the file at path. Unless WithStrategy is given,
// the format is resolved from the path's extension against the registry
// (the default registry knows JSON, YAML, TOML, and CUE).
func New(path string, opts ...Option) (*FileManager, error) {
	m := &FileManager{
		path:         path,
		fs:           osfs.New("/"),
		registry:     strategy.DefaultRegistry(),
		logger:       slog.Default(),
		cacheEnabled: true,
		cacheSize:    DefaultCacheSize,
		cacheTTL:     DefaultCacheTTL,
		lazySections: make(map[string]*SectionLoader),
	}
	for _, opt := range opts {
		opt(m)
	}

	if m.strategy == nil {
		s, err := m.registry.Lookup(filepath.Ext(path))
		if err != nil {
			return nil, fmt.Errorf("failed to resolve format for %s: %w", path, err)
		}
		m.strategy = s
	}

	if m.cacheEnabled {
		c, err := cache.New[any](cache.Config{
			MaxEntries: m.cacheSize,
			DefaultTTL: m.cacheTTL,
			Logger:     m.logger,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to build read cache: %w", err)
		}
		m.cache = c
	}
	return m, nil
}

// Path returns the file path the manager is bound to.
func (m *FileManager) Path() string {
	return m.path
}

// Exists reports whether the file exists on the filesystem.
func (m *FileManager) Exists() (bool, error) {
	_, err := m.fs.Stat(m.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("failed to stat %s: %w", m.path, err)
	}
	return true, nil
}

// Load parses the file and replaces the in-memory document. A missing file
// is an error unless WithAutoCreate was given, in which case the manager
// starts from an empty document marked dirty so the next save creates the
// file.
func (m *FileManager) Load() error {
	f, err := m.fs.Open(m.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && m.autoCreate {
			m.logger.Debug("file missing, starting empty document", "path", m.path)
			m.document = make(map[string]any)
			m.loaded = true
			m.dirty = true
			return nil
		}
		return fmt.Errorf("failed to open %s: %w", m.path, err)
	}
	defer f.Close()

	doc, err := m.strategy.Load(f)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", m.path, err)
	}

	m.document = doc
	m.loaded = true
	m.dirty = false
	m.logger.Debug("document loaded", "path", m.path, "keys", len(doc))
	return nil
}

// LoadIfNeeded loads the file unless a document is already in memory.
func (m *FileManager) LoadIfNeeded() error {
	if m.loaded {
		return nil
	}
	return m.Load()
}

// Reload discards the in-memory document and cached reads, then loads the
// file again. Unsaved changes are lost.
func (m *FileManager) Reload() error {
	m.loaded = false
	m.document = nil
	m.ClearCache()
	return m.Load()
}

// Unload drops the in-memory document and cached reads without saving.
func (m *FileManager) Unload() {
	m.document = nil
	m.loaded = false
	m.dirty = false
	m.ClearCache()
}

// Save serializes the document to the file, creating it if needed, and
// clears the dirty flag. Saving a never-loaded manager writes an empty
// document.
func (m *FileManager) Save() error {
	f, err := m.fs.Create(m.path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", m.path, err)
	}

	doc := m.document
	if doc == nil {
		doc = make(map[string]any)
	}
	if err := m.strategy.Save(f, doc); err != nil {
		f.Close()
		return fmt.Errorf("failed to serialize %s: %w", m.path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", m.path, err)
	}

	m.loaded = true
	m.dirty = false
	m.logger.Debug("document saved", "path", m.path)
	return nil
}

// SaveIfDirty saves only when the document has unsaved changes.
func (m *FileManager) SaveIfDirty() error {
	if !m.dirty {
		return nil
	}
	return m.Save()
}

// Close flushes unsaved changes. It is safe to defer right after New.
func (m *FileManager) Close() error {
	return m.SaveIfDirty()
}

// IsLoaded reports whether a document is in memory.
func (m *FileManager) IsLoaded() bool {
	return m.loaded
}

// IsDirty reports whether the document has unsaved changes.
func (m *FileManager) IsDirty() bool {
	return m.dirty
}

// MarkDirty forces the next SaveIfDirty or Close to write the file. Useful
// after mutating a nested value obtained by reference.
func (m *FileManager) MarkDirty() {
	m.dirty = true
}

// Document returns the in-memory document, loading it first if needed.
// Mutating the returned map bypasses cache invalidation; call MarkDirty
// and InvalidateCache afterwards if you do.
func (m *FileManager) Document() (map[string]any, error) {
	if err := m.LoadIfNeeded(); err != nil {
		return nil, err
	}
	return m.document, nil
}

// StreamReader returns a chunked reader for the managed file on the same
// filesystem. It reads the file as bytes and ignores the parsed document.
func (m *FileManager) StreamReader(opts ...streaming.Option) *streaming.Reader {
	return streaming.NewReader(m.fs, m.path, opts...)
}
