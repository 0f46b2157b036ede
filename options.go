package yapfm

import (
	"log/slog"
	"time"

	"github.com/go-git/go-billy/v5"

	"github.com/mawuva/yapfm/strategy"
)

// Defaults for the manager's read cache.
const (
	DefaultCacheSize = 1000
	DefaultCacheTTL  = time.Hour
)

// Option configures a FileManager during construction.
type Option func(*FileManager)

// WithStrategy forces a file format strategy instead of resolving one from
// the path's extension.
func WithStrategy(s strategy.Strategy) Option {
	return func(m *FileManager) {
		m.strategy = s
	}
}

// WithFilesystem sets the filesystem the manager reads and writes. The
// default is the OS filesystem rooted at /.
func WithFilesystem(fsys billy.Filesystem) Option {
	return func(m *FileManager) {
		m.fs = fsys
	}
}

// WithRegistry sets the strategy registry used for extension lookup.
func WithRegistry(r *strategy.Registry) Option {
	return func(m *FileManager) {
		m.registry = r
	}
}

// WithAutoCreate makes a missing file load as an empty document instead of
// failing. The file itself is created on the next save.
func WithAutoCreate() Option {
	return func(m *FileManager) {
		m.autoCreate = true
	}
}

// WithoutCache disables the read cache. Key and section reads always walk
// the parsed document.
func WithoutCache() Option {
	return func(m *FileManager) {
		m.cacheEnabled = false
	}
}

// WithCacheSize sets the maximum number of cached read results.
func WithCacheSize(n int) Option {
	return func(m *FileManager) {
		if n > 0 {
			m.cacheSize = n
		}
	}
}

// WithCacheTTL sets how long cached read results stay valid.
func WithCacheTTL(ttl time.Duration) Option {
	return func(m *FileManager) {
		if ttl > 0 {
			m.cacheTTL = ttl
		}
	}
}

// WithLazySections routes GetSection through the shared per-path section
// loaders, so each section is resolved once, memoized, and deduplicated
// across concurrent first loads. LazySection works either way; this option
// only changes what GetSection does.
func WithLazySections() Option {
	return func(m *FileManager) {
		m.lazyEnabled = true
	}
}

// WithLogger sets the logger for the manager and its cache.
func WithLogger(logger *slog.Logger) Option {
	return func(m *FileManager) {
		m.logger = logger
	}
}
