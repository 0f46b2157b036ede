package cache

import (
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// Defaults applied by Config.SetDefaults.
const (
	DefaultMaxEntries      = 1000
	DefaultMaxMemoryMB     = 100.0
	DefaultCleanupInterval = 60 * time.Second
)

// Config controls cache capacity, expiry, and bookkeeping behavior.
type Config struct {
	// MaxEntries is the entry-count ceiling. Zero selects the default;
	// negative values are rejected.
	MaxEntries int
	// MaxMemoryMB is the memory ceiling in mebibytes, converted to bytes at
	// construction. Zero selects the default; non-positive explicit values
	// are rejected.
	MaxMemoryMB float64
	// DefaultTTL applies to entries stored without an explicit TTL.
	// Zero means entries never expire unless Set says otherwise.
	DefaultTTL time.Duration
	// CleanupInterval is the minimum time between opportunistic expiry
	// sweeps. Zero selects the default.
	CleanupInterval time.Duration
	// DisableStats turns hit/miss/eviction counting off. Operations still
	// function; only the counters stay at zero.
	DisableStats bool
	// Logger receives eviction and cleanup events. Nil means silent.
	Logger *slog.Logger
}

// SetDefaults applies default values to unset fields.
func (c *Config) SetDefaults() {
	if c.MaxEntries == 0 {
		c.MaxEntries = DefaultMaxEntries
	}
	if c.MaxMemoryMB == 0 {
		c.MaxMemoryMB = DefaultMaxMemoryMB
	}
	if c.CleanupInterval == 0 {
		c.CleanupInterval = DefaultCleanupInterval
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.MaxEntries <= 0 {
		return fmt.Errorf("max entries must be greater than 0")
	}
	if c.MaxMemoryMB <= 0 {
		return fmt.Errorf("max memory must be greater than 0")
	}
	if c.CleanupInterval < 0 {
		return fmt.Errorf("cleanup interval cannot be negative")
	}
	return nil
}

// SetOption adjusts a single Set call.
type SetOption func(*setOptions)

type setOptions struct {
	ttl     time.Duration
	ttlSet  bool
	size    int64
	sizeSet bool
}

// WithTTL overrides the configured default TTL for this entry. A zero or
// negative duration pins the entry: it never expires, regardless of the
// cache's default.
func WithTTL(ttl time.Duration) SetOption {
	return func(o *setOptions) {
		o.ttl = ttl
		o.ttlSet = true
	}
}

// WithSize overrides the estimated byte footprint for this entry. Negative
// sizes are clamped to zero.
func WithSize(size int64) SetOption {
	return func(o *setOptions) {
		o.size = size
		o.sizeSet = true
	}
}

// Cache is a bounded, concurrency-safe key/value cache with TTL expiry and
// LRU eviction. The zero value is not usable; construct with New.
type Cache[V any] struct {
	mu sync.Mutex

	maxEntries     int
	maxMemoryBytes int64
	maxMemoryMB    float64
	defaultTTL     time.Duration
	cleanupEvery   time.Duration
	logger         *slog.Logger

	entries     map[string]*Entry[V]
	order       *recencyList
	totalMemory int64
	lastCleanup time.Time
	stats       recorder
}

// New constructs a cache from cfg. Unset capacity fields take defaults
// (1000 entries, 100 MiB, 60s cleanup interval); explicitly non-positive
// limits are a configuration error.
func New[V any](cfg Config) (*Cache[V], error) {
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid cache config: %w", err)
	}

	return &Cache[V]{
		maxEntries:     cfg.MaxEntries,
		maxMemoryBytes: int64(cfg.MaxMemoryMB * 1024 * 1024),
		maxMemoryMB:    cfg.MaxMemoryMB,
		defaultTTL:     cfg.DefaultTTL,
		cleanupEvery:   cfg.CleanupInterval,
		logger:         cfg.Logger,
		entries:        make(map[string]*Entry[V]),
		order:          newRecencyList(),
		lastCleanup:    time.Now(),
		stats:          recorder{enabled: !cfg.DisableStats},
	}, nil
}

// Set inserts or overwrites key. Without WithTTL the configured default TTL
// applies; without WithSize the footprint comes from EstimateSize. The key
// becomes the most recently used, then capacity and memory bounds are
// enforced, which may evict this or other entries.
func (c *Cache[V]) Set(key string, value V, opts ...SetOption) {
	var o setOptions
	for _, opt := range opts {
		opt(&o)
	}

	ttl := c.defaultTTL
	if o.ttlSet {
		ttl = o.ttl
		if ttl < 0 {
			ttl = 0
		}
	}

	size := o.size
	if !o.sizeSet {
		size = EstimateSize(value)
	}
	if size < 0 {
		size = 0
	}

	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	if old, ok := c.entries[key]; ok {
		c.totalMemory -= old.Size
	}

	c.entries[key] = &Entry[V]{
		Value:      value,
		CreatedAt:  now,
		TTL:        ttl,
		LastAccess: now,
		Size:       size,
	}
	c.totalMemory += size
	c.order.touch(key)

	c.enforceLocked(now)
}

// Get returns the value stored under key. A missing or expired key is a
// miss; an expired entry found here is removed immediately. Hits update the
// entry's access bookkeeping and recency position.
func (c *Cache[V]) Get(key string) (V, bool) {
	var zero V
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	c.maybeSweepLocked(now)

	e, ok := c.entries[key]
	if !ok {
		c.stats.miss()
		return zero, false
	}
	if e.IsExpired(now) {
		// Expiry observed on direct access is a miss, not a cleanup.
		c.removeLocked(key, e)
		c.stats.miss()
		return zero, false
	}

	e.AccessCount++
	e.LastAccess = now
	c.order.touch(key)
	c.stats.hit()
	return e.Value, true
}

// Has reports whether key holds a live, non-expired value. It is free of
// side effects: no sweep, no recency or access bookkeeping, no stats.
func (c *Cache[V]) Has(key string) bool {
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	return ok && !e.IsExpired(now)
}

// Delete removes key if present and reports whether a removal occurred.
// Deleting an absent key is a no-op. Stats are unaffected.
func (c *Cache[V]) Delete(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return false
	}
	c.removeLocked(key, e)
	return true
}

// Clear removes every entry and resets the memory accounting. The lifetime
// usage counters are left intact: they describe how the cache has been used,
// not what it currently holds.
func (c *Cache[V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]*Entry[V])
	c.order.clear()
	c.totalMemory = 0
}

// InvalidatePattern removes every key matching pattern (see Match) and
// returns the number removed. Removals here count as neither evictions nor
// expired cleanups.
func (c *Cache[V]) InvalidatePattern(pattern string) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	var matched []string
	for key := range c.entries {
		if Match(pattern, key) {
			matched = append(matched, key)
		}
	}
	for _, key := range matched {
		c.removeLocked(key, c.entries[key])
	}
	return len(matched)
}

// Stats returns a snapshot of the cache's usage counters and current size.
func (c *Cache[V]) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	return Stats{
		Hits:            c.stats.hits,
		Misses:          c.stats.misses,
		Evictions:       c.stats.evictions,
		ExpiredCleanups: c.stats.expiredCleanups,
		Entries:         len(c.entries),
		MemoryUsageMB:   float64(c.totalMemory) / (1024 * 1024),
		MaxMemoryMB:     c.maxMemoryMB,
		HitRate:         c.stats.hitRate(),
	}
}

// Len returns the number of entries currently stored, including any that
// have expired but not yet been swept.
func (c *Cache[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// MemoryUsage returns the aggregate byte-footprint estimate of all entries.
func (c *Cache[V]) MemoryUsage() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.totalMemory
}

// enforceLocked runs the eviction/expiry algorithm: an opportunistic expiry
// sweep when the cleanup interval has elapsed, then LRU eviction while either
// bound is exceeded. Each eviction strictly shrinks the cache, so the loop
// terminates at the latest when the cache is empty.
func (c *Cache[V]) enforceLocked(now time.Time) {
	c.maybeSweepLocked(now)

	for len(c.entries) > c.maxEntries || c.totalMemory > c.maxMemoryBytes {
		key, ok := c.order.lru()
		if !ok {
			return
		}
		e := c.entries[key]
		c.removeLocked(key, e)
		c.stats.eviction()
		logEviction(c.logger, key, e.Size)
	}
}

// maybeSweepLocked removes all expired entries if the cleanup interval has
// elapsed since the previous sweep.
func (c *Cache[V]) maybeSweepLocked(now time.Time) {
	if now.Sub(c.lastCleanup) < c.cleanupEvery {
		return
	}
	c.lastCleanup = now

	removed := 0
	var freed int64
	for key, e := range c.entries {
		if e.IsExpired(now) {
			c.removeLocked(key, e)
			removed++
			freed += e.Size
		}
	}
	c.stats.expired(removed)
	logCleanup(c.logger, removed, freed)
}

func (c *Cache[V]) removeLocked(key string, e *Entry[V]) {
	delete(c.entries, key)
	c.order.remove(key)
	c.totalMemory -= e.Size
}
