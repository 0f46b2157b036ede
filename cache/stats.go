package cache

// recorder accumulates lifetime usage counters. When disabled, every
// increment is a no-op so operations run without counting overhead.
// All access happens under the owning cache's mutex.
type recorder struct {
	enabled bool

	hits            int64
	misses          int64
	evictions       int64
	expiredCleanups int64
}

func (r *recorder) hit() {
	if r.enabled {
		r.hits++
	}
}

func (r *recorder) miss() {
	if r.enabled {
		r.misses++
	}
}

func (r *recorder) eviction() {
	if r.enabled {
		r.evictions++
	}
}

func (r *recorder) expired(n int) {
	if r.enabled {
		r.expiredCleanups += int64(n)
	}
}

func (r *recorder) hitRate() float64 {
	total := r.hits + r.misses
	if total == 0 {
		return 0.0
	}
	return float64(r.hits) / float64(total)
}

// Stats is a point-in-time snapshot of cache usage.
//
// Hits, Misses, Evictions, and ExpiredCleanups are cumulative lifetime
// counters describing how the cache has been used; they survive Clear, which
// only empties the stored entries. With stats tracking disabled they stay
// zero while Entries and the memory figures remain accurate.
type Stats struct {
	Hits            int64   `json:"hits"`
	Misses          int64   `json:"misses"`
	Evictions       int64   `json:"evictions"`
	ExpiredCleanups int64   `json:"expired_cleanups"`
	Entries         int     `json:"size"`
	MemoryUsageMB   float64 `json:"memory_usage_mb"`
	MaxMemoryMB     float64 `json:"max_memory_mb"`
	HitRate         float64 `json:"hit_rate"`
}
