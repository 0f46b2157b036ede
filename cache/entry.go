package cache

import "time"

// Entry is the bookkeeping record kept for a single key. The cache owns all
// entries exclusively; lookups hand out the value, never the entry itself.
type Entry[V any] struct {
	// Value is the cached payload. The cache treats it as opaque.
	Value V
	// CreatedAt is when the entry was inserted or last overwritten.
	CreatedAt time.Time
	// TTL is the entry's time-to-live. Zero or negative means the entry
	// never expires (it remains subject to capacity and memory eviction).
	TTL time.Duration
	// LastAccess is when the entry was last read successfully.
	LastAccess time.Time
	// AccessCount is incremented on each successful read.
	AccessCount int64
	// Size is the entry's byte-footprint estimate.
	Size int64
}

// IsExpired reports whether the entry's TTL has elapsed as of now.
func (e *Entry[V]) IsExpired(now time.Time) bool {
	if e.TTL <= 0 {
		return false
	}
	return now.Sub(e.CreatedAt) > e.TTL
}
