// Package cache implements a bounded, concurrency-safe in-process key/value
// cache with per-entry TTL, LRU eviction, and memory-footprint accounting.
//
// The cache evicts under two independent pressure signals: an entry-count
// ceiling and an aggregate memory ceiling. Expired entries are reclaimed
// opportunistically by caller activity; there is no background goroutine, so
// an idle cache holding only expired entries keeps them until the next access.
//
// Every public method is a short critical section under a single mutex that
// guards the entry map, the recency order, the memory total, the statistics,
// and the cleanup clock as one atomic unit. The eviction and expiry logic
// needs a consistent view across all of these, so there is no finer-grained
// locking.
//
// Values are returned by value, never as handles into internal storage, so
// callers cannot corrupt the cache's bookkeeping.
package cache
