package cache

import "log/slog"

// Logging is nil-safe: a cache constructed without a logger pays only a nil
// check per event. Evictions and cleanup sweeps are the observable events;
// individual hits and misses are left to the stats counters to avoid noise.

func logEviction(l *slog.Logger, key string, size int64) {
	if l == nil {
		return
	}
	l.Debug("cache entry evicted",
		"key", key,
		"size", size,
		"reason", "capacity")
}

func logCleanup(l *slog.Logger, removed int, freed int64) {
	if l == nil || removed == 0 {
		return
	}
	l.Debug("expired entries cleaned up",
		"entries_removed", removed,
		"bytes_freed", freed)
}
