package cache

import "strings"

// Match reports whether key matches pattern, where '*' matches any substring
// (including the empty one) and every other character is literal. The match
// is anchored to the whole key: a pattern without '*' matches only the
// identical key. No other metacharacters are recognized.
func Match(pattern, key string) bool {
	if !strings.Contains(pattern, "*") {
		return pattern == key
	}

	segments := strings.Split(pattern, "*")

	// First segment anchors to the start of the key unless the pattern
	// begins with '*', in which case it is empty and matches trivially.
	if !strings.HasPrefix(key, segments[0]) {
		return false
	}
	rest := key[len(segments[0]):]

	// Middle segments must appear in order; matching each at its leftmost
	// position leaves the maximal remainder for later segments.
	for _, seg := range segments[1 : len(segments)-1] {
		if seg == "" {
			continue
		}
		i := strings.Index(rest, seg)
		if i < 0 {
			return false
		}
		rest = rest[i+len(seg):]
	}

	// Last segment anchors to the end of the key.
	return strings.HasSuffix(rest, segments[len(segments)-1])
}
