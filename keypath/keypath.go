// Package keypath navigates nested map[string]any documents using
// dot-separated keys, the addressing scheme the file manager exposes to
// callers ("database.host" names doc["database"]["host"]).
package keypath

import (
	"fmt"
	"strings"
)

// Segments splits a dot key into its individual path segments.
// Segments("a.b.c") returns ["a","b","c"].
func Segments(dotKey string) []string {
	return strings.Split(dotKey, ".")
}

// Split separates a dot key into its parent path and final key name.
// Split("a.b.c") returns (["a","b"], "c"); a key without dots has an empty
// parent path.
func Split(dotKey string) ([]string, string) {
	parts := strings.Split(dotKey, ".")
	return parts[:len(parts)-1], parts[len(parts)-1]
}

// Join composes a dot key from a parent path and a key name.
func Join(path []string, keyName string) string {
	if len(path) == 0 {
		return keyName
	}
	return strings.Join(path, ".") + "." + keyName
}

// Get returns the value at path inside doc. The second result reports
// whether the full path resolved.
func Get(doc map[string]any, path ...string) (any, bool) {
	if len(path) == 0 {
		return doc, doc != nil
	}

	current := doc
	for _, segment := range path[:len(path)-1] {
		next, ok := current[segment].(map[string]any)
		if !ok {
			return nil, false
		}
		current = next
	}

	value, ok := current[path[len(path)-1]]
	return value, ok
}

// Has reports whether the full path resolves inside doc.
func Has(doc map[string]any, path ...string) bool {
	_, ok := Get(doc, path...)
	return ok
}

// Set stores value at path inside doc, creating intermediate maps as needed.
// It fails when an intermediate segment already holds a non-map value, since
// overwriting it would silently drop data.
func Set(doc map[string]any, value any, path ...string) error {
	if doc == nil {
		return fmt.Errorf("document is nil")
	}
	if len(path) == 0 {
		return fmt.Errorf("key path is empty")
	}

	current := doc
	for i, segment := range path[:len(path)-1] {
		existing, ok := current[segment]
		if !ok {
			child := make(map[string]any)
			current[segment] = child
			current = child
			continue
		}
		child, ok := existing.(map[string]any)
		if !ok {
			return fmt.Errorf("cannot traverse %q: %q is not a map", Join(path[:i], segment), segment)
		}
		current = child
	}

	current[path[len(path)-1]] = value
	return nil
}

// Delete removes the value at path and reports whether a removal occurred.
// Empty intermediate maps are left in place.
func Delete(doc map[string]any, path ...string) bool {
	if doc == nil || len(path) == 0 {
		return false
	}

	current := doc
	for _, segment := range path[:len(path)-1] {
		next, ok := current[segment].(map[string]any)
		if !ok {
			return false
		}
		current = next
	}

	last := path[len(path)-1]
	if _, ok := current[last]; !ok {
		return false
	}
	delete(current, last)
	return true
}
