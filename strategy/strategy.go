// Package strategy defines the file-format strategies the manager uses to
// load and save structured documents, and a registry that resolves a
// strategy from a file extension.
package strategy

import (
	"errors"
	"io"
)

// ErrNoStrategy is returned when no strategy is registered for an extension.
var ErrNoStrategy = errors.New("no strategy registered for extension")

// Strategy loads and saves a document in one file format. Documents are
// nested map[string]any trees; implementations must round-trip the
// structures they produce.
type Strategy interface {
	// Load parses a document from r. Empty input yields an empty document.
	Load(r io.Reader) (map[string]any, error)

	// Save serializes doc to w.
	Save(w io.Writer, doc map[string]any) error

	// Extensions returns the file extensions this strategy handles,
	// lowercase and with the leading dot (".json").
	Extensions() []string
}
