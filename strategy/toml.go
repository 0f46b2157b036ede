package strategy

import (
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"
)

// TOMLStrategy reads and writes TOML documents.
type TOMLStrategy struct{}

// NewTOMLStrategy returns a TOML format strategy.
func NewTOMLStrategy() *TOMLStrategy {
	return &TOMLStrategy{}
}

func (s *TOMLStrategy) Load(r io.Reader) (map[string]any, error) {
	doc := make(map[string]any)
	if err := toml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to parse TOML document: %w", err)
	}
	return doc, nil
}

func (s *TOMLStrategy) Save(w io.Writer, doc map[string]any) error {
	if err := toml.NewEncoder(w).Encode(doc); err != nil {
		return fmt.Errorf("failed to write TOML document: %w", err)
	}
	return nil
}

func (s *TOMLStrategy) Extensions() []string {
	return []string{".toml"}
}
