package strategy

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// JSONStrategy reads and writes JSON documents with indented output.
type JSONStrategy struct{}

// NewJSONStrategy returns a JSON format strategy.
func NewJSONStrategy() *JSONStrategy {
	return &JSONStrategy{}
}

func (s *JSONStrategy) Load(r io.Reader) (map[string]any, error) {
	doc := make(map[string]any)
	err := json.NewDecoder(r).Decode(&doc)
	if errors.Is(err, io.EOF) {
		return make(map[string]any), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse JSON document: %w", err)
	}
	return doc, nil
}

func (s *JSONStrategy) Save(w io.Writer, doc map[string]any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to write JSON document: %w", err)
	}
	return nil
}

func (s *JSONStrategy) Extensions() []string {
	return []string{".json"}
}
