package strategy

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// YAMLStrategy reads and writes YAML documents.
type YAMLStrategy struct{}

// NewYAMLStrategy returns a YAML format strategy.
func NewYAMLStrategy() *YAMLStrategy {
	return &YAMLStrategy{}
}

func (s *YAMLStrategy) Load(r io.Reader) (map[string]any, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read YAML document: %w", err)
	}

	doc := make(map[string]any)
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse YAML document: %w", err)
	}
	if doc == nil {
		doc = make(map[string]any)
	}
	return doc, nil
}

func (s *YAMLStrategy) Save(w io.Writer, doc map[string]any) error {
	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to serialize YAML document: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write YAML document: %w", err)
	}
	return nil
}

func (s *YAMLStrategy) Extensions() []string {
	return []string{".yaml", ".yml"}
}
