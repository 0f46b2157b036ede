package strategy

import (
	"fmt"
	"io"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/format"
)

// CUEStrategy reads and writes CUE documents. Loading compiles the source
// and decodes the resulting value into a plain document, so constraints and
// defaults are resolved at load time; saving exports the document back to
// formatted CUE source.
type CUEStrategy struct {
	cueCtx *cue.Context
}

// NewCUEStrategy returns a CUE format strategy with its own CUE context.
func NewCUEStrategy() *CUEStrategy {
	return &CUEStrategy{cueCtx: cuecontext.New()}
}

func (s *CUEStrategy) Load(r io.Reader) (map[string]any, error) {
	source, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read CUE document: %w", err)
	}
	if len(source) == 0 {
		return make(map[string]any), nil
	}

	value := s.cueCtx.CompileBytes(source)
	if err := value.Err(); err != nil {
		return nil, fmt.Errorf("failed to compile CUE document: %w", err)
	}

	doc := make(map[string]any)
	if err := value.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode CUE document: %w", err)
	}
	return doc, nil
}

func (s *CUEStrategy) Save(w io.Writer, doc map[string]any) error {
	value := s.cueCtx.Encode(doc)
	if err := value.Err(); err != nil {
		return fmt.Errorf("failed to encode CUE document: %w", err)
	}

	node := value.Syntax(cue.Concrete(true))
	data, err := format.Node(node)
	if err != nil {
		return fmt.Errorf("failed to format CUE document: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write CUE document: %w", err)
	}
	return nil
}

func (s *CUEStrategy) Extensions() []string {
	return []string{".cue"}
}
