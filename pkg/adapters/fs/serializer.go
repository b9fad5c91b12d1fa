package fs

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/overload/pkg/core"
	"github.com/aretw0/overload/pkg/scenario"
)

// YAMLSerializer reads and writes scenario files.
type YAMLSerializer struct {
	// Strict rejects unknown keys instead of ignoring them.
	Strict bool
}

// NewYAMLSerializer creates a new YAML serializer.
func NewYAMLSerializer(strict bool) *YAMLSerializer {
	return &YAMLSerializer{Strict: strict}
}

// Parse decodes a single scenario document from r.
func (s *YAMLSerializer) Parse(r io.Reader) (*scenario.Scenario, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(s.Strict)

	var sc scenario.Scenario
	if err := dec.Decode(&sc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", core.ErrInvalidScenario)
		}
		return nil, fmt.Errorf("%w: invalid yaml: %w", core.ErrInvalidScenario, err)
	}
	return &sc, nil
}

// Serialize encodes a scenario as YAML.
func (s *YAMLSerializer) Serialize(sc *scenario.Scenario) ([]byte, error) {
	var buf bytes.Buffer
	if err := s.Encode(&buf, sc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Encode writes a scenario as YAML to w.
func (s *YAMLSerializer) Encode(w io.Writer, sc *scenario.Scenario) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(sc); err != nil {
		return fmt.Errorf("failed to encode scenario: %w", err)
	}
	return enc.Close()
}
