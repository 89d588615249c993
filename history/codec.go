package history

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// document is the wire form shared by the JSON and YAML codecs.
type document struct {
	Revision uint64  `json:"revision" yaml:"revision"`
	Steps    []Patch `json:"steps" yaml:"steps"`
}

// MarshalJSON implements json.Marshaler.
func (h *History) MarshalJSON() ([]byte, error) {
	return json.Marshal(document{Revision: h.Revision(), Steps: h.Patches()})
}

// UnmarshalJSON implements json.Unmarshaler. The decoded history is
// immutable like any recorded one.
func (h *History) UnmarshalJSON(data []byte) error {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("history: decode json: %w", err)
	}
	h.patches, h.revision = doc.Steps, doc.Revision

	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (h *History) MarshalYAML() (interface{}, error) {
	return document{Revision: h.Revision(), Steps: h.Patches()}, nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (h *History) UnmarshalYAML(value *yaml.Node) error {
	var doc document
	if err := value.Decode(&doc); err != nil {
		return fmt.Errorf("history: decode yaml: %w", err)
	}
	h.patches, h.revision = doc.Steps, doc.Revision

	return nil
}
