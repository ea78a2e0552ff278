package uncertain

import (
	"encoding/json"
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/phrazzld/periodic-api/internal/domain"
)

// wireQuantity is the persisted shape of a Quantity. Exactly one field is set:
//
//	{"Interval": [start, end]}
//	{"Uncertain": {"value": v, "uncertainty": u}}
type wireQuantity struct {
	Interval  []float64     `json:"Interval,omitempty" yaml:"Interval,omitempty,flow"`
	Uncertain *wireCentered `json:"Uncertain,omitempty" yaml:"Uncertain,omitempty"`
}

type wireCentered struct {
	Value       float64 `json:"value" yaml:"value"`
	Uncertainty float64 `json:"uncertainty" yaml:"uncertainty"`
}

var (
	variantKeys  = []string{"Interval", "Uncertain"}
	centeredKeys = []string{"value", "uncertainty"}
)

// checkKeys rejects any key outside allowed, compared case-sensitively. With
// required set, every allowed key must also be present.
func checkKeys(keys []string, required bool, allowed ...string) error {
	for _, k := range keys {
		if !slices.Contains(allowed, k) {
			return fmt.Errorf("%w: unknown quantity field %q", domain.ErrInvalidFormat, k)
		}
	}
	if required {
		for _, k := range allowed {
			if !slices.Contains(keys, k) {
				return fmt.Errorf("%w: missing quantity field %q", domain.ErrInvalidFormat, k)
			}
		}
	}
	return nil
}

// checkJSONKeys runs before the struct decode because encoding/json matches
// field names case-insensitively and drops unknown ones.
func checkJSONKeys(data []byte) error {
	var outer map[string]json.RawMessage
	if err := json.Unmarshal(data, &outer); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidFormat, err)
	}
	if err := checkKeys(mapKeys(outer), false, variantKeys...); err != nil {
		return err
	}
	raw, ok := outer["Uncertain"]
	if !ok {
		return nil
	}
	var inner map[string]json.RawMessage
	if err := json.Unmarshal(raw, &inner); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidFormat, err)
	}
	if inner == nil {
		return nil
	}
	return checkKeys(mapKeys(inner), true, centeredKeys...)
}

func mapKeys(m map[string]json.RawMessage) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

// checkYAMLKeys applies the same rules as checkJSONKeys to a mapping node.
func checkYAMLKeys(node *yaml.Node) error {
	for node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	if node.Kind != yaml.MappingNode {
		return nil
	}
	keys := nodeKeys(node)
	if err := checkKeys(keys, false, variantKeys...); err != nil {
		return err
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value != "Uncertain" {
			continue
		}
		inner := node.Content[i+1]
		for inner.Kind == yaml.AliasNode && inner.Alias != nil {
			inner = inner.Alias
		}
		if inner.Kind == yaml.MappingNode {
			return checkKeys(nodeKeys(inner), true, centeredKeys...)
		}
	}
	return nil
}

func nodeKeys(node *yaml.Node) []string {
	keys := make([]string, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		keys = append(keys, node.Content[i].Value)
	}
	return keys
}

func (q Quantity) toWire() wireQuantity {
	switch q.kind {
	case KindInterval:
		return wireQuantity{Interval: []float64{q.a, q.b}}
	default:
		return wireQuantity{Uncertain: &wireCentered{Value: q.a, Uncertainty: q.b}}
	}
}

func fromWire(w wireQuantity) (Quantity, error) {
	switch {
	case w.Interval != nil && w.Uncertain != nil:
		return Quantity{}, fmt.Errorf("%w: quantity has both Interval and Uncertain", domain.ErrInvalidFormat)
	case w.Interval != nil:
		if len(w.Interval) != 2 {
			return Quantity{}, fmt.Errorf("%w: Interval needs 2 bounds, got %d",
				domain.ErrInvalidFormat, len(w.Interval))
		}
		return FromBounds(w.Interval[0], w.Interval[1])
	case w.Uncertain != nil:
		return FromValueAndUncertainty(w.Uncertain.Value, w.Uncertain.Uncertainty)
	default:
		return Quantity{}, fmt.Errorf("%w: quantity needs Interval or Uncertain", domain.ErrInvalidFormat)
	}
}

// MarshalJSON implements json.Marshaler.
func (q Quantity) MarshalJSON() ([]byte, error) {
	return json.Marshal(q.toWire())
}

// UnmarshalJSON implements json.Unmarshaler. Field names must match exactly
// and unknown fields are rejected. Decoded values are validated by the same
// rules as the constructors.
func (q *Quantity) UnmarshalJSON(data []byte) error {
	if err := checkJSONKeys(data); err != nil {
		return err
	}
	var w wireQuantity
	if err := json.Unmarshal(data, &w); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidFormat, err)
	}
	decoded, err := fromWire(w)
	if err != nil {
		return err
	}
	*q = decoded
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (q Quantity) MarshalYAML() (interface{}, error) {
	return q.toWire(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler with the same field rules as
// UnmarshalJSON.
func (q *Quantity) UnmarshalYAML(node *yaml.Node) error {
	if err := checkYAMLKeys(node); err != nil {
		return err
	}
	var w wireQuantity
	if err := node.Decode(&w); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidFormat, err)
	}
	decoded, err := fromWire(w)
	if err != nil {
		return err
	}
	*q = decoded
	return nil
}
