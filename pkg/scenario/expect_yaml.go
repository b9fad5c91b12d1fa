package scenario

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/overload/pkg/dispatch"
)

// UnmarshalYAML accepts each pair result either as a mapping
// ({left: 7, right: 3}) or as a two-element sequence ([7, 3]).
//
// The set of keys is closed at both levels, so unknown keys inside an expect
// block are rejected whatever the decoder's KnownFields setting.
func (e *Expect) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: expect must be a mapping", node.Line)
	}

	var out Expect
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, val := node.Content[i], node.Content[i+1]
		switch key.Value {
		case "str":
			out.Str = new(string)
			if err := val.Decode(out.Str); err != nil {
				return err
			}
		case "intint":
			var r dispatch.IntInt
			if err := decodePair(val, key.Value, "left", &r.Left, "right", &r.Right); err != nil {
				return err
			}
			out.IntInt = &r
		case "intstr":
			var r dispatch.IntStr
			if err := decodePair(val, key.Value, "int", &r.Int, "str", &r.Str); err != nil {
				return err
			}
			out.IntStr = &r
		case "strint":
			var r dispatch.StrInt
			if err := decodePair(val, key.Value, "str", &r.Str, "int", &r.Int); err != nil {
				return err
			}
			out.StrInt = &r
		default:
			return fmt.Errorf("line %d: field %s not found in expect", key.Line, key.Value)
		}
	}
	*e = out
	return nil
}

// decodePair fills first and second from a [first, second] sequence or from a
// mapping with exactly the keys firstKey and secondKey.
func decodePair(node *yaml.Node, what, firstKey string, first any, secondKey string, second any) error {
	switch node.Kind {
	case yaml.SequenceNode:
		if len(node.Content) != 2 {
			return fmt.Errorf("line %d: %s needs exactly 2 elements, got %d", node.Line, what, len(node.Content))
		}
		if err := node.Content[0].Decode(first); err != nil {
			return err
		}
		return node.Content[1].Decode(second)

	case yaml.MappingNode:
		seen := make(map[string]bool, 2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			key, val := node.Content[i], node.Content[i+1]
			var dst any
			switch key.Value {
			case firstKey:
				dst = first
			case secondKey:
				dst = second
			default:
				return fmt.Errorf("line %d: field %s not found in %s", key.Line, key.Value, what)
			}
			if err := val.Decode(dst); err != nil {
				return err
			}
			seen[key.Value] = true
		}
		if !seen[firstKey] || !seen[secondKey] {
			return fmt.Errorf("line %d: %s needs both %s and %s", node.Line, what, firstKey, secondKey)
		}
		return nil

	default:
		return fmt.Errorf("line %d: %s must be a sequence or a mapping", node.Line, what)
	}
}
