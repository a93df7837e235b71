package llm

import (
	"encoding/json"
	"fmt"
	"sort"
)

// SchemaType is a JSON value type in a response shape contract.
type SchemaType string

const (
	TypeObject  SchemaType = "object"
	TypeArray   SchemaType = "array"
	TypeString  SchemaType = "string"
	TypeInteger SchemaType = "integer"
	TypeNumber  SchemaType = "number"
	TypeBoolean SchemaType = "boolean"
)

// Schema describes the structure a provider response must satisfy. It
// marshals to a JSON Schema subset and converts to the Gemini schema type.
type Schema struct {
	Type        SchemaType         `json:"type"`
	Description string             `json:"description,omitempty"`
	Properties  map[string]*Schema `json:"properties,omitempty"`
	Required    []string           `json:"required,omitempty"`
	Items       *Schema            `json:"items,omitempty"`

	// PropertyOrdering fixes the field order the model should emit.
	PropertyOrdering []string `json:"-"`
}

// Check verifies that v, a value produced by decoding JSON with UseNumber,
// conforms to s. Required properties must be present and non-null; every
// present value must have the declared type.
func (s *Schema) Check(v any) error {
	return s.check("$", v)
}

func (s *Schema) check(path string, v any) error {
	switch s.Type {
	case TypeObject:
		obj, ok := v.(map[string]any)
		if !ok {
			return typeMismatch(path, s.Type, v)
		}
		for _, name := range s.Required {
			if val, present := obj[name]; !present || val == nil {
				return fmt.Errorf("%s.%s: missing required field", path, name)
			}
		}
		names := make([]string, 0, len(s.Properties))
		for name := range s.Properties {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			val, present := obj[name]
			if !present || val == nil {
				continue
			}
			if err := s.Properties[name].check(path+"."+name, val); err != nil {
				return err
			}
		}
	case TypeArray:
		arr, ok := v.([]any)
		if !ok {
			return typeMismatch(path, s.Type, v)
		}
		if s.Items == nil {
			return nil
		}
		for i, elem := range arr {
			if elem == nil {
				return fmt.Errorf("%s[%d]: null element", path, i)
			}
			if err := s.Items.check(fmt.Sprintf("%s[%d]", path, i), elem); err != nil {
				return err
			}
		}
	case TypeString:
		if _, ok := v.(string); !ok {
			return typeMismatch(path, s.Type, v)
		}
	case TypeInteger:
		n, ok := v.(json.Number)
		if !ok {
			return typeMismatch(path, s.Type, v)
		}
		if _, err := n.Int64(); err != nil {
			return fmt.Errorf("%s: expected integer, got %s", path, n)
		}
	case TypeNumber:
		if _, ok := v.(json.Number); !ok {
			return typeMismatch(path, s.Type, v)
		}
	case TypeBoolean:
		if _, ok := v.(bool); !ok {
			return typeMismatch(path, s.Type, v)
		}
	default:
		return fmt.Errorf("%s: unsupported schema type %q", path, s.Type)
	}
	return nil
}

func typeMismatch(path string, want SchemaType, got any) error {
	return fmt.Errorf("%s: expected %s, got %s", path, want, jsonKind(got))
}

func jsonKind(v any) string {
	switch v.(type) {
	case map[string]any:
		return "object"
	case []any:
		return "array"
	case string:
		return "string"
	case json.Number:
		return "number"
	case bool:
		return "boolean"
	case nil:
		return "null"
	default:
		return fmt.Sprintf("%T", v)
	}
}
