package llm

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// SchemaValidator validates a parsed struct after JSON extraction.
// Returns nil if valid, or a descriptive error if invalid.
type SchemaValidator[T any] func(T) error

// ExtractJSON extracts a JSON object of type T from raw LLM text output.
// It tolerates markdown code fences and surrounding prose, which local models
// emit even in JSON mode. When schema is non-nil the object must conform to
// it before decoding: missing required fields and mistyped values are
// rejected, never defaulted. If validator is non-nil, the decoded value is
// validated before return.
func ExtractJSON[T any](raw string, schema *Schema, validator SchemaValidator[T]) (T, error) {
	var zero T

	if strings.TrimSpace(raw) == "" {
		return zero, ErrEmptyResponse
	}

	jsonStr := extractJSONBlock(stripCodeFences(raw))
	if jsonStr == "" {
		return zero, fmt.Errorf("%w: no JSON object found in response", ErrInvalidOutput)
	}

	if schema != nil {
		dec := json.NewDecoder(strings.NewReader(jsonStr))
		dec.UseNumber()
		var generic any
		if err := dec.Decode(&generic); err != nil {
			return zero, fmt.Errorf("%w: %v", ErrInvalidOutput, err)
		}
		if err := schema.Check(generic); err != nil {
			return zero, fmt.Errorf("%w: %v", ErrInvalidOutput, err)
		}
	}

	var result T
	if err := json.Unmarshal([]byte(jsonStr), &result); err != nil {
		return zero, fmt.Errorf("%w: %v", ErrInvalidOutput, err)
	}

	if validator != nil {
		if err := validator(result); err != nil {
			return zero, fmt.Errorf("%w: validation failed: %v", ErrInvalidOutput, err)
		}
	}

	return result, nil
}

// stripCodeFences drops markdown fence lines (```json, ```), keeping the
// lines between and around them.
func stripCodeFences(s string) string {
	if !strings.Contains(s, "```") {
		return s
	}
	var b bytes.Buffer
	for _, line := range strings.Split(s, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			continue
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}

// extractJSONBlock finds the first balanced { ... } block in the text,
// ignoring braces inside string literals.
func extractJSONBlock(s string) string {
	start := strings.IndexByte(s, '{')
	if start == -1 {
		return ""
	}

	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(s); i++ {
		c := s[i]
		switch {
		case escaped:
			escaped = false
		case inString && c == '\\':
			escaped = true
		case c == '"':
			inString = !inString
		case inString:
		case c == '{':
			depth++
		case c == '}':
			depth--
			if depth == 0 {
				return s[start : i+1]
			}
		}
	}

	return ""
}
