package ai

import (
	"encoding/json"
	"errors"
	"strings"
)

// ErrNoJSON means no parsable JSON object could be recovered from the model
// reply.
var ErrNoJSON = errors.New("no JSON object found in model reply")

// ExtractJSONObject recovers a JSON object from free-form model output.
// Tier one is a strict parse of the whole (trimmed) text; tier two scans for
// the first balanced {...} substring that parses; otherwise ErrNoJSON. The
// caller decides whether that error means a typed fallback or a dropped
// enrichment.
func ExtractJSONObject(text string) (map[string]any, error) {
	raw, err := extractObjectString(text)
	if err != nil {
		return nil, err
	}
	var obj map[string]any
	if err := json.Unmarshal([]byte(raw), &obj); err != nil {
		return nil, ErrNoJSON
	}
	return obj, nil
}

// ExtractJSONInto runs the same pipeline but decodes into a typed value.
func ExtractJSONInto(text string, v any) error {
	raw, err := extractObjectString(text)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return ErrNoJSON
	}
	return nil
}

func extractObjectString(text string) (string, error) {
	trimmed := strings.TrimSpace(text)
	if json.Valid([]byte(trimmed)) && strings.HasPrefix(trimmed, "{") {
		return trimmed, nil
	}

	for start := 0; start < len(trimmed); start++ {
		if trimmed[start] != '{' {
			continue
		}
		end, ok := balancedEnd(trimmed, start)
		if !ok {
			continue
		}
		candidate := trimmed[start : end+1]
		if json.Valid([]byte(candidate)) {
			return candidate, nil
		}
	}
	return "", ErrNoJSON
}

// balancedEnd walks from the opening brace at start and returns the index of
// its matching close, honoring strings and escapes.
func balancedEnd(s string, start int) (int, bool) {
	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if escaped {
			escaped = false
			continue
		}
		switch {
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
				return i, true
			}
		}
	}
	return 0, false
}
