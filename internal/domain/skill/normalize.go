package skill

import (
	"encoding/json"
	"strings"
)

// maxDecodeRounds bounds how many times a string value is re-parsed as JSON.
// The backend emits at most a doubly-encoded list.
const maxDecodeRounds = 2

// Normalize turns a raw skills value into a flat list of strings.
//
// Accepted inputs are a JSON list, a JSON string containing a list, or a JSON
// string containing a JSON string containing a list. One level of nested
// lists is flattened. Anything else yields an empty, non-nil list.
func Normalize(raw json.RawMessage) []string {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return []string{}
	}

	for round := 0; round < maxDecodeRounds; round++ {
		s, ok := v.(string)
		if !ok {
			break
		}
		var next any
		if err := json.Unmarshal([]byte(s), &next); err != nil {
			return []string{}
		}
		v = next
	}

	items, ok := v.([]any)
	if !ok {
		return []string{}
	}

	out := make([]string, 0, len(items))
	for _, it := range items {
		switch t := it.(type) {
		case string:
			out = appendSkill(out, t)
		case []any:
			for _, inner := range t {
				if s, ok := inner.(string); ok {
					out = appendSkill(out, s)
				}
			}
		}
	}
	return out
}

// ParseInput splits comma separated form input into skills.
func ParseInput(text string) []string {
	out := []string{}
	for _, part := range strings.Split(text, ",") {
		out = appendSkill(out, part)
	}
	return out
}

func appendSkill(out []string, s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return out
	}
	return append(out, s)
}
