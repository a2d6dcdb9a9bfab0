package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

// StripFences removes a Markdown code fence (```json ... ``` or
// ``` ... ```) wrapping the oracle reply, if any.
func StripFences(raw string) string {
	s := strings.TrimSpace(raw)

	if i := strings.Index(s, "```json"); i >= 0 {
		s = s[i+len("```json"):]
		if j := strings.Index(s, "```"); j >= 0 {
			s = s[:j]
		}
		return strings.TrimSpace(s)
	}
	if i := strings.Index(s, "```"); i >= 0 {
		s = s[i+len("```"):]
		if j := strings.Index(s, "```"); j >= 0 {
			s = s[:j]
		}
		return strings.TrimSpace(s)
	}
	return s
}

// DecodeObject strips fences and parses the reply as a JSON object.
func DecodeObject(raw string) (map[string]any, error) {
	cleaned := StripFences(raw)
	var m map[string]any
	if err := json.Unmarshal([]byte(cleaned), &m); err != nil {
		return nil, fmt.Errorf("decode oracle response: %w", err)
	}
	return m, nil
}
