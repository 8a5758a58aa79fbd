package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ExtractJSON parses a JSON document out of an LLM response tolerantly:
// markdown fences are stripped, the payload starts at the first '{' or '[',
// trailing garbage after the balanced document is discarded, and a truncated
// document is repaired by closing unterminated strings and open
// braces/brackets. The result is unmarshaled into v.
func ExtractJSON(raw string, v any) error {
	payload, err := extractJSONPayload(raw)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(payload), v); err != nil {
		// Attempt repair of a truncated document before giving up.
		repaired := repairJSON(payload)
		if repErr := json.Unmarshal([]byte(repaired), v); repErr == nil {
			return nil
		}
		return fmt.Errorf("parsing LLM JSON response: %w", err)
	}
	return nil
}

// extractJSONPayload locates the JSON document inside raw.
func extractJSONPayload(raw string) (string, error) {
	s := strings.TrimSpace(raw)

	// Strip markdown fences (```json ... ``` or ``` ... ```).
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		if idx := strings.LastIndex(s, "```"); idx >= 0 {
			s = s[:idx]
		}
		s = strings.TrimSpace(s)
	}

	start := strings.IndexAny(s, "{[")
	if start < 0 {
		return "", fmt.Errorf("no JSON object or array found in response")
	}
	s = s[start:]

	// Walk the document to find where it balances; anything after is garbage.
	if end := balancedEnd(s); end > 0 {
		s = s[:end]
	}
	return s, nil
}

// balancedEnd returns the index just past the balanced JSON document starting
// at s[0], or -1 if the document never balances (truncated output).
func balancedEnd(s string) int {
	depth := 0
	inString := false
	escaped := false
	for i, r := range s {
		if inString {
			switch {
			case escaped:
				escaped = false
			case r == '\\':
				escaped = true
			case r == '"':
				inString = false
			}
			continue
		}
		switch r {
		case '"':
			inString = true
		case '{', '[':
			depth++
		case '}', ']':
			depth--
			if depth == 0 {
				return i + 1
			}
		}
	}
	return -1
}

// repairJSON closes an unterminated string and any unclosed braces/brackets
// in a truncated document. A trailing comma before a closer is dropped.
func repairJSON(s string) string {
	var stack []rune
	inString := false
	escaped := false
	for _, r := range s {
		if inString {
			switch {
			case escaped:
				escaped = false
			case r == '\\':
				escaped = true
			case r == '"':
				inString = false
			}
			continue
		}
		switch r {
		case '"':
			inString = true
		case '{':
			stack = append(stack, '}')
		case '[':
			stack = append(stack, ']')
		case '}', ']':
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		}
	}

	var b strings.Builder
	b.WriteString(s)
	if inString {
		b.WriteRune('"')
	}
	// Drop a dangling comma so the closers produce valid JSON.
	trimmed := strings.TrimRight(b.String(), " \t\n\r")
	if strings.HasSuffix(trimmed, ",") {
		b.Reset()
		b.WriteString(strings.TrimSuffix(trimmed, ","))
	}
	for i := len(stack) - 1; i >= 0; i-- {
		b.WriteRune(stack[i])
	}
	return b.String()
}
