// File: services/intelligence/jsonspan.go
package intelligence

import "strings"

// FirstJSONObject returns the first balanced {...} span in s. The model
// frequently wraps its JSON in commentary, so the caller cannot assume the
// response is a bare object. Brace depth is tracked outside string literals,
// with backslash escapes honored inside them.
func FirstJSONObject(s string) (string, bool) {
	for start := 0; start < len(s); {
		open := strings.IndexByte(s[start:], '{')
		if open < 0 {
			return "", false
		}
		open += start

		if span, ok := scanObject(s, open); ok {
			return span, true
		}
		start = open + 1
	}
	return "", false
}

// scanObject scans a candidate object beginning at the '{' at index start,
// returning the balanced span when one closes before the end of input.
func scanObject(s string, start int) (string, bool) {
	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1], true
			}
		}
	}
	return "", false
}
