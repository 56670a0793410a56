package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

// SchemaValidator checks a decoded value; a non-nil error rejects it.
type SchemaValidator[T any] func(T) error

// ExtractJSON decodes the first JSON object or array in a model answer into
// T. Markdown fences, prose around the value, comments and trailing commas
// are tolerated. validator may be nil.
func ExtractJSON[T any](raw string, validator SchemaValidator[T]) (T, error) {
	var zero T

	block := extractJSONBlock(stripCodeFences(raw))
	if block == "" {
		return zero, fmt.Errorf("%w: no JSON value found in response", ErrInvalidOutput)
	}
	block = dropTrailingCommas(stripJSONComments(block))

	var result T
	if err := json.Unmarshal([]byte(block), &result); err != nil {
		return zero, fmt.Errorf("%w: %v", ErrInvalidOutput, err)
	}
	if validator != nil {
		if err := validator(result); err != nil {
			return zero, fmt.Errorf("%w: validation failed: %v", ErrInvalidOutput, err)
		}
	}
	return result, nil
}

// stringTracker follows string literals through a byte-at-a-time scan.
type stringTracker struct {
	in      bool
	escaped bool
}

// step consumes c and reports whether it belongs to a string literal,
// quotes included.
func (t *stringTracker) step(c byte) bool {
	switch {
	case t.escaped:
		t.escaped = false
		return true
	case t.in && c == '\\':
		t.escaped = true
		return true
	case c == '"':
		t.in = !t.in
		return true
	default:
		return t.in
	}
}

// stripCodeFences drops markdown fence lines (```json, ```), keeping the
// fenced body.
func stripCodeFences(s string) string {
	lines := strings.Split(s, "\n")
	out := lines[:0]
	for _, line := range lines {
		if !strings.HasPrefix(strings.TrimSpace(line), "```") {
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n")
}

// extractJSONBlock returns the first balanced {...} or [...] block in s, or
// "" if the brackets never balance.
func extractJSONBlock(s string) string {
	start := strings.IndexAny(s, "{[")
	if start == -1 {
		return ""
	}

	var st stringTracker
	var closers []byte
	for i := start; i < len(s); i++ {
		c := s[i]
		if st.step(c) {
			continue
		}
		switch c {
		case '{':
			closers = append(closers, '}')
		case '[':
			closers = append(closers, ']')
		case '}', ']':
			if len(closers) == 0 || closers[len(closers)-1] != c {
				return ""
			}
			closers = closers[:len(closers)-1]
			if len(closers) == 0 {
				return s[start : i+1]
			}
		}
	}
	return ""
}

// stripJSONComments removes // and /* */ comments outside string values.
func stripJSONComments(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	var st stringTracker
	for i := 0; i < len(s); i++ {
		c := s[i]
		if st.step(c) || c != '/' || i+1 == len(s) {
			b.WriteByte(c)
			continue
		}
		switch s[i+1] {
		case '/':
			end := strings.IndexByte(s[i:], '\n')
			if end == -1 {
				return b.String()
			}
			i += end - 1
		case '*':
			end := strings.Index(s[i+2:], "*/")
			if end == -1 {
				return b.String()
			}
			i += end + 3
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// dropTrailingCommas removes a comma that is followed only by whitespace
// before a closing bracket, as in [1, 2,].
func dropTrailingCommas(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	var st stringTracker
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !st.step(c) && c == ',' {
			rest := strings.TrimLeft(s[i+1:], " \t\r\n")
			if rest != "" && (rest[0] == '}' || rest[0] == ']') {
				continue
			}
		}
		b.WriteByte(c)
	}
	return b.String()
}
