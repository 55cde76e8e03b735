package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

// SchemaValidator checks a decoded value. A non-nil error rejects it.
type SchemaValidator[T any] func(T) error

// ExtractJSON decodes the first JSON array or object in raw model text
// that unmarshals into T. Bracketed prose before the value is skipped, as
// are markdown fences, comments and ".5"-style numbers. Every failure
// wraps ErrInvalidOutput.
func ExtractJSON[T any](raw string, validator SchemaValidator[T]) (T, error) {
	var zero T

	text := stripFences(raw)
	var lastErr error
	for from := 0; from < len(text); {
		start, block := nextBalanced(text, from)
		if start < 0 {
			break
		}
		from = start + 1
		if block == "" {
			continue
		}

		var out T
		if err := json.Unmarshal([]byte(fixLeadingDecimals(stripComments(block))), &out); err != nil {
			lastErr = err
			continue
		}
		if validator != nil {
			if err := validator(out); err != nil {
				return zero, fmt.Errorf("%w: validation failed: %v", ErrInvalidOutput, err)
			}
		}
		return out, nil
	}

	if lastErr != nil {
		return zero, fmt.Errorf("%w: %v", ErrInvalidOutput, lastErr)
	}
	return zero, fmt.Errorf("%w: no JSON value found in response", ErrInvalidOutput)
}

// lexer tracks whether the scan position is inside a JSON string literal.
type lexer struct {
	inString bool
	escaped  bool
}

// structural consumes c and reports whether it sits outside any string
// literal. Quote characters themselves are never structural.
func (l *lexer) structural(c byte) bool {
	switch {
	case l.escaped:
		l.escaped = false
		return false
	case l.inString && c == '\\':
		l.escaped = true
		return false
	case c == '"':
		l.inString = !l.inString
		return false
	}
	return !l.inString
}

// stripFences drops ``` fence lines and keeps what they enclose.
func stripFences(s string) string {
	lines := strings.Split(s, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}

// nextBalanced finds the first '[' or '{' at or after from and returns its
// offset with the complete value it opens. block is "" when the brackets
// never balance; start is -1 when there is no opener left.
func nextBalanced(s string, from int) (start int, block string) {
	i := strings.IndexAny(s[from:], "[{")
	if i < 0 {
		return -1, ""
	}
	start = from + i

	var lx lexer
	var closers []byte
	for j := start; j < len(s); j++ {
		c := s[j]
		if !lx.structural(c) {
			continue
		}
		switch c {
		case '{':
			closers = append(closers, '}')
		case '[':
			closers = append(closers, ']')
		case '}', ']':
			if len(closers) == 0 || closers[len(closers)-1] != c {
				return start, ""
			}
			closers = closers[:len(closers)-1]
			if len(closers) == 0 {
				return start, s[start : j+1]
			}
		}
	}
	return start, ""
}

// stripComments removes // and /* */ comments found outside strings.
func stripComments(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	var lx lexer
	for i := 0; i < len(s); i++ {
		c := s[i]
		if lx.structural(c) && c == '/' && i+1 < len(s) {
			switch s[i+1] {
			case '/':
				nl := strings.IndexByte(s[i:], '\n')
				if nl < 0 {
					return b.String()
				}
				i += nl - 1
				continue
			case '*':
				end := strings.Index(s[i+2:], "*/")
				if end < 0 {
					return b.String()
				}
				i += 2 + end + 1
				continue
			}
		}
		b.WriteByte(c)
	}
	return b.String()
}

// fixLeadingDecimals rewrites ".8" and "-.3" to "0.8" and "-0.3".
func fixLeadingDecimals(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 8)

	var lx lexer
	for i := 0; i < len(s); i++ {
		c := s[i]
		if lx.structural(c) && c == '.' && i+1 < len(s) && isDigit(s[i+1]) && opensNumber(lastNonSpace(s[:i])) {
			b.WriteByte('0')
		}
		b.WriteByte(c)
	}
	return b.String()
}

func lastNonSpace(s string) byte {
	s = strings.TrimRight(s, " \t\r\n")
	if s == "" {
		return 0
	}
	return s[len(s)-1]
}

// opensNumber reports whether a number may start right after c.
func opensNumber(c byte) bool {
	switch c {
	case 0, ':', ',', '[', '{', '-':
		return true
	}
	return false
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
