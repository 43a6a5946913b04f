// Package substitute expands `?` and `$N` placeholders inside a SQL
// template, the way the teacher's parser/token.go tokenizer walks raw SQL
// byte-by-byte with explicit lexical states rather than a regex pass —
// here the states just need to know when a placeholder is inert.
package substitute

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/k0kubun/pgqb/escape"
)

// ErrMissingBind is returned when a template references more values than
// were supplied.
var ErrMissingBind = errors.New("substitute: missing bind value")

// ErrLexError is returned when the template contains an unterminated
// string or identifier literal.
var ErrLexError = errors.New("substitute: unterminated literal")

type lexState int

const (
	stateDefault lexState = iota
	stateSingleQuoted
	stateEString
	stateDoubleQuoted
)

// Substitute walks template and replaces each `?` (consumed in order from
// values, 0-based) and each `$N` (1-based index into values) with its
// escaped textual form, skipping over string/E-string/identifier
// literals so placeholder-like bytes inside them are left untouched.
func Substitute(template string, values []any) (string, error) {
	var out strings.Builder
	state := stateDefault
	argIndex := 0

	for i := 0; i < len(template); {
		c := template[i]

		switch state {
		case stateDefault:
			switch {
			case c == '\'':
				if i > 0 && (template[i-1] == 'E' || template[i-1] == 'e') {
					state = stateEString
				} else {
					state = stateSingleQuoted
				}
				out.WriteByte(c)
				i++
			case c == '"':
				state = stateDoubleQuoted
				out.WriteByte(c)
				i++
			case c == '?':
				if argIndex >= len(values) {
					return "", fmt.Errorf("%w: placeholder %d exceeds %d supplied values", ErrMissingBind, argIndex+1, len(values))
				}
				esc, err := escape.Value(values[argIndex])
				if err != nil {
					return "", err
				}
				out.WriteString(esc)
				argIndex++
				i++
			case c == '$':
				j := i + 1
				for j < len(template) && template[j] >= '0' && template[j] <= '9' {
					j++
				}
				if j == i+1 {
					out.WriteByte(c)
					i++
					continue
				}
				n, err := strconv.Atoi(template[i+1 : j])
				if err != nil {
					return "", err
				}
				if n < 1 || n > len(values) {
					return "", fmt.Errorf("%w: $%d has no corresponding value", ErrMissingBind, n)
				}
				esc, err := escape.Value(values[n-1])
				if err != nil {
					return "", err
				}
				out.WriteString(esc)
				i = j
			default:
				out.WriteByte(c)
				i++
			}

		case stateSingleQuoted:
			if c == '\'' {
				if i+1 < len(template) && template[i+1] == '\'' {
					out.WriteString("''")
					i += 2
					continue
				}
				out.WriteByte(c)
				state = stateDefault
				i++
				continue
			}
			out.WriteByte(c)
			i++

		case stateEString:
			if c == '\\' {
				if i+1 >= len(template) {
					return "", ErrLexError
				}
				out.WriteByte(c)
				out.WriteByte(template[i+1])
				i += 2
				continue
			}
			if c == '\'' {
				out.WriteByte(c)
				state = stateDefault
				i++
				continue
			}
			out.WriteByte(c)
			i++

		case stateDoubleQuoted:
			if c == '"' {
				if i+1 < len(template) && template[i+1] == '"' {
					out.WriteString(`""`)
					i += 2
					continue
				}
				out.WriteByte(c)
				state = stateDefault
				i++
				continue
			}
			out.WriteByte(c)
			i++
		}
	}

	if state != stateDefault {
		return "", ErrLexError
	}
	return out.String(), nil
}
