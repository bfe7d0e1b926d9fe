// Package tokenize splits a raw command line into tokens using shell-like
// quoting rules.
//
// Whitespace outside quotes separates tokens. Single and double quoted
// sections are kept intact with the quotes removed, and may be glued to
// unquoted text ("a'b c'd" is the single token "ab cd"). A backslash makes
// the next character literal, inside or outside quotes. An empty quoted
// section ("") yields an empty token.
//
// Shell operators (;, |, &, <, >) and variable expansion carry no meaning:
// they are ordinary characters.
package tokenize

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/arthur-debert/cmdmatch/pkg/errors"
)

type state int

const (
	stateOutside state = iota
	stateSingleQuote
	stateDoubleQuote
)

// Tokenize splits line into tokens. It fails with an ErrMalformedInput error
// when a quote is left open or the line ends in a lone backslash.
func Tokenize(line string) ([]string, error) {
	var (
		tokens   []string
		buf      strings.Builder
		inToken  bool
		escaping bool
		current  = stateOutside
		openedAt int
	)

	flush := func() {
		if inToken {
			tokens = append(tokens, buf.String())
			buf.Reset()
			inToken = false
		}
	}

	for i := 0; i < len(line); {
		// Invalid UTF-8 decodes to RuneError; raw keeps the original bytes
		pos := i
		ch, size := utf8.DecodeRuneInString(line[i:])
		raw := line[i : i+size]
		i += size

		if escaping {
			buf.WriteString(raw)
			escaping = false
			continue
		}

		if ch == '\\' {
			escaping = true
			inToken = true
			continue
		}

		switch current {
		case stateSingleQuote:
			if ch == '\'' {
				current = stateOutside
				continue
			}
			buf.WriteString(raw)

		case stateDoubleQuote:
			if ch == '"' {
				current = stateOutside
				continue
			}
			buf.WriteString(raw)

		default:
			switch {
			case unicode.IsSpace(ch):
				flush()
			case ch == '\'':
				current = stateSingleQuote
				openedAt = pos
				inToken = true
			case ch == '"':
				current = stateDoubleQuote
				openedAt = pos
				inToken = true
			default:
				buf.WriteString(raw)
				inToken = true
			}
		}
	}

	if escaping {
		return nil, errors.New(errors.ErrMalformedInput, "line ends with an unescaped backslash").
			WithDetail("line", line).
			WithDetail("position", len(line)-1)
	}

	switch current {
	case stateSingleQuote:
		return nil, unterminated(line, '\'', openedAt)
	case stateDoubleQuote:
		return nil, unterminated(line, '"', openedAt)
	}

	flush()
	if tokens == nil {
		tokens = []string{}
	}
	return tokens, nil
}

func unterminated(line string, quote rune, pos int) error {
	return errors.Newf(errors.ErrMalformedInput, "unterminated %c quote at position %d", quote, pos).
		WithDetails(map[string]interface{}{
			"line":     line,
			"position": pos,
		})
}

// Join renders tokens back into a line that Tokenize splits into the same
// tokens. Tokens that need it are double quoted with embedded backslashes
// and double quotes escaped.
func Join(tokens []string) string {
	parts := make([]string, len(tokens))
	for i, tok := range tokens {
		parts[i] = quote(tok)
	}
	return strings.Join(parts, " ")
}

func quote(tok string) string {
	if tok == "" {
		return `""`
	}
	if !strings.ContainsFunc(tok, needsQuoting) {
		return tok
	}

	var b strings.Builder
	b.WriteByte('"')
	// Byte-wise so invalid UTF-8 passes through untouched
	for i := 0; i < len(tok); i++ {
		if c := tok[i]; c == '"' || c == '\\' {
			b.WriteByte('\\')
		}
		b.WriteByte(tok[i])
	}
	b.WriteByte('"')
	return b.String()
}

func needsQuoting(ch rune) bool {
	return unicode.IsSpace(ch) || ch == '"' || ch == '\'' || ch == '\\'
}
