package pattern

import (
	"fmt"
	"slices"
	"strings"
)

// Element matches a single token. The set of implementations is closed:
// Literal, Alternation, Binding and Wildcard.
type Element interface {
	fmt.Stringer
	isElement()
}

// Literal matches a token equal to its value
type Literal string

// Alternation matches a token that is one of Values. When Bind is set the
// matched token is bound to that name.
type Alternation struct {
	Values []string
	Bind   string
}

// Binding matches any token and binds it to the given name
type Binding string

// Wildcard matches any token without binding it
type Wildcard struct{}

func (Literal) isElement()     {}
func (Alternation) isElement() {}
func (Binding) isElement()     {}
func (Wildcard) isElement()    {}

// Alt builds an unbound alternation of literal values
func Alt(values ...string) Alternation {
	return Alternation{Values: slices.Clone(values)}
}

// As returns a copy of the alternation that binds the matched token to name
func (a Alternation) As(name string) Alternation {
	return Alternation{Values: slices.Clone(a.Values), Bind: name}
}

func (l Literal) String() string { return string(l) }

func (a Alternation) String() string {
	alts := strings.Join(a.Values, "|")
	if a.Bind != "" {
		return "$" + a.Bind + ":" + alts
	}
	return alts
}

func (b Binding) String() string { return "$" + string(b) }

func (Wildcard) String() string { return "_" }

// matchElement tests the token at pos, recording any binding in env
func matchElement(e Element, tok string, pos int, env Env) bool {
	switch m := e.(type) {
	case Literal:
		return tok == string(m)
	case Alternation:
		if !slices.Contains(m.Values, tok) {
			return false
		}
		if m.Bind != "" {
			env.bindToken(m.Bind, tok, pos)
		}
		return true
	case Binding:
		env.bindToken(string(m), tok, pos)
		return true
	case Wildcard:
		return true
	default:
		panic(fmt.Sprintf("pattern: unsupported element %T", e))
	}
}

// boundName returns the name an element binds, if any
func boundName(e Element) string {
	switch m := e.(type) {
	case Alternation:
		return m.Bind
	case Binding:
		return string(m)
	default:
		return ""
	}
}
