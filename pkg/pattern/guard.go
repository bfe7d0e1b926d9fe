package pattern

import (
	"fmt"
	"slices"
	"strings"
)

// Guard vetoes an otherwise successful structural match. It runs against
// the environment built by that match.
type Guard interface {
	Check(env Env) (bool, error)
}

// GuardFunc adapts a function to the Guard interface
type GuardFunc func(env Env) (bool, error)

// Check calls f(env)
func (f GuardFunc) Check(env Env) (bool, error) {
	return f(env)
}

func describe(g Guard) string {
	if s, ok := g.(fmt.Stringer); ok {
		return s.String()
	}
	return "<func>"
}

type hasAny struct {
	name   string
	values []string
}

// HasAny holds when any token bound to name equals any of values. The
// tokens may appear anywhere in a rest capture.
func HasAny(name string, values ...string) Guard {
	return hasAny{name: name, values: slices.Clone(values)}
}

func (g hasAny) Check(env Env) (bool, error) {
	toks, err := env.Tokens(g.name)
	if err != nil {
		return false, err
	}
	for _, tok := range toks {
		if slices.Contains(g.values, tok) {
			return true, nil
		}
	}
	return false, nil
}

func (g hasAny) String() string {
	return fmt.Sprintf("has-any(%s, %s)", g.name, strings.Join(g.values, " "))
}

type hasLeading struct {
	name   string
	values []string
}

// HasLeading holds when one of values appears in the leading run of
// flag-like tokens (tokens starting with "-") bound to name. A flag after
// the first positional token does not count.
func HasLeading(name string, values ...string) Guard {
	return hasLeading{name: name, values: slices.Clone(values)}
}

func (g hasLeading) Check(env Env) (bool, error) {
	toks, err := env.Tokens(g.name)
	if err != nil {
		return false, err
	}
	for _, tok := range toks {
		if !strings.HasPrefix(tok, "-") {
			return false, nil
		}
		if slices.Contains(g.values, tok) {
			return true, nil
		}
	}
	return false, nil
}

func (g hasLeading) String() string {
	return fmt.Sprintf("has-leading(%s, %s)", g.name, strings.Join(g.values, " "))
}

type oneOf struct {
	name   string
	values []string
	negate bool
}

// OneOf holds when the single token bound to name is one of values
func OneOf(name string, values ...string) Guard {
	return oneOf{name: name, values: slices.Clone(values)}
}

// NoneOf holds when the single token bound to name is none of values
func NoneOf(name string, values ...string) Guard {
	return oneOf{name: name, values: slices.Clone(values), negate: true}
}

func (g oneOf) Check(env Env) (bool, error) {
	tok, err := env.Token(g.name)
	if err != nil {
		return false, err
	}
	return slices.Contains(g.values, tok) != g.negate, nil
}

func (g oneOf) String() string {
	kind := "one-of"
	if g.negate {
		kind = "none-of"
	}
	return fmt.Sprintf("%s(%s, %s)", kind, g.name, strings.Join(g.values, " "))
}

type not struct{ g Guard }

// Not inverts a guard. Errors are passed through.
func Not(g Guard) Guard {
	return not{g: g}
}

func (n not) Check(env Env) (bool, error) {
	ok, err := n.g.Check(env)
	if err != nil {
		return false, err
	}
	return !ok, nil
}

func (n not) String() string {
	return "not(" + describe(n.g) + ")"
}

type combined struct {
	guards []Guard
	all    bool
}

// All holds when every guard holds, stopping at the first that does not
func All(guards ...Guard) Guard {
	return combined{guards: slices.Clone(guards), all: true}
}

// Any holds when at least one guard holds, stopping at the first that does
func Any(guards ...Guard) Guard {
	return combined{guards: slices.Clone(guards)}
}

func (c combined) Check(env Env) (bool, error) {
	for _, g := range c.guards {
		ok, err := g.Check(env)
		if err != nil {
			return false, err
		}
		if ok != c.all {
			return ok, nil
		}
	}
	return c.all, nil
}

func (c combined) String() string {
	parts := make([]string, len(c.guards))
	for i, g := range c.guards {
		parts[i] = describe(g)
	}
	op := "any"
	if c.all {
		op = "all"
	}
	return op + "(" + strings.Join(parts, ", ") + ")"
}
