package pattern

import (
	"fmt"
	"slices"
	"strings"

	"github.com/arthur-debert/cmdmatch/pkg/errors"
)

// Tail describes the tokens after the head: a fixed run of elements,
// optionally followed by a rest capture
type Tail struct {
	fixed   []Element
	rest    string
	hasRest bool
}

// Fixed requires exactly len(elems) remaining tokens, matched in order
func Fixed(elems ...Element) Tail {
	return Tail{fixed: slices.Clone(elems)}
}

// Rest binds name to every remaining token, including none
func Rest(name string) Tail {
	return Tail{rest: name, hasRest: true}
}

// FixedRest requires at least len(elems) remaining tokens: the first ones
// are matched against elems and the remainder is bound to name
func FixedRest(name string, elems ...Element) Tail {
	return Tail{fixed: slices.Clone(elems), rest: name, hasRest: true}
}

// Elements returns the fixed elements of the tail
func (t Tail) Elements() []Element {
	return slices.Clone(t.fixed)
}

// RestName returns the rest capture name and whether the tail has one
func (t Tail) RestName() (string, bool) {
	return t.rest, t.hasRest
}

// Arity returns the number of fixed elements
func (t Tail) Arity() int {
	return len(t.fixed)
}

// accepts reports whether n remaining tokens fit the tail's shape
func (t Tail) accepts(n int) bool {
	if t.hasRest {
		return n >= len(t.fixed)
	}
	return n == len(t.fixed)
}

func (t Tail) String() string {
	parts := make([]string, 0, len(t.fixed)+1)
	for _, e := range t.fixed {
		parts = append(parts, e.String())
	}
	if t.hasRest {
		parts = append(parts, "*"+t.rest)
	}
	return strings.Join(parts, " ")
}

// Pattern is one matchable command shape
type Pattern struct {
	Head  Element
	Tail  Tail
	Guard Guard
}

// New builds an unguarded pattern
func New(head Element, tail Tail) Pattern {
	return Pattern{Head: head, Tail: tail}
}

// When returns a copy of the pattern guarded by g
func (p Pattern) When(g Guard) Pattern {
	p.Guard = g
	return p
}

// Result is the outcome of matching one pattern against a token sequence
type Result int

const (
	// NoMatch means the token sequence does not have the pattern's shape
	NoMatch Result = iota
	// GuardRejected means the shape matched but the guard returned false
	GuardRejected
	// Matched means both the shape and the guard matched
	Matched
)

func (r Result) String() string {
	switch r {
	case NoMatch:
		return "no-match"
	case GuardRejected:
		return "guard-rejected"
	case Matched:
		return "matched"
	default:
		return "unknown"
	}
}

// Match tests tokens against the pattern. The returned Env is only non-empty
// when the result is Matched. A guard that fails or panics yields an
// ErrGuardEvaluation error.
func (p Pattern) Match(tokens []string) (Env, Result, error) {
	if len(tokens) == 0 || p.Head == nil {
		return Env{}, NoMatch, nil
	}

	env := newEnv()
	if !matchElement(p.Head, tokens[0], 0, env) {
		return Env{}, NoMatch, nil
	}

	remainder := tokens[1:]
	if !p.Tail.accepts(len(remainder)) {
		return Env{}, NoMatch, nil
	}
	for i, e := range p.Tail.fixed {
		if !matchElement(e, remainder[i], i+1, env) {
			return Env{}, NoMatch, nil
		}
	}
	if p.Tail.hasRest {
		env.bindRest(p.Tail.rest, remainder[len(p.Tail.fixed):], 1+len(p.Tail.fixed))
	}

	if p.Guard == nil {
		return env, Matched, nil
	}

	ok, err := evaluate(p.Guard, env)
	if err != nil {
		return Env{}, NoMatch, err
	}
	if !ok {
		return Env{}, GuardRejected, nil
	}
	return env, Matched, nil
}

// evaluate runs a guard, turning errors and panics into ErrGuardEvaluation
func evaluate(g Guard, env Env) (ok bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			ok = false
			err = errors.Newf(errors.ErrGuardEvaluation, "guard %s panicked: %v", describe(g), r).
				WithDetail("guard", describe(g))
		}
	}()

	ok, err = g.Check(env)
	if err != nil {
		if errors.GetErrorCode(err) == errors.ErrGuardEvaluation {
			return false, err
		}
		return false, errors.Wrapf(err, errors.ErrGuardEvaluation, "guard %s failed", describe(g)).
			WithDetail("guard", describe(g))
	}
	return ok, nil
}

// Names returns every name the pattern binds, in match order
func (p Pattern) Names() []string {
	var names []string
	if p.Head != nil {
		if n := boundName(p.Head); n != "" {
			names = append(names, n)
		}
	}
	for _, e := range p.Tail.fixed {
		if n := boundName(e); n != "" {
			names = append(names, n)
		}
	}
	if p.Tail.hasRest {
		names = append(names, p.Tail.rest)
	}
	return names
}

// Validate checks the construction invariants: a head is present, no name
// is empty, and no name is bound twice
func (p Pattern) Validate() error {
	if p.Head == nil {
		return errors.New(errors.ErrPatternInvalid, "pattern has no head element")
	}

	elems := append([]Element{p.Head}, p.Tail.fixed...)
	for i, e := range elems {
		switch m := e.(type) {
		case nil:
			return errors.Newf(errors.ErrPatternInvalid, "element %d is nil", i)
		case Alternation:
			if len(m.Values) == 0 {
				return errors.Newf(errors.ErrPatternInvalid, "element %d is an empty alternation", i)
			}
		case Binding:
			if m == "" {
				return errors.Newf(errors.ErrPatternInvalid, "element %d binds an empty name", i)
			}
		}
	}
	if p.Tail.hasRest && p.Tail.rest == "" {
		return errors.New(errors.ErrPatternInvalid, "rest capture has an empty name")
	}

	seen := make(map[string]bool)
	for _, name := range p.Names() {
		if seen[name] {
			return errors.Newf(errors.ErrPatternInvalid, "name %q is bound more than once", name).
				WithDetail("name", name)
		}
		seen[name] = true
	}
	return nil
}

// IsCatchAll reports whether the pattern matches every non-empty token
// sequence: a wildcard or binding head, a bare rest tail and no guard
func (p Pattern) IsCatchAll() bool {
	switch p.Head.(type) {
	case Wildcard, Binding:
	default:
		return false
	}
	return p.Tail.hasRest && len(p.Tail.fixed) == 0 && p.Guard == nil
}

// String renders the pattern in the description language, followed by the
// guard description when there is one
func (p Pattern) String() string {
	var b strings.Builder
	if p.Head != nil {
		b.WriteString(p.Head.String())
	}
	if tail := p.Tail.String(); tail != "" {
		b.WriteString(" ")
		b.WriteString(tail)
	}
	if p.Guard != nil {
		fmt.Fprintf(&b, " if %s", describe(p.Guard))
	}
	return b.String()
}

// GuardString describes the guard alone, or returns "" for an unguarded
// pattern
func (p Pattern) GuardString() string {
	if p.Guard == nil {
		return ""
	}
	return describe(p.Guard)
}
