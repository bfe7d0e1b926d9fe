package pattern

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/arthur-debert/cmdmatch/pkg/errors"
)

// Env maps binding names to the tokens captured by a successful match.
// A name holds either a single token (element bindings) or a sequence
// (rest captures). Env values handed out by a match are never mutated.
type Env struct {
	bound map[string]value
}

type value struct {
	token  string
	tokens []string
	seq    bool
	pos    int // index of the first captured token in the input
}

func newEnv() Env {
	return Env{bound: make(map[string]value)}
}

func (e Env) bindToken(name, tok string, pos int) {
	e.bound[name] = value{token: tok, pos: pos}
}

func (e Env) bindRest(name string, toks []string, pos int) {
	e.bound[name] = value{tokens: slices.Clone(toks), seq: true, pos: pos}
}

// Len returns the number of bound names
func (e Env) Len() int {
	return len(e.bound)
}

// Has reports whether name is bound
func (e Env) Has(name string) bool {
	_, ok := e.bound[name]
	return ok
}

// Names returns the bound names in sorted order
func (e Env) Names() []string {
	names := make([]string, 0, len(e.bound))
	for name := range e.bound {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Captured returns every bound token in input order, with sequences
// flattened in place. Tokens matched by literals or wildcards are not
// included.
func (e Env) Captured() []string {
	names := e.Names()
	sort.SliceStable(names, func(i, j int) bool {
		return e.bound[names[i]].pos < e.bound[names[j]].pos
	})

	var out []string
	for _, name := range names {
		v := e.bound[name]
		if v.seq {
			out = append(out, v.tokens...)
		} else {
			out = append(out, v.token)
		}
	}
	return out
}

// Token returns the single token bound to name. It fails with ErrUnboundName
// when name is not bound and ErrInvalidInput when name holds a sequence.
func (e Env) Token(name string) (string, error) {
	v, ok := e.bound[name]
	if !ok {
		return "", unbound(name)
	}
	if v.seq {
		return "", errors.Newf(errors.ErrInvalidInput, "name %q is bound to a token sequence", name).
			WithDetail("name", name)
	}
	return v.token, nil
}

// Tokens returns the sequence bound to name. A single token binding is
// returned as a one element sequence.
func (e Env) Tokens(name string) ([]string, error) {
	v, ok := e.bound[name]
	if !ok {
		return nil, unbound(name)
	}
	if !v.seq {
		return []string{v.token}, nil
	}
	return slices.Clone(v.tokens), nil
}

// Get returns the bound value as a string or a []string
func (e Env) Get(name string) (interface{}, bool) {
	v, ok := e.bound[name]
	if !ok {
		return nil, false
	}
	if v.seq {
		return slices.Clone(v.tokens), true
	}
	return v.token, true
}

// Map returns a copy of the environment as plain values, handy for logging
// and templating
func (e Env) Map() map[string]interface{} {
	out := make(map[string]interface{}, len(e.bound))
	for name := range e.bound {
		out[name], _ = e.Get(name)
	}
	return out
}

func (e Env) String() string {
	parts := make([]string, 0, len(e.bound))
	for _, name := range e.Names() {
		v := e.bound[name]
		if v.seq {
			parts = append(parts, fmt.Sprintf("%s: %q", name, v.tokens))
		} else {
			parts = append(parts, fmt.Sprintf("%s: %q", name, v.token))
		}
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func unbound(name string) error {
	return errors.Newf(errors.ErrUnboundName, "name %q is not bound", name).
		WithDetail("name", name)
}
