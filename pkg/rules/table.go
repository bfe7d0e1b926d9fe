package rules

import (
	"slices"

	"github.com/arthur-debert/cmdmatch/pkg/errors"
	"github.com/arthur-debert/cmdmatch/pkg/pattern"
)

// Table is an ordered, read-only list of rules. It is safe for concurrent
// use once built.
type Table struct {
	rules []Rule
}

// NewTable builds a table from rules in precedence order. Every rule needs
// a unique name, a valid pattern and a handler.
func NewTable(rules ...Rule) (*Table, error) {
	seen := make(map[string]int, len(rules))
	for i, rule := range rules {
		if rule.Name == "" {
			return nil, errors.Newf(errors.ErrRuleInvalid, "rule %d has an empty name", i).
				WithDetail("index", i)
		}
		if prev, dup := seen[rule.Name]; dup {
			return nil, errors.Newf(errors.ErrRuleInvalid, "rule name %q is used by rules %d and %d", rule.Name, prev, i).
				WithDetail("rule", rule.Name)
		}
		seen[rule.Name] = i

		if rule.Handler == nil {
			return nil, errors.Newf(errors.ErrRuleInvalid, "rule %q has no handler", rule.Name).
				WithDetail("rule", rule.Name)
		}
		if err := rule.Pattern.Validate(); err != nil {
			return nil, errors.Wrapf(err, errors.ErrRuleInvalid, "rule %q has an invalid pattern", rule.Name).
				WithDetail("rule", rule.Name)
		}
	}

	return &Table{rules: slices.Clone(rules)}, nil
}

// MustTable is like NewTable but panics on error
func MustTable(rules ...Rule) *Table {
	t, err := NewTable(rules...)
	if err != nil {
		panic(err)
	}
	return t
}

// Len returns the number of rules
func (t *Table) Len() int {
	return len(t.rules)
}

// Rules returns a copy of the rules in precedence order
func (t *Table) Rules() []Rule {
	return slices.Clone(t.rules)
}

// Lookup returns the rule with the given name
func (t *Table) Lookup(name string) (Rule, bool) {
	for _, rule := range t.rules {
		if rule.Name == name {
			return rule, true
		}
	}
	return Rule{}, false
}

// Keywords returns the literal command words the rule heads recognize, in
// table order without duplicates
func (t *Table) Keywords() []string {
	var words []string
	add := func(w string) {
		if !slices.Contains(words, w) {
			words = append(words, w)
		}
	}
	for _, rule := range t.rules {
		switch head := rule.Pattern.Head.(type) {
		case pattern.Literal:
			add(string(head))
		case pattern.Alternation:
			for _, v := range head.Values {
				add(v)
			}
		}
	}
	return words
}
