package rules

import (
	"fmt"

	"github.com/arthur-debert/cmdmatch/pkg/pattern"
)

// FindingKind classifies a table lint finding
type FindingKind string

const (
	// FindingShadowed marks a rule that an earlier rule always preempts
	FindingShadowed FindingKind = "shadowed"
	// FindingNoCatchAll marks a table whose last rule is not a catch-all
	FindingNoCatchAll FindingKind = "no-catch-all"
)

// Finding is a precedence problem detected by Lint
type Finding struct {
	Kind    FindingKind
	Rule    string
	Index   int
	Message string
}

func (f Finding) String() string {
	return fmt.Sprintf("%s: %s", f.Kind, f.Message)
}

// Lint reports ordering problems without rejecting the table: rules that
// can never be selected because an earlier unguarded rule has the same
// shape or is a catch-all, and a missing trailing catch-all.
func (t *Table) Lint() []Finding {
	var findings []Finding

	for j, later := range t.rules {
		for i := 0; i < j; i++ {
			earlier := t.rules[i]
			if earlier.Pattern.Guard != nil {
				continue
			}
			if earlier.Pattern.IsCatchAll() || sameShape(earlier.Pattern, later.Pattern) {
				msg := fmt.Sprintf("rule %q (#%d) is never reached: rule %q (#%d) matches first",
					later.Name, j, earlier.Name, i)
				findings = append(findings, Finding{
					Kind:    FindingShadowed,
					Rule:    later.Name,
					Index:   j,
					Message: msg,
				})
				break
			}
		}
	}

	if n := len(t.rules); n == 0 || !t.rules[n-1].Pattern.IsCatchAll() {
		f := Finding{Kind: FindingNoCatchAll, Index: n - 1, Message: "table has no trailing catch-all rule"}
		if n > 0 {
			f.Rule = t.rules[n-1].Name
		}
		findings = append(findings, f)
	}

	return findings
}

// sameShape compares the structural part of two patterns, ignoring guards
func sameShape(a, b pattern.Pattern) bool {
	a.Guard, b.Guard = nil, nil
	return a.String() == b.String()
}
