package rules_test

import (
	"github.com/arthur-debert/cmdmatch/pkg/pattern"
	"github.com/arthur-debert/cmdmatch/pkg/rules"
)

func quitTable(force, quit, unknown rules.Handler) *rules.Table {
	quitHead := pattern.Alt("quit", "exit", "bye")
	rs := []rules.Rule{
		{
			Name: "force-quit",
			Pattern: pattern.New(quitHead, pattern.Rest("rest")).
				When(pattern.HasAny("rest", "--force", "-f")),
			Handler: force,
		},
		{Name: "quit", Pattern: pattern.New(quitHead, pattern.Rest("rest")), Handler: quit},
	}
	if unknown != nil {
		rs = append(rs, rules.Rule{Name: "unknown", Pattern: pattern.MustParse("_ *words"), Handler: unknown})
	}
	return rules.MustTable(rs...)
}
