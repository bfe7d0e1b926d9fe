package commands

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/cmdmatch/pkg/pattern"
	"github.com/arthur-debert/cmdmatch/pkg/rules"
)

func (s *Set) help(pattern.Env) (rules.Result, error) {
	s.out.Markdown(HelpMarkdown(s.bound()))
	return rules.Continue, nil
}

// HelpMarkdown describes the rules of table in precedence order
func HelpMarkdown(table *rules.Table) string {
	var b strings.Builder
	b.WriteString("# Commands\n\n")
	if table == nil || table.Len() == 0 {
		b.WriteString("No commands are defined.\n")
		return b.String()
	}

	b.WriteString("Rules are tried in order; the first one that matches runs.\n\n")
	for _, rule := range table.Rules() {
		fmt.Fprintf(&b, "- **%s**: `%s`\n", rule.Name, rule.Pattern.String())
	}
	return b.String()
}
