package style

import (
	"github.com/pterm/pterm"
)

// RuleKind classifies a rule for listings
type RuleKind string

const (
	RuleKindPlain    RuleKind = "plain"     // Unguarded rule with a literal head
	RuleKindGuarded  RuleKind = "guarded"   // Rule with a guard
	RuleKindCatchAll RuleKind = "catch-all" // Matches any non-empty line
	RuleKindShadowed RuleKind = "shadowed"  // Never reached, see Table.Lint
)

// RuleKindStyle returns the pterm style used to badge a rule kind
func RuleKindStyle(kind RuleKind) *pterm.Style {
	switch kind {
	case RuleKindGuarded:
		return pterm.NewStyle(pterm.FgYellow)
	case RuleKindCatchAll:
		return pterm.NewStyle(pterm.FgCyan)
	case RuleKindShadowed:
		return pterm.NewStyle(pterm.BgRed, pterm.FgWhite, pterm.Bold)
	default:
		return pterm.NewStyle(pterm.FgGray)
	}
}

// Badge renders kind for the printer's format
func (p *Printer) Badge(kind RuleKind) string {
	if p.format == FormatTerminal {
		return RuleKindStyle(kind).Sprint(string(kind))
	}
	return string(kind)
}
