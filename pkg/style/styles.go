package style

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	RuleStyle    = lipgloss.NewStyle().Foreground(KeywordColor).Bold(true)
	PatternStyle = lipgloss.NewStyle().Foreground(BindingColor)
	GuardStyle   = lipgloss.NewStyle().Foreground(GuardColor).Italic(true)
	PathStyle    = lipgloss.NewStyle().Foreground(PathColor).Italic(true)
	PromptStyle  = lipgloss.NewStyle().Foreground(PromptColor).Bold(true)
	WarningStyle = lipgloss.NewStyle().Foreground(WarningColor).Bold(true)
)

// WarningIndicator prefixes warnings on terminals
var WarningIndicator = WarningStyle.Render("!")
