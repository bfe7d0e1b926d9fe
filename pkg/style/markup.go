package style

import (
	"regexp"

	"github.com/charmbracelet/lipgloss"
)

// MarkupParser handles parsing and rendering of markup tags such as
// "[path]%s[/path]". Markup belongs in message formats only: Printer
// applies it before the arguments are substituted, so text typed by the
// user is never taken for a tag.
type MarkupParser struct {
	styles   map[string]lipgloss.Style
	patterns map[string]*regexp.Regexp
}

// NewMarkupParser creates a new markup parser with default styles
func NewMarkupParser() *MarkupParser {
	p := &MarkupParser{
		styles:   map[string]lipgloss.Style{},
		patterns: map[string]*regexp.Regexp{},
	}
	for tag, style := range map[string]lipgloss.Style{
		"rule":    RuleStyle,
		"pattern": PatternStyle,
		"guard":   GuardStyle,
		"path":    PathStyle,
	} {
		p.AddStyle(tag, style)
	}
	return p
}

// Render processes markup text and returns styled output
func (p *MarkupParser) Render(text string) string {
	return p.rewrite(text, func(tag, content string) string {
		return p.styles[tag].Render(content)
	})
}

// Strip removes known markup tags and keeps their content
func (p *MarkupParser) Strip(text string) string {
	return p.rewrite(text, func(_, content string) string {
		return content
	})
}

// Tags are processed repeatedly so nested tags resolve from the inside out
func (p *MarkupParser) rewrite(text string, apply func(tag, content string) string) string {
	result := text
	for {
		before := result
		for tag, pattern := range p.patterns {
			result = pattern.ReplaceAllStringFunc(result, func(match string) string {
				submatch := pattern.FindStringSubmatch(match)
				if len(submatch) != 2 {
					return match
				}
				return apply(tag, submatch[1])
			})
		}
		if result == before {
			return result
		}
	}
}

// AddStyle allows adding custom styles
func (p *MarkupParser) AddStyle(tag string, style lipgloss.Style) {
	p.styles[tag] = style
	p.patterns[tag] = regexp.MustCompile(`\[` + regexp.QuoteMeta(tag) + `\](.*?)\[/` + regexp.QuoteMeta(tag) + `\]`)
}

// Global parser instance
var defaultParser = NewMarkupParser()

// Render is a convenience function using the default parser
func Render(text string) string {
	return defaultParser.Render(text)
}

// Strip is a convenience function using the default parser
func Strip(text string) string {
	return defaultParser.Strip(text)
}
