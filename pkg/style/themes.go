package style

import (
	"github.com/charmbracelet/lipgloss"
)

// Palette for rule listings and handler messages. AdaptiveColor picks the
// light or dark variant from the terminal background.
var (
	// Rule names and literal keywords
	KeywordColor = lipgloss.AdaptiveColor{Light: "#0369A1", Dark: "#38BDF8"}

	// Pattern descriptions, bindings included
	BindingColor = lipgloss.AdaptiveColor{Light: "#7C3AED", Dark: "#A78BFA"}

	// Guard descriptions
	GuardColor = lipgloss.AdaptiveColor{Light: "#B45309", Dark: "#FBBF24"}

	// File and folder arguments echoed back by handlers
	PathColor = lipgloss.AdaptiveColor{Light: "#4B5563", Dark: "#9CA3AF"}

	PromptColor  = lipgloss.AdaptiveColor{Light: "#047857", Dark: "#34D399"}
	WarningColor = lipgloss.AdaptiveColor{Light: "#B45309", Dark: "#FFD54F"}
)
