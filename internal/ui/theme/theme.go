// Package theme maps the settings store's theme mode onto lipgloss
// palettes. "system" falls back to dark: a terminal has no reliable
// OS-theme signal.
package theme

import (
	"github.com/adilev/focusboard/internal/model"
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the color scheme for the UI
type Theme struct {
	Name string

	// Base colors
	Background lipgloss.Color
	Foreground lipgloss.Color
	Subtle     lipgloss.Color
	Highlight  lipgloss.Color
	Border     lipgloss.Color

	// Semantic colors
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Success   lipgloss.Color
	Warning   lipgloss.Color
	Error     lipgloss.Color
	Info      lipgloss.Color

	// Priority colors
	PriorityP0 lipgloss.Color
	PriorityP1 lipgloss.Color
	PriorityP2 lipgloss.Color
	PriorityP3 lipgloss.Color

	// Column colors
	StatusTodo       lipgloss.Color
	StatusInProgress lipgloss.Color
	StatusComplete   lipgloss.Color

	Pinned lipgloss.Color
}

// Dark is the default palette
var Dark = Theme{
	Name: "dark",

	Background: lipgloss.Color("#2E3440"),
	Foreground: lipgloss.Color("#ECEFF4"),
	Subtle:     lipgloss.Color("#4C566A"),
	Highlight:  lipgloss.Color("#3B4252"),
	Border:     lipgloss.Color("#4C566A"),

	Primary:   lipgloss.Color("#88C0D0"),
	Secondary: lipgloss.Color("#81A1C1"),
	Success:   lipgloss.Color("#A3BE8C"),
	Warning:   lipgloss.Color("#EBCB8B"),
	Error:     lipgloss.Color("#BF616A"),
	Info:      lipgloss.Color("#5E81AC"),

	PriorityP0: lipgloss.Color("#BF616A"),
	PriorityP1: lipgloss.Color("#D08770"),
	PriorityP2: lipgloss.Color("#EBCB8B"),
	PriorityP3: lipgloss.Color("#A3BE8C"),

	StatusTodo:       lipgloss.Color("#EBCB8B"),
	StatusInProgress: lipgloss.Color("#88C0D0"),
	StatusComplete:   lipgloss.Color("#A3BE8C"),

	Pinned: lipgloss.Color("#EBCB8B"),
}

// Light palette
var Light = Theme{
	Name: "light",

	Background: lipgloss.Color("#FAFAFA"),
	Foreground: lipgloss.Color("#2E3440"),
	Subtle:     lipgloss.Color("#9E9E9E"),
	Highlight:  lipgloss.Color("#E0E6ED"),
	Border:     lipgloss.Color("#B0BEC5"),

	Primary:   lipgloss.Color("#0B6E99"),
	Secondary: lipgloss.Color("#37474F"),
	Success:   lipgloss.Color("#2E7D32"),
	Warning:   lipgloss.Color("#B26A00"),
	Error:     lipgloss.Color("#C62828"),
	Info:      lipgloss.Color("#1565C0"),

	PriorityP0: lipgloss.Color("#C62828"),
	PriorityP1: lipgloss.Color("#D84315"),
	PriorityP2: lipgloss.Color("#B26A00"),
	PriorityP3: lipgloss.Color("#2E7D32"),

	StatusTodo:       lipgloss.Color("#B26A00"),
	StatusInProgress: lipgloss.Color("#0B6E99"),
	StatusComplete:   lipgloss.Color("#2E7D32"),

	Pinned: lipgloss.Color("#B26A00"),
}

// Current is the active theme, switched via SetMode
var Current = Dark

// SetMode selects the palette for the given settings theme mode
func SetMode(mode model.ThemeMode) {
	switch mode {
	case model.ThemeLight:
		Current = Light
	default:
		Current = Dark
	}
}

// ForPriority returns the color for a priority level
func ForPriority(p model.Priority) lipgloss.Color {
	switch p {
	case model.PriorityP0:
		return Current.PriorityP0
	case model.PriorityP1:
		return Current.PriorityP1
	case model.PriorityP3:
		return Current.PriorityP3
	default:
		return Current.PriorityP2
	}
}

// ForStatus returns the color for a board column
func ForStatus(s model.Status) lipgloss.Color {
	switch s {
	case model.StatusInProgress:
		return Current.StatusInProgress
	case model.StatusComplete:
		return Current.StatusComplete
	default:
		return Current.StatusTodo
	}
}
