// Package ui implements the interactive settings form for pyflags.
package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme holds the color scheme for the form.
type Theme struct {
	Primary lipgloss.Color
	Accent  lipgloss.Color
	Muted   lipgloss.Color
	Border  lipgloss.Color
	Danger  lipgloss.Color
}

// LightTheme returns the palette for light terminals.
func LightTheme() Theme {
	return Theme{
		Primary: lipgloss.Color("#101F38"),
		Accent:  lipgloss.Color("#2E7D32"),
		Muted:   lipgloss.Color("#8a8f98"),
		Border:  lipgloss.Color("#dce0e5"),
		Danger:  lipgloss.Color("#e53935"),
	}
}

// DarkTheme returns the palette for dark terminals.
func DarkTheme() Theme {
	return Theme{
		Primary: lipgloss.Color("#f2f2f2"),
		Accent:  lipgloss.Color("#8BC34A"),
		Muted:   lipgloss.Color("#6b7280"),
		Border:  lipgloss.Color("#2a3850"),
		Danger:  lipgloss.Color("#e53935"),
	}
}

// ThemeFor maps a theme preference (auto, light, dark) to a Theme. "auto"
// probes the terminal background.
func ThemeFor(pref string) Theme {
	switch pref {
	case "light":
		return LightTheme()
	case "dark":
		return DarkTheme()
	default:
		if lipgloss.HasDarkBackground() {
			return DarkTheme()
		}
		return LightTheme()
	}
}

// Styles are the rendered lipgloss styles used by the form view.
type Styles struct {
	Title        lipgloss.Style
	Cursor       lipgloss.Style
	Label        lipgloss.Style
	LabelFocused lipgloss.Style
	Value        lipgloss.Style
	ValueDefault lipgloss.Style
	Dirty        lipgloss.Style
	Preview      lipgloss.Style
	Status       lipgloss.Style
	Error        lipgloss.Style
	Help         lipgloss.Style
}

// NewStyles builds Styles from a theme.
func NewStyles(theme Theme) Styles {
	return Styles{
		Title: lipgloss.NewStyle().Bold(true).Foreground(theme.Primary).
			BorderStyle(lipgloss.NormalBorder()).BorderBottom(true).BorderForeground(theme.Border),
		Cursor:       lipgloss.NewStyle().Foreground(theme.Accent).Bold(true),
		Label:        lipgloss.NewStyle().Foreground(theme.Primary),
		LabelFocused: lipgloss.NewStyle().Foreground(theme.Accent).Bold(true),
		Value:        lipgloss.NewStyle().Foreground(theme.Primary),
		ValueDefault: lipgloss.NewStyle().Foreground(theme.Muted).Italic(true),
		Dirty:        lipgloss.NewStyle().Foreground(theme.Accent),
		Preview:      lipgloss.NewStyle().Foreground(theme.Muted),
		Status:       lipgloss.NewStyle().Foreground(theme.Accent),
		Error:        lipgloss.NewStyle().Foreground(theme.Danger),
		Help:         lipgloss.NewStyle().Foreground(theme.Muted),
	}
}

// DefaultStyles returns styles for the auto-detected theme.
func DefaultStyles() Styles {
	return NewStyles(ThemeFor("auto"))
}
