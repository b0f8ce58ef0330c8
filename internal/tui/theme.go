package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/typegrow/internal/model"
)

// Styles bundles the lipgloss styles for one theme.
type Styles struct {
	Correct     lipgloss.Style
	Incorrect   lipgloss.Style
	Pending     lipgloss.Style
	CurrentWord lipgloss.Style
	Cursor      lipgloss.Style
	Footer      lipgloss.Style
	Title       lipgloss.Style
	Accent      lipgloss.Style
	Card        lipgloss.Style
}

func darkStyles() Styles {
	s := Styles{
		Correct:     lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")),
		Incorrect:   lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F")),
		Pending:     lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C")),
		CurrentWord: lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")),
		Footer:      lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E")),
		Title:       lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true),
		Accent:      lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")),
		Card: lipgloss.NewStyle().
			Padding(1, 2).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#4A4A4A")),
	}
	s.Cursor = s.Pending.Underline(true)
	return s
}

func lightStyles() Styles {
	s := Styles{
		Correct:     lipgloss.NewStyle().Foreground(lipgloss.Color("#1F1F1F")),
		Incorrect:   lipgloss.NewStyle().Foreground(lipgloss.Color("#C4122F")),
		Pending:     lipgloss.NewStyle().Foreground(lipgloss.Color("#9A9A9A")),
		CurrentWord: lipgloss.NewStyle().Foreground(lipgloss.Color("#8A6410")),
		Footer:      lipgloss.NewStyle().Foreground(lipgloss.Color("#7A7A7A")),
		Title:       lipgloss.NewStyle().Foreground(lipgloss.Color("#1F1F1F")).Bold(true),
		Accent:      lipgloss.NewStyle().Foreground(lipgloss.Color("#8A6410")),
		Card: lipgloss.NewStyle().
			Padding(1, 2).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#B5B5B5")),
	}
	s.Cursor = s.Pending.Underline(true)
	return s
}

// StylesFor returns the style set for a theme.
func StylesFor(theme model.Theme) Styles {
	if theme == model.ThemeLight {
		return lightStyles()
	}
	return darkStyles()
}
