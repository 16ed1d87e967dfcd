package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme contains the configurable visual styles for the TUI chrome
// outside the screen-buffer scenes (history viewer, overlays).
type Theme struct {
	Title       lipgloss.Style
	Subtitle    lipgloss.Style
	TableHeader lipgloss.Style
	Selected    lipgloss.Style
	Muted       lipgloss.Style
}

// DefaultTheme returns the default visual theme.
func DefaultTheme() Theme {
	return Theme{
		Title:       lipgloss.NewStyle().Foreground(lipgloss.Color("44")).Bold(true),
		Subtitle:    lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		TableHeader: lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Bold(true),
		Selected:    lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")),
		Muted:       lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

// centerText centers text within the given width.
func centerText(text string, width int) string {
	if lipgloss.Width(text) >= width {
		return text
	}
	padding := (width - lipgloss.Width(text)) / 2
	return strings.Repeat(" ", padding) + text
}
