package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/retrowix/flow-state/internal/core"
)

// colorStyles maps core.Color to lipgloss styles using ANSI 256 codes.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:    lipgloss.NewStyle(),
	core.ColorRed:        lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	core.ColorGreen:      lipgloss.NewStyle().Foreground(lipgloss.Color("40")),
	core.ColorBlue:       lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
	core.ColorAmber:      lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
	core.ColorPurple:     lipgloss.NewStyle().Foreground(lipgloss.Color("129")),
	core.ColorDeepOrange: lipgloss.NewStyle().Foreground(lipgloss.Color("202")),
	core.ColorCyan:       lipgloss.NewStyle().Foreground(lipgloss.Color("44")),
	core.ColorWhite:      lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorGray:       lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorDimGray:    lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape
// sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
