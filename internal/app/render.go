package app

import (
	"fmt"

	"github.com/retrowix/flow-state/internal/board"
	"github.com/retrowix/flow-state/internal/core"
)

// Render draws the current scene into the screen buffer.
// An unrecognized scene value draws nothing; Update resets it to the menu
// on the next input.
func Render(s State, dst *core.Screen) {
	dst.Clear()

	switch s.Scene {
	case SceneMenu:
		renderMenu(s, dst)
	case SceneConfig:
		renderConfig(s, dst)
	case SceneRun:
		renderRun(s, dst)
	}
}

func renderMenu(s State, dst *core.Screen) {
	dst.DrawTextCentered(2, "F L O W", core.ColorCyan)
	dst.DrawTextCentered(4, "Use Up/Down or mouse; Enter/Click to select", core.ColorGray)
	dst.DrawTextCentered(5, fmt.Sprintf("Pairs: %d (change in Config)", s.NumPairs), core.ColorDimGray)

	for i, r := range MenuButtonRects(s.Width, s.Height) {
		drawButton(dst, r, MenuLabels[i], s.Hover == i, false)
	}

	dst.DrawTextCentered(s.Height-2, "Q/Esc: Quit", core.ColorDimGray)
}

func renderConfig(s State, dst *core.Screen) {
	dst.DrawTextCentered(2, "C O N F I G", core.ColorCyan)
	dst.DrawTextCentered(4, "Choose number of color pairs for the 5x5 grid:", core.ColorWhite)
	dst.DrawTextCentered(6, "Press 3/4/5 or click a button. Esc to return.", core.ColorGray)

	for i, r := range ConfigButtonRects(s.Width, s.Height) {
		label := fmt.Sprintf("%d pairs", ConfigChoices[i])
		drawButton(dst, r, label, s.Hover == i, ConfigChoices[i] == s.NumPairs)
	}
}

func renderRun(s State, dst *core.Screen) {
	header := fmt.Sprintf("5x5 | %d pairs | Esc to menu", s.NumPairs)
	dst.DrawTextCentered(0, header, core.ColorGray)

	gl := RunGridLayout(s.Width, s.Height, board.GridN)
	if gl.TooSmall {
		renderOverlay(dst, "Terminal too small", "Resize to continue")
		return
	}

	drawGridLines(dst, gl)

	for idx, p := range s.Endpoints {
		color := core.PairColor(idx)
		for _, c := range [2]board.Cell{p.A, p.B} {
			x, y := gl.CellCenter(c)
			dst.SetWithColor(x, y, '●', color)
		}
	}
}

// drawGridLines draws the n×n grid frame with box-drawing characters.
func drawGridLines(dst *core.Screen, gl GridLayout) {
	stepX := gl.CellW + 1
	stepY := gl.CellH + 1
	gridW := gl.N*stepX + 1
	gridH := gl.N*stepY + 1

	for i := 0; i <= gl.N; i++ {
		dst.DrawHLine(gl.X0, gl.Y0+i*stepY, gridW, '─', core.ColorWhite)
		dst.DrawVLine(gl.X0+i*stepX, gl.Y0, gridH, '│', core.ColorWhite)
	}

	// Intersections
	for i := 0; i <= gl.N; i++ {
		for j := 0; j <= gl.N; j++ {
			x := gl.X0 + j*stepX
			y := gl.Y0 + i*stepY
			dst.SetWithColor(x, y, crossRune(i, j, gl.N), core.ColorWhite)
		}
	}
}

// crossRune picks the box-drawing rune for a grid intersection.
func crossRune(row, col, n int) rune {
	switch {
	case row == 0 && col == 0:
		return '┌'
	case row == 0 && col == n:
		return '┐'
	case row == n && col == 0:
		return '└'
	case row == n && col == n:
		return '┘'
	case row == 0:
		return '┬'
	case row == n:
		return '┴'
	case col == 0:
		return '├'
	case col == n:
		return '┤'
	default:
		return '┼'
	}
}

// drawButton draws a boxed control with a centered label.
// hover brightens the whole control; marked outlines the active choice.
func drawButton(dst *core.Screen, r core.Rect, label string, hover, marked bool) {
	boxColor := core.ColorGray
	labelColor := core.ColorGray
	if marked {
		boxColor = core.ColorCyan
		labelColor = core.ColorWhite
	}
	if hover {
		boxColor = core.ColorWhite
		labelColor = core.ColorWhite
	}

	dst.DrawBox(r, boxColor)

	cx, cy := r.Center()
	dst.DrawTextWithColor(cx-len(label)/2, cy, label, labelColor)
}

// renderOverlay draws a centered two-line message in a box.
func renderOverlay(dst *core.Screen, title, subtitle string) {
	w := core.Max(len(title), len(subtitle)) + 6
	h := 5
	r := core.NewRect((dst.Width()-w)/2, (dst.Height()-h)/2, w, h)

	dst.FillRect(r, ' ', core.ColorDefault)
	dst.DrawBox(r, core.ColorWhite)
	dst.DrawTextCentered(r.Y+1, title, core.ColorAmber)
	dst.DrawTextCentered(r.Y+3, subtitle, core.ColorWhite)
}
