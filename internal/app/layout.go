package app

import (
	"github.com/retrowix/flow-state/internal/board"
	"github.com/retrowix/flow-state/internal/core"
)

// Menu button dimensions in characters.
const (
	menuButtonW   = 26
	menuButtonH   = 3
	menuSpacing   = 1
	menuButtonsY  = 8 // first button row
	configButtonW = 10
	configButtonH = 3
	configGap     = 3
	configRowY    = 10
)

// MenuButtonRects returns the menu control rectangles in fixed order
// [Run, Config, Quit], centered horizontally.
func MenuButtonRects(w, h int) []core.Rect {
	x := (w - menuButtonW) / 2
	rects := make([]core.Rect, len(MenuLabels))
	for i := range rects {
		y := menuButtonsY + i*(menuButtonH+menuSpacing)
		rects[i] = core.NewRect(x, y, menuButtonW, menuButtonH)
	}
	return rects
}

// MenuHit returns the menu control index under (x, y), or -1.
func MenuHit(w, h, x, y int) int {
	for i, r := range MenuButtonRects(w, h) {
		if r.Contains(x, y) {
			return i
		}
	}
	return -1
}

// ConfigButtonRects returns the pair-count button rectangles in fixed
// order [3, 4, 5], laid out in one centered row.
func ConfigButtonRects(w, h int) []core.Rect {
	total := len(ConfigChoices)*configButtonW + (len(ConfigChoices)-1)*configGap
	x0 := (w - total) / 2
	rects := make([]core.Rect, len(ConfigChoices))
	for i := range rects {
		x := x0 + i*(configButtonW+configGap)
		rects[i] = core.NewRect(x, configRowY, configButtonW, configButtonH)
	}
	return rects
}

// ConfigHit returns the pair-count button index under (x, y), or -1.
func ConfigHit(w, h, x, y int) int {
	for i, r := range ConfigButtonRects(w, h) {
		if r.Contains(x, y) {
			return i
		}
	}
	return -1
}

// GridLayout describes how the run-scene grid maps onto the screen.
type GridLayout struct {
	N        int // grid size
	CellW    int // interior cell width in characters
	CellH    int // interior cell height in lines
	X0, Y0   int // top-left corner of the grid frame
	TooSmall bool
}

// Terminal cells are roughly twice as tall as wide, so grid cells use a
// 2:1 width:height ratio to look square.
const (
	minCellW = 4
	minCellH = 2
)

// RunGridLayout fits an n×n grid with 1-character separators into a
// w×h screen, leaving two rows for the header.
func RunGridLayout(w, h, n int) GridLayout {
	gl := GridLayout{N: n}

	availW := w - 2
	availH := h - 3 // header + margin

	// Grid occupies n cells plus n+1 separator lines in each axis.
	gl.CellH = (availH - (n + 1)) / n
	gl.CellW = gl.CellH * 2
	if maxW := (availW - (n + 1)) / n; gl.CellW > maxW {
		gl.CellW = maxW
	}

	if gl.CellW < minCellW || gl.CellH < minCellH {
		gl.TooSmall = true
		return gl
	}

	gridW := n*(gl.CellW+1) + 1
	gridH := n*(gl.CellH+1) + 1
	gl.X0 = (w - gridW) / 2
	gl.Y0 = 2 + (h-2-gridH)/2
	return gl
}

// CellCenter returns the screen position at the center of a grid cell.
func (gl GridLayout) CellCenter(c board.Cell) (int, int) {
	x := gl.X0 + c.Col*(gl.CellW+1) + 1 + gl.CellW/2
	y := gl.Y0 + c.Row*(gl.CellH+1) + 1 + gl.CellH/2
	return x, y
}
