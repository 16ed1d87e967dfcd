package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	// Check that it's initialized with spaces
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Errorf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X')
	if s.Get(5, 5) != 'X' {
		t.Errorf("Get(5, 5) = %q, expected 'X'", s.Get(5, 5))
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')  // Should not panic
	s.Set(100, 0, 'A') // Should not panic
	s.Set(0, -1, 'A')  // Should not panic
	s.Set(0, 100, 'A') // Should not panic

	// Out of bounds get should return space
	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if s.Get(100, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenSetWithColor(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetWithColor(3, 4, '●', ColorRed)

	cell := s.GetCell(3, 4)
	if cell.Rune != '●' {
		t.Errorf("GetCell(3, 4).Rune = %q, expected '●'", cell.Rune)
	}
	if cell.Color != ColorRed {
		t.Errorf("GetCell(3, 4).Color = %v, expected ColorRed", cell.Color)
	}

	// Out of bounds returns a default cell
	oob := s.GetCell(-1, -1)
	if oob.Rune != ' ' || oob.Color != ColorDefault {
		t.Errorf("Out of bounds GetCell = %+v, expected default space cell", oob)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)

	// Fill with colored characters
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			s.SetWithColor(x, y, 'X', ColorCyan)
		}
	}

	s.Clear()

	// Should all be default spaces now
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			cell := s.GetCell(x, y)
			if cell.Rune != ' ' || cell.Color != ColorDefault {
				t.Errorf("After Clear, expected default space at (%d, %d), got %+v", x, y, cell)
			}
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)

	s.DrawText(2, 1, "Hello")

	expected := "Hello"
	for i, r := range expected {
		if s.Get(2+i, 1) != r {
			t.Errorf("DrawText: expected %q at (%d, 1), got %q", r, 2+i, s.Get(2+i, 1))
		}
	}

	// Text extending beyond bounds should be clipped, not panic
	s.DrawText(17, 2, "Overflow")
	if s.Get(19, 2) != 'v' {
		t.Errorf("Clipped text: expected 'v' at (19, 2), got %q", s.Get(19, 2))
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(11, 3)

	s.DrawTextCentered(1, "abc", ColorWhite)

	// (11-3)/2 = 4
	if s.Get(4, 1) != 'a' || s.Get(5, 1) != 'b' || s.Get(6, 1) != 'c' {
		t.Errorf("Centered text misplaced: row = %q", s.Row(1))
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(NewRect(1, 1, 5, 4), ColorGray)

	if s.Get(1, 1) != '╭' {
		t.Errorf("Expected '╭' at top-left, got %q", s.Get(1, 1))
	}
	if s.Get(5, 1) != '╮' {
		t.Errorf("Expected '╮' at top-right, got %q", s.Get(5, 1))
	}
	if s.Get(1, 4) != '╰' {
		t.Errorf("Expected '╰' at bottom-left, got %q", s.Get(1, 4))
	}
	if s.Get(5, 4) != '╯' {
		t.Errorf("Expected '╯' at bottom-right, got %q", s.Get(5, 4))
	}
	if s.Get(3, 1) != '─' {
		t.Errorf("Expected '─' on top edge, got %q", s.Get(3, 1))
	}
	if s.Get(1, 2) != '│' {
		t.Errorf("Expected '│' on left edge, got %q", s.Get(1, 2))
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.Set(5, 5, 'X')

	// Grow
	s.Resize(20, 15)
	if s.Width() != 20 || s.Height() != 15 {
		t.Errorf("After resize: %dx%d, expected 20x15", s.Width(), s.Height())
	}
	if s.Get(5, 5) != 'X' {
		t.Error("Content should be preserved after grow")
	}

	// Shrink below the content
	s.Resize(4, 4)
	if s.Get(3, 3) != ' ' {
		t.Error("Shrunk screen should contain spaces inside bounds")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	got := s.String()
	expected := "a  \n  b"
	if got != expected {
		t.Errorf("String() = %q, expected %q", got, expected)
	}

	if strings.Count(got, "\n") != 1 {
		t.Errorf("Expected 1 newline, got %d", strings.Count(got, "\n"))
	}
}

func TestScreenRow(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 1, "hi")

	if s.Row(1) != "hi   " {
		t.Errorf("Row(1) = %q, expected %q", s.Row(1), "hi   ")
	}
	if s.Row(-1) != "     " {
		t.Errorf("Out of bounds Row should return spaces, got %q", s.Row(-1))
	}
}
