// Package app implements the scene state machine for the flow prototype:
// menu, config, and run scenes over a shared application state. State is
// threaded through a pure Update function; drawing is a separate pass in
// render.go. No external dependencies, so every transition is testable.
package app

import (
	"github.com/retrowix/flow-state/internal/board"
)

// SceneID identifies one of the three mutually exclusive UI scenes.
type SceneID int

const (
	SceneMenu SceneID = iota
	SceneConfig
	SceneRun
)

// String returns a human-readable name for the scene.
func (s SceneID) String() string {
	switch s {
	case SceneMenu:
		return "menu"
	case SceneConfig:
		return "config"
	case SceneRun:
		return "run"
	default:
		return "unknown"
	}
}

// Menu control indices. Ordering is fixed: hover defaults and click
// mapping both rely on it.
const (
	MenuItemRun = iota
	MenuItemConfig
	MenuItemQuit
)

// MenuLabels are the menu controls in display order.
var MenuLabels = [3]string{"Run", "Config", "Quit"}

// ConfigChoices are the selectable pair counts in display order.
var ConfigChoices = [3]int{3, 4, 5}

// Command is a semantic input event, abstracted from physical key presses
// and mouse buttons.
type Command int

const (
	CmdNone Command = iota
	CmdUp           // move hover up (arrows, k)
	CmdDown         // move hover down (arrows, j)
	CmdSelect       // Enter - activate hovered control
	CmdBack         // Escape - leave scene (quits from menu)
	CmdQuit         // q, Ctrl+C, terminal quit signal
	CmdSetPairs     // digit 3/4/5 pressed; Pairs field carries the value
	CmdClick        // left mouse press; X, Y carry the cursor position
	CmdPoint        // mouse motion; X, Y carry the cursor position
	CmdResize       // terminal resized; W, H carry the new size
)

// Input is one event delivered to Update.
type Input struct {
	Cmd   Command
	Pairs int // CmdSetPairs
	X, Y  int // CmdClick, CmdPoint
	W, H  int // CmdResize
}

// Generator produces endpoint pairs for the given pair count.
// Injected so Update stays pure and tests can seed it.
type Generator func(numPairs int) []board.EndpointPair

// State is the whole application state. It is a value: Update returns a
// new copy instead of mutating in place.
type State struct {
	Running   bool
	Scene     SceneID
	NumPairs  int
	Endpoints []board.EndpointPair
	Hover     int // hovered control index, -1 = none
	Width     int
	Height    int
}

// NewState returns the initial application state: menu scene, default pair
// count, nothing generated yet.
func NewState(width, height int) State {
	return State{
		Running:  true,
		Scene:    SceneMenu,
		NumPairs: board.DefaultPairs,
		Hover:    -1,
		Width:    width,
		Height:   height,
	}
}

// Update applies one input event and returns the next state.
// gen is invoked only when the menu's Run control is activated.
func Update(s State, in Input, gen Generator) State {
	switch in.Cmd {
	case CmdNone:
		return s
	case CmdQuit:
		s.Running = false
		return s
	case CmdResize:
		s.Width = in.W
		s.Height = in.H
		return s
	}

	switch s.Scene {
	case SceneMenu:
		return updateMenu(s, in, gen)
	case SceneConfig:
		return updateConfig(s, in)
	case SceneRun:
		return updateRun(s, in)
	default:
		// Unrecognized scene value: recover to the menu.
		s.Scene = SceneMenu
		s.Hover = -1
		return s
	}
}

func updateMenu(s State, in Input, gen Generator) State {
	switch in.Cmd {
	case CmdUp:
		if s.Hover <= 0 {
			s.Hover = 0
		} else {
			s.Hover--
		}
	case CmdDown:
		if s.Hover < 0 {
			s.Hover = 0
		} else if s.Hover < len(MenuLabels)-1 {
			s.Hover++
		}
	case CmdPoint:
		s.Hover = MenuHit(s.Width, s.Height, in.X, in.Y)
	case CmdSelect:
		// Enter acts on the hovered control, defaulting to the top one.
		idx := s.Hover
		if idx < 0 {
			idx = MenuItemRun
		}
		return activateMenuItem(s, idx, gen)
	case CmdClick:
		if idx := MenuHit(s.Width, s.Height, in.X, in.Y); idx >= 0 {
			return activateMenuItem(s, idx, gen)
		}
	case CmdBack:
		// Escape from the menu quits, same as selecting Quit.
		s.Running = false
	}
	return s
}

func activateMenuItem(s State, idx int, gen Generator) State {
	switch idx {
	case MenuItemRun:
		s.Endpoints = gen(s.NumPairs)
		s.Scene = SceneRun
		s.Hover = -1
	case MenuItemConfig:
		s.Scene = SceneConfig
		s.Hover = -1
	case MenuItemQuit:
		s.Running = false
	}
	return s
}

func updateConfig(s State, in Input) State {
	switch in.Cmd {
	case CmdSetPairs:
		if board.ValidPairs(in.Pairs) {
			s.NumPairs = in.Pairs
		}
	case CmdPoint:
		s.Hover = ConfigHit(s.Width, s.Height, in.X, in.Y)
	case CmdClick:
		if idx := ConfigHit(s.Width, s.Height, in.X, in.Y); idx >= 0 {
			s.NumPairs = ConfigChoices[idx]
		}
	case CmdBack:
		s.Scene = SceneMenu
		s.Hover = -1
	}
	return s
}

func updateRun(s State, in Input) State {
	if in.Cmd == CmdBack {
		// Back to the menu; pair count and endpoints stay untouched.
		s.Scene = SceneMenu
		s.Hover = -1
	}
	return s
}
