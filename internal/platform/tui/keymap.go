package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/retrowix/flow-state/internal/app"
)

// KeyMapper translates Bubble Tea key and mouse messages to scene inputs.
// This centralizes bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a scene input.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) app.Input {
	switch msg.String() {
	case "ctrl+c", "q":
		return app.Input{Cmd: app.CmdQuit}
	case "up", "k", "w":
		return app.Input{Cmd: app.CmdUp}
	case "down", "j", "s":
		return app.Input{Cmd: app.CmdDown}
	case "enter":
		return app.Input{Cmd: app.CmdSelect}
	case "esc":
		return app.Input{Cmd: app.CmdBack}
	case "3":
		return app.Input{Cmd: app.CmdSetPairs, Pairs: 3}
	case "4":
		return app.Input{Cmd: app.CmdSetPairs, Pairs: 4}
	case "5":
		return app.Input{Cmd: app.CmdSetPairs, Pairs: 5}
	}

	return app.Input{Cmd: app.CmdNone}
}

// MapMouse translates a mouse message to a scene input.
// Motion feeds hover highlighting; a left press activates the control
// under the cursor.
func (km *KeyMapper) MapMouse(msg tea.MouseMsg) app.Input {
	switch {
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		return app.Input{Cmd: app.CmdClick, X: msg.X, Y: msg.Y}
	case msg.Action == tea.MouseActionMotion:
		return app.Input{Cmd: app.CmdPoint, X: msg.X, Y: msg.Y}
	}

	return app.Input{Cmd: app.CmdNone}
}
