package app

import (
	"math/rand"
	"testing"

	"github.com/retrowix/flow-state/internal/board"
)

// seededGen returns a deterministic Generator for tests.
func seededGen(seed int64) Generator {
	rng := rand.New(rand.NewSource(seed))
	return func(numPairs int) []board.EndpointPair {
		return board.Generate(rng, numPairs, board.GridN)
	}
}

func failGen(t *testing.T) Generator {
	return func(int) []board.EndpointPair {
		t.Fatal("generator should not be invoked")
		return nil
	}
}

func TestNewState(t *testing.T) {
	s := NewState(80, 24)

	if !s.Running {
		t.Error("Initial state should be running")
	}
	if s.Scene != SceneMenu {
		t.Errorf("Initial scene = %v, expected menu", s.Scene)
	}
	if s.NumPairs != 3 {
		t.Errorf("Initial NumPairs = %d, expected 3", s.NumPairs)
	}
	if s.Endpoints != nil {
		t.Error("No endpoints should exist before the first run")
	}
	if s.Hover != -1 {
		t.Errorf("Initial hover = %d, expected -1", s.Hover)
	}
}

func TestMenuSelectRunGeneratesEndpoints(t *testing.T) {
	s := NewState(80, 24)

	s = Update(s, Input{Cmd: CmdSelect}, seededGen(1))

	if s.Scene != SceneRun {
		t.Fatalf("Scene = %v, expected run", s.Scene)
	}
	if len(s.Endpoints) != s.NumPairs {
		t.Errorf("Endpoints = %d pairs, expected %d", len(s.Endpoints), s.NumPairs)
	}
}

func TestMenuEnterDefaultsToRun(t *testing.T) {
	// Nothing hovered: Enter must act on control 0 (Run)
	s := NewState(80, 24)
	if s.Hover != -1 {
		t.Fatal("precondition: nothing hovered")
	}

	s = Update(s, Input{Cmd: CmdSelect}, seededGen(2))
	if s.Scene != SceneRun {
		t.Errorf("Scene = %v, expected run", s.Scene)
	}
}

func TestMenuHoverNavigation(t *testing.T) {
	s := NewState(80, 24)

	s = Update(s, Input{Cmd: CmdDown}, failGen(t))
	if s.Hover != 0 {
		t.Errorf("Hover after first Down = %d, expected 0", s.Hover)
	}

	s = Update(s, Input{Cmd: CmdDown}, failGen(t))
	s = Update(s, Input{Cmd: CmdDown}, failGen(t))
	s = Update(s, Input{Cmd: CmdDown}, failGen(t))
	if s.Hover != 2 {
		t.Errorf("Hover should clamp at 2, got %d", s.Hover)
	}

	s = Update(s, Input{Cmd: CmdUp}, failGen(t))
	if s.Hover != 1 {
		t.Errorf("Hover after Up = %d, expected 1", s.Hover)
	}

	// Select the hovered Config control
	s = Update(s, Input{Cmd: CmdSelect}, failGen(t))
	if s.Scene != SceneConfig {
		t.Errorf("Scene = %v, expected config", s.Scene)
	}
}

func TestMenuQuitControl(t *testing.T) {
	s := NewState(80, 24)
	s.Hover = MenuItemQuit

	s = Update(s, Input{Cmd: CmdSelect}, failGen(t))
	if s.Running {
		t.Error("Selecting Quit should stop the loop")
	}
}

func TestMenuEscapeQuits(t *testing.T) {
	s := NewState(80, 24)

	s = Update(s, Input{Cmd: CmdBack}, failGen(t))
	if s.Running {
		t.Error("Escape in the menu should quit")
	}
}

func TestQuitFromAnyScene(t *testing.T) {
	for _, scene := range []SceneID{SceneMenu, SceneConfig, SceneRun} {
		s := NewState(80, 24)
		s.Scene = scene

		s = Update(s, Input{Cmd: CmdQuit}, failGen(t))
		if s.Running {
			t.Errorf("CmdQuit in %v should stop the loop", scene)
		}
	}
}

func TestConfigSetPairs(t *testing.T) {
	s := NewState(80, 24)
	s.Scene = SceneConfig

	for _, n := range []int{3, 4, 5} {
		s = Update(s, Input{Cmd: CmdSetPairs, Pairs: n}, failGen(t))
		if s.NumPairs != n {
			t.Errorf("NumPairs = %d, expected %d", s.NumPairs, n)
		}
	}

	// Out-of-range values are ignored
	s = Update(s, Input{Cmd: CmdSetPairs, Pairs: 9}, failGen(t))
	if s.NumPairs != 5 {
		t.Errorf("Invalid pair count should be ignored, NumPairs = %d", s.NumPairs)
	}

	// Escape returns to menu without touching the pair count
	s = Update(s, Input{Cmd: CmdBack}, failGen(t))
	if s.Scene != SceneMenu {
		t.Errorf("Scene = %v, expected menu", s.Scene)
	}
	if s.NumPairs != 5 {
		t.Errorf("NumPairs changed on escape: %d", s.NumPairs)
	}
}

func TestConfigRoundTrip(t *testing.T) {
	// Set pairs to 4, return to menu, select Run: exactly 4 pairs
	s := NewState(80, 24)

	s = Update(s, Input{Cmd: CmdDown}, failGen(t))   // hover Run
	s = Update(s, Input{Cmd: CmdDown}, failGen(t))   // hover Config
	s = Update(s, Input{Cmd: CmdSelect}, failGen(t)) // enter Config
	if s.Scene != SceneConfig {
		t.Fatalf("Scene = %v, expected config", s.Scene)
	}

	s = Update(s, Input{Cmd: CmdSetPairs, Pairs: 4}, failGen(t))
	s = Update(s, Input{Cmd: CmdBack}, failGen(t)) // back to menu
	s = Update(s, Input{Cmd: CmdSelect}, seededGen(3))

	if s.Scene != SceneRun {
		t.Fatalf("Scene = %v, expected run", s.Scene)
	}
	if len(s.Endpoints) != 4 {
		t.Errorf("Endpoints = %d pairs, expected 4", len(s.Endpoints))
	}
}

func TestRunEscapePreservesState(t *testing.T) {
	s := NewState(80, 24)
	s = Update(s, Input{Cmd: CmdSelect}, seededGen(4))
	if s.Scene != SceneRun {
		t.Fatal("precondition: should be in run scene")
	}

	endpoints := s.Endpoints
	pairs := s.NumPairs

	s = Update(s, Input{Cmd: CmdBack}, failGen(t))

	if s.Scene != SceneMenu {
		t.Errorf("Scene = %v, expected menu", s.Scene)
	}
	if s.NumPairs != pairs {
		t.Errorf("NumPairs changed: %d vs %d", s.NumPairs, pairs)
	}
	if len(s.Endpoints) != len(endpoints) {
		t.Fatal("Endpoints should survive leaving the run scene")
	}
	for i := range endpoints {
		if s.Endpoints[i] != endpoints[i] {
			t.Errorf("Endpoint %d changed: %v vs %v", i, s.Endpoints[i], endpoints[i])
		}
	}
}

func TestRerunRegeneratesWithCurrentPairs(t *testing.T) {
	s := NewState(80, 24)
	s = Update(s, Input{Cmd: CmdSelect}, seededGen(5))
	s = Update(s, Input{Cmd: CmdBack}, failGen(t))

	// Change pair count, run again
	s.Scene = SceneConfig
	s = Update(s, Input{Cmd: CmdSetPairs, Pairs: 5}, failGen(t))
	s = Update(s, Input{Cmd: CmdBack}, failGen(t))
	s = Update(s, Input{Cmd: CmdSelect}, seededGen(6))

	if len(s.Endpoints) != 5 {
		t.Errorf("Endpoints = %d pairs, expected 5", len(s.Endpoints))
	}
}

func TestUnknownSceneFallsBackToMenu(t *testing.T) {
	s := NewState(80, 24)
	s.Scene = SceneID(99)

	s = Update(s, Input{Cmd: CmdDown}, failGen(t))
	if s.Scene != SceneMenu {
		t.Errorf("Scene = %v, expected fallback to menu", s.Scene)
	}
	if !s.Running {
		t.Error("Fallback should not stop the loop")
	}
}

func TestResizeUpdatesDimensions(t *testing.T) {
	s := NewState(80, 24)

	s = Update(s, Input{Cmd: CmdResize, W: 120, H: 40}, failGen(t))
	if s.Width != 120 || s.Height != 40 {
		t.Errorf("Size = %dx%d, expected 120x40", s.Width, s.Height)
	}
}

func TestMouseHoverAndClick(t *testing.T) {
	s := NewState(80, 24)

	rects := MenuButtonRects(80, 24)
	cx, cy := rects[MenuItemConfig].Center()

	s = Update(s, Input{Cmd: CmdPoint, X: cx, Y: cy}, failGen(t))
	if s.Hover != MenuItemConfig {
		t.Errorf("Hover = %d, expected %d", s.Hover, MenuItemConfig)
	}

	// Motion off the buttons clears the hover
	s = Update(s, Input{Cmd: CmdPoint, X: 0, Y: 0}, failGen(t))
	if s.Hover != -1 {
		t.Errorf("Hover = %d, expected -1", s.Hover)
	}

	// Click activates the control under the cursor regardless of hover
	s = Update(s, Input{Cmd: CmdClick, X: cx, Y: cy}, failGen(t))
	if s.Scene != SceneConfig {
		t.Errorf("Scene = %v, expected config", s.Scene)
	}

	// Click a pair-count button in the config scene
	crects := ConfigButtonRects(80, 24)
	bx, by := crects[2].Center() // the "5 pairs" button
	s = Update(s, Input{Cmd: CmdClick, X: bx, Y: by}, failGen(t))
	if s.NumPairs != 5 {
		t.Errorf("NumPairs = %d, expected 5", s.NumPairs)
	}
}

func TestSceneString(t *testing.T) {
	if SceneMenu.String() != "menu" || SceneConfig.String() != "config" || SceneRun.String() != "run" {
		t.Error("SceneID.String() mismatch")
	}
	if SceneID(42).String() != "unknown" {
		t.Error("Unknown scene should stringify as unknown")
	}
}
