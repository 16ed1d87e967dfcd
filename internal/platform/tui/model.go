package tui

import (
	"math/rand"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/retrowix/flow-state/internal/app"
	"github.com/retrowix/flow-state/internal/board"
	"github.com/retrowix/flow-state/internal/core"
	"github.com/retrowix/flow-state/internal/storage"
)

// Model is the Bubble Tea model driving the scene state machine.
type Model struct {
	state    app.State
	screen   *core.Screen
	store    *storage.Store
	config   core.RuntimeConfig
	rng      *rand.Rand
	keys     *KeyMapper
	quitting bool
}

// NewModel creates a new Bubble Tea model for the scene machine.
// defaultPairs seeds the pair count shown before the user opens the
// config scene.
func NewModel(store *storage.Store, cfg core.RuntimeConfig, defaultPairs int) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	state := app.NewState(cfg.ScreenW, cfg.ScreenH)
	if board.ValidPairs(defaultPairs) {
		state.NumPairs = defaultPairs
	}

	return Model{
		state:  state,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:  store,
		config: cfg,
		rng:    rand.New(rand.NewSource(cfg.Seed)),
		keys:   NewKeyMapper(),
	}
}

// Init starts the frame tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and advances the scene machine.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.apply(m.keys.MapKey(msg))

	case tea.MouseMsg:
		return m.apply(m.keys.MapMouse(msg))

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, msg.Height)
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m.apply(app.Input{Cmd: app.CmdResize, W: msg.Width, H: msg.Height})

	case TickMsg:
		// The scene machine has no simulation; ticks just bound the
		// redraw rate.
		return m, tickCmd(m.config.TickRate)
	}

	return m, nil
}

// apply runs one input through the pure update and handles side effects:
// layout history writes and program termination.
func (m Model) apply(in app.Input) (tea.Model, tea.Cmd) {
	wasRun := m.state.Scene == app.SceneRun

	m.state = app.Update(m.state, in, m.generate)

	// A fresh board was generated on the menu -> run transition
	if !wasRun && m.state.Scene == app.SceneRun && m.store != nil {
		//nolint:errcheck // Best-effort history write, the scene continues regardless
		m.store.SaveLayout(m.state.Endpoints, board.GridN)
	}

	if !m.state.Running {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// generate produces endpoint pairs from the model's seeded source.
func (m Model) generate(numPairs int) []board.EndpointPair {
	return board.Generate(m.rng, numPairs, board.GridN)
}

// View renders the current scene to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	app.Render(m.state, m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(store *storage.Store, cfg core.RuntimeConfig, defaultPairs int) error {
	model := NewModel(store, cfg, defaultPairs)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Hover highlighting and button clicks
	)

	_, err := p.Run()
	return err
}
