package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/game"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

// Model is the Bubble Tea model running a tetris session.
type Model struct {
	game       *game.Game
	screen     *core.Screen
	store      *storage.Store
	keymap     *KeyMapper
	bg         lipgloss.Style
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
	scoreSaved bool // Whether score has been saved for current game over
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(g *game.Game, store *storage.Store, rt core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	rt.TickRate = g.Config().FPS

	return Model{
		game:       g,
		screen:     core.NewScreen(rt.ScreenW, rt.ScreenH),
		store:      store,
		keymap:     NewKeyMapper(g.Config()),
		bg:         lipgloss.NewStyle().Background(lipglossColor(g.Config().BackgroundColor)),
		config:     rt,
		inputFrame: core.NewInputFrame(),
	}
}

// Init initializes the model and starts the tick loop. The game itself is
// reset by the caller before the program runs, since Bubble Tea models are
// values and state set here would be lost.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keymap.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize processes window resize events. Play state survives; only the
// layout is recomputed.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.game.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	wasOver := m.gameState.GameOver
	m.gameState = result.State

	if wasOver && !m.gameState.GameOver {
		m.scoreSaved = false
	}

	// Save score on game over (once)
	if m.gameState.GameOver && !m.scoreSaved && m.gameState.Score > 0 {
		if m.store != nil {
			//nolint:errcheck // Best-effort save, game continues regardless
			m.store.SaveScore(storage.Score{
				Mode:  m.game.Mode(),
				Score: m.gameState.Score,
				Lines: m.gameState.Lines,
				Level: m.gameState.Level,
			})
		}
		m.scoreSaved = true
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.game.Render(m.screen)
	return m.bg.Render(RenderScreen(m.screen))
}

// Run starts the Bubble Tea program for the given game.
func Run(g *game.Game, store *storage.Store, rt core.RuntimeConfig) error {
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	rt.TickRate = g.Config().FPS
	g.Reset(rt)

	p := tea.NewProgram(
		NewModel(g, store, rt),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
