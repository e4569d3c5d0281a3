package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vmordasov/flappy-tui/internal/config"
	"github.com/vmordasov/flappy-tui/internal/core"
	"github.com/vmordasov/flappy-tui/internal/game"
	"github.com/vmordasov/flappy-tui/internal/storage"
)

// Model is the Bubble Tea model driving the game. It owns the frame
// scheduling: the core is a passive simulation that only moves when this
// model calls Tick with the measured frame delta.
type Model struct {
	game       *game.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	gameCfg    config.Config
	proj       Projection
	keys       *KeyMapper
	player     string
	snap       game.Snapshot
	lastTick   time.Time
	paused     bool
	quitting   bool
	scoreSaved bool // Whether score has been saved for current game over
	scoreboard *ScoreboardModel
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(g *game.Game, store *storage.Store, cfg core.RuntimeConfig, gameCfg config.Config, player string) Model {
	return Model{
		game:    g,
		screen:  core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:   store,
		config:  cfg,
		gameCfg: gameCfg,
		proj:    NewProjection(gameCfg.Screen, cfg.ScreenW, cfg.ScreenH),
		keys:    NewKeyMapper(),
		player:  player,
		snap:    g.Snapshot(),
	}
}

// Init starts the tick loop.
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
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	// The scoreboard captures input while open.
	if m.scoreboard != nil {
		if action == core.ActionScores || m.scoreboard.HandleKey(msg) {
			m.scoreboard = nil
		}
		return m, nil
	}

	switch action {
	case core.ActionTap:
		if !m.paused {
			m.game.OnTap()
		}
	case core.ActionPause:
		if m.snap.State == game.StateRunning {
			m.paused = !m.paused
		}
	case core.ActionRestart:
		if m.snap.State == game.StateOver {
			// Fresh pipes for every run; determinism only matters in tests.
			m.game.Reseed(time.Now().UnixNano())
			m.game.Restart()
			m.snap = m.game.Snapshot()
			m.scoreSaved = false
		}
	case core.ActionScores:
		sb := NewScoreboardModel(m.store, m.config.ScreenW, m.config.ScreenH)
		m.scoreboard = &sb
	}

	return m, nil
}

// handleResize reprojects the fixed virtual field onto the new cell grid.
// The simulation itself is unaffected by terminal size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.proj = NewProjection(m.gameCfg.Screen, msg.Width, msg.Height)
	if m.scoreboard != nil {
		m.scoreboard.Resize(msg.Width, msg.Height)
	}
	return m, nil
}

// handleTick advances the simulation by the measured frame delta.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := 1000.0 / float64(m.config.TickRate)
	if !m.lastTick.IsZero() {
		dt = float64(now.Sub(m.lastTick).Microseconds()) / 1000.0
	}
	m.lastTick = now

	if !m.paused && m.scoreboard == nil {
		m.snap = m.game.Tick(dt)
	}

	// Save score on game over (once)
	if m.snap.State == game.StateOver && !m.scoreSaved && m.snap.Score > 0 {
		if m.store != nil {
			//nolint:errcheck // Best-effort save, game continues regardless
			m.store.SaveScore(m.player, m.snap.Score)
		}
		m.scoreSaved = true
	}

	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.scoreboard != nil {
		return m.scoreboard.View()
	}

	drawSnapshot(m.screen, m.snap, m.proj, m.gameCfg)
	if m.paused {
		drawCenteredMessage(m.screen, "PAUSED", "Press P to resume")
	}

	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for a local terminal session.
func Run(g *game.Game, store *storage.Store, cfg core.RuntimeConfig, gameCfg config.Config, player string) error {
	model := NewModel(g, store, cfg, gameCfg, player)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
