package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vmordasov/flappy-tui/internal/storage"
)

// maxScores is how many leaderboard rows to load.
const maxScores = 50

// ScoreboardKeyMap defines the key bindings for the scoreboard overlay.
type ScoreboardKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Back key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Back}}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b", "tab"),
			key.WithHelp("esc/tab", "back"),
		),
	}
}

// ScoreboardModel is the high score table shown over the game.
type ScoreboardModel struct {
	store  *storage.Store
	table  table.Model
	help   help.Model
	keys   ScoreboardKeyMap
	width  int
	height int
}

// NewScoreboardModel creates a scoreboard with scores loaded from the store.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.table = m.buildTable()
	return m
}

// buildTable loads scores and lays out the table for the current size.
func (m *ScoreboardModel) buildTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Player", Width: 16},
		{Title: "Score", Width: 8},
		{Title: "Date", Width: 16},
	}

	var rows []table.Row
	if m.store != nil {
		entries, err := m.store.TopScores(maxScores)
		if err == nil {
			for i, e := range entries {
				rows = append(rows, table.Row{
					fmt.Sprintf("%d", i+1),
					e.Player,
					fmt.Sprintf("%d", e.Score),
					e.CreatedAt.Format("2006-01-02 15:04"),
				})
			}
		}
	}
	if len(rows) == 0 {
		rows = append(rows, table.Row{"-", "no scores yet", "-", "-"})
	}

	tableHeight := m.height - 6
	if tableHeight < 3 {
		tableHeight = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(tableHeight),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true).BorderBottom(true)
	styles.Selected = styles.Selected.Foreground(lipgloss.Color("11"))
	t.SetStyles(styles)

	return t
}

// Resize relays a terminal size change.
func (m *ScoreboardModel) Resize(width, height int) {
	m.width = width
	m.height = height
	m.table = m.buildTable()
}

// HandleKey processes a key press. Returns true when the scoreboard should
// close.
func (m *ScoreboardModel) HandleKey(msg tea.KeyMsg) bool {
	if key.Matches(msg, m.keys.Back) {
		return true
	}
	m.table, _ = m.table.Update(msg)
	return false
}

// View renders the scoreboard.
func (m *ScoreboardModel) View() string {
	title := lipgloss.NewStyle().Bold(true).Render("High Scores")
	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		m.table.View(),
		m.help.View(m.keys),
	)
}
