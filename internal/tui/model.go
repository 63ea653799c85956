// Package tui draws a life session in the terminal.
//
// Keys are queued as they arrive and applied on the next tick, so a tick
// handles input, update and draw in the same order as the window front-end.
package tui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/olivierh59500/lifegrid/pkg/game"
)

const helpText = "space reseed · n noise · p pause · → step · c clear · s save · l load · q quit"

type tickMsg time.Time

// Model is the bubbletea model for a session
type Model struct {
	session  *game.Session
	styles   Styles
	interval time.Duration
	pending  []game.Action
	width    int // Terminal size, 0 until the first WindowSizeMsg
	height   int
}

// NewModel creates a model stepping the session tps times per second
func NewModel(session *game.Session, styles Styles, tps int) Model {
	if tps <= 0 {
		tps = 10
	}
	return Model{
		session:  session,
		styles:   styles,
		interval: time.Second / time.Duration(tps),
	}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Init starts the tick loop
func (m Model) Init() tea.Cmd {
	return m.tick()
}

// Update handles keys, resizes and ticks
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tickMsg:
		m.session.Update(m.pending...)
		m.pending = nil
		return m, m.tick()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var a game.Action
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		return m, tea.Quit
	case " ", "space":
		a = game.ActionReseed
	case "n":
		a = game.ActionReseedNoise
	case "p":
		a = game.ActionTogglePause
	case "right", ".":
		a = game.ActionStep
	case "c":
		a = game.ActionClear
	case "h":
		a = game.ActionToggleHUD
	case "s":
		a = game.ActionSave
	case "l":
		a = game.ActionLoad
	default:
		return m, nil
	}
	m.pending = append(m.pending, a)
	return m, nil
}

// View renders the visible part of the board plus the status lines
func (m Model) View() string {
	g := m.session.Grid()
	rows, cols := g.Rows(), g.Cols()

	// Clip to the terminal, leaving room for status and help
	if m.height > 0 && rows > m.height-2 {
		rows = max(m.height-2, 0)
	}
	if m.width > 0 && cols > m.width/2 {
		cols = m.width / 2
	}

	var b strings.Builder
	for row := 0; row < rows; row++ {
		m.renderRow(&b, row, cols)
		b.WriteByte('\n')
	}

	if m.session.ShowHUD() {
		status := strings.ReplaceAll(m.session.HUD(), "\n", "  ·  ")
		b.WriteString(m.styles.Status.Render(status))
		b.WriteByte('\n')
		b.WriteString(m.styles.Help.Render(helpText))
	}
	return b.String()
}

// renderRow writes one board row, styling runs of equally tinted cells together
func (m Model) renderRow(b *strings.Builder, row, cols int) {
	g := m.session.Grid()

	const (
		dead = iota
		stable
		unstable
	)
	kind := func(col int) int {
		switch {
		case !g.Alive(row, col):
			return dead
		case game.Stable(g.Neighbours(row, col)):
			return stable
		default:
			return unstable
		}
	}

	for col := 0; col < cols; {
		k := kind(col)
		end := col + 1
		for end < cols && kind(end) == k {
			end++
		}
		n := end - col
		switch k {
		case dead:
			b.WriteString(strings.Repeat("  ", n))
		case stable:
			b.WriteString(m.styles.Stable.Render(strings.Repeat(cellGlyph, 2*n)))
		case unstable:
			b.WriteString(m.styles.Unstable.Render(strings.Repeat(cellGlyph, 2*n)))
		}
		col = end
	}
}
