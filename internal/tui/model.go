// Package tui runs the grid in a terminal: the contour is drawn with
// box-drawing characters and cells are toggled with the mouse.
package tui

import (
	"strings"
	"time"

	"mad-squares/internal/app"

	tea "github.com/charmbracelet/bubbletea"
)

const frameInterval = 33 * time.Millisecond

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Model is the bubbletea model wrapping the application state.
type Model struct {
	state     *app.State
	styles    Styles
	showCells bool
}

// New returns a Model driving state. The state's cell size is switched to
// the board stride so terminal positions map onto cells.
func New(state *app.State, showCells bool) Model {
	state.CellSize = CellStride
	state.SetCursor(-1, -1)
	return Model{state: state, styles: DefaultStyles(), showCells: showCells}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return tick() }

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		m.handleMouse(msg)
	case tickMsg:
		m.state.Advance()
		return m, tick()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		return m, tea.Quit
	case " ":
		m.state.ToggleRunning()
	case "n":
		m.state.Step()
	case "r":
		m.state.Reset()
	case "c":
		m.state.Clear()
	case "g":
		m.showCells = !m.showCells
	}
	return m, nil
}

// handleMouse maps terminal coordinates onto the board. The first board row
// and column are lattice lines, so cell (0, 0) sits at terminal (1, 1).
func (m Model) handleMouse(msg tea.MouseMsg) {
	m.state.SetCursor(float64(msg.X-1), float64(msg.Y-1))
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		m.state.Press()
	}
}

// View implements tea.Model.
func (m Model) View() string {
	cell, inside := m.state.CursorCell()
	var sb strings.Builder
	sb.WriteString(Render(m.state.Grid, cell, inside, m.showCells, m.styles))
	sb.WriteString("\n\n")
	sb.WriteString(m.styles.Status.Render(strings.Join(m.state.Status().Lines(), "  │  ")))
	sb.WriteString("\n")
	sb.WriteString(m.styles.Help.Render("click toggle · space run/pause · n step · r reset · c clear · g cells · q quit"))
	return sb.String()
}

// Run starts the terminal frontend and blocks until the user quits.
func Run(state *app.State, showCells bool) error {
	p := tea.NewProgram(New(state, showCells), tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err := p.Run()
	return err
}
