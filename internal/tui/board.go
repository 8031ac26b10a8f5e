package tui

import (
	"strings"

	"mad-squares/internal/core"
	"mad-squares/internal/march"

	"github.com/charmbracelet/lipgloss"
)

// CellStride is the number of terminal columns and rows between cell
// centres on the board.
const CellStride = 2

// Glyph returns the box-drawing rune joining the given tile edges.
func Glyph(e march.Edge) rune {
	switch e {
	case 0:
		return ' '
	case march.East | march.West:
		return '─'
	case march.North | march.South:
		return '│'
	case march.South | march.East:
		return '╭'
	case march.South | march.West:
		return '╮'
	case march.North | march.East:
		return '╰'
	case march.North | march.West:
		return '╯'
	case march.North | march.East | march.South | march.West:
		return '┼'
	}
	return '?'
}

// LatticeEdges returns the union of edges joined by the primitives at
// lattice point (i, j).
func LatticeEdges(g *core.Grid, i, j int) march.Edge {
	var e march.Edge
	for _, p := range march.Select(march.Classify(g, i, j)) {
		e |= p.Edges()
	}
	return e
}

// Glyphs lays the grid out as a (2R+1)×(2C+1) board. Even rows and columns
// hold lattice glyphs and connectors; odd/odd positions hold cells, drawn as
// '■' when showCells is set and the cell is on.
func Glyphs(g *core.Grid, showCells bool) [][]rune {
	rows, cols := 2*g.Rows+1, 2*g.Cols+1
	edges := make([]march.Edge, (g.Rows+1)*(g.Cols+1))
	for i := 0; i <= g.Rows; i++ {
		for j := 0; j <= g.Cols; j++ {
			edges[i*(g.Cols+1)+j] = LatticeEdges(g, i, j)
		}
	}
	at := func(i, j int) march.Edge { return edges[i*(g.Cols+1)+j] }

	board := make([][]rune, rows)
	for r := range board {
		line := make([]rune, cols)
		for c := range line {
			switch {
			case r%2 == 0 && c%2 == 0:
				line[c] = Glyph(at(r/2, c/2))
			case r%2 == 0:
				line[c] = ' '
				if at(r/2, c/2)&march.East != 0 {
					line[c] = '─'
				}
			case c%2 == 0:
				line[c] = ' '
				if at(r/2, c/2)&march.South != 0 {
					line[c] = '│'
				}
			default:
				line[c] = ' '
				if showCells && g.At(r/2, c/2) {
					line[c] = '■'
				}
			}
		}
		board[r] = line
	}
	return board
}

// Styles holds the lipgloss styles used to paint the board.
type Styles struct {
	Contour lipgloss.Style
	Cell    lipgloss.Style
	Cursor  lipgloss.Style
	Status  lipgloss.Style
	Help    lipgloss.Style
}

// DefaultStyles returns the terminal palette.
func DefaultStyles() Styles {
	return Styles{
		Contour: lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		Cell:    lipgloss.NewStyle().Foreground(lipgloss.Color("67")),
		Cursor:  lipgloss.NewStyle().Background(lipgloss.Color("34")).Foreground(lipgloss.Color("255")),
		Status:  lipgloss.NewStyle().Foreground(lipgloss.Color("86")),
		Help:    lipgloss.NewStyle().Foreground(lipgloss.Color("242")),
	}
}

// Render paints the board with the cursor cell highlighted when inside.
func Render(g *core.Grid, cursor core.Cell, inside, showCells bool, st Styles) string {
	board := Glyphs(g, showCells)
	var sb strings.Builder
	for r, line := range board {
		for c, ch := range line {
			s := string(ch)
			switch {
			case inside && r == 2*cursor.Row+1 && c == 2*cursor.Col+1:
				sb.WriteString(st.Cursor.Render(s))
			case r%2 == 1 && c%2 == 1:
				sb.WriteString(st.Cell.Render(s))
			default:
				sb.WriteString(st.Contour.Render(s))
			}
		}
		if r < len(board)-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
