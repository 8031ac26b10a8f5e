package render

import (
	"mad-squares/internal/core"
	"mad-squares/internal/march"
)

// Renderer draws whole frames. Every call redraws from scratch.
type Renderer struct {
	CellSize int
	Style    Style
}

// NewRenderer returns a Renderer for the given cell size in pixels.
func NewRenderer(cellSize int, style Style) *Renderer {
	if cellSize <= 0 {
		cellSize = 1
	}
	return &Renderer{CellSize: cellSize, Style: style}
}

// Bounds returns the pixel size of a frame for g.
func (r *Renderer) Bounds(g *core.Grid) (w, h int) {
	sz := g.Size()
	return sz.Cols * r.CellSize, sz.Rows * r.CellSize
}

// Draw clears the canvas, highlights the cell under cursor and strokes the
// contour of g. It returns the number of primitives stroked. The highlight
// is skipped when the cursor lies outside the grid.
func (r *Renderer) Draw(c Canvas, g *core.Grid, cursor core.Point) int {
	st := r.Style
	c.Clear(st.Background)

	if st.ShowCells {
		r.drawCells(c, g)
	}

	cell := core.PixelToCell(cursor.X, cursor.Y, r.CellSize)
	if g.Contains(cell.Row, cell.Col) {
		r.DrawCursor(c, cell)
	}

	return r.DrawContour(c, g)
}

// DrawCursor paints the cursor highlight: a filled square with a smaller
// inset square in the contrasting colour.
func (r *Renderer) DrawCursor(c Canvas, cell core.Cell) {
	s := float64(r.CellSize)
	x, y := float64(cell.Col)*s, float64(cell.Row)*s
	c.FillRect(x, y, s, s, r.Style.Cursor)
	c.FillRect(x+0.05*s, y+0.05*s, 0.9*s, 0.9*s, r.Style.CursorInner)
}

// DrawContour strokes the primitives of every lattice point of g.
func (r *Renderer) DrawContour(c Canvas, g *core.Grid) int {
	s := float64(r.CellSize)
	w := r.Style.LineWidth
	col := r.Style.Contour
	n := 0
	march.Walk(g, func(t march.Tile) {
		for _, p := range t.Shapes {
			stroke := march.Layout(p, t.I, t.J, s)
			switch {
			case stroke.Arc != nil:
				a := stroke.Arc
				c.StrokeArc(a.CX, a.CY, a.Radius, a.Start, a.End, w, col)
			case stroke.Line != nil:
				l := stroke.Line
				c.StrokeLine(l.X0, l.Y0, l.X1, l.Y1, w, col)
			}
			n++
		}
	})
	return n
}

func (r *Renderer) drawCells(c Canvas, g *core.Grid) {
	s := float64(r.CellSize)
	if p, ok := c.(cellPainter); ok {
		p.PaintCells(g, s, r.Style.Cells)
		return
	}
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			if g.At(row, col) {
				c.FillRect(float64(col)*s, float64(row)*s, s, s, r.Style.Cells)
			}
		}
	}
}
