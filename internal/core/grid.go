package core

// Grid stores a fixed R×C board of on/off cells in row-major order.
type Grid struct {
	Rows, Cols int
	data       []bool
}

// NewGrid allocates a grid with the given dimensions. Non-positive dimensions
// are raised to one so every grid has at least one addressable cell.
func NewGrid(rows, cols int) *Grid {
	if rows <= 0 {
		rows = 1
	}
	if cols <= 0 {
		cols = 1
	}
	return &Grid{Rows: rows, Cols: cols, data: make([]bool, rows*cols)}
}

// Size returns the grid dimensions.
func (g *Grid) Size() Size { return Size{Rows: g.Rows, Cols: g.Cols} }

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid) Cells() []bool { return g.data }

// Index returns the linear slice index for (row, col).
func (g *Grid) Index(row, col int) int { return row*g.Cols + col }

// Contains reports whether (row, col) addresses a cell of the grid.
func (g *Grid) Contains(row, col int) bool {
	return row >= 0 && row < g.Rows && col >= 0 && col < g.Cols
}

// At returns the cell value. Positions outside the grid read as off.
func (g *Grid) At(row, col int) bool {
	if !g.Contains(row, col) {
		return false
	}
	return g.data[g.Index(row, col)]
}

// Set writes a cell value and reports whether the position was inside the grid.
func (g *Grid) Set(row, col int, on bool) bool {
	if !g.Contains(row, col) {
		return false
	}
	g.data[g.Index(row, col)] = on
	return true
}

// Toggle flips a cell. Out-of-range positions are left alone and reported
// with false.
func (g *Grid) Toggle(row, col int) bool {
	if !g.Contains(row, col) {
		return false
	}
	i := g.Index(row, col)
	g.data[i] = !g.data[i]
	return true
}

// Live counts the cells that are on.
func (g *Grid) Live() int {
	n := 0
	for _, on := range g.data {
		if on {
			n++
		}
	}
	return n
}

// Clear switches every cell off.
func (g *Grid) Clear() {
	for i := range g.data {
		g.data[i] = false
	}
}
