package core

import (
	"math"
	"sort"
)

// Size describes the dimensions of a grid in cells.
type Size struct {
	Rows int
	Cols int
}

// Cell addresses a single grid cell.
type Cell struct {
	Row int
	Col int
}

// Point is a position in pixel space.
type Point struct {
	X, Y float64
}

// PixelToCell floor-divides pixel coordinates by the cell size. The result is
// not clamped: positions left of or above the grid give negative indices and
// positions past the far edges give indices >= the grid size, so callers must
// check Grid.Contains before using it.
func PixelToCell(x, y float64, cellSize int) Cell {
	if cellSize <= 0 {
		cellSize = 1
	}
	s := float64(cellSize)
	return Cell{Row: int(math.Floor(y / s)), Col: int(math.Floor(x / s))}
}

// Pattern writes an initial configuration into a cleared grid. The seed is
// only meaningful for randomized patterns.
type Pattern func(g *Grid, seed int64)

var patterns = map[string]Pattern{}

// RegisterPattern adds a seed pattern under the provided name.
func RegisterPattern(name string, p Pattern) {
	if name == "" || p == nil {
		return
	}
	patterns[name] = p
}

// Patterns exposes the registry of available seed patterns.
func Patterns() map[string]Pattern {
	return patterns
}

// PatternNames returns the registered pattern names in sorted order.
func PatternNames() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
