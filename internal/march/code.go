// Package march classifies grid lattice points into marching-squares cases
// and maps every case onto the contour primitives drawn around it.
//
// Lattice point (i, j) is the corner shared by cells (i-1, j-1), (i-1, j),
// (i, j-1) and (i, j). A grid of R×C cells has (R+1)×(C+1) lattice points.
package march

import "mad-squares/internal/core"

// Code is the 4-bit neighbourhood pattern of a lattice point.
type Code uint8

// Neighbour weights.
const (
	TopLeft     Code = 8
	TopRight    Code = 4
	BottomLeft  Code = 2
	BottomRight Code = 1
)

// Full is the code of a lattice point surrounded by four live cells.
const Full = TopLeft | TopRight | BottomLeft | BottomRight

// Classify computes the code of lattice point (i, j). Neighbours outside the
// grid count as off.
func Classify(g *core.Grid, i, j int) Code {
	var code Code
	if i > 0 {
		if j > 0 && g.At(i-1, j-1) {
			code += TopLeft
		}
		if j < g.Cols && g.At(i-1, j) {
			code += TopRight
		}
	}
	if i < g.Rows {
		if j > 0 && g.At(i, j-1) {
			code += BottomLeft
		}
		if j < g.Cols && g.At(i, j) {
			code += BottomRight
		}
	}
	return code
}

// Tile is one classified lattice point together with its primitives.
type Tile struct {
	I, J   int
	Code   Code
	Shapes []Primitive
}

// Walk classifies every lattice point of g in row-major order and calls fn
// for each one that draws at least one primitive.
func Walk(g *core.Grid, fn func(Tile)) {
	for i := 0; i <= g.Rows; i++ {
		for j := 0; j <= g.Cols; j++ {
			code := Classify(g, i, j)
			shapes := Select(code)
			if len(shapes) == 0 {
				continue
			}
			fn(Tile{I: i, J: j, Code: code, Shapes: shapes})
		}
	}
}

// Contour returns every drawing tile of g.
func Contour(g *core.Grid) []Tile {
	var tiles []Tile
	Walk(g, func(t Tile) { tiles = append(tiles, t) })
	return tiles
}
