// Package life advances a grid by Conway's Game of Life rules (B3/S23).
package life

import "mad-squares/internal/core"

// Stepper holds the scratch buffer used to compute the next generation.
type Stepper struct {
	wrap bool
	nxt  []bool
}

// NewStepper returns a Stepper. When wrap is set the neighbourhood is
// toroidal; otherwise cells beyond the edges count as off.
func NewStepper(wrap bool) *Stepper {
	return &Stepper{wrap: wrap}
}

// Step advances g by one generation in place.
func (s *Stepper) Step(g *core.Grid) {
	rows, cols := g.Rows, g.Cols
	cur := g.Cells()
	if len(s.nxt) != len(cur) {
		s.nxt = make([]bool, len(cur))
	}
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			neighbors := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					ny, nx := y+dy, x+dx
					if s.wrap {
						ny = (ny + rows) % rows
						nx = (nx + cols) % cols
					} else if ny < 0 || ny >= rows || nx < 0 || nx >= cols {
						continue
					}
					if cur[ny*cols+nx] {
						neighbors++
					}
				}
			}
			idx := y*cols + x
			alive := cur[idx]
			s.nxt[idx] = (alive && (neighbors == 2 || neighbors == 3)) || (!alive && neighbors == 3)
		}
	}
	copy(cur, s.nxt)
}
