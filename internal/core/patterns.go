package core

// RandomDensity is the share of cells switched on by the "random" pattern.
const RandomDensity = 0.35

// DefaultPattern names the seed loaded when nothing else is configured.
const DefaultPattern = "glider"

// Glider lists the cells of the Game of Life glider placed by the default
// seed pattern.
var Glider = []Cell{{5, 6}, {5, 7}, {5, 8}, {4, 8}, {3, 7}}

// Apply clears g and writes the named pattern into it. It reports false when
// no pattern is registered under that name.
func Apply(g *Grid, name string, seed int64) bool {
	p, ok := patterns[name]
	if !ok {
		return false
	}
	g.Clear()
	p(g, seed)
	return true
}

func place(g *Grid, cells []Cell) {
	for _, c := range cells {
		g.Set(c.Row, c.Col, true)
	}
}

func init() {
	RegisterPattern("empty", func(*Grid, int64) {})
	RegisterPattern("glider", func(g *Grid, _ int64) { place(g, Glider) })
	RegisterPattern("blinker", func(g *Grid, _ int64) {
		r, c := g.Rows/2, g.Cols/2
		place(g, []Cell{{r, c - 1}, {r, c}, {r, c + 1}})
	})
	RegisterPattern("block", func(g *Grid, _ int64) {
		r, c := g.Rows/2-1, g.Cols/2-1
		place(g, []Cell{{r, c}, {r, c + 1}, {r + 1, c}, {r + 1, c + 1}})
	})
	RegisterPattern("random", func(g *Grid, seed int64) {
		FillRandom(NewRNG(seed), g.Cells(), RandomDensity)
	})
}
