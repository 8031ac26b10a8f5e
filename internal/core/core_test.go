package core

import (
	"slices"
	"testing"
	"time"
)

func TestToggleTwiceRestores(t *testing.T) {
	g := NewGrid(12, 16)
	g.Set(3, 4, true)
	for _, c := range []Cell{{0, 0}, {3, 4}, {11, 15}} {
		before := g.At(c.Row, c.Col)
		if !g.Toggle(c.Row, c.Col) {
			t.Fatalf("toggle (%d,%d) reported out of range", c.Row, c.Col)
		}
		if g.At(c.Row, c.Col) == before {
			t.Fatalf("toggle (%d,%d) did not flip", c.Row, c.Col)
		}
		g.Toggle(c.Row, c.Col)
		if g.At(c.Row, c.Col) != before {
			t.Fatalf("double toggle (%d,%d) = %v, want %v", c.Row, c.Col, g.At(c.Row, c.Col), before)
		}
	}
}

func TestToggleOutOfRangeIgnored(t *testing.T) {
	g := NewGrid(12, 16)
	for _, c := range []Cell{{-1, 0}, {0, -1}, {12, 0}, {0, 16}, {12, 16}} {
		if g.Toggle(c.Row, c.Col) {
			t.Fatalf("toggle (%d,%d) should be rejected", c.Row, c.Col)
		}
	}
	if g.Live() != 0 {
		t.Fatalf("out-of-range toggles changed the grid: %d live cells", g.Live())
	}
}

func TestPixelToCellWithinSpan(t *testing.T) {
	const size = 32
	for row := 0; row < 12; row++ {
		for col := 0; col < 16; col++ {
			corners := [][2]float64{
				{float64(col * size), float64(row * size)},
				{float64(col*size + size - 1), float64(row*size + size - 1)},
				{float64(col*size) + 31.99, float64(row*size) + 0.5},
			}
			for _, p := range corners {
				got := PixelToCell(p[0], p[1], size)
				if got != (Cell{Row: row, Col: col}) {
					t.Fatalf("PixelToCell(%v,%v) = %+v, want (%d,%d)", p[0], p[1], got, row, col)
				}
			}
		}
	}
}

func TestPixelToCellIsNotClamped(t *testing.T) {
	if got := PixelToCell(512, 384, 32); got != (Cell{Row: 12, Col: 16}) {
		t.Fatalf("far edge mapped to %+v", got)
	}
	if got := PixelToCell(-0.5, -40, 32); got != (Cell{Row: -2, Col: -1}) {
		t.Fatalf("negative position mapped to %+v", got)
	}
	if got := PixelToCell(0, 0, 32); got != (Cell{}) {
		t.Fatalf("origin mapped to %+v", got)
	}
}

func TestApplyGlider(t *testing.T) {
	g := NewGrid(12, 16)
	g.Set(0, 0, true)
	if !Apply(g, "glider", 0) {
		t.Fatal("glider pattern missing")
	}
	if g.Live() != len(Glider) {
		t.Fatalf("glider live cells = %d, want %d", g.Live(), len(Glider))
	}
	for _, c := range Glider {
		if !g.At(c.Row, c.Col) {
			t.Fatalf("glider cell (%d,%d) is off", c.Row, c.Col)
		}
	}
	if Apply(g, "nope", 0) {
		t.Fatal("unknown pattern should not apply")
	}
}

func TestApplyClipsSmallGrids(t *testing.T) {
	g := NewGrid(2, 2)
	Apply(g, "glider", 0)
	if g.Live() != 0 {
		t.Fatalf("glider outside a 2x2 grid should clip, got %d live", g.Live())
	}
}

func TestRandomPatternDeterministic(t *testing.T) {
	a := NewGrid(12, 16)
	b := NewGrid(12, 16)
	Apply(a, "random", 7)
	Apply(b, "random", 7)
	if !slices.Equal(a.Cells(), b.Cells()) {
		t.Fatal("random pattern not deterministic for equal seeds")
	}
	if a.Live() == 0 {
		t.Fatal("random pattern produced an empty grid")
	}
}

func TestPatternNamesSorted(t *testing.T) {
	names := PatternNames()
	if !slices.IsSorted(names) {
		t.Fatalf("names not sorted: %v", names)
	}
	if !slices.Contains(names, DefaultPattern) {
		t.Fatalf("default pattern %q not registered", DefaultPattern)
	}
}

func TestTickerPacing(t *testing.T) {
	clock := time.Unix(0, 0)
	tk := NewTicker(10)
	tk.now = func() time.Time { return clock }

	if tk.Due() != 0 {
		t.Fatal("paused ticker fired")
	}
	tk.SetRunning(true)
	if tk.Due() != 0 {
		t.Fatal("first call after start should only prime the clock")
	}
	clock = clock.Add(50 * time.Millisecond)
	if tk.Due() != 0 {
		t.Fatal("fired before a full step elapsed")
	}
	clock = clock.Add(60 * time.Millisecond)
	if tk.Due() != 1 {
		t.Fatal("expected one generation after 110ms at 10/s")
	}
	clock = clock.Add(5 * time.Second)
	if tk.Due() != 1 {
		t.Fatal("stall should produce a single generation")
	}
	if tk.Due() != 1 {
		t.Fatal("carried accumulator should fire once more")
	}
	if tk.Due() != 0 {
		t.Fatal("accumulator should be capped at one step")
	}
	if tk.Toggle() {
		t.Fatal("toggle should pause a running ticker")
	}
}
