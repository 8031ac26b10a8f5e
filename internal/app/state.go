package app

import (
	"fmt"
	"log/slog"

	"mad-squares/internal/config"
	"mad-squares/internal/core"
	"mad-squares/internal/life"
	"mad-squares/internal/march"
	"mad-squares/internal/ui"
)

// State is the application state shared by the frontends: the grid, the last
// cursor position and the evolution controls. It is not safe for concurrent
// use; every frontend drives it from a single event loop.
type State struct {
	Grid     *core.Grid
	Cursor   core.Point
	CellSize int

	pattern    string
	seed       int64
	stepper    *life.Stepper
	ticker     *core.Ticker
	generation int

	log *slog.Logger
}

// NewState builds the grid described by cfg and loads its seed pattern.
func NewState(cfg *config.Config, log *slog.Logger) (*State, error) {
	if _, ok := core.Patterns()[cfg.Pattern]; !ok {
		return nil, fmt.Errorf("unknown pattern %q", cfg.Pattern)
	}
	if log == nil {
		log = slog.Default()
	}
	s := &State{
		Grid:     core.NewGrid(cfg.Rows, cfg.Cols),
		CellSize: cfg.CellSize,
		pattern:  cfg.Pattern,
		seed:     cfg.Seed,
		stepper:  life.NewStepper(cfg.Wrap),
		ticker:   core.NewTicker(cfg.GenRate),
		log:      log,
	}
	s.Reset()
	return s, nil
}

// SetCursor records the pointer position verbatim.
func (s *State) SetCursor(x, y float64) {
	s.Cursor = core.Point{X: x, Y: y}
}

// CursorCell maps the last cursor position to a cell and reports whether
// that cell lies inside the grid.
func (s *State) CursorCell() (core.Cell, bool) {
	c := core.PixelToCell(s.Cursor.X, s.Cursor.Y, s.CellSize)
	return c, s.Grid.Contains(c.Row, c.Col)
}

// Press toggles the cell under the last cursor position. Presses outside the
// grid are ignored and reported with false.
func (s *State) Press() bool {
	c, ok := s.CursorCell()
	if !ok {
		s.log.Debug("press outside grid ignored", "x", s.Cursor.X, "y", s.Cursor.Y)
		return false
	}
	s.Grid.Toggle(c.Row, c.Col)
	s.log.Debug("cell toggled", "row", c.Row, "col", c.Col, "on", s.Grid.At(c.Row, c.Col))
	return true
}

// Reset reloads the seed pattern and pauses evolution.
func (s *State) Reset() {
	core.Apply(s.Grid, s.pattern, s.seed)
	s.generation = 0
	s.ticker.SetRunning(false)
}

// Clear switches every cell off and pauses evolution.
func (s *State) Clear() {
	s.Grid.Clear()
	s.generation = 0
	s.ticker.SetRunning(false)
}

// Step advances the grid by one life generation.
func (s *State) Step() {
	s.stepper.Step(s.Grid)
	s.generation++
}

// ToggleRunning starts or pauses automatic evolution and returns the new
// state.
func (s *State) ToggleRunning() bool {
	on := s.ticker.Toggle()
	s.log.Info("evolution", "running", on, "generation", s.generation)
	return on
}

// Running reports whether automatic evolution is on.
func (s *State) Running() bool { return s.ticker.Running() }

// Advance steps the grid if the evolution ticker is due and returns the
// number of generations advanced.
func (s *State) Advance() int {
	n := s.ticker.Due()
	for i := 0; i < n; i++ {
		s.Step()
	}
	return n
}

// Generation returns the number of generations since the last reset.
func (s *State) Generation() int { return s.generation }

// Status summarises the state for the HUD and the terminal status line.
func (s *State) Status() ui.Status {
	c, inside := s.CursorCell()
	st := ui.Status{
		Cell:       c,
		Inside:     inside,
		Live:       s.Grid.Live(),
		Generation: s.generation,
		Running:    s.Running(),
		Pattern:    s.pattern,
	}
	if inside {
		st.Code = march.Classify(s.Grid, c.Row, c.Col)
	}
	return st
}
