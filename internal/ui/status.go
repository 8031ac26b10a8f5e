package ui

import (
	"fmt"

	"mad-squares/internal/core"
	"mad-squares/internal/march"
)

// Status is the summary line shown by the HUD and the terminal frontend.
// Code is the pattern code of the lattice point at the top-left corner of
// the cursor cell.
type Status struct {
	Cell       core.Cell
	Inside     bool
	Code       march.Code
	Live       int
	Generation int
	Running    bool
	Pattern    string
}

// Lines formats the status as short lines of text.
func (s Status) Lines() []string {
	cursor := "cursor: outside"
	if s.Inside {
		cursor = fmt.Sprintf("cursor: r%d c%d  code %d", s.Cell.Row, s.Cell.Col, s.Code)
	}
	mode := "paused"
	if s.Running {
		mode = "running"
	}
	return []string{
		cursor,
		fmt.Sprintf("live %d  gen %d  %s", s.Live, s.Generation, mode),
		"pattern: " + s.Pattern,
	}
}
