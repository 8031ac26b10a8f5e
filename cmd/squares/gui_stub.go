//go:build !ebiten

package main

import "errors"

func runGUI(*cli) error {
	return &exitError{
		code: 2,
		err:  errors.New("the GUI build of squares requires the ebiten build tag; re-run with `go run -tags ebiten ./cmd/squares` or use the tui/render commands"),
	}
}
