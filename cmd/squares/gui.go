//go:build ebiten

package main

import (
	"errors"

	"mad-squares/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func runGUI(c *cli) error {
	state, err := app.NewState(c.cfg, c.log)
	if err != nil {
		return err
	}
	style, err := c.cfg.Style()
	if err != nil {
		return err
	}
	game := app.New(state, style, c.log)

	ebiten.SetWindowTitle("Marching Squares")
	ebiten.SetTPS(c.cfg.TPS)
	ebiten.SetWindowSize(c.cfg.Cols*c.cfg.CellSize, c.cfg.Rows*c.cfg.CellSize)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)

	c.log.Info("window opened", "rows", c.cfg.Rows, "cols", c.cfg.Cols, "cell_size", c.cfg.CellSize)
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
