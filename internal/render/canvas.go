// Package render draws a grid and its marching-squares contour onto a
// Canvas. Canvas implementations exist for the ebiten screen (build tag
// ebiten), a gg raster image and an SVG document.
package render

import (
	"image/color"

	"mad-squares/internal/core"
)

// Canvas is the graphics backend the Renderer issues primitives to.
type Canvas interface {
	Clear(c color.Color)
	FillRect(x, y, w, h float64, c color.Color)
	StrokeLine(x0, y0, x1, y1, width float64, c color.Color)
	StrokeArc(cx, cy, r, start, end, width float64, c color.Color)
}

// cellPainter is implemented by canvases that can shade live cells faster
// than one FillRect per cell.
type cellPainter interface {
	PaintCells(g *core.Grid, cellSize float64, on color.Color)
}

// Style holds the colours and stroke width used for a frame.
type Style struct {
	Background  color.RGBA
	Cursor      color.RGBA
	CursorInner color.RGBA
	Contour     color.RGBA
	Cells       color.RGBA
	LineWidth   float64
	ShowCells   bool
}

// DefaultStyle returns the white/black/green palette with a 2px contour.
func DefaultStyle() Style {
	return Style{
		Background:  color.RGBA{R: 255, G: 255, B: 255, A: 255},
		Cursor:      color.RGBA{R: 0, G: 204, B: 0, A: 255},
		CursorInner: color.RGBA{R: 255, G: 255, B: 255, A: 255},
		Contour:     color.RGBA{R: 0, G: 0, B: 0, A: 255},
		Cells:       color.RGBA{R: 220, G: 228, B: 240, A: 255},
		LineWidth:   2,
	}
}
