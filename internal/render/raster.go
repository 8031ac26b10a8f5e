package render

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"os"

	"github.com/gogpu/gg"
)

// RasterCanvas draws into an in-memory image through gg's software
// rasterizer.
type RasterCanvas struct {
	dc  *gg.Context
	err error
}

// NewRasterCanvas allocates a w×h raster canvas.
func NewRasterCanvas(w, h int) *RasterCanvas {
	return &RasterCanvas{dc: gg.NewContext(w, h)}
}

// Clear implements Canvas.
func (r *RasterCanvas) Clear(c color.Color) {
	r.dc.ClearWithColor(gg.FromColor(c))
}

// FillRect implements Canvas.
func (r *RasterCanvas) FillRect(x, y, w, h float64, c color.Color) {
	r.dc.SetColor(c)
	r.dc.DrawRectangle(x, y, w, h)
	r.keep(r.dc.Fill())
}

// StrokeLine implements Canvas.
func (r *RasterCanvas) StrokeLine(x0, y0, x1, y1, width float64, c color.Color) {
	r.dc.SetColor(c)
	r.dc.SetLineWidth(width)
	r.dc.DrawLine(x0, y0, x1, y1)
	r.keep(r.dc.Stroke())
}

// StrokeArc implements Canvas.
func (r *RasterCanvas) StrokeArc(cx, cy, radius, start, end, width float64, c color.Color) {
	r.dc.SetColor(c)
	r.dc.SetLineWidth(width)
	r.dc.DrawArc(cx, cy, radius, start, end)
	r.keep(r.dc.Stroke())
}

func (r *RasterCanvas) keep(err error) {
	if err != nil && r.err == nil {
		r.err = err
	}
}

// Err returns the first rasterization error, if any.
func (r *RasterCanvas) Err() error { return r.err }

// Image returns the rendered image.
func (r *RasterCanvas) Image() image.Image { return r.dc.Image() }

// EncodePNG writes the image as PNG.
func (r *RasterCanvas) EncodePNG(w io.Writer) error {
	if r.err != nil {
		return fmt.Errorf("rasterize: %w", r.err)
	}
	return r.dc.EncodePNG(w)
}

// SavePNG writes the image to path.
func (r *RasterCanvas) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := r.EncodePNG(f); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// Close releases the drawing context.
func (r *RasterCanvas) Close() error { return r.dc.Close() }
