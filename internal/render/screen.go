//go:build ebiten

package render

import (
	"image"
	"image/color"

	"mad-squares/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// ScreenCanvas draws onto an ebiten image, normally the frame's screen.
type ScreenCanvas struct {
	dst     *ebiten.Image
	painter *GridPainter

	path vector.Path
	vs   []ebiten.Vertex
	is   []uint16
}

// NewScreenCanvas returns a canvas with no target; call Target before each
// frame.
func NewScreenCanvas() *ScreenCanvas {
	return &ScreenCanvas{}
}

// Target sets the image subsequent calls draw onto.
func (s *ScreenCanvas) Target(dst *ebiten.Image) { s.dst = dst }

// Clear implements Canvas.
func (s *ScreenCanvas) Clear(c color.Color) { s.dst.Fill(c) }

// FillRect implements Canvas.
func (s *ScreenCanvas) FillRect(x, y, w, h float64, c color.Color) {
	vector.DrawFilledRect(s.dst, float32(x), float32(y), float32(w), float32(h), c, false)
}

// StrokeLine implements Canvas.
func (s *ScreenCanvas) StrokeLine(x0, y0, x1, y1, width float64, c color.Color) {
	vector.StrokeLine(s.dst, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), c, true)
}

// StrokeArc implements Canvas.
func (s *ScreenCanvas) StrokeArc(cx, cy, r, start, end, width float64, c color.Color) {
	s.path = vector.Path{}
	s.path.Arc(float32(cx), float32(cy), float32(r), float32(start), float32(end), vector.Clockwise)
	s.vs, s.is = s.path.AppendVerticesAndIndicesForStroke(s.vs[:0], s.is[:0], &vector.StrokeOptions{
		Width:    float32(width),
		LineCap:  vector.LineCapRound,
		LineJoin: vector.LineJoinRound,
	})

	cr, cg, cb, ca := c.RGBA()
	for i := range s.vs {
		s.vs[i].SrcX = 1
		s.vs[i].SrcY = 1
		s.vs[i].ColorR = float32(cr) / 0xffff
		s.vs[i].ColorG = float32(cg) / 0xffff
		s.vs[i].ColorB = float32(cb) / 0xffff
		s.vs[i].ColorA = float32(ca) / 0xffff
	}
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	s.dst.DrawTriangles(s.vs, s.is, whiteSubImage, op)
}

// PaintCells shades live cells by scaling a one-pixel-per-cell image.
func (s *ScreenCanvas) PaintCells(g *core.Grid, cellSize float64, on color.Color) {
	if s.painter == nil || s.painter.w != g.Cols || s.painter.h != g.Rows {
		s.painter = NewGridPainter(g.Cols, g.Rows)
	}
	s.painter.Blit(s.dst, g.Cells(), on, cellSize)
}

// GridPainter updates a single RGBA image based on grid cells.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a grid of w columns and h rows.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Blit uploads the provided cells into the painter image and draws it.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []bool, on color.Color, scale float64) {
	if len(cells) != gp.w*gp.h {
		return
	}
	fillCellsRGBA(gp.buf, cells, on)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	dst.DrawImage(gp.img, op)
}
