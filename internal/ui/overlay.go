//go:build ebiten

package ui

import (
	"image/color"
	"strconv"

	"mad-squares/internal/core"
	"mad-squares/internal/march"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Overlay draws the lattice and each lattice point's pattern code on top of
// the contour. It is toggled with D.
type Overlay struct {
	cellSize int
	show     bool
	pixel    *ebiten.Image
}

// NewOverlay constructs a hidden overlay.
func NewOverlay(cellSize int) *Overlay {
	o := &Overlay{cellSize: cellSize}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update handles the overlay's key binding.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		o.show = !o.show
	}
}

// Draw renders lattice dots and non-zero codes.
func (o *Overlay) Draw(screen *ebiten.Image, g *core.Grid) {
	if !o.show {
		return
	}
	s := float64(o.cellSize)
	dot := color.RGBA{R: 90, G: 130, B: 170, A: 160}
	label := color.RGBA{R: 200, G: 60, B: 40, A: 255}
	for i := 0; i <= g.Rows; i++ {
		for j := 0; j <= g.Cols; j++ {
			x, y := march.Lattice(i, j, s)
			o.drawPoint(screen, x, y, 3, dot)
			code := march.Classify(g, i, j)
			if code == 0 || code == march.Full {
				continue
			}
			text.Draw(screen, strconv.Itoa(int(code)), basicfont.Face7x13, int(x)+2, int(y)-2, label)
		}
	}
}

func (o *Overlay) drawPoint(screen *ebiten.Image, x, y, size float64, col color.RGBA) {
	if o.pixel == nil || size <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(size, size)
	op.GeoM.Translate(x-size*0.5, y-size*0.5)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}
