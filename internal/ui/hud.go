//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	hudLineHeight = 14
	hudPadding    = 4
	hudWidth      = 200
)

// HUD renders a translucent status panel in the top-left corner.
type HUD struct {
	visible bool
	panel   *ebiten.Image
}

// NewHUD constructs a hidden HUD.
func NewHUD() *HUD {
	return &HUD{}
}

// Toggle shows or hides the panel.
func (h *HUD) Toggle() { h.visible = !h.visible }

// Draw paints the status panel when visible.
func (h *HUD) Draw(screen *ebiten.Image, st Status) {
	if h == nil || !h.visible {
		return
	}
	lines := st.Lines()
	height := len(lines)*hudLineHeight + 2*hudPadding
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(hudWidth, height)
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 200})
	for i, line := range lines {
		y := hudPadding + (i+1)*hudLineHeight - 3
		text.Draw(h.panel, line, basicfont.Face7x13, hudPadding, y, color.White)
	}
	screen.DrawImage(h.panel, &ebiten.DrawImageOptions{})
}
