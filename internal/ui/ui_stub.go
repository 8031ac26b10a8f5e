//go:build !ebiten

package ui

import "mad-squares/internal/core"

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns a stub HUD in the headless build.
func NewHUD() *HUD { return &HUD{} }

// Toggle is a no-op in the headless build.
func (h *HUD) Toggle() {}

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any, Status) {}

// Overlay is a no-op placeholder used when the ebiten build tag is absent.
type Overlay struct{}

// NewOverlay constructs a stub overlay.
func NewOverlay(int) *Overlay { return &Overlay{} }

// Update is a no-op in headless builds.
func (o *Overlay) Update() {}

// Draw is a no-op placeholder.
func (o *Overlay) Draw(any, *core.Grid) {}
