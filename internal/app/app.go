//go:build ebiten

package app

import (
	"log/slog"

	"mad-squares/internal/render"
	"mad-squares/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts the application state to the ebiten.Game interface.
type Game struct {
	state    *State
	renderer *render.Renderer
	canvas   *render.ScreenCanvas
	hud      *ui.HUD
	overlay  *ui.Overlay

	lastX, lastY int
	log          *slog.Logger
}

// New constructs a Game drawing state with the provided style.
func New(state *State, style render.Style, log *slog.Logger) *Game {
	if log == nil {
		log = slog.Default()
	}
	return &Game{
		state:    state,
		renderer: render.NewRenderer(state.CellSize, style),
		canvas:   render.NewScreenCanvas(),
		hud:      ui.NewHUD(),
		overlay:  ui.NewOverlay(state.CellSize),
		lastX:    -1,
		lastY:    -1,
		log:      log,
	}
}

// Update handles input and advances evolution.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.log.Info("quit requested", "generation", g.state.Generation())
		return ebiten.Termination
	}

	if x, y := ebiten.CursorPosition(); x != g.lastX || y != g.lastY {
		g.lastX, g.lastY = x, y
		g.state.SetCursor(float64(x), float64(y))
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.state.Press()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.state.ToggleRunning()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.state.Step()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.state.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.state.Clear()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		g.renderer.Style.ShowCells = !g.renderer.Style.ShowCells
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.hud.Toggle()
	}
	g.overlay.Update()

	g.state.Advance()
	return nil
}

// Draw renders the current frame from scratch.
func (g *Game) Draw(screen *ebiten.Image) {
	g.canvas.Target(screen)
	g.renderer.Draw(g.canvas, g.state.Grid, g.state.Cursor)
	g.overlay.Draw(screen, g.state.Grid)
	g.hud.Draw(screen, g.state.Status())
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.renderer.Bounds(g.state.Grid)
}
