// Package ebiten provides the windowed renderer. Rooms are painted onto an
// offscreen canvas as placements arrive, and the canvas is shown every frame
// until the window is closed.
package ebiten

import (
	"context"
	"errors"
	"image"
	"iter"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"labyrinth/pkg/engine/world"
	"labyrinth/pkg/game/config"
	"labyrinth/pkg/game/layout"
	"labyrinth/pkg/game/renderer"
)

// EbitenRenderer draws the labyrinth in a window
type EbitenRenderer struct {
	window   config.Window
	geometry renderer.Geometry

	ctx   context.Context
	graph *world.Graph
	next  func() (layout.Placement, bool)

	canvas *ebiten.Image
	done   bool
	drawn  int
}

// New creates a new Ebiten renderer; the layout origin is the window center
func New(window config.Window) *EbitenRenderer {
	return &EbitenRenderer{
		window: window,
		geometry: renderer.Geometry{
			Origin:       image.Pt(window.Width/2, window.Height/2),
			RoomSize:     window.RoomSize,
			CorridorSize: window.CorridorSize,
		},
	}
}

// Name returns the name of this renderer
func (e *EbitenRenderer) Name() string {
	return config.RendererEbiten
}

// Init sets up the window
func (e *EbitenRenderer) Init() {
	ebiten.SetWindowSize(e.window.Width, e.window.Height)
	ebiten.SetWindowTitle(e.window.Title)
	ebiten.SetTPS(e.window.TPS)
}

// Render runs the game loop until the window is closed, Escape or Q is
// pressed, or ctx is done
func (e *EbitenRenderer) Render(ctx context.Context, scene renderer.Scene) error {
	next, stop := iter.Pull(scene.Placements)
	defer stop()

	e.ctx = ctx
	e.graph = scene.Graph
	e.next = next
	e.done = false
	e.drawn = 0

	err := ebiten.RunGame(e)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

// Drawn returns how many placements have been painted
func (e *EbitenRenderer) Drawn() int {
	return e.drawn
}

// Update paints the next batch of placements (Ebiten interface)
func (e *EbitenRenderer) Update() error {
	if e.ctx != nil && e.ctx.Err() != nil {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	if e.canvas == nil {
		e.canvas = ebiten.NewImage(e.window.Width, e.window.Height)
		e.canvas.Fill(colorBackground)
	}
	if e.done {
		return nil
	}

	budget := e.window.PerFrame
	for i := 0; budget <= 0 || i < budget; i++ {
		p, ok := e.next()
		if !ok {
			e.done = true
			break
		}
		e.drawPlacement(p)
	}
	return nil
}

// Draw shows the canvas (Ebiten interface)
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	if e.canvas != nil {
		screen.DrawImage(e.canvas, nil)
	}
}

// Layout returns the logical screen size (Ebiten interface)
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return e.window.Width, e.window.Height
}
