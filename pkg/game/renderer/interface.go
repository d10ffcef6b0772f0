package renderer

import (
	"context"
	"iter"

	"labyrinth/pkg/engine/world"
	"labyrinth/pkg/game/layout"
)

// Scene is what a renderer draws: the graph and the lazy placement sequence
type Scene struct {
	Graph      *world.Graph
	Placements iter.Seq[layout.Placement]
}

// Renderer defines the interface for drawing backends.
// Implementations include the Ebiten window and the terminal.
type Renderer interface {
	// Init prepares the backend (window, colors, etc.)
	Init()

	// Render consumes placements until the sequence ends, then keeps
	// presenting the result until the user quits or ctx is done.
	// A backend may stop consuming early when the user quits.
	Render(ctx context.Context, scene Scene) error

	Name() string
}

// Current holds the active renderer instance
var Current Renderer

// SetRenderer sets the active renderer
func SetRenderer(r Renderer) {
	Current = r
}

// Init initializes the current renderer
func Init() {
	if Current != nil {
		Current.Init()
	}
}

// Render draws scene with the current renderer, or just drains the
// placements when there is none
func Render(ctx context.Context, scene Scene) error {
	if Current != nil {
		return Current.Render(ctx, scene)
	}
	return Discard.Render(ctx, scene)
}

// Discard consumes placements without drawing them
var Discard Renderer = discard{}

type discard struct{}

func (discard) Init() {}

func (discard) Name() string { return "none" }

func (discard) Render(ctx context.Context, scene Scene) error {
	for range scene.Placements {
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
	return nil
}
