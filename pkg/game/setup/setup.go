// Package setup runs the labyrinth pipeline: build the rooms, generate the
// doors, lay the rooms out, hand the placements to the renderer and write the
// requested exports.
package setup

import (
	"context"
	"errors"
	"fmt"
	"iter"

	"github.com/zyedidia/generic/mapset"

	"labyrinth/pkg/engine/logging"
	"labyrinth/pkg/engine/random"
	"labyrinth/pkg/engine/world"
	"labyrinth/pkg/game/config"
	"labyrinth/pkg/game/generator"
	"labyrinth/pkg/game/layout"
	"labyrinth/pkg/game/palette"
	"labyrinth/pkg/game/renderer"
)

// ErrNoRooms is returned when asked to build a labyrinth without rooms
var ErrNoRooms = errors.New("room count must be positive")

// Stats summarizes a run
type Stats struct {
	Rooms      int
	Generation generator.Report
	Placed     int // placements the renderer consumed
	Overlaps   int // placements landing on an already used coordinate
	Reachable  int // rooms reachable from the root once layout is over
	Edges      int
}

// BuildGraph creates roomCount rooms, colored by colors, with no doors
func BuildGraph(roomCount int, colors palette.Provider) (*world.Graph, error) {
	if roomCount <= 0 {
		return nil, fmt.Errorf("%w, got %d", ErrNoRooms, roomCount)
	}
	if colors == nil {
		colors = palette.Solid(palette.Corridor)
	}
	g := world.NewGraph(roomCount)
	for i := 0; i < roomCount; i++ {
		g.CreateRoom(colors())
	}
	return g, nil
}

// Run executes one labyrinth run with cfg and the current renderer
func Run(ctx context.Context, cfg config.Config) (Stats, error) {
	var stats Stats
	if err := cfg.Validate(); err != nil {
		return stats, fmt.Errorf("invalid configuration: %w", err)
	}
	logger := logging.FromContext(ctx)
	src := random.New(cfg.Seed)

	phase := logging.StartPhase(logger, "build")
	g, err := BuildGraph(cfg.RoomCount, palette.Random(src))
	if err != nil {
		return stats, err
	}
	stats.Rooms = g.Len()
	phase.Done("rooms created", "rooms", stats.Rooms)

	traverser, err := layout.TraverserByName(cfg.Traversal, src, cfg.WalkMaxAttempts, cfg.WalkUnbounded)
	if err != nil {
		return stats, err
	}

	// The path walk creates its own doors while it walks
	if traverser.Name() != layout.NamePathWalk {
		policy, err := generator.PolicyByName(cfg.Connection)
		if err != nil {
			return stats, err
		}
		phase = logging.StartPhase(logger, "generate")
		b := generator.Builder{Policy: policy, MaxRetries: cfg.MaxRetries, Rand: src}
		stats.Generation = b.Generate(g)
		phase.Done("doors generated",
			"policy", policy.Name(),
			"connected", stats.Generation.Connected,
			"abandoned", stats.Generation.Abandoned,
			"attempts", stats.Generation.Attempts)
	}

	root := world.RoomID(cfg.Root)
	t := newTally(cfg.Export.Requested())
	phase = logging.StartPhase(logger, "layout")
	scene := renderer.Scene{Graph: g, Placements: t.wrap(traverser.Traverse(g, root))}
	if err := renderer.Render(ctx, scene); err != nil {
		return stats, fmt.Errorf("render: %w", err)
	}
	stats.Placed = t.placed
	stats.Overlaps = t.overlaps
	stats.Reachable = g.Reachable(root)
	stats.Edges = len(g.Edges())
	phase.Done("rooms laid out",
		"traversal", traverser.Name(),
		"placed", stats.Placed,
		"reachable", stats.Reachable,
		"overlaps", stats.Overlaps)

	if cfg.Export.Requested() {
		phase = logging.StartPhase(logger, "export")
		if err := writeExports(ctx, cfg.Export, g, t.placements); err != nil {
			return stats, err
		}
		phase.Done("exports written")
	}

	logger.Debug("run finished",
		"rooms", stats.Rooms,
		"edges", stats.Edges,
		"placed", stats.Placed)
	return stats, nil
}

// tally watches placements on their way to the renderer
type tally struct {
	keep       bool
	placements []layout.Placement
	spots      mapset.Set[world.Coordinate]
	placed     int
	overlaps   int
}

func newTally(keep bool) *tally {
	return &tally{keep: keep, spots: mapset.New[world.Coordinate]()}
}

func (t *tally) wrap(seq iter.Seq[layout.Placement]) iter.Seq[layout.Placement] {
	return func(yield func(layout.Placement) bool) {
		for p := range seq {
			t.placed++
			if t.spots.Has(p.At) {
				t.overlaps++
			} else {
				t.spots.Put(p.At)
			}
			if t.keep {
				t.placements = append(t.placements, p)
			}
			if !yield(p) {
				return
			}
		}
	}
}
