package layout

import (
	"iter"

	"labyrinth/pkg/engine/random"
	"labyrinth/pkg/engine/world"
)

// DefaultWalkAttempts is the per-step connection budget of a bounded path walk
const DefaultWalkAttempts = 1000

// PathWalkTraverser builds edges while it lays rooms out. From the current
// room it picks a random direction, connects a random candidate through it,
// and moves there. The result is one winding path.
//
// A bounded walk ends when a step exhausts MaxAttempts. With Unbounded set a
// step retries until a connection lands, which never happens once the
// current room's drawn door is occupied; it is opt-in for that reason.
type PathWalkTraverser struct {
	Rand        random.Source
	MaxAttempts int
	Unbounded   bool
}

// Name returns the name of this traverser
func (t *PathWalkTraverser) Name() string {
	return NamePathWalk
}

// Traverse walks from root until every room is placed or a step fails
func (t *PathWalkTraverser) Traverse(g *world.Graph, root world.RoomID) iter.Seq[Placement] {
	return once(func(yield func(Placement) bool) {
		g.ResetVisited()
		if !g.Has(root) {
			return
		}
		src := t.Rand
		if src == nil {
			src = random.New(0)
		}

		current, at := root, world.Origin
		placed := 0
		for {
			r := g.Room(current)
			if !r.Visited {
				r.Visited = true
				placed++
				if !yield(Placement{Room: current, At: at}) {
					return
				}
			}
			if placed == g.Len() {
				return
			}

			d, ok := t.direction(r, src)
			if !ok {
				return
			}
			next, ok := t.connect(g, current, d, src)
			if !ok {
				return
			}
			current, at = next, at.Step(d)
		}
	})
}

// direction draws the step direction. A bounded walk redraws until it hits a
// free door and stops at a saturated room.
func (t *PathWalkTraverser) direction(r *world.Room, src random.Source) (world.Direction, bool) {
	d := random.Direction(src)
	if t.Unbounded {
		return d, true
	}
	if r.IsSaturated() {
		return world.AnyDirection, false
	}
	for r.HasDoor(d) {
		d = random.Direction(src)
	}
	return d, true
}

// connect links from to a random candidate through d
func (t *PathWalkTraverser) connect(g *world.Graph, from world.RoomID, d world.Direction, src random.Source) (world.RoomID, bool) {
	limit := t.MaxAttempts
	if limit <= 0 {
		limit = DefaultWalkAttempts
	}
	for attempt := 0; t.Unbounded || attempt < limit; attempt++ {
		candidate := random.Room(src, g)
		if _, err := g.Connect(from, candidate, d); err == nil {
			return candidate, true
		}
	}
	return world.NoRoom, false
}
