package layout

import (
	"iter"

	"github.com/zyedidia/generic/stack"

	"labyrinth/pkg/engine/world"
)

// SpanningTreeTraverser places every room reachable from the root in
// depth-first pre-order, trying doors in canonical order.
type SpanningTreeTraverser struct{}

// Name returns the name of this traverser
func (t *SpanningTreeTraverser) Name() string {
	return NameSpanningTree
}

// Traverse lays out the component of root, root at the origin
func (t *SpanningTreeTraverser) Traverse(g *world.Graph, root world.RoomID) iter.Seq[Placement] {
	return once(func(yield func(Placement) bool) {
		g.ResetVisited()
		walkTree(g, root, world.Origin, yield)
	})
}

// SpanningForestTraverser lays out the root's component and then every room
// still unplaced, in creation order, each new component starting at the
// origin again. Rooms of different components may share coordinates.
type SpanningForestTraverser struct{}

// Name returns the name of this traverser
func (t *SpanningForestTraverser) Name() string {
	return NameSpanningForest
}

// Traverse lays out every room of g
func (t *SpanningForestTraverser) Traverse(g *world.Graph, root world.RoomID) iter.Seq[Placement] {
	return once(func(yield func(Placement) bool) {
		g.ResetVisited()
		if !walkTree(g, root, world.Origin, yield) {
			return
		}
		for r := range g.Rooms() {
			if !walkTree(g, r.ID, world.Origin, yield) {
				return
			}
		}
	})
}

// frame is one room on the depth-first worklist and the next door to try
type frame struct {
	room world.RoomID
	at   world.Coordinate
	next int
}

// walkTree is a depth-first descent with an explicit stack. It visits rooms in
// the same order as the recursive form: a neighbor is checked for a visit only
// when its door's turn comes, after the subtrees of earlier doors.
// It returns false if yield asked to stop.
func walkTree(g *world.Graph, root world.RoomID, at world.Coordinate, yield func(Placement) bool) bool {
	r := g.Room(root)
	if r == nil || r.Visited {
		return true
	}
	r.Visited = true
	if !yield(Placement{Room: root, At: at}) {
		return false
	}

	dirs := world.AllDirections()
	s := stack.New[*frame]()
	s.Push(&frame{room: root, at: at})
	for s.Size() > 0 {
		top := s.Peek()
		if top.next == len(dirs) {
			s.Pop()
			continue
		}
		d := dirs[top.next]
		top.next++

		id, ok := g.Neighbor(top.room, d)
		if !ok {
			continue
		}
		n := g.Room(id)
		if n.Visited {
			continue
		}
		n.Visited = true
		p := Placement{Room: id, At: top.at.Step(d)}
		if !yield(p) {
			return false
		}
		s.Push(&frame{room: id, at: p.At})
	}
	return true
}
