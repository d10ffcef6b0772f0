// Package layout assigns planar coordinates to rooms by walking the room
// graph from a root. Traversals are lazy: placements are produced one at a
// time and production stops as soon as the consumer stops ranging.
package layout

import (
	"fmt"
	"iter"
	"strings"

	"labyrinth/pkg/engine/random"
	"labyrinth/pkg/engine/world"
)

// Placement is a room and the coordinate it was laid out at
type Placement struct {
	Room world.RoomID
	At   world.Coordinate
}

// Traverser is a layout policy
type Traverser interface {
	// Traverse resets the visited flags when iteration starts and yields
	// every placed room once. The sequence can only be ranged over once.
	Traverse(g *world.Graph, root world.RoomID) iter.Seq[Placement]
	Name() string
}

// Traverser names
const (
	NameSpanningTree   = "spanning-tree"
	NameSpanningForest = "spanning-forest"
	NamePathWalk       = "path-walk"
)

// Available traversers that need no configuration
var (
	SpanningTree   = &SpanningTreeTraverser{}
	SpanningForest = &SpanningForestTraverser{}
)

// DefaultTraverser is the default layout policy
var DefaultTraverser Traverser = SpanningTree

// TraverserByName builds the named traverser. The path walk draws from src
// and gives up a step after maxAttempts failed connections unless unbounded.
func TraverserByName(name string, src random.Source, maxAttempts int, unbounded bool) (Traverser, error) {
	switch strings.ToLower(name) {
	case NameSpanningTree:
		return SpanningTree, nil
	case NameSpanningForest:
		return SpanningForest, nil
	case NamePathWalk:
		return &PathWalkTraverser{Rand: src, MaxAttempts: maxAttempts, Unbounded: unbounded}, nil
	}
	return nil, fmt.Errorf("unknown traversal policy %q", name)
}

// once makes a sequence single-use
func once(seq iter.Seq[Placement]) iter.Seq[Placement] {
	used := false
	return func(yield func(Placement) bool) {
		if used {
			return
		}
		used = true
		seq(yield)
	}
}
