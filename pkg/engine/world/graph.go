package world

import (
	"errors"
	"image/color"
	"iter"

	"github.com/zyedidia/generic/queue"
)

// Connection failures. They are expected outcomes of random sampling and
// callers are meant to retry or give up, not report them.
var (
	ErrSameRoom          = errors.New("room cannot connect to itself")
	ErrAlreadyConnected  = errors.New("rooms are already connected")
	ErrNoFreeDirection   = errors.New("no free direction pair")
	ErrInvalidDirection  = errors.New("door is occupied or direction is invalid")
	ErrDirectionOccupied = errors.New("opposite door is occupied")
	ErrUnknownRoom       = errors.New("unknown room")
)

// Edge is an undirected connection, reported from the side whose door is Dir
type Edge struct {
	From RoomID
	To   RoomID
	Dir  Direction
}

// Graph owns every room of a run in a contiguous arena.
// Pointers returned by Room stay valid until the next CreateRoom.
type Graph struct {
	rooms []Room
}

// NewGraph creates an empty graph with room for capacity rooms
func NewGraph(capacity int) *Graph {
	if capacity < 0 {
		capacity = 0
	}
	return &Graph{rooms: make([]Room, 0, capacity)}
}

// CreateRoom adds an unconnected room and returns its id
func (g *Graph) CreateRoom(c color.RGBA) RoomID {
	id := RoomID(len(g.rooms))
	g.rooms = append(g.rooms, newRoom(id, c))
	return id
}

// Len returns the number of rooms
func (g *Graph) Len() int {
	return len(g.rooms)
}

// Has returns true if id names a room of this graph
func (g *Graph) Has(id RoomID) bool {
	return id >= 0 && int(id) < len(g.rooms)
}

// Room returns the room with the given id, or nil
func (g *Graph) Room(id RoomID) *Room {
	if !g.Has(id) {
		return nil
	}
	return &g.rooms[id]
}

// Rooms yields every room in creation order
func (g *Graph) Rooms() iter.Seq[*Room] {
	return func(yield func(*Room) bool) {
		for i := range g.rooms {
			if !yield(&g.rooms[i]) {
				return
			}
		}
	}
}

// Neighbor returns the room behind a's door in direction d
func (g *Graph) Neighbor(a RoomID, d Direction) (RoomID, bool) {
	id := g.Room(a).Door(d)
	return id, id != NoRoom
}

// Degree returns the number of neighbors of a room
func (g *Graph) Degree(id RoomID) int {
	if r := g.Room(id); r != nil {
		return r.Degree()
	}
	return 0
}

// Connect links a and b with a symmetric pair of doors.
//
// With AnyDirection the first direction d, in canonical order, where a's d
// door and b's opposite door are both empty is used. With a cardinal
// direction only that pair is tried. The chosen direction, as seen from a,
// is returned. A failed call leaves both rooms untouched.
func (g *Graph) Connect(a, b RoomID, dir Direction) (Direction, error) {
	if a == b {
		return AnyDirection, ErrSameRoom
	}
	ra, rb := g.Room(a), g.Room(b)
	if ra == nil || rb == nil {
		return AnyDirection, ErrUnknownRoom
	}
	if ra.ConnectedTo(b) {
		return AnyDirection, ErrAlreadyConnected
	}

	if dir == AnyDirection {
		for _, d := range AllDirections() {
			if ra.doors[d] == NoRoom && rb.doors[d.Opposite()] == NoRoom {
				link(ra, rb, d)
				return d, nil
			}
		}
		return AnyDirection, ErrNoFreeDirection
	}

	if !dir.IsValid() || ra.doors[dir] != NoRoom {
		return AnyDirection, ErrInvalidDirection
	}
	if rb.doors[dir.Opposite()] != NoRoom {
		return AnyDirection, ErrDirectionOccupied
	}
	link(ra, rb, dir)
	return dir, nil
}

// link writes both halves of an edge; callers have checked both doors are free
func link(a, b *Room, d Direction) {
	a.doors[d] = b.ID
	b.doors[d.Opposite()] = a.ID
}

// ResetVisited clears the traversal flag on every room
func (g *Graph) ResetVisited() {
	for i := range g.rooms {
		g.rooms[i].Visited = false
	}
}

// CountVisited returns how many rooms carry the traversal flag
func (g *Graph) CountVisited() int {
	n := 0
	for i := range g.rooms {
		if g.rooms[i].Visited {
			n++
		}
	}
	return n
}

// Edges returns every edge once, from the endpoint whose door is North or East
func (g *Graph) Edges() []Edge {
	var edges []Edge
	for i := range g.rooms {
		r := &g.rooms[i]
		for _, d := range []Direction{North, East} {
			if to := r.doors[d]; to != NoRoom {
				edges = append(edges, Edge{From: r.ID, To: to, Dir: d})
			}
		}
	}
	return edges
}

// Reachable counts the rooms reachable from root through doors, root included
func (g *Graph) Reachable(root RoomID) int {
	if !g.Has(root) {
		return 0
	}
	seen := make([]bool, len(g.rooms))
	q := queue.New[RoomID]()
	q.Enqueue(root)
	seen[root] = true
	count := 0
	for !q.Empty() {
		current := q.Dequeue()
		count++
		for _, next := range g.rooms[current].doors {
			if next != NoRoom && !seen[next] {
				seen[next] = true
				q.Enqueue(next)
			}
		}
	}
	return count
}
