// Package world provides the room graph primitives: rooms with four
// directional doors, the arena that owns them, and layout coordinates.
package world

import (
	"image/color"
	"iter"
)

// RoomID identifies a room inside the Graph that created it
type RoomID int

// NoRoom marks an empty door
const NoRoom RoomID = -1

// Room is a graph node with one door slot per direction.
// Doors hold the id of the neighbor, never the neighbor itself.
type Room struct {
	ID    RoomID
	Color color.RGBA

	// Visited is owned by layout traversals and reset when one starts
	Visited bool

	doors [numDirections]RoomID
}

func newRoom(id RoomID, c color.RGBA) Room {
	r := Room{ID: id, Color: c}
	for i := range r.doors {
		r.doors[i] = NoRoom
	}
	return r
}

// Door returns the neighbor behind the door in the given direction, or NoRoom
func (r *Room) Door(d Direction) RoomID {
	if r == nil || !d.IsValid() {
		return NoRoom
	}
	return r.doors[d]
}

// HasDoor returns true if the door in the given direction leads somewhere
func (r *Room) HasDoor(d Direction) bool {
	return r.Door(d) != NoRoom
}

// Doors yields the occupied doors in canonical order
func (r *Room) Doors() iter.Seq2[Direction, RoomID] {
	return func(yield func(Direction, RoomID) bool) {
		for _, d := range AllDirections() {
			if r.doors[d] == NoRoom {
				continue
			}
			if !yield(d, r.doors[d]) {
				return
			}
		}
	}
}

// Degree returns the number of occupied doors
func (r *Room) Degree() int {
	n := 0
	for _, id := range r.doors {
		if id != NoRoom {
			n++
		}
	}
	return n
}

// ConnectedTo returns true if any door of r leads to other
func (r *Room) ConnectedTo(other RoomID) bool {
	for _, id := range r.doors {
		if id == other {
			return true
		}
	}
	return false
}

// IsSaturated returns true when every door is occupied
func (r *Room) IsSaturated() bool {
	return r.Degree() == numDirections
}
