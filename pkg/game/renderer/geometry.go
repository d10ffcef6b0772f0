// Package renderer defines the drawing backends' interface and the pixel
// geometry they share.
package renderer

import (
	"image"

	"labyrinth/pkg/engine/world"
)

// Geometry maps layout coordinates to pixels
type Geometry struct {
	Origin       image.Point // pixel position of world.Origin
	RoomSize     int
	CorridorSize int
}

// Room returns the square a room placed at c occupies
func (g Geometry) Room(c world.Coordinate) image.Rectangle {
	min := g.Origin.Add(image.Pt(c.Col, c.Row))
	return image.Rectangle{Min: min, Max: min.Add(image.Pt(g.RoomSize, g.RoomSize))}
}

// Corridor returns the stub drawn on the side of a room facing d,
// centered on that side and just outside the room square
func (g Geometry) Corridor(c world.Coordinate, d world.Direction) image.Rectangle {
	room := g.Room(c)
	mid := (g.RoomSize - g.CorridorSize) / 2
	var min image.Point
	switch d {
	case world.North:
		min = image.Pt(room.Min.X+mid, room.Min.Y-g.CorridorSize)
	case world.South:
		min = image.Pt(room.Min.X+mid, room.Max.Y)
	case world.East:
		min = image.Pt(room.Max.X, room.Min.Y+mid)
	case world.West:
		min = image.Pt(room.Min.X-g.CorridorSize, room.Min.Y+mid)
	default:
		return image.Rectangle{}
	}
	return image.Rectangle{Min: min, Max: min.Add(image.Pt(g.CorridorSize, g.CorridorSize))}
}

// Corridors returns the stubs for every door a room has
func (g Geometry) Corridors(c world.Coordinate, r *world.Room) []image.Rectangle {
	var rects []image.Rectangle
	for d := range r.Doors() {
		rects = append(rects, g.Corridor(c, d))
	}
	return rects
}
