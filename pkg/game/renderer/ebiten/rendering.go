package ebiten

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"labyrinth/pkg/game/layout"
)

// drawPlacement paints a room square and a corridor stub for each of its doors
func (e *EbitenRenderer) drawPlacement(p layout.Placement) {
	room := e.graph.Room(p.Room)
	if room == nil {
		return
	}
	fillRect(e.canvas, e.geometry.Room(p.At), room.Color)
	for _, r := range e.geometry.Corridors(p.At, room) {
		fillRect(e.canvas, r, colorCorridor)
	}
	e.drawn++
}

// fillRect draws r onto dst; rectangles off the canvas are clipped by Ebiten
func fillRect(dst *ebiten.Image, r image.Rectangle, clr color.Color) {
	if r.Empty() {
		return
	}
	vector.DrawFilledRect(dst, float32(r.Min.X), float32(r.Min.Y),
		float32(r.Dx()), float32(r.Dy()), clr, false)
}
