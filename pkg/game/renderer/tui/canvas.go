package tui

import (
	"labyrinth/pkg/engine/world"
	"labyrinth/pkg/game/layout"
)

type cell struct {
	glyph string
	room  world.RoomID
}

// canvas is a character grid at twice the layout resolution: rooms sit on
// even cells and corridors on the odd cells between them. world.Origin maps
// to the grid center.
type canvas struct {
	graph      *world.Graph
	rows, cols int
	cells      [][]cell
	at         map[world.RoomID]world.Coordinate

	// panning offset in grid cells
	shiftRow, shiftCol int

	placed  int
	clipped int
}

func newCanvas(g *world.Graph, rows, cols int) *canvas {
	c := &canvas{
		graph: g,
		rows:  max(rows, 0),
		cols:  max(cols, 0),
		at:    make(map[world.RoomID]world.Coordinate),
	}
	c.cells = make([][]cell, c.rows)
	for r := range c.cells {
		c.cells[r] = make([]cell, c.cols)
		for col := range c.cells[r] {
			c.cells[r][col] = cell{glyph: IconVoid, room: world.NoRoom}
		}
	}
	return c
}

// cellOf returns the grid position of a layout coordinate
func (c *canvas) cellOf(at world.Coordinate) (row, col int) {
	return c.rows/2 + 2*at.Row/world.Spacing - c.shiftRow, c.cols/2 + 2*at.Col/world.Spacing - c.shiftCol
}

func (c *canvas) inside(row, col int) bool {
	return row >= 0 && row < c.rows && col >= 0 && col < c.cols
}

// place records a room; rooms outside the grid are counted as clipped
func (c *canvas) place(p layout.Placement) {
	c.placed++
	c.at[p.Room] = p.At
	row, col := c.cellOf(p.At)
	if !c.inside(row, col) {
		c.clipped++
		return
	}
	c.cells[row][col] = cell{glyph: IconRoom, room: p.Room}
}

// link draws a corridor for every door whose two rooms were placed next to
// each other on that side
func (c *canvas) link() {
	for _, e := range c.graph.Edges() {
		from, ok := c.at[e.From]
		if !ok {
			continue
		}
		to, ok := c.at[e.To]
		if !ok || from.Step(e.Dir) != to {
			continue
		}
		r1, c1 := c.cellOf(from)
		r2, c2 := c.cellOf(to)
		row, col := (r1+r2)/2, (c1+c2)/2
		if !c.inside(row, col) {
			continue
		}
		glyph := IconCorridorEW
		if e.Dir == world.North || e.Dir == world.South {
			glyph = IconCorridorNS
		}
		c.cells[row][col] = cell{glyph: glyph, room: world.NoRoom}
	}
}
