package tui

import (
	"bytes"
	"context"
	"image/color"
	"strings"
	"testing"

	"labyrinth/pkg/engine/input"
	"labyrinth/pkg/engine/world"
	"labyrinth/pkg/game/layout"
	"labyrinth/pkg/game/renderer"
)

func chain(n int, d world.Direction) *world.Graph {
	g := world.NewGraph(n)
	for i := 0; i < n; i++ {
		g.CreateRoom(color.RGBA{R: 10, G: 20, B: 30, A: 255})
	}
	for i := 0; i+1 < n; i++ {
		if _, err := g.Connect(world.RoomID(i), world.RoomID(i+1), d); err != nil {
			panic(err)
		}
	}
	return g
}

func TestFrame_EastChain(t *testing.T) {
	g := chain(3, world.East)
	lines := Frame(renderer.Scene{Graph: g, Placements: layout.SpanningTree.Traverse(g, 0)}, 3, 11)
	want := []string{"", "     ■─■─■"}
	if len(lines) != len(want) {
		t.Fatalf("Frame() = %q, want %q", lines, want)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestFrame_SouthChain(t *testing.T) {
	g := chain(2, world.South)
	lines := Frame(renderer.Scene{Graph: g, Placements: layout.SpanningTree.Traverse(g, 0)}, 5, 3)
	want := []string{"", "", " ■", " │", " ■"}
	if strings.Join(lines, "\n") != strings.Join(want, "\n") {
		t.Errorf("Frame() = %q, want %q", lines, want)
	}
}

func TestCanvas_CountsClippedRooms(t *testing.T) {
	g := chain(3, world.East)
	c := newCanvas(g, 1, 3)
	for p := range layout.SpanningTree.Traverse(g, 0) {
		c.place(p)
	}
	c.link()
	if c.placed != 3 || c.clipped != 2 {
		t.Errorf("placed, clipped = %d, %d, want 3, 2", c.placed, c.clipped)
	}
	if got := c.lines(plainCell); len(got) != 1 || got[0] != " ■─" {
		t.Errorf("lines = %q, want [\" ■─\"]", got)
	}
}

func TestCanvas_NoCorridorBetweenDistantRooms(t *testing.T) {
	g := chain(2, world.East)
	c := newCanvas(g, 1, 9)
	c.place(layout.Placement{Room: 0, At: world.Origin})
	c.place(layout.Placement{Room: 1, At: world.Coordinate{Col: 2 * world.Spacing}})
	c.link()
	if got := c.lines(plainCell); got[0] != "    ■   ■" {
		t.Errorf("lines = %q, want rooms without a corridor", got)
	}
}

func TestTUIRenderer_Render(t *testing.T) {
	var buf bytes.Buffer
	r := &TUIRenderer{Out: &buf, Rows: 3, Cols: 11}
	r.Init()
	g := chain(3, world.East)
	if err := r.Render(context.Background(), renderer.Scene{Graph: g, Placements: layout.SpanningTree.Traverse(g, 0)}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), IconRoom) {
		t.Errorf("output %q has no room glyph", buf.String())
	}
	if got := g.CountVisited(); got != 3 {
		t.Errorf("CountVisited() = %d, want 3", got)
	}
}

func TestTUIRenderer_ViewportOverride(t *testing.T) {
	r := &TUIRenderer{Rows: 7, Cols: 9}
	if rows, cols := r.GetViewportSize(); rows != 7 || cols != 9 {
		t.Errorf("GetViewportSize() = %d, %d, want 7, 9", rows, cols)
	}
}

func TestTUIRenderer_InteractivePansUntilQuit(t *testing.T) {
	keys := []input.Key{input.KeyRight, input.KeyOther, input.KeyQuit}
	var buf bytes.Buffer
	r := &TUIRenderer{
		Out:         &buf,
		Rows:        3,
		Cols:        11,
		Interactive: true,
		ReadKey: func() (input.Key, error) {
			k := keys[0]
			keys = keys[1:]
			return k, nil
		},
	}
	g := chain(3, world.East)
	if err := r.Render(context.Background(), renderer.Scene{Graph: g, Placements: layout.SpanningTree.Traverse(g, 0)}); err != nil {
		t.Fatal(err)
	}
	if len(keys) != 0 {
		t.Errorf("%d keys left unread", len(keys))
	}
	if got := strings.Count(buf.String(), clearScreen); got != 3 {
		t.Errorf("frames drawn = %d, want 3", got)
	}
	if got := strings.Count(buf.String(), IconRoom); got != 9 {
		t.Errorf("room glyphs = %d, want 9", got)
	}
}

func TestCanvas_Shift(t *testing.T) {
	g := chain(3, world.East)
	c := newCanvas(g, 1, 11)
	c.shiftCol = 5
	for p := range layout.SpanningTree.Traverse(g, 0) {
		c.place(p)
	}
	c.link()
	if got := c.lines(plainCell); got[0] != "■─■─■" {
		t.Errorf("lines = %q, want the chain at the left edge", got)
	}
}
