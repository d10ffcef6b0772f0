// Package export writes a laid-out labyrinth to files: a JSON dump of the
// placements and doors, the room graph in Graphviz DOT form, and SVG
// rendered from that DOT.
package export

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/goccy/go-graphviz"

	"labyrinth/pkg/engine/world"
	"labyrinth/pkg/game/layout"
)

type jsonOutput struct {
	Rooms      int             `json:"rooms"`
	Placements []jsonPlacement `json:"placements"`
	Edges      []jsonEdge      `json:"edges"`
}

type jsonPlacement struct {
	Room  int    `json:"room"`
	Row   int    `json:"row"`
	Col   int    `json:"col"`
	Color string `json:"color"`
}

type jsonEdge struct {
	From      int    `json:"from"`
	To        int    `json:"to"`
	Direction string `json:"direction"`
}

// WriteJSON writes the placements, in emission order, and every door of g
func WriteJSON(w io.Writer, g *world.Graph, placements []layout.Placement) error {
	out := jsonOutput{
		Rooms:      g.Len(),
		Placements: make([]jsonPlacement, 0, len(placements)),
		Edges:      []jsonEdge{},
	}
	for _, p := range placements {
		jp := jsonPlacement{Room: int(p.Room), Row: p.At.Row, Col: p.At.Col}
		if r := g.Room(p.Room); r != nil {
			jp.Color = hexColor(r)
		}
		out.Placements = append(out.Placements, jp)
	}
	for _, e := range g.Edges() {
		out.Edges = append(out.Edges, jsonEdge{From: int(e.From), To: int(e.To), Direction: e.Dir.String()})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// ToDOT converts the room graph to undirected Graphviz DOT. Placed rooms are
// pinned to their layout coordinates; edges are labelled with the direction
// they leave their first endpoint in.
func ToDOT(g *world.Graph, placements []layout.Placement) string {
	at := make(map[world.RoomID]world.Coordinate, len(placements))
	for _, p := range placements {
		if _, ok := at[p.Room]; !ok {
			at[p.Room] = p.At
		}
	}

	var buf bytes.Buffer
	buf.WriteString("graph labyrinth {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  bgcolor=\"white\";\n")
	buf.WriteString("  node [shape=square, style=filled, fixedsize=true, width=0.3, fontsize=8, fontcolor=white];\n")
	buf.WriteString("  edge [color=\"#646464\", fontsize=6];\n")
	buf.WriteString("\n")

	for r := range g.Rooms() {
		attrs := fmt.Sprintf("label=\"%d\", fillcolor=%q", r.ID, hexColor(r))
		if c, ok := at[r.ID]; ok {
			// DOT positions grow upwards
			attrs += fmt.Sprintf(", pos=\"%d,%d!\"", c.Col/world.Spacing, -c.Row/world.Spacing)
		}
		fmt.Fprintf(&buf, "  %d [%s];\n", r.ID, attrs)
	}

	buf.WriteString("\n")
	for _, e := range g.Edges() {
		fmt.Fprintf(&buf, "  %d -- %d [label=%q];\n", e.From, e.To, e.Dir.String())
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RenderSVG renders a DOT graph to SVG using Graphviz
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}

func hexColor(r *world.Room) string {
	return fmt.Sprintf("#%02x%02x%02x", r.Color.R, r.Color.G, r.Color.B)
}
