// Package tui provides the terminal renderer: one glyph per room in the
// room's own color, with corridor glyphs between rooms laid out side by side.
package tui

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"labyrinth/pkg/engine/input"
	"labyrinth/pkg/engine/terminal"
	"labyrinth/pkg/engine/world"
	"labyrinth/pkg/game/config"
	"labyrinth/pkg/game/layout"
	"labyrinth/pkg/game/renderer"
)

// Glyphs
const (
	IconRoom       = "■"
	IconCorridorEW = "─"
	IconCorridorNS = "│"
	IconVoid       = " "
)

const clearScreen = "\033[H\033[2J"

// Lines kept free around the map for the header and the prompt
const ViewportTopMargin = 4

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	Out io.Writer

	// Rows and Cols bound the map; zero means the terminal size
	Rows int
	Cols int

	// Interactive keeps the map on screen for panning; ReadKey replaces
	// the terminal as the key source when set
	Interactive bool
	ReadKey     func() (input.Key, error)

	colorCorridor color.Style
	colorSubtle   color.Style
}

// New creates a new TUI renderer writing to stdout, interactive when
// attached to a terminal
func New() *TUIRenderer {
	return &TUIRenderer{Out: os.Stdout, Interactive: input.IsInteractive()}
}

// Name returns the name of this renderer
func (t *TUIRenderer) Name() string {
	return config.RendererTUI
}

// Init initializes the colors
func (t *TUIRenderer) Init() {
	t.colorCorridor = color.Style{color.FgGray}
	t.colorSubtle = color.Style{color.FgGray, color.OpBold}
}

// Render collects every placement and prints the map. When Interactive is
// set the map can be panned with the arrow keys until q is pressed.
func (t *TUIRenderer) Render(ctx context.Context, scene renderer.Scene) error {
	var placements []layout.Placement
	for p := range scene.Placements {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		placements = append(placements, p)
	}

	var shiftRow, shiftCol int
	for {
		rows, cols := t.GetViewportSize()
		c := newCanvas(scene.Graph, rows, cols)
		c.shiftRow, c.shiftCol = shiftRow, shiftCol
		for _, p := range placements {
			c.place(p)
		}
		c.link()
		if err := t.print(c); err != nil {
			return err
		}
		if !t.Interactive {
			return nil
		}

		key, err := t.readKey()
		if err != nil {
			return err
		}
		switch key {
		case input.KeyQuit:
			return nil
		case input.KeyUp:
			shiftRow -= rows / 2
		case input.KeyDown:
			shiftRow += rows / 2
		case input.KeyLeft:
			shiftCol -= cols / 2
		case input.KeyRight:
			shiftCol += cols / 2
		}
		if ctx.Err() != nil {
			return nil
		}
	}
}

// print writes the header and the map
func (t *TUIRenderer) print(c *canvas) error {
	if t.Interactive {
		fmt.Fprint(t.Out, clearScreen)
	}
	header := fmt.Sprintf(gotext.Get("TUI_HEADER"), c.placed, c.clipped)
	if _, err := fmt.Fprintln(t.Out, t.colorSubtle.Sprint(header)); err != nil {
		return err
	}
	for _, line := range c.lines(t.styleCell) {
		if _, err := fmt.Fprintln(t.Out, line); err != nil {
			return err
		}
	}
	if t.Interactive {
		fmt.Fprintln(t.Out, t.colorSubtle.Sprint(gotext.Get("TUI_PROMPT")))
	}
	return nil
}

func (t *TUIRenderer) readKey() (input.Key, error) {
	if t.ReadKey != nil {
		return t.ReadKey()
	}
	return input.ReadKey()
}

// GetViewportSize returns the map dimensions in characters
func (t *TUIRenderer) GetViewportSize() (rows, cols int) {
	rows, cols = t.Rows, t.Cols
	if rows > 0 && cols > 0 {
		return rows, cols
	}
	width, height := terminal.GetSize()
	if rows <= 0 {
		rows = height - ViewportTopMargin
	}
	if cols <= 0 {
		cols = width
	}
	return max(rows, 1), max(cols, 1)
}

// styleCell colors a canvas cell
func (t *TUIRenderer) styleCell(c cell, g *world.Graph) string {
	switch c.glyph {
	case IconRoom:
		rc := g.Room(c.room).Color
		return color.RGB(rc.R, rc.G, rc.B).Sprint(c.glyph)
	case IconCorridorEW, IconCorridorNS:
		return t.colorCorridor.Sprint(c.glyph)
	default:
		return c.glyph
	}
}

// plainCell renders a cell without colors
func plainCell(c cell, _ *world.Graph) string {
	return c.glyph
}

// Frame lays out the scene into at most rows x cols characters without colors
func Frame(scene renderer.Scene, rows, cols int) []string {
	c := newCanvas(scene.Graph, rows, cols)
	for p := range scene.Placements {
		c.place(p)
	}
	c.link()
	return c.lines(plainCell)
}

// lines renders each canvas row, dropping trailing blanks
func (c *canvas) lines(style func(cell, *world.Graph) string) []string {
	out := make([]string, 0, c.rows)
	for r := 0; r < c.rows; r++ {
		var b strings.Builder
		for col := 0; col < c.cols; col++ {
			b.WriteString(style(c.cells[r][col], c.graph))
		}
		out = append(out, strings.TrimRight(b.String(), IconVoid))
	}
	for len(out) > 0 && out[len(out)-1] == "" {
		out = out[:len(out)-1]
	}
	return out
}
