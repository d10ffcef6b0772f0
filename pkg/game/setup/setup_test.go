package setup

import (
	"context"
	"encoding/json"
	"errors"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"labyrinth/pkg/engine/logging"
	"labyrinth/pkg/game/config"
	"labyrinth/pkg/game/layout"
	"labyrinth/pkg/game/palette"
	"labyrinth/pkg/game/renderer"
)

func quietContext() context.Context {
	return logging.WithLogger(context.Background(), logging.New(io.Discard, log.DebugLevel))
}

func testConfig(traversal string) config.Config {
	cfg := config.Default()
	cfg.RoomCount = 200
	cfg.Seed = 7
	cfg.Traversal = traversal
	cfg.Renderer = config.RendererNone
	return cfg
}

func TestBuildGraph_RejectsEmpty(t *testing.T) {
	for _, n := range []int{0, -3} {
		if _, err := BuildGraph(n, nil); !errors.Is(err, ErrNoRooms) {
			t.Errorf("BuildGraph(%d) error = %v, want ErrNoRooms", n, err)
		}
	}
}

func TestBuildGraph_RoomsHaveNoDoors(t *testing.T) {
	c := color.RGBA{R: 1, G: 2, B: 3, A: 255}
	g, err := BuildGraph(5, palette.Solid(c))
	if err != nil {
		t.Fatal(err)
	}
	if g.Len() != 5 {
		t.Fatalf("Len() = %d, want 5", g.Len())
	}
	for r := range g.Rooms() {
		if r.Color != c {
			t.Errorf("room %d color = %v, want %v", r.ID, r.Color, c)
		}
		if r.Degree() != 0 {
			t.Errorf("room %d degree = %d, want 0", r.ID, r.Degree())
		}
	}
}

func TestRun_SpanningTreePlacesReachableRooms(t *testing.T) {
	renderer.SetRenderer(nil)
	stats, err := Run(quietContext(), testConfig(layout.NameSpanningTree))
	require.NoError(t, err)

	assert.Equal(t, 200, stats.Rooms)
	assert.Equal(t, 200, stats.Generation.Initiators)
	assert.Equal(t, stats.Generation.Connected, stats.Edges)
	assert.Equal(t, stats.Reachable, stats.Placed)
	assert.GreaterOrEqual(t, stats.Placed, 1)
}

func TestRun_SpanningForestPlacesEveryRoom(t *testing.T) {
	renderer.SetRenderer(nil)
	stats, err := Run(quietContext(), testConfig(layout.NameSpanningForest))
	require.NoError(t, err)
	assert.Equal(t, 200, stats.Placed)
}

func TestRun_PathWalkSkipsGeneration(t *testing.T) {
	renderer.SetRenderer(nil)
	stats, err := Run(quietContext(), testConfig(layout.NamePathWalk))
	require.NoError(t, err)

	assert.Zero(t, stats.Generation.Initiators)
	assert.GreaterOrEqual(t, stats.Placed, 1)
	assert.LessOrEqual(t, stats.Placed, stats.Reachable)
}

func TestRun_SameSeedSameStats(t *testing.T) {
	renderer.SetRenderer(nil)
	first, err := Run(quietContext(), testConfig(layout.NameSpanningTree))
	require.NoError(t, err)
	second, err := Run(quietContext(), testConfig(layout.NameSpanningTree))
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRun_InvalidConfig(t *testing.T) {
	cfg := testConfig(layout.NameSpanningTree)
	cfg.RoomCount = 0
	_, err := Run(quietContext(), cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "room count")
}

func TestRun_WritesExports(t *testing.T) {
	renderer.SetRenderer(nil)
	dir := t.TempDir()
	cfg := testConfig(layout.NameSpanningTree)
	cfg.Export.JSON = filepath.Join(dir, "labyrinth.json")
	cfg.Export.DOT = filepath.Join(dir, "labyrinth.dot")

	stats, err := Run(quietContext(), cfg)
	require.NoError(t, err)

	data, err := os.ReadFile(cfg.Export.JSON)
	require.NoError(t, err)
	var dump struct {
		Rooms      int               `json:"rooms"`
		Placements []json.RawMessage `json:"placements"`
		Edges      []json.RawMessage `json:"edges"`
	}
	require.NoError(t, json.Unmarshal(data, &dump))
	assert.Equal(t, 200, dump.Rooms)
	assert.Len(t, dump.Placements, stats.Placed)
	assert.Len(t, dump.Edges, stats.Edges)

	dot, err := os.ReadFile(cfg.Export.DOT)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(dot), "graph labyrinth {"))
}
