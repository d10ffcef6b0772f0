// Package config holds the run configuration: defaults, an optional TOML
// file, and validation at the program boundary.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"labyrinth/pkg/game/generator"
	"labyrinth/pkg/game/layout"
)

// Defaults
const (
	DefaultRoomCount = 8000
	DefaultSeed      = 0 // seed from the clock
)

// Renderer names
const (
	RendererEbiten = "ebiten"
	RendererTUI    = "tui"
	RendererNone   = "none"
)

// Window configures the graphical sink
type Window struct {
	Title        string `toml:"title"`
	Width        int    `toml:"width"`
	Height       int    `toml:"height"`
	RoomSize     int    `toml:"room_size"`     // pixels per room square
	CorridorSize int    `toml:"corridor_size"` // pixels per corridor stub
	TPS          int    `toml:"tps"`
	PerFrame     int    `toml:"per_frame"` // placements drawn per tick, 0 draws all at once
}

// Export configures the file sinks; empty paths are skipped
type Export struct {
	JSON string `toml:"json"`
	DOT  string `toml:"dot"`
	SVG  string `toml:"svg"`
}

// Requested reports whether any export path is set
func (e Export) Requested() bool {
	return e.JSON != "" || e.DOT != "" || e.SVG != ""
}

// Config is the full configuration surface of a run
type Config struct {
	RoomCount       int    `toml:"room_count"`
	MaxRetries      int    `toml:"max_retries"`
	Connection      string `toml:"connection"`
	Traversal       string `toml:"traversal"`
	WalkMaxAttempts int    `toml:"walk_max_attempts"`
	WalkUnbounded   bool   `toml:"walk_unbounded"`
	Root            int    `toml:"root"`
	Seed            int64  `toml:"seed"`
	Renderer        string `toml:"renderer"`
	Window          Window `toml:"window"`
	Export          Export `toml:"export"`
}

// Default returns the configuration used when nothing is specified
func Default() Config {
	return Config{
		RoomCount:       DefaultRoomCount,
		MaxRetries:      generator.DefaultMaxRetries,
		Connection:      generator.DefaultPolicy.Name(),
		Traversal:       layout.DefaultTraverser.Name(),
		WalkMaxAttempts: layout.DefaultWalkAttempts,
		Seed:            DefaultSeed,
		Renderer:        RendererEbiten,
		Window: Window{
			Title:        "Object Oriented Labyrinth",
			Width:        1000,
			Height:       1000,
			RoomSize:     8,
			CorridorSize: 2,
			TPS:          60,
		},
	}
}

// Load returns the defaults overlaid with the TOML file at path, if any.
// Keys the file sets but Config does not know are an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return cfg, fmt.Errorf("read config %s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	return cfg, nil
}

// Validate rejects configurations the core cannot run with
func (c Config) Validate() error {
	var errs []error
	if c.RoomCount <= 0 {
		errs = append(errs, fmt.Errorf("room count must be positive, got %d", c.RoomCount))
	}
	if c.MaxRetries <= 0 {
		errs = append(errs, fmt.Errorf("max retries must be positive, got %d", c.MaxRetries))
	}
	if c.WalkMaxAttempts < 0 {
		errs = append(errs, fmt.Errorf("walk max attempts must not be negative, got %d", c.WalkMaxAttempts))
	}
	if c.Root < 0 || (c.RoomCount > 0 && c.Root >= c.RoomCount) {
		errs = append(errs, fmt.Errorf("root room %d outside [0, %d)", c.Root, c.RoomCount))
	}
	if _, err := generator.PolicyByName(c.Connection); err != nil {
		errs = append(errs, err)
	}
	if _, err := layout.TraverserByName(c.Traversal, nil, c.WalkMaxAttempts, c.WalkUnbounded); err != nil {
		errs = append(errs, err)
	}
	switch c.Renderer {
	case RendererEbiten, RendererTUI, RendererNone:
	default:
		errs = append(errs, fmt.Errorf("unknown renderer %q", c.Renderer))
	}
	if c.Renderer == RendererEbiten {
		if c.Window.Width <= 0 || c.Window.Height <= 0 {
			errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
		}
		if c.Window.TPS <= 0 {
			errs = append(errs, fmt.Errorf("window tps must be positive, got %d", c.Window.TPS))
		}
		if c.Window.PerFrame < 0 {
			errs = append(errs, fmt.Errorf("window per_frame must not be negative, got %d", c.Window.PerFrame))
		}
	}
	return errors.Join(errs...)
}
