// Command labyrinth builds a random labyrinth of rooms joined by doors, lays
// it out on a plane and draws it.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/leonelquinteros/gotext"
	"github.com/spf13/cobra"

	"labyrinth/pkg/engine/logging"
	"labyrinth/pkg/game/config"
	"labyrinth/pkg/game/renderer"
	"labyrinth/pkg/game/renderer/ebiten"
	"labyrinth/pkg/game/renderer/tui"
	"labyrinth/pkg/game/setup"
)

func initGettext() {
	gotext.Configure("locales", "en_GB", "default")
}

// flags mirrors the command line; values only override the configuration
// when the flag was given
type flags struct {
	configPath    string
	size          int
	retries       int
	connection    string
	traversal     string
	walkAttempts  int
	walkUnbounded bool
	root          int
	seed          int64
	renderer      string
	perFrame      int
	jsonPath      string
	dotPath       string
	svgPath       string
	verbose       bool
}

func newRootCmd() *cobra.Command {
	var f flags
	defaults := config.Default()

	cmd := &cobra.Command{
		Use:           "labyrinth",
		Short:         "Generate and draw a random labyrinth",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger := logging.New(os.Stderr, logging.Level(f.verbose))
			cmd.SetContext(logging.WithLogger(cmd.Context(), logger))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(f.configPath)
			if err != nil {
				return err
			}
			applyFlags(cmd, f, &cfg)

			logger := logging.FromContext(cmd.Context())
			if !cmd.Flags().Changed("size") && f.configPath == "" {
				logger.Info(fmt.Sprintf(gotext.Get("DEFAULT_SIZE"), cfg.RoomCount))
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			selectRenderer(cfg)
			renderer.Init()

			stats, err := setup.Run(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			logger.Info(gotext.Get("RUN_SUMMARY"),
				"rooms", stats.Rooms,
				"edges", stats.Edges,
				"abandoned", stats.Generation.Abandoned,
				"placed", stats.Placed,
				"reachable", stats.Reachable)
			return nil
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&f.configPath, "config", "", "TOML configuration file")
	fl.IntVarP(&f.size, "size", "s", defaults.RoomCount, "number of rooms")
	fl.IntVar(&f.retries, "retries", defaults.MaxRetries, "connection attempts per room")
	fl.StringVar(&f.connection, "connection", defaults.Connection, "connection policy (free-scan, directed)")
	fl.StringVar(&f.traversal, "traversal", defaults.Traversal, "layout policy (spanning-tree, spanning-forest, path-walk)")
	fl.IntVar(&f.walkAttempts, "walk-attempts", defaults.WalkMaxAttempts, "path walk connection attempts per step")
	fl.BoolVar(&f.walkUnbounded, "walk-unbounded", false, "let the path walk retry forever")
	fl.IntVar(&f.root, "root", defaults.Root, "room the layout starts from")
	fl.Int64Var(&f.seed, "seed", defaults.Seed, "random seed, 0 seeds from the clock")
	fl.StringVar(&f.renderer, "renderer", defaults.Renderer, "renderer (ebiten, tui, none)")
	fl.IntVar(&f.perFrame, "per-frame", defaults.Window.PerFrame, "rooms drawn per frame, 0 draws all at once")
	fl.StringVar(&f.jsonPath, "json", "", "write placements and doors as JSON")
	fl.StringVar(&f.dotPath, "dot", "", "write the room graph as Graphviz DOT")
	fl.StringVar(&f.svgPath, "svg", "", "render the room graph to SVG")
	cmd.PersistentFlags().BoolVarP(&f.verbose, "verbose", "v", false, "enable verbose logging")

	return cmd
}

// applyFlags copies the flags the user set onto cfg
func applyFlags(cmd *cobra.Command, f flags, cfg *config.Config) {
	changed := cmd.Flags().Changed
	if changed("size") {
		cfg.RoomCount = f.size
	}
	if changed("retries") {
		cfg.MaxRetries = f.retries
	}
	if changed("connection") {
		cfg.Connection = f.connection
	}
	if changed("traversal") {
		cfg.Traversal = f.traversal
	}
	if changed("walk-attempts") {
		cfg.WalkMaxAttempts = f.walkAttempts
	}
	if changed("walk-unbounded") {
		cfg.WalkUnbounded = f.walkUnbounded
	}
	if changed("root") {
		cfg.Root = f.root
	}
	if changed("seed") {
		cfg.Seed = f.seed
	}
	if changed("renderer") {
		cfg.Renderer = f.renderer
	}
	if changed("per-frame") {
		cfg.Window.PerFrame = f.perFrame
	}
	if changed("json") {
		cfg.Export.JSON = f.jsonPath
	}
	if changed("dot") {
		cfg.Export.DOT = f.dotPath
	}
	if changed("svg") {
		cfg.Export.SVG = f.svgPath
	}
}

func selectRenderer(cfg config.Config) {
	switch cfg.Renderer {
	case config.RendererEbiten:
		renderer.SetRenderer(ebiten.New(cfg.Window))
	case config.RendererTUI:
		renderer.SetRenderer(tui.New())
	default:
		renderer.SetRenderer(nil)
	}
}

func main() {
	initGettext()

	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
