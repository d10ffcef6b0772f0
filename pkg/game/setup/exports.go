package setup

import (
	"context"
	"fmt"
	"os"

	"labyrinth/pkg/engine/logging"
	"labyrinth/pkg/engine/world"
	"labyrinth/pkg/game/config"
	"labyrinth/pkg/game/export"
	"labyrinth/pkg/game/layout"
)

// writeExports writes every export whose path is set
func writeExports(ctx context.Context, paths config.Export, g *world.Graph, placements []layout.Placement) error {
	logger := logging.FromContext(ctx)

	if paths.JSON != "" {
		f, err := os.Create(paths.JSON)
		if err != nil {
			return fmt.Errorf("export json: %w", err)
		}
		err = export.WriteJSON(f, g, placements)
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return fmt.Errorf("export json: %w", err)
		}
		logger.Info("wrote json", "path", paths.JSON)
	}

	if paths.DOT == "" && paths.SVG == "" {
		return nil
	}
	dot := export.ToDOT(g, placements)
	if paths.DOT != "" {
		if err := os.WriteFile(paths.DOT, []byte(dot), 0o644); err != nil {
			return fmt.Errorf("export dot: %w", err)
		}
		logger.Info("wrote dot", "path", paths.DOT)
	}
	if paths.SVG != "" {
		svg, err := export.RenderSVG(ctx, dot)
		if err != nil {
			return fmt.Errorf("export svg: %w", err)
		}
		if err := os.WriteFile(paths.SVG, svg, 0o644); err != nil {
			return fmt.Errorf("export svg: %w", err)
		}
		logger.Info("wrote svg", "path", paths.SVG)
	}
	return nil
}
