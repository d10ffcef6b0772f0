package ebiten

import "labyrinth/pkg/game/palette"

// Color palette for the window
var (
	colorBackground = palette.Background // White canvas
	colorCorridor   = palette.Corridor   // Gray corridor stubs
)
