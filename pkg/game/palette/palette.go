// Package palette provides the cosmetic room colors.
package palette

import (
	"image/color"

	"labyrinth/pkg/engine/random"
)

// MaxChannel keeps room colors away from the white background
const MaxChannel = 200

// Corridor is the color of the corridor stubs drawn around each room
var Corridor = color.RGBA{100, 100, 100, 255}

// Background is the canvas color
var Background = color.RGBA{255, 255, 255, 255}

// Provider returns the color of the next room
type Provider func() color.RGBA

// Random returns a provider drawing each channel uniformly in [0, MaxChannel]
func Random(src random.Source) Provider {
	return func() color.RGBA {
		return color.RGBA{
			R: uint8(src.Intn(MaxChannel + 1)),
			G: uint8(src.Intn(MaxChannel + 1)),
			B: uint8(src.Intn(MaxChannel + 1)),
			A: 255,
		}
	}
}

// Solid returns a provider that always returns c
func Solid(c color.RGBA) Provider {
	return func() color.RGBA { return c }
}
