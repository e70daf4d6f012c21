// Package present shows frame buffers in an ebiten window or a tcell terminal
// and turns their keyboard state into input.Source samples.
package present

import (
	"image/color"

	"consolefps/internal/game"
)

type glyphClass int

const (
	classBlank glyphClass = iota
	classWall
	classFloor
	classMarker
	classText
)

// classify groups frame glyphs so both presenters color them the same way.
// Floor tiers reuse the map symbols, so overlay cells are told apart by flag.
func classify(r rune, overlay bool) glyphClass {
	switch {
	case r == ' ':
		return classBlank
	case overlay && r == game.MarkerObserver:
		return classMarker
	case overlay:
		return classText
	}
	switch r {
	case game.ShadeFull, game.ShadeDark, game.ShadeMedium, game.ShadeLight:
		return classWall
	case '#', 'x', '.', '-':
		return classFloor
	default:
		return classText
	}
}

// wallIntensity maps a wall shade to a fill fraction
func wallIntensity(r rune) float64 {
	switch r {
	case game.ShadeFull:
		return 1.0
	case game.ShadeDark:
		return 0.75
	case game.ShadeMedium:
		return 0.5
	case game.ShadeLight:
		return 0.25
	default:
		return 0
	}
}

var (
	colorBackground = color.RGBA{0, 0, 0, 255}
	colorFloor      = color.RGBA{150, 120, 80, 255}
	colorMarker     = color.RGBA{255, 220, 60, 255}
	colorText       = color.RGBA{220, 220, 220, 255}
)

func wallColor(r rune) color.RGBA {
	v := uint8(40 + 200*wallIntensity(r))
	return color.RGBA{v, v, v, 255}
}
