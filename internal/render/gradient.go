// Package render turns power profiles into colours and terminal bar charts.
package render

import (
	"fmt"
	"image/color"

	"github.com/cwbudde/algo-spectrum/dsp/core"
)

// Stage limits of the level gradient. Each stage ramps one RGB channel.
const (
	stageBlueRise  = 256
	stageGreenRise = 511
	stageBlueFall  = 766
	stageRedRise   = 1021
	stageGreenFall = 1276

	// GradientMax is the largest level with its own colour. Higher levels
	// saturate to red.
	GradientMax = stageGreenFall - 1

	levelMax = 100
)

// Gradient maps a level in [0, GradientMax] to a colour running
// black, blue, cyan, green, yellow, red. Negative levels are black.
func Gradient(v int) color.RGBA {
	c := color.RGBA{A: 0xff}

	switch {
	case v < 0:
	case v < stageBlueRise:
		c.B = uint8(v)
	case v < stageGreenRise:
		c.B = 255
		c.G = uint8(v - stageBlueRise)
	case v < stageBlueFall:
		c.B = uint8(stageBlueFall - v)
		c.G = 255
	case v < stageRedRise:
		c.G = 255
		c.R = uint8(v - stageBlueFall)
	case v < stageGreenFall:
		c.G = uint8(stageGreenFall - v)
		c.R = 255
	default:
		c.R = 255
	}

	return c
}

// ScaleToGradient maps power levels in [0, 100] onto the gradient domain.
// Out-of-range levels are clamped first.
func ScaleToGradient(power []int) []int {
	out := make([]int, len(power))
	for i, v := range power {
		out[i] = clampLevel(v) * GradientMax / levelMax
	}

	return out
}

func clampLevel(v int) int {
	return int(core.Clamp(float64(v), 0, levelMax))
}

// Hex formats c as #RRGGBB.
func Hex(c color.RGBA) string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}
