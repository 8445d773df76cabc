// Package palette turns hues into display colors for the cursor trail and
// cycles them over a session.
package palette

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"studio-site/internal/utils"
)

// RGB is an 8-bit display color.
type RGB struct {
	R, G, B uint8
}

// RGBA returns the color with the given alpha in [0,1], premultiplied for
// image/color.
func (c RGB) RGBA(alpha float64) color.RGBA {
	a := utils.Clamp(alpha, 0, 1)
	return color.RGBA{
		R: uint8(math.Round(float64(c.R) * a)),
		G: uint8(math.Round(float64(c.G) * a)),
		B: uint8(math.Round(float64(c.B) * a)),
		A: uint8(math.Round(255 * a)),
	}
}

// Floats returns the channels in [0,1].
func (c RGB) Floats() (r, g, b float64) {
	return float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255
}

// HueToRGB converts HSV to RGB, multiplies by intensity and clamps every
// channel to [0,255]. Any hue is accepted; it is reduced modulo 360 first.
func HueToRGB(hue, saturation, value, intensity float64) RGB {
	h := utils.NormalizeDegrees(hue)
	s := unit(saturation)
	v := unit(value)
	if math.IsNaN(intensity) || intensity < 0 {
		intensity = 0
	}

	c := colorful.Hsv(h, s, v)
	return RGB{
		R: channel(c.R, intensity),
		G: channel(c.G, intensity),
		B: channel(c.B, intensity),
	}
}

func unit(f float64) float64 {
	if math.IsNaN(f) {
		return 0
	}
	return utils.Clamp(f, 0, 1)
}

func channel(f, intensity float64) uint8 {
	v := f * 255 * intensity
	if math.IsNaN(v) {
		return 0
	}
	return uint8(utils.Clamp(math.Round(v), 0, 255))
}
