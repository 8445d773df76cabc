// pkg/render/color.go
package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"studio-site/internal/palette"
)

var whiteColor = color.RGBA{255, 255, 255, 255}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// LightenColor moves a color toward white by amount in [0,1].
func LightenColor(c color.RGBA, amount float64) color.RGBA {
	lift := func(v uint8) uint8 {
		return uint8(float64(v) + (255-float64(v))*amount)
	}
	return color.RGBA{R: lift(c.R), G: lift(c.G), B: lift(c.B), A: c.A}
}

// WithAlpha returns c with its alpha replaced, premultiplied.
func WithAlpha(c color.RGBA, alpha float64) color.RGBA {
	return palette.RGB{R: c.R, G: c.G, B: c.B}.RGBA(alpha)
}

// tint returns a color scale that turns a white sprite into c at alpha.
func tint(c palette.RGB, alpha float64) ebiten.ColorScale {
	var cs ebiten.ColorScale
	r, g, b := c.Floats()
	a := float32(alpha)
	cs.Scale(float32(r)*a, float32(g)*a, float32(b)*a, a)
	return cs
}
