// Package sprite bakes the static images the site draws every frame: the
// page background, the soft star dot and the portfolio cards. Everything is
// rasterized once on the CPU with gg and handed to the renderer as plain
// images.
package sprite

import (
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"
)

// Dot returns a size×size white disc whose alpha falls off from the center,
// for additive star drawing.
func Dot(size int) *image.RGBA {
	if size < 2 {
		size = 2
	}
	dc := gg.NewContext(size, size)
	c := float64(size) / 2
	g := gg.NewRadialGradient(c, c, 0, c, c, c)
	g.AddColorStop(0, color.RGBA{255, 255, 255, 255})
	g.AddColorStop(0.5, color.RGBA{128, 128, 128, 128})
	g.AddColorStop(1, color.RGBA{0, 0, 0, 0})
	dc.SetFillStyle(g)
	dc.DrawCircle(c, c, c)
	dc.Fill()
	return toRGBA(dc.Image())
}

// Falloff returns a size×size radial alpha ramp, opaque white at the center
// and transparent at the rim. It is the fallback brush when shaders are
// unavailable.
func Falloff(size int) *image.RGBA {
	if size < 2 {
		size = 2
	}
	dc := gg.NewContext(size, size)
	c := float64(size) / 2
	g := gg.NewRadialGradient(c, c, 0, c, c, c)
	g.AddColorStop(0, color.RGBA{255, 255, 255, 255})
	g.AddColorStop(1, color.RGBA{0, 0, 0, 0})
	dc.SetFillStyle(g)
	dc.DrawCircle(c, c, c)
	dc.Fill()
	return toRGBA(dc.Image())
}

// Background paints a diagonal gradient through stops. phase in [0,1)
// slides the stops along the diagonal so the page can cycle it slowly.
func Background(w, h int, stops []color.RGBA, phase float64) *image.RGBA {
	dc := gg.NewContext(w, h)
	if len(stops) == 0 {
		return toRGBA(dc.Image())
	}
	if len(stops) == 1 {
		dc.SetColor(stops[0])
		dc.Clear()
		return toRGBA(dc.Image())
	}

	phase -= math.Floor(phase)
	g := gg.NewLinearGradient(0, 0, float64(w), float64(h))
	n := len(stops)
	// stops are laid out twice so a shifted window always covers [0,1]
	for i := 0; i <= 2*n; i++ {
		off := float64(i)/float64(n) - phase
		if off < -1.0/float64(n) || off > 1+1.0/float64(n) {
			continue
		}
		g.AddColorStop(off, stops[i%n])
	}
	dc.SetFillStyle(g)
	dc.DrawRectangle(0, 0, float64(w), float64(h))
	dc.Fill()
	return toRGBA(dc.Image())
}

func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	b := img.Bounds()
	out := image.NewRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			out.Set(x, y, img.At(x, y))
		}
	}
	return out
}
