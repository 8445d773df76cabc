package starfield

import (
	"math"

	"github.com/aquilax/go-perlin"

	"studio-site/internal/palette"
)

const ridgeSegments = 50

type ridgeStyle struct {
	height  float64
	color   palette.RGB
	opacity float64
}

// nearest first
var ridgeStyles = []ridgeStyle{
	{60, palette.RGB{R: 0x1a, G: 0x1a, B: 0x2e}, 1},
	{80, palette.RGB{R: 0x16, G: 0x21, B: 0x3e}, 0.8},
	{100, palette.RGB{R: 0x0f, G: 0x34, B: 0x60}, 0.6},
	{120, palette.RGB{R: 0x0a, G: 0x46, B: 0x68}, 0.4},
}

// Ridge is a mountain silhouette. Heights are in scene units above the
// ridge baseline, one per segment boundary.
type Ridge struct {
	Index   int
	Heights []float64
	Color   palette.RGB
	Opacity float64
}

func newRidges(n int, seed int64) []Ridge {
	noise := perlin.NewPerlin(2, 2, 3, seed)
	ridges := make([]Ridge, n)
	for i := range ridges {
		style := ridgeStyles[i%len(ridgeStyles)]
		heights := make([]float64, ridgeSegments+1)
		for s := range heights {
			fs := float64(s)
			heights[s] = math.Sin(fs*0.1)*style.height +
				math.Sin(fs*0.05)*style.height*0.5 +
				noise.Noise2D(fs*0.15, float64(i)*3.7)*style.height*0.4
		}
		ridges[i] = Ridge{Index: i, Heights: heights, Color: style.color, Opacity: style.opacity}
	}
	return ridges
}

// Offset is the parallax drift at t seconds. Farther ridges drift more.
func (r Ridge) Offset(t float64) (dx, dy float64) {
	factor := 1 + float64(r.Index)*0.5
	return math.Sin(t*0.1) * 2 * factor, math.Cos(t*0.15) * factor
}

// Outline returns the silhouette in screen pixels for a w×h viewport,
// left to right. The area below it is filled by the renderer.
func (r Ridge) Outline(t, w, h float64) []Point {
	dx, dy := r.Offset(t)
	unit := h / 800
	baseline := h*(0.78-0.06*float64(r.Index)) + dy*unit
	pts := make([]Point, len(r.Heights))
	for i, height := range r.Heights {
		pts[i] = Point{
			X: float64(i)/ridgeSegments*w + dx*unit,
			Y: baseline - height*unit,
		}
	}
	return pts
}
