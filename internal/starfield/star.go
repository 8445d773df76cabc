// Package starfield models the home page background: rotating layers of
// stars on a spherical shell, a spring-eased camera that follows the
// pointer, and noise-generated ridge silhouettes in front.
package starfield

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"studio-site/internal/palette"
	"studio-site/internal/utils"
)

// Star is a point on the shell around the origin.
type Star struct {
	X, Y, Z float64
	Size    float64
	Color   palette.RGB
}

// Layer is one set of stars sharing a rotation speed.
type Layer struct {
	Depth int
	Stars []Star
}

// Angle returns the layer rotation in radians at t seconds. Deeper layers
// turn slower.
func (l Layer) Angle(t, speed, falloff float64) float64 {
	return t * speed * (1 - float64(l.Depth)*falloff)
}

// star tints: mostly white, some warm, a few cool
var tintWeights = []float64{0.7, 0.2, 0.1}

func newStar(rng *utils.PRNGService, minR, maxR float64) Star {
	r := rng.Range(minR, maxR)
	theta := rng.Float64() * 2 * math.Pi
	phi := math.Acos(rng.Float64()*2 - 1)

	return Star{
		X:     r * math.Sin(phi) * math.Cos(theta),
		Y:     r * math.Sin(phi) * math.Sin(theta),
		Z:     r * math.Cos(phi),
		Size:  rng.Range(0.5, 2.5),
		Color: starColor(rng),
	}
}

func starColor(rng *utils.PRNGService) palette.RGB {
	var c colorful.Color
	switch rng.ChooseWeighted(tintWeights) {
	case 1:
		c = colorful.Hsl(0.08*360, 0.5, 0.8)
	case 2:
		c = colorful.Hsl(0.6*360, 0.5, 0.8)
	default:
		c = colorful.Hsl(0, 0, rng.Range(0.8, 1))
	}
	r, g, b := c.Clamped().RGB255()
	return palette.RGB{R: r, G: g, B: b}
}

func newLayer(rng *utils.PRNGService, depth, count int, minR, maxR float64) Layer {
	stars := make([]Star, count)
	for i := range stars {
		stars[i] = newStar(rng, minR, maxR)
	}
	return Layer{Depth: depth, Stars: stars}
}
