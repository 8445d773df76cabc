// internal/ui/loader.go
package ui

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"studio-site/internal/config"
	"studio-site/internal/utils"
	"studio-site/pkg/render"
)

const (
	loaderDots  = 12
	loaderSpeed = 2.4 // radians per second
	loaderTrail = 0.18
)

// DrawLoader draws dots chasing each other along an infinity curve centered
// on (cx, cy).
func DrawLoader(dst *ebiten.Image, cx, cy, size, t float64) {
	for i := 0; i < loaderDots; i++ {
		phase := t*loaderSpeed - float64(i)*loaderTrail
		x, y := utils.Lemniscate(phase, size)
		fade := 1 - float64(i)/loaderDots
		r := float32(2 + 4*fade)
		clr := render.WithAlpha(render.LightenColor(config.AccentColor, 0.3*fade), math.Max(0.15, fade))
		vector.DrawFilledCircle(dst, float32(cx+x), float32(cy+y), r, clr, true)
	}
}
