package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"studio-site/internal/sprite"
)

// backgroundSteps is how many baked frames one gradient cycle is split into.
const backgroundSteps = 24

// Background draws the slowly cycling page gradient. Frames are baked at a
// reduced resolution on demand and cached per step.
type Background struct {
	stops  []color.RGBA
	cycle  float64
	frames map[int]*ebiten.Image
	w, h   int
}

func NewBackground(stops []color.RGBA, cycleSeconds float64) *Background {
	return &Background{stops: stops, cycle: cycleSeconds, frames: make(map[int]*ebiten.Image)}
}

// Draw fills screen with the gradient at t seconds.
func (b *Background) Draw(screen *ebiten.Image, t float64) {
	bounds := screen.Bounds()
	w, h := bounds.Dx()/4+1, bounds.Dy()/4+1
	if w != b.w || h != b.h {
		for _, img := range b.frames {
			img.Deallocate()
		}
		b.frames = make(map[int]*ebiten.Image)
		b.w, b.h = w, h
	}

	step := 0
	if b.cycle > 0 {
		phase := t / b.cycle
		step = int(math.Floor((phase - math.Floor(phase)) * backgroundSteps))
	}
	img, ok := b.frames[step]
	if !ok {
		img = ebiten.NewImageFromImage(sprite.Background(w, h, b.stops, float64(step)/backgroundSteps))
		b.frames[step] = img
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(bounds.Dx())/float64(w), float64(bounds.Dy())/float64(h))
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(img, op)
}
