package cursor

import (
	"studio-site/internal/config"
	"studio-site/internal/palette"
	"studio-site/internal/utils"
)

// LayerKind identifies one circle of a splat.
type LayerKind int

const (
	Glow LayerKind = iota
	Body
	Core
	Shine
)

func (k LayerKind) String() string {
	switch k {
	case Glow:
		return "glow"
	case Body:
		return "body"
	case Core:
		return "core"
	case Shine:
		return "shine"
	}
	return "unknown"
}

// Stop is one color stop of a radial gradient. Offset runs from the center
// (0) to the rim (1).
type Stop struct {
	Offset float64
	Color  palette.RGB
	Alpha  float64
}

// Layer is a filled circle painted with a radial gradient.
type Layer struct {
	Kind   LayerKind
	X, Y   float64
	Radius float64
	Stops  []Stop
}

var white = palette.RGB{R: 255, G: 255, B: 255}

// Compose builds the layers of one splat at (x, y) with radius r, back to
// front. Optional layers are left out when disabled in cfg.
func Compose(x, y, r float64, cur, prev palette.RGB, cfg config.RenderConfig) []Layer {
	layers := make([]Layer, 0, 4)

	if cfg.OuterGlow {
		layers = append(layers, Layer{
			Kind: Glow, X: x, Y: y, Radius: r * 1.5,
			Stops: []Stop{
				{Offset: 0, Color: cur, Alpha: cfg.OuterGlowIntensity},
				{Offset: 1, Color: cur, Alpha: 0},
			},
		})
	}

	layers = append(layers, Layer{
		Kind: Body, X: x, Y: y, Radius: r,
		Stops: []Stop{
			{Offset: 0, Color: cur, Alpha: utils.Clamp(cfg.Opacity*1.2, 0, 1)},
			{Offset: 0.4, Color: prev, Alpha: cfg.Opacity * 0.8},
			{Offset: 1, Color: prev, Alpha: 0},
		},
	})

	if cfg.InnerGlow {
		layers = append(layers, Layer{
			Kind: Core, X: x, Y: y, Radius: r * 0.7,
			Stops: []Stop{
				{Offset: 0, Color: cur, Alpha: cfg.InnerGlowIntensity},
				{Offset: 1, Color: cur, Alpha: 0},
			},
		})
	}

	if cfg.Highlight > 0 {
		layers = append(layers, Layer{
			Kind: Shine, X: x - r*0.1, Y: y - r*0.1, Radius: r * 0.3,
			Stops: []Stop{
				{Offset: 0, Color: white, Alpha: cfg.Highlight},
				{Offset: 1, Color: white, Alpha: 0},
			},
		})
	}
	return layers
}

// Gradient packs the layer's stops into three premultiplied RGBA colors and
// their offsets. Layers with fewer stops repeat the last one; extra stops
// are dropped.
func (l Layer) Gradient() (colors [3][4]float32, offsets [3]float32) {
	if len(l.Stops) == 0 {
		return colors, [3]float32{0, 1, 1}
	}
	for i := 0; i < 3; i++ {
		s := l.Stops[len(l.Stops)-1]
		if i < len(l.Stops) {
			s = l.Stops[i]
		}
		a := utils.Clamp(s.Alpha, 0, 1)
		r, g, b := s.Color.Floats()
		colors[i] = [4]float32{float32(r * a), float32(g * a), float32(b * a), float32(a)}
		offsets[i] = float32(s.Offset)
	}
	return colors, offsets
}
