package starfield

import (
	"math"

	"studio-site/internal/config"
	"studio-site/internal/palette"
	"studio-site/internal/utils"
)

// Point is a projected star or outline vertex in screen pixels.
type Point struct {
	X, Y   float64
	Radius float64
	Color  palette.RGB
}

// Field holds everything the background draws. It is stepped from the
// frame loop and has no drawing code of its own.
type Field struct {
	cfg    config.StarfieldConfig
	layers []Layer
	ridges []Ridge
	camera *Camera
}

func New(cfg config.StarfieldConfig, fps int, rng *utils.PRNGService) *Field {
	f := &Field{
		cfg:    cfg,
		layers: make([]Layer, cfg.Layers),
		camera: NewCamera(fps, cfg.CameraFrequency, cfg.CameraDamping, cfg.ParallaxRange),
	}
	for i := range f.layers {
		f.layers[i] = newLayer(rng, i, cfg.StarsPerLayer, cfg.MinRadius, cfg.MaxRadius)
	}
	f.ridges = newRidges(cfg.Ridges, cfg.Seed)
	return f
}

func (f *Field) Layers() []Layer { return f.layers }
func (f *Field) Ridges() []Ridge { return f.ridges }
func (f *Field) Camera() *Camera { return f.camera }

// Aim points the camera at a normalized pointer position.
func (f *Field) Aim(px, py float64) { f.camera.Aim(px, py) }

// Step advances the camera spring by one frame.
func (f *Field) Step() { f.camera.Step() }

// Project appends every star visible at t seconds on a w×h viewport to dst
// and returns it. Stars behind the camera are dropped.
func (f *Field) Project(t, w, h float64, dst []Point) []Point {
	camX, camY := f.camera.Position(t)
	scale := 0.6 * math.Min(w, h)
	cx, cy := w/2, h/2

	for _, l := range f.layers {
		a := l.Angle(t, f.cfg.RotationSpeed, f.cfg.DepthFalloff)
		sin, cos := math.Sincos(a)
		for _, s := range l.Stars {
			x := s.X*cos - s.Y*sin
			y := s.X*sin + s.Y*cos
			depth := f.cfg.CameraDistance - s.Z
			if depth <= 1 {
				continue
			}
			sx := cx + (x-camX)*scale/depth
			sy := cy - (y-camY)*scale/depth
			if sx < 0 || sx >= w || sy < 0 || sy >= h {
				continue
			}
			dst = append(dst, Point{
				X:      sx,
				Y:      sy,
				Radius: math.Max(0.5, s.Size*f.cfg.FocalLength/depth),
				Color:  s.Color,
			})
		}
	}
	return dst
}
