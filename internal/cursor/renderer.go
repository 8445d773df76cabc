// Package cursor implements the fluid cursor trail: a throttled frame
// renderer that fades a persistent overlay and paints layered splats where
// the pointer moved, and a component that owns it for the time it is
// mounted.
package cursor

import (
	"math"
	"time"

	"studio-site/internal/config"
	"studio-site/internal/palette"
	"studio-site/internal/pointer"
	"studio-site/internal/utils"
)

// Surface is the overlay the renderer paints on. Sizes are device pixels.
type Surface interface {
	// Ready reports whether the surface can be drawn to.
	Ready() bool
	Size() (w, h int)
	Resize(w, h int)
	// Fade darkens everything already drawn by alpha.
	Fade(alpha float64)
	Splat(l Layer)
	Clear()
}

// State is the renderer's paint state.
type State int

const (
	// Idle means nothing moved since the last paint.
	Idle State = iota
	// Painting means the next paint draws a splat.
	Painting
)

func (s State) String() string {
	if s == Painting {
		return "painting"
	}
	return "idle"
}

// Renderer paints one frame per Tick, capped at cfg.FPSCap.
type Renderer struct {
	cfg     config.RenderConfig
	surface Surface
	tracker *pointer.Tracker
	cycler  *palette.Cycler
	rng     *utils.PRNGService

	scale   float64
	started time.Time
	last    time.Time

	frames int
	splats int
}

func NewRenderer(cfg config.RenderConfig, surface Surface, tracker *pointer.Tracker,
	cycler *palette.Cycler, rng *utils.PRNGService, now time.Time) *Renderer {
	return &Renderer{
		cfg:     cfg,
		surface: surface,
		tracker: tracker,
		cycler:  cycler,
		rng:     rng,
		scale:   1,
		started: now,
	}
}

// SetScale sets the device pixels per logical pixel used for splat sizes.
func (r *Renderer) SetScale(scale float64) {
	if scale <= 0 || math.IsNaN(scale) {
		scale = 1
	}
	r.scale = scale
}

func (r *Renderer) State() State {
	if r.tracker.State().Moved {
		return Painting
	}
	return Idle
}

// Frames returns the number of painted frames; Splats the number of those
// that drew a splat.
func (r *Renderer) Frames() int { return r.frames }
func (r *Renderer) Splats() int { return r.splats }

// Tick paints a frame if the surface is ready and the frame interval has
// elapsed. It reports whether anything was painted.
func (r *Renderer) Tick(now time.Time) bool {
	if r.cfg.Paused || r.surface == nil || !r.surface.Ready() {
		return false
	}
	w, h := r.surface.Size()
	if w <= 0 || h <= 0 {
		return false
	}
	if !r.due(now) {
		return false
	}

	r.surface.Fade(r.cfg.FadeAlpha)
	r.frames++

	if r.State() == Painting {
		s := r.tracker.State()
		r.cycler.Advance(now, &s.Color, &s.PrevColor)
		x, y := r.tracker.Screen(float64(w), float64(h))
		for _, l := range Compose(x, y, r.radius(now), s.Color, s.PrevColor, r.cfg) {
			r.surface.Splat(l)
		}
		r.splats++
	}
	r.tracker.EndFrame()
	return true
}

// due applies the frame cap. The remainder past the interval is carried so
// the average rate stays at the cap.
func (r *Renderer) due(now time.Time) bool {
	interval := r.cfg.FrameInterval()
	if r.last.IsZero() || interval <= 0 {
		r.last = now
		return true
	}
	delta := now.Sub(r.last)
	if delta < 0 {
		// clock went backwards
		r.last = now
		return false
	}
	if delta < interval {
		return false
	}
	r.last = now.Add(-(delta % interval))
	return true
}

func (r *Renderer) radius(now time.Time) float64 {
	base := r.cfg.BaseRadius * r.cfg.SplatRadius * (1 + r.rng.Float64()*r.cfg.RadiusJitter)
	ms := float64(now.Sub(r.started)) / float64(time.Millisecond)
	pulse := 1 + math.Sin(ms*r.cfg.PulseSpeed)*r.cfg.PulseAmount
	speed := 1.0
	if r.cfg.SpeedScaleMax > 1 {
		speed = math.Min(r.cfg.SpeedScaleMax, 1+r.tracker.Speed()*0.5)
	}
	return base * pulse * speed * r.scale
}
