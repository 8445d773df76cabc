// Package pointer tracks the mouse or primary touch over a rendering surface
// in coordinates normalized to that surface.
package pointer

import (
	"image"
	"math"

	"studio-site/internal/palette"
)

// SpeedScale converts a normalized per-sample distance to the speed unit the
// splat sizing uses.
const SpeedScale = 1000.0

// State is the pointer data shared between input handling and the frame
// renderer. Coordinates are fractions of the surface size, origin top-left.
type State struct {
	X, Y           float64
	PrevX, PrevY   float64
	DeltaX, DeltaY float64
	Moved          bool
	Color          palette.RGB
	PrevColor      palette.RGB
}

// Tracker owns a State and the geometry of the surface it is normalized to.
type Tracker struct {
	state            State
	originX, originY float64
	width, height    float64
	active           bool
	capture          image.Rectangle
}

// NewTracker creates a tracker whose current and previous colors start at
// initial. The surface has no size until Resize is called.
func NewTracker(initial palette.RGB) *Tracker {
	return &Tracker{
		state:  State{Color: initial, PrevColor: initial},
		active: true,
	}
}

// Resize sets the surface rectangle in logical pixels.
func (t *Tracker) Resize(originX, originY, width, height float64) {
	t.originX, t.originY = originX, originY
	t.width, t.height = width, height
}

// Size returns the current surface size.
func (t *Tracker) Size() (w, h float64) { return t.width, t.height }

// SetActive enables or disables touch tracking.
func (t *Tracker) SetActive(active bool) { t.active = active }

// SetCapture sets the region, in logical pixels, where touches are claimed
// from the page. An empty region claims nothing.
func (t *Tracker) SetCapture(r image.Rectangle) { t.capture = r }

// Move records a pointer sample at device coordinates (x, y). It reports
// false and leaves the state alone while the surface has no area.
func (t *Tracker) Move(x, y float64) bool {
	if t.width <= 0 || t.height <= 0 {
		return false
	}
	s := &t.state
	s.PrevX, s.PrevY = s.X, s.Y
	s.X = (x - t.originX) / t.width
	s.Y = (y - t.originY) / t.height
	s.DeltaX = s.X - s.PrevX
	s.DeltaY = s.Y - s.PrevY
	// a sample that did not move must not clear a pending movement
	if s.DeltaX != 0 || s.DeltaY != 0 {
		s.Moved = true
	}
	return true
}

// Touch records a touch sample. While the tracker is active, a touch over
// the surface moves the pointer. It is reported as consumed, so the page
// does not scroll, only when it also lies inside the capture region.
func (t *Tracker) Touch(x, y float64) (consumed bool) {
	if !t.active || !t.Contains(x, y) {
		return false
	}
	if !t.Move(x, y) {
		return false
	}
	return image.Pt(int(x), int(y)).In(t.capture)
}

// Contains reports whether (x, y) lies over the surface.
func (t *Tracker) Contains(x, y float64) bool {
	return x >= t.originX && x < t.originX+t.width &&
		y >= t.originY && y < t.originY+t.height
}

// State returns the live state. Callers on the render side may update the
// colors and must call EndFrame after painting.
func (t *Tracker) State() *State { return &t.state }

// Speed returns the magnitude of the last delta in SpeedScale units.
func (t *Tracker) Speed() float64 {
	return math.Hypot(t.state.DeltaX, t.state.DeltaY) * SpeedScale
}

// Screen converts the current position to pixels on a surface of size w×h.
func (t *Tracker) Screen(w, h float64) (x, y float64) {
	return t.state.X * w, t.state.Y * h
}

// EndFrame clears the movement flag after a render tick.
func (t *Tracker) EndFrame() { t.state.Moved = false }
