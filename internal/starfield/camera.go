package starfield

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// Camera eases toward a target offset with a damped spring and adds a slow
// idle float on top.
type Camera struct {
	spring harmonica.Spring

	x, y       float64
	vx, vy     float64
	targetX    float64
	targetY    float64
	travelSpan float64
}

// NewCamera creates a camera stepped fps times per second. span is the
// travel at the edge of the screen.
func NewCamera(fps int, frequency, damping, span float64) *Camera {
	return &Camera{
		spring:     harmonica.NewSpring(harmonica.FPS(fps), frequency, damping),
		travelSpan: span,
	}
}

// Aim sets the target from a normalized pointer position; the screen
// center is the rest position.
func (c *Camera) Aim(px, py float64) {
	c.targetX = (px - 0.5) * c.travelSpan
	c.targetY = (py - 0.5) * c.travelSpan
}

// Step advances the spring by one frame.
func (c *Camera) Step() {
	c.x, c.vx = c.spring.Update(c.x, c.vx, c.targetX)
	c.y, c.vy = c.spring.Update(c.y, c.vy, c.targetY)
}

// Position returns the eased offset plus the idle float at t seconds.
func (c *Camera) Position(t float64) (x, y float64) {
	return c.x + math.Sin(t*0.1)*2, c.y + math.Cos(t*0.15)
}

// Target returns the current aim.
func (c *Camera) Target() (x, y float64) { return c.targetX, c.targetY }
