package pointer

// Drag turns successive samples of the primary touch into scroll distances.
type Drag struct {
	lastY float64
	down  bool
}

// Touch records a sample at y and returns how far the page should scroll.
// The first sample of a gesture and samples the cursor consumed scroll
// nothing.
func (d *Drag) Touch(y float64, consumed bool) float64 {
	dy := 0.0
	if d.down && !consumed {
		dy = d.lastY - y
	}
	d.lastY, d.down = y, true
	return dy
}

// Release ends the gesture.
func (d *Drag) Release() { d.down = false }

// Active reports whether a gesture is in progress.
func (d *Drag) Active() bool { return d.down }
