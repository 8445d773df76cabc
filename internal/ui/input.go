// internal/ui/input.go
package ui

import (
	"image"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Input is one frame's keyboard and pointer snapshot. Widgets read it
// instead of polling ebiten so a page sees a single consistent frame.
type Input struct {
	Now       time.Time
	X, Y      int
	Pressed   bool // primary button or a new touch this frame
	Wheel     float64
	Chars     []rune
	Backspace bool
	Enter     bool
	Tab       bool
	Shift     bool
	Escape    bool

	consumed bool
}

// ReadInput captures the current frame. chars is reused as the buffer for
// typed characters.
func ReadInput(now time.Time, chars []rune) Input {
	x, y := ebiten.CursorPosition()
	_, wheel := ebiten.Wheel()
	in := Input{
		Now:       now,
		X:         x,
		Y:         y,
		Pressed:   inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		Wheel:     wheel,
		Chars:     ebiten.AppendInputChars(chars[:0]),
		Backspace: repeating(ebiten.KeyBackspace),
		Enter:     inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter),
		Tab:       inpututil.IsKeyJustPressed(ebiten.KeyTab),
		Shift:     ebiten.IsKeyPressed(ebiten.KeyShift),
		Escape:    inpututil.IsKeyJustPressed(ebiten.KeyEscape),
	}
	// a new touch acts as a click at its position
	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		in.X, in.Y = ebiten.TouchPosition(id)
		in.Pressed = true
		break
	}
	return in
}

// repeating reports a key press with auto-repeat after half a second.
func repeating(k ebiten.Key) bool {
	d := inpututil.KeyPressDuration(k)
	return d == 1 || (d >= 30 && d%4 == 0)
}

// Over reports whether the pointer is inside r.
func (in *Input) Over(r image.Rectangle) bool {
	return image.Pt(in.X, in.Y).In(r)
}

// Click reports an unconsumed press inside r and consumes it.
func (in *Input) Click(r image.Rectangle) bool {
	if in.consumed || !in.Pressed || !in.Over(r) {
		return false
	}
	in.consumed = true
	return true
}

// Consumed reports whether a widget already took this frame's press.
func (in *Input) Consumed() bool { return in.consumed }
