// internal/ui/textfield.go
package ui

import (
	"image"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"studio-site/internal/config"
	"studio-site/internal/forms"
	"studio-site/pkg/render"
)

const multilineRows = 4

// TextField edits one forms.Field. Choice fields cycle through their options
// on click instead of taking keyboard input.
type TextField struct {
	Field   *forms.Field
	Rect    image.Rectangle
	Focused bool
}

// Height is the box height for the field kind.
func (t *TextField) Height() int {
	if t.Field.Kind == forms.Multiline {
		return config.FieldHeight * multilineRows
	}
	return config.FieldHeight
}

// Update applies typed input when focused. It reports whether Enter was
// pressed in a single-line field.
func (t *TextField) Update(in *Input) (submit bool) {
	if in.Click(t.Rect) {
		t.Focused = true
		if t.Field.Kind == forms.Choice {
			t.Field.Cycle()
		}
	}
	if !t.Focused || t.Field.Kind == forms.Choice {
		return false
	}
	t.Field.Insert(in.Chars)
	if in.Backspace {
		t.Field.Backspace()
	}
	if in.Enter {
		if t.Field.Kind == forms.Multiline {
			t.Field.Insert([]rune{'\n'})
			return false
		}
		return true
	}
	return false
}

// Draw renders the label above the box and the value inside it.
func (t *TextField) Draw(dst *ebiten.Image, fonts *render.Fonts, now time.Time) {
	label := t.Field.Label
	if t.Field.Required {
		label += " *"
	}
	render.DrawText(dst, label, fonts.Small, t.Rect.Min.X, t.Rect.Min.Y-render.LineHeight(fonts.Small)-2, config.TextMutedColor)

	fillRect(dst, t.Rect, config.SurfaceColor)
	border := config.BorderColor
	if t.Focused {
		border = config.FocusColor
	}
	strokeRect(dst, t.Rect, 1, border)

	value := t.Field.Display()
	if value == "" && t.Field.Kind == forms.Choice {
		value = "Select…"
	}
	if value == "" && t.Field.Kind == forms.Date {
		value = "YYYY-MM-DD"
	}
	x, y := t.Rect.Min.X+8, t.Rect.Min.Y+8
	width := t.Rect.Dx() - 16
	lines := render.Wrap(fonts.Regular, value, width)
	if t.Field.Kind != forms.Multiline && len(lines) > 1 {
		// keep the tail of a long single-line value visible
		lines = lines[len(lines)-1:]
	}
	clr := config.TextLightColor
	if t.Field.Value == "" {
		clr = config.TextMutedColor
	}
	lh := render.LineHeight(fonts.Regular)
	for _, line := range lines {
		if y+lh > t.Rect.Max.Y {
			break
		}
		render.DrawText(dst, line, fonts.Regular, x, y, clr)
		y += lh
	}
	// caret blinks twice a second
	if t.Focused && t.Field.Kind != forms.Choice && now.UnixMilli()/500%2 == 0 {
		last := ""
		if len(lines) > 0 && t.Field.Value != "" {
			last = lines[len(lines)-1]
			y -= lh
		}
		cx := x + render.TextWidth(fonts.Regular, last) + 1
		fillRect(dst, image.Rect(cx, y, cx+2, y+lh), config.TextLightColor)
	}
}
