// internal/ui/button.go
package ui

import (
	"image"
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"studio-site/internal/config"
	"studio-site/pkg/render"
)

// Button is a clickable text button.
type Button struct {
	Rect    image.Rectangle
	Text    string
	Primary bool
	// Disabled buttons swallow clicks and draw darkened.
	Disabled bool

	hovered   bool
	lastClick time.Time
}

func NewButton(rect image.Rectangle, text string, primary bool) *Button {
	return &Button{Rect: rect, Text: text, Primary: primary}
}

// Update reports a click. Clicks closer together than the debounce window
// are ignored.
func (b *Button) Update(in *Input) bool {
	b.hovered = in.Over(b.Rect)
	if !in.Click(b.Rect) || b.Disabled {
		return false
	}
	if in.Now.Sub(b.lastClick) < config.ClickDebounceTime*time.Millisecond {
		return false
	}
	b.lastClick = in.Now
	return true
}

// Draw renders the button with a short pulse after each click.
func (b *Button) Draw(dst *ebiten.Image, fonts *render.Fonts, now time.Time) {
	elapsed := now.Sub(b.lastClick).Seconds()
	r := scaleRect(b.Rect, 1.0+0.08*math.Exp(-elapsed*8))

	bg, fg := config.SurfaceColor, config.TextLightColor
	if b.Primary {
		bg = config.AccentColor
	}
	switch {
	case b.Disabled:
		bg = render.DarkenColor(bg)
	case b.hovered:
		bg = render.LightenColor(bg, 0.15)
	}
	fillRect(dst, r, bg)
	border := config.BorderColor
	if b.hovered && !b.Disabled {
		border = config.FocusColor
	}
	strokeRect(dst, r, 1, border)
	render.DrawCentered(dst, b.Text, fonts.Regular, r.Min.X, r.Min.Y, r.Dx(), r.Dy(), fg)
}

// Link is an underlined text link.
type Link struct {
	Rect    image.Rectangle
	Text    string
	Active  bool
	hovered bool
}

// Update reports a click.
func (l *Link) Update(in *Input) bool {
	l.hovered = in.Over(l.Rect)
	return in.Click(l.Rect)
}

func (l *Link) Draw(dst *ebiten.Image, fonts *render.Fonts) {
	var clr color.Color = config.TextMutedColor
	if l.Active || l.hovered {
		clr = config.TextLightColor
	}
	render.DrawText(dst, l.Text, fonts.Regular, l.Rect.Min.X, l.Rect.Min.Y, clr)
	if l.Active {
		fillRect(dst, image.Rect(l.Rect.Min.X, l.Rect.Max.Y-2, l.Rect.Max.X, l.Rect.Max.Y), config.GoldColor)
	}
}

// PlaceLink sizes a link to its text at (x, y).
func PlaceLink(l *Link, fonts *render.Fonts, x, y int) {
	w := render.TextWidth(fonts.Regular, l.Text)
	l.Rect = image.Rect(x, y, x+w, y+render.LineHeight(fonts.Regular)+4)
}
