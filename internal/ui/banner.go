// internal/ui/banner.go
package ui

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"studio-site/internal/config"
	"studio-site/internal/forms"
	"studio-site/pkg/render"
)

// DrawBanner draws an inline status message at (x, y) and returns the y
// below it. An empty status draws nothing.
func DrawBanner(dst *ebiten.Image, st forms.Status, fonts *render.Fonts, x, y, width int) int {
	if st.Kind == forms.None || st.Message == "" {
		return y
	}
	bg := config.ErrorColor
	if st.Kind == forms.Success {
		bg = config.SuccessColor
	}
	lines := render.Wrap(fonts.Regular, st.Message, width-24)
	h := len(lines)*render.LineHeight(fonts.Regular) + 16
	fillRect(dst, image.Rect(x, y, x+width, y+h), bg)
	render.DrawParagraph(dst, st.Message, fonts.Regular, x+12, y+8, width-24, config.TextLightColor)
	return y + h
}

// DrawEmpty draws a muted placeholder line.
func DrawEmpty(dst *ebiten.Image, fonts *render.Fonts, x, y int, msg string) {
	render.DrawText(dst, msg, fonts.Regular, x, y, config.TextMutedColor)
}
