package render

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// TextWidth returns the advance width of s in pixels.
func TextWidth(face font.Face, s string) int {
	return font.MeasureString(face, s).Round()
}

// Ascent is the distance from the top of a line to its baseline.
func Ascent(face font.Face) int {
	return face.Metrics().Ascent.Round()
}

// LineHeight is the distance between two baselines.
func LineHeight(face font.Face) int {
	return face.Metrics().Height.Round()
}

// DrawText draws s with its top-left corner at (x, y).
func DrawText(dst *ebiten.Image, s string, face font.Face, x, y int, clr color.Color) {
	text.Draw(dst, s, face, x, y+Ascent(face), clr)
}

// DrawCentered draws s centered in the box (x, y, w, h).
func DrawCentered(dst *ebiten.Image, s string, face font.Face, x, y, w, h int, clr color.Color) {
	tw := TextWidth(face, s)
	m := face.Metrics()
	th := (m.Ascent + m.Descent).Round()
	DrawText(dst, s, face, x+(w-tw)/2, y+(h-th)/2, clr)
}

// Wrap breaks s into lines no wider than width. Explicit newlines are kept.
func Wrap(face font.Face, s string, width int) []string {
	var lines []string
	for _, para := range strings.Split(s, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		line := words[0]
		for _, w := range words[1:] {
			if TextWidth(face, line+" "+w) > width {
				lines = append(lines, line)
				line = w
				continue
			}
			line += " " + w
		}
		lines = append(lines, line)
	}
	return lines
}

// DrawParagraph draws wrapped text starting at (x, y) and returns the y
// below the last line.
func DrawParagraph(dst *ebiten.Image, s string, face font.Face, x, y, width int, clr color.Color) int {
	lh := LineHeight(face)
	for _, line := range Wrap(face, s, width) {
		DrawText(dst, line, face, x, y, clr)
		y += lh
	}
	return y
}
