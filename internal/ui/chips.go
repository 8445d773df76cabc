// internal/ui/chips.go
package ui

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"studio-site/internal/config"
	"studio-site/internal/content"
	"studio-site/pkg/render"
)

// Chips is a row of category filters. An "all" entry is added first unless
// the categories already declare one.
type Chips struct {
	IDs      []string
	Labels   []string
	Selected string
	rects    []image.Rectangle
}

func NewChips(categories []content.Category) *Chips {
	c := &Chips{Selected: content.AllCategory}
	if len(categories) == 0 || categories[0].ID != content.AllCategory {
		c.IDs, c.Labels = []string{content.AllCategory}, []string{"All"}
	}
	for _, cat := range categories {
		c.IDs = append(c.IDs, cat.ID)
		c.Labels = append(c.Labels, cat.Name)
	}
	return c
}

// Layout places the chips in a row from (x, y) and returns the y below them.
func (c *Chips) Layout(fonts *render.Fonts, x, y int) int {
	c.rects = c.rects[:0]
	h := render.LineHeight(fonts.Small) + 12
	for _, l := range c.Labels {
		w := render.TextWidth(fonts.Small, l) + 24
		c.rects = append(c.rects, image.Rect(x, y, x+w, y+h))
		x += w + 8
	}
	return y + h
}

// Update reports whether the selection changed.
func (c *Chips) Update(in *Input) bool {
	for i, r := range c.rects {
		if in.Click(r) && c.Selected != c.IDs[i] {
			c.Selected = c.IDs[i]
			return true
		}
	}
	return false
}

func (c *Chips) Draw(dst *ebiten.Image, fonts *render.Fonts) {
	for i, r := range c.rects {
		bg := config.SurfaceColor
		if c.IDs[i] == c.Selected {
			bg = config.AccentColor
		}
		fillRect(dst, r, bg)
		strokeRect(dst, r, 1, config.BorderColor)
		render.DrawCentered(dst, c.Labels[i], fonts.Small, r.Min.X, r.Min.Y, r.Dx(), r.Dy(), config.TextLightColor)
	}
}
