// internal/state/pages.go
package state

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"studio-site/internal/config"
	"studio-site/internal/sprite"
	"studio-site/internal/ui"
	"studio-site/pkg/render"
)

// basePage carries what every page shares. Pages embed it and override
// what they need.
type basePage struct {
	s      *Shell
	height int
}

func (p *basePage) Enter()                    {}
func (p *basePage) Exit()                     {}
func (p *basePage) Update(deltaTime float64)  {}
func (p *basePage) Draw(screen *ebiten.Image) {}
func (p *basePage) Height() int               { return p.height }

// measure records the content height from the page top to bottom.
func (p *basePage) measure(bottom int) {
	p.height = bottom - p.s.Top() + config.CardGap
}

// gridCard is one clickable card in a grid.
type gridCard struct {
	key  string
	card sprite.Card
	rect image.Rectangle
	path string
}

// layoutGrid places cards in rows from (x, y) within width and returns the
// y below the last row.
func layoutGrid(cards []gridCard, x, y, width int) int {
	cols := max(1, (width+config.CardGap)/(config.CardWidth+config.CardGap))
	for i := range cards {
		col, row := i%cols, i/cols
		cx := x + col*(config.CardWidth+config.CardGap)
		cy := y + row*(config.CardHeight+config.CardGap)
		cards[i].rect = image.Rect(cx, cy, cx+config.CardWidth, cy+config.CardHeight)
	}
	if len(cards) == 0 {
		return y
	}
	rows := (len(cards) + cols - 1) / cols
	return y + rows*(config.CardHeight+config.CardGap)
}

// clickedCard returns the path of a clicked card, or "".
func clickedCard(cards []gridCard, in *ui.Input) string {
	for _, c := range cards {
		if in.Click(c.rect) {
			return c.path
		}
	}
	return ""
}

func drawGrid(screen *ebiten.Image, cache *render.CardCache, cards []gridCard, in *ui.Input) {
	for _, c := range cards {
		img := cache.Get(c.key, c.card)
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(c.rect.Min.X), float64(c.rect.Min.Y))
		if in.Over(c.rect) {
			op.GeoM.Translate(0, -3)
			op.ColorScale.Scale(1.1, 1.1, 1.1, 1)
		}
		screen.DrawImage(img, op)
	}
}

// heading draws a page title and subtitle and returns the y below them.
func heading(screen *ebiten.Image, fonts *render.Fonts, title, subtitle string, x, y, width int) int {
	render.DrawText(screen, title, fonts.Title, x, y, config.TextLightColor)
	y += render.LineHeight(fonts.Title) + 8
	if subtitle != "" {
		y = render.DrawParagraph(screen, subtitle, fonts.Regular, x, y, width, config.TextMutedColor)
	}
	return y + config.ParagraphGap*2
}

// headingHeight mirrors heading without drawing.
func headingHeight(fonts *render.Fonts, subtitle string, width int) int {
	h := render.LineHeight(fonts.Title) + 8
	if subtitle != "" {
		h += len(render.Wrap(fonts.Regular, subtitle, width)) * render.LineHeight(fonts.Regular)
	}
	return h + config.ParagraphGap*2
}
