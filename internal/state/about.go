// internal/state/about.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"

	"studio-site/internal/config"
	"studio-site/pkg/render"
)

// AboutState shows the studio story and its values.
type AboutState struct {
	basePage
}

func newAboutState(s *Shell) *AboutState {
	return &AboutState{basePage{s: s}}
}

func (a *AboutState) Enter() { a.Update(0) }

func (a *AboutState) Update(deltaTime float64) {
	a.measure(a.draw(nil))
}

func (a *AboutState) Draw(screen *ebiten.Image) { a.draw(screen) }

// draw lays out and, when screen is non-nil, draws the page. It returns
// the y below the content.
func (a *AboutState) draw(screen *ebiten.Image) int {
	fonts := a.s.Fonts()
	x, y, width := config.ContentMarginX, a.s.Top(), a.s.ContentWidth()
	studio := a.s.Content.Studio
	if screen != nil {
		y = heading(screen, fonts, "About "+studio.Name, studio.About, x, y, width)
	} else {
		y += headingHeight(fonts, studio.About, width)
	}

	cols := 2
	if width < 2*config.CardWidth {
		cols = 1
	}
	colW := (width - (cols-1)*config.CardGap) / cols
	lh := render.LineHeight(fonts.Regular)
	rowY, rowH := y, 0
	for i, v := range a.s.Content.Values {
		col := i % cols
		if col == 0 && i > 0 {
			rowY += rowH + config.CardGap
			rowH = 0
		}
		cx := x + col*(colW+config.CardGap)
		lines := render.Wrap(fonts.Regular, v.Description, colW)
		h := render.LineHeight(fonts.Heading) + 6 + len(lines)*lh
		if screen != nil {
			render.DrawText(screen, v.Title, fonts.Heading, cx, rowY, config.GoldColor)
			render.DrawParagraph(screen, v.Description, fonts.Regular, cx, rowY+render.LineHeight(fonts.Heading)+6, colW, config.TextMutedColor)
		}
		rowH = max(rowH, h)
	}
	return rowY + rowH
}
