// internal/state/project.go
package state

import (
	"image"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"

	"studio-site/internal/config"
	"studio-site/internal/content"
	"studio-site/internal/ui"
	"studio-site/pkg/render"
)

// ProjectState is a portfolio project's detail page.
type ProjectState struct {
	basePage
	project content.Project
	back    *ui.Button
	book    *ui.Button
}

func newProjectState(s *Shell, p content.Project) *ProjectState {
	return &ProjectState{
		basePage: basePage{s: s},
		project:  p,
		back:     ui.NewButton(image.Rectangle{}, "← Portfolio", false),
		book:     ui.NewButton(image.Rectangle{}, "Start a project", true),
	}
}

func (p *ProjectState) Enter() { p.measure(p.draw(nil)) }

func (p *ProjectState) Update(deltaTime float64) {
	p.measure(p.draw(nil))
	in := p.s.Input()
	switch {
	case p.back.Update(in):
		p.s.Navigate("/portfolio")
	case p.book.Update(in):
		p.s.Navigate("/booking")
	}
}

func (p *ProjectState) Draw(screen *ebiten.Image) { p.draw(screen) }

func (p *ProjectState) draw(screen *ebiten.Image) int {
	fonts := p.s.Fonts()
	x, y, width := config.ContentMarginX, p.s.Top(), p.s.ContentWidth()
	pr := p.project

	p.back.Rect = image.Rect(x, y, x+config.ButtonWidth, y+config.ButtonHeight)
	y += config.ButtonHeight + config.CardGap
	if screen != nil {
		p.back.Draw(screen, fonts, p.s.Clock.Now())
		y = heading(screen, fonts, pr.Title, pr.Subtitle, x, y, width)
	} else {
		y += headingHeight(fonts, pr.Subtitle, width)
	}

	sections := []struct {
		title string
		body  string
	}{
		{"Overview", pr.Overview},
		{"Stack", strings.Join(pr.Stack, " · ")},
		{"Features", bullets(pr.Features)},
		{"Impact", pr.Impact},
	}
	for _, sec := range sections {
		if sec.body == "" {
			continue
		}
		if screen != nil {
			render.DrawText(screen, sec.title, fonts.Heading, x, y, config.GoldColor)
		}
		y += render.LineHeight(fonts.Heading) + 6
		if screen != nil {
			y = render.DrawParagraph(screen, sec.body, fonts.Regular, x, y, width, config.TextLightColor)
		} else {
			y += len(render.Wrap(fonts.Regular, sec.body, width)) * render.LineHeight(fonts.Regular)
		}
		y += config.ParagraphGap * 2
	}

	p.book.Rect = image.Rect(x, y, x+config.ButtonWidth, y+config.ButtonHeight)
	if screen != nil {
		p.book.Draw(screen, fonts, p.s.Clock.Now())
	}
	return y + config.ButtonHeight
}

func bullets(items []string) string {
	if len(items) == 0 {
		return ""
	}
	return "• " + strings.Join(items, "\n• ")
}
