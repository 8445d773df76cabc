// internal/state/catalog.go
package state

import (
	"net/url"

	"github.com/hajimehoshi/ebiten/v2"

	"studio-site/internal/config"
	"studio-site/internal/content"
	"studio-site/internal/sprite"
	"studio-site/internal/ui"
)

// catalogPage is a filterable card grid. Services and the portfolio share
// it and differ in their cards.
type catalogPage struct {
	basePage
	title    string
	subtitle string
	chips    *ui.Chips
	cards    []gridCard
	build    func(category string) []gridCard
	gridY    int
}

func (c *catalogPage) Enter() {
	c.cards = c.build(c.chips.Selected)
	c.layout()
}

func (c *catalogPage) layout() {
	fonts := c.s.Fonts()
	x, y, width := config.ContentMarginX, c.s.Top(), c.s.ContentWidth()
	y += headingHeight(fonts, c.subtitle, width)
	y = c.chips.Layout(fonts, x, y) + config.CardGap
	c.gridY = y
	c.measure(layoutGrid(c.cards, x, y, width))
}

func (c *catalogPage) Update(deltaTime float64) {
	c.layout()
	in := c.s.Input()
	if c.chips.Update(in) {
		c.cards = c.build(c.chips.Selected)
		c.layout()
		return
	}
	if path := clickedCard(c.cards, in); path != "" {
		c.s.Navigate(path)
	}
}

func (c *catalogPage) Draw(screen *ebiten.Image) {
	fonts := c.s.Fonts()
	heading(screen, fonts, c.title, c.subtitle, config.ContentMarginX, c.s.Top(), c.s.ContentWidth())
	c.chips.Draw(screen, fonts)
	if len(c.cards) == 0 {
		ui.DrawEmpty(screen, fonts, config.ContentMarginX, c.gridY, "Nothing here yet.")
		return
	}
	drawGrid(screen, c.s.Cards(), c.cards, c.s.Input())
}

func newServicesState(s *Shell) *catalogPage {
	c := &catalogPage{
		basePage: basePage{s: s},
		title:    "Services",
		subtitle: "What we can build, design and film for you. Pick a service to book a session.",
		chips:    ui.NewChips(s.Content.ServiceCategories),
	}
	c.build = func(category string) []gridCard {
		var cards []gridCard
		for _, svc := range s.Content.FilterServices(category) {
			q := url.Values{"service": {svc.Title}}
			cards = append(cards, gridCard{
				key:  "service/" + svc.Title,
				card: sprite.Card{Title: svc.Title, Category: svc.Category, Summary: svc.Description, Tags: svc.Features},
				path: "/booking?" + q.Encode(),
			})
		}
		return cards
	}
	return c
}

func newPortfolioState(s *Shell) *catalogPage {
	c := &catalogPage{
		basePage: basePage{s: s},
		title:    "Portfolio",
		subtitle: "Selected projects across web, apps and branding.",
		chips:    ui.NewChips(s.Content.ProjectCategories),
	}
	c.build = func(category string) []gridCard {
		var cards []gridCard
		for _, p := range s.Content.FilterProjects(category) {
			cards = append(cards, projectCard(p))
		}
		return cards
	}
	return c
}

func projectCard(p content.Project) gridCard {
	return gridCard{
		key:  "project/" + p.Slug,
		card: sprite.Card{Title: p.Title, Category: p.Category, Summary: p.Summary, Tags: p.Tags},
		path: p.Path(),
	}
}
