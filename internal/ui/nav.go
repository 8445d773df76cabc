// internal/ui/nav.go
package ui

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"studio-site/internal/config"
	"studio-site/internal/content"
	"studio-site/pkg/render"
)

// Header is the top navigation bar: the studio name, one link per nav entry
// and the account link on the right.
type Header struct {
	Studio  string
	Links   []*Link
	Paths   []string
	Account *Link

	home Link
}

func NewHeader(studio string, nav []content.Link) *Header {
	h := &Header{Studio: studio, Account: &Link{Text: "Sign in"}}
	h.home.Text = studio
	for _, l := range nav {
		h.Links = append(h.Links, &Link{Text: l.Label})
		h.Paths = append(h.Paths, l.Path)
	}
	return h
}

// Layout positions the header across width.
func (h *Header) Layout(fonts *render.Fonts, width int) {
	y := (config.HeaderHeight - render.LineHeight(fonts.Regular)) / 2
	PlaceLink(&h.home, fonts, config.ContentMarginX, y)
	h.home.Rect.Max.X = h.home.Rect.Min.X + render.TextWidth(fonts.Heading, h.Studio)

	x := width - config.ContentMarginX - render.TextWidth(fonts.Regular, h.Account.Text)
	PlaceLink(h.Account, fonts, x, y)
	x -= 32
	for i := len(h.Links) - 1; i >= 0; i-- {
		x -= render.TextWidth(fonts.Regular, h.Links[i].Text)
		PlaceLink(h.Links[i], fonts, x, y)
		x -= 24
	}
}

// SetActive underlines the link whose path is current.
func (h *Header) SetActive(path string) {
	for i, l := range h.Links {
		l.Active = h.Paths[i] == path
	}
	h.Account.Active = path == "/auth"
}

// Update returns the path of a clicked link, "account" for the account
// link, or "".
func (h *Header) Update(in *Input) string {
	if h.home.Update(in) {
		return "/"
	}
	for i, l := range h.Links {
		if l.Update(in) {
			return h.Paths[i]
		}
	}
	if h.Account.Update(in) {
		return "account"
	}
	return ""
}

func (h *Header) Draw(dst *ebiten.Image, fonts *render.Fonts, width int) {
	fillRect(dst, image.Rect(0, 0, width, config.HeaderHeight), render.WithAlpha(config.BackgroundColor, 0.85))
	fillRect(dst, image.Rect(0, config.HeaderHeight-1, width, config.HeaderHeight), config.BorderColor)
	render.DrawText(dst, h.Studio, fonts.Heading, h.home.Rect.Min.X, h.home.Rect.Min.Y-2, config.GoldColor)
	for _, l := range h.Links {
		l.Draw(dst, fonts)
	}
	h.Account.Draw(dst, fonts)
}

// DrawFooter draws the bottom bar with the studio line.
func DrawFooter(dst *ebiten.Image, fonts *render.Fonts, width, height int, line string) {
	top := height - config.FooterHeight
	fillRect(dst, image.Rect(0, top, width, height), render.WithAlpha(config.BackgroundColor, 0.85))
	render.DrawCentered(dst, line, fonts.Small, 0, top, width, config.FooterHeight, config.TextMutedColor)
}
