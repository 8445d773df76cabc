// internal/state/home.go
package state

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"studio-site/internal/config"
	"studio-site/internal/event"
	"studio-site/internal/lifecycle"
	"studio-site/internal/starfield"
	"studio-site/internal/ui"
	"studio-site/pkg/render"
)

// featuredCount is how many projects the home page shows.
const featuredCount = 3

// HomeState is the landing page: the starfield behind the hero, two calls
// to action and the featured projects.
type HomeState struct {
	basePage
	field    *starfield.Field
	stars    *render.StarfieldRenderer
	scope    *lifecycle.Scope
	t        float64
	work     *ui.Button
	book     *ui.Button
	featured []gridCard
	heroY    int
}

func newHomeState(s *Shell) *HomeState {
	h := &HomeState{
		basePage: basePage{s: s},
		work:     ui.NewButton(image.Rectangle{}, "View our work", true),
		book:     ui.NewButton(image.Rectangle{}, "Book a session", false),
	}
	for i, p := range s.Content.Projects {
		if i == featuredCount {
			break
		}
		h.featured = append(h.featured, projectCard(p))
	}
	return h
}

// Enter builds the starfield and aims its camera at the pointer.
func (h *HomeState) Enter() {
	h.field = starfield.New(h.s.Config.Starfield, config.TPS, h.s.RNG)
	h.stars = render.NewStarfieldRenderer()
	h.scope = lifecycle.NewScope()
	h.scope.Subscribe(h.s.Dispatcher, event.PointerMoved, event.ListenerFunc(h.onPointer))
	h.layout()
}

func (h *HomeState) Exit() {
	h.scope.Close()
	h.field = nil
	h.stars = nil
}

func (h *HomeState) onPointer(e event.Event) {
	p, ok := e.Data.(event.PointerPayload)
	w, ht := h.s.Size()
	if !ok || w == 0 || ht == 0 {
		return
	}
	h.field.Aim(p.X/float64(w), p.Y/float64(ht))
}

func (h *HomeState) layout() {
	fonts := h.s.Fonts()
	_, screenH := h.s.Size()
	x, y := config.ContentMarginX, h.s.Top()
	h.heroY = y + max(40, screenH/5)
	y = h.heroY + render.LineHeight(fonts.Title)*2 + render.LineHeight(fonts.Heading) + 24
	h.work.Rect = image.Rect(x, y, x+config.ButtonWidth, y+config.ButtonHeight)
	bx := x + config.ButtonWidth + config.CardGap
	h.book.Rect = image.Rect(bx, y, bx+config.ButtonWidth, y+config.ButtonHeight)
	y += config.ButtonHeight + max(80, screenH/4)
	y += render.LineHeight(fonts.Heading) + config.ParagraphGap
	h.measure(layoutGrid(h.featured, x, y, h.s.ContentWidth()))
}

// TouchRegion is the hero band, from the top of the content down to just
// below the calls to action. Touches there paint instead of scrolling.
func (h *HomeState) TouchRegion() image.Rectangle {
	w, _ := h.s.Size()
	return image.Rect(0, h.s.Top(), w, h.work.Rect.Max.Y+config.CardGap)
}

func (h *HomeState) Update(deltaTime float64) {
	h.t += deltaTime
	h.field.Step()
	h.layout()
	in := h.s.Input()
	switch {
	case h.work.Update(in):
		h.s.Navigate("/portfolio")
	case h.book.Update(in):
		h.s.Navigate("/booking")
	default:
		if path := clickedCard(h.featured, in); path != "" {
			h.s.Navigate(path)
		}
	}
}

func (h *HomeState) Draw(screen *ebiten.Image) {
	h.stars.Draw(screen, h.field, h.t)

	fonts := h.s.Fonts()
	now := h.s.Clock.Now()
	x := config.ContentMarginX
	studio := h.s.Content.Studio
	y := h.heroY
	render.DrawText(screen, "We are "+studio.Name+".", fonts.Title, x, y, config.TextLightColor)
	y += render.LineHeight(fonts.Title) * 2
	render.DrawText(screen, studio.Tagline, fonts.Heading, x, y, config.GoldColor)
	h.work.Draw(screen, fonts, now)
	h.book.Draw(screen, fonts, now)

	if len(h.featured) > 0 {
		y = h.featured[0].rect.Min.Y - render.LineHeight(fonts.Heading) - config.ParagraphGap
		render.DrawText(screen, "Featured work", fonts.Heading, x, y, config.TextLightColor)
		drawGrid(screen, h.s.Cards(), h.featured, h.s.Input())
	}
}
