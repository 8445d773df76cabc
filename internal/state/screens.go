// internal/state/screens.go
package state

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"studio-site/internal/config"
	"studio-site/internal/ui"
	"studio-site/pkg/render"
)

// statusScreen is a centered message with one button.
type statusScreen struct {
	basePage
	title   string
	message string
	button  *ui.Button
	target  string
}

func (p *statusScreen) Update(deltaTime float64) {
	w, h := p.s.Size()
	p.button.Rect.Min.X = (w - config.ButtonWidth) / 2
	p.button.Rect.Min.Y = h/2 + 40
	p.button.Rect.Max.X = p.button.Rect.Min.X + config.ButtonWidth
	p.button.Rect.Max.Y = p.button.Rect.Min.Y + config.ButtonHeight
	if p.target != "" && p.button.Update(p.s.Input()) {
		p.s.Navigate(p.target)
	}
}

func (p *statusScreen) Enter() { p.Update(0) }

func (p *statusScreen) Draw(screen *ebiten.Image) {
	fonts := p.s.Fonts()
	w, h := p.s.Size()
	render.DrawCentered(screen, p.title, fonts.Title, 0, h/2-80, w, render.LineHeight(fonts.Title), config.TextLightColor)
	render.DrawCentered(screen, p.message, fonts.Regular, 0, h/2-20, w, render.LineHeight(fonts.Regular), config.TextMutedColor)
	if p.target != "" {
		p.button.Draw(screen, fonts, p.s.Clock.Now())
	}
}

func newNotFoundState(s *Shell) *statusScreen {
	return &statusScreen{
		basePage: basePage{s: s},
		title:    "404",
		message:  "The page you are looking for does not exist or has moved.",
		button:   ui.NewButton(image.Rectangle{}, "Back home", true),
		target:   "/",
	}
}

func newMaintenanceState(s *Shell) *statusScreen {
	return &statusScreen{
		basePage: basePage{s: s},
		title:    "We'll be right back",
		message:  s.Content.Studio.Name + " is undergoing scheduled maintenance. Please check back soon.",
		button:   ui.NewButton(image.Rectangle{}, "", false),
	}
}

// LoadingState is the splash shown while the site starts.
type LoadingState struct {
	basePage
	t float64
}

func newLoadingState(s *Shell) *LoadingState {
	return &LoadingState{basePage: basePage{s: s}}
}

func (l *LoadingState) Update(deltaTime float64) { l.t += deltaTime }

func (l *LoadingState) Draw(screen *ebiten.Image) {
	w, h := l.s.Size()
	ui.DrawLoader(screen, float64(w)/2, float64(h)/2, 60, l.t)
	fonts := l.s.Fonts()
	render.DrawCentered(screen, l.s.Content.Studio.Name, fonts.Heading, 0, h/2+60, w, render.LineHeight(fonts.Heading), config.TextMutedColor)
}
