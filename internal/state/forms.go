// internal/state/forms.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"

	"studio-site/internal/config"
	"studio-site/internal/forms"
	"studio-site/internal/ui"
)

// formPage is a page with a heading, an intro paragraph and one form.
type formPage struct {
	basePage
	title string
	intro string
	view  *ui.FormView
}

func newFormPage(s *Shell, f *forms.Form, title, intro, submit string) *formPage {
	return &formPage{
		basePage: basePage{s: s},
		title:    title,
		intro:    intro,
		view:     ui.NewFormView(f, submit),
	}
}

func (p *formPage) Enter() {
	p.view.Form.ClearStatus()
	p.layout()
}

func (p *formPage) Exit() { p.view.Blur() }

func (p *formPage) layout() {
	fonts := p.s.Fonts()
	x, y, width := config.ContentMarginX, p.s.Top(), p.s.ContentWidth()
	y += headingHeight(fonts, p.intro, width)
	p.measure(p.view.Layout(fonts, x, y, min(width, config.FieldWidth)))
}

func (p *formPage) Update(deltaTime float64) {
	p.layout()
	if p.view.Update(p.s.Input()) {
		p.s.Submit(p.view.Form)
	}
}

func (p *formPage) Draw(screen *ebiten.Image) {
	fonts := p.s.Fonts()
	heading(screen, fonts, p.title, p.intro, config.ContentMarginX, p.s.Top(), p.s.ContentWidth())
	p.view.Draw(screen, fonts, p.s.Clock.Now())
}

func newContactState(s *Shell) *formPage {
	intro := "Tell us about your project and we will get back to you within two working days. " +
		"You can also write to " + s.Content.Studio.Email + "."
	return newFormPage(s, s.Form(forms.ContactForm), "Contact", intro, "Send message")
}

// newBookingState opens the booking form with service preselected when it
// names a listed service.
func newBookingState(s *Shell, service string) *formPage {
	f := s.Form(forms.BookingForm)
	if service != "" && !f.Submitting() {
		if fld := f.Field("service"); fld != nil && contains(fld.Options, service) {
			fld.Value = service
		}
	}
	intro := "Book a free discovery session. Pick a service and a preferred date and we will confirm by email."
	return newFormPage(s, f, "Book a session", intro, "Request booking")
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
