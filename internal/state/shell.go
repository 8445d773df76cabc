// internal/state/shell.go
package state

import (
	"context"
	"image"
	"log"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"studio-site/internal/auth"
	"studio-site/internal/config"
	"studio-site/internal/content"
	"studio-site/internal/cursor"
	"studio-site/internal/event"
	"studio-site/internal/forms"
	"studio-site/internal/lifecycle"
	"studio-site/internal/pointer"
	"studio-site/internal/relay"
	"studio-site/internal/router"
	"studio-site/internal/store"
	"studio-site/internal/ui"
	"studio-site/internal/utils"
	"studio-site/pkg/render"
)

// minLoading is how long the splash stays up even when loading is instant.
const minLoading = 1200 * time.Millisecond

// Services are the long-lived dependencies shared by every page.
type Services struct {
	Config     config.Config
	Content    *content.Site
	Dispatcher *event.Dispatcher
	Scheduler  *lifecycle.FrameScheduler
	Clock      utils.Clock
	RNG        *utils.PRNGService
	History    *router.History
	// Auth is nil when the store could not be opened.
	Auth  *auth.Service
	Relay *relay.Async
}

// Page is a State laid out below the header. Height is the laid-out
// content height used to clamp scrolling.
type Page interface {
	State
	Height() int
}

// touchCapturer is a page with a screen region where touches drive the
// cursor instead of scrolling.
type touchCapturer interface {
	TouchRegion() image.Rectangle
}

// Shell owns the page state machine and everything drawn around a page:
// background, header, footer and the fluid cursor overlay.
type Shell struct {
	*Services

	sm      *StateMachine
	page    Page
	route   router.Route
	fonts   *render.Fonts
	cards   *render.CardCache
	header  *ui.Header
	bg      *render.Background
	overlay *render.Overlay
	cursor  *cursor.Component
	scope   *lifecycle.Scope

	forms   map[string]*forms.Form
	in      ui.Input
	chars   []rune
	scroll  float64
	started time.Time
	loaded  bool
	session *store.Session

	width, height int
	scale         float64
	pointerX      int
	pointerY      int
	drag          pointer.Drag
}

// NewShell wires the shell to the dispatcher and shows the loading splash.
// Fonts and card sprites are baked before the first page is shown.
func NewShell(svc *Services, fonts *render.Fonts, cards *render.CardCache, overlay *render.Overlay) *Shell {
	s := &Shell{
		Services: svc,
		sm:       NewStateMachine(),
		fonts:    fonts,
		cards:    cards,
		header:   ui.NewHeader(svc.Content.Studio.Name, svc.Content.Nav),
		bg:       render.NewBackground(config.BackgroundStops, config.BackgroundCycle),
		overlay:  overlay,
		scope:    lifecycle.NewScope(),
		started:  svc.Clock.Now(),
		scale:    1,
		forms: map[string]*forms.Form{
			forms.ContactForm: forms.NewContact(svc.Clock),
			forms.BookingForm: forms.NewBooking(svc.Clock, svc.Content.ServiceTitles(), ""),
			forms.SignupForm:  forms.NewSignup(svc.Clock),
			forms.LoginForm:   forms.NewLogin(svc.Clock),
		},
	}
	s.cursor = cursor.NewComponent(svc.Config.Render, overlay, svc.Dispatcher, svc.Scheduler, svc.Clock, svc.RNG)
	s.scope.Subscribe(svc.Dispatcher, event.Navigated, event.ListenerFunc(s.onNavigated))
	s.scope.Subscribe(svc.Dispatcher, event.Resized, event.ListenerFunc(s.onResized))
	s.scope.Subscribe(svc.Dispatcher, event.SessionChanged, event.ListenerFunc(s.onSessionChanged))
	s.scope.Subscribe(svc.Dispatcher, event.FormSubmitted, event.ListenerFunc(func(e event.Event) {
		log.Printf("shell: %v form submitted", e.Data)
	}))
	s.refreshSession()
	s.setPage(newLoadingState(s))
	return s
}

// Mount sizes the shell and mounts the cursor.
func (s *Shell) Mount(width, height int, scale float64) {
	s.width, s.height, s.scale = width, height, scale
	s.cursor.Mount(width, height, scale)
	s.scope.Defer(s.cursor.Unmount)
}

// Close exits the current page and releases listeners and the cursor.
func (s *Shell) Close() {
	s.sm.SetState(nil)
	s.page = nil
	s.scope.Close()
	log.Printf("shell: closed, %d cards baked", s.cards.Len())
}

func (s *Shell) Fonts() *render.Fonts         { return s.fonts }
func (s *Shell) Cards() *render.CardCache     { return s.cards }
func (s *Shell) Input() *ui.Input             { return &s.in }
func (s *Shell) Route() router.Route          { return s.route }
func (s *Shell) Size() (int, int)             { return s.width, s.height }
func (s *Shell) Form(name string) *forms.Form { return s.forms[name] }

// Top is the screen y where page content starts, after scrolling.
func (s *Shell) Top() int {
	return config.ContentTopY - int(s.scroll)
}

// ContentWidth is the usable width between the side margins.
func (s *Shell) ContentWidth() int {
	return max(200, s.width-2*config.ContentMarginX)
}

// Navigate pushes path onto the history.
func (s *Shell) Navigate(path string) { s.History.Navigate(path) }

// Update reads input, forwards pointer motion to the dispatcher and updates
// the header and the current page.
func (s *Shell) Update(deltaTime float64) {
	now := s.Clock.Now()
	s.in = ui.ReadInput(now, s.chars)
	s.chars = s.in.Chars
	s.cursor.SetCapture(s.touchRegion())
	s.dispatchPointer()

	if !s.loaded && now.Sub(s.started) >= minLoading {
		s.loaded = true
		s.show(s.History.Current())
	}
	if s.loaded {
		s.updateHeader()
		s.scrollBy(-s.in.Wheel * config.ScrollStep)
	}
	s.sm.Update(deltaTime)
	s.pollRelay()
}

func (s *Shell) updateHeader() {
	s.header.Layout(s.fonts, s.width)
	switch path := s.header.Update(&s.in); path {
	case "":
	case "account":
		s.Navigate("/auth")
	default:
		s.Navigate(path)
	}
}

func (s *Shell) scrollBy(dy float64) {
	if s.page == nil {
		return
	}
	visible := s.height - config.ContentTopY - config.FooterHeight
	maxScroll := math.Max(0, float64(s.page.Height()-visible))
	s.scroll = utils.Clamp(s.scroll+dy, 0, maxScroll)
}

func (s *Shell) touchRegion() image.Rectangle {
	if tc, ok := s.page.(touchCapturer); ok && s.loaded {
		return tc.TouchRegion()
	}
	return image.Rectangle{}
}

// dispatchPointer turns mouse motion and the primary touch into pointer
// events. A touch that the cursor consumes does not scroll the page.
func (s *Shell) dispatchPointer() {
	if s.in.X != s.pointerX || s.in.Y != s.pointerY {
		s.pointerX, s.pointerY = s.in.X, s.in.Y
		s.Dispatcher.Dispatch(event.Event{Type: event.PointerMoved, Data: event.PointerPayload{
			X: float64(s.in.X), Y: float64(s.in.Y),
		}})
	}

	ids := ebiten.AppendTouchIDs(nil)
	if len(ids) == 0 {
		s.drag.Release()
		return
	}
	x, y := ebiten.TouchPosition(ids[0])
	consumed := false
	s.Dispatcher.Dispatch(event.Event{Type: event.TouchMoved, Data: event.PointerPayload{
		X: float64(x), Y: float64(y), Consumed: &consumed,
	}})
	s.scrollBy(s.drag.Touch(float64(y), consumed))
}

// Draw draws the background, the page, the chrome and the cursor overlay.
func (s *Shell) Draw(screen *ebiten.Image) {
	t := s.Clock.Now().Sub(s.started).Seconds()
	s.bg.Draw(screen, t)
	s.sm.Draw(screen)
	if s.loaded {
		s.header.Draw(screen, s.fonts, s.width)
		ui.DrawFooter(screen, s.fonts, s.width, s.height, s.footerLine())
	}
	s.overlay.Draw(screen, s.scale, s.Config.Render.OverlayOpacity)
}

func (s *Shell) footerLine() string {
	return "© " + s.Content.Studio.Name + " · " + s.Content.Studio.Email
}

func (s *Shell) onNavigated(e event.Event) {
	r, ok := e.Data.(router.Route)
	if !ok || !s.loaded {
		return
	}
	s.show(r)
}

func (s *Shell) onResized(e event.Event) {
	p, ok := e.Data.(event.ResizePayload)
	if !ok {
		return
	}
	s.width, s.height, s.scale = p.Width, p.Height, p.Scale
	s.scrollBy(0)
}

func (s *Shell) show(r router.Route) {
	s.route = r
	s.scroll = 0
	s.header.SetActive(r.Path)
	log.Printf("shell: showing %s (%s)", r.Path, r.Page)
	s.setPage(s.pageFor(r))
}

func (s *Shell) setPage(p Page) {
	s.page = p
	s.sm.SetState(p)
}

func (s *Shell) pageFor(r router.Route) Page {
	switch r.Page {
	case router.Home:
		return newHomeState(s)
	case router.About:
		return newAboutState(s)
	case router.Services:
		return newServicesState(s)
	case router.Portfolio:
		return newPortfolioState(s)
	case router.Project:
		if p, ok := s.Content.Project(r.Param); ok {
			return newProjectState(s, p)
		}
	case router.Booking:
		return newBookingState(s, r.Query.Get("service"))
	case router.Contact:
		return newContactState(s)
	case router.Auth:
		return newAuthState(s)
	case router.Maintenance:
		return newMaintenanceState(s)
	}
	return newNotFoundState(s)
}

// Submit validates f and hands it to the relay. The result arrives on a
// later frame through pollRelay.
func (s *Shell) Submit(f *forms.Form) {
	params, err := f.Begin()
	if err != nil {
		return
	}
	if s.Relay == nil {
		f.Finish(relay.ErrNotConfigured)
		return
	}
	s.Relay.Go(context.Background(), f.Name, params)
	s.Dispatcher.Dispatch(event.Event{Type: event.FormSubmitted, Data: f.Name})
}

func (s *Shell) pollRelay() {
	if s.Relay == nil {
		return
	}
	for {
		res, ok := s.Relay.Poll()
		if !ok {
			return
		}
		if f := s.forms[res.Form]; f != nil {
			f.Finish(res.Err)
		}
	}
}

// SessionChanged tells listeners that the signed-in user changed.
func (s *Shell) SessionChanged() {
	s.Dispatcher.Dispatch(event.Event{Type: event.SessionChanged})
}

func (s *Shell) onSessionChanged(event.Event) { s.refreshSession() }

// refreshSession re-reads the signed-in user from the store.
func (s *Shell) refreshSession() {
	s.session = nil
	s.header.Account.Text = "Sign in"
	if s.Auth == nil {
		return
	}
	sess, err := s.Auth.Current()
	if err != nil {
		return
	}
	s.session = &sess
	s.header.Account.Text = sess.Label()
}

// Session returns the signed-in user, or nil.
func (s *Shell) Session() *store.Session { return s.session }
