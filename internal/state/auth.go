// internal/state/auth.go
package state

import (
	"errors"
	"image"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"studio-site/internal/auth"
	"studio-site/internal/config"
	"studio-site/internal/forms"
	"studio-site/internal/ui"
	"studio-site/pkg/render"
)

type authTab int

const (
	loginTab authTab = iota
	signupTab
	requestTab
)

var tabTitles = []string{"Login", "Sign Up", "Request access"}

const providerName = "google"

// AuthState signs users in and up, and sends access requests through the
// relay. When someone is signed in it shows the account and a sign-out
// button instead.
type AuthState struct {
	basePage
	tab      authTab
	tabs     []*ui.Button
	login    *ui.FormView
	signup   *ui.FormView
	request  *ui.FormView
	provider *ui.Button
	logout   *ui.Button

	// account signups stay local and are not registered with the shell
	signupForm *forms.Form
	status     forms.Status
}

func newAuthState(s *Shell) *AuthState {
	a := &AuthState{
		basePage:   basePage{s: s},
		login:      ui.NewFormView(s.Form(forms.LoginForm), "Login"),
		request:    ui.NewFormView(s.Form(forms.SignupForm), "Send request"),
		provider:   ui.NewButton(image.Rectangle{}, "Continue with Google", false),
		logout:     ui.NewButton(image.Rectangle{}, "Sign out", false),
		signupForm: forms.NewAccount(s.Clock),
	}
	a.signup = ui.NewFormView(a.signupForm, "Create account")
	for _, t := range tabTitles {
		a.tabs = append(a.tabs, ui.NewButton(image.Rectangle{}, t, false))
	}
	if s.Route().Query.Get("mode") == "signup" {
		a.tab = signupTab
	}
	return a
}

func (a *AuthState) Enter() { a.layout() }

func (a *AuthState) Exit() {
	a.login.Blur()
	a.signup.Blur()
	a.request.Blur()
}

func (a *AuthState) view() *ui.FormView {
	switch a.tab {
	case signupTab:
		return a.signup
	case requestTab:
		return a.request
	}
	return a.login
}

func (a *AuthState) layout() {
	fonts := a.s.Fonts()
	x, y := config.ContentMarginX, a.s.Top()+headingHeight(fonts, "", 0)
	width := min(a.s.ContentWidth(), config.FieldWidth)
	if a.signedIn() {
		y += render.LineHeight(fonts.Regular) * 2
		a.logout.Rect = image.Rect(x, y, x+config.ButtonWidth, y+config.ButtonHeight)
		a.measure(y + config.ButtonHeight)
		return
	}

	tx := x
	for i, b := range a.tabs {
		w := render.TextWidth(fonts.Regular, tabTitles[i]) + 32
		b.Rect = image.Rect(tx, y, tx+w, y+config.ButtonHeight)
		b.Primary = authTab(i) == a.tab
		tx += w + 8
	}
	y += config.ButtonHeight + config.CardGap
	if a.status.Kind != forms.None {
		y += len(render.Wrap(fonts.Regular, a.status.Message, width-24))*render.LineHeight(fonts.Regular) + 16 + config.FieldGap
	}
	y = a.view().Layout(fonts, x, y, width)
	if a.tab == loginTab {
		a.provider.Rect = image.Rect(x, y, x+width, y+config.ButtonHeight)
		y += config.ButtonHeight
	}
	a.measure(y)
}

func (a *AuthState) signedIn() bool {
	return a.s.Session() != nil
}

func (a *AuthState) Update(deltaTime float64) {
	a.layout()
	in := a.s.Input()
	if a.s.Auth == nil {
		return
	}
	if a.signedIn() {
		if a.logout.Update(in) {
			if err := a.s.Auth.Logout(); err != nil {
				log.Printf("auth: logout failed: %v", err)
			}
			a.status = forms.Status{}
			a.s.SessionChanged()
		}
		return
	}

	for i, b := range a.tabs {
		if b.Update(in) && a.tab != authTab(i) {
			a.tab = authTab(i)
			a.status = forms.Status{}
			a.view().Form.ClearStatus()
			return
		}
	}
	if a.tab == loginTab && a.provider.Update(in) {
		a.providerLogin()
		return
	}
	if !a.view().Update(in) {
		return
	}
	switch a.tab {
	case loginTab:
		a.doLogin()
	case signupTab:
		a.doSignup()
	case requestTab:
		a.s.Submit(a.request.Form)
	}
}

func (a *AuthState) doLogin() {
	f := a.login.Form
	if err := f.Validate(); err != nil {
		a.status = forms.Status{Kind: forms.Failure, Message: forms.Message(err)}
		return
	}
	_, err := a.s.Auth.Login(f.Field("email").Value, f.Field("password").Value)
	a.finish(f, err, "")
}

func (a *AuthState) doSignup() {
	f := a.signupForm
	if err := f.Validate(); err != nil {
		a.status = forms.Status{Kind: forms.Failure, Message: forms.Message(err)}
		return
	}
	_, err := a.s.Auth.Signup(f.Field("name").Value, f.Field("email").Value, f.Field("password").Value)
	a.finish(f, err, "Account created. Logging you in...")
}

// providerLogin stands in for a third-party sign-in using the email typed
// into the login form.
func (a *AuthState) providerLogin() {
	email := a.login.Form.Field("email").Value
	_, err := a.s.Auth.ProviderLogin("", email, providerName)
	if errors.Is(err, auth.ErrInvalidEmail) {
		a.status = forms.Status{Kind: forms.Failure, Message: "Enter your email above to continue with Google."}
		return
	}
	a.finish(a.login.Form, err, "")
}

func (a *AuthState) finish(f *forms.Form, err error, success string) {
	if err != nil {
		a.status = forms.Status{Kind: forms.Failure, Message: auth.Message(err)}
		return
	}
	f.Reset()
	a.status = forms.Status{Kind: forms.Success, Message: success}
	a.s.SessionChanged()
	a.s.Navigate("/")
}

func (a *AuthState) Draw(screen *ebiten.Image) {
	fonts := a.s.Fonts()
	now := a.s.Clock.Now()
	x, y := config.ContentMarginX, a.s.Top()
	width := min(a.s.ContentWidth(), config.FieldWidth)

	if a.s.Auth == nil {
		heading(screen, fonts, "Account", "Accounts are unavailable right now. Please try again later.", x, y, width)
		return
	}
	if a.signedIn() {
		sess := a.s.Session()
		y = heading(screen, fonts, "Account", "", x, y, width)
		line := "Signed in as " + sess.Name + " (" + sess.Email + ")"
		if sess.Provider != "" {
			line += " via " + sess.Provider
		}
		render.DrawText(screen, line, fonts.Regular, x, y, config.TextLightColor)
		a.logout.Draw(screen, fonts, now)
		return
	}

	y = heading(screen, fonts, "Welcome", "", x, y, width)
	for _, b := range a.tabs {
		b.Draw(screen, fonts, now)
	}
	y += config.ButtonHeight + config.CardGap
	ui.DrawBanner(screen, a.status, fonts, x, y, width)
	a.view().Draw(screen, fonts, now)
	if a.tab == loginTab {
		a.provider.Draw(screen, fonts, now)
	}
}
