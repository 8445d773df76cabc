package forms

import "studio-site/internal/utils"

// Form names, also used as the relay's form tag.
const (
	ContactForm = "contact"
	BookingForm = "booking"
	SignupForm  = "signup"
	LoginForm   = "login"
	AccountForm = "account"
)

const (
	MsgContactSent = "Message sent successfully!"
	MsgBookingSent = "Booking request sent! We will confirm your session by email."
	MsgSignupSent  = "Signup request sent! We will contact you soon."
	MsgSignupError = "Failed to send signup. Please try again."
)

func NewContact(clock utils.Clock) *Form {
	return newForm(ContactForm, MsgContactSent, clock,
		&Field{Name: "name", Label: "Name", Kind: Text, Required: true},
		&Field{Name: "email", Label: "Email", Kind: Email, Required: true},
		&Field{Name: "message", Label: "Message", Kind: Multiline, Required: true},
	)
}

// NewBooking builds the session booking form. services are the choices for
// the service field; preselect is applied when it is one of them.
func NewBooking(clock utils.Clock, services []string, preselect string) *Form {
	f := newForm(BookingForm, MsgBookingSent, clock,
		&Field{Name: "name", Label: "Name", Kind: Text, Required: true},
		&Field{Name: "email", Label: "Email", Kind: Email, Required: true},
		&Field{Name: "service", Label: "Service", Kind: Choice, Required: true, Options: services},
		&Field{Name: "date", Label: "Preferred date", Kind: Date, Required: true},
		&Field{Name: "message", Label: "Project details", Kind: Multiline},
	)
	if contains(services, preselect) {
		f.Set("service", preselect)
	}
	return f
}

// NewSignup builds the signup request form. The password is checked for
// presence and never leaves the client.
func NewSignup(clock utils.Clock) *Form {
	return newForm(SignupForm, MsgSignupSent, clock,
		&Field{Name: "name", Label: "Name", Kind: Text, Required: true},
		&Field{Name: "email", Label: "Email", Kind: Email, Required: true},
		&Field{Name: "password", Label: "Password", Kind: Password, Required: true},
	)
}

// NewAccount builds the local account sign-up form. It has the fields of
// the signup request but is handed to the account service, never to the
// relay.
func NewAccount(clock utils.Clock) *Form {
	return newForm(AccountForm, "", clock,
		&Field{Name: "name", Label: "Name", Kind: Text, Required: true},
		&Field{Name: "email", Label: "Email", Kind: Email, Required: true},
		&Field{Name: "password", Label: "Password", Kind: Password, Required: true},
	)
}

// NewLogin builds the login form. It is validated locally and handed to the
// account service, never to the relay.
func NewLogin(clock utils.Clock) *Form {
	return newForm(LoginForm, "", clock,
		&Field{Name: "email", Label: "Email", Kind: Email, Required: true},
		&Field{Name: "password", Label: "Password", Kind: Password, Required: true},
	)
}

// FailureMessage is the banner text for a failed send of the named form.
func FailureMessage(form string) string {
	if form == SignupForm {
		return MsgSignupError
	}
	return MsgSendFailed
}
