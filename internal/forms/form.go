// Package forms validates the site's contact, booking and signup forms and
// hands valid submissions to a Sender.
package forms

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"studio-site/internal/utils"
)

var (
	// ErrInvalid wraps a validation failure. The wrapped message is the text
	// shown to the user.
	ErrInvalid = errors.New("invalid form")
	// ErrBusy is returned while a submission is in flight.
	ErrBusy = errors.New("submission in progress")
)

const (
	MsgRequired     = "Please fill in all required fields."
	MsgEmail        = "Please enter a valid email address."
	MsgDateFormat   = "Please enter the date as YYYY-MM-DD."
	MsgDatePast     = "Please choose a date that is not in the past."
	MsgChoice       = "Please choose one of the listed options."
	MsgSendFailed   = "Failed to send message. Please try again."
	dateLayout      = "2006-01-02"
	defaultTimeout  = 15 * time.Second
	maxFieldLength  = 4000
	maxSingleLength = 200
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidEmail reports whether s looks like an email address.
func ValidEmail(s string) bool {
	return emailPattern.MatchString(strings.TrimSpace(s))
}

// Kind is how a field is edited and checked.
type Kind int

const (
	Text Kind = iota
	Email
	Multiline
	Password
	Date
	Choice
)

// Field is one input of a form.
type Field struct {
	Name     string
	Label    string
	Kind     Kind
	Required bool
	Options  []string // for Choice
	Value    string
}

// Secret fields are validated but never sent.
func (f *Field) Secret() bool { return f.Kind == Password }

// MaxLength is the longest value the field accepts.
func (f *Field) MaxLength() int {
	if f.Kind == Multiline {
		return maxFieldLength
	}
	return maxSingleLength
}

// StatusKind is the outcome shown under a form.
type StatusKind int

const (
	None StatusKind = iota
	Success
	Failure
)

// Status is the inline banner under a form.
type Status struct {
	Kind    StatusKind
	Message string
}

// Sender delivers a submission. Implementations must honor ctx.
type Sender interface {
	Send(ctx context.Context, form string, params map[string]string) error
}

// Form is a named set of fields with the state of its last submission.
type Form struct {
	Name       string
	Fields     []*Field
	SuccessMsg string

	clock      utils.Clock
	status     Status
	submitting bool
}

func newForm(name, success string, clock utils.Clock, fields ...*Field) *Form {
	if clock == nil {
		clock = utils.SystemClock{}
	}
	return &Form{Name: name, Fields: fields, SuccessMsg: success, clock: clock}
}

// Field returns the named field or nil.
func (f *Form) Field(name string) *Field {
	for _, fld := range f.Fields {
		if fld.Name == name {
			return fld
		}
	}
	return nil
}

// Set assigns a field value. Unknown names are ignored.
func (f *Form) Set(name, value string) {
	if fld := f.Field(name); fld != nil {
		fld.Value = value
	}
}

func (f *Form) Status() Status   { return f.status }
func (f *Form) Submitting() bool { return f.submitting }
func (f *Form) ClearStatus()     { f.status = Status{} }

// Validate returns nil or an ErrInvalid error carrying the first failing
// rule's message. Required fields are checked before formats.
func (f *Form) Validate() error {
	for _, fld := range f.Fields {
		if fld.Required && strings.TrimSpace(fld.Value) == "" {
			return invalid(MsgRequired)
		}
	}
	for _, fld := range f.Fields {
		v := strings.TrimSpace(fld.Value)
		if v == "" {
			continue
		}
		if utf8.RuneCountInString(v) > fld.MaxLength() {
			return invalid(fmt.Sprintf("%s is too long.", fld.Label))
		}
		switch fld.Kind {
		case Email:
			if !ValidEmail(v) {
				return invalid(MsgEmail)
			}
		case Date:
			d, err := time.Parse(dateLayout, v)
			if err != nil {
				return invalid(MsgDateFormat)
			}
			now := f.clock.Now()
			today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
			if d.Before(today) {
				return invalid(MsgDatePast)
			}
		case Choice:
			if !contains(fld.Options, v) {
				return invalid(MsgChoice)
			}
		}
	}
	return nil
}

func invalid(msg string) error {
	return fmt.Errorf("%w: %s", ErrInvalid, msg)
}

// Message extracts the user-facing text from a validation error.
func Message(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, ErrInvalid) {
		return strings.TrimPrefix(err.Error(), ErrInvalid.Error()+": ")
	}
	return MsgSendFailed
}

// Begin validates the form and marks it as submitting. It returns the
// parameters to send. On a validation failure the status is set and nothing
// may be sent.
func (f *Form) Begin() (map[string]string, error) {
	if f.submitting {
		return nil, ErrBusy
	}
	if err := f.Validate(); err != nil {
		f.status = Status{Kind: Failure, Message: Message(err)}
		return nil, err
	}
	f.status = Status{}
	f.submitting = true
	return f.Params(), nil
}

// Finish records the result of the send started by Begin. Successful
// submissions clear the fields.
func (f *Form) Finish(err error) Status {
	f.submitting = false
	if err != nil {
		f.status = Status{Kind: Failure, Message: FailureMessage(f.Name)}
		return f.status
	}
	f.Reset()
	f.status = Status{Kind: Success, Message: f.SuccessMsg}
	return f.status
}

// Submit validates and sends synchronously.
func (f *Form) Submit(ctx context.Context, sender Sender) Status {
	params, err := f.Begin()
	if err != nil {
		return f.status
	}
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()
	return f.Finish(sender.Send(ctx, f.Name, params))
}

// Params returns the non-secret field values, trimmed.
func (f *Form) Params() map[string]string {
	params := make(map[string]string, len(f.Fields))
	for _, fld := range f.Fields {
		if fld.Secret() {
			continue
		}
		params[fld.Name] = strings.TrimSpace(fld.Value)
	}
	return params
}

// Reset empties every field.
func (f *Form) Reset() {
	for _, fld := range f.Fields {
		fld.Value = ""
	}
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

// Insert appends typed characters, dropping control characters and anything
// past MaxLength. Newlines are kept only in multiline fields.
func (f *Field) Insert(chars []rune) {
	runes := []rune(f.Value)
	for _, r := range chars {
		if len(runes) >= f.MaxLength() {
			break
		}
		if r == '\n' && f.Kind != Multiline {
			continue
		}
		if r != '\n' && unicode.IsControl(r) {
			continue
		}
		runes = append(runes, r)
	}
	f.Value = string(runes)
}

// Backspace removes the last character.
func (f *Field) Backspace() {
	runes := []rune(f.Value)
	if len(runes) > 0 {
		f.Value = string(runes[:len(runes)-1])
	}
}

// Display is the value as drawn: secret fields are masked.
func (f *Field) Display() string {
	if f.Secret() {
		return strings.Repeat("•", utf8.RuneCountInString(f.Value))
	}
	return f.Value
}

// Cycle steps a Choice field to the next option, wrapping to the first.
func (f *Field) Cycle() {
	if f.Kind != Choice || len(f.Options) == 0 {
		return
	}
	for i, o := range f.Options {
		if o == f.Value {
			f.Value = f.Options[(i+1)%len(f.Options)]
			return
		}
	}
	f.Value = f.Options[0]
}
