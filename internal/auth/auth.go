// Package auth is the site's local sign-in placeholder. Accounts live in the
// store with bcrypt password hashes; third-party sign-ins only open a
// session.
package auth

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"studio-site/internal/forms"
	"studio-site/internal/store"
	"studio-site/internal/utils"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountExists      = errors.New("account already exists")
	ErrMissingFields      = errors.New("missing required fields")
	ErrInvalidEmail       = errors.New("invalid email address")
	ErrNotSignedIn        = errors.New("not signed in")
)

var messages = map[error]string{
	ErrInvalidCredentials: "Invalid email or password.",
	ErrAccountExists:      "Account already exists with this email.",
	ErrMissingFields:      "Please fill in all fields.",
	ErrInvalidEmail:       forms.MsgEmail,
}

// Message is the banner text for an error from Signup or Login.
func Message(err error) string {
	for e, msg := range messages {
		if errors.Is(err, e) {
			return msg
		}
	}
	return "Signup failed. Please try again."
}

// Service signs users up, in and out.
type Service struct {
	store *store.Store
	clock utils.Clock
	cost  int
}

// New returns a service over st. cost is the bcrypt cost; 0 selects
// bcrypt.DefaultCost.
func New(st *store.Store, clock utils.Clock, cost int) *Service {
	if clock == nil {
		clock = utils.SystemClock{}
	}
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &Service{store: st, clock: clock, cost: cost}
}

// Signup creates an account and signs it in.
func (s *Service) Signup(name, email, password string) (store.Session, error) {
	name, email = strings.TrimSpace(name), strings.TrimSpace(email)
	if name == "" || email == "" || password == "" {
		return store.Session{}, ErrMissingFields
	}
	if !forms.ValidEmail(email) {
		return store.Session{}, ErrInvalidEmail
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return store.Session{}, fmt.Errorf("auth: failed to hash password: %w", err)
	}
	created, err := s.store.CreateAccount(store.Account{
		Email:        email,
		Name:         name,
		PasswordHash: hash,
		Created:      s.clock.Now().UTC(),
	})
	if err != nil {
		return store.Session{}, fmt.Errorf("auth: failed to create account: %w", err)
	}
	if !created {
		return store.Session{}, ErrAccountExists
	}
	log.Printf("auth: account created for %s", store.AccountKey(email))
	return s.open(store.Session{Email: email, Name: name})
}

// Login checks the password and signs the account in. A failed login leaves
// any existing session untouched.
func (s *Service) Login(email, password string) (store.Session, error) {
	a, err := s.store.Account(email)
	if errors.Is(err, store.ErrNotFound) {
		return store.Session{}, ErrInvalidCredentials
	}
	if err != nil {
		return store.Session{}, fmt.Errorf("auth: %w", err)
	}
	if len(a.PasswordHash) == 0 || bcrypt.CompareHashAndPassword(a.PasswordHash, []byte(password)) != nil {
		return store.Session{}, ErrInvalidCredentials
	}
	return s.open(store.Session{Email: a.Email, Name: a.Name})
}

// ProviderLogin opens a session for a third-party identity without creating
// an account.
func (s *Service) ProviderLogin(name, email, provider string) (store.Session, error) {
	email = strings.TrimSpace(email)
	if !forms.ValidEmail(email) {
		return store.Session{}, ErrInvalidEmail
	}
	if strings.TrimSpace(name) == "" {
		name = "User"
	}
	return s.open(store.Session{Email: email, Name: name, Provider: provider})
}

func (s *Service) Logout() error {
	return s.store.ClearSession()
}

// Current returns the signed-in user, or ErrNotSignedIn.
func (s *Service) Current() (store.Session, error) {
	sess, err := s.store.Session()
	if errors.Is(err, store.ErrNotFound) {
		return store.Session{}, ErrNotSignedIn
	}
	return sess, err
}

// Authenticated reports whether someone is signed in.
func (s *Service) Authenticated() bool {
	_, err := s.Current()
	return err == nil
}

func (s *Service) open(sess store.Session) (store.Session, error) {
	sess.Email = store.AccountKey(sess.Email)
	sess.Started = s.clock.Now().UTC()
	if err := s.store.SetSession(sess); err != nil {
		return store.Session{}, fmt.Errorf("auth: failed to save session: %w", err)
	}
	return sess, nil
}
