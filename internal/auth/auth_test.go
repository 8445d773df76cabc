package auth

import (
	"errors"
	"io"
	"log"
	"os"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"studio-site/internal/store"
	"studio-site/internal/utils"
)

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func newService(t *testing.T) (*Service, *store.Store) {
	st := store.MustTempStore(t)
	clock := utils.NewMockClock(time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC))
	return New(st, clock, bcrypt.MinCost), st
}

func TestSignupThenLogin(t *testing.T) {
	s, st := newService(t)

	if _, err := s.Signup("A", "a@x.com", "p"); err != nil {
		t.Fatal(err)
	}
	a, err := st.Account("a@x.com")
	if err != nil {
		t.Fatal(err)
	}
	if string(a.PasswordHash) == "p" || len(a.PasswordHash) == 0 {
		t.Error("password not hashed")
	}
	if err := s.Logout(); err != nil {
		t.Fatal(err)
	}
	if s.Authenticated() {
		t.Fatal("still signed in after logout")
	}

	if _, err := s.Login("a@x.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("wrong password error = %v", err)
	}
	if s.Authenticated() {
		t.Fatal("session created by a failed login")
	}

	sess, err := s.Login("A@X.com", "p")
	if err != nil {
		t.Fatal(err)
	}
	if sess.Name != "A" || sess.Email != "a@x.com" {
		t.Errorf("session = %+v", sess)
	}
	cur, err := s.Current()
	if err != nil || cur.Email != "a@x.com" {
		t.Errorf("Current = %+v, %v", cur, err)
	}
}

func TestSignupErrors(t *testing.T) {
	s, _ := newService(t)
	if _, err := s.Signup("A", "a@x.com", "p"); err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		name                  string
		user, email, password string
		want                  error
	}{
		{"duplicate", "B", "A@x.com", "q", ErrAccountExists},
		{"missing", "", "b@x.com", "q", ErrMissingFields},
		{"email", "B", "b-at-x", "q", ErrInvalidEmail},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := s.Signup(tt.user, tt.email, tt.password); !errors.Is(err, tt.want) {
				t.Errorf("Signup error = %v, want %v", err, tt.want)
			}
		})
	}
	if got := Message(ErrAccountExists); got != "Account already exists with this email." {
		t.Errorf("Message = %q", got)
	}
	if got := Message(ErrInvalidCredentials); got != "Invalid email or password." {
		t.Errorf("Message = %q", got)
	}
}

func TestLoginUnknownAccount(t *testing.T) {
	s, _ := newService(t)
	if _, err := s.Login("nobody@x.com", "p"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Login error = %v", err)
	}
	if _, err := s.Current(); !errors.Is(err, ErrNotSignedIn) {
		t.Errorf("Current error = %v", err)
	}
}

func TestProviderLogin(t *testing.T) {
	s, st := newService(t)
	sess, err := s.ProviderLogin("", "g@x.com", "google")
	if err != nil {
		t.Fatal(err)
	}
	if sess.Provider != "google" || sess.Name != "User" {
		t.Errorf("session = %+v", sess)
	}
	if _, err := st.Account("g@x.com"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("provider login created an account: %v", err)
	}
	if _, err := s.Login("g@x.com", ""); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("password login for provider user = %v", err)
	}
}
