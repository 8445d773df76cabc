package store

import (
	"encoding/json"
	"strings"
	"time"

	bolt "go.etcd.io/bbolt"
)

func init() {
	initDB["initialize account table"] = func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketAccounts))
		return err
	}
	initDB["initialize session table"] = func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketSession))
		return err
	}
}

// Account is a registered user. Emails are stored lower-cased.
type Account struct {
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash []byte    `json:"password_hash,omitempty"`
	Provider     string    `json:"provider,omitempty"`
	Created      time.Time `json:"created"`
}

// AccountKey normalizes an email for lookup.
func AccountKey(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Account looks up an account by email.
func (s *Store) Account(email string) (Account, error) {
	var a Account
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(bucketAccounts)).Get([]byte(AccountKey(email)))
		if v == nil {
			return ErrNotFound
		}
		return json.Unmarshal(v, &a)
	})
	return a, err
}

// PutAccount creates or replaces an account.
func (s *Store) PutAccount(a Account) error {
	a.Email = AccountKey(a.Email)
	data, err := json.Marshal(a)
	if err != nil {
		return err
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketAccounts)).Put([]byte(a.Email), data)
	})
}

// CreateAccount stores a new account. It reports false when the email is
// already registered, leaving the existing account untouched.
func (s *Store) CreateAccount(a Account) (bool, error) {
	a.Email = AccountKey(a.Email)
	data, err := json.Marshal(a)
	if err != nil {
		return false, err
	}
	created := false
	err = s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketAccounts))
		if b.Get([]byte(a.Email)) != nil {
			return nil
		}
		created = true
		return b.Put([]byte(a.Email), data)
	})
	return created && err == nil, err
}

// DelAccount removes an account. Removing a missing account is not an error.
func (s *Store) DelAccount(email string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketAccounts)).Delete([]byte(AccountKey(email)))
	})
}

// Accounts returns every account in email order.
func (s *Store) Accounts() ([]Account, error) {
	var out []Account
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketAccounts)).ForEach(func(_, v []byte) error {
			var a Account
			if err := json.Unmarshal(v, &a); err != nil {
				return err
			}
			out = append(out, a)
			return nil
		})
	})
	return out, err
}

var sessionKey = []byte("current")

// Session is the signed-in user. Provider is set for third-party sign-ins,
// which have no local account.
type Session struct {
	Email    string    `json:"email"`
	Name     string    `json:"name"`
	Provider string    `json:"provider,omitempty"`
	Started  time.Time `json:"started"`
}

// maxLabel is the longest header label, in characters.
const maxLabel = 20

// Label is how the user is shown in the header: the name, or the part of
// the email before the @ when the name is empty, cut to maxLabel.
func (sess Session) Label() string {
	label := strings.TrimSpace(sess.Name)
	if label == "" {
		label, _, _ = strings.Cut(sess.Email, "@")
	}
	if r := []rune(label); len(r) > maxLabel {
		label = string(r[:maxLabel-1]) + "…"
	}
	return label
}

// Session returns the signed-in user.
func (s *Store) Session() (Session, error) {
	var sess Session
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(bucketSession)).Get(sessionKey)
		if v == nil {
			return ErrNotFound
		}
		return json.Unmarshal(v, &sess)
	})
	return sess, err
}

func (s *Store) SetSession(sess Session) error {
	sess.Email = AccountKey(sess.Email)
	data, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketSession)).Put(sessionKey, data)
	})
}

func (s *Store) ClearSession() error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketSession)).Delete(sessionKey)
	})
}
