// Package store persists accounts, the signed-in session and the outbox of
// relayed form submissions in a bbolt database.
package store

import (
	"errors"
	"fmt"
	"log"
	"time"

	bolt "go.etcd.io/bbolt"
)

// ErrNotFound is returned when a key has no value.
var ErrNotFound = errors.New("not found")

const (
	bucketAccounts = "accounts"
	bucketSession  = "session"
	bucketOutbox   = "outbox"
)

// initDB holds the bucket initializers. Each file registers its own.
var initDB = map[string]func(*bolt.Tx) error{}

// Store is an open database.
type Store struct {
	db *bolt.DB
}

// Open opens or creates the database at path and makes sure every bucket
// exists.
func Open(path string) (*Store, error) {
	db, err := bolt.Open(path, 0o644, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open store %s: %w", path, err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		for name, fn := range initDB {
			if err := fn(tx); err != nil {
				return fmt.Errorf("failed to %s: %w", name, err)
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	log.Printf("store: opened %s", path)
	return &Store{db: db}, nil
}

func (s *Store) Close() error { return s.db.Close() }

// Path returns the database file.
func (s *Store) Path() string { return s.db.Path() }
