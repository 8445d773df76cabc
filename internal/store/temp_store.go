package store

import (
	"path/filepath"
	"testing"
)

// MustTempStore opens a Store in a test's temporary directory and closes it
// when the test ends.
func MustTempStore(t testing.TB) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "studio.db"))
	if err != nil {
		t.Fatalf("failed to open temp store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}
