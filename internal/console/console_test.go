package console

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/go-cmp/cmp"

	"studio-site/internal/store"
)

func testAccounts() []store.Account {
	created := time.Date(2026, 4, 2, 10, 30, 0, 0, time.UTC)
	return []store.Account{
		{Email: "ada@example.com", Name: "Ada", Created: created},
		{Email: "bo@example.com", Name: "Bo Li", Created: created},
	}
}

func TestPlainTable(t *testing.T) {
	var buf bytes.Buffer
	if err := AccountTable(testAccounts()).Plain(&buf); err != nil {
		t.Fatal(err)
	}
	want := strings.Join([]string{
		"EMAIL            NAME   CREATED",
		"ada@example.com  Ada    2026-04-02 10:30",
		"bo@example.com   Bo Li  2026-04-02 10:30",
	}, "\n") + "\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("Plain (-want +got):\n%s", diff)
	}
}

func TestOutboxTable(t *testing.T) {
	msgs := []store.Message{
		{Seq: 1, Form: "contact", Params: map[string]string{"name": "Ada", "email": "ada@example.com"}},
		{Seq: 2, Form: "signup", Params: map[string]string{"email": "bo@example.com"}, Error: "relay rejected"},
	}
	got := OutboxTable(msgs).Rows
	want := [][]string{
		{"1", "contact", "Ada <ada@example.com>", "-", "sent"},
		{"2", "signup", "bo@example.com", "-", "failed: relay rejected"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("rows (-want +got):\n%s", diff)
	}
	if d := Detail(msgs[0]); d != "email: ada@example.com\nname: Ada\n" {
		t.Errorf("Detail = %q", d)
	}
}

func key(s string) tea.KeyMsg {
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestBrowserNavigation(t *testing.T) {
	msgs := []store.Message{{Seq: 1, Form: "contact", Params: map[string]string{"email": "c@example.com"}}}
	b := NewBrowser(testAccounts(), msgs)
	var copied string
	b.copy = func(s string) error { copied = s; return nil }

	b.Update(key("j"))
	b.Update(key("j"))
	if got := b.Selected(); got != "bo@example.com" {
		t.Errorf("Selected after j j = %q", got)
	}
	b.Update(key("y"))
	if copied != "bo@example.com" {
		t.Errorf("copied %q", copied)
	}
	b.Update(key("k"))
	if got := b.Selected(); got != "ada@example.com" {
		t.Errorf("Selected after k = %q", got)
	}

	b.Update(key("tab"))
	if got := b.Selected(); got != "c@example.com" {
		t.Errorf("outbox Selected = %q", got)
	}
	if !strings.Contains(b.View(), "email: c@example.com") {
		t.Error("outbox view lacks the message detail")
	}
	b.Update(key("tab"))
	if got := b.Selected(); got != "ada@example.com" {
		t.Errorf("cursor not kept per tab: %q", got)
	}
}

func TestBrowserCopyFailure(t *testing.T) {
	b := NewBrowser(testAccounts(), nil)
	b.copy = func(string) error { return errors.New("no clipboard") }
	b.Update(key("y"))
	if !strings.Contains(b.status, "no clipboard") {
		t.Errorf("status = %q", b.status)
	}

	b.Update(key("tab"))
	b.Update(key("y"))
	if b.status != "nothing to copy" {
		t.Errorf("empty outbox status = %q", b.status)
	}
}

func TestBrowserQuit(t *testing.T) {
	b := NewBrowser(nil, nil)
	_, cmd := b.Update(key("q"))
	if cmd == nil {
		t.Fatal("q returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q did not quit")
	}
}
