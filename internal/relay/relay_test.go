package relay

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"studio-site/internal/config"
	"studio-site/internal/forms"
	"studio-site/internal/store"
	"studio-site/internal/utils"
)

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func testConfig(endpoint string) config.RelayConfig {
	return config.RelayConfig{
		Endpoint:   endpoint,
		ServiceID:  "svc",
		TemplateID: "tpl",
		PublicKey:  "key",
		Timeout:    time.Second,
	}
}

func TestSendPostsRequest(t *testing.T) {
	type captured struct {
		path, contentType string
		body              request
	}
	reqs := make(chan captured, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c := captured{path: r.URL.Path, contentType: r.Header.Get("Content-Type")}
		if err := json.NewDecoder(r.Body).Decode(&c.body); err != nil {
			t.Errorf("decode: %v", err)
		}
		reqs <- c
		io.WriteString(w, "OK")
	}))
	defer srv.Close()

	st := store.MustTempStore(t)
	clock := utils.NewMockClock(time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC))
	c := New(testConfig(srv.URL+"/"), st, clock)

	params := map[string]string{"name": "Ada", "email": "ada@example.com", "message": "Hi"}
	if err := c.Send(context.Background(), forms.ContactForm, params); err != nil {
		t.Fatal(err)
	}
	got := <-reqs
	if got.path != sendPath || got.contentType != "application/json" {
		t.Errorf("path = %q, content type = %q", got.path, got.contentType)
	}
	want := request{
		ServiceID:  "svc",
		TemplateID: "tpl",
		UserID:     "key",
		TemplateParams: map[string]string{
			"name": "Ada", "email": "ada@example.com", "message": "Hi",
			"form": "contact", "from_name": "Ada", "from_email": "ada@example.com",
		},
	}
	if diff := cmp.Diff(want, got.body); diff != "" {
		t.Errorf("request (-want +got):\n%s", diff)
	}

	msgs, err := st.Messages(0)
	if err != nil {
		t.Fatal(err)
	}
	if len(msgs) != 1 || msgs[0].Form != "contact" || msgs[0].Error != "" || !msgs[0].Sent.Equal(clock.Now()) {
		t.Errorf("outbox = %+v", msgs)
	}
}

func TestSendRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "The user ID is invalid", http.StatusBadRequest)
	}))
	defer srv.Close()

	st := store.MustTempStore(t)
	c := New(testConfig(srv.URL), st, nil)
	err := c.Send(context.Background(), forms.ContactForm, map[string]string{"name": "Ada"})
	if !errors.Is(err, ErrRejected) {
		t.Fatalf("Send error = %v", err)
	}
	if !strings.Contains(err.Error(), "The user ID is invalid") {
		t.Errorf("error lacks body: %v", err)
	}
	msgs, _ := st.Messages(0)
	if len(msgs) != 1 || msgs[0].Error == "" {
		t.Errorf("failed send not archived: %+v", msgs)
	}
}

func TestSendTimeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	cfg := testConfig(srv.URL)
	cfg.Timeout = 50 * time.Millisecond
	c := New(cfg, nil, nil)
	if err := c.Send(context.Background(), forms.ContactForm, nil); err == nil {
		t.Fatal("Send succeeded past the timeout")
	}
}

func TestSendNotConfigured(t *testing.T) {
	c := New(config.RelayConfig{Endpoint: "http://127.0.0.1:1", Timeout: time.Second}, nil, nil)
	if err := c.Send(context.Background(), forms.ContactForm, nil); !errors.Is(err, ErrNotConfigured) {
		t.Errorf("Send error = %v", err)
	}
}

func TestTemplateParamsSignup(t *testing.T) {
	p := TemplateParams(forms.SignupForm, map[string]string{"name": "Ada", "email": "ada@example.com"})
	if !strings.Contains(p["message"], "Password not sent") {
		t.Errorf("message = %q", p["message"])
	}
	if _, ok := p["password"]; ok {
		t.Error("password present")
	}
}

func TestFormSubmitThroughClient(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer srv.Close()

	f := forms.NewContact(nil)
	f.Set("name", "Ada")
	f.Set("email", "ada@example.com")
	c := New(testConfig(srv.URL), nil, nil)

	if st := f.Submit(context.Background(), c); st.Message != forms.MsgRequired || calls.Load() != 0 {
		t.Fatalf("status = %+v, calls = %d", st, calls.Load())
	}
	f.Set("message", "Hello")
	if st := f.Submit(context.Background(), c); st.Kind != forms.Success || calls.Load() != 1 {
		t.Fatalf("status = %+v, calls = %d", st, calls.Load())
	}
}

type stubSender struct{ err error }

func (s stubSender) Send(context.Context, string, map[string]string) error { return s.err }

func TestAsync(t *testing.T) {
	a := NewAsync(stubSender{err: ErrRejected}, time.Second)
	if _, ok := a.Poll(); ok {
		t.Fatal("result before any send")
	}
	a.Go(context.Background(), forms.BookingForm, nil)

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if r, ok := a.Poll(); ok {
			if r.Form != forms.BookingForm || !errors.Is(r.Err, ErrRejected) {
				t.Errorf("result = %+v", r)
			}
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("no result")
}
