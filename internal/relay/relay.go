// Package relay delivers form submissions through an EmailJS-compatible
// HTTP API and archives every attempt in the store's outbox.
package relay

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"studio-site/internal/config"
	"studio-site/internal/forms"
	"studio-site/internal/store"
	"studio-site/internal/utils"
)

// ErrRejected is returned when the relay answers with a non-2xx status.
var ErrRejected = errors.New("relay rejected the request")

// ErrNotConfigured is returned when service or template ids are missing.
var ErrNotConfigured = errors.New("relay is not configured")

const sendPath = "/api/v1.0/email/send"

// maxErrorBody caps how much of a rejection body is kept in the error.
const maxErrorBody = 512

// Archive records submissions. *store.Store satisfies it.
type Archive interface {
	AddMessage(store.Message) (int, error)
}

// Client posts submissions to the relay.
type Client struct {
	cfg     config.RelayConfig
	http    *http.Client
	archive Archive
	clock   utils.Clock
}

// New returns a client. archive and clock may be nil.
func New(cfg config.RelayConfig, archive Archive, clock utils.Clock) *Client {
	if clock == nil {
		clock = utils.SystemClock{}
	}
	return &Client{
		cfg:     cfg,
		http:    &http.Client{Timeout: cfg.Timeout},
		archive: archive,
		clock:   clock,
	}
}

type request struct {
	ServiceID      string            `json:"service_id"`
	TemplateID     string            `json:"template_id"`
	UserID         string            `json:"user_id"`
	TemplateParams map[string]string `json:"template_params"`
}

// Send delivers one submission and archives the attempt.
func (c *Client) Send(ctx context.Context, form string, params map[string]string) error {
	err := c.post(ctx, TemplateParams(form, params))
	if err != nil {
		log.Printf("relay: %s submission failed: %v", form, err)
	}
	c.record(form, params, err)
	return err
}

func (c *Client) post(ctx context.Context, params map[string]string) error {
	if c.cfg.ServiceID == "" || c.cfg.TemplateID == "" {
		return ErrNotConfigured
	}
	body, err := json.Marshal(request{
		ServiceID:      c.cfg.ServiceID,
		TemplateID:     c.cfg.TemplateID,
		UserID:         c.cfg.PublicKey,
		TemplateParams: params,
	})
	if err != nil {
		return fmt.Errorf("relay: failed to encode request: %w", err)
	}
	if c.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.cfg.Timeout)
		defer cancel()
	}
	url := strings.TrimSuffix(c.cfg.Endpoint, "/") + sendPath
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("relay: failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("relay: %w", err)
	}
	defer resp.Body.Close()
	text, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: %d %s", ErrRejected, resp.StatusCode, strings.TrimSpace(string(text)))
	}
	return nil
}

func (c *Client) record(form string, params map[string]string, sendErr error) {
	if c.archive == nil {
		return
	}
	m := store.Message{Form: form, Params: params, Sent: c.clock.Now().UTC()}
	if sendErr != nil {
		m.Error = sendErr.Error()
	}
	if _, err := c.archive.AddMessage(m); err != nil {
		log.Printf("relay: failed to archive %s submission: %v", form, err)
	}
}

// TemplateParams maps form fields onto the template variables the email
// template expects. Every field is also passed through under its own name.
func TemplateParams(form string, params map[string]string) map[string]string {
	out := make(map[string]string, len(params)+4)
	for k, v := range params {
		out[k] = v
	}
	out["form"] = form
	out["from_name"] = params["name"]
	out["from_email"] = params["email"]

	switch form {
	case forms.SignupForm:
		out["message"] = fmt.Sprintf("Signup request:\nName: %s\nEmail: %s\nNote: Password not sent for security.",
			params["name"], params["email"])
	case forms.BookingForm:
		out["message"] = fmt.Sprintf("Booking request:\nService: %s\nDate: %s\n\n%s",
			params["service"], params["date"], params["message"])
	}
	return out
}

// Async runs sends off the frame loop. Results come back on a channel that
// the caller drains once per frame.
type Async struct {
	sender  forms.Sender
	timeout time.Duration
	results chan Result
}

// Result is a finished send.
type Result struct {
	Form string
	Err  error
}

func NewAsync(sender forms.Sender, timeout time.Duration) *Async {
	return &Async{sender: sender, timeout: timeout, results: make(chan Result, 8)}
}

// Go starts a send in a goroutine.
func (a *Async) Go(ctx context.Context, form string, params map[string]string) {
	go func() {
		if a.timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, a.timeout)
			defer cancel()
		}
		a.results <- Result{Form: form, Err: a.sender.Send(ctx, form, params)}
	}()
}

// Poll returns a finished result without blocking.
func (a *Async) Poll() (Result, bool) {
	select {
	case r := <-a.results:
		return r, true
	default:
		return Result{}, false
	}
}

var _ forms.Sender = (*Client)(nil)
