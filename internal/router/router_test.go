package router

import (
	"testing"

	"studio-site/internal/event"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		path  string
		page  Page
		param string
	}{
		{"/", Home, ""},
		{"", Home, ""},
		{"/about", About, ""},
		{"/About/", About, ""},
		{"services", Services, ""},
		{"/portfolio", Portfolio, ""},
		{"/portfolio/aurora-rebrand", Project, "aurora-rebrand"},
		{"/portfolio/a/b", NotFound, ""},
		{"/booking?service=Branding", Booking, ""},
		{"/contact", Contact, ""},
		{"/auth", Auth, ""},
		{"/nope", NotFound, ""},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			r := Resolve(tt.path)
			if r.Page != tt.page || r.Param != tt.param {
				t.Errorf("Resolve(%q) = %v %q, want %v %q", tt.path, r.Page, r.Param, tt.page, tt.param)
			}
		})
	}
}

func TestResolveQuery(t *testing.T) {
	r := Resolve("/booking?service=Web+Design")
	if got := r.Query.Get("service"); got != "Web Design" {
		t.Errorf("service = %q, want %q", got, "Web Design")
	}
	if r.Path != "/booking" {
		t.Errorf("path = %q", r.Path)
	}
}

func TestHistory(t *testing.T) {
	d := event.NewDispatcher()
	var seen []Page
	d.Subscribe(event.Navigated, event.ListenerFunc(func(e event.Event) {
		seen = append(seen, e.Data.(Route).Page)
	}))

	h := NewHistory(d, false)
	if h.Current().Page != Home {
		t.Fatalf("initial page = %v", h.Current().Page)
	}
	h.Navigate("/")
	h.Navigate("/about")
	if h.Navigate("/about/") {
		t.Error("navigating to the current path pushed a route")
	}
	h.Navigate("/contact")

	if !h.Back() || h.Current().Page != About {
		t.Errorf("after Back page = %v, want about", h.Current().Page)
	}
	h.Back()
	if h.Back() {
		t.Error("Back past the first route succeeded")
	}

	want := []Page{Home, About, Contact, About, Home}
	if len(seen) != len(want) {
		t.Fatalf("events = %v, want %v", seen, want)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Errorf("event %d = %v, want %v", i, seen[i], want[i])
		}
	}
}

func TestMaintenanceOverridesRoutes(t *testing.T) {
	h := NewHistory(nil, true)
	h.Navigate("/contact")
	if h.Current().Page != Maintenance {
		t.Errorf("page = %v, want maintenance", h.Current().Page)
	}
	h.SetMaintenance(false)
	if h.Current().Page != Contact {
		t.Errorf("page after maintenance = %v, want contact", h.Current().Page)
	}
}
