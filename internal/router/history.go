package router

import (
	"net/url"

	"studio-site/internal/event"
)

// History is the in-app navigation stack. Every change is announced on the
// dispatcher as a Navigated event carrying the new Route.
type History struct {
	dispatcher  *event.Dispatcher
	stack       []Route
	maintenance bool
}

func NewHistory(dispatcher *event.Dispatcher, maintenance bool) *History {
	return &History{dispatcher: dispatcher, maintenance: maintenance}
}

// Current returns the route on top of the stack. Before the first
// navigation it is the home page.
func (h *History) Current() Route {
	if h.maintenance {
		return Route{Path: "/", Page: Maintenance}
	}
	if len(h.stack) == 0 {
		return Resolve("/")
	}
	return h.stack[len(h.stack)-1]
}

// Navigate pushes path. Navigating to the current path and query does
// nothing and reports false.
func (h *History) Navigate(path string) bool {
	r := Resolve(path)
	if len(h.stack) > 0 {
		cur := h.stack[len(h.stack)-1]
		if cur.Path == r.Path && cur.Query.Encode() == r.Query.Encode() {
			return false
		}
	}
	h.stack = append(h.stack, r)
	h.announce()
	return true
}

// NavigateWith pushes path with query values, e.g. a preselected service.
func (h *History) NavigateWith(path string, query url.Values) bool {
	if len(query) == 0 {
		return h.Navigate(path)
	}
	return h.Navigate(path + "?" + query.Encode())
}

// Back pops the current route. It reports false when there is nothing to go
// back to.
func (h *History) Back() bool {
	if len(h.stack) < 2 {
		return false
	}
	h.stack = h.stack[:len(h.stack)-1]
	h.announce()
	return true
}

// Depth returns the number of routes on the stack.
func (h *History) Depth() int { return len(h.stack) }

// SetMaintenance switches the site into or out of maintenance mode.
func (h *History) SetMaintenance(on bool) {
	if h.maintenance == on {
		return
	}
	h.maintenance = on
	h.announce()
}

func (h *History) announce() {
	if h.dispatcher != nil {
		h.dispatcher.Dispatch(event.Event{Type: event.Navigated, Data: h.Current()})
	}
}
