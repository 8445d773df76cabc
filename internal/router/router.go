// Package router resolves site paths to pages and keeps the navigation
// history.
package router

import (
	"net/url"
	"strings"
)

// Page identifies a page kind.
type Page int

const (
	NotFound Page = iota
	Home
	About
	Services
	Portfolio
	Project
	Booking
	Contact
	Auth
	Maintenance
)

var pageNames = map[Page]string{
	NotFound:    "not-found",
	Home:        "home",
	About:       "about",
	Services:    "services",
	Portfolio:   "portfolio",
	Project:     "project",
	Booking:     "booking",
	Contact:     "contact",
	Auth:        "auth",
	Maintenance: "maintenance",
}

func (p Page) String() string { return pageNames[p] }

var staticRoutes = map[string]Page{
	"/":          Home,
	"/about":     About,
	"/services":  Services,
	"/portfolio": Portfolio,
	"/booking":   Booking,
	"/contact":   Contact,
	"/auth":      Auth,
}

// Route is a resolved path.
type Route struct {
	Path string
	Page Page
	// Param is the project slug for Project routes.
	Param string
	// Query holds the parsed query string, e.g. a preselected service.
	Query url.Values
}

// Resolve maps a path to its route. Trailing slashes and case in the static
// segments are ignored; unknown paths resolve to NotFound.
func Resolve(raw string) Route {
	path, query := Clean(raw)
	r := Route{Path: path, Query: query}

	if page, ok := staticRoutes[strings.ToLower(path)]; ok {
		r.Page = page
		return r
	}
	if rest, ok := cutPrefixFold(path, "/portfolio/"); ok && rest != "" && !strings.Contains(rest, "/") {
		r.Page = Project
		r.Param = rest
		return r
	}
	r.Page = NotFound
	return r
}

// Clean normalizes a path and splits off its query.
func Clean(raw string) (string, url.Values) {
	path, rawQuery, _ := strings.Cut(strings.TrimSpace(raw), "?")
	query, err := url.ParseQuery(rawQuery)
	if err != nil {
		query = url.Values{}
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	for len(path) > 1 && strings.HasSuffix(path, "/") {
		path = strings.TrimSuffix(path, "/")
	}
	return path, query
}

func cutPrefixFold(s, prefix string) (string, bool) {
	if len(s) < len(prefix) || !strings.EqualFold(s[:len(prefix)], prefix) {
		return "", false
	}
	return s[len(prefix):], true
}
