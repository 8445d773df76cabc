// Package content holds the studio's copy: services, portfolio projects,
// company values and navigation. The default copy is embedded; a site may
// replace it with its own YAML file.
package content

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed site.yaml
var defaultSite []byte

// AllCategory passes every item through Filter.
const AllCategory = "all"

type Studio struct {
	Name    string `yaml:"name"`
	Tagline string `yaml:"tagline"`
	Email   string `yaml:"email"`
	About   string `yaml:"about"`
}

type Link struct {
	Label string `yaml:"label"`
	Path  string `yaml:"path"`
}

type Category struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
}

type Service struct {
	Title       string   `yaml:"title"`
	Category    string   `yaml:"category"`
	Description string   `yaml:"description"`
	Features    []string `yaml:"features"`
}

type Project struct {
	Slug     string   `yaml:"slug"`
	Title    string   `yaml:"title"`
	Category string   `yaml:"category"`
	Summary  string   `yaml:"summary"`
	Subtitle string   `yaml:"subtitle"`
	Tags     []string `yaml:"tags"`
	Overview string   `yaml:"overview"`
	Stack    []string `yaml:"stack"`
	Features []string `yaml:"features"`
	Impact   string   `yaml:"impact"`
}

// Path is the project's detail page.
func (p Project) Path() string { return "/portfolio/" + p.Slug }

type Value struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// Site is the complete copy deck.
type Site struct {
	Studio            Studio     `yaml:"studio"`
	Nav               []Link     `yaml:"nav"`
	ServiceCategories []Category `yaml:"service_categories"`
	Services          []Service  `yaml:"services"`
	ProjectCategories []Category `yaml:"project_categories"`
	Projects          []Project  `yaml:"projects"`
	Values            []Value    `yaml:"values"`
}

// Default returns the embedded copy.
func Default() (*Site, error) {
	return Parse(defaultSite)
}

// Load reads copy from path, or the embedded copy when path is empty.
func Load(path string) (*Site, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read content file: %w", err)
	}
	return Parse(data)
}

// Parse decodes and checks a copy deck.
func Parse(data []byte) (*Site, error) {
	var s Site
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse content: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks that slugs are unique and URL-safe and that every item
// names a declared category.
func (s *Site) Validate() error {
	seen := make(map[string]bool)
	for _, p := range s.Projects {
		if p.Slug == "" || strings.ContainsAny(p.Slug, "/?# ") {
			return fmt.Errorf("content: project %q has invalid slug %q", p.Title, p.Slug)
		}
		if seen[p.Slug] {
			return fmt.Errorf("content: duplicate project slug %q", p.Slug)
		}
		seen[p.Slug] = true
		if !hasCategory(s.ProjectCategories, p.Category) {
			return fmt.Errorf("content: project %q has unknown category %q", p.Slug, p.Category)
		}
	}
	for _, svc := range s.Services {
		if !hasCategory(s.ServiceCategories, svc.Category) {
			return fmt.Errorf("content: service %q has unknown category %q", svc.Title, svc.Category)
		}
	}
	return nil
}

func hasCategory(cats []Category, id string) bool {
	for _, c := range cats {
		if c.ID == id && id != AllCategory {
			return true
		}
	}
	return false
}

// FilterServices returns the services in category; AllCategory returns all.
func (s *Site) FilterServices(category string) []Service {
	if category == AllCategory || category == "" {
		return s.Services
	}
	var out []Service
	for _, svc := range s.Services {
		if svc.Category == category {
			out = append(out, svc)
		}
	}
	return out
}

// FilterProjects returns the projects in category; AllCategory returns all.
func (s *Site) FilterProjects(category string) []Project {
	if category == AllCategory || category == "" {
		return s.Projects
	}
	var out []Project
	for _, p := range s.Projects {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// Project finds a project by slug, ignoring case.
func (s *Site) Project(slug string) (Project, bool) {
	for _, p := range s.Projects {
		if strings.EqualFold(p.Slug, slug) {
			return p, true
		}
	}
	return Project{}, false
}

// ServiceTitles lists every service title, for the booking form.
func (s *Site) ServiceTitles() []string {
	titles := make([]string, len(s.Services))
	for i, svc := range s.Services {
		titles[i] = svc.Title
	}
	return titles
}
