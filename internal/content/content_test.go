package content

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDefaultParses(t *testing.T) {
	s, err := Default()
	if err != nil {
		t.Fatal(err)
	}
	if len(s.Services) != 7 || len(s.Projects) != 5 || len(s.Values) != 6 {
		t.Errorf("got %d services, %d projects, %d values", len(s.Services), len(s.Projects), len(s.Values))
	}
	if len(s.Nav) == 0 || s.Nav[0].Path != "/" {
		t.Errorf("nav = %+v", s.Nav)
	}
}

func TestFilter(t *testing.T) {
	s, err := Default()
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		category string
		want     []string
	}{
		{"branding", []string{"brand-identity"}},
		{"app", []string{"mobile-app-dashboard"}},
		{"web", []string{"ecommerce-platform", "web-application", "marketing-website"}},
		{"nothing", nil},
	}
	for _, tt := range tests {
		t.Run(tt.category, func(t *testing.T) {
			var got []string
			for _, p := range s.FilterProjects(tt.category) {
				got = append(got, p.Slug)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("FilterProjects(%q) (-want +got):\n%s", tt.category, diff)
			}
		})
	}
	if got := len(s.FilterProjects(AllCategory)); got != len(s.Projects) {
		t.Errorf("all = %d projects", got)
	}
	if got := len(s.FilterServices("media")); got != 3 {
		t.Errorf("media services = %d, want 3", got)
	}
}

func TestProjectLookup(t *testing.T) {
	s, err := Default()
	if err != nil {
		t.Fatal(err)
	}
	p, ok := s.Project("Brand-Identity")
	if !ok || p.Title != "Brand Identity" {
		t.Errorf("Project lookup = %+v %v", p, ok)
	}
	if p.Path() != "/portfolio/brand-identity" {
		t.Errorf("Path = %q", p.Path())
	}
	if _, ok := s.Project("missing"); ok {
		t.Error("found a missing project")
	}
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{
			"unknown field",
			"studio: {name: x, phone: 1}",
			"failed to parse content",
		},
		{
			"duplicate slug",
			`project_categories: [{id: web, name: Web}]
projects: [{slug: a, title: A, category: web}, {slug: a, title: B, category: web}]`,
			"duplicate project slug",
		},
		{
			"bad slug",
			`project_categories: [{id: web, name: Web}]
projects: [{slug: "a/b", title: A, category: web}]`,
			"invalid slug",
		},
		{
			"unknown category",
			`service_categories: [{id: web, name: Web}]
services: [{title: X, category: film}]`,
			"unknown category",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Parse error = %v, want %q", err, tt.want)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.yaml")
	doc := "studio: {name: Other}\n"
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if s.Studio.Name != "Other" || len(s.Projects) != 0 {
		t.Errorf("loaded %+v", s.Studio)
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing file loaded")
	}
}
