package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// RelayConfig locates the transactional-email relay used by the forms.
type RelayConfig struct {
	Endpoint   string        `yaml:"endpoint"`
	ServiceID  string        `yaml:"service_id"`
	TemplateID string        `yaml:"template_id"`
	PublicKey  string        `yaml:"public_key"`
	Timeout    time.Duration `yaml:"timeout"`
}

// SiteConfig holds switches for the site shell.
type SiteConfig struct {
	Maintenance bool   `yaml:"maintenance"`
	StorePath   string `yaml:"store_path"`
	StartPath   string `yaml:"start_path"`
	// ContentPath replaces the embedded site content when set.
	ContentPath string `yaml:"content_path"`
}

// Config is the full on-disk configuration file.
type Config struct {
	Render    RenderConfig    `yaml:"render"`
	Starfield StarfieldConfig `yaml:"starfield"`
	Relay     RelayConfig     `yaml:"relay"`
	Site      SiteConfig      `yaml:"site"`
}

func Default() Config {
	return Config{
		Render:    DefaultRender(),
		Starfield: DefaultStarfield(),
		Relay: RelayConfig{
			Endpoint: "https://api.emailjs.com",
			Timeout:  10 * time.Second,
		},
		Site: SiteConfig{
			StorePath: "studio.db",
			StartPath: "/",
		},
	}
}

// Load reads a YAML file over the defaults. An empty path returns the
// defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := cfg.decode(data); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func (c *Config) decode(data []byte) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("failed to parse config: %w", err)
	}
	return nil
}

// ApplyEnv overrides relay credentials from the environment. lookup is
// os.LookupEnv outside of tests.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	for key, dst := range map[string]*string{
		"STUDIO_RELAY_ENDPOINT": &c.Relay.Endpoint,
		"STUDIO_RELAY_SERVICE":  &c.Relay.ServiceID,
		"STUDIO_RELAY_TEMPLATE": &c.Relay.TemplateID,
		"STUDIO_RELAY_KEY":      &c.Relay.PublicKey,
	} {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}
}

func (c Config) Validate() error {
	if err := c.Render.Validate(); err != nil {
		return err
	}
	if err := c.Starfield.Validate(); err != nil {
		return err
	}
	if c.Relay.Timeout <= 0 {
		return fmt.Errorf("relay: timeout must be positive, got %s", c.Relay.Timeout)
	}
	return nil
}
