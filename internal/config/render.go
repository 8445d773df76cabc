package config

import (
	"fmt"
	"time"
)

// RenderConfig holds the fluid cursor tunables. It is read-only once the
// cursor is mounted.
type RenderConfig struct {
	FPSCap    int     `yaml:"fps_cap"`
	Paused    bool    `yaml:"paused"`
	FadeAlpha float64 `yaml:"fade_alpha"` // per-frame dissipation overlay
	Opacity   float64 `yaml:"opacity"`
	// OverlayOpacity scales the whole trail layer when it is composited.
	OverlayOpacity float64 `yaml:"overlay_opacity"`

	SplatRadius   float64 `yaml:"splat_radius"`
	BaseRadius    float64 `yaml:"base_radius"` // pixels at SplatRadius 1
	RadiusJitter  float64 `yaml:"radius_jitter"`
	SpeedScaleMax float64 `yaml:"speed_scale_max"`
	PulseSpeed    float64 `yaml:"pulse_speed"` // radians per millisecond
	PulseAmount   float64 `yaml:"pulse_amount"`

	OuterGlow          bool    `yaml:"outer_glow"`
	OuterGlowIntensity float64 `yaml:"outer_glow_intensity"`
	InnerGlow          bool    `yaml:"inner_glow"`
	InnerGlowIntensity float64 `yaml:"inner_glow_intensity"`
	Highlight          float64 `yaml:"highlight"`

	ColorIntensity    float64       `yaml:"color_intensity"`
	Saturation        float64       `yaml:"saturation"`
	Value             float64       `yaml:"value"`
	ColorChangeChance float64       `yaml:"color_change_chance"`
	HueJitter         float64       `yaml:"hue_jitter"`
	HueOffsetRange    float64       `yaml:"hue_offset_range"`
	BucketInterval    time.Duration `yaml:"bucket_interval"`
}

// DefaultRender returns the tuning the site ships with.
func DefaultRender() RenderConfig {
	return RenderConfig{
		FPSCap:         60,
		FadeAlpha:      0.02,
		Opacity:        0.45,
		OverlayOpacity: 0.8,

		SplatRadius:   0.5,
		BaseRadius:    80,
		RadiusJitter:  0.2,
		SpeedScaleMax: 1.3,
		PulseSpeed:    0.008,
		PulseAmount:   0.12,

		OuterGlow:          true,
		OuterGlowIntensity: 0.12,
		InnerGlow:          true,
		InnerGlowIntensity: 0.4,
		Highlight:          0.25,

		ColorIntensity:    6.0,
		Saturation:        0.98,
		Value:             0.95,
		ColorChangeChance: 0.3,
		HueJitter:         2,
		HueOffsetRange:    60,
		BucketInterval:    4 * time.Second,
	}
}

// FrameInterval is the minimum time between two painted frames.
func (c RenderConfig) FrameInterval() time.Duration {
	if c.FPSCap <= 0 {
		return 0
	}
	return time.Second / time.Duration(c.FPSCap)
}

func (c RenderConfig) Validate() error {
	if c.FPSCap <= 0 {
		return fmt.Errorf("render: fps_cap must be positive, got %d", c.FPSCap)
	}
	for name, v := range map[string]float64{
		"fade_alpha":          c.FadeAlpha,
		"opacity":             c.Opacity,
		"overlay_opacity":     c.OverlayOpacity,
		"saturation":          c.Saturation,
		"value":               c.Value,
		"color_change_chance": c.ColorChangeChance,
	} {
		if v < 0 || v > 1 {
			return fmt.Errorf("render: %s must be within [0,1], got %g", name, v)
		}
	}
	if c.SplatRadius <= 0 || c.BaseRadius <= 0 {
		return fmt.Errorf("render: splat radius must be positive")
	}
	if c.ColorIntensity < 0 {
		return fmt.Errorf("render: color_intensity must not be negative, got %g", c.ColorIntensity)
	}
	if c.BucketInterval <= 0 {
		return fmt.Errorf("render: bucket_interval must be positive, got %s", c.BucketInterval)
	}
	return nil
}

// StarfieldConfig tunes the home page background.
type StarfieldConfig struct {
	Layers          int     `yaml:"layers"`
	StarsPerLayer   int     `yaml:"stars_per_layer"`
	MinRadius       float64 `yaml:"min_radius"`
	MaxRadius       float64 `yaml:"max_radius"`
	RotationSpeed   float64 `yaml:"rotation_speed"`
	DepthFalloff    float64 `yaml:"depth_falloff"`
	FocalLength     float64 `yaml:"focal_length"`
	CameraDistance  float64 `yaml:"camera_distance"`
	CameraFrequency float64 `yaml:"camera_frequency"`
	CameraDamping   float64 `yaml:"camera_damping"`
	ParallaxRange   float64 `yaml:"parallax_range"` // camera travel at the screen edge
	Ridges          int     `yaml:"ridges"`
	Seed            int64   `yaml:"seed"`
}

func DefaultStarfield() StarfieldConfig {
	return StarfieldConfig{
		Layers:          3,
		StarsPerLayer:   1500,
		MinRadius:       200,
		MaxRadius:       1000,
		RotationSpeed:   0.05,
		DepthFalloff:    0.3,
		FocalLength:     300,
		CameraDistance:  1100,
		CameraFrequency: 2.0,
		CameraDamping:   0.9,
		ParallaxRange:   60,
		Ridges:          4,
	}
}

func (c StarfieldConfig) Validate() error {
	if c.Layers <= 0 || c.StarsPerLayer < 0 {
		return fmt.Errorf("starfield: layers must be positive and stars_per_layer non-negative")
	}
	if c.MinRadius <= 0 || c.MaxRadius < c.MinRadius {
		return fmt.Errorf("starfield: radius range [%g,%g] is invalid", c.MinRadius, c.MaxRadius)
	}
	if c.CameraDistance <= c.MaxRadius {
		return fmt.Errorf("starfield: camera_distance %g must exceed max_radius %g", c.CameraDistance, c.MaxRadius)
	}
	return nil
}
