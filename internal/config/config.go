// Package config holds runtime settings for the renderer.
package config

import (
	"errors"
	"fmt"
	"math"

	"cubespin/wireframe"
)

// Config holds all settings.
type Config struct {
	Display DisplayConfig `yaml:"display"`
	Render  RenderConfig  `yaml:"render"`
	Logging LoggingConfig `yaml:"logging"`
}

// DisplayConfig describes the panel.
type DisplayConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Zoom   int `yaml:"zoom"` // host window scale factor
}

// RenderConfig controls the shape and its motion.
type RenderConfig struct {
	Shape   string     `yaml:"shape"`
	Scale   float64    `yaml:"scale"`
	Spin    [3]float64 `yaml:"spin"` // radians per tick about X, Y, Z
	Rotator string     `yaml:"rotator"`
	Angles  string     `yaml:"angles"`
	Overlay bool       `yaml:"overlay"`
	Hz      int        `yaml:"hz"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns the settings for a 128x64 SSD1306 panel.
func Default() *Config {
	return &Config{
		Display: DisplayConfig{
			Width:  128,
			Height: 64,
			Zoom:   4,
		},
		Render: RenderConfig{
			Shape:   "cube",
			Scale:   20,
			Spin:    [3]float64{0.05, 0.05, 0.05},
			Rotator: "sequential",
			Angles:  "unbounded",
			Overlay: false,
			Hz:      30,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// SpinVec returns the per-tick rotation increment.
func (r RenderConfig) SpinVec() wireframe.Vec3 {
	return wireframe.V3(r.Spin[0], r.Spin[1], r.Spin[2])
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("nil config")
	}
	d := c.Display
	if d.Width <= 0 || d.Height <= 0 || d.Width > math.MaxInt16 || d.Height > math.MaxInt16 {
		return fmt.Errorf("display: invalid size %dx%d", d.Width, d.Height)
	}
	if d.Zoom <= 0 {
		return fmt.Errorf("display: invalid zoom %d", d.Zoom)
	}

	r := c.Render
	if _, err := wireframe.ShapeByName(r.Shape); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	if r.Scale < 0 || math.IsNaN(r.Scale) || math.IsInf(r.Scale, 0) {
		return fmt.Errorf("render: invalid scale %v", r.Scale)
	}
	for i, s := range r.Spin {
		if math.IsNaN(s) || math.IsInf(s, 0) {
			return fmt.Errorf("render: invalid spin[%d] %v", i, s)
		}
	}
	if _, ok := wireframe.RotatorByName(r.Rotator); !ok {
		return fmt.Errorf("render: unknown rotator %q", r.Rotator)
	}
	if _, err := wireframe.ParseAnglePolicy(r.Angles); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	if r.Hz <= 0 {
		return fmt.Errorf("render: invalid hz %d", r.Hz)
	}
	return nil
}
