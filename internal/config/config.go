// Package config loads viewer settings for the scrollbox demo from a TOML
// file, with sensible defaults when no file is present.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/scrollbox/easing"
)

// Config holds the demo viewer settings.
type Config struct {
	Width                 int     `toml:"width"`
	Height                int     `toml:"height"`
	XOffset               int     `toml:"x_offset"`
	YOffset               int     `toml:"y_offset"`
	Foreground            string  `toml:"foreground"`
	Background            string  `toml:"background"`
	BackgroundTransparent bool    `toml:"background_transparent"`
	LineSpacing           float64 `toml:"line_spacing"`
	AnimationMS           int     `toml:"animation_ms"`
	Easing                string  `toml:"easing"`
	Text                  string  `toml:"text"`
	TextFile              string  `toml:"text_file"`
}

// Default returns the demo defaults: a 120x60 panel, white on black,
// 200ms eased scrolling.
func Default() Config {
	return Config{
		Width:       120,
		Height:      60,
		Foreground:  "#FFFFFF",
		Background:  "#000000",
		LineSpacing: 1.0,
		AnimationMS: 200,
		Easing:      "expo",
	}
}

// Load reads a TOML config from path and merges it over the defaults.
// A missing file is not an error; the defaults are returned unchanged.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config file %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the loaded values before they reach the panel.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("panel size %dx%d must be positive", c.Width, c.Height)
	}
	if c.LineSpacing <= 0 {
		return fmt.Errorf("line_spacing %v must be positive", c.LineSpacing)
	}
	if c.AnimationMS < 0 {
		return fmt.Errorf("animation_ms %d must not be negative", c.AnimationMS)
	}
	if _, err := ParseColor(c.Foreground); err != nil {
		return fmt.Errorf("foreground: %w", err)
	}
	if _, err := ParseColor(c.Background); err != nil {
		return fmt.Errorf("background: %w", err)
	}
	if _, err := EasingFunction(c.Easing); err != nil {
		return err
	}
	return nil
}

// ParseColor converts a #RRGGBB hex string to a packed 0xRRGGBB value.
func ParseColor(s string) (uint32, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return 0, fmt.Errorf("color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return uint32(r)<<16 | uint32(g)<<8 | uint32(b), nil
}

// EasingFunction resolves an easing name from the config file.
func EasingFunction(name string) (easing.Function, error) {
	switch strings.ToLower(name) {
	case "", "expo":
		return easing.ExpoInOut, nil
	case "linear":
		return easing.Linear, nil
	case "quad":
		return easing.QuadInOut, nil
	case "cubic":
		return easing.CubicOut, nil
	default:
		return nil, fmt.Errorf("unknown easing %q", name)
	}
}
