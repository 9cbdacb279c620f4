package config

import (
	"github.com/arthur-debert/taml-html/pkg/errors"
	"github.com/arthur-debert/taml-html/pkg/ui"
)

// Config is the effective configuration
type Config struct {
	Render RenderConfig `koanf:"render" toml:"render"`
	Output OutputConfig `koanf:"output" toml:"output"`
	Theme  ThemeConfig  `koanf:"theme" toml:"theme"`
}

// RenderConfig controls the renderer and the view
type RenderConfig struct {
	Capacity    int    `koanf:"capacity" toml:"capacity"`
	Diagnostics bool   `koanf:"diagnostics" toml:"diagnostics"`
	Class       string `koanf:"class" toml:"class"`
}

// OutputConfig controls how results are written
type OutputConfig struct {
	Format     string `koanf:"format" toml:"format"`
	Standalone bool   `koanf:"standalone" toml:"standalone"`
}

// ThemeConfig selects the color palette
type ThemeConfig struct {
	Path string `koanf:"path" toml:"path"`
}

// Validate checks values that cannot be expressed in the file format
func (c *Config) Validate() error {
	if c.Render.Capacity <= 0 {
		return errors.Newf(errors.ErrConfigValid, "render.capacity must be positive, got %d", c.Render.Capacity).
			WithDetail("key", "render.capacity")
	}
	if _, err := ui.ParseFormat(c.Output.Format); err != nil {
		return errors.Wrapf(err, errors.ErrConfigValid, "invalid output.format %q", c.Output.Format).
			WithDetail("key", "output.format")
	}
	return nil
}

// OutputFormat returns the parsed output format. Validate must have passed.
func (c *Config) OutputFormat() ui.Format {
	f, _ := ui.ParseFormat(c.Output.Format)
	return f
}
