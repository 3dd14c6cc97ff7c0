// Package config loads pwcheck output settings from YAML.
package config

import (
	"embed"
	"fmt"
	"os"
	"strings"

	"github.com/dshills/pwcheck/internal/strength"
	"gopkg.in/yaml.v3"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// Output formats.
const (
	FormatText     = "text"
	FormatJSON     = "json"
	FormatMarkdown = "md"
)

// Config holds presentation and batch settings.
type Config struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Format      string `yaml:"format"`
	FailOn      string `yaml:"fail_on"`
	Workers     int    `yaml:"workers"`
	Mask        Mask   `yaml:"mask"`
}

// Mask controls how much of a password is echoed in batch reports.
type Mask struct {
	Reveal int `yaml:"reveal"`
}

// Default returns the built-in configuration.
func Default() (*Config, error) {
	data, err := builtinFS.ReadFile("builtin/default.yaml")
	if err != nil {
		return nil, fmt.Errorf("config.Default: %w", err)
	}
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("config.Default: parse: %w", err)
	}
	return &c, nil
}

// Load overlays the YAML file at path onto the defaults. An empty path
// returns the defaults unchanged. The result is not validated; callers apply
// their overrides first and then call Validate.
func Load(path string) (*Config, error) {
	c, err := Default()
	if err != nil {
		return nil, err
	}
	if path == "" {
		return c, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("config.Load: parse %q: %w", path, err)
	}
	return c, nil
}

// Validate rejects unknown formats and thresholds and out-of-range numbers.
func (c *Config) Validate() error {
	switch c.Format {
	case FormatText, FormatJSON, FormatMarkdown:
	default:
		return fmt.Errorf("unknown format: %q", c.Format)
	}
	if _, err := c.Threshold(); err != nil {
		return err
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	if c.Mask.Reveal < 0 {
		return fmt.Errorf("mask.reveal must not be negative, got %d", c.Mask.Reveal)
	}
	return nil
}

// Threshold parses FailOn. An empty value disables the check and returns "".
func (c *Config) Threshold() (strength.Strength, error) {
	if strings.TrimSpace(c.FailOn) == "" {
		return "", nil
	}
	s, ok := strength.ParseStrength(c.FailOn)
	if !ok {
		return "", fmt.Errorf("unknown fail-on level: %q", c.FailOn)
	}
	return s, nil
}
