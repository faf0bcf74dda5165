// Package config provides configuration loading and management.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the full configuration for the carousel service.
type Config struct {
	// HTTP
	Port int `yaml:"port"`

	// BaseURL overrides the scheme+host used in download URLs. When empty,
	// URLs are derived from the incoming request.
	BaseURL string `yaml:"base_url"`

	// Assets
	TemplateDir  string     `yaml:"template_dir"`
	GeneratedDir string     `yaml:"generated_dir"`
	Fonts        FontConfig `yaml:"fonts"`

	// Featured image fetch
	FetchTimeoutMs int `yaml:"fetch_timeout_ms"`

	// Rendering
	Workers int `yaml:"workers"`

	// Debug
	Debug    bool   `yaml:"debug"`
	DebugDir string `yaml:"debug_dir"`

	// Logging
	LogLevel string `yaml:"log_level"`
}

// FontConfig points at the TTF assets for the two text roles.
// Empty paths select the bundled Go fonts.
type FontConfig struct {
	MainPath string `yaml:"main_path"`
	SubPath  string `yaml:"sub_path"`
}

// Defaults returns a Config with default values.
func Defaults() Config {
	return Config{
		Port:           8080,
		TemplateDir:    "templates",
		GeneratedDir:   "generated",
		FetchTimeoutMs: 10000,
		Workers:        4,
		DebugDir:       "./debug",
		LogLevel:       "info",
	}
}

// Load reads a YAML config file on top of the defaults.
func Load(path string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
