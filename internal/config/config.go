package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultMarkerFormat renders a captured attribute for `scrub --show-markers`.
// The verbs receive the attribute kind and its value.
const DefaultMarkerFormat = "[%s:%s]"

// FileConfig is the on-disk YAML configuration shape for htmlscrub.
type FileConfig struct {
	Include         *string `yaml:"include,omitempty"`
	Exclude         *string `yaml:"exclude,omitempty"`
	Extensions      *string `yaml:"extensions,omitempty"`
	MaxBytes        *int64  `yaml:"max_bytes,omitempty"`
	Threads         *int    `yaml:"threads,omitempty"`
	Algorithm       *string `yaml:"algorithm,omitempty"`
	DefaultExcludes *bool   `yaml:"default_excludes,omitempty"`
	NoColor         *bool   `yaml:"no_color,omitempty"`
	NoCache         *bool   `yaml:"no_cache,omitempty"`

	// Scrub output defaults for the single-document commands
	Scrub *ScrubConfig `yaml:"scrub,omitempty"`
}

// ScrubConfig holds defaults for `htmlscrub scrub`.
type ScrubConfig struct {
	// Plain drops captured attribute values and keeps only text.
	Plain *bool `yaml:"plain,omitempty"`

	// ShowMarkers renders captured values with MarkerFormat instead of the
	// raw marker bytes.
	ShowMarkers *bool `yaml:"show_markers,omitempty"`

	// MarkerFormat is a fmt format with two %s verbs: kind and value.
	MarkerFormat *string `yaml:"marker_format,omitempty"`
}

// LoadFile reads a YAML config file from the provided path.
func LoadFile(path string) (FileConfig, error) {
	var cfg FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LocalNames lists the repo-local config file names in search order.
var LocalNames = []string{".htmlscrub.yml", ".htmlscrub.yaml", "htmlscrub.yml", "htmlscrub.yaml"}

// LoadLocal searches for a repo-local config file in the given root.
func LoadLocal(repoRoot string) (FileConfig, error) {
	var cfg FileConfig
	for _, name := range LocalNames {
		p := filepath.Join(repoRoot, name)
		if _, err := os.Stat(p); err == nil {
			return LoadFile(p)
		}
	}
	return cfg, errors.New("no local config")
}

// LoadGlobal loads the global config file from XDG base directory or ~/.config.
func LoadGlobal() (FileConfig, error) {
	var cfg FileConfig
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, _ := os.UserHomeDir()
		if home != "" {
			base = filepath.Join(home, ".config")
		}
	}
	if base == "" {
		return cfg, errors.New("no config dir")
	}
	p := filepath.Join(base, "htmlscrub", "config.yml")
	if _, err := os.Stat(p); err == nil {
		return LoadFile(p)
	}
	return cfg, errors.New("no global config")
}

// GetScrubConfig returns the scrub section with defaults applied.
func (fc FileConfig) GetScrubConfig() ScrubConfig {
	if fc.Scrub == nil {
		return ScrubConfig{}
	}
	return *fc.Scrub
}

// IsPlain reports whether attribute captures are dropped (default false).
func (sc ScrubConfig) IsPlain() bool {
	return sc.Plain != nil && *sc.Plain
}

// IsShowMarkers reports whether captures are rendered as text (default false).
func (sc ScrubConfig) IsShowMarkers() bool {
	return sc.ShowMarkers != nil && *sc.ShowMarkers
}

// GetMarkerFormat returns the configured format or DefaultMarkerFormat.
func (sc ScrubConfig) GetMarkerFormat() string {
	if sc.MarkerFormat == nil || *sc.MarkerFormat == "" {
		return DefaultMarkerFormat
	}
	return *sc.MarkerFormat
}
