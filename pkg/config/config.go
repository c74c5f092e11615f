// Package config loads widget defaults from a YAML file. Defaults are
// property values the host pushes onto a widget right after it is
// typed, keyed by type name:
//
//	defaults:
//	  webview:
//	    uri: https://start.example.org
//	  hbox:
//	    homogeneous: true
//	    spacing: 4
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"src.lunekit.org/pkg/token"
	"src.lunekit.org/pkg/widget"
)

// Config holds per-type widget property defaults.
type Config struct {
	Defaults map[string]map[string]interface{} `yaml:"defaults"`
}

// Parse decodes and validates a YAML config document. Type names with
// no registered constructor are rejected here rather than when a
// widget of that type first appears.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	for name := range cfg.Defaults {
		if !widget.Registered(token.Tokenize(name)) {
			return nil, fmt.Errorf("defaults for unknown widget type: %s", name)
		}
	}
	return &cfg, nil
}

// Load reads and parses the config file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Apply writes the defaults for the widget's type through the property
// protocol, so both declared setters and variant hooks observe them.
// Untyped widgets and types with no defaults are left alone.
func (cfg *Config) Apply(w *widget.Widget) error {
	typ, ok := w.Type()
	if !ok {
		return nil
	}
	for name, value := range cfg.Defaults[typ] {
		if err := w.Set(name, value); err != nil {
			return err
		}
	}
	return nil
}
