package config

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Preset binds a well-known key (e.g. "prod") to a subscription and a
// resource group, so the fetch pipeline can skip both interactive menus.
type Preset struct {
	Subscription  string `yaml:"subscription"`
	ResourceGroup string `yaml:"resource_group"`
}

// Config holds the operator-tunable settings for azpull.
type Config struct {
	// GroupSuffix is the naming convention used to find eligible
	// resource groups.
	GroupSuffix string `yaml:"group_suffix"`

	// ContainerLimit is how many recent containers to fetch for the
	// container menu.
	ContainerLimit int `yaml:"container_limit"`

	// Presets maps preset keys to subscription bindings.
	Presets map[string]Preset `yaml:"presets"`
}

// Default returns a Config with sensible defaults and no presets.
func Default() Config {
	return Config{
		GroupSuffix:    "-backups",
		ContainerLimit: 10,
		Presets:        map[string]Preset{},
	}
}

// LoadFromFile loads configuration from a YAML file, merged over the
// defaults.
func LoadFromFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config file: %w", err)
	}

	var in Config
	if err := yaml.Unmarshal(data, &in); err != nil {
		return Config{}, fmt.Errorf("parse config file: %w", err)
	}

	cfg := Default()
	if in.GroupSuffix != "" {
		cfg.GroupSuffix = in.GroupSuffix
	}
	if in.ContainerLimit != 0 {
		cfg.ContainerLimit = in.ContainerLimit
	}
	for key, p := range in.Presets {
		if p.Subscription == "" {
			return Config{}, fmt.Errorf("preset %q: subscription must not be empty", key)
		}
		cfg.Presets[key] = p
	}
	return cfg, nil
}

// PresetKeys returns the configured preset keys in sorted order.
func (c Config) PresetKeys() []string {
	keys := make([]string, 0, len(c.Presets))
	for k := range c.Presets {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Resolve looks up a preset key. An unknown key produces an error that
// lists every configured key.
func (c Config) Resolve(key string) (Preset, error) {
	p, ok := c.Presets[key]
	if !ok {
		known := c.PresetKeys()
		if len(known) == 0 {
			return Preset{}, fmt.Errorf("unknown preset %q: no presets configured", key)
		}
		return Preset{}, fmt.Errorf("unknown preset %q: known presets are %s", key, strings.Join(known, ", "))
	}
	return p, nil
}
