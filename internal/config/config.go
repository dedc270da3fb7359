// Package config loads moodlog configuration: database path plus the
// user-configured scales and context tags.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"

	"github.com/nazma5979/moodlog/internal/model"
)

// envPrefix namespaces environment overrides, e.g. MOODLOG_DB_PATH.
const envPrefix = "MOODLOG_"

// Config is the resolved runtime configuration. Scales and Tags are
// opaque inputs to the analytics engine; zero scales is valid.
type Config struct {
	DBPath string             `json:"db_path"`
	Scales []model.Scale      `json:"scales"`
	Tags   []model.ContextTag `json:"tags"`
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".moodlog", "config.yaml")
}

// Load reads configuration with the usual precedence: environment
// variables over the YAML file over built-in defaults. A missing file
// is not an error; defaults apply.
func Load(configPath string) (*Config, error) {
	k := koanf.New(".")

	if configPath == "" {
		configPath = DefaultPath()
	}

	if content, err := os.ReadFile(configPath); err == nil {
		if err := k.Load(rawbytes.Provider(content), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", configPath, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// MOODLOG_DB_PATH -> db_path
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	cfg := defaults()
	// model structs carry json tags only; decode with those.
	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	seen := make(map[string]bool)
	for _, s := range c.Scales {
		if s.ID == "" {
			return fmt.Errorf("scale with empty id")
		}
		if seen[s.ID] {
			return fmt.Errorf("duplicate scale id %q", s.ID)
		}
		seen[s.ID] = true
		if s.Min >= s.Max {
			return fmt.Errorf("scale %q: min %v must be below max %v", s.ID, s.Min, s.Max)
		}
	}
	for _, t := range c.Tags {
		if t.ID == "" {
			return fmt.Errorf("tag with empty id")
		}
		if t.Category != "" && !model.ValidTagCategories[t.Category] {
			return fmt.Errorf("tag %q: unknown category %q", t.ID, t.Category)
		}
	}
	return nil
}

// TagByID resolves a tag definition.
func (c *Config) TagByID(id string) (model.ContextTag, bool) {
	for _, t := range c.Tags {
		if t.ID == id {
			return t, true
		}
	}
	return model.ContextTag{}, false
}

// ScaleByID resolves a scale definition.
func (c *Config) ScaleByID(id string) (model.Scale, bool) {
	for _, s := range c.Scales {
		if s.ID == id {
			return s, true
		}
	}
	return model.Scale{}, false
}

func defaults() *Config {
	home, _ := os.UserHomeDir()
	return &Config{
		DBPath: filepath.Join(home, ".moodlog", "journal.db"),
		Scales: []model.Scale{
			{ID: "energy", Label: "Energy", Min: 1, Max: 10, Step: 1, Default: 5},
			{ID: "sleep", Label: "Sleep Quality", Min: 1, Max: 5, Step: 1, Default: 3},
		},
		Tags: []model.ContextTag{
			{ID: "work", Category: "activity", Label: "Work"},
			{ID: "commute", Category: "activity", Label: "Commute"},
			{ID: "exercise", Category: "activity", Label: "Exercise"},
			{ID: "meditation", Category: "activity", Label: "Meditation"},
			{ID: "social", Category: "social", Label: "Time with Friends"},
			{ID: "family", Category: "social", Label: "Family"},
			{ID: "alone", Category: "social", Label: "Alone Time"},
			{ID: "home", Category: "place", Label: "At Home"},
			{ID: "nature", Category: "place", Label: "Outdoors"},
			{ID: "caffeine", Category: "body", Label: "Caffeine"},
			{ID: "alcohol", Category: "body", Label: "Alcohol"},
			{ID: "poor-sleep", Category: "body", Label: "Poor Sleep"},
		},
	}
}
