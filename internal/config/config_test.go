package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DBPath == "" {
		t.Error("expected default db path")
	}
	if len(cfg.Scales) == 0 || len(cfg.Tags) == 0 {
		t.Error("expected default scales and tags")
	}
	if _, ok := cfg.ScaleByID("energy"); !ok {
		t.Error("expected default energy scale")
	}
	if _, ok := cfg.TagByID("work"); !ok {
		t.Error("expected default work tag")
	}
}

func TestLoad_YAMLOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := `
db_path: /tmp/custom.db
scales:
  - id: focus
    label: Focus
    min: 0
    max: 100
    step: 5
    default: 50
tags:
  - id: gym
    category: activity
    label: Gym
    user_created: true
`
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DBPath != "/tmp/custom.db" {
		t.Errorf("db path %q", cfg.DBPath)
	}
	if len(cfg.Scales) != 1 || cfg.Scales[0].ID != "focus" {
		t.Errorf("scales %+v", cfg.Scales)
	}
	tag, ok := cfg.TagByID("gym")
	if !ok || !tag.UserCreated {
		t.Errorf("gym tag %+v ok=%v", tag, ok)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("db_path: /tmp/from-file.db\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("MOODLOG_DB_PATH", "/tmp/from-env.db")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DBPath != "/tmp/from-env.db" {
		t.Errorf("db path %q, want env override", cfg.DBPath)
	}
}

func TestLoad_RejectsBadScales(t *testing.T) {
	for name, yaml := range map[string]string{
		"inverted range": "scales:\n  - id: broken\n    label: Broken\n    min: 10\n    max: 1\n",
		"duplicate id":   "scales:\n  - id: dup\n    label: A\n    min: 0\n    max: 1\n  - id: dup\n    label: B\n    min: 0\n    max: 1\n",
		"empty id":       "scales:\n  - label: Nameless\n    min: 0\n    max: 1\n",
	} {
		path := filepath.Join(t.TempDir(), "config.yaml")
		if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
			t.Fatal(err)
		}
		if _, err := Load(path); err == nil {
			t.Errorf("%s: expected validation error", name)
		}
	}
}

func TestLoad_RejectsUnknownTagCategory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := "tags:\n  - id: weird\n    category: galaxy\n    label: Weird\n"
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected validation error for unknown category")
	}
}
