package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Storage != "sqlite" {
		t.Errorf("expected storage 'sqlite', got %q", cfg.Storage)
	}
	if cfg.Year != 2025 {
		t.Errorf("expected year 2025, got %d", cfg.Year)
	}
	if cfg.Source != "mock" {
		t.Errorf("expected source 'mock', got %q", cfg.Source)
	}
	if cfg.Seed != 0 {
		t.Errorf("expected seed 0, got %d", cfg.Seed)
	}
	if cfg.Theme.Preset != "default-dark" {
		t.Errorf("expected preset 'default-dark', got %q", cfg.Theme.Preset)
	}
	if cfg.Theme.MarkdownStyle != "" {
		t.Errorf("expected empty markdown_style (uses preset default), got %q", cfg.Theme.MarkdownStyle)
	}
	if cfg.ReducedMotion {
		t.Error("expected reduced motion off by default")
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.toml")

	content := `
storage = "markdown"
year = 2024
seed = 1234
reduced_motion = true

[theme]
preset = "dracula"
accent = "#00FFFF"

[profile]
name = "Ada"
github_url = "https://github.com/ada"

[git]
author = "ada@example.com"
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Storage != "markdown" {
		t.Errorf("expected storage 'markdown', got %q", cfg.Storage)
	}
	if cfg.Year != 2024 || cfg.Seed != 1234 {
		t.Errorf("expected year 2024 seed 1234, got %d %d", cfg.Year, cfg.Seed)
	}
	if !cfg.ReducedMotion {
		t.Error("expected reduced motion on")
	}
	if cfg.Theme.Preset != "dracula" || cfg.Theme.Accent != "#00FFFF" {
		t.Errorf("unexpected theme %+v", cfg.Theme)
	}
	if cfg.Profile.Name != "Ada" || cfg.Profile.GitHubURL != "https://github.com/ada" {
		t.Errorf("unexpected profile %+v", cfg.Profile)
	}
	if cfg.Profile.LinkedInURL == "" {
		t.Error("expected default linkedin url to survive partial profile section")
	}
	if cfg.Git.Author != "ada@example.com" {
		t.Errorf("unexpected git author %q", cfg.Git.Author)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv("DEVREWIND_YEAR", "2023")
	t.Setenv("DEVREWIND_STORAGE", "markdown")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Year != 2023 {
		t.Errorf("expected year 2023 from env, got %d", cfg.Year)
	}
	if cfg.Storage != "markdown" {
		t.Errorf("expected storage from env, got %q", cfg.Storage)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("expected error for missing explicit config file")
	}
}
