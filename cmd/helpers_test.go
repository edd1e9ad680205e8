package cmd

import (
	"regexp"
	"testing"

	"github.com/chris-regnier/devrewind/internal/config"
	"github.com/chris-regnier/devrewind/internal/storage"
	"github.com/chris-regnier/devrewind/internal/storage/markdown"
)

var ansiRegex = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// stripANSI removes ANSI escape sequences from a string
func stripANSI(s string) string {
	return ansiRegex.ReplaceAllString(s, "")
}

func setupTestStore(t *testing.T) storage.Storage {
	t.Helper()
	dir := t.TempDir()
	s, err := markdown.New(dir)
	if err != nil {
		t.Fatalf("creating test storage: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func setupTestEnv(t *testing.T) {
	t.Helper()
	store = setupTestStore(t)
	appConfig = &config.Config{
		Storage:  "markdown",
		DataDir:  t.TempDir(),
		Year:     2025,
		Seed:     42,
		Source:   "mock",
		MaxWidth: 100,
		Theme:    config.ThemeConfig{Preset: "default-dark"},
		Profile:  config.ProfileConfig{GitHubURL: "https://github.com/octocat"},
	}
	jsonOutput = false
	session = nil
	t.Cleanup(func() { session = nil })
}
