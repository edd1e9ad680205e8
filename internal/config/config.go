package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// ThemeConfig selects a color preset and optional per-color overrides.
type ThemeConfig struct {
	Preset        string `mapstructure:"preset"`
	Primary       string `mapstructure:"primary"`
	Secondary     string `mapstructure:"secondary"`
	Accent        string `mapstructure:"accent"`
	Muted         string `mapstructure:"muted"`
	Danger        string `mapstructure:"danger"`
	Success       string `mapstructure:"success"`
	Warning       string `mapstructure:"warning"`
	Background    string `mapstructure:"background"`
	MarkdownStyle string `mapstructure:"markdown_style"`
}

// ProfileConfig holds the links shown on the closing screen.
type ProfileConfig struct {
	Name        string `mapstructure:"name"`
	GitHubURL   string `mapstructure:"github_url"`
	LinkedInURL string `mapstructure:"linkedin_url"`
}

// GitConfig controls the git commit source.
type GitConfig struct {
	Dir    string `mapstructure:"dir"`
	Author string `mapstructure:"author"`
}

// LogConfig controls logging.
type LogConfig struct {
	Debug bool `mapstructure:"debug"`
}

// Config holds the application configuration.
type Config struct {
	Storage       string        `mapstructure:"storage"`
	DataDir       string        `mapstructure:"data_dir"`
	Year          int           `mapstructure:"year"`
	Seed          int64         `mapstructure:"seed"`
	Source        string        `mapstructure:"source"`
	ReducedMotion bool          `mapstructure:"reduced_motion"`
	MaxWidth      int           `mapstructure:"max_width"`
	Git           GitConfig     `mapstructure:"git"`
	Theme         ThemeConfig   `mapstructure:"theme"`
	Profile       ProfileConfig `mapstructure:"profile"`
	Log           LogConfig     `mapstructure:"log"`
}

// DefaultDataDir returns the default data directory (~/.devrewind/).
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".devrewind")
	}
	return filepath.Join(home, ".devrewind")
}

// Load reads configuration from file, environment variables, and defaults.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("storage", "sqlite")
	v.SetDefault("data_dir", DefaultDataDir())
	v.SetDefault("year", 2025)
	v.SetDefault("seed", 0)
	v.SetDefault("source", "mock")
	v.SetDefault("reduced_motion", false)
	v.SetDefault("max_width", 100)
	v.SetDefault("git.dir", "")
	v.SetDefault("git.author", "")
	v.SetDefault("theme.preset", "default-dark")
	v.SetDefault("theme.markdown_style", "")
	v.SetDefault("profile.name", "")
	v.SetDefault("profile.github_url", "https://github.com/egeaydn")
	v.SetDefault("profile.linkedin_url", "https://www.linkedin.com/in/egeaydin34/")
	v.SetDefault("log.debug", false)

	// Config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// XDG support
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			v.AddConfigPath(filepath.Join(xdg, "devrewind"))
		}
		v.AddConfigPath(DefaultDataDir())
		v.SetConfigName("config")
		v.SetConfigType("toml")
	}

	// Environment variables: DEVREWIND_STORAGE, DEVREWIND_YEAR, etc.
	v.SetEnvPrefix("DEVREWIND")
	v.AutomaticEnv()

	// Read config file (ignore not found)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Only return error if it's not a "file not found" error
			if configPath != "" {
				return nil, err
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
