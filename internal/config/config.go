package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultPath is where the CLI looks for configuration.
const DefaultPath = "countup.yaml"

// Config holds all countup configuration.
type Config struct {
	// Core settings
	Name    string `yaml:"name"`
	Version string `yaml:"version"`

	// Count-up timing
	Animation AnimationConfig `yaml:"animation"`

	// Terminal landing page
	Page PageConfig `yaml:"page"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// AnimationConfig configures count-up timing.
type AnimationConfig struct {
	Duration  string `yaml:"duration"`   // total time from zero to the label value
	FrameRate int    `yaml:"frame_rate"` // frames per second for headless and TUI hosts
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Name:    "countup",
		Version: "1.0.0",

		Animation: AnimationConfig{
			Duration:  "1s",
			FrameRate: 60,
		},

		Page: *DefaultPageConfig(),

		Logging: LoggingConfig{
			Level:     "info",
			Format:    "text",
			DebugMode: false,
			Dir:       filepath.Join(".countup", "logs"),
		},
	}
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Return defaults if config file doesn't exist
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// Override with environment variables
	cfg.applyEnvOverrides()

	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if d := os.Getenv("COUNTUP_DURATION"); d != "" {
		c.Animation.Duration = d
	}
	if fps := os.Getenv("COUNTUP_FPS"); fps != "" {
		if n, err := strconv.Atoi(fps); err == nil {
			c.Animation.FrameRate = n
		}
	}
	if lvl := os.Getenv("COUNTUP_LOG_LEVEL"); lvl != "" {
		c.Logging.Level = lvl
	}
	if dbg := os.Getenv("COUNTUP_DEBUG"); dbg != "" {
		if on, err := strconv.ParseBool(dbg); err == nil {
			c.Logging.DebugMode = on
		}
	}
	if theme := os.Getenv("COUNTUP_THEME"); theme != "" {
		c.Page.Theme = strings.ToLower(theme)
	}
}

// GetDuration returns the count-up duration.
func (c *Config) GetDuration() time.Duration {
	return parseDuration(c.Animation.Duration, time.Second)
}

// GetFrameInterval returns the time between frames derived from the frame rate.
func (c *Config) GetFrameInterval() time.Duration {
	if c.Animation.FrameRate <= 0 {
		return 16 * time.Millisecond
	}
	return time.Second / time.Duration(c.Animation.FrameRate)
}

// ValidThemes lists accepted page themes.
var ValidThemes = []string{"auto", "light", "dark"}

// Validate validates the configuration.
func (c *Config) Validate() error {
	d, err := time.ParseDuration(c.Animation.Duration)
	if err != nil {
		return fmt.Errorf("invalid animation duration %q: %w", c.Animation.Duration, err)
	}
	if d <= 0 {
		return fmt.Errorf("animation duration must be positive, got %s", d)
	}
	if c.Animation.FrameRate < 1 || c.Animation.FrameRate > 240 {
		return fmt.Errorf("frame rate must be between 1 and 240, got %d", c.Animation.FrameRate)
	}
	return c.Page.Validate()
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
