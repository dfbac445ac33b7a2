package config

import "countup/internal/logging"

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level      string          `yaml:"level" json:"level,omitempty"`           // debug, info, warn, error
	Format     string          `yaml:"format" json:"format,omitempty"`         // json, text
	DebugMode  bool            `yaml:"debug_mode" json:"debug_mode,omitempty"` // Master toggle - false = no logging
	Dir        string          `yaml:"dir" json:"dir,omitempty"`               // per-category log files live here
	Categories map[string]bool `yaml:"categories" json:"categories,omitempty"` // Per-category toggles
}

// IsCategoryEnabled returns whether logging is enabled for a category.
// Returns false if debug_mode is false.
// Returns true if debug_mode is true and category is enabled (or not specified).
func (c *LoggingConfig) IsCategoryEnabled(category string) bool {
	if !c.DebugMode {
		return false
	}
	if c.Categories == nil {
		return true
	}
	enabled, exists := c.Categories[category]
	if !exists {
		return true
	}
	return enabled
}

// Options converts the config into logging package options.
func (c *LoggingConfig) Options() logging.Options {
	return logging.Options{
		DebugMode:  c.DebugMode,
		Level:      c.Level,
		JSONFormat: c.Format == "json",
		Dir:        c.Dir,
		Categories: c.Categories,
	}
}
