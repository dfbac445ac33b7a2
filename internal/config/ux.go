package config

import (
	"fmt"
	"time"
)

// PageConfig holds terminal landing page configuration.
type PageConfig struct {
	// Theme is "auto", "light" or "dark"
	Theme string `yaml:"theme"`

	// Stats are the hero counters, animated once the hero becomes visible
	Stats []StatConfig `yaml:"stats"`

	Chart        ChartConfig        `yaml:"chart"`
	Visibility   VisibilityConfig   `yaml:"visibility"`
	Notification NotificationConfig `yaml:"notification"`

	// ScrollThrottle limits how often scroll position is processed
	ScrollThrottle string `yaml:"scroll_throttle"`

	// NavScrolledOffset is the scroll line after which the navbar switches style
	NavScrolledOffset int `yaml:"nav_scrolled_offset"`

	// SectionOffset is subtracted from section tops when picking the active nav link
	SectionOffset int `yaml:"section_offset"`
}

// StatConfig is one hero counter.
type StatConfig struct {
	Label   string `yaml:"label"`   // decorated number, e.g. "$49" or "10K+"
	Caption string `yaml:"caption"` // text under the number
}

// ChartConfig configures the analytics bars.
type ChartConfig struct {
	Bars     []BarConfig `yaml:"bars"`
	Stagger  string      `yaml:"stagger"`  // delay between consecutive bars
	Duration string      `yaml:"duration"` // grow time per bar
}

// BarConfig is one chart bar.
type BarConfig struct {
	Name    string  `yaml:"name"`
	Percent float64 `yaml:"percent"`
}

// VisibilityConfig mirrors an intersection observer's options.
type VisibilityConfig struct {
	Threshold    float64 `yaml:"threshold"`     // fraction of a section that must be visible
	BottomMargin int     `yaml:"bottom_margin"` // lines shaved off the bottom of the viewport
}

// NotificationConfig configures the toast.
type NotificationConfig struct {
	Duration      string `yaml:"duration"`
	SignupMessage string `yaml:"signup_message"`
	DemoMessage   string `yaml:"demo_message"`
}

// DefaultPageConfig returns the landing page defaults.
func DefaultPageConfig() *PageConfig {
	return &PageConfig{
		Theme: "auto",
		Stats: []StatConfig{
			{Label: "10K+", Caption: "Active Users"},
			{Label: "98%", Caption: "Satisfaction"},
			{Label: "$49", Caption: "Starting Price"},
			{Label: "2.4K", Caption: "Reviews"},
			{Label: "24/7", Caption: "Support"},
		},
		Chart: ChartConfig{
			Bars: []BarConfig{
				{Name: "Jan", Percent: 45},
				{Name: "Feb", Percent: 62},
				{Name: "Mar", Percent: 58},
				{Name: "Apr", Percent: 80},
				{Name: "May", Percent: 73},
				{Name: "Jun", Percent: 95},
			},
			Stagger:  "100ms",
			Duration: "800ms",
		},
		Visibility: VisibilityConfig{
			Threshold:    0.1,
			BottomMargin: 2,
		},
		Notification: NotificationConfig{
			Duration:      "3s",
			SignupMessage: "Coming soon! Sign up functionality will be available shortly.",
			DemoMessage:   "Demo video coming soon!",
		},
		ScrollThrottle:    "100ms",
		NavScrolledOffset: 2,
		SectionOffset:     4,
	}
}

// GetChartStagger returns the delay between chart bars.
func (p *PageConfig) GetChartStagger() time.Duration {
	return parseDuration(p.Chart.Stagger, 100*time.Millisecond)
}

// GetChartDuration returns the grow time of one chart bar.
func (p *PageConfig) GetChartDuration() time.Duration {
	return parseDuration(p.Chart.Duration, 800*time.Millisecond)
}

// GetNotificationDuration returns how long a toast stays up.
func (p *PageConfig) GetNotificationDuration() time.Duration {
	return parseDuration(p.Notification.Duration, 3*time.Second)
}

// GetScrollThrottle returns the scroll throttle window.
func (p *PageConfig) GetScrollThrottle() time.Duration {
	return parseDuration(p.ScrollThrottle, 100*time.Millisecond)
}

// Validate checks page settings.
func (p *PageConfig) Validate() error {
	validTheme := false
	for _, t := range ValidThemes {
		if p.Theme == t {
			validTheme = true
			break
		}
	}
	if !validTheme {
		return fmt.Errorf("invalid theme: %s (valid: %v)", p.Theme, ValidThemes)
	}
	for i, s := range p.Stats {
		if s.Label == "" {
			return fmt.Errorf("stat %d has an empty label", i)
		}
	}
	for _, b := range p.Chart.Bars {
		if b.Percent < 0 || b.Percent > 100 {
			return fmt.Errorf("chart bar %q percent out of range: %v", b.Name, b.Percent)
		}
	}
	if p.Visibility.Threshold < 0 || p.Visibility.Threshold > 1 {
		return fmt.Errorf("visibility threshold must be within [0,1], got %v", p.Visibility.Threshold)
	}
	return nil
}
