// Package ui renders the countup landing page in the terminal.
// Uses a light/dark color palette with terminal background detection.
package ui

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette
var (
	// Light Mode Colors (Default)
	LightBackground = lipgloss.Color("#f8fafc")
	LightForeground = lipgloss.Color("#1e293b")
	LightPrimary    = lipgloss.Color("#6366f1") // Indigo
	LightAccent     = lipgloss.Color("#8b5cf6") // Violet
	LightMuted      = lipgloss.Color("#64748b")
	LightBorder     = lipgloss.Color("#e2e8f0")
	LightCard       = lipgloss.Color("#ffffff")

	// Dark Mode Colors
	DarkBackground = lipgloss.Color("#0f172a")
	DarkForeground = lipgloss.Color("#f1f5f9")
	DarkPrimary    = lipgloss.Color("#818cf8")
	DarkAccent     = lipgloss.Color("#a78bfa")
	DarkMuted      = lipgloss.Color("#94a3b8")
	DarkBorder     = lipgloss.Color("#334155")
	DarkCard       = lipgloss.Color("#1e293b")
)

// Theme holds the current color scheme
type Theme struct {
	Background lipgloss.Color
	Foreground lipgloss.Color
	Primary    lipgloss.Color
	Accent     lipgloss.Color
	Muted      lipgloss.Color
	Border     lipgloss.Color
	Card       lipgloss.Color
	IsDark     bool
}

// LightTheme returns the light mode theme
func LightTheme() Theme {
	return Theme{
		Background: LightBackground,
		Foreground: LightForeground,
		Primary:    LightPrimary,
		Accent:     LightAccent,
		Muted:      LightMuted,
		Border:     LightBorder,
		Card:       LightCard,
		IsDark:     false,
	}
}

// DarkTheme returns the dark mode theme
func DarkTheme() Theme {
	return Theme{
		Background: DarkBackground,
		Foreground: DarkForeground,
		Primary:    DarkPrimary,
		Accent:     DarkAccent,
		Muted:      DarkMuted,
		Border:     DarkBorder,
		Card:       DarkCard,
		IsDark:     true,
	}
}

// ThemeByName resolves a configured theme name; "auto" and unknown names detect.
func ThemeByName(name string) Theme {
	switch strings.ToLower(name) {
	case "light":
		return LightTheme()
	case "dark":
		return DarkTheme()
	default:
		return DetectTheme()
	}
}

// DetectTheme auto-detects based on terminal or returns light mode
func DetectTheme() Theme {
	// COLORFGBG is "foreground;background"
	if colorTerm := os.Getenv("COLORFGBG"); colorTerm != "" {
		parts := strings.Split(colorTerm, ";")
		if len(parts) == 2 {
			if bgIdx, err := strconv.Atoi(parts[1]); err == nil {
				// 0-6 and 8 (dark grey) are dark backgrounds
				if (bgIdx >= 0 && bgIdx <= 6) || bgIdx == 8 {
					return DarkTheme()
				}
			}
		}
	}

	if os.Getenv("COUNTUP_DARK_MODE") == "1" {
		return DarkTheme()
	}

	return LightTheme()
}

// Styles holds all the styled components
type Styles struct {
	Theme Theme

	// Layout
	Navbar         lipgloss.Style
	NavbarScrolled lipgloss.Style
	Footer         lipgloss.Style
	Section        lipgloss.Style

	// Text
	Brand    lipgloss.Style
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Muted    lipgloss.Style

	// Navigation
	NavLink       lipgloss.Style
	NavLinkActive lipgloss.Style

	// Components
	StatCard    lipgloss.Style
	StatNumber  lipgloss.Style
	StatCaption lipgloss.Style
	Card        lipgloss.Style
	CardTitle   lipgloss.Style
	BarLabel    lipgloss.Style
	Toast       lipgloss.Style
}

// NewStyles creates a new Styles instance with the given theme
func NewStyles(theme Theme) Styles {
	return Styles{
		Theme: theme,

		Navbar: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Padding(0, 2),

		NavbarScrolled: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Padding(0, 2).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(theme.Border),

		Footer: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Padding(0, 2),

		Section: lipgloss.NewStyle().
			Padding(1, 2),

		Brand: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true),

		Title: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true).
			MarginBottom(1),

		Subtitle: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Italic(true),

		Body: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		NavLink: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Padding(0, 1),

		NavLinkActive: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true).
			Underline(true).
			Padding(0, 1),

		StatCard: lipgloss.NewStyle().
			Width(statCardWidth).
			Align(lipgloss.Center).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			MarginRight(1),

		StatNumber: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true),

		StatCaption: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Card: lipgloss.NewStyle().
			Width(featureCardWidth).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			MarginRight(1),

		CardTitle: lipgloss.NewStyle().
			Foreground(theme.Accent).
			Bold(true),

		BarLabel: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Width(5),

		// gradient stand-in: solid accent fill, white text
		Toast: lipgloss.NewStyle().
			Background(theme.Accent).
			Foreground(lipgloss.Color("#ffffff")).
			Padding(0, 2).
			Bold(true),
	}
}
