package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Section identifiers, in page order.
const (
	SectionHome      = "home"
	SectionFeatures  = "features"
	SectionAnalytics = "analytics"
	SectionPricing   = "pricing"
)

// Sections lists the page's sections in display order.
var Sections = []string{SectionHome, SectionFeatures, SectionAnalytics, SectionPricing}

var sectionTitles = map[string]string{
	SectionHome:      "Home",
	SectionFeatures:  "Features",
	SectionAnalytics: "Analytics",
	SectionPricing:   "Pricing",
}

// ActiveSection returns the last section whose top, less offset, has been
// scrolled past. Nothing is active above the first section.
func ActiveSection(spans map[string]Span, scrollY, offset int) string {
	current := ""
	for _, id := range Sections {
		s, ok := spans[id]
		if !ok {
			continue
		}
		if scrollY >= s.Top-offset {
			current = id
		}
	}
	return current
}

// Navbar renders the brand and section links.
type Navbar struct {
	Active   string
	Scrolled bool
}

// View renders the navbar at width.
func (n Navbar) View(s Styles, width int) string {
	links := make([]string, 0, len(Sections))
	for i, id := range Sections {
		label := string(rune('1'+i)) + " " + sectionTitles[id]
		if id == n.Active {
			links = append(links, s.NavLinkActive.Render(label))
		} else {
			links = append(links, s.NavLink.Render(label))
		}
	}
	brand := s.Brand.Render("countup")
	right := lipgloss.JoinHorizontal(lipgloss.Top, links...)

	gap := width - lipgloss.Width(brand) - lipgloss.Width(right) - 4
	if gap < 1 {
		gap = 1
	}
	bar := brand + strings.Repeat(" ", gap) + right

	style := s.Navbar
	if n.Scrolled {
		style = s.NavbarScrolled
	}
	return style.Render(bar)
}
