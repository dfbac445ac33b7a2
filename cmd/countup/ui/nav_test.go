package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestActiveSection(t *testing.T) {
	spans := map[string]Span{
		SectionHome:      {Top: 0, Height: 10},
		SectionFeatures:  {Top: 10, Height: 10},
		SectionAnalytics: {Top: 20, Height: 10},
		SectionPricing:   {Top: 30, Height: 10},
	}

	tests := []struct {
		name    string
		scrollY int
		offset  int
		want    string
	}{
		{"top", 0, 0, SectionHome},
		{"just before features", 9, 0, SectionHome},
		{"features", 10, 0, SectionFeatures},
		{"offset pulls next section in early", 16, 4, SectionAnalytics},
		{"bottom", 100, 4, SectionPricing},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ActiveSection(spans, tt.scrollY, tt.offset))
		})
	}
}

func TestActiveSection_NoneAboveFirst(t *testing.T) {
	spans := map[string]Span{SectionHome: {Top: 5, Height: 10}}
	assert.Equal(t, "", ActiveSection(spans, 0, 0))
}

func TestNavbar_View(t *testing.T) {
	s := NewStyles(LightTheme())
	plain := Navbar{Active: SectionFeatures}.View(s, 80)
	assert.Contains(t, plain, "countup")
	assert.Contains(t, plain, "Features")
	assert.Contains(t, plain, "Pricing")

	scrolled := Navbar{Active: SectionFeatures, Scrolled: true}.View(s, 80)
	assert.Greater(t, len(scrolled), len(plain), "scrolled navbar gains a border")
}
