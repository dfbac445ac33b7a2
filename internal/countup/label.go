// Package countup animates decorated numeric labels ("$49", "2.4K", "98%",
// "500+") from zero up to their value.
//
// Rendering is a pure function of (label, elapsed, duration); scheduling and
// writing the result somewhere visible is left to a host such as Animate or
// the terminal landing page.
package countup

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// ErrNotNumeric is returned when a label carries no parseable number.
var ErrNotNumeric = errors.New("countup: label has no numeric value")

var (
	nonNumeric    = regexp.MustCompile(`[^\d.]`)
	leadingNumber = regexp.MustCompile(`^(\d+\.?\d*|\.\d+)`)
)

// Decorations are the non-numeric markers found in a label's text.
type Decorations struct {
	Currency      bool // "$"
	Kilo          bool // "K", scales the magnitude by 1000
	Percent       bool // "%"
	Plus          bool // "+"
	Slash         bool // "/", ratio labels such as "24/7" never animate
	DecimalPlaces int  // 1 when the text contains ".", else 0
}

// Label is an immutable, parsed count-up label.
type Label struct {
	text    string
	target  float64
	numeric bool
	deco    Decorations
}

// ParseLabel parses text once. The label is always returned so callers can
// inspect its decorations; the error is ErrNotNumeric when nothing numeric
// survives stripping.
func ParseLabel(text string) (Label, error) {
	l := Label{
		text: text,
		deco: parseDecorations(text),
	}

	digits := nonNumeric.ReplaceAllString(text, "")
	m := leadingNumber.FindString(digits)
	if m == "" {
		l.target = math.NaN()
		return l, ErrNotNumeric
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		l.target = math.NaN()
		return l, ErrNotNumeric
	}
	if l.deco.Kilo {
		v *= 1000
	}
	l.target = v
	l.numeric = true
	return l, nil
}

func parseDecorations(text string) Decorations {
	d := Decorations{
		Currency: strings.Contains(text, "$"),
		Kilo:     strings.Contains(text, "K"),
		Percent:  strings.Contains(text, "%"),
		Plus:     strings.Contains(text, "+"),
		Slash:    strings.Contains(text, "/"),
	}
	if strings.Contains(text, ".") {
		d.DecimalPlaces = 1
	}
	return d
}

// Text returns the original label text.
func (l Label) Text() string { return l.text }

// Target returns the magnitude the animation converges to, NaN if none.
func (l Label) Target() float64 { return l.target }

// Decorations returns the markers detected in the text.
func (l Label) Decorations() Decorations { return l.deco }

// Numeric reports whether a magnitude was parsed.
func (l Label) Numeric() bool { return l.numeric }

// Animatable reports whether a host should animate the label at all.
func (l Label) Animatable() bool {
	return l.numeric && !l.deco.Slash
}

// Format renders one interpolated value with the label's decorations.
//
// The "+" marker is placed as a prefix when there is no currency symbol and
// as a suffix when there is neither a percent sign nor a "K", so a bare
// "500+" renders as "+123+" mid-flight. Final frames are always the original
// text, which hides this.
func (l Label) Format(v float64) string {
	var body string
	switch {
	case l.deco.Kilo && l.target >= 1000:
		body = fixed1(v/1000) + "K"
	case l.deco.DecimalPlaces > 0:
		body = fixed1(v)
	default:
		body = strconv.FormatFloat(math.Floor(v), 'f', 0, 64)
	}

	var sb strings.Builder
	if l.deco.Currency {
		sb.WriteByte('$')
	}
	if l.deco.Plus && !l.deco.Currency {
		sb.WriteByte('+')
	}
	sb.WriteString(body)
	if l.deco.Percent {
		sb.WriteByte('%')
	}
	if l.deco.Plus && !l.deco.Percent && !l.deco.Kilo {
		sb.WriteByte('+')
	}
	return sb.String()
}

// fixed1 formats with one decimal place, rounding halves of v*10 up. This
// approximates JS toFixed(1), which rounds the exact binary value, so the
// two can differ by a tenth at halves that are not exactly representable.
func fixed1(v float64) string {
	return strconv.FormatFloat(math.Floor(v*10+0.5)/10, 'f', 1, 64)
}
