package countup

import (
	"math"
	"time"
)

// EasingFunc maps linear progress in [0,1] onto eased progress.
type EasingFunc func(p float64) float64

// Progress returns elapsed/duration clamped to [0,1]. A non-positive
// duration is already complete.
func Progress(elapsed, duration time.Duration) float64 {
	if duration <= 0 {
		return 1
	}
	p := float64(elapsed) / float64(duration)
	switch {
	case p < 0:
		return 0
	case p > 1:
		return 1
	}
	return p
}

// EaseOutCubic front-loads change and decelerates near completion.
func EaseOutCubic(p float64) float64 {
	return 1 - math.Pow(1-p, 3)
}

// Ease is the CSS "ease" timing function, cubic-bezier(0.25, 0.1, 0.25, 1).
var Ease = CubicBezier(0.25, 0.1, 0.25, 1)

// CubicBezier builds a CSS-style timing function with control points
// (x1,y1) and (x2,y2); the end points are fixed at (0,0) and (1,1).
func CubicBezier(x1, y1, x2, y2 float64) EasingFunc {
	cx := 3 * x1
	bx := 3*(x2-x1) - cx
	ax := 1 - cx - bx
	cy := 3 * y1
	by := 3*(y2-y1) - cy
	ay := 1 - cy - by

	sampleX := func(t float64) float64 { return ((ax*t+bx)*t + cx) * t }
	sampleY := func(t float64) float64 { return ((ay*t+by)*t + cy) * t }
	slopeX := func(t float64) float64 { return (3*ax*t+2*bx)*t + cx }

	solve := func(x float64) float64 {
		// Newton first, bisection when the slope is too flat.
		t := x
		for i := 0; i < 8; i++ {
			dx := sampleX(t) - x
			if math.Abs(dx) < 1e-7 {
				return t
			}
			d := slopeX(t)
			if math.Abs(d) < 1e-6 {
				break
			}
			t -= dx / d
		}

		lo, hi := 0.0, 1.0
		t = x
		for lo < hi {
			v := sampleX(t)
			if math.Abs(v-x) < 1e-7 {
				return t
			}
			if x > v {
				lo = t
			} else {
				hi = t
			}
			next := (hi-lo)/2 + lo
			if next == t {
				break
			}
			t = next
		}
		return t
	}

	return func(p float64) float64 {
		if p <= 0 {
			return 0
		}
		if p >= 1 {
			return 1
		}
		return sampleY(solve(p))
	}
}
