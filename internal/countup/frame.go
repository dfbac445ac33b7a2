package countup

import "time"

// Frame is the display state of a label at one tick. Frames are
// recomputed every tick and never stored by the package.
type Frame struct {
	Elapsed  time.Duration
	Progress float64
	Value    float64
	Text     string
	Done     bool
}

// FrameAt computes the frame for a label after elapsed out of duration.
// Once progress reaches 1 the text is the original label verbatim, so the
// last frame always matches the authored text regardless of rounding.
func FrameAt(l Label, elapsed, duration time.Duration) Frame {
	p := Progress(elapsed, duration)
	f := Frame{
		Elapsed:  elapsed,
		Progress: p,
	}
	if !l.Animatable() {
		f.Text = l.text
		f.Done = true
		return f
	}

	const start = 0.0
	f.Value = start + (l.target-start)*EaseOutCubic(p)

	if p >= 1 {
		f.Value = l.target
		f.Text = l.text
		f.Done = true
		return f
	}
	f.Text = l.Format(f.Value)
	return f
}

// Render is the pure form of the animation: the text to display for
// originalText after elapsed out of duration. Labels that cannot animate
// render as themselves.
func Render(originalText string, elapsed, duration time.Duration) string {
	l, err := ParseLabel(originalText)
	if err != nil {
		return originalText
	}
	return FrameAt(l, elapsed, duration).Text
}
