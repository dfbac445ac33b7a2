package countup

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgress(t *testing.T) {
	assert.Equal(t, 0.0, Progress(0, time.Second))
	assert.Equal(t, 0.5, Progress(500*time.Millisecond, time.Second))
	assert.Equal(t, 1.0, Progress(time.Second, time.Second))
	assert.Equal(t, 1.0, Progress(5*time.Second, time.Second))
	assert.Equal(t, 0.0, Progress(-time.Second, time.Second))
	assert.Equal(t, 1.0, Progress(0, 0))
}

func TestEaseOutCubic(t *testing.T) {
	assert.Equal(t, 0.0, EaseOutCubic(0))
	assert.Equal(t, 1.0, EaseOutCubic(1))
	assert.InDelta(t, 0.875, EaseOutCubic(0.5), 1e-12)

	prev := 0.0
	for i := 1; i <= 100; i++ {
		v := EaseOutCubic(float64(i) / 100)
		assert.GreaterOrEqual(t, v, prev)
		prev = v
	}
}

func TestEase(t *testing.T) {
	assert.Equal(t, 0.0, Ease(0))
	assert.Equal(t, 1.0, Ease(1))
	assert.InDelta(t, 0.8024, Ease(0.5), 1e-3)

	prev := 0.0
	for i := 1; i <= 100; i++ {
		v := Ease(float64(i) / 100)
		assert.GreaterOrEqual(t, v, prev-1e-9)
		prev = v
	}
}

func TestCubicBezierLinear(t *testing.T) {
	linear := CubicBezier(0, 0, 1, 1)
	for _, p := range []float64{0.1, 0.33, 0.5, 0.9} {
		assert.InDelta(t, p, linear(p), 1e-6)
	}
}

func TestFrameAt(t *testing.T) {
	l, err := ParseLabel("$49")
	require.NoError(t, err)

	f := FrameAt(l, 0, time.Second)
	assert.Equal(t, "$0", f.Text)
	assert.False(t, f.Done)

	f = FrameAt(l, 500*time.Millisecond, time.Second)
	assert.Equal(t, 0.5, f.Progress)
	assert.InDelta(t, 42.875, f.Value, 1e-9)
	assert.Equal(t, "$42", f.Text)
	assert.False(t, f.Done)

	f = FrameAt(l, time.Second, time.Second)
	assert.Equal(t, "$49", f.Text)
	assert.Equal(t, 49.0, f.Value)
	assert.True(t, f.Done)
}

func TestFrameAt_FinalFrameIsVerbatim(t *testing.T) {
	// Interpolation would render these differently from the authored text.
	for _, text := range []string{"2.4K", "500+", "$1.5K+", "10K+", "4.90", "0.5K"} {
		l, err := ParseLabel(text)
		require.NoError(t, err)
		f := FrameAt(l, 2*time.Second, time.Second)
		assert.Equal(t, text, f.Text)
		assert.True(t, f.Done)
	}
}

func TestFrameAt_NotAnimatable(t *testing.T) {
	l, _ := ParseLabel("24/7")
	f := FrameAt(l, 0, time.Second)
	assert.Equal(t, "24/7", f.Text)
	assert.True(t, f.Done)
}

func TestRender(t *testing.T) {
	assert.Equal(t, "$42", Render("$49", 500*time.Millisecond, time.Second))
	assert.Equal(t, "85%", Render("98%", 500*time.Millisecond, time.Second))
	assert.Equal(t, "98%", Render("98%", time.Second, time.Second))
	assert.Equal(t, "Free", Render("Free", 0, time.Second))
	assert.Equal(t, "24/7", Render("24/7", 0, time.Second))
}

func TestRender_MonotonicMagnitude(t *testing.T) {
	for _, text := range []string{"$49", "2.4K", "98%", "500+", "4.9"} {
		l, err := ParseLabel(text)
		require.NoError(t, err)

		prev := math.Inf(-1)
		for ms := 0; ms <= 1000; ms += 7 {
			f := FrameAt(l, time.Duration(ms)*time.Millisecond, time.Second)
			assert.GreaterOrEqual(t, f.Value, prev, "%s at %dms", text, ms)
			prev = f.Value
		}
	}
}
