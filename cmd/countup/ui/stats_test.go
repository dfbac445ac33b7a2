package ui

import (
	"strings"
	"testing"
	"time"

	"countup/internal/countup"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatCard_CountsUp(t *testing.T) {
	c := NewStatCard("$49", "Starting Price", time.Second)
	assert.Equal(t, "$49", c.Text(), "static before start")
	assert.Equal(t, countup.StateIdle, c.State())

	start := time.Unix(100, 0)
	c.Start(start)
	assert.Equal(t, "$0", c.Text())
	assert.True(t, c.Running())

	assert.True(t, c.Tick(start.Add(500*time.Millisecond)))
	assert.Equal(t, "$42", c.Text())

	assert.False(t, c.Tick(start.Add(time.Second)))
	assert.Equal(t, "$49", c.Text())
	assert.Equal(t, countup.StateComplete, c.State())

	// terminal
	c.Start(start.Add(2 * time.Second))
	assert.False(t, c.Tick(start.Add(3*time.Second)))
	assert.Equal(t, "$49", c.Text())
}

func TestStatCard_StaticLabels(t *testing.T) {
	for _, text := range []string{"24/7", "Free"} {
		c := NewStatCard(text, "", time.Second)
		c.Start(time.Now())
		assert.False(t, c.Running())
		assert.False(t, c.Tick(time.Now().Add(time.Hour)))
		assert.Equal(t, text, c.Text())
		assert.Equal(t, countup.StateSkipped, c.State())
	}
}

func TestStatsRow(t *testing.T) {
	row := NewStatsRow(
		NewStatCard("10K+", "Active Users", time.Second),
		NewStatCard("24/7", "Support", time.Second),
	)
	start := time.Unix(0, 0)
	row.Start(start)

	assert.True(t, row.Tick(start.Add(500*time.Millisecond)))
	assert.Equal(t, "+8.8K", row.Cards()[0].Text())
	assert.False(t, row.Tick(start.Add(time.Second)))
	assert.Equal(t, "10K+", row.Cards()[0].Text())

	view := row.View(NewStyles(LightTheme()))
	require.NotEmpty(t, view)
	assert.True(t, strings.Contains(view, "10K+"))
	assert.True(t, strings.Contains(view, "Support"))
}
