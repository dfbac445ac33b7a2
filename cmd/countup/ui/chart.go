package ui

import (
	"fmt"
	"strings"
	"time"

	"countup/internal/config"
	"countup/internal/countup"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

const defaultBarWidth = 40

// Bar is one chart bar growing from zero to its percentage.
type Bar struct {
	Name    string
	Percent float64
	delay   time.Duration
}

// Chart grows its bars one after another once started. Each bar waits
// index*stagger and then eases to its height.
type Chart struct {
	bars     []Bar
	duration time.Duration
	easing   countup.EasingFunc
	bar      progress.Model

	started time.Time
	state   countup.State
	now     time.Time
}

// NewChart builds a chart from page config.
func NewChart(cfg config.ChartConfig, stagger, duration time.Duration, theme Theme) *Chart {
	bars := make([]Bar, len(cfg.Bars))
	for i, b := range cfg.Bars {
		bars[i] = Bar{
			Name:    b.Name,
			Percent: b.Percent,
			delay:   time.Duration(i) * stagger,
		}
	}
	return &Chart{
		bars:     bars,
		duration: duration,
		easing:   countup.Ease,
		bar: progress.New(
			progress.WithSolidFill(string(theme.Primary)),
			progress.WithWidth(defaultBarWidth),
			progress.WithoutPercentage(),
		),
	}
}

// SetWidth sets the full-scale bar width.
func (c *Chart) SetWidth(w int) {
	if w < 10 {
		w = 10
	}
	c.bar.Width = w
}

// Start begins growing bars at now. Starting twice does nothing.
func (c *Chart) Start(now time.Time) {
	if c.state != countup.StateIdle {
		return
	}
	c.started = now
	c.now = now
	c.state = countup.StateRunning
}

// Tick records now and reports whether any bar is still growing.
func (c *Chart) Tick(now time.Time) bool {
	if c.state != countup.StateRunning {
		return false
	}
	c.now = now
	if now.Sub(c.started) >= c.total() {
		c.state = countup.StateComplete
		return false
	}
	return true
}

// State returns the chart's lifecycle state.
func (c *Chart) State() countup.State { return c.state }

// Heights returns each bar's current height as a fraction of full scale.
func (c *Chart) Heights() []float64 {
	out := make([]float64, len(c.bars))
	for i, b := range c.bars {
		out[i] = c.height(b)
	}
	return out
}

func (c *Chart) height(b Bar) float64 {
	target := b.Percent / 100
	switch c.state {
	case countup.StateIdle:
		return 0
	case countup.StateComplete:
		return target
	}
	p := countup.Progress(c.now.Sub(c.started)-b.delay, c.duration)
	return target * c.easing(p)
}

func (c *Chart) total() time.Duration {
	if len(c.bars) == 0 {
		return 0
	}
	return c.bars[len(c.bars)-1].delay + c.duration
}

// View renders one horizontal bar per row.
func (c *Chart) View(s Styles) string {
	var sb strings.Builder
	for i, h := range c.Heights() {
		b := c.bars[i]
		row := lipgloss.JoinHorizontal(lipgloss.Top,
			s.BarLabel.Render(b.Name),
			c.bar.ViewAs(h),
			s.Muted.Render(fmt.Sprintf(" %3.0f%%", h*100)),
		)
		sb.WriteString(row)
		if i < len(c.bars)-1 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
