package ui

import (
	"time"

	"countup/internal/countup"
	"countup/internal/logging"

	"github.com/charmbracelet/lipgloss"
)

const statCardWidth = 16

// StatCard is one hero counter. It displays its label statically until
// started, then counts up frame by frame.
type StatCard struct {
	label   countup.Label
	caption string
	text    string

	duration time.Duration
	started  time.Time
	state    countup.State
}

// NewStatCard parses the label once. Labels that cannot animate keep their
// static text forever.
func NewStatCard(text, caption string, duration time.Duration) *StatCard {
	l, err := countup.ParseLabel(text)
	c := &StatCard{
		label:    l,
		caption:  caption,
		text:     text,
		duration: duration,
	}
	if err != nil || !l.Animatable() {
		logging.UIDebug("stat %q keeps static text", text)
		c.state = countup.StateSkipped
	}
	return c
}

// Start begins counting at now. Starting twice does nothing.
func (c *StatCard) Start(now time.Time) {
	if c.state != countup.StateIdle {
		return
	}
	c.started = now
	c.state = countup.StateRunning
	c.text = countup.FrameAt(c.label, 0, c.duration).Text
}

// Tick advances to the frame for now and reports whether more frames follow.
func (c *StatCard) Tick(now time.Time) bool {
	if c.state != countup.StateRunning {
		return false
	}
	f := countup.FrameAt(c.label, now.Sub(c.started), c.duration)
	c.text = f.Text
	if f.Done {
		c.state = countup.StateComplete
		return false
	}
	return true
}

// Text returns what the card currently displays.
func (c *StatCard) Text() string { return c.text }

// State returns the card's lifecycle state.
func (c *StatCard) State() countup.State { return c.state }

// Running reports whether the card still needs frames.
func (c *StatCard) Running() bool { return c.state == countup.StateRunning }

// View renders the card.
func (c *StatCard) View(s Styles) string {
	body := lipgloss.JoinVertical(lipgloss.Center,
		s.StatNumber.Render(c.text),
		s.StatCaption.Render(c.caption),
	)
	return s.StatCard.Render(body)
}

// StatsRow is the hero's group of counters.
type StatsRow struct {
	cards []*StatCard
}

// NewStatsRow builds cards for label/caption pairs.
func NewStatsRow(cards ...*StatCard) *StatsRow {
	return &StatsRow{cards: cards}
}

// Cards returns the row's cards.
func (r *StatsRow) Cards() []*StatCard { return r.cards }

// Start starts every card at now.
func (r *StatsRow) Start(now time.Time) {
	for _, c := range r.cards {
		c.Start(now)
	}
}

// Tick advances every running card and reports whether any still runs.
func (r *StatsRow) Tick(now time.Time) bool {
	running := false
	for _, c := range r.cards {
		if c.Tick(now) {
			running = true
		}
	}
	return running
}

// View renders the cards side by side.
func (r *StatsRow) View(s Styles) string {
	views := make([]string, 0, len(r.cards))
	for _, c := range r.cards {
		views = append(views, c.View(s))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, views...)
}
