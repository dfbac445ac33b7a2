package ui

import (
	"strings"
	"time"

	"countup/internal/config"
	"countup/internal/countup"
	"countup/internal/logging"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	featureCardWidth = 24

	// navbar (2) + toast (1) + help (1)
	chromeHeight = 4
)

// FrameMsg is one animation frame, the terminal stand-in for a repaint.
type FrameMsg struct {
	Time time.Time
}

// ConfigReloadedMsg carries a config that changed on disk.
type ConfigReloadedMsg struct {
	Config *config.Config
}

type scrollSettledMsg struct{}

type feature struct {
	title string
	body  string
}

var features = []feature{
	{"Live counters", "Numbers count up the moment they scroll into view."},
	{"Smart charts", "Bars grow one after another on a smooth curve."},
	{"Light & dark", "Colors follow your terminal background."},
}

type plan struct {
	name  string
	price string
	perks string
}

var plans = []plan{
	{"Starter", "$49/mo", "1 project, email support"},
	{"Pro", "$99/mo", "10 projects, priority support"},
	{"Enterprise", "Custom", "Unlimited projects, 24/7 support"},
}

// Model is the landing page.
type Model struct {
	cfg    *config.Config
	styles Styles
	keys   KeyMap
	help   help.Model

	viewport viewport.Model
	stats    *StatsRow
	chart    *Chart
	toast    *Toast
	observer *Observer
	throttle *Throttle
	nav      Navbar
	spans    map[string]Span

	width  int
	height int
	ready  bool

	ticking       bool
	scrollPending bool
	frameInterval time.Duration

	now func() time.Time
}

// NewModel builds the page from cfg.
func NewModel(cfg *config.Config) Model {
	m := Model{
		keys:     DefaultKeyMap(),
		help:     help.New(),
		viewport: viewport.New(80, 20),
		now:      time.Now,
	}
	m.applyConfig(cfg)
	return m
}

// WithClock replaces the clock used to start animations.
func (m Model) WithClock(now func() time.Time) Model {
	m.now = now
	return m
}

func (m *Model) applyConfig(cfg *config.Config) {
	m.cfg = cfg
	m.styles = NewStyles(ThemeByName(cfg.Page.Theme))
	m.frameInterval = cfg.GetFrameInterval()
	m.toast = NewToast(cfg.Page.GetNotificationDuration())
	m.throttle = NewThrottle(cfg.Page.GetScrollThrottle())

	m.observer = NewObserver(cfg.Page.Visibility.Threshold, cfg.Page.Visibility.BottomMargin)
	m.observer.Observe(SectionHome)
	m.observer.Observe(SectionAnalytics)
	m.buildAnimations()
}

// buildAnimations creates idle counters and chart from the current config.
func (m *Model) buildAnimations() {
	cards := make([]*StatCard, len(m.cfg.Page.Stats))
	for i, s := range m.cfg.Page.Stats {
		cards[i] = NewStatCard(s.Label, s.Caption, m.cfg.GetDuration())
	}
	m.stats = NewStatsRow(cards...)

	m.chart = NewChart(m.cfg.Page.Chart, m.cfg.Page.GetChartStagger(), m.cfg.Page.GetChartDuration(), m.styles.Theme)
	if m.width > 0 {
		m.chart.SetWidth(chartWidth(m.width))
	}
}

// replay rebuilds the counters and chart and lets their sections fire again.
func (m *Model) replay() {
	m.buildAnimations()
	m.observer.Reset(SectionHome)
	m.observer.Reset(SectionAnalytics)
	logging.UIDebug("replaying counters")
	m.refresh()
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	logging.UI("landing page starting with %d stats", len(m.cfg.Page.Stats))
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-chromeHeight, 1)
		m.help.Width = msg.Width
		m.chart.SetWidth(chartWidth(msg.Width))
		m.ready = true
		m.refresh()
		return m, m.onScroll()

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, tea.Batch(cmd, m.scrolled())

	case scrollSettledMsg:
		m.scrollPending = false
		return m, m.onScroll()

	case FrameMsg:
		running := m.stats.Tick(msg.Time)
		if m.chart.Tick(msg.Time) {
			running = true
		}
		m.refresh()
		if running {
			return m, m.frameCmd()
		}
		m.ticking = false
		logging.UIDebug("frame loop idle")
		return m, nil

	case ToastExpiredMsg:
		m.toast.Expire(msg)
		return m, nil

	case ConfigReloadedMsg:
		logging.UI("config reloaded, restarting counters")
		m.applyConfig(msg.Config)
		m.refresh()
		return m, m.onScroll()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		m.viewport.LineUp(1)
	case key.Matches(msg, m.keys.Down):
		m.viewport.LineDown(1)
	case key.Matches(msg, m.keys.PageUp):
		m.viewport.HalfViewUp()
	case key.Matches(msg, m.keys.PageDown):
		m.viewport.HalfViewDown()
	case key.Matches(msg, m.keys.Jump):
		idx := int(msg.String()[0] - '1')
		if idx >= 0 && idx < len(Sections) {
			m.viewport.SetYOffset(m.spans[Sections[idx]].Top)
		}
	case key.Matches(msg, m.keys.Signup):
		return m, m.toast.Show(m.cfg.Page.Notification.SignupMessage)
	case key.Matches(msg, m.keys.Demo):
		return m, m.toast.Show(m.cfg.Page.Notification.DemoMessage)
	case key.Matches(msg, m.keys.Replay):
		m.replay()
		return m, m.onScroll()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	default:
		return m, nil
	}
	return m, m.scrolled()
}

// scrolled throttles scroll handling. A dropped event schedules one
// trailing pass so the final position is always handled.
func (m *Model) scrolled() tea.Cmd {
	if m.throttle.Allow(m.now()) {
		return m.onScroll()
	}
	if m.scrollPending {
		return nil
	}
	m.scrollPending = true
	return tea.Tick(m.cfg.Page.GetScrollThrottle(), func(time.Time) tea.Msg {
		return scrollSettledMsg{}
	})
}

// onScroll updates the navbar and starts animations for sections that
// just became visible.
func (m *Model) onScroll() tea.Cmd {
	y := m.viewport.YOffset
	m.nav.Active = ActiveSection(m.spans, y, m.cfg.Page.SectionOffset)
	m.nav.Scrolled = y > m.cfg.Page.NavScrolledOffset

	if !m.ready {
		return nil
	}
	now := m.now()
	for _, id := range m.observer.Check(m.spans, y, m.viewport.Height) {
		logging.UIDebug("section %s visible at line %d", id, y)
		switch id {
		case SectionHome:
			m.stats.Start(now)
		case SectionAnalytics:
			m.chart.Start(now)
		}
	}
	m.refresh()
	return m.startFrames()
}

// startFrames starts the frame loop unless one is already running. Only
// one FrameMsg chain exists at a time.
func (m *Model) startFrames() tea.Cmd {
	if m.ticking {
		return nil
	}
	running := false
	for _, c := range m.stats.Cards() {
		if c.Running() {
			running = true
		}
	}
	if m.chart.State() == countup.StateRunning {
		running = true
	}
	if !running {
		return nil
	}
	m.ticking = true
	return m.frameCmd()
}

func (m Model) frameCmd() tea.Cmd {
	return tea.Tick(m.frameInterval, func(t time.Time) tea.Msg {
		return FrameMsg{Time: t}
	})
}

// refresh re-renders the page body and recomputes section spans.
func (m *Model) refresh() {
	sections := []struct {
		id   string
		view string
	}{
		{SectionHome, m.homeView()},
		{SectionFeatures, m.featuresView()},
		{SectionAnalytics, m.analyticsView()},
		{SectionPricing, m.pricingView()},
	}

	spans := make(map[string]Span, len(sections))
	parts := make([]string, 0, len(sections)+1)
	top := 0
	for _, s := range sections {
		h := lipgloss.Height(s.view)
		spans[s.id] = Span{Top: top, Height: h}
		top += h
		parts = append(parts, s.view)
	}
	parts = append(parts, m.styles.Footer.Render("© countup. Numbers that move."))

	m.spans = spans
	m.viewport.SetContent(strings.Join(parts, "\n"))
}

func (m *Model) homeView() string {
	s := m.styles
	return s.Section.Render(lipgloss.JoinVertical(lipgloss.Left,
		s.Title.Render("Watch your numbers come alive"),
		s.Subtitle.Render("Counters that start when you scroll to them."),
		"",
		m.stats.View(s),
		"",
		s.Muted.Render("[t] Get started   [d] Watch demo"),
	))
}

func (m *Model) featuresView() string {
	s := m.styles
	cards := make([]string, len(features))
	for i, f := range features {
		cards[i] = s.Card.Render(lipgloss.JoinVertical(lipgloss.Left,
			s.CardTitle.Render(f.title),
			s.Body.Render(f.body),
		))
	}
	return s.Section.Render(lipgloss.JoinVertical(lipgloss.Left,
		s.Title.Render("Features"),
		lipgloss.JoinHorizontal(lipgloss.Top, cards...),
	))
}

func (m *Model) analyticsView() string {
	s := m.styles
	return s.Section.Render(lipgloss.JoinVertical(lipgloss.Left,
		s.Title.Render("Analytics"),
		m.chart.View(s),
	))
}

func (m *Model) pricingView() string {
	s := m.styles
	cards := make([]string, len(plans))
	for i, p := range plans {
		cards[i] = s.Card.Render(lipgloss.JoinVertical(lipgloss.Left,
			s.CardTitle.Render(p.name),
			s.StatNumber.Render(p.price),
			s.Muted.Render(p.perks),
		))
	}
	return s.Section.Render(lipgloss.JoinVertical(lipgloss.Left,
		s.Title.Render("Pricing"),
		lipgloss.JoinHorizontal(lipgloss.Top, cards...),
	))
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	header := m.nav.View(m.styles, m.width)
	if !m.nav.Scrolled {
		header += "\n"
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		m.viewport.View(),
		m.toast.View(m.styles),
		m.help.View(m.keys),
	)
}

// Stats exposes the hero counters.
func (m Model) Stats() *StatsRow { return m.stats }

// Chart exposes the analytics chart.
func (m Model) Chart() *Chart { return m.chart }

// Toast exposes the notification.
func (m Model) Toast() *Toast { return m.toast }

// Nav returns the navbar state.
func (m Model) Nav() Navbar { return m.nav }

// Ticking reports whether a frame loop is scheduled.
func (m Model) Ticking() bool { return m.ticking }

func chartWidth(total int) int {
	return min(max(total-20, 10), 60)
}
