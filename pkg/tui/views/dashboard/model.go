package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"

	"github.com/minhquang4334/baby-tracker/pkg/model"
	"github.com/minhquang4334/baby-tracker/pkg/timeline"
	"github.com/minhquang4334/baby-tracker/pkg/timeutil"
	"github.com/minhquang4334/baby-tracker/pkg/tui/theme"
)

// Model renders the dashboard view: profile line, live session banners,
// today's summary cards, and the recent activity list. It holds no client;
// the root app feeds it data and re-renders on every tick for the timers.
type Model struct {
	theme theme.Theme
	width int

	child         *model.Child
	summary       *model.DaySummary
	recent        []timeline.Item
	activeSleep   *model.SleepLog
	activeFeeding *model.FeedingLog

	loaded  bool
	missing bool
}

func New(t theme.Theme) *Model {
	return &Model{theme: t}
}

func (m *Model) SetSize(width int) {
	m.width = width
}

func (m *Model) SetChild(c *model.Child) {
	m.child = c
}

// SetMissingChild marks the load complete with no profile onboarded yet.
func (m *Model) SetMissingChild() {
	m.missing = true
	m.loaded = true
}

func (m *Model) SetSummary(s *model.DaySummary) {
	m.summary = s
	m.loaded = true
}

func (m *Model) SetRecent(items []timeline.Item) {
	m.recent = items
}

func (m *Model) SetActives(sleep *model.SleepLog, feeding *model.FeedingLog) {
	m.activeSleep = sleep
	m.activeFeeding = feeding
}

// Sleeping reports whether a sleep session is running.
func (m *Model) Sleeping() bool {
	return m.activeSleep != nil
}

// Feeding reports whether a breast feed is running.
func (m *Model) Feeding() bool {
	return m.activeFeeding != nil
}

// HasActive reports whether any live timer needs tick-driven re-renders.
func (m *Model) HasActive() bool {
	return m.activeSleep != nil || m.activeFeeding != nil
}

func (m *Model) View() string {
	if !m.loaded {
		return m.theme.Card.Faint.Render("Loading…")
	}
	if m.missing {
		return m.theme.Card.Faint.Render("No child profile yet. Run 'babytrack onboard' to create one.")
	}

	var b strings.Builder

	if m.child != nil {
		b.WriteString(m.theme.Header.Name.Render(m.child.Name))
		b.WriteString(m.theme.Header.Age.Render("  " + timeutil.Age(m.child.DateOfBirth)))
		b.WriteString("\n\n")
	}

	if s := m.activeSleep; s != nil {
		b.WriteString(m.banner("😴 Sleeping", s.StartTime))
		b.WriteString("\n")
	}
	if f := m.activeFeeding; f != nil {
		b.WriteString(m.banner(f.FeedType.Label(), f.StartTime))
		b.WriteString("\n")
	}
	if m.HasActive() {
		b.WriteString("\n")
	}

	if m.summary != nil {
		b.WriteString(m.cards())
		b.WriteString("\n")
	}

	b.WriteString(m.theme.Card.Title.Render("Recent activity"))
	b.WriteString("\n")
	if len(m.recent) == 0 {
		b.WriteString(m.theme.Card.Faint.Render("No activity logged today."))
		b.WriteString("\n")
	}
	for _, it := range m.recent {
		b.WriteString(m.row(it))
		b.WriteString("\n")
	}

	return b.String()
}

func (m *Model) banner(label, startISO string) string {
	elapsed := timeutil.FormatElapsed(timeutil.ElapsedSeconds(startISO))
	started := m.theme.Card.Label.Render(fmt.Sprintf("  (started %s)", timeutil.FormatTime(startISO)))
	return m.theme.Header.Banner.Render(fmt.Sprintf("%s  %s", label, elapsed)) + started
}

func (m *Model) cards() string {
	s := m.summary
	weight := "—"
	if s.LastWeightGrams != nil {
		weight = fmt.Sprintf("%.2f kg", float64(*s.LastWeightGrams)/1000)
	}
	cells := []string{
		m.card("😴 Sleep", timeutil.FormatDuration(s.TotalSleepMin), fmt.Sprintf("%d sessions", s.SleepCount)),
		m.card("🍼 Feeds", fmt.Sprintf("%d", s.FeedingCount), "today"),
		m.card("🚼 Diapers", fmt.Sprintf("%d", s.DiaperCount), "today"),
		m.card("📏 Weight", weight, "last measured"),
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

func (m *Model) card(title, value, label string) string {
	body := m.theme.Card.Title.Render(title) + "\n" +
		m.theme.Card.Value.Render(value) + "\n" +
		m.theme.Card.Label.Render(label)
	return m.theme.Card.Frame.Render(body)
}

func (m *Model) row(it timeline.Item) string {
	return fmt.Sprintf("%s %s  %s  %s",
		it.Category.Icon(),
		m.theme.Card.Faint.Render(it.Time()),
		it.Detail,
		m.theme.Card.Label.Render(it.Ago()),
	)
}
