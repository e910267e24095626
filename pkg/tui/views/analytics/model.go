package analytics

import (
	"fmt"
	"strings"

	"github.com/minhquang4334/baby-tracker/pkg/model"
	"github.com/minhquang4334/baby-tracker/pkg/stats"
	"github.com/minhquang4334/baby-tracker/pkg/timeutil"
	"github.com/minhquang4334/baby-tracker/pkg/tui/theme"
)

// barWidth bounds the in-terminal chart bars.
const barWidth = 20

// Model renders range averages and per-day bar charts. The root app fetches
// the rows; aggregation happens here so switching data re-derives everything.
type Model struct {
	theme theme.Theme
	width int

	days    int
	rows    []model.DayStats
	summary stats.Summary
	loading bool
	loaded  bool
}

func New(t theme.Theme) *Model {
	return &Model{theme: t, days: 7, loading: true}
}

func (m *Model) SetSize(width int) {
	m.width = width
}

func (m *Model) Days() int {
	return m.days
}

// TogglePeriod flips between the 7 and 30 day windows.
func (m *Model) TogglePeriod() {
	if m.days == 7 {
		m.days = 30
	} else {
		m.days = 7
	}
	m.loading = true
}

func (m *Model) SetRows(days int, rows []model.DayStats) {
	m.days = days
	m.rows = rows
	m.summary = stats.Aggregate(rows, days)
	m.loading = false
	m.loaded = true
}

func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(m.theme.Card.Title.Render(fmt.Sprintf("Last %d days", m.days)))
	b.WriteString("\n\n")

	if m.loading || !m.loaded {
		b.WriteString(m.theme.Card.Faint.Render("Loading…"))
		b.WriteString("\n")
		return b.String()
	}

	s := m.summary
	b.WriteString(fmt.Sprintf("😴 %s %s\n", timeutil.FormatDuration(s.AvgSleepMinutes), m.theme.Card.Label.Render("avg sleep/day")))
	b.WriteString(fmt.Sprintf("🍼 %s %s\n", s.AvgFeedings, m.theme.Card.Label.Render("avg feeds/day")))
	b.WriteString(fmt.Sprintf("🚼 %s %s\n", s.AvgDiapers, m.theme.Card.Label.Render("avg diapers/day")))
	b.WriteString(fmt.Sprintf("🍶 %s %s\n\n", s.AvgBottle, m.theme.Card.Label.Render("avg bottle/day")))

	b.WriteString(m.chart("Sleep (hours)", s.SleepHours))
	b.WriteString(m.chart("Feedings", s.Feedings))
	b.WriteString(m.chart("Bottle (ml)", s.BottleML))
	return b.String()
}

func (m *Model) chart(title string, points []stats.Point) string {
	var b strings.Builder
	b.WriteString(m.theme.Card.Title.Render(title))
	b.WriteString("\n")

	max := 0.0
	for _, p := range points {
		if p.Value > max {
			max = p.Value
		}
	}
	if max == 0 {
		max = 1
	}
	for _, p := range points {
		bar := strings.Repeat("█", int(p.Value/max*barWidth))
		b.WriteString(fmt.Sprintf("%s  %s %s\n",
			m.theme.Card.Faint.Render(shortDate(p.Date)),
			m.theme.Header.Banner.Render(bar),
			m.theme.Card.Label.Render(fmt.Sprintf("%g", p.Value)),
		))
	}
	b.WriteString("\n")
	return b.String()
}

// shortDate trims YYYY-MM-DD to MM-DD for chart labels.
func shortDate(date string) string {
	if len(date) == 10 {
		return date[5:]
	}
	return date
}
