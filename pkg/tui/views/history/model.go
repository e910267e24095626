package history

import (
	"fmt"
	"strings"

	"github.com/minhquang4334/baby-tracker/pkg/timeline"
	"github.com/minhquang4334/baby-tracker/pkg/timeutil"
	"github.com/minhquang4334/baby-tracker/pkg/tui/theme"
)

// Model renders one day's timeline with date navigation and a category
// filter. Day changes and filter changes are applied by the root app, which
// reloads data and calls SetItems when the fetch lands.
type Model struct {
	theme theme.Theme
	width int

	day     string
	filter  timeline.Filter
	items   []timeline.Item
	cursor  int
	loading bool
}

func New(t theme.Theme) *Model {
	return &Model{
		theme:  t,
		day:    timeutil.Today(),
		filter: timeline.FilterAll,
	}
}

func (m *Model) SetSize(width int) {
	m.width = width
}

func (m *Model) Day() string {
	return m.day
}

func (m *Model) Filter() timeline.Filter {
	return m.filter
}

// ShiftDay moves the selected day by delta days, clamped to today. It
// reports whether the day actually changed.
func (m *Model) ShiftDay(delta int) bool {
	next, err := timeutil.AddDays(m.day, delta)
	if err != nil {
		return false
	}
	next = timeutil.ClampToToday(next)
	if next == m.day {
		return false
	}
	m.day = next
	m.cursor = 0
	m.loading = true
	return true
}

// CycleFilter advances to the next category filter.
func (m *Model) CycleFilter() {
	switch m.filter {
	case timeline.FilterAll:
		m.filter = timeline.FilterSleep
	case timeline.FilterSleep:
		m.filter = timeline.FilterFeeding
	case timeline.FilterFeeding:
		m.filter = timeline.FilterDiaper
	default:
		m.filter = timeline.FilterAll
	}
	m.cursor = 0
	m.loading = true
}

// MoveCursor shifts the selection by delta rows, clamped to the list.
func (m *Model) MoveCursor(delta int) {
	if len(m.items) == 0 {
		m.cursor = 0
		return
	}
	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor > len(m.items)-1 {
		m.cursor = len(m.items) - 1
	}
}

// Selected returns the item under the cursor, or nil when the day is empty.
func (m *Model) Selected() *timeline.Item {
	if len(m.items) == 0 {
		return nil
	}
	return &m.items[m.cursor]
}

func (m *Model) SetItems(items []timeline.Item) {
	m.items = items
	m.loading = false
	if m.cursor > len(items)-1 {
		m.cursor = len(items) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) View() string {
	var b strings.Builder

	title := timeutil.FormatDateFull(m.day)
	if timeutil.IsToday(m.day) {
		title = "Today · " + title
	}
	b.WriteString(m.theme.Card.Title.Render(title))
	if m.filter != timeline.FilterAll {
		b.WriteString(m.theme.Card.Label.Render(fmt.Sprintf("  [%s]", m.filter)))
	}
	b.WriteString("\n\n")

	if m.loading {
		b.WriteString(m.theme.Card.Faint.Render("Loading…"))
		b.WriteString("\n")
		return b.String()
	}

	if len(m.items) == 0 {
		b.WriteString(m.theme.Card.Faint.Render("No events logged for this day."))
		b.WriteString("\n")
		return b.String()
	}

	for i, it := range m.items {
		marker := "  "
		detail := it.Detail
		if i == m.cursor {
			marker = "▸ "
			detail = m.theme.Card.Value.Render(detail)
		}
		b.WriteString(fmt.Sprintf("%s%s %s  %s\n",
			marker,
			it.Category.Icon(),
			m.theme.Card.Faint.Render(it.Time()),
			detail,
		))
	}
	return b.String()
}
