package toast

import (
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"

	"github.com/minhquang4334/baby-tracker/pkg/tui/theme"
)

// visibleFor is how long a toast stays on screen.
const visibleFor = 3 * time.Second

// expireMsg dismisses a toast once its generation is stale-checked.
type expireMsg struct {
	gen int
}

// Model renders a transient one-line notice above the footer. Each Show bumps
// a generation counter so a pending expiry from an earlier toast cannot
// dismiss a newer one.
type Model struct {
	text  string
	isErr bool
	gen   int

	theme theme.ToastTheme
}

func New(t theme.ToastTheme) *Model {
	return &Model{theme: t}
}

// Show replaces the current toast and schedules its expiry.
func (m *Model) Show(text string, isErr bool) tea.Cmd {
	m.text = text
	m.isErr = isErr
	m.gen++
	gen := m.gen
	return tea.Tick(visibleFor, func(time.Time) tea.Msg {
		return expireMsg{gen: gen}
	})
}

// Update clears the toast when its own expiry fires.
func (m *Model) Update(msg tea.Msg) {
	if v, ok := msg.(expireMsg); ok && v.gen == m.gen {
		m.text = ""
	}
}

// Visible reports whether there is something to render.
func (m *Model) Visible() bool {
	return m.text != ""
}

// View renders the toast line, or an empty string when dismissed.
func (m *Model) View() string {
	if m.text == "" {
		return ""
	}
	if m.isErr {
		return m.theme.Error.Render("✘ " + m.text)
	}
	return m.theme.Notice.Render("✔ " + m.text)
}
