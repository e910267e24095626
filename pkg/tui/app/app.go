// Package app hosts the Bubble Tea program for the tracker TUI.
package app

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"github.com/minhquang4334/baby-tracker/pkg/client"
	"github.com/minhquang4334/baby-tracker/pkg/model"
	"github.com/minhquang4334/baby-tracker/pkg/session"
	"github.com/minhquang4334/baby-tracker/pkg/stats"
	"github.com/minhquang4334/baby-tracker/pkg/timeline"
	"github.com/minhquang4334/baby-tracker/pkg/timeutil"
	"github.com/minhquang4334/baby-tracker/pkg/tui/components/toast"
	"github.com/minhquang4334/baby-tracker/pkg/tui/theme"
	analyticsview "github.com/minhquang4334/baby-tracker/pkg/tui/views/analytics"
	dashboardview "github.com/minhquang4334/baby-tracker/pkg/tui/views/dashboard"
	historyview "github.com/minhquang4334/baby-tracker/pkg/tui/views/history"
)

// recentLimit caps the dashboard activity list.
const recentLimit = 8

type view int

const (
	viewDashboard view = iota
	viewHistory
	viewAnalytics
)

var viewLabels = []string{"Dashboard", "History", "Analytics"}

type dashboardLoadedMsg struct {
	gen     int
	child   *model.Child
	summary *model.DaySummary
	recent  []timeline.Item
	sleep   *model.SleepLog
	feeding *model.FeedingLog
	err     error
}

type historyLoadedMsg struct {
	gen    int
	day    string
	filter timeline.Filter
	items  []timeline.Item
	err    error
}

type analyticsLoadedMsg struct {
	gen  int
	days int
	rows []model.DayStats
	err  error
}

type actionDoneMsg struct {
	notice string
	err    error
}

type tickMsg time.Time

// Model is the root Bubble Tea model. Every fetch carries a generation
// counter; responses from superseded loads are dropped so a slow request can
// never overwrite newer state.
type Model struct {
	client     *client.Client
	reconciler *session.Reconciler

	theme  theme.Theme
	width  int
	height int

	view      view
	dashboard *dashboardview.Model
	history   *historyview.Model
	analytics *analyticsview.Model
	toast     *toast.Model

	bottleInput    textinput.Model
	enteringBottle bool

	pending bool
	loadGen int
}

// New constructs the root model around an API client and its reconciler.
func New(c *client.Client, r *session.Reconciler) *Model {
	t := theme.Default()

	input := textinput.New()
	input.Prompt = "Bottle ml: "
	input.Placeholder = strconv.Itoa(r.State.LastBottleML.Get())

	return &Model{
		client:      c,
		reconciler:  r,
		theme:       t,
		dashboard:   dashboardview.New(t),
		history:     historyview.New(t),
		analytics:   analyticsview.New(t),
		toast:       toast.New(t.Toast),
		bottleInput: input,
	}
}

// Run launches the Bubble Tea program.
func Run(c *client.Client, r *session.Reconciler) error {
	p := tea.NewProgram(New(c, r), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.loadDashboard(), m.tick())
}

func (m *Model) tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *Model) loadDashboard() tea.Cmd {
	m.loadGen++
	gen := m.loadGen
	c := m.client
	r := m.reconciler
	return func() tea.Msg {
		ctx := context.Background()
		out := dashboardLoadedMsg{gen: gen}

		if _, err := r.LoadChild(ctx); err != nil {
			out.err = err
			return out
		}
		child := r.State.Child.Get()
		out.child = child
		if child == nil {
			return out
		}

		if err := r.Refresh(ctx); err != nil {
			out.err = err
			return out
		}
		out.sleep = r.State.ActiveSleep.Get()
		out.feeding = r.State.ActiveFeeding.Get()

		today := timeutil.Today()
		summary, err := c.GetSummary(ctx, today)
		if err != nil {
			out.err = err
			return out
		}
		out.summary = summary

		items, err := timeline.Load(ctx, c, today, timeline.FilterAll)
		if err != nil {
			out.err = err
			return out
		}
		out.recent = timeline.Recent(items, recentLimit)
		return out
	}
}

func (m *Model) loadHistory() tea.Cmd {
	m.loadGen++
	gen := m.loadGen
	c := m.client
	day := m.history.Day()
	filter := m.history.Filter()
	return func() tea.Msg {
		items, err := timeline.Load(context.Background(), c, day, filter)
		return historyLoadedMsg{gen: gen, day: day, filter: filter, items: items, err: err}
	}
}

func (m *Model) loadAnalytics() tea.Cmd {
	m.loadGen++
	gen := m.loadGen
	c := m.client
	days := m.analytics.Days()
	return func() tea.Msg {
		from, to, err := stats.RangeFrom(timeutil.Today(), days)
		if err != nil {
			return analyticsLoadedMsg{gen: gen, days: days, err: err}
		}
		rows, err := c.GetAnalytics(context.Background(), from, to)
		return analyticsLoadedMsg{gen: gen, days: days, rows: rows, err: err}
	}
}

// reloadCurrent refetches whatever view is on screen.
func (m *Model) reloadCurrent() tea.Cmd {
	switch m.view {
	case viewHistory:
		return m.loadHistory()
	case viewAnalytics:
		return m.loadAnalytics()
	}
	return m.loadDashboard()
}

// action runs a mutation off the update loop and reports its toast text.
func (m *Model) action(fn func(ctx context.Context) (string, error)) tea.Cmd {
	m.pending = true
	return func() tea.Msg {
		notice, err := fn(context.Background())
		return actionDoneMsg{notice: notice, err: err}
	}
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m.toast.Update(msg)

	switch v := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = v.Width
		m.height = v.Height
		m.dashboard.SetSize(v.Width)
		m.history.SetSize(v.Width)
		m.analytics.SetSize(v.Width)
		return m, nil

	case tickMsg:
		return m, m.tick()

	case dashboardLoadedMsg:
		if v.gen != m.loadGen {
			return m, nil
		}
		if v.err != nil {
			return m, m.toast.Show(v.err.Error(), true)
		}
		if v.child == nil {
			m.dashboard.SetMissingChild()
			return m, nil
		}
		m.dashboard.SetChild(v.child)
		m.dashboard.SetActives(v.sleep, v.feeding)
		if v.summary != nil {
			m.dashboard.SetSummary(v.summary)
		}
		m.dashboard.SetRecent(v.recent)
		return m, nil

	case historyLoadedMsg:
		if v.gen != m.loadGen || v.day != m.history.Day() || v.filter != m.history.Filter() {
			return m, nil
		}
		if v.err != nil {
			return m, m.toast.Show(v.err.Error(), true)
		}
		m.history.SetItems(v.items)
		return m, nil

	case analyticsLoadedMsg:
		if v.gen != m.loadGen || v.days != m.analytics.Days() {
			return m, nil
		}
		if v.err != nil {
			return m, m.toast.Show(v.err.Error(), true)
		}
		m.analytics.SetRows(v.days, v.rows)
		return m, nil

	case actionDoneMsg:
		m.pending = false
		if v.err != nil {
			return m, m.toast.Show(v.err.Error(), true)
		}
		cmds := []tea.Cmd{m.reloadCurrent()}
		if v.notice != "" {
			cmds = append(cmds, m.toast.Show(v.notice, false))
		}
		return m, tea.Batch(cmds...)

	case tea.KeyMsg:
		return m.handleKey(v)
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.enteringBottle {
		return m.handleBottleKey(msg)
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "1":
		m.view = viewDashboard
		return m, m.loadDashboard()
	case "2":
		m.view = viewHistory
		return m, m.loadHistory()
	case "3":
		m.view = viewAnalytics
		return m, m.loadAnalytics()
	case "tab":
		m.view = (m.view + 1) % 3
		switch m.view {
		case viewHistory:
			return m, m.loadHistory()
		case viewAnalytics:
			return m, m.loadAnalytics()
		}
		return m, m.loadDashboard()
	}

	switch m.view {
	case viewDashboard:
		return m.handleDashboardKey(msg)
	case viewHistory:
		return m.handleHistoryKey(msg)
	case viewAnalytics:
		return m.handleAnalyticsKey(msg)
	}
	return m, nil
}

func (m *Model) handleDashboardKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.pending {
		return m, nil
	}
	r := m.reconciler

	switch msg.String() {
	case "s":
		if m.dashboard.Sleeping() {
			return m, m.action(func(ctx context.Context) (string, error) {
				return r.StopSleep(ctx)
			})
		}
		return m, m.action(func(ctx context.Context) (string, error) {
			return r.StartSleep(ctx, "")
		})
	case "l":
		return m, m.startOrStopFeed(model.BreastLeft)
	case "r":
		return m, m.startOrStopFeed(model.BreastRight)
	case "b":
		m.enteringBottle = true
		m.bottleInput.SetValue("")
		m.bottleInput.Placeholder = strconv.Itoa(r.State.LastBottleML.Get())
		return m, m.bottleInput.Focus()
	case "x":
		if m.dashboard.Sleeping() {
			return m, m.action(func(ctx context.Context) (string, error) {
				return "Sleep session discarded", r.CancelSleep(ctx)
			})
		}
		if m.dashboard.Feeding() {
			return m, m.action(func(ctx context.Context) (string, error) {
				return "Feed discarded", r.CancelFeeding(ctx)
			})
		}
		return m, nil
	case "w":
		return m, m.logDiaper(model.Wet)
	case "d":
		return m, m.logDiaper(model.Dirty)
	case "m":
		return m, m.logDiaper(model.Mixed)
	}
	return m, nil
}

func (m *Model) startOrStopFeed(side model.FeedType) tea.Cmd {
	r := m.reconciler
	if m.dashboard.Feeding() {
		return m.action(func(ctx context.Context) (string, error) {
			return r.StopFeeding(ctx)
		})
	}
	return m.action(func(ctx context.Context) (string, error) {
		return r.StartBreastFeed(ctx, side)
	})
}

func (m *Model) logDiaper(kind model.DiaperType) tea.Cmd {
	c := m.client
	return m.action(func(ctx context.Context) (string, error) {
		d, err := c.CreateDiaper(ctx, client.DiaperRequest{
			DiaperType: kind,
			ChangedAt:  timeutil.NowISO(),
		})
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s diaper logged", d.DiaperType.Label()), nil
	})
}

func (m *Model) handleBottleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.enteringBottle = false
		m.bottleInput.Blur()
		return m, nil
	case "enter":
		raw := strings.TrimSpace(m.bottleInput.Value())
		if raw == "" {
			raw = m.bottleInput.Placeholder
		}
		ml, err := strconv.Atoi(raw)
		if err != nil {
			return m, m.toast.Show("bottle amount must be a number", true)
		}
		m.enteringBottle = false
		m.bottleInput.Blur()
		r := m.reconciler
		return m, m.action(func(ctx context.Context) (string, error) {
			return r.LogBottle(ctx, ml)
		})
	}
	var cmd tea.Cmd
	m.bottleInput, cmd = m.bottleInput.Update(msg)
	return m, cmd
}

func (m *Model) handleHistoryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "left", "h":
		if m.history.ShiftDay(-1) {
			return m, m.loadHistory()
		}
	case "right", "l":
		if m.history.ShiftDay(1) {
			return m, m.loadHistory()
		}
	case "up", "k":
		m.history.MoveCursor(-1)
	case "down", "j":
		m.history.MoveCursor(1)
	case "f":
		m.history.CycleFilter()
		return m, m.loadHistory()
	case "x":
		if m.pending {
			return m, nil
		}
		return m, m.deleteHistoryItem()
	}
	return m, nil
}

// deleteHistoryItem removes the selected timeline entry through the client
// call matching its category.
func (m *Model) deleteHistoryItem() tea.Cmd {
	sel := m.history.Selected()
	if sel == nil || !sel.Editable {
		return nil
	}
	item := *sel
	c := m.client
	return m.action(func(ctx context.Context) (string, error) {
		var err error
		switch item.Category {
		case timeline.CategorySleep:
			err = c.DeleteSleep(ctx, item.ID)
		case timeline.CategoryFeeding:
			err = c.DeleteFeeding(ctx, item.ID)
		case timeline.CategoryDiaper:
			err = c.DeleteDiaper(ctx, item.ID)
		default:
			err = fmt.Errorf("cannot delete %s entry", item.Category)
		}
		if err != nil {
			return "", err
		}
		return item.Title + " entry deleted", nil
	})
}

func (m *Model) handleAnalyticsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "p" {
		m.analytics.TogglePeriod()
		return m, m.loadAnalytics()
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(m.tabs())
	b.WriteString("\n\n")

	switch m.view {
	case viewDashboard:
		b.WriteString(m.dashboard.View())
	case viewHistory:
		b.WriteString(m.history.View())
	case viewAnalytics:
		b.WriteString(m.analytics.View())
	}

	if m.enteringBottle {
		b.WriteString("\n")
		b.WriteString(m.bottleInput.View())
		b.WriteString("\n")
	}

	if m.toast.Visible() {
		b.WriteString("\n")
		b.WriteString(m.toast.View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.footer())
	return b.String()
}

func (m *Model) tabs() string {
	parts := make([]string, 0, len(viewLabels))
	for i, label := range viewLabels {
		style := m.theme.Header.Tab
		if view(i) == m.view {
			style = m.theme.Header.ActiveTab
		}
		parts = append(parts, style.Render(fmt.Sprintf("%d %s", i+1, label)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m *Model) footer() string {
	help := m.theme.Footer.Help
	key := m.theme.Footer.Key

	var hints []string
	switch m.view {
	case viewDashboard:
		hints = []string{
			key.Render("s") + help.Render(" sleep"),
			key.Render("l/r") + help.Render(" feed"),
			key.Render("b") + help.Render(" bottle"),
			key.Render("w/d/m") + help.Render(" diaper"),
			key.Render("x") + help.Render(" cancel"),
		}
	case viewHistory:
		hints = []string{
			key.Render("←/→") + help.Render(" day"),
			key.Render("↑/↓") + help.Render(" select"),
			key.Render("f") + help.Render(" filter"),
			key.Render("x") + help.Render(" delete"),
		}
	case viewAnalytics:
		hints = []string{
			key.Render("p") + help.Render(" period"),
		}
	}
	hints = append(hints,
		key.Render("1-3/tab")+help.Render(" view"),
		key.Render("q")+help.Render(" quit"),
	)
	return strings.Join(hints, help.Render("  ·  "))
}
