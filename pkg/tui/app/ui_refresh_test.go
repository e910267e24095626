package app

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea/v2"

	"github.com/minhquang4334/baby-tracker/pkg/model"
	"github.com/minhquang4334/baby-tracker/pkg/timeline"
)

func TestStaleDashboardLoadDropped(t *testing.T) {
	m := newTestModel()
	_ = m.Init()
	stale := m.loadGen

	// A newer load supersedes the one in flight.
	_ = m.loadDashboard()

	_, _ = m.Update(dashboardLoadedMsg{
		gen:     stale,
		child:   &model.Child{Name: "Stale", DateOfBirth: "2025-01-01"},
		summary: &model.DaySummary{},
	})

	view := stripANSI(m.View())
	if strings.Contains(view, "Stale") {
		t.Fatalf("stale load applied:\n%s", view)
	}
	if !strings.Contains(view, "Loading…") {
		t.Fatalf("expected dashboard still loading:\n%s", view)
	}
}

func TestStaleHistoryLoadDropped(t *testing.T) {
	m := newTestModel()
	m.view = viewHistory
	_ = m.loadHistory()
	gen := m.loadGen

	m.history.ShiftDay(-1)

	_, _ = m.Update(historyLoadedMsg{gen: gen, day: "2020-01-01", filter: m.history.Filter()})
	view := stripANSI(m.View())
	if !strings.Contains(view, "Loading…") {
		t.Fatalf("history load for an old day should be ignored:\n%s", view)
	}
}

func TestHistoryDeleteSelectedItem(t *testing.T) {
	m := newTestModel()
	m.view = viewHistory
	_ = m.loadHistory()

	_, _ = m.Update(historyLoadedMsg{
		gen:    m.loadGen,
		day:    m.history.Day(),
		filter: m.history.Filter(),
		items: []timeline.Item{
			{Category: timeline.CategorySleep, Title: "Sleep", Detail: "08:00 → 09:00", Anchor: "2025-06-01T08:00:00+07:00", ID: "sl1", Editable: true},
			{Category: timeline.CategoryDiaper, Title: "Diaper", Detail: "Wet 💧", Anchor: "2025-06-01T07:00:00+07:00", ID: "dp1", Editable: true},
		},
	})

	next, _ := m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	m = next.(*Model)
	if sel := m.history.Selected(); sel == nil || sel.ID != "dp1" {
		t.Fatalf("expected the second row selected, got %+v", sel)
	}

	next, cmd := m.Update(tea.KeyPressMsg{Text: "x", Code: 'x'})
	m = next.(*Model)
	if cmd == nil {
		t.Fatal("expected a delete command for the selected entry")
	}
	if !m.pending {
		t.Fatal("delete should mark a mutation in flight")
	}
}

func TestHistoryDeleteEmptyDayIsNoop(t *testing.T) {
	m := newTestModel()
	m.view = viewHistory
	_ = m.loadHistory()
	_, _ = m.Update(historyLoadedMsg{gen: m.loadGen, day: m.history.Day(), filter: m.history.Filter()})

	next, cmd := m.Update(tea.KeyPressMsg{Text: "x", Code: 'x'})
	m = next.(*Model)
	if cmd != nil {
		t.Fatal("delete on an empty day should do nothing")
	}
	if m.pending {
		t.Fatal("no mutation should be in flight")
	}
}

func TestActionReloadsCurrentView(t *testing.T) {
	m := newTestModel()
	m.view = viewHistory
	_ = m.loadHistory()
	gen := m.loadGen

	m.pending = true
	_, _ = m.Update(actionDoneMsg{notice: "Sleep entry deleted"})
	if m.loadGen <= gen {
		t.Fatal("expected a history reload with a fresh generation")
	}
}

func TestActionDoneShowsToastAndReloads(t *testing.T) {
	m := newTestModel()
	_ = m.Init()
	before := m.loadGen

	m.pending = true
	_, cmd := m.Update(actionDoneMsg{notice: "Sleep started"})

	if m.pending {
		t.Fatal("pending should clear once the action lands")
	}
	if m.loadGen <= before {
		t.Fatal("expected a dashboard reload with a fresh generation")
	}
	if cmd == nil {
		t.Fatal("expected reload + toast commands")
	}
	if !strings.Contains(m.toast.View(), "Sleep started") {
		t.Fatalf("toast missing notice: %q", m.toast.View())
	}
}

func TestActionErrorSurfacesToast(t *testing.T) {
	m := newTestModel()
	_ = m.Init()

	_, _ = m.Update(actionDoneMsg{err: errors.New("server unreachable")})
	if !strings.Contains(stripANSI(m.toast.View()), "server unreachable") {
		t.Fatalf("toast missing error: %q", m.toast.View())
	}
}

func TestActionHelperReportsResult(t *testing.T) {
	m := newTestModel()

	cmd := m.action(func(ctx context.Context) (string, error) {
		return "done", nil
	})
	if !m.pending {
		t.Fatal("action should mark a mutation in flight")
	}
	raw := cmd()
	msg, ok := raw.(actionDoneMsg)
	if !ok {
		t.Fatalf("expected actionDoneMsg, got %T", raw)
	}
	if msg.notice != "done" || msg.err != nil {
		t.Fatalf("unexpected result: %+v", msg)
	}
}
