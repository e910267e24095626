package app

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/muesli/ansi"

	"github.com/minhquang4334/baby-tracker/pkg/client"
	"github.com/minhquang4334/baby-tracker/pkg/model"
	"github.com/minhquang4334/baby-tracker/pkg/session"
	"github.com/minhquang4334/baby-tracker/pkg/state"
	"github.com/minhquang4334/baby-tracker/pkg/timeline"
)

func newTestModel() *Model {
	c := client.New(&client.Config{ServerURL: "http://127.0.0.1:1", Timeout: time.Second})
	r := &session.Reconciler{API: c, State: state.NewStore()}
	return New(c, r)
}

func intPtr(n int) *int { return &n }

func stripANSI(s string) string {
	var b strings.Builder
	ansiSeq := false
	for _, r := range s {
		if r == ansi.Marker {
			ansiSeq = true
			continue
		}
		if ansiSeq {
			if ansi.IsTerminator(r) {
				ansiSeq = false
			}
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func TestViewRendersDashboardAfterLoad(t *testing.T) {
	m := newTestModel()
	_ = m.Init()

	_, _ = m.Update(dashboardLoadedMsg{
		gen:   m.loadGen,
		child: &model.Child{Name: "Mai", DateOfBirth: "2025-03-14"},
		summary: &model.DaySummary{
			TotalSleepMin:   90,
			SleepCount:      2,
			FeedingCount:    5,
			DiaperCount:     3,
			LastWeightGrams: intPtr(6100),
		},
		recent: []timeline.Item{
			{Category: timeline.CategoryDiaper, Detail: "Wet 💧", Anchor: "2025-06-01T09:00:00+07:00"},
		},
	})

	view := stripANSI(m.View())
	for _, want := range []string{"Dashboard", "History", "Analytics", "Mai", "1h 30m", "Wet 💧"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q:\n%s", want, view)
		}
	}
}

func TestViewSwitchesTabs(t *testing.T) {
	m := newTestModel()
	_ = m.Init()

	next, _ := m.Update(tea.KeyPressMsg{Text: "2", Code: '2'})
	m = next.(*Model)
	if m.view != viewHistory {
		t.Fatalf("expected history view, got %d", m.view)
	}

	next, _ = m.Update(tea.KeyPressMsg{Text: "3", Code: '3'})
	m = next.(*Model)
	if m.view != viewAnalytics {
		t.Fatalf("expected analytics view, got %d", m.view)
	}

	view := stripANSI(m.View())
	if !strings.Contains(view, "Last 7 days") {
		t.Fatalf("analytics view not rendered:\n%s", view)
	}
}

func TestBottleInputFlow(t *testing.T) {
	m := newTestModel()
	_ = m.Init()
	_, _ = m.Update(dashboardLoadedMsg{gen: m.loadGen, summary: &model.DaySummary{}})

	next, cmd := m.Update(tea.KeyPressMsg{Text: "b", Code: 'b'})
	m = next.(*Model)
	if !m.enteringBottle {
		t.Fatal("expected bottle input mode")
	}
	if cmd == nil {
		t.Fatal("expected focus command")
	}
	if m.bottleInput.Placeholder != "120" {
		t.Fatalf("expected default bottle placeholder 120, got %q", m.bottleInput.Placeholder)
	}

	next, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	m = next.(*Model)
	if m.enteringBottle {
		t.Fatal("escape should leave bottle input mode")
	}
}

func TestQuitKey(t *testing.T) {
	m := newTestModel()
	_, cmd := m.Update(tea.KeyPressMsg{Text: "q", Code: 'q'})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
}
