package history

import (
	"strings"
	"testing"

	"github.com/minhquang4334/baby-tracker/pkg/timeline"
	"github.com/minhquang4334/baby-tracker/pkg/timeutil"
	"github.com/minhquang4334/baby-tracker/pkg/tui/theme"
)

func TestShiftDayClampsAtToday(t *testing.T) {
	m := New(theme.Default())

	if m.Day() != timeutil.Today() {
		t.Fatalf("expected initial day to be today, got %s", m.Day())
	}
	if m.ShiftDay(1) {
		t.Fatal("shifting forward from today should be a no-op")
	}
	if !m.ShiftDay(-1) {
		t.Fatal("shifting back from today should change the day")
	}
	if !m.ShiftDay(1) {
		t.Fatal("shifting forward from yesterday should return to today")
	}
	if m.Day() != timeutil.Today() {
		t.Fatalf("expected to be back on today, got %s", m.Day())
	}
}

func TestCycleFilterOrder(t *testing.T) {
	m := New(theme.Default())

	want := []timeline.Filter{
		timeline.FilterSleep,
		timeline.FilterFeeding,
		timeline.FilterDiaper,
		timeline.FilterAll,
	}
	for _, f := range want {
		m.CycleFilter()
		if m.Filter() != f {
			t.Fatalf("expected filter %s, got %s", f, m.Filter())
		}
	}
}

func TestViewEmptyState(t *testing.T) {
	m := New(theme.Default())
	m.SetItems(nil)

	if !strings.Contains(m.View(), "No events logged for this day.") {
		t.Fatalf("missing empty state:\n%s", m.View())
	}
}

func TestCursorClampedToItems(t *testing.T) {
	m := New(theme.Default())
	m.SetItems([]timeline.Item{
		{Category: timeline.CategorySleep, Title: "Sleep", ID: "sl1", Editable: true},
		{Category: timeline.CategoryDiaper, Title: "Diaper", ID: "dp1", Editable: true},
	})

	m.MoveCursor(-1)
	if sel := m.Selected(); sel == nil || sel.ID != "sl1" {
		t.Fatalf("cursor should stay on the first item, got %+v", sel)
	}
	m.MoveCursor(1)
	m.MoveCursor(1)
	if sel := m.Selected(); sel == nil || sel.ID != "dp1" {
		t.Fatalf("cursor should stop on the last item, got %+v", sel)
	}
}

func TestSelectedNilWhenEmpty(t *testing.T) {
	m := New(theme.Default())
	m.SetItems(nil)
	m.MoveCursor(1)
	if m.Selected() != nil {
		t.Fatal("expected no selection on an empty day")
	}
}

func TestSetItemsClampsCursorAfterShrink(t *testing.T) {
	m := New(theme.Default())
	m.SetItems([]timeline.Item{
		{Category: timeline.CategorySleep, ID: "sl1"},
		{Category: timeline.CategoryDiaper, ID: "dp1"},
	})
	m.MoveCursor(1)

	// one item deleted, the list reloads shorter
	m.SetItems([]timeline.Item{{Category: timeline.CategorySleep, ID: "sl1"}})
	if sel := m.Selected(); sel == nil || sel.ID != "sl1" {
		t.Fatalf("cursor should clamp to the remaining item, got %+v", sel)
	}
}

func TestViewMarksSelectedRow(t *testing.T) {
	m := New(theme.Default())
	m.SetItems([]timeline.Item{
		{Category: timeline.CategorySleep, Detail: "08:00 → 09:00", Anchor: "2025-06-01T08:00:00+07:00"},
		{Category: timeline.CategoryDiaper, Detail: "Wet 💧", Anchor: "2025-06-01T07:00:00+07:00"},
	})
	m.MoveCursor(1)

	for _, line := range strings.Split(m.View(), "\n") {
		if strings.Contains(line, "▸") {
			if !strings.Contains(line, "Wet 💧") {
				t.Fatalf("marker on the wrong row: %q", line)
			}
			return
		}
	}
	t.Fatal("no selection marker rendered")
}

func TestViewRendersItems(t *testing.T) {
	m := New(theme.Default())
	m.SetItems([]timeline.Item{
		{
			Category: timeline.CategoryDiaper,
			Title:    "Diaper",
			Detail:   "Wet 💧",
			Anchor:   "2025-06-01T08:00:00+07:00",
		},
	})

	view := m.View()
	if !strings.Contains(view, "Wet 💧") {
		t.Fatalf("missing item detail:\n%s", view)
	}
	if !strings.Contains(view, "08:00") {
		t.Fatalf("missing item time:\n%s", view)
	}
}
