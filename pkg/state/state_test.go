package state

import (
	"testing"

	"github.com/minhquang4334/baby-tracker/pkg/model"
)

func TestCellGetSet(t *testing.T) {
	c := NewCell(5)
	if got := c.Get(); got != 5 {
		t.Fatalf("expected 5, got %d", got)
	}
	c.Set(7)
	if got := c.Get(); got != 7 {
		t.Fatalf("expected 7, got %d", got)
	}
}

func TestSubscribersNotifiedInRegistrationOrder(t *testing.T) {
	c := NewCell(0)
	var order []string
	c.Subscribe(func(int) { order = append(order, "first") })
	c.Subscribe(func(int) { order = append(order, "second") })
	c.Subscribe(func(int) { order = append(order, "third") })

	c.Set(1)
	if len(order) != 3 || order[0] != "first" || order[1] != "second" || order[2] != "third" {
		t.Fatalf("unexpected notification order: %v", order)
	}
}

func TestUnsubscribeStopsNotifications(t *testing.T) {
	c := NewCell(0)
	calls := 0
	unsub := c.Subscribe(func(int) { calls++ })
	c.Set(1)
	unsub()
	c.Set(2)
	if calls != 1 {
		t.Fatalf("expected 1 call after unsubscribe, got %d", calls)
	}
	// repeated unsubscribe is a no-op
	unsub()
	c.Set(3)
	if calls != 1 {
		t.Fatalf("expected 1 call, got %d", calls)
	}
}

func TestUnsubscribeMiddlePreservesOthers(t *testing.T) {
	c := NewCell(0)
	var got []int
	c.Subscribe(func(int) { got = append(got, 1) })
	unsub := c.Subscribe(func(int) { got = append(got, 2) })
	c.Subscribe(func(int) { got = append(got, 3) })
	unsub()
	c.Set(1)
	if len(got) != 2 || got[0] != 1 || got[1] != 3 {
		t.Fatalf("unexpected calls: %v", got)
	}
}

func TestNewStoreDefaults(t *testing.T) {
	s := NewStore()
	if s.Child.Get() != nil {
		t.Fatalf("expected nil child before onboarding")
	}
	if s.ActiveSleep.Get() != nil || s.ActiveFeeding.Get() != nil {
		t.Fatalf("expected no active sessions")
	}
	if got := s.LastBottleML.Get(); got != 120 {
		t.Fatalf("expected default bottle quantity 120, got %d", got)
	}
	s.ActiveSleep.Set(&model.SleepLog{ID: "s1"})
	if s.ActiveSleep.Get().ID != "s1" {
		t.Fatalf("sleep cell did not hold value")
	}
}
