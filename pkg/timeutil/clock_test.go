package timeutil

import (
	"testing"
	"time"
)

func fixNow(t *testing.T, instant time.Time) {
	t.Helper()
	prev := nowFn
	nowFn = func() time.Time { return instant }
	t.Cleanup(func() { nowFn = prev })
}

func TestTodayUsesFixedOffset(t *testing.T) {
	// 18:30 UTC on June 1 is already June 2 at +07:00.
	fixNow(t, time.Date(2025, time.June, 1, 18, 30, 0, 0, time.UTC))
	if got := Today(); got != "2025-06-02" {
		t.Fatalf("expected 2025-06-02, got %s", got)
	}
}

func TestLocalInputRoundTrip(t *testing.T) {
	cases := []string{
		"2025-06-01T23:30:00+07:00",
		"2025-01-01T00:00:00+07:00",
		"2025-12-31T23:59:00+07:00",
	}
	for _, iso := range cases {
		input, err := ISOToLocalInput(iso)
		if err != nil {
			t.Fatalf("ISOToLocalInput(%s): %v", iso, err)
		}
		back, err := LocalInputToISO(input)
		if err != nil {
			t.Fatalf("LocalInputToISO(%s): %v", input, err)
		}
		want, _ := time.Parse(time.RFC3339, iso)
		got, _ := time.Parse(time.RFC3339, back)
		if !got.Equal(want.Truncate(time.Minute)) {
			t.Fatalf("round trip %s -> %s -> %s lost the instant", iso, input, back)
		}
	}
}

func TestLocalInputToISOAcceptsSeconds(t *testing.T) {
	got, err := LocalInputToISO("2025-06-01T23:30:45")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "2025-06-01T23:30:45+07:00" {
		t.Fatalf("unexpected result: %s", got)
	}
}

func TestLocalInputToISOInvalid(t *testing.T) {
	if _, err := LocalInputToISO("noon tomorrow"); err == nil {
		t.Fatalf("expected error for invalid input")
	}
}

func TestAddDays(t *testing.T) {
	got, err := AddDays("2025-06-01", -1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "2025-05-31" {
		t.Fatalf("expected 2025-05-31, got %s", got)
	}
}

func TestClampToToday(t *testing.T) {
	fixNow(t, time.Date(2025, time.June, 2, 12, 0, 0, 0, Zone))
	if got := ClampToToday("2025-06-05"); got != "2025-06-02" {
		t.Fatalf("expected clamp to today, got %s", got)
	}
	if got := ClampToToday("2025-05-30"); got != "2025-05-30" {
		t.Fatalf("past dates should pass through, got %s", got)
	}
}
