package timeutil

import (
	"testing"
)

func TestParsePeriodDefault(t *testing.T) {
	days, label, err := ParsePeriod("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if days != 7 {
		t.Fatalf("expected 7 days, got %d", days)
	}
	if label != "1w" {
		t.Fatalf("expected label 1w, got %s", label)
	}
}

func TestParsePeriodComposite(t *testing.T) {
	days, label, err := ParsePeriod("2w3d")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if days != 17 {
		t.Fatalf("expected 17 days, got %d", days)
	}
	if label != "2w3d" {
		t.Fatalf("unexpected label: %s", label)
	}
}

func TestParsePeriodBareNumber(t *testing.T) {
	days, _, err := ParsePeriod("30")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if days != 30 {
		t.Fatalf("expected 30 days, got %d", days)
	}
}

func TestParsePeriodInvalid(t *testing.T) {
	if _, _, err := ParsePeriod("noop"); err == nil {
		t.Fatal("expected error for invalid period")
	}
	if _, _, err := ParsePeriod("0d"); err == nil {
		t.Fatal("expected error for zero period")
	}
	if _, _, err := ParsePeriod("400d"); err == nil {
		t.Fatal("expected error for out-of-range period")
	}
}
