package model

import (
	"encoding/json"
	"fmt"
)

// DiaperType is the closed set of diaper change kinds.
type DiaperType string

const (
	Wet   DiaperType = "wet"
	Dirty DiaperType = "dirty"
	Mixed DiaperType = "mixed"
)

// Label returns the display name used across the CLI and TUI.
func (t DiaperType) Label() string {
	switch t {
	case Wet:
		return "Wet 💧"
	case Dirty:
		return "Dirty 💩"
	case Mixed:
		return "Mixed 🔄"
	}
	return string(t)
}

// ParseDiaperType maps CLI input onto the closed variant set.
func ParseDiaperType(s string) (DiaperType, error) {
	switch DiaperType(s) {
	case Wet, Dirty, Mixed:
		return DiaperType(s), nil
	}
	return "", fmt.Errorf("unknown diaper type %q, want wet, dirty, or mixed", s)
}

func (t *DiaperType) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	switch DiaperType(s) {
	case Wet, Dirty, Mixed:
		*t = DiaperType(s)
		return nil
	}
	return fmt.Errorf("unknown diaper type %q", s)
}

// DiaperLog mirrors the backend diaper record. A single instant, no duration.
type DiaperLog struct {
	ID         string     `json:"id"`
	ChildID    string     `json:"child_id"`
	DiaperType DiaperType `json:"diaper_type"`
	ChangedAt  string     `json:"changed_at"`
	Notes      string     `json:"notes,omitempty"`
	CreatedAt  string     `json:"created_at"`
}
