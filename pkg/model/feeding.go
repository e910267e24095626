package model

import (
	"encoding/json"
	"fmt"
)

// FeedType is the closed set of feeding kinds the backend accepts.
type FeedType string

const (
	BreastLeft  FeedType = "breast_left"
	BreastRight FeedType = "breast_right"
	Bottle      FeedType = "bottle"
)

// Breast reports whether the feed is a timed breast session (as opposed to a
// bottle, which is logged already complete).
func (t FeedType) Breast() bool {
	return t == BreastLeft || t == BreastRight
}

// Label returns the display name used across the CLI and TUI.
func (t FeedType) Label() string {
	switch t {
	case BreastLeft:
		return "◀ Left breast"
	case BreastRight:
		return "▶ Right breast"
	case Bottle:
		return "🍼 Bottle"
	}
	return string(t)
}

// Side returns the short side name for breast feeds ("Left"/"Right").
func (t FeedType) Side() string {
	switch t {
	case BreastLeft:
		return "Left"
	case BreastRight:
		return "Right"
	}
	return ""
}

func (t *FeedType) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	switch FeedType(s) {
	case BreastLeft, BreastRight, Bottle:
		*t = FeedType(s)
		return nil
	}
	return fmt.Errorf("unknown feed type %q", s)
}

// FeedingLog mirrors the backend feeding record. Breast feeds follow the
// active/completed lifecycle (EndTime nil while in progress); bottle feeds are
// created already complete with a quantity and no duration.
type FeedingLog struct {
	ID              string   `json:"id"`
	ChildID         string   `json:"child_id"`
	FeedType        FeedType `json:"feed_type"`
	StartTime       string   `json:"start_time"`
	EndTime         *string  `json:"end_time"`
	DurationMinutes *int     `json:"duration_minutes"`
	QuantityML      *int     `json:"quantity_ml,omitempty"`
	Notes           string   `json:"notes,omitempty"`
	CreatedAt       string   `json:"created_at"`
}

// Active reports whether the feed is an in-progress timer.
func (f *FeedingLog) Active() bool {
	return f != nil && f.EndTime == nil && f.FeedType.Breast()
}

// StoppedSleep is the side channel returned when creating a feeding
// force-stopped an active sleep session.
type StoppedSleep struct {
	ID              string `json:"id"`
	DurationMinutes int    `json:"duration_minutes"`
}
