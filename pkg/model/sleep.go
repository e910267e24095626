package model

// SleepLog mirrors the backend sleep record. A nil EndTime marks an active
// session; DurationMinutes is always computed server-side once stopped.
type SleepLog struct {
	ID              string  `json:"id"`
	ChildID         string  `json:"child_id"`
	StartTime       string  `json:"start_time"`
	EndTime         *string `json:"end_time"`
	DurationMinutes *int    `json:"duration_minutes"`
	Notes           string  `json:"notes,omitempty"`
	CreatedAt       string  `json:"created_at"`
}

// Active reports whether the sleep is an in-progress timer.
func (s *SleepLog) Active() bool {
	return s != nil && s.EndTime == nil
}

// StoppedFeeding is the side channel returned when creating a sleep
// force-stopped an active breast feed.
type StoppedFeeding struct {
	ID              string   `json:"id"`
	FeedType        FeedType `json:"feed_type"`
	DurationMinutes int      `json:"duration_minutes"`
}
