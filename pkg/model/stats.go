package model

// DayStats is one per-day rollup row from the analytics endpoint. Computed
// server-side; the client never mutates it.
type DayStats struct {
	Date            string `json:"date"`
	SleepMinutes    int    `json:"sleep_minutes"`
	SleepCount      int    `json:"sleep_count"`
	FeedingCount    int    `json:"feeding_count"`
	BreastFeedCount int    `json:"breast_feed_count"`
	BottleFeedCount int    `json:"bottle_feed_count"`
	BottleMLTotal   int    `json:"bottle_ml_total"`
	DiaperCount     int    `json:"diaper_count"`
	WetCount        int    `json:"wet_count"`
	DirtyCount      int    `json:"dirty_count"`
}

// DaySummary is the dashboard aggregate for a single day.
type DaySummary struct {
	Date             string      `json:"date"`
	TotalSleepMin    int         `json:"total_sleep_minutes"`
	SleepCount       int         `json:"sleep_count"`
	FeedingCount     int         `json:"feeding_count"`
	DiaperCount      int         `json:"diaper_count"`
	LastWeightGrams  *int        `json:"last_weight_grams,omitempty"`
	LastSleepEndTime *string     `json:"last_sleep_end_time,omitempty"`
	ActiveSleep      *SleepLog   `json:"active_sleep,omitempty"`
	ActiveFeeding    *FeedingLog `json:"active_feeding,omitempty"`
}
