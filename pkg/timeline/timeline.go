// Package timeline merges the per-day sleep, feeding, and diaper collections
// into one reverse-chronological feed of displayable items.
package timeline

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/minhquang4334/baby-tracker/pkg/model"
	"github.com/minhquang4334/baby-tracker/pkg/timeutil"
)

// Category tags a timeline item with its source collection.
type Category string

const (
	CategorySleep   Category = "sleep"
	CategoryFeeding Category = "feeding"
	CategoryDiaper  Category = "diaper"
)

// Icon returns the category glyph used across the CLI and TUI.
func (c Category) Icon() string {
	switch c {
	case CategorySleep:
		return "😴"
	case CategoryFeeding:
		return "🍼"
	case CategoryDiaper:
		return "🚼"
	}
	return "•"
}

// Filter restricts which collections are fetched and merged. Switching
// filters re-fetches rather than re-filtering cached data.
type Filter string

const (
	FilterAll     Filter = "all"
	FilterSleep   Filter = Filter(CategorySleep)
	FilterFeeding Filter = Filter(CategoryFeeding)
	FilterDiaper  Filter = Filter(CategoryDiaper)
)

// ParseFilter validates CLI/TUI filter input.
func ParseFilter(s string) (Filter, error) {
	switch Filter(s) {
	case FilterAll, FilterSleep, FilterFeeding, FilterDiaper:
		return Filter(s), nil
	}
	return "", fmt.Errorf("filter must be one of all, sleep, feeding, diaper (got %q)", s)
}

func (f Filter) includes(c Category) bool {
	return f == FilterAll || Filter(c) == f
}

// Item is one displayable timeline entry. Anchor is the instant it sorts by:
// start_time for sleep and feeding, changed_at for diaper.
type Item struct {
	Category Category
	Title    string
	Detail   string
	Anchor   string
	ID       string
	Editable bool
}

// Time returns the item's wall-clock label (HH:MM in the fixed zone).
func (it Item) Time() string {
	return timeutil.FormatTime(it.Anchor)
}

// Ago returns the item's relative time label.
func (it Item) Ago() string {
	return timeutil.TimeAgo(it.Anchor)
}

// SleepItem renders a sleep log. Completed entries show start, end, and the
// server-computed duration; in-progress entries show the start and a marker.
func SleepItem(s *model.SleepLog) Item {
	detail := timeutil.FormatTime(s.StartTime) + " — in progress"
	if s.EndTime != nil {
		detail = fmt.Sprintf("%s → %s", timeutil.FormatTime(s.StartTime), timeutil.FormatTime(*s.EndTime))
		if s.DurationMinutes != nil {
			detail += " · " + timeutil.FormatDuration(*s.DurationMinutes)
		}
	}
	return Item{
		Category: CategorySleep,
		Title:    "Sleep",
		Detail:   detail,
		Anchor:   s.StartTime,
		ID:       s.ID,
		Editable: true,
	}
}

// FeedingItem renders a feeding log. Bottles show the quantity and never a
// duration; breast feeds show side plus duration, or an in-progress marker.
func FeedingItem(f *model.FeedingLog) Item {
	var detail string
	switch {
	case f.QuantityML != nil:
		detail = fmt.Sprintf("%s · %dml", f.FeedType.Label(), *f.QuantityML)
	case f.EndTime == nil:
		detail = f.FeedType.Label() + " — in progress"
	case f.DurationMinutes != nil:
		detail = fmt.Sprintf("%s · %s", f.FeedType.Label(), timeutil.FormatDuration(*f.DurationMinutes))
	default:
		detail = f.FeedType.Label()
	}
	return Item{
		Category: CategoryFeeding,
		Title:    "Feeding",
		Detail:   detail,
		Anchor:   f.StartTime,
		ID:       f.ID,
		Editable: true,
	}
}

// DiaperItem renders a diaper change: type label only.
func DiaperItem(d *model.DiaperLog) Item {
	return Item{
		Category: CategoryDiaper,
		Title:    "Diaper",
		Detail:   d.DiaperType.Label(),
		Anchor:   d.ChangedAt,
		ID:       d.ID,
		Editable: true,
	}
}

// Merge combines the per-category collections into one list sorted descending
// by anchor. The sort is stable: ties between same-category items preserve
// input order. Timestamps share the fixed +07:00 offset, so lexicographic
// comparison matches chronological order.
func Merge(sleep []*model.SleepLog, feeding []*model.FeedingLog, diaper []*model.DiaperLog) []Item {
	items := make([]Item, 0, len(sleep)+len(feeding)+len(diaper))
	for _, s := range sleep {
		items = append(items, SleepItem(s))
	}
	for _, f := range feeding {
		items = append(items, FeedingItem(f))
	}
	for _, d := range diaper {
		items = append(items, DiaperItem(d))
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Anchor > items[j].Anchor
	})
	return items
}

// Recent caps a merged list to its newest n items and strips the edit/delete
// affordances; the dashboard feed is glanceable only.
func Recent(items []Item, n int) []Item {
	if len(items) > n {
		items = items[:n]
	}
	out := make([]Item, len(items))
	for i, it := range items {
		it.Editable = false
		out[i] = it
	}
	return out
}

// API is the slice of the backend client the loader needs.
type API interface {
	ListSleep(ctx context.Context, date string) ([]*model.SleepLog, error)
	ListFeeding(ctx context.Context, date string) ([]*model.FeedingLog, error)
	ListDiaper(ctx context.Context, date string) ([]*model.DiaperLog, error)
}

// Load fetches the collections selected by the filter for one calendar day,
// concurrently, and merges them once all have resolved. A single failed fetch
// fails the whole load; a partially-merged result is never returned.
func Load(ctx context.Context, api API, day string, filter Filter) ([]Item, error) {
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		loadErr error

		sleep   []*model.SleepLog
		feeding []*model.FeedingLog
		diaper  []*model.DiaperLog
	)

	fail := func(err error) {
		mu.Lock()
		if loadErr == nil {
			loadErr = err
		}
		mu.Unlock()
	}

	if filter.includes(CategorySleep) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			logs, err := api.ListSleep(ctx, day)
			if err != nil {
				fail(fmt.Errorf("load sleep: %w", err))
				return
			}
			sleep = logs
		}()
	}
	if filter.includes(CategoryFeeding) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			logs, err := api.ListFeeding(ctx, day)
			if err != nil {
				fail(fmt.Errorf("load feeding: %w", err))
				return
			}
			feeding = logs
		}()
	}
	if filter.includes(CategoryDiaper) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			logs, err := api.ListDiaper(ctx, day)
			if err != nil {
				fail(fmt.Errorf("load diaper: %w", err))
				return
			}
			diaper = logs
		}()
	}

	wg.Wait()
	if loadErr != nil {
		return nil, loadErr
	}
	return Merge(sleep, feeding, diaper), nil
}
