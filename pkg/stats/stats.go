// Package stats rolls per-day analytics rows into range averages and chart
// series. All data is server-computed; this package only aggregates.
package stats

import (
	"fmt"
	"math"

	"github.com/minhquang4334/baby-tracker/pkg/model"
	"github.com/minhquang4334/baby-tracker/pkg/timeutil"
)

// Point is one charted value with its date label.
type Point struct {
	Date  string
	Value float64
}

// StackedPoint is one charted value split into two stacked components.
type StackedPoint struct {
	Date   string
	Bottom float64 // wet
	Top    float64 // dirty
}

// Summary is the aggregate over a requested day range.
type Summary struct {
	Days int

	AvgSleepMinutes int
	AvgFeedings     string // one decimal
	AvgDiapers      string // one decimal
	AvgBottle       string // liters, two decimals, or the em-dash placeholder

	SleepHours []Point // per day, one decimal
	Feedings   []Point
	Diapers    []StackedPoint
	BottleML   []Point
}

// Placeholder is rendered when no bottle volume was logged in the range.
const Placeholder = "—"

// Aggregate computes range averages. Every per-day divisor is the requested
// range length floored at 1; the bottle average divides by the number of days
// that actually had a bottle feed (also floored at 1) and is reported in
// liters.
func Aggregate(rows []model.DayStats, rangeDays int) Summary {
	days := rangeDays
	if days < 1 {
		days = 1
	}

	var totalSleep, totalFeedings, totalDiapers, totalBottleML, bottleDays int
	for _, d := range rows {
		totalSleep += d.SleepMinutes
		totalFeedings += d.FeedingCount
		totalDiapers += d.DiaperCount
		totalBottleML += d.BottleMLTotal
		if d.BottleFeedCount > 0 {
			bottleDays++
		}
	}
	if bottleDays < 1 {
		bottleDays = 1
	}

	s := Summary{
		Days:            days,
		AvgSleepMinutes: int(math.Round(float64(totalSleep) / float64(days))),
		AvgFeedings:     fmt.Sprintf("%.1f", float64(totalFeedings)/float64(days)),
		AvgDiapers:      fmt.Sprintf("%.1f", float64(totalDiapers)/float64(days)),
		AvgBottle:       Placeholder,
	}
	if totalBottleML > 0 {
		s.AvgBottle = fmt.Sprintf("%.2f L", float64(totalBottleML)/float64(bottleDays)/1000)
	}

	for _, d := range rows {
		s.SleepHours = append(s.SleepHours, Point{Date: d.Date, Value: math.Round(float64(d.SleepMinutes)/60*10) / 10})
		s.Feedings = append(s.Feedings, Point{Date: d.Date, Value: float64(d.FeedingCount)})
		s.Diapers = append(s.Diapers, StackedPoint{Date: d.Date, Bottom: float64(d.WetCount), Top: float64(d.DirtyCount)})
		s.BottleML = append(s.BottleML, Point{Date: d.Date, Value: float64(d.BottleMLTotal)})
	}
	return s
}

// RangeFrom returns the from/to dates (inclusive) covering the trailing
// period ending today.
func RangeFrom(today string, period int) (from, to string, err error) {
	if period < 1 {
		return "", "", fmt.Errorf("period must be positive (got %d)", period)
	}
	from, err = timeutil.AddDays(today, -(period - 1))
	if err != nil {
		return "", "", err
	}
	return from, today, nil
}
