package timeutil

import (
	"fmt"
	"time"
)

// FormatTime renders an RFC3339 instant as HH:MM wall-clock in the fixed zone.
func FormatTime(iso string) string {
	t, err := time.Parse(time.RFC3339, iso)
	if err != nil {
		return iso
	}
	return t.In(Zone).Format("15:04")
}

// FormatDate renders an RFC3339 instant as a short date ("Jun 2").
func FormatDate(iso string) string {
	t, err := time.Parse(time.RFC3339, iso)
	if err != nil {
		return iso
	}
	return t.In(Zone).Format("Jan 2")
}

// FormatDateFull renders a YYYY-MM-DD date as "Monday, June 2".
func FormatDateFull(day string) string {
	t, err := ParseDay(day)
	if err != nil {
		return day
	}
	return t.Format("Monday, January 2")
}

// TimeAgo renders a relative label bucketed at 60s / 3600s / 86400s.
func TimeAgo(iso string) string {
	t, err := time.Parse(time.RFC3339, iso)
	if err != nil {
		return iso
	}
	diff := int(Now().Sub(t).Seconds())
	switch {
	case diff < 60:
		return "just now"
	case diff < 3600:
		return fmt.Sprintf("%dm ago", diff/60)
	case diff < 86400:
		return fmt.Sprintf("%dh ago", diff/3600)
	default:
		return fmt.Sprintf("%dd ago", diff/86400)
	}
}

// FormatDuration renders a minute count as "45m", "2h", or "2h 5m".
func FormatDuration(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}
	h, m := minutes/60, minutes%60
	if m > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	return fmt.Sprintf("%dh", h)
}

// ElapsedSeconds returns whole seconds since the given RFC3339 start instant.
func ElapsedSeconds(startISO string) int {
	t, err := time.Parse(time.RFC3339, startISO)
	if err != nil {
		return 0
	}
	return int(Now().Sub(t).Seconds())
}

// FormatElapsed renders seconds as mm:ss, or h:mm:ss once at least an hour
// has passed. Minutes and seconds are always two digits.
func FormatElapsed(seconds int) string {
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}

// daysPerMonth is the mean Gregorian month length used for age bucketing.
const daysPerMonth = 30.44

// Age renders a birth date (YYYY-MM-DD) as a human age string: days under a
// week, weeks under eight weeks, months under two years, then years.
func Age(dob string) string {
	birth, err := time.ParseInLocation(layoutDay, dob, Zone)
	if err != nil {
		return ""
	}
	days := int(Now().Sub(birth).Hours() / 24)
	if days < 0 {
		days = 0
	}
	if days < 7 {
		return fmt.Sprintf("%d %s old", days, plural(days, "day"))
	}
	weeks := days / 7
	if weeks < 8 {
		return fmt.Sprintf("%d %s old", weeks, plural(weeks, "week"))
	}
	months := int(float64(days) / daysPerMonth)
	if months < 24 {
		return fmt.Sprintf("%d %s old", months, plural(months, "month"))
	}
	years := months / 12
	return fmt.Sprintf("%d %s old", years, plural(years, "year"))
}

func plural(n int, unit string) string {
	if n == 1 {
		return unit
	}
	return unit + "s"
}
