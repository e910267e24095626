package timeutil

import (
	"fmt"
	"time"
)

// Zone is the fixed +07:00 offset every persisted timestamp uses. "Today" is
// defined by this offset, not the host timezone, so the notion of the current
// day is stable across devices. Leap seconds and host clock skew are not
// accounted for.
var Zone = time.FixedZone("Asia/Ho_Chi_Minh", 7*60*60)

const (
	layoutDay   = "2006-01-02"
	layoutInput = "2006-01-02T15:04"
)

// nowFn is swapped in tests.
var nowFn = time.Now

// Now returns the current instant in the fixed zone.
func Now() time.Time {
	return nowFn().In(Zone)
}

// NowISO returns the current instant as RFC3339 with the +07:00 offset.
func NowISO() string {
	return Now().Format(time.RFC3339)
}

// Today returns the current date (YYYY-MM-DD) in the fixed zone.
func Today() string {
	return Now().Format(layoutDay)
}

// ParseDay validates a YYYY-MM-DD date string.
func ParseDay(s string) (time.Time, error) {
	t, err := time.ParseInLocation(layoutDay, s, Zone)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD)", s)
	}
	return t, nil
}

// AddDays shifts a YYYY-MM-DD date by delta days.
func AddDays(day string, delta int) (string, error) {
	t, err := ParseDay(day)
	if err != nil {
		return "", err
	}
	return t.AddDate(0, 0, delta).Format(layoutDay), nil
}

// ClampToToday caps a date at today; history navigation never advances past
// the current day.
func ClampToToday(day string) string {
	if today := Today(); day > today {
		return today
	}
	return day
}

// IsToday reports whether the date equals the current day in the fixed zone.
func IsToday(day string) bool {
	return day == Today()
}

// NowInput returns the current time formatted as a datetime-local input value
// (YYYY-MM-DDTHH:MM) in the fixed zone.
func NowInput() string {
	return Now().Format(layoutInput)
}

// LocalInputToISO converts a datetime-local value (YYYY-MM-DDTHH:MM, seconds
// optional) to RFC3339 with the +07:00 offset. The conversion is lossless to
// the minute.
func LocalInputToISO(value string) (string, error) {
	if t, err := time.ParseInLocation(layoutInput, value, Zone); err == nil {
		return t.Format(time.RFC3339), nil
	}
	t, err := time.ParseInLocation("2006-01-02T15:04:05", value, Zone)
	if err != nil {
		return "", fmt.Errorf("invalid time %q (want YYYY-MM-DDTHH:MM)", value)
	}
	return t.Format(time.RFC3339), nil
}

// ISOToLocalInput renders an RFC3339 instant as a datetime-local value in the
// fixed zone, dropping seconds.
func ISOToLocalInput(iso string) (string, error) {
	t, err := time.Parse(time.RFC3339, iso)
	if err != nil {
		return "", fmt.Errorf("invalid timestamp %q: %w", iso, err)
	}
	return t.In(Zone).Format(layoutInput), nil
}
