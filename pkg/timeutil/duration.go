package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const (
	// DefaultPeriod is the fallback analytics window used when none is provided.
	DefaultPeriod = "7d"

	// MaxPeriodDays bounds how far back an analytics query may reach.
	MaxPeriodDays = 365
)

var (
	periodPattern = regexp.MustCompile(`^\s*(\d+)\s*([a-z]*)`)
	periodUnits   = map[string]int{
		"":      1,
		"d":     1,
		"day":   1,
		"days":  1,
		"w":     7,
		"wk":    7,
		"wks":   7,
		"week":  7,
		"weeks": 7,
	}
)

// ParsePeriod parses a human-friendly day window (for example "7d", "2w", or
// a bare "30") and returns the day count along with a canonical, compact
// representation. When the input is empty the default window of a week is used.
func ParsePeriod(input string) (int, string, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		trimmed = DefaultPeriod
	}

	lower := strings.ToLower(trimmed)
	remaining := lower
	total := 0
	for len(remaining) > 0 {
		matches := periodPattern.FindStringSubmatch(remaining)
		if len(matches) != 3 || matches[0] == "" {
			return 0, "", fmt.Errorf("invalid period segment %q", strings.TrimSpace(remaining))
		}
		valueStr := matches[1]
		unitStr := matches[2]

		value, err := strconv.Atoi(valueStr)
		if err != nil {
			return 0, "", fmt.Errorf("invalid period value %q: %w", valueStr, err)
		}
		days, ok := periodUnits[unitStr]
		if !ok {
			return 0, "", fmt.Errorf("unsupported period unit %q", unitStr)
		}
		total += value * days

		remaining = remaining[len(matches[0]):]
	}

	if total <= 0 {
		return 0, "", fmt.Errorf("period must be greater than zero")
	}
	if total > MaxPeriodDays {
		return 0, "", fmt.Errorf("period must not exceed %d days", MaxPeriodDays)
	}

	return total, FormatPeriod(total), nil
}

// FormatPeriod renders a day count using week/day tokens.
func FormatPeriod(days int) string {
	if days <= 0 {
		return "0d"
	}

	var parts []string
	if w := days / 7; w > 0 {
		parts = append(parts, fmt.Sprintf("%dw", w))
	}
	if d := days % 7; d > 0 {
		parts = append(parts, fmt.Sprintf("%dd", d))
	}
	return strings.Join(parts, "")
}
