// Package dateparse parses the date expressions accepted by search and
// schedule flags.
package dateparse

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var durationTokenRE = regexp.MustCompile(`^(\d+)(mo|w|d|h|m)$`)

// Parse parses s using the current local time as the reference for
// relative expressions.
func Parse(s string) (time.Time, error) {
	return ParseAt(s, time.Now())
}

// ParseAt parses RFC3339, YYYY-MM-DD, or relative expressions such as
// "yesterday", "7d" (meaning seven days in the future), or "2h ago".
func ParseAt(s string, now time.Time) (time.Time, error) {
	raw := strings.TrimSpace(s)
	if raw == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}

	switch strings.ToLower(raw) {
	case "now":
		return now, nil
	case "today":
		return startOfDay(now), nil
	case "yesterday":
		return startOfDay(now.AddDate(0, 0, -1)), nil
	case "tomorrow":
		return startOfDay(now.AddDate(0, 0, 1)), nil
	}

	if t, ok, err := parseRelative(strings.ToLower(raw), now); ok {
		return t, err
	}

	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, nil
	}

	return time.Time{}, fmt.Errorf("invalid date %q", raw)
}

func startOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

func parseRelative(input string, now time.Time) (time.Time, bool, error) {
	if strings.HasSuffix(input, "ago") {
		value := strings.TrimSpace(strings.TrimSuffix(input, "ago"))
		d, ok := parseDurationValue(value)
		if !ok || d <= 0 {
			return time.Time{}, true, fmt.Errorf("invalid relative time %q", input)
		}
		return now.Add(-d), true, nil
	}

	d, ok := parseDurationValue(input)
	if !ok || d <= 0 {
		return time.Time{}, false, nil
	}
	return now.Add(d), true, nil
}

func parseDurationValue(input string) (time.Duration, bool) {
	if d, err := time.ParseDuration(input); err == nil {
		return d, true
	}

	matches := durationTokenRE.FindStringSubmatch(input)
	if len(matches) != 3 {
		return 0, false
	}

	value, err := strconv.Atoi(matches[1])
	if err != nil {
		return 0, false
	}

	switch matches[2] {
	case "mo":
		return time.Duration(value) * 30 * 24 * time.Hour, true
	case "w":
		return time.Duration(value) * 7 * 24 * time.Hour, true
	case "d":
		return time.Duration(value) * 24 * time.Hour, true
	case "h":
		return time.Duration(value) * time.Hour, true
	case "m":
		return time.Duration(value) * time.Minute, true
	default:
		return 0, false
	}
}
