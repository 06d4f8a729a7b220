package timeutil

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	DateLayout     = "2006-01-02"
	DateTimeLayout = "2006-01-02 15:04:05"
	TimeLayout     = "15:04:05"
)

var absoluteLayouts = []string{time.RFC3339, DateTimeLayout, DateLayout}

// ParseDuration accepts Go durations plus whole days (d), weeks (w) and
// years of 365 days (y).
func ParseDuration(s string) (time.Duration, error) {
	if s == "" {
		return 0, errors.New("empty duration string")
	}

	if dur, err := time.ParseDuration(s); err == nil {
		return dur, nil
	}

	s = strings.TrimSpace(s)
	if len(s) < 2 {
		return 0, fmt.Errorf("invalid duration format: %s", s)
	}

	numStr := s[:len(s)-1]
	unit := s[len(s)-1:]

	num, err := strconv.ParseInt(numStr, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid duration number: %s", numStr)
	}

	day := 24 * time.Hour
	switch unit {
	case "d":
		return time.Duration(num) * day, nil
	case "w":
		return time.Duration(num) * 7 * day, nil
	case "y":
		return time.Duration(num) * 365 * day, nil
	default:
		return 0, fmt.Errorf("unknown duration unit: %s", unit)
	}
}

// ParseRelativeTime resolves s against now. Accepted forms are "now",
// "today", an absolute RFC3339, "YYYY-MM-DD HH:MM:SS" or "YYYY-MM-DD" time
// (the last two in UTC), or a signed offset such as "-30d" or "+2w".
func ParseRelativeTime(s string, now time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, errors.New("empty time string")
	}

	switch strings.ToLower(s) {
	case "now":
		return now, nil
	case "today":
		y, m, d := now.Date()
		return time.Date(y, m, d, 0, 0, 0, 0, now.Location()), nil
	}

	for _, layout := range absoluteLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}

	if !strings.HasPrefix(s, "-") && !strings.HasPrefix(s, "+") {
		return time.Time{}, fmt.Errorf("relative time must start with + or -: %s", s)
	}

	isNegative := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	s = strings.TrimPrefix(s, "+")

	dur, err := ParseDuration(s)
	if err != nil {
		return time.Time{}, err
	}

	if isNegative {
		return now.Add(-dur), nil
	}
	return now.Add(dur), nil
}

// ParseRange resolves a start/end pair, defaulting empty bounds, and fails
// when end is before start.
func ParseRange(start, end, defStart, defEnd string, now time.Time) (time.Time, time.Time, error) {
	if start == "" {
		start = defStart
	}
	if end == "" {
		end = defEnd
	}
	from, err := ParseRelativeTime(start, now)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("start_date: %w", err)
	}
	to, err := ParseRelativeTime(end, now)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("end_date: %w", err)
	}
	if to.Before(from) {
		return time.Time{}, time.Time{}, fmt.Errorf("end_date %s is before start_date %s", to.Format(time.RFC3339), from.Format(time.RFC3339))
	}
	return from, to, nil
}
