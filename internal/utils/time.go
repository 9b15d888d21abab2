package utils

import (
	"fmt"
	"strings"
	"time"
)

var isoLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// ParseISOTime parses an ISO-8601 timestamp. Values without an offset are read as UTC.
func ParseISOTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty timestamp")
	}
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}

// MinutesUntil returns whole minutes from now until t, truncated and clamped at zero.
func MinutesUntil(t, now time.Time) int {
	d := t.Sub(now)
	if d <= 0 {
		return 0
	}
	return int(d / time.Minute)
}

// FormatDateTime formats time as "YYYY-MM-DD HH:MM" in UTC.
func FormatDateTime(t time.Time) string {
	return t.UTC().Format("2006-01-02 15:04")
}
