package types

import (
	"strings"
	"time"
)

// TimeOfDay selects a road's traffic multiplier. Values other than Peak and
// Normal are allowed through and fall back to a neutral multiplier.
type TimeOfDay string

const (
	Peak   TimeOfDay = "peak"
	Normal TimeOfDay = "normal"
)

// NormalizeTimeOfDay lowercases and trims a caller-supplied value; empty
// becomes Normal.
func NormalizeTimeOfDay(v string) TimeOfDay {
	v = strings.ToLower(strings.TrimSpace(v))
	if v == "" {
		return Normal
	}
	return TimeOfDay(v)
}

// peakWindows are the [start, end) clock hours treated as rush hour.
var peakWindows = [][2]int{{7, 9}, {17, 19}}

// timestampLayouts are tried in order; the clock hour is read in whatever
// offset the timestamp was written in.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseTimestamp parses an ISO-8601 timestamp. ok is false when no layout
// matches.
func ParseTimestamp(v string) (t time.Time, ok bool) {
	v = strings.TrimSpace(v)
	if v == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		if parsed, err := time.Parse(layout, v); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}

// IsPeakHour reports whether hour falls in a rush-hour window.
func IsPeakHour(hour int) bool {
	for _, w := range peakWindows {
		if hour >= w[0] && hour < w[1] {
			return true
		}
	}
	return false
}

// ResolveTimeOfDay applies the timestamp override to an explicit value: a
// parseable timestamp inside a rush-hour window yields Peak, anything else
// keeps explicit. overridden reports whether the timestamp decided.
func ResolveTimeOfDay(explicit TimeOfDay, timestamp string) (tod TimeOfDay, overridden bool) {
	t, ok := ParseTimestamp(timestamp)
	if !ok {
		return explicit, false
	}
	if IsPeakHour(t.Hour()) {
		return Peak, true
	}
	return explicit, false
}
