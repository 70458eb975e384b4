package timeutil

import (
	"sort"
	"time"
)

// DayLayout is the canonical key format for one day of journal data.
// Lexical order of keys equals chronological order.
const DayLayout = "2006-01-02"

// DayKey returns the canonical day key for t in t's location.
func DayKey(t time.Time) string {
	return t.Format(DayLayout)
}

// Today returns the day key for the current local date.
func Today() string {
	return DayKey(time.Now())
}

// ParseDay parses a canonical day key into a local midnight time.
func ParseDay(key string) (time.Time, error) {
	return time.ParseInLocation(DayLayout, key, time.Local)
}

// LastN sorts day keys ascending and returns the most recent n of them.
// When fewer than n keys exist, all of them are returned.
func LastN(keys []string, n int) []string {
	sorted := make([]string, len(keys))
	copy(sorted, keys)
	sort.Strings(sorted)
	if n >= len(sorted) {
		return sorted
	}
	return sorted[len(sorted)-n:]
}
