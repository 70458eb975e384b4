package timeutil

import (
	"testing"
	"time"
)

func TestDayKeyRoundTrip(t *testing.T) {
	then := time.Date(2024, time.May, 1, 15, 4, 5, 0, time.Local)
	key := DayKey(then)
	if key != "2024-05-01" {
		t.Fatalf("expected 2024-05-01, got %s", key)
	}

	parsed, err := ParseDay(key)
	if err != nil {
		t.Fatalf("parse day: %v", err)
	}
	if parsed.Year() != 2024 || parsed.Month() != time.May || parsed.Day() != 1 {
		t.Fatalf("unexpected parsed date: %v", parsed)
	}
}

func TestParseDayRejectsGarbage(t *testing.T) {
	if _, err := ParseDay("yesterday"); err == nil {
		t.Fatalf("expected error for non-canonical key")
	}
}

func TestLastNSortsAndTrims(t *testing.T) {
	keys := []string{"2024-05-03", "2024-04-29", "2024-05-01", "2024-05-02"}

	got := LastN(keys, 2)
	if len(got) != 2 {
		t.Fatalf("expected 2 keys, got %d", len(got))
	}
	if got[0] != "2024-05-02" || got[1] != "2024-05-03" {
		t.Fatalf("unexpected selection: %v", got)
	}

	// Shorter history than requested comes back whole, still sorted.
	all := LastN(keys, 10)
	if len(all) != 4 {
		t.Fatalf("expected 4 keys, got %d", len(all))
	}
	if all[0] != "2024-04-29" {
		t.Fatalf("expected ascending order, got %v", all)
	}
}
