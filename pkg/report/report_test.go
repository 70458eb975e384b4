package report

import (
	"context"
	"testing"
	"time"

	"tableflip.dev/moodlog/pkg/store"
)

var testNow = time.Date(2024, time.May, 8, 12, 0, 0, 0, time.UTC)

func newTestCache() (*Cache, *store.Memory) {
	kv := store.NewMemory()
	return &Cache{KV: kv, Now: func() time.Time { return testNow }}, kv
}

func TestCacheLoadAbsent(t *testing.T) {
	c, _ := newTestCache()
	if _, ok := c.Load(context.Background()); ok {
		t.Fatalf("expected empty cache slot")
	}
}

func TestCacheLoadCorruptIsMiss(t *testing.T) {
	c, kv := newTestCache()
	if err := kv.Set("cachedReport", "not json at all"); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if _, ok := c.Load(context.Background()); ok {
		t.Fatalf("expected corrupt slot to read as a miss")
	}
}

func TestCacheToleratesUnknownFields(t *testing.T) {
	c, kv := newTestCache()
	blob := `{"report":"a week","scores":[{"date":"2024-05-01","value":7}],"userRatings":[],"timestamp":"2024-05-07T12:00:00Z","extra":"ignored"}`
	if err := kv.Set("cachedReport", blob); err != nil {
		t.Fatalf("seed: %v", err)
	}

	r, ok := c.Load(context.Background())
	if !ok {
		t.Fatalf("expected cached report despite unknown fields")
	}
	if r.Report != "a week" || len(r.Scores) != 1 {
		t.Fatalf("unexpected report: %+v", r)
	}
}

func TestCacheStoreLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestCache()

	in := &CachedReport{
		Report:      "steady week",
		Scores:      []ScorePoint{{Date: "2024-05-06", Value: 6}, {Date: "2024-05-07", Value: 8}},
		UserRatings: []RatingPoint{{Date: "2024-05-06", Value: 7, Label: "May 06"}},
		Timestamp:   "2024-05-07T12:00:00Z",
	}
	if err := c.Store(ctx, in); err != nil {
		t.Fatalf("store: %v", err)
	}

	out, ok := c.Load(ctx)
	if !ok {
		t.Fatalf("expected cached report")
	}
	if out.Report != in.Report || len(out.Scores) != 2 || len(out.UserRatings) != 1 {
		t.Fatalf("round trip mismatch: %+v", out)
	}
}

func TestCacheExpiry(t *testing.T) {
	c, _ := newTestCache()

	eightDays := &CachedReport{Timestamp: testNow.Add(-8 * 24 * time.Hour).Format(time.RFC3339)}
	if !c.Expired(eightDays) {
		t.Fatalf("expected 8-day-old report to be expired")
	}

	sixDays := &CachedReport{Timestamp: testNow.Add(-6 * 24 * time.Hour).Format(time.RFC3339)}
	if c.Expired(sixDays) {
		t.Fatalf("expected 6-day-old report to be fresh")
	}

	// A garbled timestamp always reads as expired.
	garbled := &CachedReport{Timestamp: "last tuesday"}
	if !c.Expired(garbled) {
		t.Fatalf("expected malformed timestamp to count as expired")
	}
}

func TestCacheInvalidate(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestCache()

	if err := c.Store(ctx, &CachedReport{Report: "r", Timestamp: testNow.Format(time.RFC3339)}); err != nil {
		t.Fatalf("store: %v", err)
	}
	if err := c.Invalidate(ctx); err != nil {
		t.Fatalf("invalidate: %v", err)
	}
	if _, ok := c.Load(ctx); ok {
		t.Fatalf("expected slot to be empty after invalidate")
	}
}
