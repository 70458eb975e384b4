package report

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"tableflip.dev/moodlog/pkg/store"
)

// cacheKey is the single slot the latest weekly report lives under.
const cacheKey = "cachedReport"

// DefaultTTL is how long a generated report stays fresh.
const DefaultTTL = 7 * 24 * time.Hour

// ScorePoint is one model-reevaluated score for a day.
type ScorePoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

// RatingPoint is one user-provided mood rating for a day, with the label the
// chart surface displays.
type RatingPoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
	Label string  `json:"label"`
}

// CachedReport is the persisted weekly report: the narrative, the model's
// score series, the user's own ratings, and when it was generated. Both
// series are sorted ascending by date.
type CachedReport struct {
	Report      string        `json:"report"`
	Scores      []ScorePoint  `json:"scores"`
	UserRatings []RatingPoint `json:"userRatings"`
	Timestamp   string        `json:"timestamp"`
}

// GeneratedAt parses the report's generation timestamp. A malformed
// timestamp reads as the zero time, which always counts as expired.
func (r *CachedReport) GeneratedAt() time.Time {
	t, err := time.Parse(time.RFC3339, r.Timestamp)
	if err != nil {
		return time.Time{}
	}
	return t
}

// Cache persists the single weekly-report slot. There is exactly one cached
// report at a time; Store replaces it wholesale.
type Cache struct {
	KV  store.KV
	TTL time.Duration
	Now func() time.Time
}

func (c *Cache) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

func (c *Cache) ttl() time.Duration {
	if c.TTL > 0 {
		return c.TTL
	}
	return DefaultTTL
}

// Load returns the cached report, or false when the slot is empty or does
// not parse. A corrupt slot is a cache miss, never a failure.
func (c *Cache) Load(ctx context.Context) (*CachedReport, bool) {
	raw, ok, err := c.KV.Get(cacheKey)
	if err != nil {
		fmt.Fprintf(os.Stderr, "report: read %s: %v\n", cacheKey, err)
		return nil, false
	}
	if !ok {
		return nil, false
	}

	var r CachedReport
	if err := json.Unmarshal([]byte(raw), &r); err != nil {
		fmt.Fprintf(os.Stderr, "report: corrupt %s, treating as absent: %v\n", cacheKey, err)
		return nil, false
	}
	if r.Report == "" || r.Timestamp == "" {
		return nil, false
	}
	return &r, true
}

// Expired reports whether the cached report is older than the TTL.
func (c *Cache) Expired(r *CachedReport) bool {
	return c.now().Sub(r.GeneratedAt()) > c.ttl()
}

// Store replaces the cached report.
func (c *Cache) Store(ctx context.Context, r *CachedReport) error {
	data, err := json.Marshal(r)
	if err != nil {
		return err
	}
	return c.KV.Set(cacheKey, string(data))
}

// Invalidate empties the slot. Used before a forced regeneration so a
// half-finished run can never serve the report it was asked to replace.
func (c *Cache) Invalidate(ctx context.Context) error {
	return c.KV.Remove(cacheKey)
}
