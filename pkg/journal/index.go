package journal

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"tableflip.dev/moodlog/pkg/store"
)

// indexKey is the well-known key holding the set of journaled day keys.
const indexKey = "dates"

// Index tracks which days have journal data. It is the only view of the
// store that spans partitions; everything else is keyed by a single day.
type Index struct {
	KV store.KV
}

// Dates returns the journaled day keys sorted ascending. An absent or
// unreadable index is treated as empty, never as a failure.
func (i *Index) Dates(ctx context.Context) []string {
	raw, ok, err := i.KV.Get(indexKey)
	if err != nil {
		fmt.Fprintf(os.Stderr, "journal: read %s: %v\n", indexKey, err)
		return nil
	}
	if !ok {
		return nil
	}

	var dates []string
	if err := json.Unmarshal([]byte(raw), &dates); err != nil {
		fmt.Fprintf(os.Stderr, "journal: corrupt %s index, treating as empty: %v\n", indexKey, err)
		return nil
	}

	seen := make(map[string]bool, len(dates))
	out := make([]string, 0, len(dates))
	for _, d := range dates {
		if d == "" || seen[d] {
			continue
		}
		seen[d] = true
		out = append(out, d)
	}
	sort.Strings(out)
	return out
}

// Has reports whether the day key is already in the index.
func (i *Index) Has(ctx context.Context, day string) bool {
	for _, d := range i.Dates(ctx) {
		if d == day {
			return true
		}
	}
	return false
}

// Add registers a day key, persisting the full updated set. Adding a day
// that is already present is a no-op. The read-then-write is not safe for
// concurrent writers; the last write wins.
func (i *Index) Add(ctx context.Context, day string) error {
	dates := i.Dates(ctx)
	for _, d := range dates {
		if d == day {
			return nil
		}
	}
	dates = append(dates, day)
	sort.Strings(dates)

	data, err := json.Marshal(dates)
	if err != nil {
		return err
	}
	return i.KV.Set(indexKey, string(data))
}
