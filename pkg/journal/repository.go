package journal

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"tableflip.dev/moodlog/pkg/store"
)

// ErrIndexOutOfRange is returned by EditResponse when the response index is
// outside the current list. The index comes from the caller's own prior read,
// so this is a contract violation rather than an absorbable storage failure.
var ErrIndexOutOfRange = errors.New("journal: response index out of range")

func responsesKey(day string) string { return "responses_" + day }
func ratingKey(day string) string    { return "rating_" + day }

// Repository reads and writes the journal record for a single day.
// Responses and rating live under separate keys and are written
// independently; there is no transaction tying them together.
type Repository struct {
	KV    store.KV
	Index *Index
	Now   func() time.Time
}

func (r *Repository) now() time.Time {
	if r.Now != nil {
		return r.Now()
	}
	return time.Now()
}

// Day loads the record for a day key. Missing or unreadable data degrades to
// an empty response list and an unset rating; Day never fails.
func (r *Repository) Day(ctx context.Context, day string) Day {
	d := Day{Date: day, Rating: RatingUnset}

	if raw, ok, err := r.KV.Get(responsesKey(day)); err != nil {
		fmt.Fprintf(os.Stderr, "journal: read %s: %v\n", responsesKey(day), err)
	} else if ok {
		if err := json.Unmarshal([]byte(raw), &d.Responses); err != nil {
			fmt.Fprintf(os.Stderr, "journal: corrupt %s, treating as empty: %v\n", responsesKey(day), err)
			d.Responses = nil
		}
	}

	if raw, ok, err := r.KV.Get(ratingKey(day)); err != nil {
		fmt.Fprintf(os.Stderr, "journal: read %s: %v\n", ratingKey(day), err)
	} else if ok {
		if n, err := strconv.Atoi(raw); err == nil {
			d.Rating = n
		}
	}

	return d
}

// PutResponses replaces the full response list for a day and registers the
// day in the index.
func (r *Repository) PutResponses(ctx context.Context, day string, responses []Response) error {
	data, err := json.Marshal(responses)
	if err != nil {
		return err
	}
	if err := r.KV.Set(responsesKey(day), string(data)); err != nil {
		return err
	}
	return r.Index.Add(ctx, day)
}

// PutRating sets the mood rating for a day. It does not touch the response
// list; the two fields are independent partial writes.
func (r *Repository) PutRating(ctx context.Context, day string, rating int) error {
	if err := r.KV.Set(ratingKey(day), strconv.Itoa(rating)); err != nil {
		return err
	}
	return r.Index.Add(ctx, day)
}

// AppendResponse reads the current list for a day, appends entry, and writes
// the list back. Two concurrent appends to the same day can race and one
// write can be lost; the store offers no compare-and-swap to prevent it.
func (r *Repository) AppendResponse(ctx context.Context, day string, entry Response) (Day, error) {
	d := r.Day(ctx, day)
	if entry.Timestamp == "" {
		entry.Timestamp = Stamp(r.now())
	}
	d.Responses = append(d.Responses, entry)
	if err := r.PutResponses(ctx, day, d.Responses); err != nil {
		return d, err
	}
	return d, nil
}

// EditResponse replaces the answer at index, marking the entry edited.
func (r *Repository) EditResponse(ctx context.Context, day string, index int, newAnswer string) (Day, error) {
	d := r.Day(ctx, day)
	if index < 0 || index >= len(d.Responses) {
		return d, ErrIndexOutOfRange
	}
	d.Responses[index].Answer = newAnswer
	d.Responses[index].Edited = true
	d.Responses[index].EditedAt = Stamp(r.now())
	if err := r.PutResponses(ctx, day, d.Responses); err != nil {
		return d, err
	}
	return d, nil
}
