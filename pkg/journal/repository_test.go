package journal

import (
	"context"
	"errors"
	"testing"
	"time"

	"tableflip.dev/moodlog/pkg/store"
)

func newTestRepo() (*Repository, *store.Memory) {
	kv := store.NewMemory()
	repo := &Repository{
		KV:    kv,
		Index: &Index{KV: kv},
		Now:   func() time.Time { return time.Date(2024, time.May, 2, 9, 30, 0, 0, time.UTC) },
	}
	return repo, kv
}

func TestDayDefaultsWhenEmpty(t *testing.T) {
	repo, _ := newTestRepo()

	d := repo.Day(context.Background(), "2024-05-01")
	if len(d.Responses) != 0 {
		t.Fatalf("expected no responses, got %v", d.Responses)
	}
	if d.Rating != RatingUnset {
		t.Fatalf("expected unset rating, got %d", d.Rating)
	}
	if d.Rated() {
		t.Fatalf("expected day to be unrated")
	}
}

func TestDayCorruptResponsesDegradeToEmpty(t *testing.T) {
	repo, kv := newTestRepo()
	if err := kv.Set("responses_2024-05-01", "[{broken"); err != nil {
		t.Fatalf("seed: %v", err)
	}

	d := repo.Day(context.Background(), "2024-05-01")
	if len(d.Responses) != 0 {
		t.Fatalf("expected corrupt responses to read as empty, got %v", d.Responses)
	}
}

func TestPutResponsesRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepo()

	want := []Response{
		{Question: "What is on your mind?", Answer: "testing", Timestamp: "2024-05-01T17:00:00Z"},
		{Question: "What are you grateful for?", Answer: "coffee", Timestamp: "2024-05-01T17:12:00Z"},
	}
	if err := repo.PutResponses(ctx, "2024-05-01", want); err != nil {
		t.Fatalf("put responses: %v", err)
	}

	d := repo.Day(ctx, "2024-05-01")
	if len(d.Responses) != 2 {
		t.Fatalf("expected 2 responses, got %d", len(d.Responses))
	}
	for i := range want {
		if d.Responses[i] != want[i] {
			t.Fatalf("response %d mismatch: %+v != %+v", i, d.Responses[i], want[i])
		}
	}

	// Writing a day registers it in the index.
	if !repo.Index.Has(ctx, "2024-05-01") {
		t.Fatalf("expected date to be indexed after write")
	}
}

func TestPutRatingIndependentOfResponses(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepo()

	if err := repo.PutRating(ctx, "2024-05-01", 7); err != nil {
		t.Fatalf("put rating: %v", err)
	}

	d := repo.Day(ctx, "2024-05-01")
	if d.Rating != 7 {
		t.Fatalf("expected rating 7, got %d", d.Rating)
	}
	if len(d.Responses) != 0 {
		t.Fatalf("rating write must not touch responses, got %v", d.Responses)
	}
}

func TestAppendResponseStampsAndPersists(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepo()

	if _, err := repo.AppendResponse(ctx, "2024-05-02", Response{Question: "How are you feeling today?", Answer: "fine"}); err != nil {
		t.Fatalf("append: %v", err)
	}
	d, err := repo.AppendResponse(ctx, "2024-05-02", Response{Question: "What is on your mind?", Answer: "tests"})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	if len(d.Responses) != 2 {
		t.Fatalf("expected 2 responses, got %d", len(d.Responses))
	}
	if d.Responses[0].Timestamp != "2024-05-02T09:30:00Z" {
		t.Fatalf("expected append to stamp entry, got %q", d.Responses[0].Timestamp)
	}
}

func TestEditResponse(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepo()

	if _, err := repo.AppendResponse(ctx, "2024-05-02", Response{Question: "How are you feeling today?", Answer: "fine"}); err != nil {
		t.Fatalf("append: %v", err)
	}

	d, err := repo.EditResponse(ctx, "2024-05-02", 0, "actually great")
	if err != nil {
		t.Fatalf("edit: %v", err)
	}
	got := d.Responses[0]
	if got.Answer != "actually great" {
		t.Fatalf("expected edited answer, got %q", got.Answer)
	}
	if !got.Edited || got.EditedAt == "" {
		t.Fatalf("expected edited markers, got %+v", got)
	}

	// The edit must be durable, not just in the returned copy.
	reread := repo.Day(ctx, "2024-05-02")
	if reread.Responses[0].Answer != "actually great" {
		t.Fatalf("edit not persisted: %+v", reread.Responses[0])
	}
}

func TestEditResponseOutOfRange(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepo()

	if _, err := repo.EditResponse(ctx, "2024-05-02", 0, "x"); !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("expected ErrIndexOutOfRange on empty day, got %v", err)
	}

	if _, err := repo.AppendResponse(ctx, "2024-05-02", Response{Question: "q", Answer: "a"}); err != nil {
		t.Fatalf("append: %v", err)
	}
	if _, err := repo.EditResponse(ctx, "2024-05-02", 1, "x"); !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("expected ErrIndexOutOfRange past end, got %v", err)
	}
	if _, err := repo.EditResponse(ctx, "2024-05-02", -1, "x"); !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("expected ErrIndexOutOfRange for negative index, got %v", err)
	}
}

func TestNextQuestion(t *testing.T) {
	d := Day{Date: "2024-05-01"}
	q, ok := d.NextQuestion()
	if !ok || q != Questions[0] {
		t.Fatalf("expected first prompt, got %q ok=%v", q, ok)
	}

	for _, question := range Questions {
		d.Responses = append(d.Responses, Response{Question: question, Answer: "a"})
	}
	if _, ok := d.NextQuestion(); ok {
		t.Fatalf("expected no prompt once all are answered")
	}
}
