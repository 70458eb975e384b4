package app

import (
	"context"
	"errors"
	"fmt"
	"os"

	"tableflip.dev/moodlog/pkg/journal"
	"tableflip.dev/moodlog/pkg/report"
	"tableflip.dev/moodlog/pkg/store"
	"tableflip.dev/moodlog/pkg/timeutil"
)

// Service provides high-level journal and report operations so CLI verbs can
// share logic. It wraps the index, the per-day repository, and the report
// generator.
type Service struct {
	KV        store.KV
	Index     *journal.Index
	Repo      *journal.Repository
	Generator *report.Generator
}

// ErrAllAnswered is returned when every prompt already has an answer today.
var ErrAllAnswered = errors.New("app: all prompts answered for today")

// ErrRatingRange is returned for ratings outside the 1-10 scale.
var ErrRatingRange = errors.New("app: rating must be between 1 and 10")

// New wires a Service over a KV store.
func New(kv store.KV, model report.Model) *Service {
	idx := &journal.Index{KV: kv}
	repo := &journal.Repository{KV: kv, Index: idx}
	return &Service{
		KV:    kv,
		Index: idx,
		Repo:  repo,
		Generator: &report.Generator{
			Cache: &report.Cache{KV: kv},
			Index: idx,
			Repo:  repo,
			Model: model,
		},
	}
}

// absorb logs a storage write failure and drops it. The store favors
// availability; a failed write must not take the session down.
func absorb(op string, err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "app: %s: %v\n", op, err)
	}
}

// Answer records an answer for today. When question is empty the next
// unanswered prompt is used.
func (s *Service) Answer(ctx context.Context, question, answer string) (journal.Response, error) {
	if s.Repo == nil {
		return journal.Response{}, errors.New("app: no repository configured")
	}

	today := timeutil.Today()
	if question == "" {
		day := s.Repo.Day(ctx, today)
		next, ok := day.NextQuestion()
		if !ok {
			return journal.Response{}, ErrAllAnswered
		}
		question = next
	}

	entry := journal.Response{Question: question, Answer: answer}
	d, err := s.Repo.AppendResponse(ctx, today, entry)
	absorb("append response", err)
	return d.Responses[len(d.Responses)-1], nil
}

// EditAnswer replaces today's answer at index. An out-of-range index is a
// caller error and propagates; storage failures are absorbed.
func (s *Service) EditAnswer(ctx context.Context, index int, answer string) (journal.Day, error) {
	if s.Repo == nil {
		return journal.Day{}, errors.New("app: no repository configured")
	}

	d, err := s.Repo.EditResponse(ctx, timeutil.Today(), index, answer)
	if errors.Is(err, journal.ErrIndexOutOfRange) {
		return d, err
	}
	absorb("edit response", err)
	return d, nil
}

// Rate sets today's mood rating.
func (s *Service) Rate(ctx context.Context, rating int) error {
	if s.Repo == nil {
		return errors.New("app: no repository configured")
	}
	if rating < 1 || rating > 10 {
		return ErrRatingRange
	}
	absorb("put rating", s.Repo.PutRating(ctx, timeutil.Today(), rating))
	return nil
}

// Day loads the record for a day key, defaulting to today.
func (s *Service) Day(ctx context.Context, date string) (journal.Day, error) {
	if s.Repo == nil {
		return journal.Day{}, errors.New("app: no repository configured")
	}
	if date == "" {
		date = timeutil.Today()
	}
	if _, err := timeutil.ParseDay(date); err != nil {
		return journal.Day{}, fmt.Errorf("app: bad date %q: %w", date, err)
	}
	return s.Repo.Day(ctx, date), nil
}

// Dates lists the journaled day keys, ascending.
func (s *Service) Dates(ctx context.Context) ([]string, error) {
	if s.Index == nil {
		return nil, errors.New("app: no index configured")
	}
	return s.Index.Dates(ctx), nil
}

// Weekly returns the weekly report, cached or freshly generated.
func (s *Service) Weekly(ctx context.Context) (report.Result, error) {
	if s.Generator == nil {
		return report.Result{}, errors.New("app: no generator configured")
	}
	return s.Generator.Weekly(ctx), nil
}

// Regenerate drops the cached report and generates a new one.
func (s *Service) Regenerate(ctx context.Context) (report.Result, error) {
	if s.Generator == nil {
		return report.Result{}, errors.New("app: no generator configured")
	}
	return s.Generator.Regenerate(ctx), nil
}

// Reset removes every key in the store: all days, the index, and the cached
// report.
func (s *Service) Reset(ctx context.Context) (int, error) {
	if s.KV == nil {
		return 0, errors.New("app: no store configured")
	}
	keys, err := s.KV.Keys(ctx)
	if err != nil {
		return 0, err
	}
	removed := 0
	for _, key := range keys {
		if err := s.KV.Remove(key); err != nil {
			absorb("remove "+key, err)
			continue
		}
		removed++
	}
	return removed, nil
}
