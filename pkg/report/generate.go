package report

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"tableflip.dev/moodlog/pkg/journal"
	"tableflip.dev/moodlog/pkg/timeutil"
)

// ErrInvalidReportFormat flags a model response whose narrative or score
// series is missing after normalization and parsing.
var ErrInvalidReportFormat = errors.New("report: invalid report format from model")

// Fallback is surfaced when generation fails. Nothing is cached alongside
// it, so the next request retries.
const Fallback = "Failed to generate report. Data might be insufficient or format is unexpected."

const (
	windowDays = 7
	minScore   = 1
	maxScore   = 10
)

// Model is the external language-model service: one prompt in, one blob of
// text out. The response carries no structural guarantee and must be cleaned
// and parsed defensively.
type Model interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// State tracks where the generator is in its lifecycle.
type State int

const (
	StateIdle State = iota
	StateLoading
	StateCached
	StateGenerating
	StateReady
	StateError
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateCached:
		return "cached"
	case StateGenerating:
		return "generating"
	case StateReady:
		return "ready"
	case StateError:
		return "error"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Result is what the caller gets back: either a served report (cached or
// freshly generated) or the static fallback.
type Result struct {
	State       State
	Report      string
	Scores      []ScorePoint
	UserRatings []RatingPoint
	GeneratedAt time.Time
	Fallback    bool
}

// Generator produces the weekly report. It consults the cache first; the
// model round trip happens at most once per TTL window, or immediately after
// an explicit invalidation.
type Generator struct {
	Cache *Cache
	Index *journal.Index
	Repo  *journal.Repository
	Model Model
	Now   func() time.Time

	state State
}

func (g *Generator) now() time.Time {
	if g.Now != nil {
		return g.Now()
	}
	return time.Now()
}

// State returns the generator's current lifecycle state.
func (g *Generator) State() State {
	return g.state
}

// Weekly returns the weekly report, serving the cached one when it is still
// fresh and generating otherwise.
func (g *Generator) Weekly(ctx context.Context) Result {
	g.state = StateLoading
	if cached, ok := g.Cache.Load(ctx); ok && !g.Cache.Expired(cached) {
		g.state = StateCached
		return Result{
			State:       StateCached,
			Report:      cached.Report,
			Scores:      cached.Scores,
			UserRatings: cached.UserRatings,
			GeneratedAt: cached.GeneratedAt(),
		}
	}
	return g.generate(ctx)
}

// Regenerate drops the cached report and generates a fresh one, bypassing
// the expiry check entirely.
func (g *Generator) Regenerate(ctx context.Context) Result {
	if err := g.Cache.Invalidate(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "report: invalidate cache: %v\n", err)
	}
	return g.generate(ctx)
}

func (g *Generator) generate(ctx context.Context) Result {
	g.state = StateGenerating

	dates := timeutil.LastN(g.Index.Dates(ctx), windowDays)
	days := make([]journal.Day, 0, len(dates))
	for _, date := range dates {
		days = append(days, g.Repo.Day(ctx, date))
	}

	raw, err := g.Model.Generate(ctx, buildPrompt(days))
	if err != nil {
		fmt.Fprintf(os.Stderr, "report: model invocation failed: %v\n", err)
		return g.fail()
	}

	parsed, err := parseResponse(raw)
	if err != nil {
		fmt.Fprintf(os.Stderr, "report: %v\n", err)
		return g.fail()
	}

	now := g.now()
	cached := &CachedReport{
		Report:      parsed.Report,
		Scores:      clampScores(parsed.Scores),
		UserRatings: ratingSeries(days),
		Timestamp:   now.UTC().Format(time.RFC3339),
	}
	sort.Slice(cached.Scores, func(i, j int) bool { return cached.Scores[i].Date < cached.Scores[j].Date })

	if err := g.Cache.Store(ctx, cached); err != nil {
		fmt.Fprintf(os.Stderr, "report: store cache: %v\n", err)
	}

	g.state = StateReady
	return Result{
		State:       StateReady,
		Report:      cached.Report,
		Scores:      cached.Scores,
		UserRatings: cached.UserRatings,
		GeneratedAt: now,
	}
}

// fail surfaces the static fallback. The cache is left untouched so the next
// request retries generation.
func (g *Generator) fail() Result {
	g.state = StateError
	return Result{
		State:    StateError,
		Report:   Fallback,
		Fallback: true,
	}
}

// buildPrompt assembles the single structured request: per day the rating and
// the question/answer pairs, plus the instruction that the response must be
// machine-parseable JSON with exactly a narrative and a score series.
func buildPrompt(days []journal.Day) string {
	var b strings.Builder
	b.WriteString(`Analyze this mental health data, reevaluate the scores provided by user, keeping the responses in mind and respond ONLY with valid JSON containing:
1. "report": "A comprehensive emotional well-being report (200 words)",
2. "scores": [{"date": "yyyy-MM-dd", "value": number}]

Data:
`)
	for _, day := range days {
		fmt.Fprintf(&b, "\n  Date: %s\n  Rating: %d\n  Responses:", day.Date, day.Rating)
		for _, r := range day.Responses {
			fmt.Fprintf(&b, "\n    %s: %s", r.Question, r.Answer)
		}
		b.WriteString("\n")
	}
	b.WriteString("\nJSON Response:")
	return b.String()
}

type modelResponse struct {
	Report string       `json:"report"`
	Scores []ScorePoint `json:"scores"`
}

// normalize strips the code-fence markup and control characters models like
// to wrap JSON in.
func normalize(raw string) string {
	clean := strings.ReplaceAll(raw, "```json", "")
	clean = strings.ReplaceAll(clean, "```", "")
	clean = strings.TrimSpace(clean)
	return strings.Map(func(r rune) rune {
		if r < 0x20 {
			return -1
		}
		return r
	}, clean)
}

// parseResponse cleans and parses the raw model output, validating that both
// required fields are present.
func parseResponse(raw string) (modelResponse, error) {
	var parsed modelResponse
	if err := json.Unmarshal([]byte(normalize(raw)), &parsed); err != nil {
		return parsed, fmt.Errorf("%w: %v", ErrInvalidReportFormat, err)
	}
	if strings.TrimSpace(parsed.Report) == "" || len(parsed.Scores) == 0 {
		return parsed, ErrInvalidReportFormat
	}
	return parsed, nil
}

// clampScores forces every value into the 1-10 display scale. Out-of-range
// model output is clamped, not rejected.
func clampScores(scores []ScorePoint) []ScorePoint {
	out := make([]ScorePoint, len(scores))
	for i, s := range scores {
		s.Value = clamp(s.Value)
		out[i] = s
	}
	return out
}

func clamp(v float64) float64 {
	if v < minScore {
		return minScore
	}
	if v > maxScore {
		return maxScore
	}
	return v
}

// ratingSeries builds the user's own rating series for the same days,
// sorted ascending and labeled for display.
func ratingSeries(days []journal.Day) []RatingPoint {
	out := make([]RatingPoint, 0, len(days))
	for _, day := range days {
		label := day.Date
		if t, err := timeutil.ParseDay(day.Date); err == nil {
			label = t.Format("Jan 02")
		}
		// Ratings come from our own 1-10 slider; an unrated day stays 0.
		out = append(out, RatingPoint{
			Date:  day.Date,
			Value: float64(day.Rating),
			Label: label,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}
