package journal

import (
	"context"
	"math/rand"
	"time"

	"tableflip.dev/moodlog/pkg/timeutil"
)

// fixturePool is the pool of plausible prompt/answer pairs the backfiller
// draws from. Pairs are drawn without replacement within one run.
var fixturePool = []Response{
	{Question: "What is on your mind?", Answer: "I've been thinking a lot about my goals and how to stay consistent with my efforts. It's always a balance between ambition and discipline."},
	{Question: "How are you feeling today?", Answer: "I'm feeling quite motivated today! I have a few things lined up, and I'm excited to tackle them one by one."},
	{Question: "What is your biggest challenge right now?", Answer: "Time management is my biggest challenge at the moment. There's so much I want to do, and finding the right balance is tricky."},
	{Question: "What are you grateful for?", Answer: "I'm grateful for the opportunities I have to learn and grow every day. Also, for the support of friends and family who keep me going."},
	{Question: "What is one thing you want to improve about yourself?", Answer: "I want to become more consistent in my daily habits, especially when it comes to productivity and self-care."},
	{Question: "What excites you the most right now?", Answer: "Right now, I'm excited about the projects I'm working on. Building something meaningful always gives me a sense of purpose."},
	{Question: "What is something you've recently learned?", Answer: "I recently learned more about the accelerometer sensor in Android apps and how it can be used to detect motion patterns."},
	{Question: "What is one habit you'd like to develop?", Answer: "I'd like to develop a habit of reading consistently every day, even if it's just for 20 minutes."},
	{Question: "What's one thing you've accomplished recently that you're proud of?", Answer: "I successfully implemented a feature in an app that detects sudden jerks using motion sensors, and it felt great to see it working!"},
	{Question: "What inspires you to keep going?", Answer: "Knowing that every small step I take is bringing me closer to my goals keeps me motivated."},
	{Question: "How do you handle stress?", Answer: "I usually take a short break, listen to music, or do a quick workout session to clear my mind."},
	{Question: "What's something you're looking forward to?", Answer: "I'm looking forward to visiting the main campus of JU and meeting new people from different departments."},
	{Question: "If you could achieve one thing this year, what would it be?", Answer: "I'd love to build a successful project that solves a real-world problem and gain recognition for it."},
	{Question: "What's a personal rule you always follow?", Answer: "I try to always give my best effort in whatever I do, whether it's academics, coding, or fitness."},
	{Question: "How do you usually start your day?", Answer: "I start my day with a quick workout, followed by planning my tasks for the day."},
	{Question: "What do you do when you feel unmotivated?", Answer: "I remind myself why I started and look at the progress I've already made. Sometimes, watching an inspiring video helps too."},
	{Question: "What's something you value the most?", Answer: "I value discipline and consistency. Talent is great, but without consistency, it doesn't go far."},
	{Question: "If you had unlimited time and resources, what would you do?", Answer: "I'd work on building innovative tech solutions, travel the world, and support educational initiatives."},
	{Question: "What's a lesson you've learned from failure?", Answer: "Failure has taught me that persistence is key. Every setback is just a setup for a bigger comeback."},
	{Question: "What is one thing that always makes you happy?", Answer: "Working on a passion project and seeing it come to life always makes me happy."},
}

const (
	fixtureEntriesPerDay = 3
	fixtureStartHour     = 17 // first synthetic entry lands at 17:00 local
	fixtureStepMinutes   = 12
)

// Backfiller synthesizes journal history for demos and tests. It only ever
// fills days the index does not know about; real data is never touched.
type Backfiller struct {
	Index *Index
	Repo  *Repository
	Rand  *rand.Rand
	Now   func() time.Time
}

func (b *Backfiller) now() time.Time {
	if b.Now != nil {
		return b.Now()
	}
	return time.Now()
}

// Backfill fills the daysBack most recent days strictly before today,
// skipping any day already in the index. Each filled day gets up to three
// distinct prompt/answer pairs drawn without replacement from the fixture
// pool; when the pool runs dry the remaining days get fewer entries. Returns
// the day keys that were filled.
func (b *Backfiller) Backfill(ctx context.Context, daysBack int) ([]string, error) {
	pool := make([]Response, len(fixturePool))
	copy(pool, fixturePool)

	today := b.now()
	var filled []string

	for i := 1; i <= daysBack; i++ {
		date := today.AddDate(0, 0, -i)
		day := timeutil.DayKey(date)

		if b.Index.Has(ctx, day) {
			continue
		}

		responses := make([]Response, 0, fixtureEntriesPerDay)
		stamp := time.Date(date.Year(), date.Month(), date.Day(), fixtureStartHour, 0, 0, 0, date.Location())
		for len(responses) < fixtureEntriesPerDay && len(pool) > 0 {
			idx := b.Rand.Intn(len(pool))
			r := pool[idx]
			pool = append(pool[:idx], pool[idx+1:]...)

			r.Timestamp = Stamp(stamp)
			stamp = stamp.Add(fixtureStepMinutes * time.Minute)
			responses = append(responses, r)
		}

		if err := b.Repo.PutResponses(ctx, day, responses); err != nil {
			return filled, err
		}
		if err := b.Repo.PutRating(ctx, day, b.rating()); err != nil {
			return filled, err
		}
		filled = append(filled, day)
	}

	return filled, nil
}

// rating draws from the skewed demo distribution: 80% of days land in 6-10,
// 15% in 3-5, and 5% in 1-2.
func (b *Backfiller) rating() int {
	switch f := b.Rand.Float64(); {
	case f < 0.80:
		return 6 + b.Rand.Intn(5)
	case f < 0.95:
		return 3 + b.Rand.Intn(3)
	default:
		return 1 + b.Rand.Intn(2)
	}
}
