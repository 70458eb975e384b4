package journal

import "time"

// Questions is the fixed set of daily prompts. A response is recorded at most
// once per question per day.
var Questions = []string{
	"What is on your mind?",
	"How are you feeling today?",
	"What is your biggest challenge right now?",
	"What are you grateful for?",
}

// RatingUnset marks a day whose mood was never rated. Valid ratings are 1-10.
const RatingUnset = 0

// Response is one answered prompt.
type Response struct {
	Question  string `json:"question"`
	Answer    string `json:"answer"`
	Timestamp string `json:"timestamp"`
	Edited    bool   `json:"edited,omitempty"`
	EditedAt  string `json:"editedAt,omitempty"`
}

// Day is the full journal record for one day key: the answered prompts in the
// order they were given, plus the mood rating.
type Day struct {
	Date      string
	Responses []Response
	Rating    int
}

// Rated reports whether the user set a mood rating for the day.
func (d Day) Rated() bool {
	return d.Rating != RatingUnset
}

// NextQuestion returns a prompt that has not been answered on this day,
// or false when every prompt is already answered.
func (d Day) NextQuestion() (string, bool) {
	answered := make(map[string]bool, len(d.Responses))
	for _, r := range d.Responses {
		answered[r.Question] = true
	}
	for _, q := range Questions {
		if !answered[q] {
			return q, true
		}
	}
	return "", false
}

// Stamp renders t the way responses persist their timestamps.
func Stamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
