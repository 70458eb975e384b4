package printers

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/moodlog/pkg/journal"
	"tableflip.dev/moodlog/pkg/report"
)

// PrettyPrint renders journal days and weekly reports for the terminal.
type PrettyPrint struct {
	ShowTimestamps bool
}

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(title)
}

// Day prints one day's responses and rating.
func (pp *PrettyPrint) Day(d journal.Day) {
	pp.Title(d.Date)

	if len(d.Responses) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" no responses\n")
	}

	q := color.New(color.Bold)
	a := color.New()
	e := color.New(color.Faint, color.Italic)
	for i, r := range d.Responses {
		_, _ = q.Printf("%d. %s\n", i, r.Question)
		_, _ = a.Printf("   %s", r.Answer)
		if r.Edited {
			_, _ = e.Print("  (edited)")
		}
		if pp.ShowTimestamps && r.Timestamp != "" {
			_, _ = e.Printf("  %s", r.Timestamp)
		}
		fmt.Println("")
	}

	fmt.Println("")
	if d.Rated() {
		fmt.Printf("Mood: %d/10\n", d.Rating)
	} else {
		f := color.New(color.Faint)
		_, _ = f.Println("Mood: not rated")
	}
	fmt.Println("")
}

// Dates prints the journaled day keys.
func (pp *PrettyPrint) Dates(dates []string) {
	pp.Title("Journaled days")
	if len(dates) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return
	}
	for _, d := range dates {
		fmt.Printf("  %s\n", d)
	}
	fmt.Println("")
}

// Report prints the weekly narrative and the ratings-vs-scores table.
func (pp *PrettyPrint) Report(res report.Result) {
	pp.Title("Weekly Emotional Report")

	if res.Fallback {
		w := color.New(color.FgHiYellow)
		_, _ = w.Println(res.Report)
		fmt.Println("")
		return
	}

	fmt.Println(base.Wrap80(res.Report))
	fmt.Println("")

	if len(res.UserRatings) > 0 || len(res.Scores) > 0 {
		scoreByDate := make(map[string]float64, len(res.Scores))
		for _, s := range res.Scores {
			scoreByDate[s.Date] = s.Value
		}

		tbl := uitable.New()
		tbl.Separator = "  "
		bold := color.New(color.Bold).SprintFunc()
		tbl.AddRow(bold("Day"), bold("You"), bold("Model"))
		for _, r := range res.UserRatings {
			you := "-"
			if r.Value > 0 {
				you = fmt.Sprintf("%.0f", r.Value)
			}
			model := "-"
			if v, ok := scoreByDate[r.Date]; ok {
				model = fmt.Sprintf("%.0f", v)
			}
			tbl.AddRow(r.Label, you, model)
		}
		_, _ = fmt.Fprintln(color.Output, tbl)
		fmt.Println("")
	}

	f := color.New(color.Faint)
	switch res.State {
	case report.StateCached:
		_, _ = f.Printf("cached · generated %s\n", res.GeneratedAt.Local().Format("2006-01-02 15:04"))
	default:
		_, _ = f.Printf("generated %s\n", res.GeneratedAt.Local().Format("2006-01-02 15:04"))
	}
	fmt.Println("")
}
