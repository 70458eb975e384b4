// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"
)

// QuestionOptions selects which prompt an answer targets.
type QuestionOptions struct {
	Question int
}

// AddQuestionArgs wires the prompt selection flag on the provided command.
func AddQuestionArgs(cmd *cobra.Command, o *QuestionOptions) {
	cmd.Flags().IntVarP(&o.Question, "question", "q", -1,
		"Answer a specific prompt by number instead of the next unanswered one.")
}

// DayOptions captures day selection flags for commands.
type DayOptions struct {
	Dates      bool
	Timestamps bool
}

// AddDayArgs wires day-related flags on the provided command.
func AddDayArgs(cmd *cobra.Command, o *DayOptions) {
	cmd.Flags().BoolVar(&o.Dates, "dates", false,
		"List journaled days instead of showing one day.")
	cmd.Flags().BoolVar(&o.Timestamps, "timestamps", false,
		"Show response timestamps.")
}

// ReportOptions captures weekly-report flags.
type ReportOptions struct {
	Regenerate bool
	Window     string
}

// AddReportArgs wires report flags on the provided command.
func AddReportArgs(cmd *cobra.Command, o *ReportOptions) {
	cmd.Flags().BoolVar(&o.Regenerate, "regenerate", false,
		"Discard the cached report and generate a fresh one.")
	cmd.Flags().StringVar(&o.Window, "window", "",
		"Freshness window for the cached report (for example 1w, 3d).")
}
