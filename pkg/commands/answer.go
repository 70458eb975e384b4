package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/moodlog/pkg/app"
	"tableflip.dev/moodlog/pkg/commands/options"
	"tableflip.dev/moodlog/pkg/journal"
	"tableflip.dev/moodlog/pkg/printers"
)

func addAnswer(topLevel *cobra.Command) {
	qo := &options.QuestionOptions{}

	cmd := &cobra.Command{
		Use:   "answer [text]",
		Short: "Answer today's next prompt",
		Example: `
moodlog answer feeling pretty good about the refactor
moodlog answer --question 3 my family
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			question := ""
			if qo.Question >= 0 {
				if qo.Question >= len(journal.Questions) {
					return fmt.Errorf("no prompt %d, there are %d prompts", qo.Question, len(journal.Questions))
				}
				question = journal.Questions[qo.Question]
			}

			svc, err := buildService()
			if err != nil {
				return err
			}

			ctx := context.Background()
			r, err := svc.Answer(ctx, question, strings.Join(args, " "))
			if errors.Is(err, app.ErrAllAnswered) {
				fmt.Println("Every prompt is answered for today. Use 'moodlog edit' to change an answer.")
				return nil
			}
			if err != nil {
				return err
			}

			fmt.Printf("Answered: %s\n\n", r.Question)
			d, err := svc.Day(ctx, "")
			if err != nil {
				return err
			}
			pp := printers.PrettyPrint{}
			pp.Day(d)
			return nil
		},
	}

	options.AddQuestionArgs(cmd, qo)
	topLevel.AddCommand(cmd)
}
