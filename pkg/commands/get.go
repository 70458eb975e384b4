package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/moodlog/pkg/commands/options"
	"tableflip.dev/moodlog/pkg/printers"
)

func addGet(topLevel *cobra.Command) {
	do := &options.DayOptions{}

	cmd := &cobra.Command{
		Use:   "get [date]",
		Short: "Show a day's journal",
		Example: `
moodlog get
moodlog get 2024-05-01
moodlog get --dates
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			svc, err := buildService()
			if err != nil {
				return err
			}

			ctx := context.Background()
			pp := printers.PrettyPrint{ShowTimestamps: do.Timestamps}

			if do.Dates {
				dates, err := svc.Dates(ctx)
				if err != nil {
					return err
				}
				pp.Dates(dates)
				return nil
			}

			date := ""
			if len(args) == 1 {
				date = args[0]
			}
			d, err := svc.Day(ctx, date)
			if err != nil {
				return err
			}
			pp.Day(d)
			return nil
		},
	}

	options.AddDayArgs(cmd, do)
	topLevel.AddCommand(cmd)
}
