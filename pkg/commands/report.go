package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/moodlog/pkg/commands/options"
	"tableflip.dev/moodlog/pkg/printers"
	"tableflip.dev/moodlog/pkg/report"
	"tableflip.dev/moodlog/pkg/timeutil"
)

func addReport(topLevel *cobra.Command) {
	ro := &options.ReportOptions{}

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Show the weekly report",
		Long: `Report shows the AI-generated weekly summary of your journal along with your
own ratings and the model's re-evaluated scores per day.

The report is generated at most once per week; in between, the cached one is
served. Use --regenerate to force a fresh one.`,
		Example: `
moodlog report
moodlog report --regenerate
moodlog report --window 3d
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true

			svc, err := buildService()
			if err != nil {
				return err
			}

			if ro.Window != "" {
				ttl, _, err := timeutil.ParseWindow(ro.Window)
				if err != nil {
					return err
				}
				svc.Generator.Cache.TTL = ttl
			}

			ctx := context.Background()
			var res report.Result
			if ro.Regenerate {
				res, err = svc.Regenerate(ctx)
			} else {
				res, err = svc.Weekly(ctx)
			}
			if err != nil {
				return err
			}

			pp := printers.PrettyPrint{}
			pp.Report(res)
			return nil
		},
	}

	options.AddReportArgs(cmd, ro)
	topLevel.AddCommand(cmd)
}
