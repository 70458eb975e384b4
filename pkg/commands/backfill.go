package commands

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/moodlog/pkg/journal"
)

func addBackfill(topLevel *cobra.Command) {
	var days int

	cmd := &cobra.Command{
		Use:   "backfill",
		Short: "Fill recent empty days with demo data",
		Long: `Backfill synthesizes plausible journal entries for recent days that have no
real data, so the weekly report has something to chew on. Days that already
have data are never touched.`,
		Example: `
moodlog backfill
moodlog backfill --days 10
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true

			svc, err := buildService()
			if err != nil {
				return err
			}

			b := &journal.Backfiller{
				Index: svc.Index,
				Repo:  svc.Repo,
				Rand:  rand.New(rand.NewSource(time.Now().UnixNano())),
			}
			filled, err := b.Backfill(context.Background(), days)
			if err != nil {
				return err
			}

			if len(filled) == 0 {
				fmt.Println("Nothing to backfill; every recent day already has data.")
				return nil
			}
			fmt.Printf("Backfilled %d day(s):\n", len(filled))
			for _, day := range filled {
				fmt.Printf("  %s\n", day)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 6, "How many days back to fill.")
	topLevel.AddCommand(cmd)
}
