package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func addRate(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "rate <1-10>",
		Short: "Rate today's mood",
		Example: `
moodlog rate 7
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			rating, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("rating must be a number, got %q", args[0])
			}

			svc, err := buildService()
			if err != nil {
				return err
			}
			if err := svc.Rate(context.Background(), rating); err != nil {
				return err
			}

			fmt.Printf("Mood for today set to %d/10.\n", rating)
			return nil
		},
	}

	topLevel.AddCommand(cmd)
}
