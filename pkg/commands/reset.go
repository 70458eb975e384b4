package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

func addReset(topLevel *cobra.Command) {
	var confirm bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete all journal data",
		Example: `
moodlog reset --confirm
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true

			if !confirm {
				return errors.New("reset deletes every entry, rating, and cached report; pass --confirm to proceed")
			}

			svc, err := buildService()
			if err != nil {
				return err
			}
			removed, err := svc.Reset(context.Background())
			if err != nil {
				return err
			}

			fmt.Printf("Removed %d key(s).\n", removed)
			return nil
		},
	}

	cmd.Flags().BoolVar(&confirm, "confirm", false, "Actually delete everything.")
	topLevel.AddCommand(cmd)
}
