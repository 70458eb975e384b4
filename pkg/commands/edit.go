package commands

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/moodlog/pkg/printers"
)

func addEdit(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "edit <index> <text>",
		Short: "Edit one of today's answers",
		Example: `
moodlog edit 0 actually, it was a rough morning
`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			index, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("index must be a number, got %q", args[0])
			}

			svc, err := buildService()
			if err != nil {
				return err
			}

			d, err := svc.EditAnswer(context.Background(), index, strings.Join(args[1:], " "))
			if err != nil {
				return err
			}

			pp := printers.PrettyPrint{}
			pp.Day(d)
			return nil
		},
	}

	topLevel.AddCommand(cmd)
}
