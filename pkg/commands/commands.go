package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/moodlog/pkg/app"
	"tableflip.dev/moodlog/pkg/gemini"
	"tableflip.dev/moodlog/pkg/store"
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "moodlog",
		Short: base.Wrap80("Daily journaling prompts, mood ratings, and a weekly AI report on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addAnswer(topLevel)
	addEdit(topLevel)
	addRate(topLevel)
	addGet(topLevel)
	addReport(topLevel)
	addBackfill(topLevel)
	addReset(topLevel)
	addVersion(topLevel)
}

// buildService loads config and wires the store, the model client, and the
// service every verb runs against.
func buildService() (*app.Service, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}
	kv, err := store.Load(cfg)
	if err != nil {
		return nil, err
	}

	client := gemini.New(cfg.APIKey())
	client.Model = cfg.ModelName()

	return app.New(kv, client), nil
}
