package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/daybook/pkg/app"
	"tableflip.dev/daybook/pkg/commands/options"
	"tableflip.dev/daybook/pkg/store"
)

var (
	output = &options.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "daybook",
		Short: base.Wrap80("A daily diary with a calendar, moods, and search on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addWrite(topLevel)
	addShow(topLevel)
	addSearch(topLevel)
	addCal(topLevel)
	addDelete(topLevel)
	addExport(topLevel)
	addImport(topLevel)
	addMoods(topLevel)
	addUI(topLevel)
	addMCP(topLevel)
	addVersion(topLevel)
}

// loadService builds the application service from the discovered config.
func loadService() (*app.Service, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}
	p, err := store.Load(cfg)
	if err != nil {
		return nil, err
	}
	return &app.Service{Persistence: p, WeekStart: cfg.WeekStart()}, nil
}
