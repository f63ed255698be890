package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/daybook/pkg/commands/options"
	"tableflip.dev/daybook/pkg/runner/show"
)

func addShow(topLevel *cobra.Command) {
	do := &options.DateOptions{}
	io := &options.IDOptions{}
	all := false

	cmd := &cobra.Command{
		Use:     "show [date]",
		Aliases: []string{"get", "read"},
		Short:   "Show the entry for a day",
		Example: `
daybook show
daybook show 2024-03-15
daybook show --all
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 1 {
				return errors.New("too many dates, confused")
			}
			if len(args) == 1 {
				do.Date = args[0]
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadService()
			if err != nil {
				return err
			}
			date, err := do.GetDate()
			if err != nil {
				return err
			}
			s := show.Show{
				ShowID:  io.ShowID,
				Date:    date,
				All:     all,
				Service: svc,
			}
			err = s.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	cmd.Flags().BoolVar(&all, "all", false,
		"Show every entry, oldest first.")
	options.AddDateArgs(cmd, do)
	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
