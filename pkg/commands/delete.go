package commands

import (
	"errors"
	"fmt"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"tableflip.dev/daybook/pkg/commands/options"
	"tableflip.dev/daybook/pkg/runner/remove"
	"tableflip.dev/daybook/pkg/timeutil"
)

func addDelete(topLevel *cobra.Command) {
	do := &options.DateOptions{}
	yes := false

	cmd := &cobra.Command{
		Use:     "delete [date]",
		Aliases: []string{"rm"},
		Short:   "Delete the entry for a day",
		Example: `
daybook delete
daybook delete 2024-03-15 --yes
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

			if !yes {
				prompt := promptui.Prompt{
					Label:     fmt.Sprintf("Delete the entry for %s", timeutil.DisplayDate(date)),
					IsConfirm: true,
				}
				if _, err := prompt.Run(); err != nil {
					// Declined.
					return nil
				}
			}

			s := remove.Remove{
				Date:    date,
				Service: svc,
			}
			err = s.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false,
		"Skip the confirmation prompt.")
	options.AddDateArgs(cmd, do)
	options.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
