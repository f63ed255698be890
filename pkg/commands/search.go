package commands

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/daybook/pkg/commands/options"
	"tableflip.dev/daybook/pkg/runner/find"
)

func addSearch(topLevel *cobra.Command) {
	so := &options.SearchOptions{}
	io := &options.IDOptions{}
	var query string

	cmd := &cobra.Command{
		Use:     "search [words]",
		Aliases: []string{"find"},
		Short:   "Search entries by words",
		Long: `Search entry content for words. Results are ordered newest first
unless --by-rank asks for relevance ordering.`,
		Example: `
daybook search coffee
daybook search coffee --mood=happy --from=2024-01-01
daybook search cof --suggest
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires something to search for")
			}
			query = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadService()
			if err != nil {
				return err
			}
			s := find.Find{
				ShowID:    io.ShowID,
				Query:     query,
				Mood:      so.Mood,
				StartDate: so.From,
				EndDate:   so.To,
				ByRank:    so.ByRank,
				Ascending: so.Ascending,
				Suggest:   so.Suggest,
				Service:   svc,
			}
			err = s.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	options.AddSearchArgs(cmd, so)
	flagName := "mood"
	_ = cmd.RegisterFlagCompletionFunc(flagName, func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return moodCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
	})

	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
