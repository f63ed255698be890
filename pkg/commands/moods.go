package commands

import (
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/daybook/pkg/mood"
	"tableflip.dev/daybook/pkg/runner/moods"
)

func addMoods(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "moods",
		Short: "List the selectable moods",
		Example: `
daybook moods
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := moods.Moods{}
			err := s.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}

func moodCompletions(toComplete string) []string {
	prefix := strings.ToLower(toComplete)
	completions := make([]string, 0, 24)
	for _, g := range mood.DefaultGlyphs() {
		for _, a := range g.Aliases {
			if strings.HasPrefix(a, prefix) {
				completions = append(completions, a)
			}
		}
	}
	sort.Strings(completions)
	return completions
}
