package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/daybook/pkg/commands/options"
	"tableflip.dev/daybook/pkg/mood"
	"tableflip.dev/daybook/pkg/runner/write"
)

func addWrite(topLevel *cobra.Command) {
	do := &options.DateOptions{}
	mo := &options.MoodOptions{}
	io := &options.IDOptions{}
	var content string

	long := strings.Builder{}
	long.WriteString("Write or replace the entry for a day. Each day holds one entry.\n\n")
	long.WriteString("Mood and aliases:\n")

	for _, g := range mood.DefaultGlyphs() {
		long.WriteString(fmt.Sprintf("%s: %s\n", g.Symbol, strings.Join(g.Aliases, ", ")))
	}

	cmd := &cobra.Command{
		Use:     "write",
		Aliases: []string{"w", "add"},
		Short:   "Write the entry for a day",
		Long:    long.String(),
		Example: `
daybook write slept in, long walk by the river
daybook write --date=2024-03-15 --mood=happy dinner with friends
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires entry content")
			}
			content = strings.Join(args, " ")
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
			s := write.Write{
				ShowID:  io.ShowID,
				Date:    date,
				Content: content,
				Mood:    mo.Mood,
				Service: svc,
			}
			err = s.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	options.AddDateArgs(cmd, do)
	options.AddMoodArgs(cmd, mo)
	flagName := "mood"
	_ = cmd.RegisterFlagCompletionFunc(flagName, func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return moodCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
	})

	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
