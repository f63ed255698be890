package commands

import (
	"errors"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/daybook/pkg/commands/options"
	"tableflip.dev/daybook/pkg/export"
	"tableflip.dev/daybook/pkg/runner/backup"
	"tableflip.dev/daybook/pkg/timeutil"
)

func addExport(topLevel *cobra.Command) {
	eo := &options.ExportOptions{}

	cmd := &cobra.Command{
		Use:     "export",
		Aliases: []string{"backup"},
		Short:   "Export entries to a file",
		Long: `Export entries as json, yaml, csv, txt, or html. The json and yaml
formats round-trip through import; the rest are for reading.`,
		Example: `
daybook export --output=backup.json
daybook export --format=csv --from=2024-03-01 --to=2024-03-31
daybook export --format=txt --last=1w
daybook export --format=html --output=./site/
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadService()
			if err != nil {
				return err
			}
			if eo.Last != "" {
				if eo.From != "" {
					return errors.New("--last and --from are exclusive")
				}
				window, _, err := timeutil.ParseWindow(eo.Last)
				if err != nil {
					return err
				}
				eo.From = timeutil.FormatDate(time.Now().Add(-window))
			}
			s := backup.Backup{
				Format:          eo.Format,
				Output:          eo.Output,
				StartDate:       eo.From,
				EndDate:         eo.To,
				IncludeMood:     eo.IncludeMood,
				IncludeMetadata: eo.IncludeMetadata,
				Service:         svc,
			}
			err = s.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	options.AddExportArgs(cmd, eo)
	flagName := "format"
	_ = cmd.RegisterFlagCompletionFunc(flagName, func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return export.FormatNames(), cobra.ShellCompDirectiveNoFileComp
	})

	options.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
