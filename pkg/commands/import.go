package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/daybook/pkg/commands/options"
	"tableflip.dev/daybook/pkg/runner/load"
)

func addImport(topLevel *cobra.Command) {
	io := &options.ImportOptions{}

	cmd := &cobra.Command{
		Use:     "import [files]",
		Aliases: []string{"restore"},
		Short:   "Import entries from exported files",
		Long: `Import entries from json or yaml exports. Existing entries are kept
unless --overwrite is set. File arguments may use glob patterns.`,
		Example: `
daybook import backup.json
daybook import "backups/**/*.yaml" --overwrite
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadService()
			if err != nil {
				return err
			}
			s := load.Load{
				Patterns:  args,
				Overwrite: io.Overwrite,
				Service:   svc,
			}
			err = s.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	options.AddImportArgs(cmd, io)
	options.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
