package options

import (
	"github.com/spf13/cobra"
)

// ExportOptions captures the format and range flags for export.
type ExportOptions struct {
	Format          string
	Output          string
	From            string
	To              string
	Last            string
	IncludeMood     bool
	IncludeMetadata bool
}

func AddExportArgs(cmd *cobra.Command, o *ExportOptions) {
	cmd.Flags().StringVarP(&o.Format, "format", "f", "json",
		"Export format. One of json, yaml, csv, txt, or html.")
	cmd.Flags().StringVarP(&o.Output, "output", "o", "",
		"Write to this file or directory. Defaults to stdout.")
	cmd.Flags().StringVar(&o.From, "from", "",
		"Only export entries on or after this date.")
	cmd.Flags().StringVar(&o.To, "to", "",
		"Only export entries on or before this date.")
	cmd.Flags().StringVar(&o.Last, "last", "",
		`Only export entries from a recent window, example: --last=1w or --last=3d.`)
	cmd.Flags().BoolVar(&o.IncludeMood, "include-mood", true,
		"Include the mood of each entry.")
	cmd.Flags().BoolVar(&o.IncludeMetadata, "include-metadata", false,
		"Include created and updated timestamps.")
}

// ImportOptions
type ImportOptions struct {
	Overwrite bool
}

func AddImportArgs(cmd *cobra.Command, o *ImportOptions) {
	cmd.Flags().BoolVar(&o.Overwrite, "overwrite", false,
		"Replace entries that already exist.")
}
