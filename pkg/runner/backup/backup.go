package backup

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"tableflip.dev/daybook/pkg/app"
	"tableflip.dev/daybook/pkg/export"
	"tableflip.dev/daybook/pkg/printers"
)

type Backup struct {
	Format          string
	Output          string
	StartDate       string
	EndDate         string
	IncludeMood     bool
	IncludeMetadata bool
	Service         *app.Service
}

func (n *Backup) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not export, no service")
	}

	format, err := export.ParseFormat(n.Format)
	if err != nil {
		return err
	}

	opts := export.Options{
		Format:          format,
		Range:           export.Range{Start: n.StartDate, End: n.EndDate},
		IncludeMood:     n.IncludeMood,
		IncludeMetadata: n.IncludeMetadata,
	}

	entries, err := n.Service.Entries(ctx)
	if err != nil {
		return err
	}
	data, err := export.Export(entries, opts)
	if err != nil {
		return err
	}

	if n.Output == "" || n.Output == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}

	path := n.Output
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		path = filepath.Join(path, export.Filename(format))
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return err
	}

	kept := 0
	for _, e := range entries {
		if opts.Range.Contains(e.Date) {
			kept++
		}
	}
	pp := printers.PrettyPrint{}
	pp.Exported(path, kept)
	return nil
}
