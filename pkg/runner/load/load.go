package load

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/daybook/pkg/app"
	"tableflip.dev/daybook/pkg/export"
	"tableflip.dev/daybook/pkg/printers"
)

type Load struct {
	Patterns  []string
	Overwrite bool
	Service   *app.Service
}

func (n *Load) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not import, no service")
	}
	if len(n.Patterns) == 0 {
		return errors.New("nothing to import")
	}

	paths, err := export.Expand(n.Patterns)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("no files match %v", n.Patterns)
	}

	pp := printers.PrettyPrint{}
	fmt.Println("")

	for _, path := range paths {
		doc, err := export.ReadFile(path)
		if err != nil {
			return err
		}
		written, err := n.Service.Import(ctx, doc, n.Overwrite)
		if err != nil {
			return err
		}
		pp.Imported(path, written)
	}
	return nil
}
