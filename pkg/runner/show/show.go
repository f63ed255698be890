package show

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/daybook/pkg/app"
	"tableflip.dev/daybook/pkg/printers"
	"tableflip.dev/daybook/pkg/store"
)

type Show struct {
	ShowID  bool
	Date    string
	All     bool
	Service *app.Service
}

func (n *Show) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not show, no service")
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	fmt.Println("")

	if n.All {
		all, err := n.Service.Entries(ctx)
		if err != nil {
			return err
		}
		pp.TitleWithCount("Daybook", len(all))
		pp.Collection(all...)
		return nil
	}

	if n.Date == "" {
		n.Date = n.Service.Today()
	}

	e, err := n.Service.GetEntry(ctx, n.Date)
	if errors.Is(err, store.ErrNotFound) {
		pp.Title(n.Date)
		pp.Collection()
		return nil
	}
	if err != nil {
		return err
	}
	pp.Entry(e)
	return nil
}
