package remove

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/daybook/pkg/app"
	"tableflip.dev/daybook/pkg/printers"
)

type Remove struct {
	Date    string
	Service *app.Service
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not delete, no service")
	}
	if n.Date == "" {
		n.Date = n.Service.Today()
	}

	if err := n.Service.DeleteEntry(ctx, n.Date); err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.Deleted(n.Date)
	return nil
}
