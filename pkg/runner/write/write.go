package write

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/daybook/pkg/app"
	"tableflip.dev/daybook/pkg/printers"
)

type Write struct {
	ShowID  bool
	Date    string
	Content string
	Mood    string
	Service *app.Service
}

func (n *Write) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not write, no service")
	}
	if n.Date == "" {
		n.Date = n.Service.Today()
	}

	e, err := n.Service.SaveEntry(ctx, n.Date, n.Content, n.Mood)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	fmt.Println("")
	pp.Entry(e)
	return nil
}
