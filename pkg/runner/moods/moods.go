package moods

import (
	"context"
	"fmt"

	"tableflip.dev/daybook/pkg/printers"
)

type Moods struct{}

func (n *Moods) Do(_ context.Context) error {
	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.Moods()
	return nil
}
