package cal

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/daybook/pkg/app"
	"tableflip.dev/daybook/pkg/calendar"
	"tableflip.dev/daybook/pkg/printers"
)

type Cal struct {
	Year      int
	Month     int
	Stats     bool
	Moods     bool
	WeekStart time.Weekday
	Service   *app.Service
}

func (n *Cal) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not render calendar, no service")
	}

	now := time.Now()
	if n.Year == 0 {
		n.Year = now.Year()
	}
	if n.Month == 0 {
		n.Month = int(now.Month())
	}

	// Out-of-range months roll over, so --month 13 lands on January of
	// the next year.
	ref := time.Date(n.Year, time.Month(n.Month), 1, 0, 0, 0, 0, time.Local)
	year, month := ref.Year(), ref.Month()

	days, err := n.Service.Grid(ctx, year, month)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	fmt.Println("")

	start := n.WeekStart
	if start < time.Sunday || start > time.Saturday {
		start = calendar.DefaultWeekStart
	}
	if n.Moods {
		pp.CalendarWithMoods(year, month, days, start)
	} else {
		pp.Calendar(year, month, days, start)
	}

	if n.Stats {
		stats, err := n.Service.Stats(ctx, year, month)
		if err != nil {
			return err
		}
		fmt.Println("")
		pp.Stats(stats)
	}
	return nil
}
