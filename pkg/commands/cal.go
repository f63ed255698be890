package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"tableflip.dev/daybook/pkg/runner/cal"
)

func addCal(topLevel *cobra.Command) {
	var (
		year      int
		month     int
		withStats bool
		withMoods bool
	)

	cmd := &cobra.Command{
		Use:     "cal",
		Aliases: []string{"calendar"},
		Short:   "Show the month calendar",
		Long: `Show a month as a six-week grid. Days with an entry are highlighted,
today is underlined, and adjacent-month days are dimmed.`,
		Example: `
daybook cal
daybook cal --month=3 --year=2024 --moods
daybook cal --stats
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if month < 0 || month > 12 {
				return fmt.Errorf("invalid month %d", month)
			}
			svc, err := loadService()
			if err != nil {
				return err
			}
			s := cal.Cal{
				Year:      year,
				Month:     month,
				Stats:     withStats,
				Moods:     withMoods,
				WeekStart: svc.WeekStart,
				Service:   svc,
			}
			err = s.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "Year to show. Defaults to the current year.")
	cmd.Flags().IntVar(&month, "month", 0, "Month to show, 1-12. Defaults to the current month.")
	cmd.Flags().BoolVar(&withStats, "stats", false, "Include monthly statistics.")
	cmd.Flags().BoolVar(&withMoods, "moods", false, "Show mood symbols for days with entries.")
	topLevel.AddCommand(cmd)
}
