// Package options defines shared flag helpers for CLI commands.
package options

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/daybook/pkg/timeutil"
)

const layoutShort = "1/2"

// DateOptions captures the day a command operates on.
type DateOptions struct {
	Date string
}

// AddDateArgs wires the date flag on the provided command.
func AddDateArgs(cmd *cobra.Command, o *DateOptions) {
	cmd.Flags().StringVarP(&o.Date, "date", "d", "",
		`Specify a date, example: --date="2024-03-15" or --date=yesterday.`)
}

// GetDate resolves the flag to an ISO date. Empty means today.
func (o *DateOptions) GetDate() (string, error) {
	raw := strings.ToLower(strings.TrimSpace(o.Date))
	switch raw {
	case "", "today":
		return timeutil.Today(), nil
	case "yesterday":
		return timeutil.FormatDate(time.Now().AddDate(0, 0, -1)), nil
	}
	if timeutil.ValidDate(raw) {
		return raw, nil
	}
	// Let the year be the same.
	if t, err := time.Parse(layoutShort, raw); err == nil {
		t = t.AddDate(time.Now().Year(), 0, 0)
		return timeutil.FormatDate(t), nil
	}
	return "", fmt.Errorf("unrecognized date %q", o.Date)
}
