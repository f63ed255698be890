package options

import (
	"github.com/spf13/cobra"
)

// SearchOptions captures the filter and ordering flags for search.
type SearchOptions struct {
	Mood      string
	From      string
	To        string
	ByRank    bool
	Ascending bool
	Suggest   bool
}

func AddSearchArgs(cmd *cobra.Command, o *SearchOptions) {
	cmd.Flags().StringVarP(&o.Mood, "mood", "m", "",
		"Only match entries with this mood.")
	cmd.Flags().StringVar(&o.From, "from", "",
		"Only match entries on or after this date.")
	cmd.Flags().StringVar(&o.To, "to", "",
		"Only match entries on or before this date.")
	cmd.Flags().BoolVar(&o.ByRank, "by-rank", false,
		"Sort results by relevance instead of date.")
	cmd.Flags().BoolVar(&o.Ascending, "asc", false,
		"Sort results oldest first.")
	cmd.Flags().BoolVar(&o.Suggest, "suggest", false,
		"Suggest word completions for a prefix instead of searching.")
}
