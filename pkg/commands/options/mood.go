package options

import (
	"github.com/spf13/cobra"
)

// MoodOptions
type MoodOptions struct {
	Mood string
}

func AddMoodArgs(cmd *cobra.Command, o *MoodOptions) {
	cmd.Flags().StringVarP(&o.Mood, "mood", "m", "",
		"Specify the mood, example: --mood=happy.")
}
