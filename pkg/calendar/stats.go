package calendar

import (
	"math"
	"time"

	"tableflip.dev/daybook/pkg/entry"
	"tableflip.dev/daybook/pkg/mood"
	"tableflip.dev/daybook/pkg/timeutil"
)

// Stats summarizes one month of diary activity.
type Stats struct {
	Year            int
	Month           time.Month
	TotalDays       int
	DaysWithEntries int
	// CompletionRate is DaysWithEntries over TotalDays as a rounded
	// integer percentage in [0, 100].
	CompletionRate   int
	MoodDistribution map[mood.Mood]int
	// Streak is the run of consecutive entry days ending at the last
	// entry day of the month; LongestStreak is the longest such run
	// anywhere in the month.
	Streak        int
	LongestStreak int
	TotalWords    int
	AverageWords  int
	// AverageMoodScore averages mood.Score over the month's entries;
	// zero when the month has none.
	AverageMoodScore float64
}

// MonthlyStats computes completion and mood statistics for the target
// month. Only the month's own days count; grid padding days never do.
func MonthlyStats(year int, month time.Month, entries map[string]*entry.Entry, opts ...Option) Stats {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	total := DaysIn(first.Year(), first.Month())

	stats := Stats{
		Year:             first.Year(),
		Month:            first.Month(),
		TotalDays:        total,
		MoodDistribution: make(map[mood.Mood]int),
	}

	moodScore := 0
	run := 0
	for day := 0; day < total; day++ {
		ds := timeutil.FormatDate(first.AddDate(0, 0, day))
		e := entries[ds]
		if e == nil {
			run = 0
			continue
		}
		run++
		if run > stats.LongestStreak {
			stats.LongestStreak = run
		}
		stats.Streak = run
		stats.DaysWithEntries++
		stats.MoodDistribution[e.Mood.Normalize()]++
		stats.TotalWords += entry.CountWords(e.Content)
		moodScore += e.Mood.Score()
	}

	stats.CompletionRate = int(math.Round(float64(stats.DaysWithEntries) / float64(total) * 100))
	if stats.DaysWithEntries > 0 {
		stats.AverageWords = stats.TotalWords / stats.DaysWithEntries
		stats.AverageMoodScore = float64(moodScore) / float64(stats.DaysWithEntries)
	}
	return stats
}
