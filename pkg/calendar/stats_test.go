package calendar

import (
	"testing"
	"time"

	"tableflip.dev/daybook/pkg/entry"
	"tableflip.dev/daybook/pkg/mood"
)

func TestMonthlyStatsSingleEntry(t *testing.T) {
	entries := map[string]*entry.Entry{
		"2024-03-01": entry.New("2024-03-01", "hi", mood.Happy),
	}
	stats := MonthlyStats(2024, time.March, entries)

	if stats.TotalDays != 31 {
		t.Fatalf("expected 31 days, got %d", stats.TotalDays)
	}
	if stats.DaysWithEntries != 1 {
		t.Fatalf("expected 1 entry day, got %d", stats.DaysWithEntries)
	}
	if stats.CompletionRate != 3 {
		t.Fatalf("expected completion rate 3, got %d", stats.CompletionRate)
	}
	if stats.MoodDistribution[mood.Happy] != 1 {
		t.Fatalf("expected one happy day, got %v", stats.MoodDistribution)
	}
}

func TestMonthlyStatsEmptyAndFull(t *testing.T) {
	stats := MonthlyStats(2024, time.April, nil)
	if stats.CompletionRate != 0 || stats.DaysWithEntries != 0 {
		t.Fatalf("empty month should report zero, got %+v", stats)
	}

	entries := make(map[string]*entry.Entry)
	first := time.Date(2024, time.April, 1, 0, 0, 0, 0, time.Local)
	for i := 0; i < 30; i++ {
		ds := first.AddDate(0, 0, i).Format("2006-01-02")
		entries[ds] = entry.New(ds, "every single day", mood.Good)
	}
	stats = MonthlyStats(2024, time.April, entries)
	if stats.CompletionRate != 100 {
		t.Fatalf("full month should be 100, got %d", stats.CompletionRate)
	}
	if stats.Streak != 30 || stats.LongestStreak != 30 {
		t.Fatalf("expected full streak, got %d/%d", stats.Streak, stats.LongestStreak)
	}
}

func TestMonthlyStatsStreaks(t *testing.T) {
	entries := entriesFor(
		"2024-03-01", "2024-03-02", "2024-03-03", // run of 3
		"2024-03-10", "2024-03-11", // run of 2 (the final run)
	)
	stats := MonthlyStats(2024, time.March, entries)
	if stats.LongestStreak != 3 {
		t.Fatalf("expected longest streak 3, got %d", stats.LongestStreak)
	}
	if stats.Streak != 2 {
		t.Fatalf("expected trailing streak 2, got %d", stats.Streak)
	}
}

func TestMonthlyStatsWordsAndMoodScore(t *testing.T) {
	entries := map[string]*entry.Entry{
		"2024-03-01": entry.New("2024-03-01", "three short words", mood.VeryHappy),
		"2024-03-02": entry.New("2024-03-02", "one", mood.Sad),
	}
	stats := MonthlyStats(2024, time.March, entries)
	if stats.TotalWords != 4 {
		t.Fatalf("expected 4 words, got %d", stats.TotalWords)
	}
	if stats.AverageWords != 2 {
		t.Fatalf("expected average 2, got %d", stats.AverageWords)
	}
	if stats.AverageMoodScore != 3 {
		t.Fatalf("expected average mood 3, got %v", stats.AverageMoodScore)
	}
}

func TestMonthlyStatsIgnoresPaddingDays(t *testing.T) {
	// Entries on adjacent-month dates must not count toward March.
	entries := entriesFor("2024-02-29", "2024-04-01")
	stats := MonthlyStats(2024, time.March, entries)
	if stats.DaysWithEntries != 0 {
		t.Fatalf("padding days leaked into stats: %+v", stats)
	}
}
