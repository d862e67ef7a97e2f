// Package query contains the pure reporting views over the item
// collection: due lists, the day-by-day study plan, and aggregate counts.
// All functions take "today" as an explicit parameter and never mutate
// their inputs.
package query

import (
	"sort"
	"time"

	"github.com/example/srs/internal/models"
)

// Repetition-count buckets for the summary view.
const (
	learningMinReps = 1
	matureMinReps   = 4
)

// Day is one bucket of the study plan: a date and the items scheduled
// for it, ordered by ID.
type Day struct {
	Date  time.Time
	Items []models.Item
}

// Summary aggregates the item collection. The repetition buckets classify
// items as new (no successful review yet), learning (1-3) or mature (4+);
// the schedule counts break down when reviews come due.
type Summary struct {
	Total    int
	New      int
	Learning int
	Mature   int

	Overdue     int
	DueToday    int
	DueTomorrow int
	Next7Days   int
	Next30Days  int
}

// Due returns all items whose next review is on or before today, ordered
// by next review date ascending, then ID ascending.
func Due(items []models.Item, today time.Time) []models.Item {
	today = models.DateOf(today)

	var due []models.Item
	for _, it := range items {
		if !models.DateOf(it.NextReview).After(today) {
			due = append(due, it)
		}
	}

	sort.Slice(due, func(i, j int) bool {
		a, b := models.DateOf(due[i].NextReview), models.DateOf(due[j].NextReview)
		if !a.Equal(b) {
			return a.Before(b)
		}
		return due[i].ID < due[j].ID
	})
	return due
}

// Plan groups items whose next review falls within [today, today+horizon]
// into per-date buckets, ordered by date. Overdue items surface under
// today's bucket rather than disappearing from the plan. Items within a
// bucket are ordered by ID; empty dates are omitted.
func Plan(items []models.Item, today time.Time, horizonDays int) []Day {
	today = models.DateOf(today)
	end := today.AddDate(0, 0, horizonDays)

	buckets := make(map[time.Time][]models.Item)
	for _, it := range items {
		next := models.DateOf(it.NextReview)
		if next.Before(today) {
			next = today
		}
		if next.After(end) {
			continue
		}
		buckets[next] = append(buckets[next], it)
	}

	days := make([]Day, 0, len(buckets))
	for date, bucket := range buckets {
		sort.Slice(bucket, func(i, j int) bool { return bucket[i].ID < bucket[j].ID })
		days = append(days, Day{Date: date, Items: bucket})
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Date.Before(days[j].Date) })
	return days
}

// Summarize computes the aggregate counts for the collection.
func Summarize(items []models.Item, today time.Time) Summary {
	today = models.DateOf(today)
	tomorrow := today.AddDate(0, 0, 1)
	week := today.AddDate(0, 0, 7)
	month := today.AddDate(0, 0, 30)

	var s Summary
	for _, it := range items {
		s.Total++

		switch {
		case it.Reps >= matureMinReps:
			s.Mature++
		case it.Reps >= learningMinReps:
			s.Learning++
		default:
			s.New++
		}

		next := models.DateOf(it.NextReview)
		switch {
		case next.Before(today):
			s.Overdue++
			s.DueToday++
		case next.Equal(today):
			s.DueToday++
		case next.Equal(tomorrow):
			s.DueTomorrow++
		case !next.After(week):
			s.Next7Days++
		case !next.After(month):
			s.Next30Days++
		}
	}
	return s
}
