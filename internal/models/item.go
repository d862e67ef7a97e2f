// Package models contains domain types for SRS entities.
// Persistence lives behind the repository interfaces in ports/secondary.
package models

import "time"

// Item represents a tracked practice item with its scheduling state.
type Item struct {
	ID           string
	Difficulty   int     // initial difficulty (1-5), set once at add
	Reps         int     // successful consecutive reviews since last lapse
	IntervalDays int     // days until next review, always >= 1
	EaseFactor   float64 // interval growth multiplier, never below the floor
	LastReviewed time.Time
	NextReview   time.Time // always LastReviewed + IntervalDays
	Notes        string
	History      []ReviewEvent // append-only, reporting only
}

// ReviewEvent is a single past review of an item.
type ReviewEvent struct {
	Date    time.Time
	Quality int
}

// DateOf truncates a timestamp to its calendar date (midnight UTC).
// All scheduling arithmetic works on dates, never on clock times.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
