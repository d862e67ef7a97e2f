// Package schedule contains the pure scheduling logic for spaced repetition.
// Transitions are pure functions of (state, rating, today) with no side
// effects, so the policy is deterministic and independently testable.
package schedule

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// ErrInvalidInput is returned for out-of-range difficulty or quality
// ratings and for malformed item identifiers.
var ErrInvalidInput = errors.New("invalid input")

// Tuning constants for the SM-2 variant. These are product choices, not
// structural ones; the only hard requirement is "lower quality means a
// shorter interval and a sooner review".
const (
	// DefaultEase is the ease factor assigned to every new item.
	DefaultEase = 2.5

	// MinEase is the floor the ease factor can never drop below,
	// however many poor reviews an item accumulates.
	MinEase = 1.3

	// LapseInterval is the fixed interval (days) after a failed review.
	// A lapse always means "review again very soon", independent of how
	// long the prior interval had grown.
	LapseInterval = 1

	// PassThreshold is the minimum quality that counts as a pass.
	PassThreshold = 3
)

// initialIntervals maps the reported difficulty at first solve to the
// starting interval in days. Harder items come back sooner.
var initialIntervals = map[int]int{
	1: 7,
	2: 3,
	3: 1,
	4: 1,
	5: 1,
}

// State is the scheduling state of one item. Every review produces a new
// State; there are no named phases and no terminal state.
type State struct {
	Reps         int
	IntervalDays int
	EaseFactor   float64
	LastReviewed time.Time
	NextReview   time.Time
}

// Initialize derives the starting state for an item from its reported
// difficulty. The ease factor starts at the default; the interval comes
// from the difficulty table. Creation counts as the first review.
func Initialize(difficulty int, today time.Time) (State, error) {
	if difficulty < 1 || difficulty > 5 {
		return State{}, fmt.Errorf("difficulty must be 1-5, got %d: %w", difficulty, ErrInvalidInput)
	}

	interval := initialIntervals[difficulty]
	return State{
		Reps:         0,
		IntervalDays: interval,
		EaseFactor:   DefaultEase,
		LastReviewed: today,
		NextReview:   today.AddDate(0, 0, interval),
	}, nil
}

// Advance computes the next scheduling state from the current state and a
// review quality rating.
//
// Quality below PassThreshold is a lapse: the repetition streak resets and
// the interval drops to LapseInterval. A pass grows the interval by the
// ease factor, with a floor of previous+1 so every pass strictly grows it.
// The ease factor is adjusted in both branches and clamped at MinEase.
func Advance(s State, quality int, today time.Time) (State, error) {
	if quality < 1 || quality > 5 {
		return State{}, fmt.Errorf("quality must be 1-5, got %d: %w", quality, ErrInvalidInput)
	}

	s.EaseFactor = nextEase(s.EaseFactor, quality)

	if quality < PassThreshold {
		s.Reps = 0
		s.IntervalDays = LapseInterval
	} else {
		s.Reps++
		grown := int(math.Round(float64(s.IntervalDays) * s.EaseFactor))
		if grown <= s.IntervalDays {
			grown = s.IntervalDays + 1
		}
		s.IntervalDays = grown
	}

	s.LastReviewed = today
	s.NextReview = today.AddDate(0, 0, s.IntervalDays)
	return s, nil
}

// nextEase applies the SM-2 ease adjustment:
//
//	EF' = EF + (0.1 - (5-q) * (0.08 + (5-q)*0.02))
//
// Quality 5 nudges the ease up, 4 leaves it unchanged, 3 and below pull it
// down, harder the poorer the recall. Clamped at MinEase.
func nextEase(ease float64, quality int) float64 {
	q := float64(quality)
	ease += 0.1 - (5-q)*(0.08+(5-q)*0.02)
	if ease < MinEase {
		ease = MinEase
	}
	return ease
}
