// Package secondary defines the secondary ports (driven adapters) for the
// application. These are the interfaces through which the application
// drives external systems.
package secondary

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a store lookup matches no item.
var ErrNotFound = errors.New("item not found")

// ItemStore defines the secondary port for item persistence. Both the
// local SQLite backend and the Google Sheets backend implement it; the
// core only ever sees this interface.
type ItemStore interface {
	// Get retrieves an item by its ID. Wraps ErrNotFound when missing.
	Get(ctx context.Context, id string) (*ItemRecord, error)

	// ListAll retrieves every item. Order is unspecified; the query
	// engine imposes its own ordering.
	ListAll(ctx context.Context) ([]*ItemRecord, error)

	// Upsert creates or fully replaces the record with the same ID.
	// On failure the prior record remains untouched.
	Upsert(ctx context.Context, item *ItemRecord) error

	// AppendReview appends one review event to an item's history.
	AppendReview(ctx context.Context, review *ReviewRecord) error

	// ListReviews retrieves an item's review history, oldest first.
	ListReviews(ctx context.Context, itemID string) ([]*ReviewRecord, error)
}

// ItemRecord represents an item as stored in persistence. Dates are
// YYYY-MM-DD strings in both backends.
type ItemRecord struct {
	ID           string
	Difficulty   int
	EaseFactor   float64
	Reps         int
	IntervalDays int
	LastReviewed string
	NextReview   string
	Notes        string
}

// ReviewRecord represents one review event as stored in persistence.
type ReviewRecord struct {
	ItemID     string
	ReviewedOn string // YYYY-MM-DD
	Quality    int
}
