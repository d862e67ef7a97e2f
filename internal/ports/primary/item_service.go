// Package primary defines the primary ports (driving interfaces) for the
// application. The CLI layer talks to the application exclusively through
// these interfaces.
package primary

import (
	"context"
	"time"

	"github.com/example/srs/internal/core/query"
	"github.com/example/srs/internal/models"
)

// AddItemRequest contains the data needed to start tracking an item.
type AddItemRequest struct {
	ID         string
	Difficulty int // 1-5, subjective difficulty at first solve
	Notes      string
	Today      time.Time
}

// ReviewRequest contains the data for recording one review of an item.
type ReviewRequest struct {
	ID      string
	Quality int // 1-5 recall quality
	Today   time.Time
}

// ItemService defines the primary port for item operations.
type ItemService interface {
	// AddItem starts tracking a new item. Fails if the ID is taken.
	AddItem(ctx context.Context, req AddItemRequest) (*models.Item, error)

	// RecordReview advances an item's schedule from a review quality
	// rating. Fails if the ID is unknown.
	RecordReview(ctx context.Context, req ReviewRequest) (*models.Item, error)

	// GetItem retrieves one item including its review history.
	GetItem(ctx context.Context, id string) (*models.Item, error)

	// ListItems retrieves all items ordered by next review date.
	ListItems(ctx context.Context) ([]models.Item, error)

	// DueItems returns the items due on or before today.
	DueItems(ctx context.Context, today time.Time) ([]models.Item, error)

	// StudyPlan returns the day-by-day plan for the coming horizon.
	StudyPlan(ctx context.Context, today time.Time, horizonDays int) ([]query.Day, error)

	// Summary returns aggregate counts over the collection.
	Summary(ctx context.Context, today time.Time) (query.Summary, error)
}
