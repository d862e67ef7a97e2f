// Package sqlite contains the SQLite implementation of the item store.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/srs/internal/ports/secondary"
)

// ItemRepository implements secondary.ItemStore with SQLite.
type ItemRepository struct {
	db *sql.DB
}

// NewItemRepository creates a new SQLite item repository.
func NewItemRepository(db *sql.DB) *ItemRepository {
	return &ItemRepository{db: db}
}

// Get retrieves an item by its ID.
func (r *ItemRepository) Get(ctx context.Context, id string) (*secondary.ItemRecord, error) {
	var notes sql.NullString

	record := &secondary.ItemRecord{}
	err := r.db.QueryRowContext(ctx,
		"SELECT id, difficulty, ease_factor, reps, interval_days, last_reviewed, next_review, notes FROM items WHERE id = ?",
		id,
	).Scan(&record.ID, &record.Difficulty, &record.EaseFactor, &record.Reps, &record.IntervalDays, &record.LastReviewed, &record.NextReview, &notes)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("item %s: %w", id, secondary.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get item: %w", err)
	}

	record.Notes = notes.String
	return record, nil
}

// ListAll retrieves every item.
func (r *ItemRepository) ListAll(ctx context.Context) ([]*secondary.ItemRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, difficulty, ease_factor, reps, interval_days, last_reviewed, next_review, notes FROM items",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	defer rows.Close()

	var records []*secondary.ItemRecord
	for rows.Next() {
		var notes sql.NullString
		record := &secondary.ItemRecord{}
		if err := rows.Scan(&record.ID, &record.Difficulty, &record.EaseFactor, &record.Reps, &record.IntervalDays, &record.LastReviewed, &record.NextReview, &notes); err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		record.Notes = notes.String
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}

	return records, nil
}

// Upsert creates or fully replaces the record with the same ID.
func (r *ItemRepository) Upsert(ctx context.Context, item *secondary.ItemRecord) error {
	var notes sql.NullString
	if item.Notes != "" {
		notes = sql.NullString{String: item.Notes, Valid: true}
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO items (id, difficulty, ease_factor, reps, interval_days, last_reviewed, next_review, notes)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
			difficulty = excluded.difficulty,
			ease_factor = excluded.ease_factor,
			reps = excluded.reps,
			interval_days = excluded.interval_days,
			last_reviewed = excluded.last_reviewed,
			next_review = excluded.next_review,
			notes = excluded.notes,
			updated_at = CURRENT_TIMESTAMP`,
		item.ID, item.Difficulty, item.EaseFactor, item.Reps, item.IntervalDays, item.LastReviewed, item.NextReview, notes,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert item: %w", err)
	}

	return nil
}

// AppendReview appends one review event to an item's history.
func (r *ItemRepository) AppendReview(ctx context.Context, review *secondary.ReviewRecord) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO reviews (item_id, reviewed_on, quality) VALUES (?, ?, ?)",
		review.ItemID, review.ReviewedOn, review.Quality,
	)
	if err != nil {
		return fmt.Errorf("failed to append review: %w", err)
	}

	return nil
}

// ListReviews retrieves an item's review history, oldest first.
func (r *ItemRepository) ListReviews(ctx context.Context, itemID string) ([]*secondary.ReviewRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT item_id, reviewed_on, quality FROM reviews WHERE item_id = ? ORDER BY reviewed_on ASC, id ASC",
		itemID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	defer rows.Close()

	var reviews []*secondary.ReviewRecord
	for rows.Next() {
		record := &secondary.ReviewRecord{}
		if err := rows.Scan(&record.ItemID, &record.ReviewedOn, &record.Quality); err != nil {
			return nil, fmt.Errorf("failed to scan review: %w", err)
		}
		reviews = append(reviews, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}

	return reviews, nil
}
