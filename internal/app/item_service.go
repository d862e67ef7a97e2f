package app

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/example/srs/internal/core/query"
	"github.com/example/srs/internal/core/schedule"
	"github.com/example/srs/internal/models"
	"github.com/example/srs/internal/ports/primary"
	"github.com/example/srs/internal/ports/secondary"
)

// ErrDuplicateID is returned when adding an item whose ID is already tracked.
var ErrDuplicateID = errors.New("item already exists")

// ItemServiceImpl implements the ItemService interface.
type ItemServiceImpl struct {
	store secondary.ItemStore
}

// NewItemService creates a new ItemService with the injected store.
func NewItemService(store secondary.ItemStore) *ItemServiceImpl {
	return &ItemServiceImpl{store: store}
}

// AddItem starts tracking a new item.
func (s *ItemServiceImpl) AddItem(ctx context.Context, req primary.AddItemRequest) (*models.Item, error) {
	if req.ID == "" {
		return nil, fmt.Errorf("item id is required: %w", schedule.ErrInvalidInput)
	}

	// Reject duplicate IDs before touching the schedule
	if _, err := s.store.Get(ctx, req.ID); err == nil {
		return nil, fmt.Errorf("item %s: %w", req.ID, ErrDuplicateID)
	} else if !errors.Is(err, secondary.ErrNotFound) {
		return nil, fmt.Errorf("failed to check for existing item: %w", err)
	}

	today := models.DateOf(req.Today)
	state, err := schedule.Initialize(req.Difficulty, today)
	if err != nil {
		return nil, err
	}

	item := &models.Item{
		ID:           req.ID,
		Difficulty:   req.Difficulty,
		Reps:         state.Reps,
		IntervalDays: state.IntervalDays,
		EaseFactor:   state.EaseFactor,
		LastReviewed: state.LastReviewed,
		NextReview:   state.NextReview,
		Notes:        req.Notes,
	}

	if err := s.store.Upsert(ctx, itemToRecord(item)); err != nil {
		return nil, fmt.Errorf("failed to store item: %w", err)
	}
	return item, nil
}

// RecordReview advances an item's schedule and appends the review to its
// history.
func (s *ItemServiceImpl) RecordReview(ctx context.Context, req primary.ReviewRequest) (*models.Item, error) {
	record, err := s.store.Get(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	item, err := recordToItem(record)
	if err != nil {
		return nil, err
	}

	today := models.DateOf(req.Today)
	state, err := schedule.Advance(schedule.State{
		Reps:         item.Reps,
		IntervalDays: item.IntervalDays,
		EaseFactor:   item.EaseFactor,
		LastReviewed: item.LastReviewed,
		NextReview:   item.NextReview,
	}, req.Quality, today)
	if err != nil {
		return nil, err
	}

	item.Reps = state.Reps
	item.IntervalDays = state.IntervalDays
	item.EaseFactor = state.EaseFactor
	item.LastReviewed = state.LastReviewed
	item.NextReview = state.NextReview

	if err := s.store.Upsert(ctx, itemToRecord(item)); err != nil {
		return nil, fmt.Errorf("failed to store item: %w", err)
	}

	event := models.ReviewEvent{Date: today, Quality: req.Quality}
	if err := s.store.AppendReview(ctx, &secondary.ReviewRecord{
		ItemID:     item.ID,
		ReviewedOn: today.Format(time.DateOnly),
		Quality:    req.Quality,
	}); err != nil {
		return nil, fmt.Errorf("failed to record review history: %w", err)
	}
	item.History = append(item.History, event)

	return item, nil
}

// GetItem retrieves one item with its review history.
func (s *ItemServiceImpl) GetItem(ctx context.Context, id string) (*models.Item, error) {
	record, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	item, err := recordToItem(record)
	if err != nil {
		return nil, err
	}

	reviews, err := s.store.ListReviews(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load review history: %w", err)
	}
	for _, r := range reviews {
		date, err := time.Parse(time.DateOnly, r.ReviewedOn)
		if err != nil {
			return nil, fmt.Errorf("malformed review date %q for item %s: %w", r.ReviewedOn, id, err)
		}
		item.History = append(item.History, models.ReviewEvent{Date: date, Quality: r.Quality})
	}
	return item, nil
}

// ListItems retrieves all items ordered by next review date, then ID.
func (s *ItemServiceImpl) ListItems(ctx context.Context) ([]models.Item, error) {
	items, err := s.loadAll(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(items, func(i, j int) bool {
		if !items[i].NextReview.Equal(items[j].NextReview) {
			return items[i].NextReview.Before(items[j].NextReview)
		}
		return items[i].ID < items[j].ID
	})
	return items, nil
}

// DueItems returns the items due on or before today.
func (s *ItemServiceImpl) DueItems(ctx context.Context, today time.Time) ([]models.Item, error) {
	items, err := s.loadAll(ctx)
	if err != nil {
		return nil, err
	}
	return query.Due(items, today), nil
}

// StudyPlan returns the day-by-day plan for the coming horizon.
func (s *ItemServiceImpl) StudyPlan(ctx context.Context, today time.Time, horizonDays int) ([]query.Day, error) {
	items, err := s.loadAll(ctx)
	if err != nil {
		return nil, err
	}
	return query.Plan(items, today, horizonDays), nil
}

// Summary returns aggregate counts over the collection.
func (s *ItemServiceImpl) Summary(ctx context.Context, today time.Time) (query.Summary, error) {
	items, err := s.loadAll(ctx)
	if err != nil {
		return query.Summary{}, err
	}
	return query.Summarize(items, today), nil
}

func (s *ItemServiceImpl) loadAll(ctx context.Context) ([]models.Item, error) {
	records, err := s.store.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}

	items := make([]models.Item, 0, len(records))
	for _, r := range records {
		item, err := recordToItem(r)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	return items, nil
}

// itemToRecord converts a domain item to its persistence record.
func itemToRecord(item *models.Item) *secondary.ItemRecord {
	return &secondary.ItemRecord{
		ID:           item.ID,
		Difficulty:   item.Difficulty,
		EaseFactor:   item.EaseFactor,
		Reps:         item.Reps,
		IntervalDays: item.IntervalDays,
		LastReviewed: item.LastReviewed.Format(time.DateOnly),
		NextReview:   item.NextReview.Format(time.DateOnly),
		Notes:        item.Notes,
	}
}

// recordToItem converts a persistence record to a domain item.
func recordToItem(r *secondary.ItemRecord) (*models.Item, error) {
	lastReviewed, err := time.Parse(time.DateOnly, r.LastReviewed)
	if err != nil {
		return nil, fmt.Errorf("malformed last_reviewed %q for item %s: %w", r.LastReviewed, r.ID, err)
	}
	nextReview, err := time.Parse(time.DateOnly, r.NextReview)
	if err != nil {
		return nil, fmt.Errorf("malformed next_review %q for item %s: %w", r.NextReview, r.ID, err)
	}

	return &models.Item{
		ID:           r.ID,
		Difficulty:   r.Difficulty,
		Reps:         r.Reps,
		IntervalDays: r.IntervalDays,
		EaseFactor:   r.EaseFactor,
		LastReviewed: lastReviewed,
		NextReview:   nextReview,
		Notes:        r.Notes,
	}, nil
}
