// Package sheets contains the Google Sheets implementation of the item
// store. Items live one row per item in an "items" worksheet; review
// history is appended to a "reviews" worksheet.
//
// The spreadsheet is treated as exclusively owned for the duration of one
// invocation: upserts read and rewrite whole rows, so two concurrent
// invocations against the same sheet can lose a write. This is a known
// gap, not an enforced lock.
package sheets

import (
	"context"
	"fmt"
	"strconv"

	"google.golang.org/api/option"
	gsheets "google.golang.org/api/sheets/v4"

	"github.com/example/srs/internal/ports/secondary"
)

const (
	itemsSheet   = "items"
	reviewsSheet = "reviews"

	itemsRange   = itemsSheet + "!A1:H"
	reviewsRange = reviewsSheet + "!A1:C"
)

var itemHeaders = []string{"id", "difficulty", "ease_factor", "reps", "interval_days", "last_reviewed", "next_review", "notes"}

var reviewHeaders = []string{"item_id", "reviewed_on", "quality"}

// ItemRepository implements secondary.ItemStore against a Google Sheets
// spreadsheet, authenticated with a service-account credentials file.
type ItemRepository struct {
	svc           *gsheets.Service
	spreadsheetID string
}

// NewItemRepository connects to the spreadsheet and makes sure the items
// and reviews worksheets exist with their header rows.
func NewItemRepository(ctx context.Context, spreadsheetID, credentialsFile string) (*ItemRepository, error) {
	svc, err := gsheets.NewService(ctx,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(gsheets.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets client: %w", err)
	}

	repo := &ItemRepository{svc: svc, spreadsheetID: spreadsheetID}
	if err := repo.ensureWorksheets(ctx); err != nil {
		return nil, err
	}
	return repo, nil
}

// Get retrieves an item by its ID.
func (r *ItemRepository) Get(ctx context.Context, id string) (*secondary.ItemRecord, error) {
	records, err := r.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, record := range records {
		if record.ID == id {
			return record, nil
		}
	}
	return nil, fmt.Errorf("item %s: %w", id, secondary.ErrNotFound)
}

// ListAll retrieves every item row below the header.
func (r *ItemRepository) ListAll(ctx context.Context) ([]*secondary.ItemRecord, error) {
	resp, err := r.svc.Spreadsheets.Values.Get(r.spreadsheetID, itemsRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read items sheet: %w", err)
	}

	var records []*secondary.ItemRecord
	for i, row := range resp.Values {
		if i == 0 {
			continue // header row
		}
		record, err := rowToRecord(row)
		if err != nil {
			return nil, fmt.Errorf("items row %d: %w", i+1, err)
		}
		if record.ID == "" {
			continue
		}
		records = append(records, record)
	}
	return records, nil
}

// Upsert replaces the row with the same ID, or appends a new one, then
// rewrites the whole table (header included).
func (r *ItemRepository) Upsert(ctx context.Context, item *secondary.ItemRecord) error {
	records, err := r.ListAll(ctx)
	if err != nil {
		return err
	}

	replaced := false
	for i, record := range records {
		if record.ID == item.ID {
			records[i] = item
			replaced = true
			break
		}
	}
	if !replaced {
		records = append(records, item)
	}

	return r.writeItems(ctx, records)
}

// AppendReview appends one review event row.
func (r *ItemRepository) AppendReview(ctx context.Context, review *secondary.ReviewRecord) error {
	vr := &gsheets.ValueRange{
		Values: [][]interface{}{{review.ItemID, review.ReviewedOn, strconv.Itoa(review.Quality)}},
	}
	_, err := r.svc.Spreadsheets.Values.Append(r.spreadsheetID, reviewsRange, vr).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to append review: %w", err)
	}
	return nil
}

// ListReviews retrieves an item's review history in sheet order, which is
// append order and therefore oldest first.
func (r *ItemRepository) ListReviews(ctx context.Context, itemID string) ([]*secondary.ReviewRecord, error) {
	resp, err := r.svc.Spreadsheets.Values.Get(r.spreadsheetID, reviewsRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read reviews sheet: %w", err)
	}

	var reviews []*secondary.ReviewRecord
	for i, row := range resp.Values {
		if i == 0 || len(row) < 3 {
			continue
		}
		if cell(row, 0) != itemID {
			continue
		}
		quality, err := strconv.Atoi(cell(row, 2))
		if err != nil {
			return nil, fmt.Errorf("reviews row %d: malformed quality %q: %w", i+1, cell(row, 2), err)
		}
		reviews = append(reviews, &secondary.ReviewRecord{
			ItemID:     itemID,
			ReviewedOn: cell(row, 1),
			Quality:    quality,
		})
	}
	return reviews, nil
}

// writeItems rewrites the items table in place, header plus rows. Upserts
// never shrink the table, so no clear step is needed and a failed write
// leaves the prior rows untouched.
func (r *ItemRepository) writeItems(ctx context.Context, records []*secondary.ItemRecord) error {
	values := [][]interface{}{headerRow(itemHeaders)}
	for _, record := range records {
		values = append(values, []interface{}{
			record.ID,
			strconv.Itoa(record.Difficulty),
			strconv.FormatFloat(record.EaseFactor, 'f', -1, 64),
			strconv.Itoa(record.Reps),
			strconv.Itoa(record.IntervalDays),
			record.LastReviewed,
			record.NextReview,
			record.Notes,
		})
	}

	vr := &gsheets.ValueRange{Values: values}
	_, err := r.svc.Spreadsheets.Values.Update(r.spreadsheetID, itemsSheet+"!A1", vr).
		ValueInputOption("RAW").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to write items sheet: %w", err)
	}
	return nil
}

// ensureWorksheets creates the items and reviews worksheets with header
// rows when missing.
func (r *ItemRepository) ensureWorksheets(ctx context.Context) error {
	spreadsheet, err := r.svc.Spreadsheets.Get(r.spreadsheetID).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to open spreadsheet: %w", err)
	}

	existing := make(map[string]bool)
	for _, sheet := range spreadsheet.Sheets {
		if sheet.Properties != nil {
			existing[sheet.Properties.Title] = true
		}
	}

	for _, want := range []struct {
		title   string
		headers []string
	}{
		{itemsSheet, itemHeaders},
		{reviewsSheet, reviewHeaders},
	} {
		if existing[want.title] {
			continue
		}
		_, err := r.svc.Spreadsheets.BatchUpdate(r.spreadsheetID, &gsheets.BatchUpdateSpreadsheetRequest{
			Requests: []*gsheets.Request{{
				AddSheet: &gsheets.AddSheetRequest{
					Properties: &gsheets.SheetProperties{Title: want.title},
				},
			}},
		}).Context(ctx).Do()
		if err != nil {
			return fmt.Errorf("failed to create %s worksheet: %w", want.title, err)
		}

		vr := &gsheets.ValueRange{Values: [][]interface{}{headerRow(want.headers)}}
		if _, err := r.svc.Spreadsheets.Values.Update(r.spreadsheetID, want.title+"!A1", vr).
			ValueInputOption("RAW").
			Context(ctx).Do(); err != nil {
			return fmt.Errorf("failed to write %s header: %w", want.title, err)
		}
	}
	return nil
}

// rowToRecord parses one items row. Short rows are padded with empty
// cells; numeric cells must parse or the record counts as malformed.
func rowToRecord(row []interface{}) (*secondary.ItemRecord, error) {
	record := &secondary.ItemRecord{
		ID:           cell(row, 0),
		LastReviewed: cell(row, 5),
		NextReview:   cell(row, 6),
		Notes:        cell(row, 7),
	}
	if record.ID == "" {
		return record, nil
	}

	var err error
	if record.Difficulty, err = strconv.Atoi(cell(row, 1)); err != nil {
		return nil, fmt.Errorf("malformed difficulty %q: %w", cell(row, 1), err)
	}
	if record.EaseFactor, err = strconv.ParseFloat(cell(row, 2), 64); err != nil {
		return nil, fmt.Errorf("malformed ease_factor %q: %w", cell(row, 2), err)
	}
	if record.Reps, err = strconv.Atoi(cell(row, 3)); err != nil {
		return nil, fmt.Errorf("malformed reps %q: %w", cell(row, 3), err)
	}
	if record.IntervalDays, err = strconv.Atoi(cell(row, 4)); err != nil {
		return nil, fmt.Errorf("malformed interval_days %q: %w", cell(row, 4), err)
	}
	return record, nil
}

func cell(row []interface{}, i int) string {
	if i >= len(row) {
		return ""
	}
	return fmt.Sprintf("%v", row[i])
}

func headerRow(headers []string) []interface{} {
	row := make([]interface{}, len(headers))
	for i, h := range headers {
		row[i] = h
	}
	return row
}
