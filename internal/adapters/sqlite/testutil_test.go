// Package sqlite_test contains integration tests for the SQLite item store.
//
// All test setup uses db.GetSchemaSQL() so tests always run against the
// authoritative schema; a column referenced by the repository but missing
// from the schema fails immediately with "no such column".
package sqlite_test

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/example/srs/internal/db"
	"github.com/example/srs/internal/ports/secondary"
)

// setupTestDB creates an in-memory database with the authoritative schema.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	if _, err = testDB.Exec(db.GetSchemaSQL()); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}

// testItem returns a valid record with sensible defaults.
func testItem(id string) *secondary.ItemRecord {
	return &secondary.ItemRecord{
		ID:           id,
		Difficulty:   3,
		EaseFactor:   2.5,
		Reps:         0,
		IntervalDays: 1,
		LastReviewed: "2026-08-25",
		NextReview:   "2026-08-26",
	}
}
