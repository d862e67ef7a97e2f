package db

// SchemaSQL is the authoritative schema for the local backend. Tests use
// this same schema via GetSchemaSQL() so they can never drift from the
// repository code: a column referenced by an adapter but missing here
// fails immediately with "no such column".
const SchemaSQL = `
-- Items (one row per tracked practice item)
CREATE TABLE IF NOT EXISTS items (
	id TEXT PRIMARY KEY,
	difficulty INTEGER NOT NULL CHECK(difficulty BETWEEN 1 AND 5),
	ease_factor REAL NOT NULL,
	reps INTEGER NOT NULL DEFAULT 0,
	interval_days INTEGER NOT NULL DEFAULT 1,
	last_reviewed TEXT NOT NULL,
	next_review TEXT NOT NULL,
	notes TEXT,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Reviews (append-only history, reporting only)
CREATE TABLE IF NOT EXISTS reviews (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	item_id TEXT NOT NULL,
	reviewed_on TEXT NOT NULL,
	quality INTEGER NOT NULL CHECK(quality BETWEEN 1 AND 5),
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (item_id) REFERENCES items(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_items_next_review ON items(next_review);
CREATE INDEX IF NOT EXISTS idx_reviews_item ON reviews(item_id);
`

// GetSchemaSQL returns the schema for test database setup.
func GetSchemaSQL() string {
	return SchemaSQL
}
