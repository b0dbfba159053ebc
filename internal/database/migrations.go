package database

import (
	"database/sql"
	"fmt"
)

// schema holds the dataset tables. Both input tables are replaced
// wholesale on upload, so there is no row-level versioning; the
// datasets table tracks a version counter per table for cache
// invalidation downstream.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS transitions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		year INTEGER NOT NULL,
		from_class TEXT NOT NULL,
		to_class TEXT NOT NULL,
		area_sq_km REAL NOT NULL,
		confidence REAL NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS timeseries (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		year INTEGER NOT NULL,
		lulc_class TEXT NOT NULL,
		area_sq_km REAL NOT NULL,
		confidence REAL NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS datasets (
		name TEXT PRIMARY KEY,
		version INTEGER NOT NULL DEFAULT 0,
		row_count INTEGER NOT NULL DEFAULT 0,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
	`INSERT OR IGNORE INTO datasets (name, version, row_count) VALUES ('transitions', 0, 0)`,
	`INSERT OR IGNORE INTO datasets (name, version, row_count) VALUES ('timeseries', 0, 0)`,
	`CREATE INDEX IF NOT EXISTS idx_transitions_year ON transitions(year)`,
	`CREATE INDEX IF NOT EXISTS idx_timeseries_year_class ON timeseries(year, lulc_class)`,
}

// Migrate applies the schema statements in order
func Migrate(db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	return nil
}
