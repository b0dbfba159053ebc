package repository

import (
	"database/sql"
	"fmt"

	"github.com/landsight/lulc-backend-go/internal/database"
	"github.com/landsight/lulc-backend-go/internal/models"
)

// DatasetRepository handles persistence of the two input tables.
// Uploads replace a table wholesale and bump its version counter so
// cached analysis snapshots can be invalidated.
type DatasetRepository struct {
	db *sql.DB
}

// NewDatasetRepository creates a new dataset repository
func NewDatasetRepository(db *sql.DB) *DatasetRepository {
	return &DatasetRepository{db: db}
}

// ReplaceTransitions replaces the transitions table with the given records
func (r *DatasetRepository) ReplaceTransitions(records []models.TransitionRecord) error {
	return database.Transaction(func(tx *sql.Tx) error {
		if _, err := tx.Exec("DELETE FROM transitions"); err != nil {
			return fmt.Errorf("failed to clear transitions: %w", err)
		}

		stmt, err := tx.Prepare(`
			INSERT INTO transitions (year, from_class, to_class, area_sq_km, confidence)
			VALUES (?, ?, ?, ?, ?)
		`)
		if err != nil {
			return fmt.Errorf("failed to prepare insert: %w", err)
		}
		defer stmt.Close()

		for _, rec := range records {
			if _, err := stmt.Exec(rec.Year, string(rec.From), string(rec.To), rec.AreaSqKm, rec.Confidence); err != nil {
				return fmt.Errorf("failed to insert transition: %w", err)
			}
		}

		return bumpVersion(tx, "transitions", len(records))
	})
}

// ReplaceTimeSeries replaces the timeseries table with the given points
func (r *DatasetRepository) ReplaceTimeSeries(points []models.TimeSeriesPoint) error {
	return database.Transaction(func(tx *sql.Tx) error {
		if _, err := tx.Exec("DELETE FROM timeseries"); err != nil {
			return fmt.Errorf("failed to clear timeseries: %w", err)
		}

		stmt, err := tx.Prepare(`
			INSERT INTO timeseries (year, lulc_class, area_sq_km, confidence)
			VALUES (?, ?, ?, ?)
		`)
		if err != nil {
			return fmt.Errorf("failed to prepare insert: %w", err)
		}
		defer stmt.Close()

		for _, p := range points {
			if _, err := stmt.Exec(p.Year, string(p.Class), p.AreaSqKm, p.Confidence); err != nil {
				return fmt.Errorf("failed to insert point: %w", err)
			}
		}

		return bumpVersion(tx, "timeseries", len(points))
	})
}

// GetTransitions loads all transition records ordered by insertion,
// preserving the upload order that stable sorts depend on
func (r *DatasetRepository) GetTransitions() ([]models.TransitionRecord, error) {
	rows, err := r.db.Query(`
		SELECT year, from_class, to_class, area_sq_km, confidence
		FROM transitions
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query transitions: %w", err)
	}
	defer rows.Close()

	var records []models.TransitionRecord
	for rows.Next() {
		var rec models.TransitionRecord
		var from, to string
		if err := rows.Scan(&rec.Year, &from, &to, &rec.AreaSqKm, &rec.Confidence); err != nil {
			return nil, fmt.Errorf("failed to scan transition: %w", err)
		}
		rec.From = models.LandClass(from)
		rec.To = models.LandClass(to)
		records = append(records, rec)
	}
	return records, rows.Err()
}

// GetTimeSeries loads all time series points ordered by insertion
func (r *DatasetRepository) GetTimeSeries() ([]models.TimeSeriesPoint, error) {
	rows, err := r.db.Query(`
		SELECT year, lulc_class, area_sq_km, confidence
		FROM timeseries
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query timeseries: %w", err)
	}
	defer rows.Close()

	var points []models.TimeSeriesPoint
	for rows.Next() {
		var p models.TimeSeriesPoint
		var class string
		if err := rows.Scan(&p.Year, &class, &p.AreaSqKm, &p.Confidence); err != nil {
			return nil, fmt.Errorf("failed to scan point: %w", err)
		}
		p.Class = models.LandClass(class)
		points = append(points, p)
	}
	return points, rows.Err()
}

// DatasetInfo describes one stored input table
type DatasetInfo struct {
	Name     string `json:"name"`
	Version  int64  `json:"version"`
	RowCount int    `json:"row_count"`
}

// GetDatasetInfo returns version and row count for both tables
func (r *DatasetRepository) GetDatasetInfo() ([]DatasetInfo, error) {
	rows, err := r.db.Query("SELECT name, version, row_count FROM datasets ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("failed to query datasets: %w", err)
	}
	defer rows.Close()

	var infos []DatasetInfo
	for rows.Next() {
		var info DatasetInfo
		if err := rows.Scan(&info.Name, &info.Version, &info.RowCount); err != nil {
			return nil, fmt.Errorf("failed to scan dataset info: %w", err)
		}
		infos = append(infos, info)
	}
	return infos, rows.Err()
}

// Version returns the combined dataset version, used as a cache key
// component for memoized snapshots
func (r *DatasetRepository) Version() (int64, error) {
	var total int64
	err := r.db.QueryRow("SELECT COALESCE(SUM(version), 0) FROM datasets").Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to read dataset version: %w", err)
	}
	return total, nil
}

func bumpVersion(tx *sql.Tx, name string, rowCount int) error {
	_, err := tx.Exec(`
		UPDATE datasets
		SET version = version + 1,
		    row_count = ?,
		    updated_at = CURRENT_TIMESTAMP
		WHERE name = ?
	`, rowCount, name)
	if err != nil {
		return fmt.Errorf("failed to bump dataset version: %w", err)
	}
	return nil
}
