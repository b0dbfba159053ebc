// Package ingest owns the ingestion boundary: it parses the two
// input tables from CSV or XLSX uploads and rejects malformed rows
// before anything reaches the engine. The engine assumes well-typed
// numeric fields.
package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/landsight/lulc-backend-go/internal/models"
)

// Expected column headers, matched case-insensitively
var (
	transitionColumns = []string{"year", "from", "to", "area_sq_km", "confidence"}
	timeSeriesColumns = []string{"year", "lulc_class", "area_sq_km", "confidence"}
)

// ReadTransitionsCSV parses transition records from CSV data
func ReadTransitionsCSV(r io.Reader) ([]models.TransitionRecord, error) {
	rows, err := readCSV(r)
	if err != nil {
		return nil, err
	}
	return parseTransitionRows(rows)
}

// ReadTimeSeriesCSV parses time series points from CSV data
func ReadTimeSeriesCSV(r io.Reader) ([]models.TimeSeriesPoint, error) {
	rows, err := readCSV(r)
	if err != nil {
		return nil, err
	}
	return parseTimeSeriesRows(rows)
}

func readCSV(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}
	return rows, nil
}

// parseTransitionRows converts raw table rows (header first) into
// typed transition records
func parseTransitionRows(rows [][]string) ([]models.TransitionRecord, error) {
	index, err := columnIndex(rows, transitionColumns)
	if err != nil {
		return nil, err
	}

	records := make([]models.TransitionRecord, 0, len(rows)-1)
	for i, row := range rows[1:] {
		rowNum := i + 2 // 1-based, after header
		if blankRow(row) {
			continue
		}

		year, err := parseYear(cell(row, index["year"]), rowNum)
		if err != nil {
			return nil, err
		}
		area, err := parseArea(cell(row, index["area_sq_km"]), rowNum)
		if err != nil {
			return nil, err
		}
		confidence, err := parseConfidence(cell(row, index["confidence"]), rowNum)
		if err != nil {
			return nil, err
		}

		from := strings.TrimSpace(cell(row, index["from"]))
		to := strings.TrimSpace(cell(row, index["to"]))
		if from == "" || to == "" {
			return nil, fmt.Errorf("row %d: empty land class", rowNum)
		}

		records = append(records, models.TransitionRecord{
			Year:       year,
			From:       models.LandClass(from),
			To:         models.LandClass(to),
			AreaSqKm:   area,
			Confidence: confidence,
		})
	}
	return records, nil
}

// parseTimeSeriesRows converts raw table rows (header first) into
// typed time series points
func parseTimeSeriesRows(rows [][]string) ([]models.TimeSeriesPoint, error) {
	index, err := columnIndex(rows, timeSeriesColumns)
	if err != nil {
		return nil, err
	}

	points := make([]models.TimeSeriesPoint, 0, len(rows)-1)
	for i, row := range rows[1:] {
		rowNum := i + 2
		if blankRow(row) {
			continue
		}

		year, err := parseYear(cell(row, index["year"]), rowNum)
		if err != nil {
			return nil, err
		}
		area, err := parseArea(cell(row, index["area_sq_km"]), rowNum)
		if err != nil {
			return nil, err
		}
		confidence, err := parseConfidence(cell(row, index["confidence"]), rowNum)
		if err != nil {
			return nil, err
		}

		class := strings.TrimSpace(cell(row, index["lulc_class"]))
		if class == "" {
			return nil, fmt.Errorf("row %d: empty land class", rowNum)
		}

		points = append(points, models.TimeSeriesPoint{
			Year:       year,
			Class:      models.LandClass(class),
			AreaSqKm:   area,
			Confidence: confidence,
		})
	}
	return points, nil
}

// columnIndex maps each expected column name to its position in the
// header row
func columnIndex(rows [][]string, expected []string) (map[string]int, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("empty table: missing header row")
	}

	index := make(map[string]int, len(expected))
	for i, name := range rows[0] {
		index[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, name := range expected {
		if _, ok := index[name]; !ok {
			return nil, fmt.Errorf("missing required column %q", name)
		}
	}
	return index, nil
}

func cell(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return row[i]
}

func blankRow(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

func parseYear(s string, rowNum int) (int, error) {
	year, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("row %d: invalid year %q", rowNum, s)
	}
	return year, nil
}

func parseArea(s string, rowNum int) (float64, error) {
	area, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("row %d: invalid area %q", rowNum, s)
	}
	if area < 0 {
		return 0, fmt.Errorf("row %d: negative area %.3f", rowNum, area)
	}
	return area, nil
}

func parseConfidence(s string, rowNum int) (float64, error) {
	confidence, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("row %d: invalid confidence %q", rowNum, s)
	}
	if confidence < 0 || confidence > 1 {
		return 0, fmt.Errorf("row %d: confidence %.3f outside [0,1]", rowNum, confidence)
	}
	return confidence, nil
}
