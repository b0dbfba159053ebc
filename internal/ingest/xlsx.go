package ingest

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/landsight/lulc-backend-go/internal/models"
)

// ReadTransitionsXLSX parses transition records from the first sheet
// of an XLSX workbook
func ReadTransitionsXLSX(r io.Reader) ([]models.TransitionRecord, error) {
	rows, err := readFirstSheet(r)
	if err != nil {
		return nil, err
	}
	return parseTransitionRows(rows)
}

// ReadTimeSeriesXLSX parses time series points from the first sheet
// of an XLSX workbook
func ReadTimeSeriesXLSX(r io.Reader) ([]models.TimeSeriesPoint, error) {
	rows, err := readFirstSheet(r)
	if err != nil {
		return nil, err
	}
	return parseTimeSeriesRows(rows)
}

func readFirstSheet(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	return rows, nil
}
