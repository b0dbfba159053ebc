package service

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/landsight/lulc-backend-go/internal/ingest"
	"github.com/landsight/lulc-backend-go/internal/models"
	"github.com/landsight/lulc-backend-go/internal/repository"
)

// DatasetService handles ingestion and retrieval of the two input tables
type DatasetService struct {
	datasetRepo *repository.DatasetRepository
}

// NewDatasetService creates a new dataset service
func NewDatasetService(datasetRepo *repository.DatasetRepository) *DatasetService {
	return &DatasetService{
		datasetRepo: datasetRepo,
	}
}

// ImportTransitions parses and stores an uploaded transitions table,
// replacing the previous one. The format is derived from the file
// name extension (.csv or .xlsx).
func (s *DatasetService) ImportTransitions(r io.Reader, filename string) (int, error) {
	var records []models.TransitionRecord
	var err error

	switch fileFormat(filename) {
	case "csv":
		records, err = ingest.ReadTransitionsCSV(r)
	case "xlsx":
		records, err = ingest.ReadTransitionsXLSX(r)
	default:
		return 0, fmt.Errorf("unsupported file format: %s", filename)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to parse transitions: %w", err)
	}

	if err := s.datasetRepo.ReplaceTransitions(records); err != nil {
		return 0, fmt.Errorf("failed to store transitions: %w", err)
	}
	return len(records), nil
}

// ImportTimeSeries parses and stores an uploaded time series table,
// replacing the previous one
func (s *DatasetService) ImportTimeSeries(r io.Reader, filename string) (int, error) {
	var points []models.TimeSeriesPoint
	var err error

	switch fileFormat(filename) {
	case "csv":
		points, err = ingest.ReadTimeSeriesCSV(r)
	case "xlsx":
		points, err = ingest.ReadTimeSeriesXLSX(r)
	default:
		return 0, fmt.Errorf("unsupported file format: %s", filename)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to parse time series: %w", err)
	}

	if err := s.datasetRepo.ReplaceTimeSeries(points); err != nil {
		return 0, fmt.Errorf("failed to store time series: %w", err)
	}
	return len(points), nil
}

// GetTransitions returns all stored transition records
func (s *DatasetService) GetTransitions() ([]models.TransitionRecord, error) {
	return s.datasetRepo.GetTransitions()
}

// GetTimeSeries returns all stored time series points
func (s *DatasetService) GetTimeSeries() ([]models.TimeSeriesPoint, error) {
	return s.datasetRepo.GetTimeSeries()
}

// GetDatasetInfo returns version and row counts for both tables
func (s *DatasetService) GetDatasetInfo() ([]repository.DatasetInfo, error) {
	return s.datasetRepo.GetDatasetInfo()
}

func fileFormat(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return "csv"
	case ".xlsx":
		return "xlsx"
	default:
		return ""
	}
}
