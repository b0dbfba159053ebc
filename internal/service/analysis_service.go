package service

import (
	"fmt"
	"sync"
	"time"

	"github.com/landsight/lulc-backend-go/internal/engine"
	"github.com/landsight/lulc-backend-go/internal/models"
	"github.com/landsight/lulc-backend-go/internal/repository"
)

// AnalysisService runs the derivation pipeline over the stored
// datasets. The last snapshot is memoized keyed by (dataset version,
// params); memoization is a pure optimization and never changes
// observable results.
type AnalysisService struct {
	datasetRepo *repository.DatasetRepository

	mu        sync.Mutex
	cachedKey snapshotKey
	cached    *models.Snapshot
}

type snapshotKey struct {
	version int64
	params  models.Params
}

// NewAnalysisService creates a new analysis service
func NewAnalysisService(datasetRepo *repository.DatasetRepository) *AnalysisService {
	return &AnalysisService{
		datasetRepo: datasetRepo,
	}
}

// Snapshot recomputes (or returns the memoized) full derivation for
// the given parameter set
func (s *AnalysisService) Snapshot(params models.Params) (*models.Snapshot, error) {
	version, err := s.datasetRepo.Version()
	if err != nil {
		return nil, err
	}
	key := snapshotKey{version: version, params: params}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cached != nil && s.cachedKey == key {
		return s.cached, nil
	}

	records, err := s.datasetRepo.GetTransitions()
	if err != nil {
		return nil, fmt.Errorf("failed to load transitions: %w", err)
	}
	series, err := s.datasetRepo.GetTimeSeries()
	if err != nil {
		return nil, fmt.Errorf("failed to load time series: %w", err)
	}

	snapshot := engine.Recompute(records, series, params)
	snapshot.GeneratedAt = time.Now().UTC().Format(time.RFC3339)

	s.cachedKey = key
	s.cached = &snapshot
	return s.cached, nil
}

// Trend returns the yearly series for one class
func (s *AnalysisService) Trend(class models.LandClass) (models.TrendSeries, error) {
	series, err := s.datasetRepo.GetTimeSeries()
	if err != nil {
		return models.TrendSeries{}, fmt.Errorf("failed to load time series: %w", err)
	}
	return engine.ExtractTrend(series, class), nil
}

// Velocity returns the velocity report and confidence stability for
// one class. Either may be nil when the series is too short.
func (s *AnalysisService) Velocity(class models.LandClass) (*models.VelocityReport, *models.ConfidenceStability, error) {
	series, err := s.datasetRepo.GetTimeSeries()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load time series: %w", err)
	}
	trend := engine.ExtractTrend(series, class)
	return engine.AnalyzeVelocity(trend), engine.AssessConfidenceStability(trend), nil
}
