package engine

import (
	"github.com/landsight/lulc-backend-go/internal/models"
	"github.com/landsight/lulc-backend-go/internal/stats"
)

// Acceleration bands in sq km / year^2
const (
	rapidShiftThreshold = 0.5
)

// Confidence std-dev bands
const (
	unstableStdDev = 0.10
	moderateStdDev = 0.05
)

// AnalyzeVelocity computes the first difference (velocity) and second
// difference (acceleration) of a trend series. Requires at least 3
// points; returns nil otherwise.
func AnalyzeVelocity(trend models.TrendSeries) *models.VelocityReport {
	n := trend.Len()
	if n < 3 {
		return nil
	}

	velocity := rate(trend.Years[n-2], trend.Years[n-1], trend.Areas[n-2], trend.Areas[n-1])
	prevVelocity := rate(trend.Years[n-3], trend.Years[n-2], trend.Areas[n-3], trend.Areas[n-2])
	acceleration := velocity - prevVelocity

	status := models.VelocityStable
	switch {
	case acceleration > rapidShiftThreshold:
		status = models.VelocityRapidAcceleration
	case acceleration > 0:
		status = models.VelocityAccelerating
	case acceleration < -rapidShiftThreshold:
		status = models.VelocityRapidDeceleration
	case acceleration < 0:
		status = models.VelocityDecelerating
	}

	return &models.VelocityReport{
		Velocity:     velocity,
		Acceleration: acceleration,
		Status:       status,
	}
}

// AssessConfidenceStability measures the spread of detection
// confidence across years for one class. Zero (missing) confidence
// values are excluded; at least 2 remaining values are required.
func AssessConfidenceStability(trend models.TrendSeries) *models.ConfidenceStability {
	var values []float64
	for _, c := range trend.Confidences {
		if c > 0 {
			values = append(values, c)
		}
	}
	if len(values) < 2 {
		return nil
	}

	stdDev := stats.PopulationStdDev(values)

	level := models.StabilityHigh
	switch {
	case stdDev > unstableStdDev:
		level = models.StabilityUnstable
	case stdDev > moderateStdDev:
		level = models.StabilityModerate
	}

	return &models.ConfidenceStability{
		StdDev: stdDev,
		Score:  1 - stdDev,
		Level:  level,
	}
}
