package engine

import (
	"math"

	"github.com/landsight/lulc-backend-go/internal/models"
)

// Trust score weights and bands
const (
	trustStabilityWeight   = 0.4
	trustConsistencyWeight = 0.4
	trustMagnitudeWeight   = 0.2

	trustMagnitudeFullScale = 50.0 // sq km of Built-up area scoring 1.0

	trustHighThreshold = 85
	trustLowThreshold  = 60
)

// ScoreTrust derives the composite 0-100 data reliability index from
// confidence stability, trend monotonicity and magnitude of the
// Built-up series. Requires at least 2 distinct years.
func ScoreTrust(series []models.TimeSeriesPoint) *models.TrustScore {
	builtUp := ExtractTrend(series, models.ClassBuiltUp)
	n := builtUp.Len()
	if n < 2 {
		return nil
	}

	stabilityScore := 0.0
	if stability := AssessConfidenceStability(builtUp); stability != nil {
		stabilityScore = stability.Score
	}

	// Fraction of consecutive year pairs where Built-up area does
	// not decrease
	nonDecreasing := 0
	for i := 1; i < n; i++ {
		if builtUp.Areas[i] >= builtUp.Areas[i-1] {
			nonDecreasing++
		}
	}
	consistencyScore := float64(nonDecreasing) / float64(n-1)

	magnitudeScore := math.Min(builtUp.Areas[n-1]/trustMagnitudeFullScale, 1.0)

	raw := trustStabilityWeight*stabilityScore +
		trustConsistencyWeight*consistencyScore +
		trustMagnitudeWeight*magnitudeScore
	score := int(math.Round(raw * 100))

	level := models.TrustModerate
	switch {
	case score >= trustHighThreshold:
		level = models.TrustHigh
	case score <= trustLowThreshold:
		level = models.TrustLow
	}

	return &models.TrustScore{
		StabilityScore:   stabilityScore,
		ConsistencyScore: consistencyScore,
		MagnitudeScore:   magnitudeScore,
		Score:            score,
		Level:            level,
	}
}
