package engine

import (
	"github.com/landsight/lulc-backend-go/internal/models"
)

// Projection constants
const (
	projectionHorizonYears = 2
	maxIntensityReduction  = 0.60 // 60% rate cut at full policy intensity

	projectionCriticalIncrease = 10.0
	projectionHighIncrease     = 5.0
)

// SimulateProjection extrapolates the Built-up trend two years
// forward. The policy intensity parameter (0-100) reduces the annual
// rate by up to 60%. At intensity 0 the unmitigated baseline is
// reproduced exactly. Requires at least 3 distinct years.
func SimulateProjection(series []models.TimeSeriesPoint, intensity float64) *models.FutureProjection {
	builtUp := ExtractTrend(series, models.ClassBuiltUp)
	n := builtUp.Len()
	if n < 3 {
		return nil
	}

	// Baseline annual rate over the last 3 observed years
	start := n - 3
	baselineRate := rate(builtUp.Years[start], builtUp.Years[n-1], builtUp.Areas[start], builtUp.Areas[n-1])

	reduction := intensity / 100 * maxIntensityReduction
	adjustedRate := baselineRate * (1 - reduction)

	increase := adjustedRate * projectionHorizonYears

	risk := models.RiskLow
	switch {
	case increase > projectionCriticalIncrease:
		risk = models.RiskCritical
	case increase > projectionHighIncrease:
		risk = models.RiskHigh
	}

	projection := &models.FutureProjection{
		TargetYear:        builtUp.Years[n-1] + projectionHorizonYears,
		BaselineRate:      baselineRate,
		AdjustedRate:      adjustedRate,
		ProjectedArea:     builtUp.Areas[n-1] + increase,
		ProjectedIncrease: increase,
		RiskLevel:         risk,
	}

	if intensity > 0 {
		// Counterfactual: area spared versus the unmitigated path
		saved := baselineRate*projectionHorizonYears - increase
		projection.SavedArea = &saved
	}

	return projection
}
