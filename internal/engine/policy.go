package engine

import (
	"fmt"
	"math"

	"github.com/landsight/lulc-backend-go/internal/models"
)

// Rate-change bands in sq km / year
const (
	containmentThreshold   = -1.0
	policyFailureThreshold = 1.0
)

// EvaluatePolicy compares the Built-up growth rate of the first two
// observed years (pre-intervention) against the last two (post-
// intervention). Requires at least 4 distinct years.
func EvaluatePolicy(series []models.TimeSeriesPoint) *models.PolicyEvaluation {
	builtUp := ExtractTrend(series, models.ClassBuiltUp)
	n := builtUp.Len()
	if n < 4 {
		return nil
	}

	preRate := rate(builtUp.Years[0], builtUp.Years[1], builtUp.Areas[0], builtUp.Areas[1])
	postRate := rate(builtUp.Years[n-2], builtUp.Years[n-1], builtUp.Areas[n-2], builtUp.Areas[n-1])
	rateChange := postRate - preRate

	assessment := models.PolicySteadyState
	summary := fmt.Sprintf("Growth rate steady: change of %.2f sq km/yr is within the neutral band", rateChange)
	switch {
	case rateChange < containmentThreshold:
		assessment = models.PolicyEffectiveContainment
		summary = fmt.Sprintf("Growth slowed by %.2f sq km/yr after intervention", math.Abs(rateChange))
	case rateChange > policyFailureThreshold:
		assessment = models.PolicyFailure
		summary = fmt.Sprintf("Growth accelerated by %.2f sq km/yr despite intervention", rateChange)
	}

	return &models.PolicyEvaluation{
		PreRate:    preRate,
		PostRate:   postRate,
		RateChange: rateChange,
		Assessment: assessment,
		Summary:    summary,
	}
}
