package engine

import (
	"fmt"

	"github.com/landsight/lulc-backend-go/internal/models"
)

// BuildNarrative composes the persona-phrased headline story over
// the top evolution. The persona filter falls back to the unfiltered
// top item when it empties the set. Purely presentational: no new
// scoring happens here.
func BuildNarrative(evolutions []models.TransitionEvolution, persona models.Persona) *models.Narrative {
	if len(evolutions) == 0 {
		return nil
	}

	top := evolutions[0]
	for _, evo := range evolutions {
		if personaFocus(persona, evo.Key) {
			top = evo
			break
		}
	}

	surging := top.Anomaly == models.AnomalySurge || top.Trend == models.TrendAccelerating

	var headline, body string
	switch persona {
	case models.PersonaUrbanPlanner:
		if surging {
			headline = fmt.Sprintf("%s conversion is outpacing plans", top.Key)
			body = fmt.Sprintf("The %s corridor moved %.1f sq km in the latest year, %.1fx its historical baseline. Zoning capacity should be rechecked before the next permitting cycle.", top.Key, top.LatestFlow, top.DeviationRatio)
		} else {
			headline = fmt.Sprintf("%s conversion tracks the plan", top.Key)
			body = fmt.Sprintf("The %s corridor added %.1f sq km in the latest year, in line with its history. No zoning adjustment is indicated.", top.Key, top.LatestFlow)
		}
	case models.PersonaEnvironmentalOfficer:
		if surging {
			headline = fmt.Sprintf("Losses along %s are escalating", top.Key)
			body = fmt.Sprintf("%.1f sq km converted in the latest year, %.1fx the baseline. Conservation resources should move to this front first.", top.LatestFlow, top.DeviationRatio)
		} else {
			headline = fmt.Sprintf("%s pressure is holding steady", top.Key)
			body = fmt.Sprintf("%.1f sq km converted in the latest year, consistent with prior years. Continue monitoring at current cadence.", top.LatestFlow)
		}
	default:
		if surging {
			headline = fmt.Sprintf("%s demands policy attention", top.Key)
			body = fmt.Sprintf("This transition scores %.2f on policy readiness and is running %.1fx its baseline. It is the strongest candidate for intervention this cycle.", top.CPRI, top.DeviationRatio)
		} else {
			headline = fmt.Sprintf("%s leads this cycle's review list", top.Key)
			body = fmt.Sprintf("This transition scores %.2f on policy readiness with stable dynamics. Routine review is sufficient.", top.CPRI)
		}
	}

	return &models.Narrative{
		Persona:  persona,
		Key:      top.Key,
		Headline: headline,
		Body:     body,
	}
}
