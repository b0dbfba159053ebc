package engine

import (
	"math"
	"sort"

	"github.com/landsight/lulc-backend-go/internal/models"
)

// AllocateSurveyBudget selects field-survey sites among the
// FieldValidation-band evolutions (cpri below the review threshold).
// Candidates are ordered by latest flow descending — volume risk, not
// ambiguity, drives selection — and the top floor(budget/costPerSite)
// are funded. A zero or negative budget yields an empty selection.
func AllocateSurveyBudget(evolutions []models.TransitionEvolution, budget, costPerSite float64) *models.SurveyAllocation {
	var candidates []models.SurveyTask
	for _, evo := range evolutions {
		if evo.CPRI >= cpriReviewThreshold {
			continue
		}
		latest := evo.Latest()
		candidates = append(candidates, models.SurveyTask{
			ID:         latest.ID(),
			From:       evo.Key.From,
			To:         evo.Key.To,
			Confidence: latest.Confidence,
			AreaSqKm:   evo.LatestFlow,
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].AreaSqKm > candidates[j].AreaSqKm
	})

	maxSites := 0
	if budget > 0 && costPerSite > 0 {
		maxSites = int(math.Floor(budget / costPerSite))
	}

	selectCount := maxSites
	if selectCount > len(candidates) {
		selectCount = len(candidates)
	}

	selected := make([]models.SurveyTask, selectCount)
	copy(selected, candidates[:selectCount])
	deferred := len(candidates) - selectCount

	return &models.SurveyAllocation{
		Selected:      selected,
		DeferredCount: deferred,
		TotalCost:     float64(selectCount) * costPerSite,
		ShortfallCost: float64(deferred) * costPerSite,
		MaxSites:      maxSites,
	}
}
