package engine

import (
	"sort"

	"github.com/landsight/lulc-backend-go/internal/models"
)

// Persona weight table
const (
	envOfficerEcoOriginWeight = 3.0
	urbanPlannerBuiltUpWeight = 2.0
	policyForestToBuiltWeight = 1.5
	policyWaterOriginWeight   = 2.0
	policyAgriToBuiltWeight   = 1.2
	defaultWeight             = 1.0
)

// FilterRecords applies the scenario focus and minimum-confidence
// threshold to the raw transition records. The input slice is never
// mutated.
func FilterRecords(records []models.TransitionRecord, scenario models.Scenario, minConfidence float64) []models.TransitionRecord {
	filtered := make([]models.TransitionRecord, 0, len(records))
	for _, r := range records {
		if r.Confidence < minConfidence {
			continue
		}
		switch scenario {
		case models.ScenarioUrbanFocus:
			if r.To != models.ClassBuiltUp {
				continue
			}
		case models.ScenarioEcoFocus:
			if r.From != models.ClassForest && r.From != models.ClassWater {
				continue
			}
		}
		filtered = append(filtered, r)
	}
	return filtered
}

// RankPriorities scores each filtered record with the persona weight
// table (impactScore = area x confidence x weight) and sorts by the
// selected rank mode, descending. Sorting is stable, so identical
// inputs always produce identical order.
func RankPriorities(records []models.TransitionRecord, persona models.Persona, mode models.RankMode) []models.PrioritizedRecord {
	ranked := make([]models.PrioritizedRecord, 0, len(records))
	for _, r := range records {
		w := personaWeight(persona, r.Key())
		ranked = append(ranked, models.PrioritizedRecord{
			Record:      r,
			Weight:      w,
			ImpactScore: r.AreaSqKm * r.Confidence * w,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		switch mode {
		case models.RankByArea:
			return ranked[i].Record.AreaSqKm > ranked[j].Record.AreaSqKm
		case models.RankByConfidence:
			return ranked[i].Record.Confidence > ranked[j].Record.Confidence
		default:
			return ranked[i].ImpactScore > ranked[j].ImpactScore
		}
	})
	return ranked
}

// personaWeight returns the impact multiplier for one transition
// pair under the given persona
func personaWeight(persona models.Persona, key models.TransitionKey) float64 {
	switch persona {
	case models.PersonaEnvironmentalOfficer:
		if key.From == models.ClassForest || key.From == models.ClassWater {
			return envOfficerEcoOriginWeight
		}
	case models.PersonaUrbanPlanner:
		if key.To == models.ClassBuiltUp {
			return urbanPlannerBuiltUpWeight
		}
	case models.PersonaPolicyMaker:
		switch {
		case key.From == models.ClassForest && key.To == models.ClassBuiltUp:
			return policyForestToBuiltWeight
		case key.From == models.ClassWater:
			return policyWaterOriginWeight
		case key.From == models.ClassAgriculture && key.To == models.ClassBuiltUp:
			return policyAgriToBuiltWeight
		}
	}
	return defaultWeight
}
