package engine

import (
	"fmt"
	"math"

	"github.com/landsight/lulc-backend-go/internal/models"
)

const maxRecommendations = 3

// RecommendActions converts the ranked evolutions into persona-
// tailored interventions. The persona reorders the list with a stable
// partition (never a full resort), the top 3 are kept, and each
// recommendation carries a reproducible 3-line audit trail.
//
// Note the deliberate inversion in the urgency labels: the lowest
// CPRI band is CRITICAL because it represents unresolved risk that
// needs field validation before anything else can move.
func RecommendActions(evolutions []models.TransitionEvolution, persona models.Persona) []models.RecommendedAction {
	ordered := partitionByPersona(evolutions, persona)

	limit := maxRecommendations
	if len(ordered) < limit {
		limit = len(ordered)
	}

	actions := make([]models.RecommendedAction, 0, limit)
	for _, evo := range ordered[:limit] {
		actions = append(actions, buildAction(evo))
	}
	return actions
}

// partitionByPersona surfaces the persona's focus transitions first
// while preserving relative CPRI order within each half
func partitionByPersona(evolutions []models.TransitionEvolution, persona models.Persona) []models.TransitionEvolution {
	if persona == models.PersonaPolicyMaker {
		return evolutions
	}

	focus := make([]models.TransitionEvolution, 0, len(evolutions))
	rest := make([]models.TransitionEvolution, 0, len(evolutions))
	for _, evo := range evolutions {
		if personaFocus(persona, evo.Key) {
			focus = append(focus, evo)
		} else {
			rest = append(rest, evo)
		}
	}
	return append(focus, rest...)
}

// personaFocus reports whether a transition pair is in the persona's
// area of responsibility
func personaFocus(persona models.Persona, key models.TransitionKey) bool {
	switch persona {
	case models.PersonaUrbanPlanner:
		return key.To == models.ClassBuiltUp
	case models.PersonaEnvironmentalOfficer:
		return key.From == models.ClassForest || key.From == models.ClassWater
	default:
		return true
	}
}

func buildAction(evo models.TransitionEvolution) models.RecommendedAction {
	var action, urgency, department, rule string

	switch {
	case evo.CPRI >= cpriReadyThreshold:
		urgency = models.UrgencyImmediate
		rule = fmt.Sprintf("cpri %.2f >= %.2f: ready for action", evo.CPRI, cpriReadyThreshold)
		switch {
		case evo.Key.From == models.ClassForest || evo.Key.From == models.ClassWater:
			department = "Environmental Protection Agency"
			action = fmt.Sprintf("Deploy conservation enforcement for %s conversion", evo.Key)
		case evo.Key.To == models.ClassBuiltUp:
			department = "Urban Development Authority"
			action = fmt.Sprintf("Enforce zoning controls on %s expansion", evo.Key)
		default:
			department = "Land Management Office"
			action = fmt.Sprintf("Initiate land-use enforcement for %s", evo.Key)
		}
	case evo.CPRI >= cpriReviewThreshold:
		urgency = models.UrgencyHigh
		rule = fmt.Sprintf("cpri %.2f >= %.2f: policy review", evo.CPRI, cpriReviewThreshold)
		department = "Planning Committee"
		action = fmt.Sprintf("Schedule committee review of %s trend", evo.Key)
	default:
		urgency = models.UrgencyCritical
		rule = fmt.Sprintf("cpri %.2f < %.2f: critical uncertainty, validate first", evo.CPRI, cpriReviewThreshold)
		department = "Field Operations"
		action = fmt.Sprintf("Dispatch field inspection to validate %s signal", evo.Key)
	}

	latest := evo.Latest()
	trail := []models.AuditEntry{
		{
			Label:  "inputs",
			Detail: "latest_flow_sq_km, latest_confidence, confidence_stable",
			Value:  fmt.Sprintf("%.2f, %.2f, %t", latest.AreaSqKm, latest.Confidence, evo.ConfidenceStable),
		},
		{
			Label:  "cpri",
			Detail: "min(log10(latest_flow+1)/2, 1) * trust_factor * confidence",
			Value:  fmt.Sprintf("%.2f", evo.CPRI),
		},
		{
			Label:  "rule",
			Detail: rule,
			Value:  urgency,
		},
	}

	return models.RecommendedAction{
		Evolution:    evo,
		Action:       action,
		Urgency:      urgency,
		Department:   department,
		ReadinessPct: int(math.Round(evo.CPRI * 100)),
		AuditTrail:   trail,
	}
}
