// Package engine implements the pure derivation pipeline that turns
// the two input tables (transition records and the per-class time
// series) plus an immutable parameter set into ranked, explainable
// planning metrics. Every function here is side-effect free: inputs
// are never mutated, no I/O happens, and the same inputs always
// produce the same outputs. Minimum-data guards return nil sentinels
// instead of errors.
package engine

import (
	"github.com/landsight/lulc-backend-go/internal/models"
)

// Recompute derives the full output boundary in one synchronous
// pass. GeneratedAt is left for the caller to stamp, keeping this
// function deterministic.
func Recompute(records []models.TransitionRecord, series []models.TimeSeriesPoint, params models.Params) models.Snapshot {
	filtered := FilterRecords(records, params.Scenario, params.MinConfidence)
	builtUp := ExtractTrend(series, models.ClassBuiltUp)
	evolutions := AnalyzeEvolutions(records)

	return models.Snapshot{
		EcoRisk:    AssessEcoRisk(series),
		Policy:     EvaluatePolicy(series),
		Projection: SimulateProjection(series, params.PolicyIntensity),
		Velocity:   AnalyzeVelocity(builtUp),
		Stability:  AssessConfidenceStability(builtUp),
		Trust:      ScoreTrust(series),
		Evolutions: evolutions,
		Actions:    RecommendActions(evolutions, params.Persona),
		Alerts:     EvaluateAlerts(records, series, params.Persona),
		Priorities: RankPriorities(filtered, params.Persona, params.RankMode),
		Survey:     AllocateSurveyBudget(evolutions, params.Budget, params.CostPerSite),
		Narrative:  BuildNarrative(evolutions, params.Persona),
	}
}
