package engine

import (
	"math"
	"sort"

	"github.com/landsight/lulc-backend-go/internal/models"
	"github.com/landsight/lulc-backend-go/internal/stats"
)

// Anomaly and trend bands
const (
	surgeDeviationRatio    = 2.0
	elevatedDeviationRatio = 1.3

	acceleratingGrowthFactor = 1.15
	deceleratingGrowthFactor = 0.85

	confidenceStableSpread = 0.10
)

// CPRI bands
const (
	cpriReadyThreshold  = 0.75
	cpriReviewThreshold = 0.45

	cpriTrustStable   = 1.0
	cpriTrustUnstable = 0.8
)

// AnalyzeEvolutions groups transition records by (from, to) pair and
// derives the per-pair history metrics: cumulative volume, anomaly
// deviation, trend classification and the CPRI readiness score. The
// result is sorted descending by CPRI; ties keep prior relative
// order. Input records are never mutated.
func AnalyzeEvolutions(records []models.TransitionRecord) []models.TransitionEvolution {
	groups := make(map[models.TransitionKey][]models.TransitionRecord)
	var order []models.TransitionKey
	for _, r := range records {
		key := r.Key()
		if _, ok := groups[key]; !ok {
			order = append(order, key)
		}
		groups[key] = append(groups[key], r)
	}

	evolutions := make([]models.TransitionEvolution, 0, len(order))
	for _, key := range order {
		history := make([]models.TransitionRecord, len(groups[key]))
		copy(history, groups[key])
		sort.SliceStable(history, func(i, j int) bool {
			return history[i].Year < history[j].Year
		})
		evolutions = append(evolutions, buildEvolution(key, history))
	}

	sort.SliceStable(evolutions, func(i, j int) bool {
		return evolutions[i].CPRI > evolutions[j].CPRI
	})
	return evolutions
}

func buildEvolution(key models.TransitionKey, history []models.TransitionRecord) models.TransitionEvolution {
	latest := history[len(history)-1]

	var volume float64
	var confidences []float64
	for _, r := range history {
		volume += r.AreaSqKm
		confidences = append(confidences, r.Confidence)
	}

	// Baseline = mean of all records before the latest; with no
	// prior history the latest record is its own baseline
	baseline := latest.AreaSqKm
	if len(history) > 1 {
		var prior []float64
		for _, r := range history[:len(history)-1] {
			prior = append(prior, r.AreaSqKm)
		}
		baseline = stats.Mean(prior)
	}

	deviation := 1.0
	if baseline != 0 {
		deviation = latest.AreaSqKm / baseline
	}

	anomaly := models.AnomalyNormal
	switch {
	case deviation > surgeDeviationRatio:
		anomaly = models.AnomalySurge
	case deviation > elevatedDeviationRatio:
		anomaly = models.AnomalyElevated
	}

	trend := models.TrendStable
	if len(history) >= 2 {
		prev := history[len(history)-2].AreaSqKm
		switch {
		case latest.AreaSqKm > prev*acceleratingGrowthFactor:
			trend = models.TrendAccelerating
		case latest.AreaSqKm < prev*deceleratingGrowthFactor:
			trend = models.TrendDecelerating
		}
	}

	confidenceStable := stats.Max(confidences)-stats.Min(confidences) < confidenceStableSpread

	cpri := computeCPRI(latest.AreaSqKm, latest.Confidence, confidenceStable)

	readiness := models.ReadinessFieldValidation
	switch {
	case cpri >= cpriReadyThreshold:
		readiness = models.ReadinessReadyForAction
	case cpri >= cpriReviewThreshold:
		readiness = models.ReadinessPolicyReview
	}

	return models.TransitionEvolution{
		Key:              key,
		History:          history,
		TotalVolume:      volume,
		LatestFlow:       latest.AreaSqKm,
		Trend:            trend,
		DeviationRatio:   deviation,
		Anomaly:          anomaly,
		ConfidenceStable: confidenceStable,
		CPRI:             cpri,
		Readiness:        readiness,
	}
}

// computeCPRI derives the Composite Policy Readiness Index:
// normalized impact x temporal trust x detection confidence, rounded
// to 2 decimals. Stays in [0,1] by construction.
func computeCPRI(latestArea, confidence float64, confidenceStable bool) float64 {
	normalizedImpact := math.Min(math.Log10(latestArea+1)/2, 1)
	trustFactor := cpriTrustUnstable
	if confidenceStable {
		trustFactor = cpriTrustStable
	}
	return math.Round(normalizedImpact*trustFactor*confidence*100) / 100
}
