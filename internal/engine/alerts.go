package engine

import (
	"fmt"

	"github.com/landsight/lulc-backend-go/internal/models"
)

// Governance rule thresholds
const (
	ecoAlertConfidence  = 0.80
	sprawlAlertAreaSqKm = 5.0
	dataGapConfidence   = 0.60
	dataGapRecordCount  = 2
	bdiSpikeThreshold   = 1.5
	bdiAccelThreshold   = 1.2
)

// EvaluateAlerts runs the four independent governance rules over the
// raw inputs. Rules accumulate independently; an empty result is the
// valid "no alerts" state.
func EvaluateAlerts(records []models.TransitionRecord, series []models.TimeSeriesPoint, persona models.Persona) []models.Alert {
	alerts := []models.Alert{}

	if alert := ecoRiskAlert(records, persona); alert != nil {
		alerts = append(alerts, *alert)
	}
	if alert := sprawlAlert(records); alert != nil {
		alerts = append(alerts, *alert)
	}
	if alert := dataGapAlert(records); alert != nil {
		alerts = append(alerts, *alert)
	}
	if alert := growthSpikeAlert(series); alert != nil {
		alerts = append(alerts, *alert)
	}

	return alerts
}

// Rule 1: high-confidence conversion of Forest/Water into Built-up or
// Barren land
func ecoRiskAlert(records []models.TransitionRecord, persona models.Persona) *models.Alert {
	var hits []models.TransitionRecord
	for _, r := range records {
		ecoOrigin := r.From == models.ClassForest || r.From == models.ClassWater
		hardDest := r.To == models.ClassBuiltUp || r.To == models.ClassBarren
		if ecoOrigin && hardDest && r.Confidence > ecoAlertConfidence {
			hits = append(hits, r)
		}
	}
	if len(hits) == 0 {
		return nil
	}

	description := fmt.Sprintf("%d high-confidence conversions of ecological land detected", len(hits))
	if persona == models.PersonaEnvironmentalOfficer {
		description = fmt.Sprintf("%d confirmed ecological losses require conservation response", len(hits))
	}

	return &models.Alert{
		Severity:    models.SeverityHigh,
		Title:       "High Ecological Risk",
		Description: description,
		Records:     hits,
	}
}

// Rule 2: cumulative Agriculture to Built-up conversion above the
// sprawl threshold
func sprawlAlert(records []models.TransitionRecord) *models.Alert {
	var total float64
	for _, r := range records {
		if r.From == models.ClassAgriculture && r.To == models.ClassBuiltUp {
			total += r.AreaSqKm
		}
	}
	if total <= sprawlAlertAreaSqKm {
		return nil
	}

	return &models.Alert{
		Severity:    models.SeverityMedium,
		Title:       "Urban Sprawl Pressure",
		Description: fmt.Sprintf("%.1f sq km of agricultural land converted to built-up area", total),
	}
}

// Rule 3: too many low-confidence detections to trust the picture
func dataGapAlert(records []models.TransitionRecord) *models.Alert {
	count := 0
	for _, r := range records {
		if r.Confidence < dataGapConfidence {
			count++
		}
	}
	if count <= dataGapRecordCount {
		return nil
	}

	return &models.Alert{
		Severity:    models.SeverityLow,
		Title:       "Data Quality Gap",
		Description: fmt.Sprintf("%d transition records fall below %.0f%% detection confidence", count, dataGapConfidence*100),
	}
}

// Rule 4: Baseline Deviation Index on the Built-up trend
func growthSpikeAlert(series []models.TimeSeriesPoint) *models.Alert {
	builtUp := ExtractTrend(series, models.ClassBuiltUp)
	bdi, ok := BaselineDeviationIndex(builtUp)
	if !ok {
		return nil
	}

	switch {
	case bdi > bdiSpikeThreshold:
		return &models.Alert{
			Severity:    models.SeverityHigh,
			Title:       "Abnormal Growth Spike",
			Description: fmt.Sprintf("Recent Built-up growth is %.2fx the historical baseline rate", bdi),
		}
	case bdi > bdiAccelThreshold:
		return &models.Alert{
			Severity:    models.SeverityMedium,
			Title:       "Growth Acceleration",
			Description: fmt.Sprintf("Recent Built-up growth is %.2fx the historical baseline rate", bdi),
		}
	}
	return nil
}

// BaselineDeviationIndex is the ratio of the most recent annual
// growth rate to the historical baseline rate of a trend series.
// Requires at least 4 yearly points; ok is false otherwise. A zero
// baseline rate yields 0 rather than dividing by zero.
func BaselineDeviationIndex(trend models.TrendSeries) (float64, bool) {
	n := trend.Len()
	if n < 4 {
		return 0, false
	}

	baselineRate := rate(trend.Years[0], trend.Years[n-2], trend.Areas[0], trend.Areas[n-2])
	recentRate := rate(trend.Years[n-2], trend.Years[n-1], trend.Areas[n-2], trend.Areas[n-1])

	if baselineRate == 0 {
		return 0, true
	}
	return recentRate / baselineRate, true
}
