package engine

import (
	"github.com/landsight/lulc-backend-go/internal/models"
)

// Eco-loss classification thresholds (sq km over the observed span)
const (
	ecoLossRapidThreshold      = 20.0
	ecoLossDecliningThreshold  = 5.0
	ecoGainRecoveringThreshold = -1.0
)

// AssessEcoRisk compares baseline-year and current-year Forest and
// Water areas. Returns nil when fewer than 2 distinct years are
// available; consumers treat nil as "no assessment".
func AssessEcoRisk(series []models.TimeSeriesPoint) *models.EcoRiskAssessment {
	if len(DistinctYears(series)) < 2 {
		return nil
	}

	forest := ExtractTrend(series, models.ClassForest)
	water := ExtractTrend(series, models.ClassWater)

	n := forest.Len()
	forestLoss := forest.Areas[0] - forest.Areas[n-1]
	waterLoss := water.Areas[0] - water.Areas[n-1]
	totalLoss := forestLoss + waterLoss

	trend := models.EcoTrendStable
	switch {
	case totalLoss > ecoLossRapidThreshold:
		trend = models.EcoTrendRapidDegradation
	case totalLoss > ecoLossDecliningThreshold:
		trend = models.EcoTrendDeclining
	case totalLoss < ecoGainRecoveringThreshold:
		trend = models.EcoTrendRecovering
	}

	return &models.EcoRiskAssessment{
		ForestLoss:    forestLoss,
		WaterLoss:     waterLoss,
		TotalEcoLoss:  totalLoss,
		Trend:         trend,
		ForestLossPct: lossPercent(forestLoss, forest.Areas[0]),
		WaterLossPct:  lossPercent(waterLoss, water.Areas[0]),
	}
}

// lossPercent guards a zero baseline to 0% instead of propagating Inf
func lossPercent(loss, baseline float64) float64 {
	if baseline == 0 {
		return 0
	}
	return loss / baseline * 100
}
