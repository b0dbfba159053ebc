package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/landsight/lulc-backend-go/internal/models"
)

func record(year int, from, to models.LandClass, area, conf float64) models.TransitionRecord {
	return models.TransitionRecord{Year: year, From: from, To: to, AreaSqKm: area, Confidence: conf}
}

func TestAnalyzeEvolutions(t *testing.T) {
	t.Run("groups by pair and orders history by year", func(t *testing.T) {
		records := []models.TransitionRecord{
			record(2021, models.ClassForest, models.ClassBuiltUp, 6, 0.9),
			record(2019, models.ClassForest, models.ClassBuiltUp, 2, 0.9),
			record(2020, models.ClassAgriculture, models.ClassBuiltUp, 3, 0.8),
			record(2020, models.ClassForest, models.ClassBuiltUp, 2, 0.9),
		}

		evolutions := AnalyzeEvolutions(records)
		require.Len(t, evolutions, 2)

		var forest models.TransitionEvolution
		for _, evo := range evolutions {
			if evo.Key.From == models.ClassForest {
				forest = evo
			}
		}
		require.Len(t, forest.History, 3)
		assert.Equal(t, []int{2019, 2020, 2021},
			[]int{forest.History[0].Year, forest.History[1].Year, forest.History[2].Year})
		assert.InDelta(t, 10.0, forest.TotalVolume, 1e-9)
		assert.InDelta(t, 6.0, forest.LatestFlow, 1e-9)
	})

	t.Run("anomaly and trend bands", func(t *testing.T) {
		records := []models.TransitionRecord{
			record(2019, models.ClassForest, models.ClassBuiltUp, 2, 0.9),
			record(2020, models.ClassForest, models.ClassBuiltUp, 2, 0.9),
			record(2021, models.ClassForest, models.ClassBuiltUp, 6, 0.9),
		}
		evo := AnalyzeEvolutions(records)[0]

		// baseline mean(2,2)=2, latest 6: deviation 3.0
		assert.InDelta(t, 3.0, evo.DeviationRatio, 1e-9)
		assert.Equal(t, models.AnomalySurge, evo.Anomaly)
		assert.Equal(t, models.TrendAccelerating, evo.Trend)
	})

	t.Run("decelerating trend", func(t *testing.T) {
		records := []models.TransitionRecord{
			record(2020, models.ClassAgriculture, models.ClassBuiltUp, 10, 0.9),
			record(2021, models.ClassAgriculture, models.ClassBuiltUp, 8, 0.9),
		}
		evo := AnalyzeEvolutions(records)[0]
		assert.Equal(t, models.TrendDecelerating, evo.Trend)
	})

	t.Run("single record is its own baseline", func(t *testing.T) {
		records := []models.TransitionRecord{
			record(2021, models.ClassWater, models.ClassBarren, 4, 0.7),
		}
		evo := AnalyzeEvolutions(records)[0]
		assert.InDelta(t, 1.0, evo.DeviationRatio, 1e-9)
		assert.Equal(t, models.AnomalyNormal, evo.Anomaly)
		assert.Equal(t, models.TrendStable, evo.Trend)
	})

	t.Run("zero baseline defaults deviation to one", func(t *testing.T) {
		records := []models.TransitionRecord{
			record(2020, models.ClassWater, models.ClassBarren, 0, 0.7),
			record(2021, models.ClassWater, models.ClassBarren, 4, 0.7),
		}
		evo := AnalyzeEvolutions(records)[0]
		assert.InDelta(t, 1.0, evo.DeviationRatio, 1e-9)
	})

	t.Run("confidence stability window", func(t *testing.T) {
		stable := AnalyzeEvolutions([]models.TransitionRecord{
			record(2020, models.ClassForest, models.ClassBuiltUp, 2, 0.85),
			record(2021, models.ClassForest, models.ClassBuiltUp, 2, 0.90),
		})[0]
		assert.True(t, stable.ConfidenceStable)

		unstable := AnalyzeEvolutions([]models.TransitionRecord{
			record(2020, models.ClassForest, models.ClassBuiltUp, 2, 0.70),
			record(2021, models.ClassForest, models.ClassBuiltUp, 2, 0.90),
		})[0]
		assert.False(t, unstable.ConfidenceStable)
	})

	t.Run("cpri formula and readiness band", func(t *testing.T) {
		// log10(9+1)/2 = 0.5, stable, confidence 0.9: cpri 0.45
		records := []models.TransitionRecord{
			record(2021, models.ClassForest, models.ClassBuiltUp, 9, 0.9),
		}
		evo := AnalyzeEvolutions(records)[0]
		assert.InDelta(t, 0.45, evo.CPRI, 1e-9)
		assert.Equal(t, models.ReadinessPolicyReview, evo.Readiness)
	})

	t.Run("unstable confidence applies the 0.8 trust factor", func(t *testing.T) {
		records := []models.TransitionRecord{
			record(2020, models.ClassForest, models.ClassBuiltUp, 9, 0.70),
			record(2021, models.ClassForest, models.ClassBuiltUp, 9, 0.90),
		}
		evo := AnalyzeEvolutions(records)[0]
		// 0.5 * 0.8 * 0.9 = 0.36
		assert.InDelta(t, 0.36, evo.CPRI, 1e-9)
		assert.Equal(t, models.ReadinessFieldValidation, evo.Readiness)
	})
}

func TestAnalyzeEvolutionsInvariants(t *testing.T) {
	records := []models.TransitionRecord{
		record(2019, models.ClassForest, models.ClassBuiltUp, 2, 0.9),
		record(2021, models.ClassForest, models.ClassBuiltUp, 6, 0.92),
		record(2020, models.ClassAgriculture, models.ClassBuiltUp, 12, 0.85),
		record(2021, models.ClassAgriculture, models.ClassBuiltUp, 14, 0.88),
		record(2021, models.ClassWater, models.ClassBarren, 0.4, 0.55),
		record(2021, models.ClassForest, models.ClassAgriculture, 1.2, 0.65),
	}

	evolutions := AnalyzeEvolutions(records)
	require.Len(t, evolutions, 4)

	t.Run("cpri stays in unit interval", func(t *testing.T) {
		for _, evo := range evolutions {
			assert.GreaterOrEqual(t, evo.CPRI, 0.0)
			assert.LessOrEqual(t, evo.CPRI, 1.0)
			assert.GreaterOrEqual(t, evo.DeviationRatio, 0.0)
		}
	})

	t.Run("sorted non-increasing by cpri", func(t *testing.T) {
		for i := 1; i < len(evolutions); i++ {
			assert.GreaterOrEqual(t, evolutions[i-1].CPRI, evolutions[i].CPRI)
		}
	})

	t.Run("inputs are not mutated", func(t *testing.T) {
		// first record still holds its original year after the
		// per-group sort
		assert.Equal(t, 2019, records[0].Year)
		assert.Equal(t, 2021, records[1].Year)
	})

	t.Run("deterministic across recomputes", func(t *testing.T) {
		assert.Equal(t, evolutions, AnalyzeEvolutions(records))
	})
}
