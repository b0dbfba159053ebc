package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/landsight/lulc-backend-go/internal/models"
)

func TestFilterRecords(t *testing.T) {
	records := []models.TransitionRecord{
		record(2021, models.ClassForest, models.ClassBuiltUp, 3, 0.9),
		record(2021, models.ClassAgriculture, models.ClassBuiltUp, 4, 0.5),
		record(2021, models.ClassWater, models.ClassBarren, 1, 0.8),
		record(2021, models.ClassAgriculture, models.ClassBarren, 2, 0.7),
	}

	t.Run("all scenario keeps everything above the confidence bar", func(t *testing.T) {
		filtered := FilterRecords(records, models.ScenarioAll, 0.6)
		assert.Len(t, filtered, 3)
	})

	t.Run("urban focus keeps built-up destinations", func(t *testing.T) {
		filtered := FilterRecords(records, models.ScenarioUrbanFocus, 0)
		require.Len(t, filtered, 2)
		for _, r := range filtered {
			assert.Equal(t, models.ClassBuiltUp, r.To)
		}
	})

	t.Run("eco focus keeps forest and water origins", func(t *testing.T) {
		filtered := FilterRecords(records, models.ScenarioEcoFocus, 0)
		require.Len(t, filtered, 2)
	})

	t.Run("filters compose", func(t *testing.T) {
		filtered := FilterRecords(records, models.ScenarioUrbanFocus, 0.6)
		require.Len(t, filtered, 1)
		assert.Equal(t, models.ClassForest, filtered[0].From)
	})

	t.Run("input is not mutated", func(t *testing.T) {
		FilterRecords(records, models.ScenarioEcoFocus, 0.9)
		assert.Len(t, records, 4)
	})
}

func TestRankPriorities(t *testing.T) {
	records := []models.TransitionRecord{
		record(2021, models.ClassForest, models.ClassBuiltUp, 4, 0.9),      // policy weight 1.5
		record(2021, models.ClassWater, models.ClassAgriculture, 5, 0.8),   // policy weight 2.0
		record(2021, models.ClassAgriculture, models.ClassBuiltUp, 6, 0.9), // policy weight 1.2
		record(2021, models.ClassBarren, models.ClassAgriculture, 9, 0.9),  // policy weight 1.0
	}

	t.Run("policy maker fixed domain weights", func(t *testing.T) {
		ranked := RankPriorities(records, models.PersonaPolicyMaker, models.RankByImpact)
		require.Len(t, ranked, 4)

		// 9*0.9*1.0=8.1 > 5*0.8*2.0=8.0 > 6*0.9*1.2=6.48 > 4*0.9*1.5=5.4
		assert.Equal(t, models.ClassBarren, ranked[0].Record.From)
		assert.InDelta(t, 8.1, ranked[0].ImpactScore, 1e-9)
		assert.Equal(t, models.ClassWater, ranked[1].Record.From)
		assert.InDelta(t, 8.0, ranked[1].ImpactScore, 1e-9)
		assert.Equal(t, models.ClassAgriculture, ranked[2].Record.From)
		assert.Equal(t, models.ClassForest, ranked[3].Record.From)
	})

	t.Run("environmental officer triples eco origins", func(t *testing.T) {
		ranked := RankPriorities(records, models.PersonaEnvironmentalOfficer, models.RankByImpact)
		assert.Equal(t, 3.0, ranked[0].Weight)
		assert.Equal(t, models.ClassWater, ranked[0].Record.From)
	})

	t.Run("urban planner doubles built-up destinations", func(t *testing.T) {
		ranked := RankPriorities(records, models.PersonaUrbanPlanner, models.RankByImpact)
		// 6*0.9*2=10.8 ranks first
		assert.Equal(t, models.ClassAgriculture, ranked[0].Record.From)
		assert.Equal(t, 2.0, ranked[0].Weight)
	})

	t.Run("alternate rank modes ignore weighting", func(t *testing.T) {
		byArea := RankPriorities(records, models.PersonaPolicyMaker, models.RankByArea)
		assert.InDelta(t, 9.0, byArea[0].Record.AreaSqKm, 1e-9)

		byConfidence := RankPriorities(records, models.PersonaPolicyMaker, models.RankByConfidence)
		assert.InDelta(t, 0.9, byConfidence[0].Record.Confidence, 1e-9)
	})

	t.Run("identical inputs yield identical order", func(t *testing.T) {
		first := RankPriorities(records, models.PersonaPolicyMaker, models.RankByImpact)
		for i := 0; i < 5; i++ {
			assert.Equal(t, first, RankPriorities(records, models.PersonaPolicyMaker, models.RankByImpact))
		}
	})
}
