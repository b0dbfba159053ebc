package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/landsight/lulc-backend-go/internal/models"
)

func TestBuildNarrative(t *testing.T) {
	t.Run("nil for empty evolutions", func(t *testing.T) {
		assert.Nil(t, BuildNarrative(nil, models.PersonaPolicyMaker))
	})

	t.Run("persona filter picks the first matching evolution", func(t *testing.T) {
		evolutions := []models.TransitionEvolution{
			evoFixture(models.ClassAgriculture, models.ClassBuiltUp, 0.70, 20, 0.9),
			evoFixture(models.ClassForest, models.ClassAgriculture, 0.50, 5, 0.8),
		}
		narrative := BuildNarrative(evolutions, models.PersonaEnvironmentalOfficer)
		require.NotNil(t, narrative)
		assert.Equal(t, models.ClassForest, narrative.Key.From)
	})

	t.Run("falls back to unfiltered top when the filter empties the set", func(t *testing.T) {
		evolutions := []models.TransitionEvolution{
			evoFixture(models.ClassAgriculture, models.ClassBarren, 0.70, 20, 0.9),
			evoFixture(models.ClassBarren, models.ClassAgriculture, 0.50, 5, 0.8),
		}
		narrative := BuildNarrative(evolutions, models.PersonaEnvironmentalOfficer)
		require.NotNil(t, narrative)
		assert.Equal(t, models.ClassAgriculture, narrative.Key.From)
	})

	t.Run("surging phrasing follows anomaly state", func(t *testing.T) {
		surging := evoFixture(models.ClassForest, models.ClassBuiltUp, 0.70, 20, 0.9)
		surging.Anomaly = models.AnomalySurge
		steady := evoFixture(models.ClassForest, models.ClassBuiltUp, 0.70, 20, 0.9)

		hot := BuildNarrative([]models.TransitionEvolution{surging}, models.PersonaEnvironmentalOfficer)
		calm := BuildNarrative([]models.TransitionEvolution{steady}, models.PersonaEnvironmentalOfficer)
		require.NotNil(t, hot)
		require.NotNil(t, calm)
		assert.NotEqual(t, hot.Headline, calm.Headline)
		assert.Contains(t, hot.Headline, "escalating")
	})

	t.Run("each persona gets its own register", func(t *testing.T) {
		evolutions := []models.TransitionEvolution{
			evoFixture(models.ClassForest, models.ClassBuiltUp, 0.70, 20, 0.9),
		}
		planner := BuildNarrative(evolutions, models.PersonaUrbanPlanner)
		officer := BuildNarrative(evolutions, models.PersonaEnvironmentalOfficer)
		maker := BuildNarrative(evolutions, models.PersonaPolicyMaker)

		require.NotNil(t, planner)
		require.NotNil(t, officer)
		require.NotNil(t, maker)
		assert.NotEqual(t, planner.Headline, officer.Headline)
		assert.NotEqual(t, officer.Headline, maker.Headline)
		assert.Equal(t, models.PersonaUrbanPlanner, planner.Persona)
	})
}
