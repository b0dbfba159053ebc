package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/landsight/lulc-backend-go/internal/models"
)

func builtUpSeries(years []int, areas, confs []float64) []models.TimeSeriesPoint {
	series := make([]models.TimeSeriesPoint, len(years))
	for i, y := range years {
		series[i] = seriesPoint(y, models.ClassBuiltUp, areas[i], confs[i])
	}
	return series
}

func TestScoreTrust(t *testing.T) {
	t.Run("requires two distinct years", func(t *testing.T) {
		series := builtUpSeries([]int{2021}, []float64{10}, []float64{0.9})
		assert.Nil(t, ScoreTrust(series))
	})

	t.Run("monotonic series with steady confidence scores high", func(t *testing.T) {
		series := builtUpSeries(
			[]int{2018, 2019, 2020, 2021},
			[]float64{10, 12, 14, 16},
			[]float64{0.9, 0.9, 0.9, 0.9},
		)
		trust := ScoreTrust(series)
		require.NotNil(t, trust)

		// stability 1.0 (zero spread), consistency 1.0, magnitude 16/50
		assert.InDelta(t, 1.0, trust.StabilityScore, 1e-9)
		assert.InDelta(t, 1.0, trust.ConsistencyScore, 1e-9)
		assert.InDelta(t, 0.32, trust.MagnitudeScore, 1e-9)
		assert.Equal(t, 86, trust.Score)
		assert.Equal(t, models.TrustHigh, trust.Level)
	})

	t.Run("dips in the series lower consistency", func(t *testing.T) {
		series := builtUpSeries(
			[]int{2018, 2019, 2020, 2021},
			[]float64{10, 8, 12, 11},
			[]float64{0.9, 0.9, 0.9, 0.9},
		)
		trust := ScoreTrust(series)
		require.NotNil(t, trust)
		assert.InDelta(t, 1.0/3.0, trust.ConsistencyScore, 1e-9)
	})

	t.Run("low composite lands in the low band", func(t *testing.T) {
		series := builtUpSeries(
			[]int{2018, 2019, 2020},
			[]float64{10, 8, 6},
			[]float64{0.50, 0.95, 0.70},
		)
		trust := ScoreTrust(series)
		require.NotNil(t, trust)
		assert.LessOrEqual(t, trust.Score, trustLowThreshold)
		assert.Equal(t, models.TrustLow, trust.Level)
	})

	t.Run("magnitude saturates at full scale", func(t *testing.T) {
		series := builtUpSeries(
			[]int{2020, 2021},
			[]float64{80, 120},
			[]float64{0.9, 0.9},
		)
		trust := ScoreTrust(series)
		require.NotNil(t, trust)
		assert.Equal(t, 1.0, trust.MagnitudeScore)
	})
}
