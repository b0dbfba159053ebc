package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/landsight/lulc-backend-go/internal/models"
)

func seriesPoint(year int, class models.LandClass, area, conf float64) models.TimeSeriesPoint {
	return models.TimeSeriesPoint{Year: year, Class: class, AreaSqKm: area, Confidence: conf}
}

func TestDistinctYears(t *testing.T) {
	series := []models.TimeSeriesPoint{
		seriesPoint(2021, models.ClassForest, 90, 0.9),
		seriesPoint(2019, models.ClassForest, 100, 0.9),
		seriesPoint(2019, models.ClassWater, 50, 0.8),
		seriesPoint(2020, models.ClassForest, 95, 0.9),
		seriesPoint(2021, models.ClassWater, 48, 0.8),
	}

	assert.Equal(t, []int{2019, 2020, 2021}, DistinctYears(series))
	assert.Empty(t, DistinctYears(nil))
}

func TestExtractTrend(t *testing.T) {
	series := []models.TimeSeriesPoint{
		seriesPoint(2021, models.ClassBuiltUp, 14, 0.92),
		seriesPoint(2019, models.ClassBuiltUp, 10, 0.90),
		seriesPoint(2020, models.ClassForest, 95, 0.85),
		seriesPoint(2019, models.ClassForest, 100, 0.85),
		seriesPoint(2020, models.ClassBuiltUp, 12, 0.91),
	}

	t.Run("aligns to sorted distinct years", func(t *testing.T) {
		trend := ExtractTrend(series, models.ClassBuiltUp)
		require.Equal(t, []int{2019, 2020, 2021}, trend.Years)
		assert.Equal(t, []float64{10, 12, 14}, trend.Areas)
		assert.Equal(t, []float64{0.90, 0.91, 0.92}, trend.Confidences)
	})

	t.Run("missing pairs default to zero", func(t *testing.T) {
		trend := ExtractTrend(series, models.ClassForest)
		require.Equal(t, 3, trend.Len())
		assert.Equal(t, []float64{100, 95, 0}, trend.Areas)
		assert.Equal(t, 0.0, trend.Confidences[2])
	})

	t.Run("unknown class yields all zeros", func(t *testing.T) {
		trend := ExtractTrend(series, models.ClassBarren)
		assert.Equal(t, []float64{0, 0, 0}, trend.Areas)
	})
}

func TestRateGuardsZeroSpan(t *testing.T) {
	assert.Equal(t, 0.0, rate(2020, 2020, 10, 20))
	assert.Equal(t, 2.5, rate(2019, 2021, 10, 15))
}
