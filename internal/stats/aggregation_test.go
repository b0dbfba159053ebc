package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMean(t *testing.T) {
	assert.Equal(t, 0.0, Mean(nil))
	assert.Equal(t, 2.0, Mean([]float64{1, 2, 3}))
}

func TestPopulationStdDev(t *testing.T) {
	// {2, 4, 4, 4, 5, 5, 7, 9} is the textbook population with stddev 2
	values := []float64{2, 4, 4, 4, 5, 5, 7, 9}
	assert.InDelta(t, 2.0, PopulationStdDev(values), 1e-9)

	// Population stddev divides by N, sample by N-1
	assert.Less(t, PopulationStdDev([]float64{1, 2, 3}), StdDev([]float64{1, 2, 3}))

	assert.Equal(t, 0.0, PopulationStdDev(nil))
	assert.Equal(t, 0.0, PopulationStdDev([]float64{5}))
}

func TestMedian(t *testing.T) {
	assert.Equal(t, 0.0, Median(nil))
	assert.Equal(t, 3.0, Median([]float64{5, 1, 3}))
	assert.Equal(t, 2.5, Median([]float64{4, 1, 2, 3}))

	// Input order is preserved
	values := []float64{5, 1, 3}
	Median(values)
	assert.Equal(t, []float64{5, 1, 3}, values)
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, []float64{0, 0.5, 1}, Normalize([]float64{10, 20, 30}))
	assert.Equal(t, []float64{0, 0}, Normalize([]float64{7, 7}))
}
