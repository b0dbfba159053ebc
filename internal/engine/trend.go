package engine

import (
	"sort"

	"github.com/landsight/lulc-backend-go/internal/models"
)

// DistinctYears returns the sorted distinct set of years present in
// the time series
func DistinctYears(series []models.TimeSeriesPoint) []int {
	seen := make(map[int]bool)
	var years []int
	for _, p := range series {
		if !seen[p.Year] {
			seen[p.Year] = true
			years = append(years, p.Year)
		}
	}
	sort.Ints(years)
	return years
}

// ExtractTrend builds the yearly area/confidence series for one class,
// aligned to the sorted distinct set of years in the table. A missing
// (year, class) pair yields 0 area and 0 confidence; that is a defined
// default, not an error.
func ExtractTrend(series []models.TimeSeriesPoint, class models.LandClass) models.TrendSeries {
	years := DistinctYears(series)

	type cell struct {
		area float64
		conf float64
	}
	byYear := make(map[int]cell, len(years))
	for _, p := range series {
		if p.Class == class {
			byYear[p.Year] = cell{area: p.AreaSqKm, conf: p.Confidence}
		}
	}

	trend := models.TrendSeries{
		Class:       class,
		Years:       years,
		Areas:       make([]float64, len(years)),
		Confidences: make([]float64, len(years)),
	}
	for i, y := range years {
		c := byYear[y] // zero value covers missing pairs
		trend.Areas[i] = c.area
		trend.Confidences[i] = c.conf
	}
	return trend
}

// rate computes an annual change rate guarded against a zero year span
func rate(yearStart, yearEnd int, areaStart, areaEnd float64) float64 {
	span := yearEnd - yearStart
	if span == 0 {
		return 0
	}
	return (areaEnd - areaStart) / float64(span)
}
