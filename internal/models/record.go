package models

import (
	"fmt"
	"hash/fnv"
)

// TransitionRecord represents one land-use transition observation:
// area converted from one class to another in a given year, with a
// detection confidence. Records are immutable once loaded.
type TransitionRecord struct {
	Year       int       `json:"year" db:"year" form:"year"`
	From       LandClass `json:"from" db:"from_class"`
	To         LandClass `json:"to" db:"to_class"`
	AreaSqKm   float64   `json:"area_sq_km" db:"area_sq_km"`
	Confidence float64   `json:"confidence" db:"confidence"` // 0-1
}

// ID returns a deterministic, content-derived identifier so that
// downstream consumers never depend on load order or randomness.
func (r TransitionRecord) ID() string {
	h := fnv.New64a()
	fmt.Fprintf(h, "%s|%s|%d", r.From, r.To, r.Year)
	return fmt.Sprintf("%016x", h.Sum64())
}

// Key returns the (from, to) grouping key for this record
func (r TransitionRecord) Key() TransitionKey {
	return TransitionKey{From: r.From, To: r.To}
}

// TimeSeriesPoint represents one (year, class) observation in the
// multi-year area/confidence time series.
type TimeSeriesPoint struct {
	Year       int       `json:"year" db:"year"`
	Class      LandClass `json:"lulc_class" db:"lulc_class"`
	AreaSqKm   float64   `json:"area_sq_km" db:"area_sq_km"`
	Confidence float64   `json:"confidence" db:"confidence"` // 0-1
}

// TransitionKey identifies one (from-class, to-class) pair
type TransitionKey struct {
	From LandClass `json:"from"`
	To   LandClass `json:"to"`
}

// String formats the key as "Forest -> Built-up"
func (k TransitionKey) String() string {
	return fmt.Sprintf("%s -> %s", k.From, k.To)
}
