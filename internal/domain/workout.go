package domain

import "time"

// Workout is one training session as supplied by the activity feed.
// The intensity metrics and the start time are optional; every consumer of
// this type has an explicit fallback for a missing value.
type Workout struct {
	ID              string
	TenantID        string
	UserID          string
	Date            time.Time // calendar day, UTC midnight
	Sport           string    // free text, normalize with NormalizeSport
	Title           string
	PlannedHours    *float64
	ActualHours     *float64
	TSS             *float64
	IntensityFactor *float64
	RPE             *float64
	StartTime       string // "HH:MM", empty when unknown
}

// DurationHours prefers the recorded duration over the planned one and
// falls back to zero when neither is known.
func (w Workout) DurationHours() float64 {
	if w.ActualHours != nil {
		return *w.ActualHours
	}
	if w.PlannedHours != nil {
		return *w.PlannedHours
	}
	return 0
}

// DurationMin is DurationHours expressed in whole minutes.
func (w Workout) DurationMin() int {
	return int(w.DurationHours()*60 + 0.5)
}

// Metric reads an optional intensity metric, returning 0 when absent.
func Metric(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
