// Package planner implements the deterministic nutrition planning pipeline:
// day classification, macro targets, intra-workout fueling, meal distribution
// with timing resolution, and seeded recipe selection.
package planner

import "example.com/nutrition/internal/domain"

// Session-intensity thresholds that promote a day to high load.
const (
	highTSS = 150.0
	highRPE = 7.0
	highIF  = 0.85
)

// highLoadKeywords promote a day to high load when they appear in a
// workout's type or title.
var highLoadKeywords = []string{"interval", "tempo", "race", "threshold"}

// ClassifyDay maps one date's sessions onto a training-load category.
// A day with no sessions is a rest day; a single qualifying session is
// enough to mark the whole day high.
func ClassifyDay(workouts []domain.Workout) domain.DayType {
	if len(workouts) == 0 {
		return domain.DayTypeRest
	}
	for _, w := range workouts {
		if domain.Metric(w.TSS) >= highTSS ||
			domain.Metric(w.RPE) >= highRPE ||
			domain.Metric(w.IntensityFactor) >= highIF ||
			w.HasSessionKeyword(highLoadKeywords...) {
			return domain.DayTypeHigh
		}
	}
	return domain.DayTypeTraining
}
