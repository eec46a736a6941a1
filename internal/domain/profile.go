package domain

import (
	"errors"
	"time"
)

// AthleteProfile carries the athlete parameters a planning run needs.
// It is immutable for the duration of a run.
type AthleteProfile struct {
	TenantID    string
	UserID      string
	WeightKg    float64
	MealsPerDay int
	DietTag     string
	Allergies   []string
	UpdatedAt   time.Time
}

// Validate enforces the caller contract before the engine runs; the engine
// itself never clamps weight.
func (p AthleteProfile) Validate() error {
	if p.WeightKg <= 0 || p.WeightKg > 250 {
		return errors.New("weight_kg must be a realistic positive number")
	}
	if p.MealsPerDay <= 0 {
		return errors.New("meals_per_day must be positive")
	}
	return nil
}
