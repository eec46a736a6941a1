// Package events defines the event payloads this service publishes and
// consumes.
package events

import "time"

// PlanGenerated is emitted whenever a nutrition plan is persisted.
type PlanGenerated struct {
	PlanID      string    `json:"plan_id"`
	TenantID    string    `json:"tenant_id"`
	UserID      string    `json:"user_id"`
	StartDate   string    `json:"start_date"` // YYYY-MM-DD
	EndDate     string    `json:"end_date"`   // YYYY-MM-DD
	DayCount    int       `json:"day_count"`
	WeightKg    float64   `json:"weight_kg"`
	GeneratedAt time.Time `json:"generated_at"`
}

// ActivityCreated mirrors the activity platform's workout-accepted message;
// this service consumes it to keep its workouts table current.
type ActivityCreated struct {
	ActivityID      string    `json:"activity_id"`
	TenantID        string    `json:"tenant_id"`
	UserID          string    `json:"user_id"`
	ActivityType    string    `json:"activity_type"`
	Title           string    `json:"title,omitempty"`
	StartedAt       time.Time `json:"started_at"`
	DurationMin     int       `json:"duration_min"`
	TSS             *float64  `json:"tss,omitempty"`
	IntensityFactor *float64  `json:"intensity_factor,omitempty"`
	RPE             *float64  `json:"rpe,omitempty"`
	Source          string    `json:"source"`
	Version         string    `json:"version"`
}
