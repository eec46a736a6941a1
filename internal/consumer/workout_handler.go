package consumer

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"example.com/nutrition/internal/events"
)

// WorkoutHandler upserts incoming activity events into the workouts table
// the planner reads from. Replayed events overwrite in place, so the feed is
// safe to re-consume from any offset.
type WorkoutHandler struct {
	pool *pgxpool.Pool
}

// NewWorkoutHandler constructs a handler backed by the provided pool.
func NewWorkoutHandler(pool *pgxpool.Pool) *WorkoutHandler {
	return &WorkoutHandler{pool: pool}
}

// Handle maps an activity.created payload onto a workout row. Other event
// types on the topic are ignored without error.
func (h *WorkoutHandler) Handle(ctx context.Context, msg Message) error {
	if msg.EventType != "activity.created" {
		return nil
	}

	var payload events.ActivityCreated
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		return fmt.Errorf("unmarshal activity.created: %w", err)
	}
	if payload.ActivityID == "" || payload.UserID == "" {
		return fmt.Errorf("activity.created missing identifiers")
	}

	started := payload.StartedAt.UTC()
	date := started.Truncate(24 * time.Hour)
	startTime := started.Format("15:04")
	actualHours := float64(payload.DurationMin) / 60

	const stmt = `INSERT INTO workouts (workout_id, tenant_id, user_id, workout_date, sport, title, actual_hours, tss, intensity_factor, rpe, start_time, source)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
        ON CONFLICT (workout_id) DO UPDATE SET
            workout_date = EXCLUDED.workout_date,
            sport = EXCLUDED.sport,
            title = EXCLUDED.title,
            actual_hours = EXCLUDED.actual_hours,
            tss = EXCLUDED.tss,
            intensity_factor = EXCLUDED.intensity_factor,
            rpe = EXCLUDED.rpe,
            start_time = EXCLUDED.start_time,
            source = EXCLUDED.source`

	conn, err := h.pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	_, err = conn.Exec(ctx, stmt,
		payload.ActivityID,
		payload.TenantID,
		payload.UserID,
		date,
		payload.ActivityType,
		payload.Title,
		actualHours,
		payload.TSS,
		payload.IntensityFactor,
		payload.RPE,
		startTime,
		payload.Source,
	)
	return err
}
