package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"example.com/nutrition/internal/domain"
	"example.com/nutrition/internal/events"
	"example.com/nutrition/internal/observability"
)

// Repository provides Postgres-backed persistence for profiles, workouts,
// plans, and outbox events.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a Repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// UpsertProfile inserts or updates the athlete profile for a user.
func (r *Repository) UpsertProfile(ctx context.Context, profile domain.AthleteProfile) error {
	const stmt = `INSERT INTO athlete_profiles (tenant_id, user_id, weight_kg, meals_per_day, diet_tag, allergies, updated_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7)
        ON CONFLICT (tenant_id, user_id) DO UPDATE SET
            weight_kg = EXCLUDED.weight_kg,
            meals_per_day = EXCLUDED.meals_per_day,
            diet_tag = EXCLUDED.diet_tag,
            allergies = EXCLUDED.allergies,
            updated_at = EXCLUDED.updated_at`

	return r.withTenantTx(ctx, profile.TenantID, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, stmt,
			profile.TenantID,
			profile.UserID,
			profile.WeightKg,
			profile.MealsPerDay,
			profile.DietTag,
			profile.Allergies,
			profile.UpdatedAt,
		)
		return err
	})
}

// GetProfile fetches the athlete profile for a user; nil when absent.
func (r *Repository) GetProfile(ctx context.Context, tenantID, userID string) (*domain.AthleteProfile, error) {
	const query = `SELECT tenant_id, user_id, weight_kg, meals_per_day, diet_tag, allergies, updated_at
        FROM athlete_profiles WHERE tenant_id=$1 AND user_id=$2`

	var profile domain.AthleteProfile
	err := r.withTenantTx(ctx, tenantID, func(tx pgx.Tx) error {
		row := tx.QueryRow(ctx, query, tenantID, userID)
		return row.Scan(&profile.TenantID, &profile.UserID, &profile.WeightKg, &profile.MealsPerDay, &profile.DietTag, &profile.Allergies, &profile.UpdatedAt)
	})
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// ListByDateRange returns the user's workouts inside [start, end] inclusive.
func (r *Repository) ListByDateRange(ctx context.Context, tenantID, userID string, start, end time.Time) ([]domain.Workout, error) {
	const query = `SELECT workout_id, tenant_id, user_id, workout_date, sport, title, planned_hours, actual_hours, tss, intensity_factor, rpe, start_time
        FROM workouts
        WHERE tenant_id=$1 AND user_id=$2 AND workout_date BETWEEN $3 AND $4
        ORDER BY workout_date, workout_id`

	var workouts []domain.Workout
	err := r.withTenantTx(ctx, tenantID, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx, query, tenantID, userID, start, end)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var w domain.Workout
			if err := rows.Scan(&w.ID, &w.TenantID, &w.UserID, &w.Date, &w.Sport, &w.Title, &w.PlannedHours, &w.ActualHours, &w.TSS, &w.IntensityFactor, &w.RPE, &w.StartTime); err != nil {
				return err
			}
			workouts = append(workouts, w)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return workouts, nil
}

// CreatePlan persists the aggregate, its day rows, and the plan.generated
// outbox event inside a single transaction.
func (r *Repository) CreatePlan(ctx context.Context, plan domain.PlanAggregate) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			tx.Rollback(ctx)
		}
	}()

	if _, err = tx.Exec(ctx, "SELECT set_config('app.tenant_id', $1, true)", plan.TenantID); err != nil {
		return err
	}

	const insertPlan = `INSERT INTO nutrition_plans (plan_id, tenant_id, user_id, weight_kg, source, start_date, end_date, created_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`

	_, err = tx.Exec(ctx, insertPlan,
		plan.ID,
		plan.TenantID,
		plan.UserID,
		plan.WeightKg,
		nullIfEmpty(plan.Source),
		plan.StartDate,
		plan.EndDate,
		plan.CreatedAt,
	)
	if err != nil {
		return err
	}

	const insertDay = `INSERT INTO nutrition_plan_days (plan_id, tenant_id, day_date, day_type, kcal, protein_g, carbs_g, fat_g, intra_cho_g_per_h, intra, meals)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)`

	for _, day := range plan.Days {
		intraJSON, marshalErr := json.Marshal(day.Intra)
		if marshalErr != nil {
			err = marshalErr
			return err
		}
		mealsJSON, marshalErr := json.Marshal(day.Meals)
		if marshalErr != nil {
			err = marshalErr
			return err
		}
		if _, err = tx.Exec(ctx, insertDay,
			plan.ID,
			plan.TenantID,
			day.Date,
			string(day.DayType),
			day.Targets.Kcal,
			day.Targets.ProteinG,
			day.Targets.CarbsG,
			day.Targets.FatG,
			day.Targets.IntraChoGPerH,
			intraJSON,
			mealsJSON,
		); err != nil {
			return err
		}
	}

	if err = r.insertOutbox(ctx, tx, plan); err != nil {
		return err
	}

	if err = tx.Commit(ctx); err != nil {
		return err
	}
	observability.RecordPlanPersisted(plan.CreatedAt)
	return nil
}

func (r *Repository) insertOutbox(ctx context.Context, tx pgx.Tx, plan domain.PlanAggregate) error {
	payload := events.PlanGenerated{
		PlanID:      plan.ID,
		TenantID:    plan.TenantID,
		UserID:      plan.UserID,
		StartDate:   plan.StartDate.Format("2006-01-02"),
		EndDate:     plan.EndDate.Format("2006-01-02"),
		DayCount:    len(plan.Days),
		WeightKg:    plan.WeightKg,
		GeneratedAt: plan.CreatedAt,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	const stmt = `INSERT INTO outbox (tenant_id, aggregate_type, aggregate_id, event_type, topic, partition_key, payload, dedupe_key)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`

	partitionKey := fmt.Sprintf("%s:%s", plan.TenantID, plan.UserID)
	dedupeKey := fmt.Sprintf("%s:plan.generated", plan.ID)

	_, err = tx.Exec(ctx, stmt,
		plan.TenantID,
		"nutrition_plan",
		plan.ID,
		"plan.generated",
		"nutrition_plan_events",
		partitionKey,
		body,
		dedupeKey,
	)
	return err
}

// GetPlan retrieves a plan with its day rows; nil when absent.
func (r *Repository) GetPlan(ctx context.Context, tenantID, planID string) (*domain.PlanAggregate, error) {
	const planQuery = `SELECT plan_id, tenant_id, user_id, weight_kg, COALESCE(source, ''), start_date, end_date, created_at
        FROM nutrition_plans WHERE tenant_id=$1 AND plan_id=$2`

	const daysQuery = `SELECT day_date, day_type, kcal, protein_g, carbs_g, fat_g, intra_cho_g_per_h, intra, meals
        FROM nutrition_plan_days WHERE tenant_id=$1 AND plan_id=$2 ORDER BY day_date`

	var plan domain.PlanAggregate
	found := false
	err := r.withTenantTx(ctx, tenantID, func(tx pgx.Tx) error {
		row := tx.QueryRow(ctx, planQuery, tenantID, planID)
		if err := row.Scan(&plan.ID, &plan.TenantID, &plan.UserID, &plan.WeightKg, &plan.Source, &plan.StartDate, &plan.EndDate, &plan.CreatedAt); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil
			}
			return err
		}
		found = true

		rows, err := tx.Query(ctx, daysQuery, tenantID, planID)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var (
				day       domain.DayPlan
				dayType   string
				intraJSON []byte
				mealsJSON []byte
			)
			if err := rows.Scan(&day.Date, &dayType, &day.Targets.Kcal, &day.Targets.ProteinG, &day.Targets.CarbsG, &day.Targets.FatG, &day.Targets.IntraChoGPerH, &intraJSON, &mealsJSON); err != nil {
				return err
			}
			day.DayType = domain.DayType(dayType)
			if err := json.Unmarshal(intraJSON, &day.Intra); err != nil {
				return err
			}
			if err := json.Unmarshal(mealsJSON, &day.Meals); err != nil {
				return err
			}
			plan.Days = append(plan.Days, day)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &plan, nil
}

// ListPlans returns plan summaries newest first with cursor pagination.
func (r *Repository) ListPlans(ctx context.Context, tenantID, userID string, cursor *domain.Cursor, limit int) ([]domain.PlanSummary, *domain.Cursor, error) {
	args := []interface{}{tenantID, userID, limit}
	query := `SELECT p.plan_id, p.user_id, p.weight_kg, COALESCE(p.source, ''), p.start_date, p.end_date, p.created_at,
            (SELECT COUNT(*) FROM nutrition_plan_days d WHERE d.plan_id = p.plan_id) AS day_count
        FROM nutrition_plans p WHERE p.tenant_id=$1 AND p.user_id=$2`

	if cursor != nil {
		query += ` AND (p.created_at, p.plan_id) < ($4, $5)`
		args = append(args, cursor.CreatedAt, cursor.ID)
	}

	query += ` ORDER BY p.created_at DESC, p.plan_id DESC LIMIT $3`

	summaries := make([]domain.PlanSummary, 0, limit)
	err := r.withTenantTx(ctx, tenantID, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var s domain.PlanSummary
			if err := rows.Scan(&s.ID, &s.UserID, &s.WeightKg, &s.Source, &s.StartDate, &s.EndDate, &s.CreatedAt, &s.DayCount); err != nil {
				return err
			}
			summaries = append(summaries, s)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, nil, err
	}

	var nextCursor *domain.Cursor
	if len(summaries) == limit {
		last := summaries[len(summaries)-1]
		nextCursor = &domain.Cursor{CreatedAt: last.CreatedAt, ID: last.ID}
	}

	return summaries, nextCursor, nil
}

// withTenantTx wraps fn in a transaction with the tenant RLS setting applied.
func (r *Repository) withTenantTx(ctx context.Context, tenantID string, fn func(pgx.Tx) error) error {
	conn, err := r.pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	tx, err := conn.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, "SELECT set_config('app.tenant_id', $1, true)", tenantID); err != nil {
		return err
	}

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func nullIfEmpty(value string) interface{} {
	if value == "" {
		return nil
	}
	return value
}
