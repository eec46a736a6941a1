// Package domain defines the business logic for the nutrition service.
package domain

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"example.com/nutrition/internal/observability"
)

var (
	// ErrPlanNotFound is returned when a plan cannot be located.
	ErrPlanNotFound = errors.New("plan not found")
	// ErrProfileNotFound is returned when no athlete profile exists for the user.
	ErrProfileNotFound = errors.New("athlete profile not found")
	// ErrInvalidRange indicates an inverted or oversized planning window.
	ErrInvalidRange = errors.New("invalid planning range")
)

// PlanAggregate is the persisted form of a generated plan.
type PlanAggregate struct {
	ID        string
	TenantID  string
	UserID    string
	WeightKg  float64
	Source    string
	StartDate time.Time
	EndDate   time.Time
	CreatedAt time.Time
	Days      []DayPlan
}

// PlanSummary is the list-view projection of a stored plan.
type PlanSummary struct {
	ID        string
	UserID    string
	WeightKg  float64
	Source    string
	StartDate time.Time
	EndDate   time.Time
	DayCount  int
	CreatedAt time.Time
}

// Cursor models the pagination token for plan listings.
type Cursor struct {
	CreatedAt time.Time
	ID        string
}

// PlanRepository captures plan persistence operations.
type PlanRepository interface {
	CreatePlan(ctx context.Context, plan PlanAggregate) error
	GetPlan(ctx context.Context, tenantID, planID string) (*PlanAggregate, error)
	ListPlans(ctx context.Context, tenantID, userID string, cursor *Cursor, limit int) ([]PlanSummary, *Cursor, error)
}

// ProfileRepository captures athlete profile persistence.
type ProfileRepository interface {
	UpsertProfile(ctx context.Context, profile AthleteProfile) error
	GetProfile(ctx context.Context, tenantID, userID string) (*AthleteProfile, error)
}

// WorkoutRepository reads the ingested training sessions.
type WorkoutRepository interface {
	ListByDateRange(ctx context.Context, tenantID, userID string, start, end time.Time) ([]Workout, error)
}

// WeekPlanner is the planning core. It is a pure computation over
// already-resolved inputs and performs no I/O.
type WeekPlanner interface {
	PlanWeek(profile AthleteProfile, workouts []Workout, start, end time.Time) WeekPlan
}

// PlanService orchestrates plan generation workflows.
type PlanService struct {
	plans         PlanRepository
	profiles      ProfileRepository
	workouts      WorkoutRepository
	planner       WeekPlanner
	maxWindowDays int
}

// NewPlanService constructs a PlanService.
func NewPlanService(plans PlanRepository, profiles ProfileRepository, workouts WorkoutRepository, planner WeekPlanner, maxWindowDays int) *PlanService {
	return &PlanService{
		plans:         plans,
		profiles:      profiles,
		workouts:      workouts,
		planner:       planner,
		maxWindowDays: maxWindowDays,
	}
}

// GeneratePlanInput captures the payload from the API layer.
type GeneratePlanInput struct {
	TenantID  string
	UserID    string
	StartDate time.Time
	EndDate   time.Time
	Source    string
}

func (s *PlanService) validateRange(start, end time.Time) error {
	if end.Before(start) {
		return fmt.Errorf("%w: end before start", ErrInvalidRange)
	}
	days := int(end.Sub(start).Hours()/24) + 1
	if days > s.maxWindowDays {
		return fmt.Errorf("%w: window of %d days exceeds maximum of %d", ErrInvalidRange, days, s.maxWindowDays)
	}
	return nil
}

func (s *PlanService) plan(ctx context.Context, input GeneratePlanInput) (AthleteProfile, WeekPlan, error) {
	if err := s.validateRange(input.StartDate, input.EndDate); err != nil {
		return AthleteProfile{}, WeekPlan{}, err
	}

	profile, err := s.profiles.GetProfile(ctx, input.TenantID, input.UserID)
	if err != nil {
		return AthleteProfile{}, WeekPlan{}, err
	}
	if profile == nil {
		return AthleteProfile{}, WeekPlan{}, ErrProfileNotFound
	}
	if err := profile.Validate(); err != nil {
		return AthleteProfile{}, WeekPlan{}, err
	}

	workouts, err := s.workouts.ListByDateRange(ctx, input.TenantID, input.UserID, input.StartDate, input.EndDate)
	if err != nil {
		return AthleteProfile{}, WeekPlan{}, err
	}

	started := time.Now()
	week := s.planner.PlanWeek(*profile, workouts, input.StartDate, input.EndDate)
	observability.RecordPlanGenerated(len(week.Days), time.Since(started))
	return *profile, week, nil
}

// GeneratePlan runs the planning core for the requested range and persists
// the result.
func (s *PlanService) GeneratePlan(ctx context.Context, input GeneratePlanInput) (*PlanAggregate, error) {
	profile, week, err := s.plan(ctx, input)
	if err != nil {
		return nil, err
	}

	aggregate := PlanAggregate{
		ID:        uuid.NewString(),
		TenantID:  input.TenantID,
		UserID:    input.UserID,
		WeightKg:  profile.WeightKg,
		Source:    input.Source,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
		CreatedAt: time.Now().UTC(),
		Days:      week.Days,
	}

	if err := s.plans.CreatePlan(ctx, aggregate); err != nil {
		return nil, err
	}
	return &aggregate, nil
}

// PreviewPlan runs the planning core without persisting anything.
func (s *PlanService) PreviewPlan(ctx context.Context, input GeneratePlanInput) (WeekPlan, error) {
	_, week, err := s.plan(ctx, input)
	return week, err
}

// GetPlan fetches a stored plan by ID.
func (s *PlanService) GetPlan(ctx context.Context, tenantID, planID string) (*PlanAggregate, error) {
	plan, err := s.plans.GetPlan(ctx, tenantID, planID)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, ErrPlanNotFound
	}
	return plan, nil
}

// ListPlans fetches plan summaries with cursor pagination.
func (s *PlanService) ListPlans(ctx context.Context, tenantID, userID string, cursor *Cursor, limit int) ([]PlanSummary, *Cursor, error) {
	return s.plans.ListPlans(ctx, tenantID, userID, cursor, limit)
}

// SaveProfile validates and upserts the athlete profile.
func (s *PlanService) SaveProfile(ctx context.Context, profile AthleteProfile) error {
	if err := profile.Validate(); err != nil {
		return err
	}
	profile.UpdatedAt = time.Now().UTC()
	return s.profiles.UpsertProfile(ctx, profile)
}

// GetProfile fetches the athlete profile for a user.
func (s *PlanService) GetProfile(ctx context.Context, tenantID, userID string) (*AthleteProfile, error) {
	profile, err := s.profiles.GetProfile(ctx, tenantID, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}
	return profile, nil
}
