// Package api exposes HTTP handlers for the nutrition service.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"example.com/nutrition/internal/auth"
	"example.com/nutrition/internal/domain"
	"example.com/nutrition/internal/persistence"
)

const dateLayout = "2006-01-02"

// Handler coordinates HTTP requests with the plan service.
type Handler struct {
	service *domain.PlanService
}

// NewHandler builds a Handler.
func NewHandler(service *domain.PlanService) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes wires endpoints to the router.
func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/v1/plans", h.createPlan).Methods(http.MethodPost)
	r.HandleFunc("/v1/plans", h.listPlans).Methods(http.MethodGet)
	r.HandleFunc("/v1/plans/preview", h.previewPlan).Methods(http.MethodPost)
	r.HandleFunc("/v1/plans/{plan_id}", h.getPlan).Methods(http.MethodGet)
	r.HandleFunc("/v1/profile", h.saveProfile).Methods(http.MethodPut)
	r.HandleFunc("/v1/profile", h.getProfile).Methods(http.MethodGet)
	r.HandleFunc("/healthz", healthz).Methods(http.MethodGet)
}

// healthz reports a simple OK status for container health checks.
func healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (h *Handler) createPlan(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.FromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "missing bearer token")
		return
	}
	if !claims.HasScope(auth.ScopePlansWrite) {
		writeError(w, http.StatusForbidden, "forbidden", "scope plans:write required")
		return
	}

	input, err := decodePlanInput(r, claims.TenantID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "validation_failed", err.Error())
		return
	}

	plan, err := h.service.GeneratePlan(r.Context(), input)
	if err != nil {
		writePlanError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toPlanView(*plan))
}

func (h *Handler) previewPlan(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.FromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "missing bearer token")
		return
	}
	if !claims.HasScope(auth.ScopePlansRead) && !claims.HasScope(auth.ScopePlansWrite) {
		writeError(w, http.StatusForbidden, "forbidden", "scope plans:read required")
		return
	}

	input, err := decodePlanInput(r, claims.TenantID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "validation_failed", err.Error())
		return
	}

	week, err := h.service.PreviewPlan(r.Context(), input)
	if err != nil {
		writePlanError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toWeekView(week))
}

func (h *Handler) getPlan(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.FromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "missing bearer token")
		return
	}
	if !claims.HasScope(auth.ScopePlansRead) && !claims.HasScope(auth.ScopePlansWrite) {
		writeError(w, http.StatusForbidden, "forbidden", "scope plans:read required")
		return
	}

	planID := mux.Vars(r)["plan_id"]
	if planID == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "missing plan id")
		return
	}

	plan, err := h.service.GetPlan(r.Context(), claims.TenantID, planID)
	if err != nil {
		if errors.Is(err, domain.ErrPlanNotFound) {
			writeError(w, http.StatusNotFound, "not_found", "plan not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "server_error", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, toPlanView(*plan))
}

func (h *Handler) listPlans(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.FromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "missing bearer token")
		return
	}
	if !claims.HasScope(auth.ScopePlansRead) && !claims.HasScope(auth.ScopePlansWrite) {
		writeError(w, http.StatusForbidden, "forbidden", "scope plans:read required")
		return
	}

	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		writeError(w, http.StatusBadRequest, "validation_failed", "missing user_id parameter")
		return
	}

	limit := 20
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			if parsed > 100 {
				parsed = 100
			}
			limit = parsed
		}
	}

	cursor, err := persistence.DecodeCursor(r.URL.Query().Get("cursor"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "validation_failed", "invalid cursor")
		return
	}

	summaries, next, err := h.service.ListPlans(r.Context(), claims.TenantID, userID, cursor, limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "server_error", err.Error())
		return
	}

	items := make([]PlanSummaryView, 0, len(summaries))
	for _, s := range summaries {
		items = append(items, toPlanSummaryView(s))
	}

	resp := ListPlansResponse{
		Items:      items,
		NextCursor: persistence.EncodeCursor(next),
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) saveProfile(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.FromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "missing bearer token")
		return
	}
	if !claims.HasScope(auth.ScopeProfileWrite) {
		writeError(w, http.StatusForbidden, "forbidden", "scope profile:write required")
		return
	}

	var req SaveProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "unable to parse body")
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, "validation_failed", err.Error())
		return
	}

	profile := domain.AthleteProfile{
		TenantID:    claims.TenantID,
		UserID:      req.UserID,
		WeightKg:    req.WeightKg,
		MealsPerDay: req.MealsPerDay,
		DietTag:     req.DietTag,
		Allergies:   req.Allergies,
	}
	if err := h.service.SaveProfile(r.Context(), profile); err != nil {
		writeError(w, http.StatusBadRequest, "validation_failed", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"saved": true})
}

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.FromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "missing bearer token")
		return
	}
	if !claims.HasScope(auth.ScopePlansRead) && !claims.HasScope(auth.ScopeProfileWrite) {
		writeError(w, http.StatusForbidden, "forbidden", "scope plans:read required")
		return
	}

	userID := r.URL.Query().Get("user_id")
	if strings.TrimSpace(userID) == "" {
		writeError(w, http.StatusBadRequest, "validation_failed", "missing user_id parameter")
		return
	}

	profile, err := h.service.GetProfile(r.Context(), claims.TenantID, userID)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			writeError(w, http.StatusNotFound, "not_found", "profile not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "server_error", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, toProfileView(*profile))
}

func decodePlanInput(r *http.Request, tenantID string) (domain.GeneratePlanInput, error) {
	var req GeneratePlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return domain.GeneratePlanInput{}, errors.New("unable to parse body")
	}
	if err := req.Validate(); err != nil {
		return domain.GeneratePlanInput{}, err
	}

	start, _ := time.Parse(dateLayout, req.StartDate)
	end, _ := time.Parse(dateLayout, req.EndDate)

	return domain.GeneratePlanInput{
		TenantID:  tenantID,
		UserID:    req.UserID,
		StartDate: start,
		EndDate:   end,
		Source:    req.Source,
	}, nil
}

func writePlanError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidRange):
		writeError(w, http.StatusBadRequest, "validation_failed", err.Error())
	case errors.Is(err, domain.ErrProfileNotFound):
		writeError(w, http.StatusConflict, "profile_missing", "save an athlete profile before planning")
	default:
		writeError(w, http.StatusInternalServerError, "server_error", err.Error())
	}
}

// GeneratePlanRequest is the payload for POST /v1/plans and its preview twin.
type GeneratePlanRequest struct {
	UserID    string `json:"user_id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Source    string `json:"source,omitempty"`
}

// Validate ensures request correctness.
func (r GeneratePlanRequest) Validate() error {
	if strings.TrimSpace(r.UserID) == "" {
		return errors.New("user_id is required")
	}
	if _, err := time.Parse(dateLayout, r.StartDate); err != nil {
		return errors.New("start_date must be YYYY-MM-DD")
	}
	if _, err := time.Parse(dateLayout, r.EndDate); err != nil {
		return errors.New("end_date must be YYYY-MM-DD")
	}
	return nil
}

// SaveProfileRequest is the payload for PUT /v1/profile.
type SaveProfileRequest struct {
	UserID      string   `json:"user_id"`
	WeightKg    float64  `json:"weight_kg"`
	MealsPerDay int      `json:"meals_per_day"`
	DietTag     string   `json:"diet,omitempty"`
	Allergies   []string `json:"allergies,omitempty"`
}

// Validate ensures request correctness.
func (r SaveProfileRequest) Validate() error {
	if strings.TrimSpace(r.UserID) == "" {
		return errors.New("user_id is required")
	}
	if r.WeightKg <= 0 {
		return errors.New("weight_kg must be > 0")
	}
	if r.MealsPerDay <= 0 {
		return errors.New("meals_per_day must be > 0")
	}
	return nil
}

// ProfileView exposes the stored athlete profile.
type ProfileView struct {
	UserID      string    `json:"user_id"`
	WeightKg    float64   `json:"weight_kg"`
	MealsPerDay int       `json:"meals_per_day"`
	DietTag     string    `json:"diet,omitempty"`
	Allergies   []string  `json:"allergies,omitempty"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// MealView is one resolved meal slot with its clock time rendered on the
// 24h dial.
type MealView struct {
	Slot   int             `json:"slot"`
	Type   string          `json:"meal_type"`
	Time   string          `json:"time"`
	Emoji  string          `json:"emoji,omitempty"`
	Target domain.MacroSet `json:"target_macros"`
	Recipe *domain.Recipe  `json:"recipe,omitempty"`
}

// DayView is the per-date planning output.
type DayView struct {
	Date    string                    `json:"date"`
	DayType string                    `json:"day_type"`
	Targets domain.DailyTargets       `json:"daily_targets"`
	Intra   domain.IntraNutritionPlan `json:"intra_nutrition"`
	Meals   []MealView                `json:"meals"`
}

// WeekView is the preview response body.
type WeekView struct {
	StartDate string    `json:"start_date"`
	EndDate   string    `json:"end_date"`
	Days      []DayView `json:"days"`
}

// PlanView is the persisted-plan response body.
type PlanView struct {
	PlanID    string    `json:"plan_id"`
	UserID    string    `json:"user_id"`
	WeightKg  float64   `json:"weight_kg"`
	Source    string    `json:"source,omitempty"`
	StartDate string    `json:"start_date"`
	EndDate   string    `json:"end_date"`
	CreatedAt time.Time `json:"created_at"`
	Days      []DayView `json:"days"`
}

// PlanSummaryView is the list-item projection of a stored plan.
type PlanSummaryView struct {
	PlanID    string    `json:"plan_id"`
	UserID    string    `json:"user_id"`
	WeightKg  float64   `json:"weight_kg"`
	Source    string    `json:"source,omitempty"`
	StartDate string    `json:"start_date"`
	EndDate   string    `json:"end_date"`
	DayCount  int       `json:"day_count"`
	CreatedAt time.Time `json:"created_at"`
}

// ListPlansResponse packages list results.
type ListPlansResponse struct {
	Items      []PlanSummaryView `json:"items"`
	NextCursor string            `json:"next_cursor,omitempty"`
}

func toMealView(m domain.MealTarget) MealView {
	return MealView{
		Slot:   m.Slot,
		Type:   string(m.Type),
		Time:   m.Clock(),
		Emoji:  m.Emoji,
		Target: m.Target,
		Recipe: m.Recipe,
	}
}

func toDayView(d domain.DayPlan) DayView {
	meals := make([]MealView, 0, len(d.Meals))
	for _, m := range d.Meals {
		meals = append(meals, toMealView(m))
	}
	return DayView{
		Date:    d.Date.Format(dateLayout),
		DayType: string(d.DayType),
		Targets: d.Targets,
		Intra:   d.Intra,
		Meals:   meals,
	}
}

func toWeekView(week domain.WeekPlan) WeekView {
	days := make([]DayView, 0, len(week.Days))
	for _, d := range week.Days {
		days = append(days, toDayView(d))
	}
	return WeekView{
		StartDate: week.Start.Format(dateLayout),
		EndDate:   week.End.Format(dateLayout),
		Days:      days,
	}
}

func toPlanView(plan domain.PlanAggregate) PlanView {
	days := make([]DayView, 0, len(plan.Days))
	for _, d := range plan.Days {
		days = append(days, toDayView(d))
	}
	return PlanView{
		PlanID:    plan.ID,
		UserID:    plan.UserID,
		WeightKg:  plan.WeightKg,
		Source:    plan.Source,
		StartDate: plan.StartDate.Format(dateLayout),
		EndDate:   plan.EndDate.Format(dateLayout),
		CreatedAt: plan.CreatedAt,
		Days:      days,
	}
}

func toPlanSummaryView(s domain.PlanSummary) PlanSummaryView {
	return PlanSummaryView{
		PlanID:    s.ID,
		UserID:    s.UserID,
		WeightKg:  s.WeightKg,
		Source:    s.Source,
		StartDate: s.StartDate.Format(dateLayout),
		EndDate:   s.EndDate.Format(dateLayout),
		DayCount:  s.DayCount,
		CreatedAt: s.CreatedAt,
	}
}

func toProfileView(p domain.AthleteProfile) ProfileView {
	return ProfileView{
		UserID:      p.UserID,
		WeightKg:    p.WeightKg,
		MealsPerDay: p.MealsPerDay,
		DietTag:     p.DietTag,
		Allergies:   p.Allergies,
		UpdatedAt:   p.UpdatedAt,
	}
}

func writeError(w http.ResponseWriter, status int, code, detail string) {
	payload := map[string]string{
		"type":   code,
		"detail": detail,
	}
	writeJSON(w, status, payload)
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
