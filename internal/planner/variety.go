package planner

import (
	"fmt"
	"hash/fnv"
	"time"
)

// VarietyState is the cross-day memory of the recipe selector: a per-day
// used-recipe set plus a per-week selection seed. It is explicitly threaded
// through calls, never ambient, and must be driven in date order; the
// orchestrator is its single writer.
type VarietyState struct {
	weekSeed uint64
	day      string
	used     map[string]struct{}
}

// NewVarietyState seeds the state for the week beginning at weekStart.
// The same week start always yields the same seed, so re-running a week
// reproduces its picks exactly.
func NewVarietyState(weekStart time.Time) *VarietyState {
	return &VarietyState{
		weekSeed: weekSeed(weekStart),
		used:     make(map[string]struct{}),
	}
}

func weekSeed(weekStart time.Time) uint64 {
	year, week := weekStart.ISOWeek()
	h := fnv.New64a()
	fmt.Fprintf(h, "%d-W%02d|%d", year, week, int(weekStart.Month()))
	return h.Sum64()
}

// ResetDay clears the used-recipe set for a new date. No-repeat-within-day
// holds by construction from here until the next reset.
func (s *VarietyState) ResetDay(date time.Time) {
	s.day = date.Format("2006-01-02")
	s.used = make(map[string]struct{})
}

// MarkUsed records a recipe title as consumed for the current day.
func (s *VarietyState) MarkUsed(title string) {
	s.used[title] = struct{}{}
}

// Used reports whether a recipe title was already picked today.
func (s *VarietyState) Used(title string) bool {
	_, ok := s.used[title]
	return ok
}

// PickIndex computes the deterministic starting index into a variation list
// of length n, spreading picks across the week by day and meal position and
// perturbing by the week seed.
func (s *VarietyState) PickIndex(dayOfWeek, mealIndex, n int) int {
	if n <= 0 {
		return 0
	}
	base := dayOfWeek*13 + mealIndex*97 + int(s.weekSeed%9973)
	return base % n
}
