package domain

import "strings"

// Sport is the closed set of session types the planner reasons about.
type Sport string

const (
	SportSwim     Sport = "swim"
	SportBike     Sport = "bike"
	SportRun      Sport = "run"
	SportStrength Sport = "strength"
	SportRest     Sport = "rest"
	SportOther    Sport = "other"
)

// sportKeywords maps free-text fragments to the closed Sport enum. This table
// is the single seam for sport classification; callers never match strings
// themselves.
var sportKeywords = []struct {
	sport    Sport
	keywords []string
}{
	{SportSwim, []string{"swim", "pool", "open water"}},
	{SportBike, []string{"bike", "ride", "cycling", "cycle", "trainer", "mtb"}},
	{SportRun, []string{"run", "jog", "treadmill", "track"}},
	{SportStrength, []string{"strength", "gym", "weights", "lift"}},
	{SportRest, []string{"rest", "off", "day off"}},
}

// NormalizeSport maps a free-text sport or workout type onto the Sport enum.
func NormalizeSport(raw string) Sport {
	lowered := strings.ToLower(strings.TrimSpace(raw))
	if lowered == "" {
		return SportOther
	}
	for _, entry := range sportKeywords {
		for _, kw := range entry.keywords {
			if strings.Contains(lowered, kw) {
				return entry.sport
			}
		}
	}
	return SportOther
}

// HasSessionKeyword reports whether the workout's type or title contains any
// of the provided fragments, case-insensitively.
func (w Workout) HasSessionKeyword(fragments ...string) bool {
	haystack := strings.ToLower(w.Sport + " " + w.Title)
	for _, fragment := range fragments {
		if strings.Contains(haystack, fragment) {
			return true
		}
	}
	return false
}
