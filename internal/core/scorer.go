package core

import "fmt"

// Score bounds after clamping.
const (
	MinScore = 5
	MaxScore = 100
)

// Category thresholds. A score equal to a threshold lands in the
// lower-severity bucket.
const (
	fullDayBelow  = 25
	halfDayBelow  = 45
	withCareBelow = 65
)

// Score is the deterministic fallback heuristic. It maps the four
// self-report scalars to a wellness score in [MinScore, MaxScore] and a
// leave category. Inputs outside [MinInput, MaxInput] are rejected.
func Score(energy, sleep, workPressure, personalStress int) (int, LeaveType, error) {
	if err := validateScalars(energy, sleep, workPressure, personalStress); err != nil {
		return 0, "", err
	}

	// 10 * avg(wp, ps) == 5 * (wp + ps), so the sum stays integral.
	raw := 100 - 5*(workPressure+personalStress) - 8*(10-energy) - 6*(10-sleep)
	score := clamp(raw, MinScore, MaxScore)

	return score, CategoryFor(score), nil
}

// CategoryFor buckets a score.
func CategoryFor(score int) LeaveType {
	switch {
	case score < fullDayBelow:
		return LeaveFullDay
	case score < halfDayBelow:
		return LeaveHalfDay
	case score < withCareBelow:
		return LeaveWorkWithCare
	default:
		return LeaveWorkNormally
	}
}

// ScoreAssessment validates a full assessment and builds a recommendation
// from the heuristic, with a justification naming the heaviest factor.
func ScoreAssessment(a Assessment) (Recommendation, error) {
	if err := a.Validate(); err != nil {
		return Recommendation{}, err
	}

	score, leave, err := Score(a.Energy, a.Sleep, a.WorkPressure, a.PersonalStress)
	if err != nil {
		return Recommendation{}, err
	}

	return Recommendation{
		Score:         score,
		LeaveType:     leave,
		Justification: justify(a, score, leave),
		Suggestions:   fallbackSuggestions(leave),
	}, nil
}

func justify(a Assessment, score int, leave LeaveType) string {
	// Penalties as they appear in the formula.
	stress := 5 * (a.WorkPressure + a.PersonalStress)
	fatigue := 8 * (10 - a.Energy)
	sleepDebt := 6 * (10 - a.Sleep)

	factor := "stress"
	switch {
	case fatigue > stress && fatigue >= sleepDebt:
		factor = "low energy"
	case sleepDebt > stress && sleepDebt > fatigue:
		factor = "poor sleep"
	}

	switch leave {
	case LeaveFullDay:
		return fmt.Sprintf("Wellness score %d is very low, driven mostly by %s. A full day of rest is the safest choice.", score, factor)
	case LeaveHalfDay:
		return fmt.Sprintf("Wellness score %d is low, mainly because of %s. A half day off should help you recover.", score, factor)
	case LeaveWorkWithCare:
		return fmt.Sprintf("Wellness score %d is moderate; %s is weighing on you. You can work, but keep the load light.", score, factor)
	default:
		return fmt.Sprintf("Wellness score %d is healthy. Nothing suggests you need time off tomorrow.", score)
	}
}

func fallbackSuggestions(leave LeaveType) []string {
	switch leave {
	case LeaveFullDay:
		return []string{"Tell your team early that you are off", "Sleep in and keep the day unscheduled", "Reach out to someone you trust"}
	case LeaveHalfDay:
		return []string{"Finish only what is urgent before noon", "Take the afternoon for rest or a walk"}
	case LeaveWorkWithCare:
		return []string{"Block short breaks between meetings", "Defer non-urgent work"}
	default:
		return []string{"Keep the routine that is working for you"}
	}
}

func validateScalars(energy, sleep, workPressure, personalStress int) error {
	fields := []struct {
		name  string
		value int
	}{
		{"energy", energy},
		{"sleep", sleep},
		{"work_pressure", workPressure},
		{"personal_stress", personalStress},
	}
	for _, f := range fields {
		if f.value < MinInput || f.value > MaxInput {
			return &ValidationError{
				Field:   f.name,
				Message: fmt.Sprintf("must be between %d and %d, got %d", MinInput, MaxInput, f.value),
			}
		}
	}
	return nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
