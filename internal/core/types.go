package core

import (
	"errors"
	"fmt"
)

// Mood is the self-reported mood label.
type Mood string

const (
	MoodGreat Mood = "great"
	MoodGood  Mood = "good"
	MoodOkay  Mood = "okay"
	MoodLow   Mood = "low"
	MoodAwful Mood = "awful"
)

// Moods lists every accepted mood label, best first.
var Moods = []Mood{MoodGreat, MoodGood, MoodOkay, MoodLow, MoodAwful}

// Valid reports whether m is a known mood label.
func (m Mood) Valid() bool {
	for _, known := range Moods {
		if m == known {
			return true
		}
	}
	return false
}

// LeaveBalance is an optional hint about how much leave the user has left.
// It only decorates the prompt; the fallback heuristic ignores it.
type LeaveBalance string

const (
	LeaveBalancePlenty LeaveBalance = "plenty"
	LeaveBalanceSome   LeaveBalance = "some"
	LeaveBalanceLow    LeaveBalance = "low"
	LeaveBalanceNone   LeaveBalance = "none"
)

// Valid reports whether b is empty or a known balance category.
func (b LeaveBalance) Valid() bool {
	switch b {
	case "", LeaveBalancePlenty, LeaveBalanceSome, LeaveBalanceLow, LeaveBalanceNone:
		return true
	}
	return false
}

// Assessment is one check-in submitted by the user.
type Assessment struct {
	Mood           Mood         `json:"mood" yaml:"mood"`
	Energy         int          `json:"energy" yaml:"energy"`                   // 1-10, higher is better
	Sleep          int          `json:"sleep" yaml:"sleep"`                     // 1-10, higher is better
	WorkPressure   int          `json:"work_pressure" yaml:"work_pressure"`     // 1-10, higher is worse
	PersonalStress int          `json:"personal_stress" yaml:"personal_stress"` // 1-10, higher is worse
	LeaveBalance   LeaveBalance `json:"leave_balance,omitempty" yaml:"leave_balance,omitempty"`
	Notes          string       `json:"notes,omitempty" yaml:"notes,omitempty"` // Free text, prompt only
}

// Input bounds for the four scalar self-report values.
const (
	MinInput = 1
	MaxInput = 10
)

// Validate checks every field and reports the first one out of its domain.
func (a Assessment) Validate() error {
	if a.Mood != "" && !a.Mood.Valid() {
		return &ValidationError{Field: "mood", Message: fmt.Sprintf("unknown mood %q", a.Mood)}
	}
	if err := validateScalars(a.Energy, a.Sleep, a.WorkPressure, a.PersonalStress); err != nil {
		return err
	}
	if !a.LeaveBalance.Valid() {
		return &ValidationError{Field: "leave_balance", Message: fmt.Sprintf("unknown leave balance %q", a.LeaveBalance)}
	}
	return nil
}

// LeaveType is the recommendation category, ordered by increasing need for rest.
type LeaveType string

const (
	LeaveWorkNormally LeaveType = "work_normally"
	LeaveWorkWithCare LeaveType = "work_with_care"
	LeaveHalfDay      LeaveType = "half_day_leave"
	LeaveFullDay      LeaveType = "full_day_leave"
)

// LeaveTypes lists the categories from least to most rest.
var LeaveTypes = []LeaveType{LeaveWorkNormally, LeaveWorkWithCare, LeaveHalfDay, LeaveFullDay}

// Valid reports whether t is one of the four categories.
func (t LeaveType) Valid() bool {
	for _, known := range LeaveTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Label returns the human-readable form used on the recommendation card.
func (t LeaveType) Label() string {
	switch t {
	case LeaveFullDay:
		return "Take a full day off"
	case LeaveHalfDay:
		return "Take a half day off"
	case LeaveWorkWithCare:
		return "Work, but pace yourself"
	case LeaveWorkNormally:
		return "Work normally"
	}
	return string(t)
}

// Recommendation is the outcome shown to the user.
type Recommendation struct {
	Score         int       `json:"wellness_score"` // Clamped to [MinScore, MaxScore]
	LeaveType     LeaveType `json:"leave_type"`
	Justification string    `json:"justification"`
	Suggestions   []string  `json:"suggestions,omitempty"`
}

// Source says who produced a recommendation.
type Source string

const (
	SourceAI       Source = "ai"
	SourceFallback Source = "fallback"
)

// Advice wraps a recommendation with how it was obtained.
type Advice struct {
	Recommendation Recommendation `json:"recommendation"`
	Source         Source         `json:"source"`
	Adapter        string         `json:"adapter,omitempty"`
	Model          string         `json:"model,omitempty"`
	FallbackReason string         `json:"fallback_reason,omitempty"`
	PromptChars    int            `json:"-"`
	ReplyChars     int            `json:"-"`
}

// ErrInvalidInput is the sentinel every *ValidationError unwraps to.
var ErrInvalidInput = errors.New("invalid input")

// ValidationError represents a value outside its declared domain.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}
