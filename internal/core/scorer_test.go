package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreScenarios(t *testing.T) {
	tests := []struct {
		name                                        string
		energy, sleep, workPressure, personalStress int
		wantScore                                   int
		wantLeave                                   LeaveType
	}{
		{"best possible day", 10, 10, 1, 1, 90, LeaveWorkNormally},
		{"worst possible day clamps to floor", 1, 1, 10, 10, MinScore, LeaveFullDay},
		{"exactly 65 works normally", 10, 10, 3, 4, 65, LeaveWorkNormally},
		{"64 works with care", 10, 9, 3, 3, 64, LeaveWorkWithCare},
		{"exactly 45 works with care", 10, 10, 5, 6, 45, LeaveWorkWithCare},
		{"44 takes half day", 10, 9, 5, 5, 44, LeaveHalfDay},
		{"exactly 25 takes half day", 10, 10, 7, 8, 25, LeaveHalfDay},
		{"24 takes full day", 10, 9, 7, 7, 24, LeaveFullDay},
		{"ordinary day", 8, 8, 3, 3, 42, LeaveHalfDay},
		{"middle of every scale", 5, 5, 5, 5, MinScore, LeaveFullDay},
		{"odd stress sum stays integral", 9, 9, 2, 3, 61, LeaveWorkWithCare},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, leave, err := Score(tt.energy, tt.sleep, tt.workPressure, tt.personalStress)
			require.NoError(t, err)
			assert.Equal(t, tt.wantScore, score)
			assert.Equal(t, tt.wantLeave, leave)
		})
	}
}

func TestScoreRejectsOutOfRange(t *testing.T) {
	tests := []struct {
		name                                        string
		energy, sleep, workPressure, personalStress int
		wantField                                   string
	}{
		{"energy zero", 0, 5, 5, 5, "energy"},
		{"sleep eleven", 5, 11, 5, 5, "sleep"},
		{"negative work pressure", 5, 5, -1, 5, "work_pressure"},
		{"personal stress too high", 5, 5, 5, 42, "personal_stress"},
		{"first offender wins", 0, 0, 0, 0, "energy"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Score(tt.energy, tt.sleep, tt.workPressure, tt.personalStress)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidInput))

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.wantField, verr.Field)
		})
	}
}

func forEachInput(fn func(e, s, wp, ps int)) {
	for e := MinInput; e <= MaxInput; e++ {
		for s := MinInput; s <= MaxInput; s++ {
			for wp := MinInput; wp <= MaxInput; wp++ {
				for ps := MinInput; ps <= MaxInput; ps++ {
					fn(e, s, wp, ps)
				}
			}
		}
	}
}

func mustScore(t *testing.T, e, s, wp, ps int) int {
	t.Helper()
	score, _, err := Score(e, s, wp, ps)
	require.NoError(t, err)
	return score
}

func TestScoreStaysInRange(t *testing.T) {
	forEachInput(func(e, s, wp, ps int) {
		score := mustScore(t, e, s, wp, ps)
		if score < MinScore || score > MaxScore {
			t.Fatalf("Score(%d,%d,%d,%d) = %d, outside [%d,%d]", e, s, wp, ps, score, MinScore, MaxScore)
		}
	})
}

func TestScoreMonotonic(t *testing.T) {
	forEachInput(func(e, s, wp, ps int) {
		base := mustScore(t, e, s, wp, ps)

		if wp < MaxInput && mustScore(t, e, s, wp+1, ps) > base {
			t.Fatalf("score rose with work pressure at (%d,%d,%d,%d)", e, s, wp, ps)
		}
		if ps < MaxInput && mustScore(t, e, s, wp, ps+1) > base {
			t.Fatalf("score rose with personal stress at (%d,%d,%d,%d)", e, s, wp, ps)
		}
		if e < MaxInput && mustScore(t, e+1, s, wp, ps) < base {
			t.Fatalf("score fell with energy at (%d,%d,%d,%d)", e, s, wp, ps)
		}
		if s < MaxInput && mustScore(t, e, s+1, wp, ps) < base {
			t.Fatalf("score fell with sleep at (%d,%d,%d,%d)", e, s, wp, ps)
		}
	})
}

func TestScoreDeterministic(t *testing.T) {
	forEachInput(func(e, s, wp, ps int) {
		s1, l1, _ := Score(e, s, wp, ps)
		s2, l2, _ := Score(e, s, wp, ps)
		if s1 != s2 || l1 != l2 {
			t.Fatalf("Score(%d,%d,%d,%d) not deterministic", e, s, wp, ps)
		}
		if l1 != CategoryFor(s1) {
			t.Fatalf("category %s does not match bucket of score %d", l1, s1)
		}
	})
}

func TestCategoryFor(t *testing.T) {
	tests := []struct {
		score int
		want  LeaveType
	}{
		{5, LeaveFullDay},
		{24, LeaveFullDay},
		{25, LeaveHalfDay},
		{44, LeaveHalfDay},
		{45, LeaveWorkWithCare},
		{64, LeaveWorkWithCare},
		{65, LeaveWorkNormally},
		{100, LeaveWorkNormally},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CategoryFor(tt.score), "score %d", tt.score)
	}
}

func TestScoreAssessment(t *testing.T) {
	t.Run("names the dominant factor", func(t *testing.T) {
		tests := []struct {
			name       string
			assessment Assessment
			want       string
		}{
			{"stress", Assessment{Energy: 1, Sleep: 1, WorkPressure: 10, PersonalStress: 10}, "stress"},
			{"fatigue", Assessment{Energy: 2, Sleep: 9, WorkPressure: 2, PersonalStress: 2}, "low energy"},
			{"sleep", Assessment{Energy: 9, Sleep: 2, WorkPressure: 2, PersonalStress: 2}, "poor sleep"},
		}
		for _, tt := range tests {
			rec, err := ScoreAssessment(tt.assessment)
			require.NoError(t, err, tt.name)
			assert.Equal(t, LeaveFullDay, rec.LeaveType, tt.name)
			assert.Contains(t, rec.Justification, tt.want, tt.name)
			assert.NotEmpty(t, rec.Suggestions, tt.name)
		}
	})

	t.Run("healthy day", func(t *testing.T) {
		rec, err := ScoreAssessment(Assessment{Mood: MoodGreat, Energy: 9, Sleep: 9, WorkPressure: 2, PersonalStress: 1})
		require.NoError(t, err)
		assert.Equal(t, LeaveWorkNormally, rec.LeaveType)
		assert.Contains(t, rec.Justification, "healthy")
	})

	t.Run("rejects unknown mood", func(t *testing.T) {
		_, err := ScoreAssessment(Assessment{Mood: "elated", Energy: 5, Sleep: 5, WorkPressure: 5, PersonalStress: 5})
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "mood", verr.Field)
	})

	t.Run("rejects unknown leave balance", func(t *testing.T) {
		_, err := ScoreAssessment(Assessment{Energy: 5, Sleep: 5, WorkPressure: 5, PersonalStress: 5, LeaveBalance: "lots"})
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "leave_balance", verr.Field)
	})

	t.Run("leave balance does not move the score", func(t *testing.T) {
		base := Assessment{Energy: 4, Sleep: 6, WorkPressure: 6, PersonalStress: 4}
		withNone := base
		withNone.LeaveBalance = LeaveBalanceNone

		a, err := ScoreAssessment(base)
		require.NoError(t, err)
		b, err := ScoreAssessment(withNone)
		require.NoError(t, err)
		assert.Equal(t, a.Score, b.Score)
		assert.Equal(t, a.LeaveType, b.LeaveType)
	})
}

func TestLeaveTypeLabels(t *testing.T) {
	for _, lt := range LeaveTypes {
		assert.True(t, lt.Valid())
		assert.NotEqual(t, string(lt), lt.Label(), "label for %s should be human readable", lt)
	}
	assert.False(t, LeaveType("sick_day").Valid())
}
