package core

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedSource int

func (f fixedSource) IntN(n int) int {
	if int(f) < 0 {
		return n - 1
	}
	return int(f)
}

func TestEmotionalForecastWeather(t *testing.T) {
	tests := []struct {
		name      string
		in        ForecastInput
		wantScore int
		want      string
	}{
		{"19 is sunny", ForecastInput{Mood: 5, Sleep: 5, Activity: 2, Support: 2}, 19, "Sunny"},
		{"18 is partly cloudy", ForecastInput{Mood: 5, Sleep: 5, Activity: 1, Support: 2}, 18, "Partly Cloudy"},
		{"13 is partly cloudy", ForecastInput{Mood: 4, Sleep: 5}, 13, "Partly Cloudy"},
		{"12 is rainy", ForecastInput{Mood: 4, Sleep: 4}, 12, "Rainy"},
		{"7 is rainy", ForecastInput{Mood: 3, Sleep: 1}, 7, "Rainy"},
		{"6 is stormy", ForecastInput{Mood: 3}, 6, "Stormy"},
		{"lowest possible", ForecastInput{Stress: 10}, -10, "Stormy"},
		{"highest possible", ForecastInput{Mood: 10, Sleep: 10, Activity: 10, Support: 10}, 50, "Sunny"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := EmotionalForecast(tt.in, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.wantScore, f.Score)
			assert.Equal(t, tt.want, f.Weather)
			assert.NotEmpty(t, f.Icon)
			assert.NotEmpty(t, f.Description)
			assert.NotEmpty(t, f.Suggestion)
		})
	}
}

func TestEmotionalForecastConfidence(t *testing.T) {
	in := ForecastInput{Mood: 5, Stress: 5, Sleep: 5, Activity: 5, Support: 5}

	f, err := EmotionalForecast(in, nil)
	require.NoError(t, err)
	assert.Equal(t, 85, f.Confidence)

	f, err = EmotionalForecast(in, fixedSource(0))
	require.NoError(t, err)
	assert.Equal(t, 85, f.Confidence)

	f, err = EmotionalForecast(in, fixedSource(-1))
	require.NoError(t, err)
	assert.Equal(t, 99, f.Confidence)

	r := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 200; i++ {
		f, err := EmotionalForecast(in, r)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, f.Confidence, 85)
		assert.LessOrEqual(t, f.Confidence, 99)
	}
}

func TestEmotionalForecastRejectsOutOfRange(t *testing.T) {
	tests := []struct {
		in        ForecastInput
		wantField string
	}{
		{ForecastInput{Mood: 11}, "mood"},
		{ForecastInput{Stress: -1}, "stress"},
		{ForecastInput{Support: 12}, "support"},
	}

	for _, tt := range tests {
		_, err := EmotionalForecast(tt.in, nil)
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, tt.wantField, verr.Field)
		assert.ErrorIs(t, err, ErrInvalidInput)
	}
}
