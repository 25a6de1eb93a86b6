package core

import "fmt"

// Forecast is the "emotional weather" reading: a lighter view of the same
// check-in, independent of the leave decision.
type Forecast struct {
	Score       int    `json:"score"`
	Weather     string `json:"weather"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
	Suggestion  string `json:"suggestion"`
	Confidence  int    `json:"confidence"` // Percent, 85-99
}

// ForecastInput holds the five sliders, each in [0, 10].
type ForecastInput struct {
	Mood     int `json:"mood" yaml:"mood"`
	Stress   int `json:"stress" yaml:"stress"`
	Sleep    int `json:"sleep" yaml:"sleep"`
	Activity int `json:"activity" yaml:"activity"`
	Support  int `json:"support" yaml:"support"`
}

// IntSource draws a value in [0, n). *rand.Rand from math/rand/v2 satisfies it.
type IntSource interface {
	IntN(n int) int
}

const (
	minConfidence = 85
	maxConfidence = 99
)

// EmotionalForecast maps the sliders to a weather metaphor.
func EmotionalForecast(in ForecastInput, src IntSource) (*Forecast, error) {
	fields := []struct {
		name  string
		value int
	}{
		{"mood", in.Mood},
		{"stress", in.Stress},
		{"sleep", in.Sleep},
		{"activity", in.Activity},
		{"support", in.Support},
	}
	for _, f := range fields {
		if f.value < 0 || f.value > 10 {
			return nil, &ValidationError{Field: f.name, Message: fmt.Sprintf("must be between 0 and 10, got %d", f.value)}
		}
	}

	score := in.Mood*2 + in.Sleep - in.Stress + in.Activity + in.Support

	f := &Forecast{Score: score}
	switch {
	case score > 18:
		f.Weather, f.Icon = "Sunny", "☀️"
		f.Description = "You're radiating positivity and calm."
		f.Suggestion = "Enjoy this emotional sunshine. Spread it to others!"
	case score > 12:
		f.Weather, f.Icon = "Partly Cloudy", "⛅"
		f.Description = "You're balanced but with mild stress."
		f.Suggestion = "Take breaks. Reflect. Appreciate little joys."
	case score > 6:
		f.Weather, f.Icon = "Rainy", "🌧️"
		f.Description = "Emotions feel heavy."
		f.Suggestion = "Reach out to someone. Let your feelings flow."
	default:
		f.Weather, f.Icon = "Stormy", "⛈️"
		f.Description = "Overwhelmed or low energy."
		f.Suggestion = "Be kind to yourself. Consider rest or support."
	}

	f.Confidence = minConfidence
	if src != nil {
		f.Confidence += src.IntN(maxConfidence - minConfidence + 1)
	}
	return f, nil
}
