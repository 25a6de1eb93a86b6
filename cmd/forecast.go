package cmd

import (
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/spf13/cobra"

	"github.com/dhabedank/leave-advisor/internal/core"
	"github.com/dhabedank/leave-advisor/internal/tui"
)

var (
	forecastInput core.ForecastInput
	forecastSeed  uint64
	forecastJSON  bool
)

// ForecastCmd shows the emotional weather forecast.
var ForecastCmd = &cobra.Command{
	Use:   "forecast",
	Short: "Show your emotional weather forecast",
	Long: `Turn five 0-10 sliders into an emotional weather forecast
(Sunny, Partly Cloudy, Rainy or Stormy).

This is a lighter reading than "advise" and never affects the leave
recommendation.`,
	Args: cobra.NoArgs,
	RunE: runForecast,
}

func init() {
	ForecastCmd.Flags().IntVar(&forecastInput.Mood, "mood", 5, "Overall emotional feeling, 0-10")
	ForecastCmd.Flags().IntVar(&forecastInput.Stress, "stress", 5, "Current stress level, 0-10")
	ForecastCmd.Flags().IntVar(&forecastInput.Sleep, "sleep", 5, "How restful your last sleep was, 0-10")
	ForecastCmd.Flags().IntVar(&forecastInput.Activity, "activity", 5, "Exercise or movement today, 0-10")
	ForecastCmd.Flags().IntVar(&forecastInput.Support, "support", 5, "How supported you feel, 0-10")
	ForecastCmd.Flags().Uint64Var(&forecastSeed, "seed", 0, "Seed for the confidence value (0 = random)")
	ForecastCmd.Flags().BoolVar(&forecastJSON, "json", false, "Print JSON instead of a card")
}

func runForecast(cmd *cobra.Command, args []string) error {
	seed := forecastSeed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	src := rand.New(rand.NewPCG(seed, seed>>1))

	f, err := core.EmotionalForecast(forecastInput, src)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if forecastJSON {
		data, err := json.MarshalIndent(f, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	}

	card := fmt.Sprintf("%s  %s\n\n%s\n%s %s\n%s",
		f.Icon,
		tui.TitleStyle.Render(f.Weather),
		f.Description,
		tui.LabelStyle.Render("Suggestion:"),
		f.Suggestion,
		tui.HelpStyle.Render(fmt.Sprintf("Confidence: %d%%", f.Confidence)),
	)
	_, err = fmt.Fprintln(w, tui.BoxStyle.Render(card))
	return err
}
