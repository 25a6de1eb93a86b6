package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dhabedank/leave-advisor/internal/core"
	"github.com/dhabedank/leave-advisor/internal/output"
)

// ScoreCmd runs only the deterministic heuristic.
var ScoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a check-in with the built-in heuristic (no LLM)",
	Long: `Compute the wellness score and leave category without calling a model.

  score = 100 - 10*avg(work pressure, personal stress)
              - 8*(10 - energy) - 6*(10 - sleep)

clamped to 5..100, then:
  < 25  full_day_leave
  < 45  half_day_leave
  < 65  work_with_care
  else  work_normally`,
	Args: cobra.NoArgs,
	RunE: runScore,
}

func init() {
	addAssessmentFlags(ScoreCmd)
	addOutputFlags(ScoreCmd)
	addConfigFlag(ScoreCmd)
}

func runScore(cmd *cobra.Command, args []string) error {
	if err := loadConfig(cmd); err != nil {
		return err
	}

	assessment := assessmentFromFlags()
	rec, err := core.ScoreAssessment(assessment)
	if err != nil {
		return err
	}

	out, err := output.New(outputFormat, outputConfig(cmd))
	if err != nil {
		return err
	}

	return out.WriteAdvice(assessment, &core.Advice{
		Recommendation: rec,
		Source:         core.SourceFallback,
	})
}
