package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dhabedank/leave-advisor/internal/core"
	"github.com/dhabedank/leave-advisor/internal/llm"
	"github.com/dhabedank/leave-advisor/internal/logger"
	"github.com/dhabedank/leave-advisor/internal/output"
	"github.com/dhabedank/leave-advisor/internal/tui"
)

var (
	mood           string
	energy         int
	sleep          int
	workPressure   int
	personalStress int
	leaveBalance   string
	notes          string
)

// AdviseCmd represents the advise command
var AdviseCmd = &cobra.Command{
	Use:   "advise",
	Short: "Ask whether to take leave tomorrow",
	Long: `Send today's check-in to an LLM and show its recommendation.

The model answers with one of:
- work_normally
- work_with_care
- half_day_leave
- full_day_leave

If the model is unavailable, times out, or replies with something that
cannot be parsed, a deterministic heuristic answers instead.`,
	Example: `  leave-advisor advise --mood low --energy 3 --sleep 4 --work-pressure 8 --personal-stress 6
  leave-advisor advise --energy 7 --sleep 8 --work-pressure 3 --personal-stress 2 --no-ai -o json`,
	Args: cobra.NoArgs,
	RunE: runAdvise,
}

func init() {
	addAssessmentFlags(AdviseCmd)
	addLLMFlags(AdviseCmd)
	addOutputFlags(AdviseCmd)
	addCostFlag(AdviseCmd)
	addCommonFlags(AdviseCmd)
}

func addAssessmentFlags(c *cobra.Command) {
	c.Flags().StringVar(&mood, "mood", string(core.MoodOkay), "Mood (great/good/okay/low/awful)")
	c.Flags().IntVarP(&energy, "energy", "e", 0, "Energy level, 1-10 (10 = fully energised)")
	c.Flags().IntVarP(&sleep, "sleep", "s", 0, "Sleep quality, 1-10 (10 = slept very well)")
	c.Flags().IntVarP(&workPressure, "work-pressure", "w", 0, "Work pressure, 1-10 (10 = overwhelming)")
	c.Flags().IntVarP(&personalStress, "personal-stress", "p", 0, "Personal stress, 1-10 (10 = overwhelming)")
	c.Flags().StringVar(&leaveBalance, "leave-balance", "", "Remaining leave (plenty/some/low/none)")
	c.Flags().StringVar(&notes, "notes", "", "Anything else the model should know")

	for _, name := range []string{"energy", "sleep", "work-pressure", "personal-stress"} {
		_ = c.MarkFlagRequired(name)
	}
}

func assessmentFromFlags() core.Assessment {
	return core.Assessment{
		Mood:           core.Mood(mood),
		Energy:         energy,
		Sleep:          sleep,
		WorkPressure:   workPressure,
		PersonalStress: personalStress,
		LeaveBalance:   core.LeaveBalance(leaveBalance),
		Notes:          notes,
	}
}

func runAdvise(cmd *cobra.Command, args []string) error {
	if err := loadConfig(cmd); err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.New(logLevel, logFormat)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	assessment := assessmentFromFlags()
	if err := assessment.Validate(); err != nil {
		return err
	}

	out, err := output.New(outputFormat, outputConfig(cmd))
	if err != nil {
		return err
	}

	advisor := newAdvisor(log)
	advice, err := advisor.advise(cmd.Context(), assessment)
	if err != nil {
		return err
	}

	return out.WriteAdvice(assessment, advice)
}

func outputConfig(cmd *cobra.Command) output.Config {
	cfg := output.DefaultConfig()
	cfg.Writer = cmd.OutOrStdout()
	cfg.Path = outputPath
	if f := cmd.Flags().Lookup("show-cost"); f != nil {
		cfg.ShowCost = showCost
	}
	return cfg
}

// advisor resolves the LLM adapter once and reuses it for every check-in.
type advisor struct {
	adapter    llm.Adapter
	adapterErr error
	log        *zap.Logger
}

func newAdvisor(log *zap.Logger) *advisor {
	a := &advisor{log: log}
	if noAI {
		return a
	}

	config := llm.Config{
		Model:     llmModel,
		MaxTokens: maxTokens,
		PreferCLI: true,
	}
	adapter, err := llm.NewAdapter(llmProvider, config)
	if err != nil {
		log.Warn("no LLM adapter, using heuristic", zap.String("provider", llmProvider), zap.Error(err))
		a.adapterErr = err
		return a
	}
	if adapter != nil {
		log.Info("using LLM adapter", zap.String("adapter", adapter.Name()), zap.String("model", llm.ModelOf(adapter)))
	}
	a.adapter = adapter
	return a
}

func (a *advisor) advise(ctx context.Context, assessment core.Assessment) (*core.Advice, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	opts := core.AdviseOptions{
		Assessment: assessment,
		Timeout:    timeout,
		Logger:     a.log,
	}

	// A nil *Adapter must not reach core as a non-nil interface.
	if a.adapter == nil {
		advice, err := core.Advise(ctx, opts)
		if err != nil {
			return nil, err
		}
		switch {
		case noAI:
			advice.FallbackReason = "--no-ai"
		case a.adapterErr != nil:
			advice.FallbackReason = a.adapterErr.Error()
		}
		return advice, nil
	}

	opts.LLMAdapter = a.adapter
	opts.Model = llm.ModelOf(a.adapter)

	var advice *core.Advice
	label := fmt.Sprintf("Asking %s", tui.ModelStyle.Render(a.adapter.Name()))
	err := tui.RunWithSpinner(ctx, label, func(ctx context.Context) error {
		var err error
		advice, err = core.Advise(ctx, opts)
		return err
	})
	if err != nil {
		return nil, err
	}
	return advice, nil
}
