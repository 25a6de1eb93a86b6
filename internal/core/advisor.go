package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// LLMAdapter is the interface for LLM providers used by the advisor.
// This matches llm.Adapter but is defined here to avoid import cycles.
type LLMAdapter interface {
	// Name returns the adapter identifier for logging.
	Name() string

	// Generate sends prompts to the LLM and returns its raw text reply.
	Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// DefaultTimeout bounds a single model call.
const DefaultTimeout = 60 * time.Second

// AdviseOptions configures one recommendation.
type AdviseOptions struct {
	// Assessment is the user's check-in.
	Assessment Assessment

	// LLMAdapter is the model to ask. Nil skips straight to the heuristic.
	LLMAdapter LLMAdapter

	// Model is recorded on the advice for display and cost estimates.
	Model string

	// Timeout bounds the model call. Zero uses DefaultTimeout.
	Timeout time.Duration

	// Logger receives fallback diagnostics. Nil discards them.
	Logger *zap.Logger
}

// Advise asks the model for a recommendation and falls back to the
// deterministic heuristic whenever the model cannot give a usable one.
// The only error returned is a *ValidationError for a bad assessment.
func Advise(ctx context.Context, opts AdviseOptions) (*Advice, error) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	fallback, err := ScoreAssessment(opts.Assessment)
	if err != nil {
		return nil, err
	}

	if opts.LLMAdapter == nil {
		return &Advice{
			Recommendation: fallback,
			Source:         SourceFallback,
			FallbackReason: "no LLM adapter configured",
		}, nil
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	userPrompt := BuildUserPrompt(opts.Assessment)
	advice := &Advice{
		Adapter:     opts.LLMAdapter.Name(),
		Model:       opts.Model,
		PromptChars: len(SystemPrompt) + len(userPrompt),
	}
	log = log.With(zap.String("adapter", advice.Adapter), zap.String("model", advice.Model))

	callCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	started := time.Now()
	output, err := opts.LLMAdapter.Generate(callCtx, SystemPrompt, userPrompt)
	if err != nil {
		reason := fmt.Sprintf("LLM call failed: %v", err)
		switch {
		case errors.Is(ctx.Err(), context.Canceled):
			reason = "LLM call cancelled"
		case errors.Is(err, context.DeadlineExceeded) || errors.Is(callCtx.Err(), context.DeadlineExceeded):
			reason = fmt.Sprintf("LLM call timed out after %s", timeout)
		}
		log.Warn("falling back to heuristic", zap.String("reason", reason), zap.Error(err))
		return withFallback(advice, fallback, reason), nil
	}
	advice.ReplyChars = len(output)

	result := ParseReply(output)
	if !result.OK() {
		log.Warn("falling back to heuristic",
			zap.String("reason", result.Failure.Reason),
			zap.Error(result.Failure),
			zap.Int("reply_chars", len(output)),
		)
		return withFallback(advice, fallback, result.Failure.Error()), nil
	}

	log.Debug("model recommendation parsed",
		zap.Duration("elapsed", time.Since(started)),
		zap.Int("score", result.Recommendation.Score),
		zap.String("leave_type", string(result.Recommendation.LeaveType)),
	)

	advice.Recommendation = *result.Recommendation
	advice.Source = SourceAI
	return advice, nil
}

func withFallback(advice *Advice, rec Recommendation, reason string) *Advice {
	advice.Recommendation = rec
	advice.Source = SourceFallback
	advice.FallbackReason = reason
	return advice
}
