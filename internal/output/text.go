package output

import (
	"fmt"
	"strings"

	"github.com/dhabedank/leave-advisor/internal/core"
	"github.com/dhabedank/leave-advisor/internal/history"
	"github.com/dhabedank/leave-advisor/internal/tui"
)

// TextAdapter renders recommendations as a terminal card.
type TextAdapter struct {
	config Config
}

// NewTextAdapter creates a text adapter.
func NewTextAdapter(config Config) *TextAdapter {
	return &TextAdapter{config: config}
}

func (a *TextAdapter) Name() string {
	return "text"
}

func (a *TextAdapter) WriteAdvice(assessment core.Assessment, advice *core.Advice) error {
	_, err := fmt.Fprintln(a.config.writer(), a.renderCard(advice))
	return err
}

func (a *TextAdapter) renderCard(advice *core.Advice) string {
	rec := advice.Recommendation

	var b strings.Builder
	b.WriteString(tui.TitleStyle.Render("Tomorrow's recommendation"))
	b.WriteString("\n\n")
	b.WriteString(tui.LeaveStyle(rec.LeaveType).Render(rec.LeaveType.Label()))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %s\n", tui.LabelStyle.Render("Wellness score:"), tui.ScoreStyle.Render(fmt.Sprintf("%d/100", rec.Score))))

	if rec.Justification != "" {
		b.WriteString("\n")
		b.WriteString(rec.Justification)
		b.WriteString("\n")
	}

	if len(rec.Suggestions) > 0 {
		b.WriteString("\n")
		b.WriteString(tui.LabelStyle.Render("Suggestions"))
		b.WriteString("\n")
		for _, s := range rec.Suggestions {
			b.WriteString(fmt.Sprintf("  • %s\n", s))
		}
	}

	b.WriteString("\n")
	b.WriteString(a.sourceLine(advice))

	return tui.CardStyle(rec.LeaveType).Render(b.String())
}

func (a *TextAdapter) sourceLine(advice *core.Advice) string {
	if advice.Source == core.SourceAI {
		line := fmt.Sprintf("Source: %s", advice.Adapter)
		if advice.Model != "" {
			line += " · " + tui.ModelStyle.Render(advice.Model)
		}
		if a.config.ShowCost {
			est := tui.EstimateCall(advice.Model, advice.PromptChars, advice.ReplyChars)
			line += " · " + tui.CostStyle.Render(est.String())
		}
		return tui.HelpStyle.Render(line)
	}

	line := "Source: built-in heuristic"
	if advice.FallbackReason != "" {
		line += " (" + advice.FallbackReason + ")"
	}
	return tui.WarningStyle.Render(line)
}

func (a *TextAdapter) WriteHistory(entries []history.Entry, trend history.Trend) error {
	w := a.config.writer()

	if len(entries) == 0 {
		_, err := fmt.Fprintln(w, tui.HelpStyle.Render("No check-ins recorded."))
		return err
	}

	var b strings.Builder
	b.WriteString(tui.TitleStyle.Render("Check-in history"))
	b.WriteString("\n\n")
	for i, e := range entries {
		rec := e.Advice.Recommendation
		source := "ai"
		if e.Advice.Source == core.SourceFallback {
			source = "heuristic"
		}
		b.WriteString(fmt.Sprintf("%3d. %s  %s  %s %s\n",
			i+1,
			e.RecordedAt.Format("2006-01-02 15:04"),
			tui.ScoreStyle.Render(fmt.Sprintf("%3d", rec.Score)),
			tui.LeaveStyle(rec.LeaveType).Render(fmt.Sprintf("%-24s", rec.LeaveType.Label())),
			tui.HelpStyle.Render(source),
		))
	}

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %d check-ins, average %.1f, latest %d (%+d since first) - %s\n",
		tui.LabelStyle.Render("Trend:"),
		trend.Count,
		trend.Average,
		trend.Latest,
		trend.Change,
		trendStyle(trend.Direction),
	))

	_, err := fmt.Fprint(w, b.String())
	return err
}

func trendStyle(d history.Direction) string {
	switch d {
	case history.DirectionImproving:
		return tui.SuccessStyle.Render(string(d))
	case history.DirectionDeclining:
		return tui.ErrorStyle.Render(string(d))
	default:
		return tui.SubtitleStyle.Render(string(d))
	}
}
