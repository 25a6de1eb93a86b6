package core

import (
	"fmt"
	"strings"
)

// SystemPrompt is the system instruction for the leave recommendation.
// The reply shape must match replySchema in reply.go.
const SystemPrompt = `You are a workplace wellbeing advisor. You receive a short self-assessment and output ONLY valid JSON. No explanations, no commentary, no markdown - just the JSON object.

Decide whether the person should take leave tomorrow.

## OUTPUT FORMAT

{
  "wellness_score": 0-100 (higher means better wellbeing),
  "leave_type": "full_day_leave" | "half_day_leave" | "work_with_care" | "work_normally",
  "justification": "one or two sentences explaining the decision",
  "suggestions": ["short, concrete action", "..."]
}

## GUIDELINES

- Weigh stress (work and personal), energy and sleep together. No single value decides.
- Prefer rest when several signals are poor at once.
- If leave balance is low or none, prefer "work_with_care" over a half day unless the signals are severe.
- Give 2-4 suggestions the person could actually do tomorrow.
- You are NOT a doctor. Do not diagnose.`

// UserPromptTemplate is filled by BuildUserPrompt.
const UserPromptTemplate = `Here is today's self-assessment (scales are 1-10):

- Mood: %s
- Energy: %d (10 = fully energised)
- Sleep quality: %d (10 = slept very well)
- Work pressure: %d (10 = overwhelming)
- Personal stress: %d (10 = overwhelming)
%s
Return the JSON object now.`

// BuildUserPrompt renders an assessment into the user prompt.
func BuildUserPrompt(a Assessment) string {
	mood := string(a.Mood)
	if mood == "" {
		mood = "not given"
	}

	var extra strings.Builder
	if a.LeaveBalance != "" {
		extra.WriteString(fmt.Sprintf("- Remaining leave balance: %s\n", a.LeaveBalance))
	}
	if notes := strings.TrimSpace(a.Notes); notes != "" {
		extra.WriteString(fmt.Sprintf("- Notes from the person: %s\n", notes))
	}

	return fmt.Sprintf(
		UserPromptTemplate,
		mood,
		a.Energy,
		a.Sleep,
		a.WorkPressure,
		a.PersonalStress,
		extra.String(),
	)
}
