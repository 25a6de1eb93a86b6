package core

import (
	"strings"
	"testing"
)

func TestBuildUserPrompt(t *testing.T) {
	prompt := BuildUserPrompt(Assessment{
		Mood:           MoodAwful,
		Energy:         2,
		Sleep:          3,
		WorkPressure:   9,
		PersonalStress: 7,
		LeaveBalance:   LeaveBalanceLow,
		Notes:          "  deadline on Friday  ",
	})

	for _, want := range []string{
		"Mood: awful",
		"Energy: 2",
		"Sleep quality: 3",
		"Work pressure: 9",
		"Personal stress: 7",
		"Remaining leave balance: low",
		"Notes from the person: deadline on Friday\n",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q:\n%s", want, prompt)
		}
	}
}

func TestBuildUserPromptOptionalFields(t *testing.T) {
	prompt := BuildUserPrompt(Assessment{Energy: 5, Sleep: 5, WorkPressure: 5, PersonalStress: 5, Notes: "   "})

	if !strings.Contains(prompt, "Mood: not given") {
		t.Errorf("expected placeholder mood, got:\n%s", prompt)
	}
	if strings.Contains(prompt, "leave balance") {
		t.Error("leave balance line should be omitted when unset")
	}
	if strings.Contains(prompt, "Notes") {
		t.Error("notes line should be omitted when blank")
	}
	if strings.Contains(prompt, "%!") {
		t.Errorf("format verbs left in prompt:\n%s", prompt)
	}
}

func TestSystemPromptNamesEveryLeaveType(t *testing.T) {
	for _, lt := range LeaveTypes {
		if !strings.Contains(SystemPrompt, string(lt)) {
			t.Errorf("SystemPrompt does not mention %s", lt)
		}
	}
	for _, key := range []string{"wellness_score", "leave_type", "justification", "suggestions"} {
		if !strings.Contains(SystemPrompt, key) {
			t.Errorf("SystemPrompt does not mention key %s", key)
		}
	}
}
