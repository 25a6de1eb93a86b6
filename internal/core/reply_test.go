package core

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validReply = `{"wellness_score": 38, "leave_type": "half_day_leave", "justification": "  Tired and stretched.  ", "suggestions": ["Sleep early", "  ", "Block the morning"]}`

func TestParseReplyAccepts(t *testing.T) {
	wrapped, err := json.Marshal(struct {
		Type    string `json:"type"`
		IsError bool   `json:"is_error"`
		Result  string `json:"result"`
	}{"result", false, "```json\n" + validReply + "\n```"})
	require.NoError(t, err)

	tests := []struct {
		name   string
		output string
	}{
		{"plain json", validReply},
		{"markdown fence", "```json\n" + validReply + "\n```"},
		{"bare fence", "```\n" + validReply + "\n```"},
		{"surrounding prose", "Here is my answer:\n" + validReply + "\nTake care!"},
		{"cli wrapper", string(wrapped)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ParseReply(tt.output)
			require.True(t, result.OK(), "failure: %v", result.Failure)
			assert.Nil(t, result.Failure)

			rec := result.Recommendation
			assert.Equal(t, 38, rec.Score)
			assert.Equal(t, LeaveHalfDay, rec.LeaveType)
			assert.Equal(t, "Tired and stretched.", rec.Justification)
			assert.Equal(t, []string{"Sleep early", "Block the morning"}, rec.Suggestions)
		})
	}
}

func TestParseReplyScoreNormalisation(t *testing.T) {
	tests := []struct {
		score float64
		want  int
	}{
		{0, MinScore},
		{2.4, MinScore},
		{72.6, 73},
		{72.4, 72},
		{100, MaxScore},
	}

	for _, tt := range tests {
		body, err := json.Marshal(map[string]interface{}{
			"wellness_score": tt.score,
			"leave_type":     "work_with_care",
		})
		require.NoError(t, err)

		result := ParseReply(string(body))
		require.True(t, result.OK(), "score %v: %v", tt.score, result.Failure)
		assert.Equal(t, tt.want, result.Recommendation.Score, "score %v", tt.score)
		assert.Empty(t, result.Recommendation.Suggestions)
	}
}

func TestParseReplyRejects(t *testing.T) {
	tests := []struct {
		name       string
		output     string
		wantReason string
	}{
		{"empty", "   ", "empty reply"},
		{"prose only", "I think you should rest tomorrow.", "no JSON object in reply"},
		{"braces reversed", "} nothing {", "no JSON object in reply"},
		{"cli error", `{"type":"result","is_error":true,"result":"rate limited"}`, "CLI reported an error"},
		{"truncated", `{"wellness_score": 40, "leave_type": "half_day_leave"`, "no JSON object in reply"},
		{"broken json", `{"wellness_score": 40, leave_type: half}`, "reply is not valid JSON"},
		{"missing leave type", `{"wellness_score": 40}`, "reply does not match schema"},
		{"unknown leave type", `{"wellness_score": 40, "leave_type": "sick_day"}`, "reply does not match schema"},
		{"score above range", `{"wellness_score": 150, "leave_type": "work_normally"}`, "reply does not match schema"},
		{"negative score", `{"wellness_score": -3, "leave_type": "full_day_leave"}`, "reply does not match schema"},
		{"score as string", `{"wellness_score": "high", "leave_type": "work_normally"}`, "reply does not match schema"},
		{"suggestions not strings", `{"wellness_score": 50, "leave_type": "work_with_care", "suggestions": [1, 2]}`, "reply does not match schema"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ParseReply(tt.output)
			assert.False(t, result.OK())
			assert.Nil(t, result.Recommendation)
			require.NotNil(t, result.Failure)
			assert.Equal(t, tt.wantReason, result.Failure.Reason)
			assert.Contains(t, result.Failure.Error(), "unusable model reply")
		})
	}
}

func TestParseFailureUnwrap(t *testing.T) {
	result := ParseReply(`{"wellness_score": 40}`)
	require.NotNil(t, result.Failure)
	require.Error(t, result.Failure.Err)
	assert.ErrorIs(t, result.Failure, result.Failure.Err)
	assert.Contains(t, result.Failure.Error(), "leave_type")
}
