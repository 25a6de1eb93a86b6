package core

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// replySchema constrains what the model may send back.
var replySchema = map[string]interface{}{
	"type":     "object",
	"required": []string{"wellness_score", "leave_type"},
	"properties": map[string]interface{}{
		"wellness_score": map[string]interface{}{
			"type":    "number",
			"minimum": 0,
			"maximum": 100,
		},
		"leave_type": map[string]interface{}{
			"type": "string",
			"enum": []string{
				string(LeaveFullDay),
				string(LeaveHalfDay),
				string(LeaveWorkWithCare),
				string(LeaveWorkNormally),
			},
		},
		"justification": map[string]interface{}{"type": "string"},
		"suggestions": map[string]interface{}{
			"type":  "array",
			"items": map[string]interface{}{"type": "string"},
		},
	},
}

// ParseFailure explains why a model reply could not be used.
type ParseFailure struct {
	Reason string
	Raw    string
	Err    error
}

func (f *ParseFailure) Error() string {
	if f.Err != nil {
		return fmt.Sprintf("unusable model reply: %s: %v", f.Reason, f.Err)
	}
	return fmt.Sprintf("unusable model reply: %s", f.Reason)
}

func (f *ParseFailure) Unwrap() error {
	return f.Err
}

// ParseResult holds either a parsed recommendation or the failure.
// Exactly one field is set.
type ParseResult struct {
	Recommendation *Recommendation
	Failure        *ParseFailure
}

// OK reports whether the reply parsed.
func (r ParseResult) OK() bool {
	return r.Recommendation != nil
}

type modelReply struct {
	WellnessScore float64  `json:"wellness_score"`
	LeaveType     string   `json:"leave_type"`
	Justification string   `json:"justification"`
	Suggestions   []string `json:"suggestions"`
}

// ParseReply turns raw model output into a recommendation. It never panics
// and never returns a partially filled recommendation.
func ParseReply(output string) ParseResult {
	jsonStr, reason := extractJSON(output)
	if jsonStr == "" {
		return fail(reason, output, nil)
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewGoLoader(replySchema),
		gojsonschema.NewStringLoader(jsonStr),
	)
	if err != nil {
		return fail("reply is not valid JSON", jsonStr, err)
	}
	if !result.Valid() {
		errs := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			errs[i] = desc.String()
		}
		return fail("reply does not match schema", jsonStr, errors.New(strings.Join(errs, "; ")))
	}

	var reply modelReply
	if err := json.Unmarshal([]byte(jsonStr), &reply); err != nil {
		return fail("failed to decode reply", jsonStr, err)
	}

	rec := &Recommendation{
		Score:         clamp(int(math.Round(reply.WellnessScore)), MinScore, MaxScore),
		LeaveType:     LeaveType(reply.LeaveType),
		Justification: strings.TrimSpace(reply.Justification),
	}
	for _, s := range reply.Suggestions {
		if s = strings.TrimSpace(s); s != "" {
			rec.Suggestions = append(rec.Suggestions, s)
		}
	}
	return ParseResult{Recommendation: rec}
}

func fail(reason, raw string, err error) ParseResult {
	return ParseResult{Failure: &ParseFailure{Reason: reason, Raw: raw, Err: err}}
}

// extractJSON pulls the JSON object out of LLM output. On failure it
// returns "" and a reason.
func extractJSON(output string) (string, string) {
	output = strings.TrimSpace(output)
	if output == "" {
		return "", "empty reply"
	}

	// Claude CLI JSON wrapper
	if strings.HasPrefix(output, "{") {
		var wrapper struct {
			Type    string `json:"type"`
			Result  string `json:"result"`
			IsError bool   `json:"is_error"`
		}
		if err := json.Unmarshal([]byte(output), &wrapper); err == nil && wrapper.Type == "result" {
			if wrapper.IsError {
				return "", "CLI reported an error"
			}
			output = strings.TrimSpace(wrapper.Result)
		}
	}

	// Remove markdown fences
	if strings.HasPrefix(output, "```") {
		output = strings.TrimPrefix(output, "```json")
		output = strings.TrimPrefix(output, "```")
		if idx := strings.LastIndex(output, "```"); idx != -1 {
			output = output[:idx]
		}
		output = strings.TrimSpace(output)
	}

	start := strings.Index(output, "{")
	end := strings.LastIndex(output, "}")
	if start == -1 || end == -1 || end < start {
		return "", "no JSON object in reply"
	}
	return output[start : end+1], ""
}
