package output

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dhabedank/leave-advisor/internal/core"
	"github.com/dhabedank/leave-advisor/internal/history"
)

// JSONAdapter outputs recommendations as JSON.
type JSONAdapter struct {
	config Config
}

// NewJSONAdapter creates a JSON adapter.
func NewJSONAdapter(config Config) *JSONAdapter {
	return &JSONAdapter{config: config}
}

func (a *JSONAdapter) Name() string {
	return "json"
}

type adviceDocument struct {
	Assessment core.Assessment `json:"assessment"`
	*core.Advice
}

type historyDocument struct {
	Entries []history.Entry `json:"entries"`
	Trend   history.Trend   `json:"trend"`
}

func (a *JSONAdapter) WriteAdvice(assessment core.Assessment, advice *core.Advice) error {
	return a.write(adviceDocument{Assessment: assessment, Advice: advice})
}

func (a *JSONAdapter) WriteHistory(entries []history.Entry, trend history.Trend) error {
	if entries == nil {
		entries = []history.Entry{}
	}
	return a.write(historyDocument{Entries: entries, Trend: trend})
}

func (a *JSONAdapter) write(doc interface{}) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	data = append(data, '\n')

	if a.config.Path != "" {
		if err := os.WriteFile(a.config.Path, data, 0644); err != nil {
			return fmt.Errorf("failed to write file: %w", err)
		}
		return nil
	}

	if _, err := a.config.writer().Write(data); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
