package cmd

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dhabedank/leave-advisor/internal/core"
	"github.com/dhabedank/leave-advisor/internal/history"
	"github.com/dhabedank/leave-advisor/internal/logger"
	"github.com/dhabedank/leave-advisor/internal/output"
)

var historyCapacity int

// BatchCmd advises a file of check-ins and shows the trend.
var BatchCmd = &cobra.Command{
	Use:   "batch <checkins.yaml>",
	Short: "Advise a series of check-ins and show the trend",
	Long: `Read a YAML file of check-ins, advise each one in order, and print
the recorded history with a trend summary.

The file is either a list of check-ins or a map with a "checkins" key:

  checkins:
    - mood: low
      energy: 3
      sleep: 4
      work_pressure: 8
      personal_stress: 6
      leave_balance: some

Only the most recent --capacity check-ins are kept.`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	BatchCmd.Flags().IntVar(&historyCapacity, "capacity", history.DefaultCapacity, "Maximum check-ins kept in the history")
	addLLMFlags(BatchCmd)
	addOutputFlags(BatchCmd)
	addCostFlag(BatchCmd)
	addCommonFlags(BatchCmd)
}

// loadCheckins reads either a bare YAML list or {checkins: [...]}.
func loadCheckins(path string) ([]core.Assessment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read check-ins: %w", err)
	}

	var list []core.Assessment
	if err := yaml.Unmarshal(data, &list); err != nil {
		var wrapped struct {
			Checkins []core.Assessment `yaml:"checkins"`
		}
		if err := yaml.Unmarshal(data, &wrapped); err != nil {
			return nil, fmt.Errorf("failed to parse check-ins: %w", err)
		}
		list = wrapped.Checkins
	}

	// A mapping with a misspelt key decodes to nothing without an error.
	if len(list) == 0 && len(bytes.TrimSpace(data)) > 0 {
		return nil, fmt.Errorf("no check-ins found in %s (want a list or a %q key)", path, "checkins")
	}
	return list, nil
}

func runBatch(cmd *cobra.Command, args []string) error {
	if err := loadConfig(cmd); err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.New(logLevel, logFormat)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	checkins, err := loadCheckins(args[0])
	if err != nil {
		return err
	}

	// Reject the whole file before spending any model calls.
	for i, a := range checkins {
		if err := a.Validate(); err != nil {
			return fmt.Errorf("check-in %d: %w", i+1, err)
		}
	}

	out, err := output.New(outputFormat, outputConfig(cmd))
	if err != nil {
		return err
	}

	hist := history.NewLog(historyCapacity)
	advisor := newAdvisor(log)
	for i, a := range checkins {
		advice, err := advisor.advise(cmd.Context(), a)
		if err != nil {
			return fmt.Errorf("check-in %d: %w", i+1, err)
		}
		hist.Append(a, *advice)
	}

	return out.WriteHistory(hist.Entries(), hist.Trend())
}
