package output

import (
	"fmt"
	"io"
	"os"

	"github.com/dhabedank/leave-advisor/internal/core"
	"github.com/dhabedank/leave-advisor/internal/history"
)

// Adapter is the interface all output adapters must implement.
type Adapter interface {
	// Name returns the adapter identifier for logging.
	Name() string

	// WriteAdvice renders a single recommendation.
	WriteAdvice(a core.Assessment, advice *core.Advice) error

	// WriteHistory renders a batch of recorded check-ins and their trend.
	WriteHistory(entries []history.Entry, trend history.Trend) error
}

// Config configures output adapter behavior.
type Config struct {
	// Writer receives the output. Nil means stdout.
	Writer io.Writer

	// Path writes to a file instead of Writer (JSON only).
	Path string

	// ShowCost adds a token and cost estimate for AI answers.
	ShowCost bool
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		Writer:   os.Stdout,
		ShowCost: true,
	}
}

func (c Config) writer() io.Writer {
	if c.Writer == nil {
		return os.Stdout
	}
	return c.Writer
}

// New returns the adapter for name ("text" or "json").
func New(name string, config Config) (Adapter, error) {
	switch name {
	case "", "text":
		return NewTextAdapter(config), nil
	case "json":
		return NewJSONAdapter(config), nil
	default:
		return nil, fmt.Errorf("unknown output adapter: %s (want text or json)", name)
	}
}
