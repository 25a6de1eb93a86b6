package llm

import (
	"context"
	"fmt"
)

// Adapter is the interface all LLM adapters must implement.
type Adapter interface {
	// Name returns the adapter identifier for logging.
	Name() string

	// IsAvailable checks if this adapter can be used (CLI installed, API key set, etc.)
	IsAvailable() bool

	// Generate sends prompts to the LLM and returns the raw text reply.
	Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// Config holds configuration for LLM adapters.
type Config struct {
	// PreferCLI prefers CLI tools (claude, codex) over API when available.
	PreferCLI bool

	// Model specifies which model to use (optional, adapter chooses default).
	Model string

	// APIKey for direct API access (optional if CLI is used).
	APIKey string

	// MaxTokens limits response length.
	MaxTokens int
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		PreferCLI: true, // Use CLI tools when available (already authenticated)
		MaxTokens: 1024,
	}
}

// Provider names accepted by NewAdapter.
const (
	ProviderAuto      = "auto"
	ProviderClaudeCLI = "claude-cli"
	ProviderCodexCLI  = "codex-cli"
	ProviderAPI       = "anthropic-api"
	ProviderNone      = "none"
)

// NewAdapter resolves a provider name. ProviderNone returns a nil adapter
// and no error, which sends every request to the heuristic.
func NewAdapter(provider string, config Config) (Adapter, error) {
	switch provider {
	case "", ProviderAuto:
		return DetectBestAdapter(config)
	case ProviderClaudeCLI:
		adapter := NewClaudeCLIAdapter(config)
		if !adapter.IsAvailable() {
			return nil, fmt.Errorf("Claude CLI not available - install Claude Code")
		}
		return adapter, nil
	case ProviderCodexCLI:
		adapter := NewCodexCLIAdapter(config)
		if !adapter.IsAvailable() {
			return nil, fmt.Errorf("Codex CLI not available - install Codex")
		}
		return adapter, nil
	case ProviderAPI:
		return NewAnthropicAPIAdapter(config)
	case ProviderNone:
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %s", provider)
	}
}

// ModelOf returns the model an adapter will call, or "" if unknown.
func ModelOf(a Adapter) string {
	if m, ok := a.(interface{ Model() string }); ok {
		return m.Model()
	}
	return ""
}
