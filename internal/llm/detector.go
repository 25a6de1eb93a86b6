package llm

import (
	"fmt"
	"os/exec"
)

// ModelInfo describes an available model.
type ModelInfo struct {
	ID          string // Model identifier (e.g., "claude-haiku-4-5-20251001")
	Name        string // Human-readable name (e.g., "Claude Haiku 4.5")
	Description string // Brief description
	Provider    string // Provider name (e.g., "anthropic", "openai")
}

// claudeModels lists Claude models usable through the CLI or the API.
var claudeModels = []ModelInfo{
	{ID: "claude-haiku-4-5-20251001", Name: "Claude Haiku 4.5", Description: "Fastest, cheapest; plenty for a short check-in", Provider: "anthropic"},
	{ID: "claude-sonnet-4-5-20250929", Name: "Claude Sonnet 4.5", Description: "Default: more nuanced justifications", Provider: "anthropic"},
	{ID: "claude-opus-4-5-20251101", Name: "Claude Opus 4.5", Description: "Premium model, rarely worth it here", Provider: "anthropic"},
}

// codexModels lists OpenAI models available via the Codex CLI.
var codexModels = []ModelInfo{
	{ID: "gpt-4o-mini", Name: "GPT-4o Mini", Description: "Most cost-effective", Provider: "openai"},
	{ID: "gpt-4o", Name: "GPT-4o", Description: "Fast multimodal model", Provider: "openai"},
	{ID: "o3-mini", Name: "O3 Mini", Description: "Fast reasoning model", Provider: "openai"},
}

// lookPath is swapped in tests.
var lookPath = exec.LookPath

// AvailableModels returns models grouped by provider based on available CLIs.
func AvailableModels() map[string][]ModelInfo {
	result := make(map[string][]ModelInfo)

	if _, err := lookPath("claude"); err == nil {
		result["anthropic"] = claudeModels
	} else if _, err := NewAnthropicAPIAdapter(Config{}); err == nil {
		result["anthropic"] = claudeModels
	}

	if _, err := lookPath("codex"); err == nil {
		result["openai"] = codexModels
	}

	return result
}

// AllModels returns a flat list of all available models, Claude first.
func AllModels() []ModelInfo {
	available := AvailableModels()
	var result []ModelInfo

	if models, ok := available["anthropic"]; ok {
		result = append(result, models...)
	}
	if models, ok := available["openai"]; ok {
		result = append(result, models...)
	}

	return result
}

// DetectBestAdapter finds the best available LLM adapter.
// Priority: Claude CLI > Codex CLI > Anthropic API
func DetectBestAdapter(config Config) (Adapter, error) {
	if config.PreferCLI {
		claude := NewClaudeCLIAdapter(config)
		if claude.IsAvailable() {
			return claude, nil
		}

		codex := NewCodexCLIAdapter(config)
		if codex.IsAvailable() {
			return codex, nil
		}
	}

	api, err := NewAnthropicAPIAdapter(config)
	if err == nil && api.IsAvailable() {
		return api, nil
	}

	return nil, fmt.Errorf("no LLM adapter available - install Claude Code, Codex, or set ANTHROPIC_API_KEY")
}

// ListAvailableAdapters returns all adapters that could be used.
func ListAvailableAdapters(config Config) []string {
	available := []string{}

	if NewClaudeCLIAdapter(config).IsAvailable() {
		available = append(available, ProviderClaudeCLI)
	}
	if NewCodexCLIAdapter(config).IsAvailable() {
		available = append(available, ProviderCodexCLI)
	}
	if api, err := NewAnthropicAPIAdapter(config); err == nil && api.IsAvailable() {
		available = append(available, ProviderAPI)
	}

	return available
}
