package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dhabedank/leave-advisor/internal/llm"
	"github.com/dhabedank/leave-advisor/internal/logger"
)

const configFileName = ".leave-advisor.yaml"

// Shared by every command that talks to a model.
var (
	llmProvider string
	llmModel    string
	maxTokens   int
	timeout     time.Duration
	noAI        bool

	outputFormat string
	outputPath   string
	showCost     bool

	configFile string
	logLevel   string
	logFormat  string
)

// Config file structure
type configFileData struct {
	LLM       string `yaml:"llm,omitempty"`
	Model     string `yaml:"model,omitempty"`
	MaxTokens int    `yaml:"max_tokens,omitempty"`
	Timeout   string `yaml:"timeout,omitempty"`
	Output    string `yaml:"output,omitempty"`
	LogLevel  string `yaml:"log_level,omitempty"`
	LogFormat string `yaml:"log_format,omitempty"`
}

func addLLMFlags(c *cobra.Command) {
	c.Flags().StringVarP(&llmProvider, "llm", "l", llm.ProviderAuto, "LLM provider (auto/claude-cli/codex-cli/anthropic-api/none)")
	c.Flags().StringVarP(&llmModel, "model", "m", "", "Model to use (provider-specific)")
	c.Flags().IntVar(&maxTokens, "max-tokens", llm.DefaultConfig().MaxTokens, "Maximum reply tokens (API only)")
	c.Flags().DurationVar(&timeout, "timeout", 60*time.Second, "Give up on the model after this long and use the heuristic")
	c.Flags().BoolVar(&noAI, "no-ai", false, "Skip the model and use the built-in heuristic")
}

func addOutputFlags(c *cobra.Command) {
	c.Flags().StringVarP(&outputFormat, "output", "o", "text", "Output format (text/json)")
	c.Flags().StringVar(&outputPath, "output-path", "", "Write JSON output to this file")
}

// addCostFlag is only for commands that may call a model.
func addCostFlag(c *cobra.Command) {
	c.Flags().BoolVar(&showCost, "show-cost", true, "Show an estimated token cost for AI answers")
}

func addConfigFlag(c *cobra.Command) {
	c.Flags().StringVar(&configFile, "config", "", "Config file (default: "+configFileName+")")
}

// addCommonFlags adds the config file and diagnostic log flags.
func addCommonFlags(c *cobra.Command) {
	addConfigFlag(c)
	c.Flags().StringVar(&logLevel, "log-level", logger.DefaultLevel, "Diagnostic log level (debug/info/warn/error)")
	c.Flags().StringVar(&logFormat, "log-format", logger.DefaultFormat, "Diagnostic log format (console/json)")
}

// findConfigPath returns the config file to read, or "" if there is none.
func findConfigPath() string {
	if configFile != "" {
		return configFile
	}
	if _, err := os.Stat(configFileName); err == nil {
		return configFileName
	}
	if home, err := os.UserHomeDir(); err == nil {
		homePath := filepath.Join(home, configFileName)
		if _, err := os.Stat(homePath); err == nil {
			return homePath
		}
	}
	return ""
}

func readConfigFile(path string) (configFileData, error) {
	var cfg configFileData

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file: %w", err)
	}
	return cfg, nil
}

// loadConfig applies config file values to flags the user did not set.
// Keys whose flag the command does not register are ignored.
func loadConfig(cmd *cobra.Command) error {
	configPath := findConfigPath()
	if configPath == "" {
		return nil // No config file, use defaults
	}

	cfg, err := readConfigFile(configPath)
	if err != nil {
		return err
	}

	changed := func(name string) bool {
		f := cmd.Flags().Lookup(name)
		return f == nil || f.Changed
	}

	if !changed("llm") && cfg.LLM != "" {
		llmProvider = cfg.LLM
	}
	if !changed("model") && cfg.Model != "" {
		llmModel = cfg.Model
	}
	if !changed("max-tokens") && cfg.MaxTokens > 0 {
		maxTokens = cfg.MaxTokens
	}
	if !changed("timeout") && cfg.Timeout != "" {
		d, err := time.ParseDuration(cfg.Timeout)
		if err != nil {
			return fmt.Errorf("invalid timeout %q in %s: %w", cfg.Timeout, configPath, err)
		}
		timeout = d
	}
	if !changed("output") && cfg.Output != "" {
		outputFormat = cfg.Output
	}
	if !changed("log-level") && cfg.LogLevel != "" {
		logLevel = cfg.LogLevel
	}
	if !changed("log-format") && cfg.LogFormat != "" {
		logFormat = cfg.LogFormat
	}

	return nil
}
