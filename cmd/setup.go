package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dhabedank/leave-advisor/internal/llm"
	"github.com/dhabedank/leave-advisor/internal/tui"
)

var resetConfig bool

// SetupCmd represents the setup command.
var SetupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Pick the default model",
	Long: `Choose the model "advise" and "batch" use when --model is not given.

Configuration is saved to ~/.leave-advisor.yaml. Other keys in that file
are kept.`,
	Args: cobra.NoArgs,
	RunE: runSetup,
}

func init() {
	SetupCmd.Flags().BoolVar(&resetConfig, "reset", false, "Reset configuration to defaults")
}

func runSetup(cmd *cobra.Command, args []string) error {
	configPath := getConfigPath()

	if resetConfig {
		if err := os.Remove(configPath); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove config: %w", err)
		}
		fmt.Println(tui.SuccessStyle.Render("✓") + " Configuration reset to defaults")
		fmt.Printf("  Removed: %s\n", configPath)
		return nil
	}

	models := llm.AllModels()
	if len(models) == 0 {
		return fmt.Errorf("no LLM providers detected. Install Claude Code or Codex CLI, or set ANTHROPIC_API_KEY")
	}
	available := llm.ListAvailableAdapters(llm.DefaultConfig())
	fmt.Printf("Detected: %s\n", tui.ModelStyle.Render(strings.Join(available, ", ")))

	p := tea.NewProgram(newSetupModel(models))
	m, err := p.Run()
	if err != nil {
		return fmt.Errorf("wizard failed: %w", err)
	}

	final := m.(setupModel)
	if final.cancelled || final.selected.ID == "" {
		fmt.Println("Setup cancelled")
		return nil
	}

	config := configFileData{}
	if _, err := os.Stat(configPath); err == nil {
		if config, err = readConfigFile(configPath); err != nil {
			return err
		}
	}
	config.Model = final.selected.ID
	config.LLM = providerFor(final.selected, available)

	if err := saveConfig(configPath, config); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Println()
	fmt.Println(tui.SuccessStyle.Render("✓") + " Configuration saved to " + configPath)
	fmt.Printf("  Model:    %s\n", tui.ModelStyle.Render(config.Model))
	fmt.Printf("  Provider: %s\n", tui.ModelStyle.Render(config.LLM))

	return nil
}

// providerFor pins the adapter that can serve m, given the adapters
// detected on this machine. Claude models never route through codex.
func providerFor(m llm.ModelInfo, available []string) string {
	if m.Provider == "openai" {
		return llm.ProviderCodexCLI
	}
	for _, p := range []string{llm.ProviderClaudeCLI, llm.ProviderAPI} {
		if slices.Contains(available, p) {
			return p
		}
	}
	return llm.ProviderAPI
}

func getConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return configFileName
	}
	return filepath.Join(home, configFileName)
}

func saveConfig(path string, config configFileData) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Bubble Tea model for the setup wizard

type setupModel struct {
	list      list.Model
	selected  llm.ModelInfo
	cancelled bool
}

type modelItem struct {
	info llm.ModelInfo
}

func (m modelItem) Title() string       { return m.info.Name }
func (m modelItem) Description() string { return m.info.Description }
func (m modelItem) FilterValue() string { return m.info.Name }

func newSetupModel(models []llm.ModelInfo) setupModel {
	items := make([]list.Item, len(models))
	for i, m := range models {
		items[i] = modelItem{info: m}
	}

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(tui.ColorPrimary)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(tui.ColorMuted)

	l := list.New(items, delegate, 60, 14)
	l.Title = "Select the advice model"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.Styles.Title = tui.TitleStyle

	return setupModel{list: l}
}

func (m setupModel) Init() tea.Cmd {
	return nil
}

func (m setupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetWidth(msg.Width)
		m.list.SetHeight(msg.Height - 2)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.cancelled = true
			return m, tea.Quit

		case "enter":
			if item, ok := m.list.SelectedItem().(modelItem); ok {
				m.selected = item.info
			}
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m setupModel) View() string {
	if m.cancelled {
		return ""
	}

	help := tui.HelpStyle.Render("\n  ↑/↓: navigate • enter: select • q: quit")
	return "\n" + m.list.View() + help
}
