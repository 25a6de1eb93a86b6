package tui

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
)

type doneMsg struct{ err error }

// spinnerModel is a Bubble Tea model shown while a model call runs.
type spinnerModel struct {
	spinner spinner.Model
	label   string
	started time.Time
	err     error
	done    bool
	quit    bool
}

func newSpinnerModel(label string) spinnerModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = SpinnerStyle

	return spinnerModel{
		spinner: s,
		label:   label,
		started: time.Now(),
	}
}

// Init implements tea.Model.
func (m spinnerModel) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update implements tea.Model.
func (m spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quit = true
			return m, tea.Quit
		}

	case doneMsg:
		m.done = true
		m.err = msg.err
		return m, tea.Quit

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View implements tea.Model.
func (m spinnerModel) View() string {
	if m.done || m.quit {
		return ""
	}
	elapsed := time.Since(m.started).Truncate(time.Second)
	return fmt.Sprintf("%s %s  %s\n", m.spinner.View(), m.label, HelpStyle.Render(elapsed.String()))
}

// RunWithSpinner runs fn while showing a spinner on stderr. When stderr is
// not a terminal fn runs without any decoration.
//
// ctrl+c cancels the context given to fn and waits for fn to return, so
// the caller still gets fn's result.
func RunWithSpinner(ctx context.Context, label string, fn func(ctx context.Context) error) error {
	if !isatty.IsTerminal(os.Stderr.Fd()) && !isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		return fn(ctx)
	}
	return runSpinner(ctx, label, fn, tea.WithOutput(os.Stderr))
}

func runSpinner(ctx context.Context, label string, fn func(ctx context.Context) error, opts ...tea.ProgramOption) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := tea.NewProgram(newSpinnerModel(label), opts...)
	result := make(chan error, 1)
	go func() {
		err := fn(ctx)
		result <- err
		p.Send(doneMsg{err: err})
	}()

	if _, err := p.Run(); err != nil {
		cancel()
		<-result
		return fmt.Errorf("spinner failed: %w", err)
	}

	// Either fn finished or the user quit; in both cases fn's answer wins.
	cancel()
	return <-result
}
