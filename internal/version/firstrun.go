package version

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dhabedank/leave-advisor/internal/tui"
)

// Version is overridden at build time with -ldflags "-X ...version.Version=".
var Version = "0.1.0"

const (
	configFileName = ".leave-advisor.yaml"
	markerDir      = ".leave-advisor"
	markerFile     = ".initialized"
)

// IsFirstRun reports whether home has neither a config file nor the
// first-run marker.
func IsFirstRun(home string) bool {
	if home == "" {
		return false
	}
	if _, err := os.Stat(filepath.Join(home, configFileName)); err == nil {
		return false
	}
	if _, err := os.Stat(filepath.Join(home, markerDir, markerFile)); err == nil {
		return false
	}
	return true
}

// MarkInitialized creates the first-run marker under home.
func MarkInitialized(home string) error {
	dir := filepath.Join(home, markerDir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}
	return os.WriteFile(filepath.Join(dir, markerFile), []byte{}, 0644)
}

// PrintFirstRunNotice writes the welcome message to w and marks home as
// initialized so it is shown once.
func PrintFirstRunNotice(w io.Writer, home string) error {
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s Welcome to leave-advisor!\n", tui.TitleStyle.Render("*"))
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Quick start:")
	fmt.Fprintf(w, "    1. Pick a model: %s\n", tui.ModelStyle.Render("leave-advisor setup"))
	fmt.Fprintf(w, "    2. Check in: %s\n", tui.ModelStyle.Render("leave-advisor advise -e 4 -s 5 -w 7 -p 5"))
	fmt.Fprintf(w, "    3. No model? %s\n", tui.ModelStyle.Render("leave-advisor score -e 4 -s 5 -w 7 -p 5"))
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %s\n", tui.HelpStyle.Render("Advice only. If you feel unwell, talk to someone you trust or a professional."))
	fmt.Fprintln(w)

	return MarkInitialized(home)
}
