package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/dhabedank/leave-advisor/cmd"
	"github.com/dhabedank/leave-advisor/internal/version"
)

func main() {
	// ANTHROPIC_API_KEY may live in a local .env; a missing file is fine.
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:           "leave-advisor",
		Short:         "Decide whether to take leave tomorrow, with an LLM and a safe fallback",
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(c *cobra.Command, args []string) {
			if c.Name() == cmd.SetupCmd.Name() {
				return
			}
			home, err := os.UserHomeDir()
			if err != nil || !version.IsFirstRun(home) {
				return
			}
			_ = version.PrintFirstRunNotice(os.Stderr, home)
		},
	}
	rootCmd.AddCommand(cmd.AdviseCmd, cmd.ScoreCmd, cmd.ForecastCmd, cmd.BatchCmd, cmd.SetupCmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
