package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"go.xesthora.dev/xesthora/internal/config"
	"go.xesthora.dev/xesthora/internal/logging"
	"go.xesthora.dev/xesthora/internal/run"
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve the timetable for the configured catalogue directory",
	Long: `Loads the catalogue under XESTHORA_INPUT_DIR, builds the MILP
model, solves it with the configured cbc binary, and writes the decoded
calendars to XESTHORA_OUTPUT_DIR.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("solve: %w", err)
		}

		log, err := logging.New(cfg)
		if err != nil {
			return fmt.Errorf("solve: build logger: %w", err)
		}
		defer func() { _ = log.Sync() }()

		outcome, err := run.New(cfg, log).Execute(context.Background())
		if err != nil {
			return fmt.Errorf("solve: %w", err)
		}

		cmd.Printf("run %s: status=%s objective=%g infeasibilities=%d calendars=%d\n",
			outcome.RunID, outcome.Result.Status, outcome.Result.Objective,
			len(outcome.Infeasibilities), len(outcome.Calendars))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(solveCmd)
}
