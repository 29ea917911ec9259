package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"go.xesthora.dev/xesthora/internal/config"
	"go.xesthora.dev/xesthora/internal/logging"
	"go.xesthora.dev/xesthora/internal/run"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Load and validate the configured catalogue without solving",
	Long: `Loads the catalogue under XESTHORA_INPUT_DIR and runs the §3
cross-catalogue referential-integrity checks, without building or solving a
model. Exits non-zero on the first validation failure.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("validate: %w", err)
		}

		log, err := logging.New(cfg)
		if err != nil {
			return fmt.Errorf("validate: build logger: %w", err)
		}
		defer func() { _ = log.Sync() }()

		data, err := run.LoadInputData(cfg, log)
		if err != nil {
			return fmt.Errorf("validate: %w", err)
		}

		cmd.Printf("catalogue OK: %d classes, %d teachers, %d tasks\n",
			len(data.Classes), len(data.Teachers()), len(data.Tasks()))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(validateCmd)
}
