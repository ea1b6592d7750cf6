package main

import (
	"fmt"
	"os"

	"fame_list/configs"
	"fame_list/internal/di"
	"fame_list/internal/setup"

	"github.com/spf13/cobra"
)

func main() {
	var assumeYes bool

	cmd := &cobra.Command{
		Use:   "fame_setup",
		Short: "Write the fame list configuration, create the schema and seed accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			config, err := configs.LoadSetupConfig()
			if err != nil {
				return err
			}

			logger := di.NewLogger(config.App, config.Logger)
			defer func() { _ = logger.Sync() }()

			wizard := setup.NewWizard(config, cmd.InOrStdin(), cmd.OutOrStdout(), assumeYes, logger)
			if err := wizard.Run(cmd.Context()); err != nil {
				logger.Errorw("setup failed", "error", err)
				return err
			}

			return nil
		},
	}

	cmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "accept the default answer for every prompt")

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "❌ Setup failed:", err)
		os.Exit(1)
	}
}
