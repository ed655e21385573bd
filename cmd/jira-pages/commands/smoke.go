package commands

import (
	"context"

	"github.com/spf13/cobra"

	"aktis-jira-pages/internal/services"
)

func smokeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "smoke",
		Short: "Log in, create an issue, search for it and edit its summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScenario(cmd, func(ctx context.Context, sc *services.Scenario) error {
				_, err := sc.Run(ctx)
				return err
			})
		},
	}
}

func loginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Log in with the configured credentials and report the outcome",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScenario(cmd, func(ctx context.Context, sc *services.Scenario) error {
				return sc.Login(ctx)
			})
		},
	}
}
