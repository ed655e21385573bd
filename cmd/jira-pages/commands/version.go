package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"aktis-jira-pages/internal/common"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		// needs no config, so a broken config file must not stop it
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Printf("jira-pages %s\n", common.GetFullVersion())
			return nil
		},
	}
}

// validate exits after the config has loaded and passed validation
func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the configuration file and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			common.PrintSuccess(fmt.Sprintf("Configuration is valid (backend %s, jira %s)", cfg.Browser.Backend, cfg.Jira.BaseURL))
			return nil
		},
	}
}
