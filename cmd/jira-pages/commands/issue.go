package commands

import (
	"context"

	"github.com/spf13/cobra"

	"aktis-jira-pages/internal/models"
	"aktis-jira-pages/internal/services"
)

// create-issue <summary>
func createIssueCmd() *cobra.Command {
	var fields models.IssueFields

	cmd := &cobra.Command{
		Use:   "create-issue <summary>",
		Short: "Log in and create an issue from the dashboard",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fields.Summary = args[0]
			return runScenario(cmd, func(ctx context.Context, sc *services.Scenario) error {
				if err := sc.Login(ctx); err != nil {
					return err
				}
				return sc.CreateIssue(ctx, fields)
			})
		},
	}
	cmd.Flags().StringVar(&fields.Project, "project", "", "project name (default from config)")
	cmd.Flags().StringVar(&fields.IssueType, "type", models.DefaultIssueType, "issue type")
	cmd.Flags().StringVar(&fields.Priority, "priority", models.DefaultPriority, "priority")
	cmd.Flags().StringVar(&fields.Description, "description", "", "description")
	return cmd
}

// search <jql>
func searchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <jql>",
		Short: "Log in and list the issues matching a JQL query",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScenario(cmd, func(ctx context.Context, sc *services.Scenario) error {
				if err := sc.Login(ctx); err != nil {
					return err
				}
				return sc.Search(ctx, args[0])
			})
		},
	}
}
