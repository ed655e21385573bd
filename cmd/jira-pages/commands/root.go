// Package commands defines the jira-pages CLI.
//
// Commands
//
//   - smoke         Log in, create an issue, find it and edit it
//   - login         Log in and report the outcome
//   - create-issue  Log in and create one issue
//   - search        Log in and list the issues matching a JQL query
//   - validate      Load and validate the config
//   - version       Print version information
//
// Every browser command loads the TOML config, starts the configured backend
// and closes it when the command returns.
package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/ternarybob/arbor"

	"aktis-jira-pages/internal/common"
	"aktis-jira-pages/internal/models"
	"aktis-jira-pages/internal/pages"
	"aktis-jira-pages/internal/services"
)

var (
	configPath string
	backend    string
	quiet      bool
	jsonOutput bool

	cfg    *common.Config
	logger arbor.ILogger
)

func Execute() error {
	if err := newRootCmd().Execute(); err != nil {
		common.PrintError(err.Error())
		return err
	}
	return nil
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "jira-pages",
		Short:         "Drive Jira through its web UI with page objects",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = common.LoadConfig(configPath)
			if err != nil {
				return err
			}
			if backend != "" {
				cfg.Browser.Backend = backend
				if err := cfg.Validate(); err != nil {
					return err
				}
			}
			if err := common.InitLogger(&cfg.Logging); err != nil {
				return err
			}
			logger = common.GetLogger()
			return nil
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "path to TOML config (default: auto-detect)")
	root.PersistentFlags().StringVar(&backend, "backend", "", "browser backend: playwright or chromedp")
	root.PersistentFlags().BoolVar(&quiet, "quiet", false, "suppress banner output")
	root.PersistentFlags().BoolVar(&jsonOutput, "json", false, "print the report as JSON")

	root.AddCommand(smokeCmd(), loginCmd(), createIssueCmd(), searchCmd(), validateCmd(), versionCmd())
	return root
}

// runScenario starts the browser, hands a scenario to fn and prints its report
func runScenario(cmd *cobra.Command, fn func(ctx context.Context, sc *services.Scenario) error) error {
	if !quiet {
		common.PrintBanner(cfg, cmd.Name())
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	driver, err := services.NewDriver(cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := driver.Close(); err != nil {
			logger.Warn().Err(err).Msg("Failed to close browser")
		}
	}()

	session := pages.NewSession(driver, pages.TimeoutsFromConfig(cfg.Timeouts), logger)
	sc := services.NewScenario(cfg, session, logger)

	runErr := fn(ctx, sc)
	printReport(sc.Report)
	return runErr
}

func printReport(report *services.ScenarioReport) {
	if jsonOutput {
		data, _ := json.MarshalIndent(report, "", "  ")
		fmt.Fprintln(os.Stdout, string(data))
		return
	}

	for _, step := range report.Steps {
		line := fmt.Sprintf("%-14s %-8s %s", step.Name, step.Duration, step.Detail)
		if step.OK {
			common.PrintSuccess(line)
		} else {
			common.PrintError(line)
		}
	}
	for _, row := range report.Rows {
		fmt.Printf("   • %s  %s\n", row.Key, row.Summary)
	}
	if report.Outcome == models.LoginOutcomeIndeterminate {
		common.PrintWarning("login outcome indeterminate: neither user menu nor error message appeared")
	}
}
