package services

import (
	"context"
	"fmt"
	"time"

	"aktis-jira-pages/internal/common"
	"aktis-jira-pages/internal/models"
	"aktis-jira-pages/internal/pages"

	"github.com/google/uuid"
	"github.com/ternarybob/arbor"
)

// ScenarioReport collects the steps run against a Jira instance
type ScenarioReport struct {
	Outcome  models.LoginOutcome `json:"outcome"`
	IssueKey string              `json:"issue_key,omitempty"`
	Rows     []models.IssueRow   `json:"rows,omitempty"`
	Steps    []models.StepResult `json:"steps"`
}

// OK reports whether every step passed
func (r *ScenarioReport) OK() bool {
	for _, s := range r.Steps {
		if !s.OK {
			return false
		}
	}
	return len(r.Steps) > 0
}

// Scenario drives the page objects through login, issue creation, search
// and edit. Each step appends to Report; the first failing step stops the run.
type Scenario struct {
	config  *common.Config
	session *pages.Session
	logger  arbor.ILogger
	Report  *ScenarioReport

	newSummary func() string
}

func NewScenario(cfg *common.Config, session *pages.Session, logger arbor.ILogger) *Scenario {
	return &Scenario{
		config:  cfg,
		session: session,
		logger:  logger,
		Report:  &ScenarioReport{},
		newSummary: func() string {
			return "Smoke test " + uuid.NewString()[:8]
		},
	}
}

func (s *Scenario) step(name string, fn func() (string, error)) error {
	start := time.Now()
	detail, err := fn()

	result := models.StepResult{
		Name:     name,
		OK:       err == nil,
		Detail:   detail,
		Duration: time.Since(start).Round(time.Millisecond).String(),
	}
	if err != nil {
		result.Detail = err.Error()
	}
	s.Report.Steps = append(s.Report.Steps, result)

	if err != nil {
		s.logger.Error().Err(err).Str("step", name).Msg("Scenario step failed")
		return common.WrapError(err, common.ErrorTypeScenario, name, "scenario step failed")
	}
	s.logger.Info().Str("step", name).Str("detail", detail).Msg("Scenario step passed")
	return nil
}

// Login opens the login page and signs in with the configured credentials
func (s *Scenario) Login(ctx context.Context) error {
	login := pages.NewLoginPage(s.session)

	if err := s.step("open_login", func() (string, error) {
		url := s.config.URL("login.jsp")
		return url, login.Go(ctx, url)
	}); err != nil {
		return err
	}

	return s.step("login", func() (string, error) {
		if err := login.Login(ctx, s.config.Jira.Username, s.config.Jira.Password); err != nil {
			return "", err
		}
		outcome, err := login.LoginOutcome(ctx)
		s.Report.Outcome = outcome
		if err != nil {
			return "", err
		}
		if outcome != models.LoginOutcomeLoggedIn {
			return "", common.NewScenarioError("login", "not logged in").WithDetails(string(outcome))
		}
		return string(outcome), nil
	})
}

// CreateIssue creates an issue from the dashboard and records its key
func (s *Scenario) CreateIssue(ctx context.Context, fields models.IssueFields) error {
	dashboard := pages.NewDashboardPage(s.session)
	if fields.Project == "" {
		fields.Project = s.config.Jira.Project
	}
	if fields.Summary == "" {
		fields.Summary = s.newSummary()
	}

	return s.step("create_issue", func() (string, error) {
		res, err := dashboard.CreateIssue(ctx, fields)
		if err != nil {
			return "", err
		}
		key, ok := res.Value()
		if !ok {
			return "", common.NewScenarioError("create_issue", "no confirmation flag after submit")
		}
		s.Report.IssueKey = key
		return key, nil
	})
}

// Search opens the issue navigator, runs jql and records the result rows
func (s *Scenario) Search(ctx context.Context, jql string) error {
	search := pages.NewIssuesSearchPage(s.session)

	if err := s.step("go_to_search", func() (string, error) {
		return "", search.GoToSearchPage(ctx)
	}); err != nil {
		return err
	}

	return s.step("search", func() (string, error) {
		if err := search.Search(ctx, jql); err != nil {
			return "", err
		}
		items, err := search.FoundIssues(ctx)
		if err != nil {
			return "", err
		}
		s.Report.Rows = s.Report.Rows[:0]
		for _, item := range items {
			row, err := item.Row(ctx)
			if err != nil {
				return "", err
			}
			s.Report.Rows = append(s.Report.Rows, row)
		}
		return fmt.Sprintf("%d issues", len(items)), nil
	})
}

// Update opens key from the current results and rewrites its summary
func (s *Scenario) Update(ctx context.Context, key, summary string) error {
	search := pages.NewIssuesSearchPage(s.session)

	return s.step("update", func() (string, error) {
		found, err := search.SelectIssue(ctx, key)
		if err != nil {
			return "", err
		}
		if !found {
			return "", common.NewScenarioError("update", "issue not in search results").WithDetails(key)
		}
		return summary, search.Update(ctx, models.IssueUpdate{Summary: &summary})
	})
}

// Run executes the full smoke flow
func (s *Scenario) Run(ctx context.Context) (*ScenarioReport, error) {
	if err := s.Login(ctx); err != nil {
		return s.Report, err
	}
	if err := s.CreateIssue(ctx, models.IssueFields{}); err != nil {
		return s.Report, err
	}
	key := s.Report.IssueKey
	if err := s.Search(ctx, fmt.Sprintf("key = %s", key)); err != nil {
		return s.Report, err
	}
	if err := s.Update(ctx, key, s.newSummary()+" (edited)"); err != nil {
		return s.Report, err
	}
	return s.Report, nil
}
