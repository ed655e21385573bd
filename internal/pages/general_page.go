package pages

import (
	"context"
	"fmt"
	"strings"
	"time"

	"aktis-jira-pages/internal/interfaces"
	"aktis-jira-pages/internal/models"
)

// GeneralPage locator names
const (
	CreateIssueLink      = "create_issue_link"
	IssuesMenuLink       = "issues_menu_link"
	IssuesMenuDropdown   = "issues_menu_dropdown"
	IssuesMenuItemSearch = "issues_menu_item_search"
	CreateIssueDialog    = "create_issue_dialog"
	FlagContainer        = "aui_flag_container"
	FlagIssueLink        = "aui_flag_issue_link"
)

func generalLocators() Locators {
	return Locators{
		CreateIssueLink:      interfaces.XPath("//*[@id='create_link']"),
		IssuesMenuLink:       interfaces.XPath("//*[@id='find_link']"),
		IssuesMenuDropdown:   interfaces.XPath("//*[@id='find_link-content']"),
		IssuesMenuItemSearch: interfaces.XPath("//a[text()='Search for issues']"),
		CreateIssueDialog:    interfaces.XPath("//*[@id='create-issue-dialog']"),
		FlagContainer:        interfaces.XPath("//*[@id='aui-flag-container']"),
		FlagIssueLink:        interfaces.XPath("//*[@id='aui-flag-container']//a"),
	}
}

// flagWaiter reads the AUI flag shown after an issue is created or edited
type flagWaiter struct {
	session   *Session
	container *Element
	issueLink *Element
}

// shown waits for the flag; a timeout yields false
func (f *flagWaiter) shown(ctx context.Context, timeout time.Duration) (bool, error) {
	el, err := f.container.WaitToBeDisplayed(ctx, timeout)
	if isTimeout(err) {
		f.session.Logger.Debug().Dur("timeout", timeout).Msg("No flag shown")
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return el.IsDisplayed(ctx)
}

// issueKey returns the issue key from the flag link, or NotFoundWithinTimeout
func (f *flagWaiter) issueKey(ctx context.Context, timeout time.Duration) (Result[string], error) {
	shown, err := f.shown(ctx, timeout)
	if err != nil || !shown {
		return NotFoundWithinTimeout[string](), err
	}
	text, err := f.issueLink.Text(ctx)
	if err != nil {
		return NotFoundWithinTimeout[string](), err
	}
	return Found(ParseIssueKey(text)), nil
}

// ParseIssueKey returns the text before the first space of a flag message,
// e.g. "DEMO-42 - Broken login has been successfully created" gives "DEMO-42".
// Text without a space is returned whole.
func ParseIssueKey(text string) string {
	key, _, _ := strings.Cut(text, " ")
	return key
}

// GeneralPage holds the navigation chrome shared by authenticated pages
type GeneralPage struct {
	*BasePage
	locators Locators

	createIssueLink      *Element
	issuesLink           *Element
	issuesDropdownMenu   *Element
	issuesMenuItemSearch *Element
	createIssueDialog    *IssueDialog
	flags                *flagWaiter
}

func NewGeneralPage(s *Session) *GeneralPage {
	locators := generalLocators()
	return &GeneralPage{
		BasePage:             NewBasePage(s),
		locators:             locators,
		createIssueLink:      newElement(s, locators[CreateIssueLink]),
		issuesLink:           newElement(s, locators[IssuesMenuLink]),
		issuesDropdownMenu:   newElement(s, locators[IssuesMenuDropdown]),
		issuesMenuItemSearch: newElement(s, locators[IssuesMenuItemSearch]),
		createIssueDialog:    newIssueDialog(s, locators[CreateIssueDialog], "create-issue-submit"),
		flags: &flagWaiter{
			session:   s,
			container: newElement(s, locators[FlagContainer]),
			issueLink: newElement(s, locators[FlagIssueLink]),
		},
	}
}

func (p *GeneralPage) Locators() Locators {
	return p.locators
}

func (p *GeneralPage) CreateIssueDialog() *IssueDialog {
	return p.createIssueDialog
}

// CreateIssue fills and submits the create dialog and returns the new issue
// key read from the confirmation flag
func (p *GeneralPage) CreateIssue(ctx context.Context, fields models.IssueFields) (Result[string], error) {
	fields = fields.WithDefaults()
	none := NotFoundWithinTimeout[string]()

	if err := p.createIssueLink.Click(ctx); err != nil {
		return none, err
	}
	if _, err := p.createIssueDialog.WaitToBeDisplayed(ctx, p.session.Timeouts.Dialog); err != nil {
		return none, fmt.Errorf("create issue dialog: %w", err)
	}
	if err := p.createIssueDialog.Fill(ctx, fields); err != nil {
		return none, err
	}
	if err := p.createIssueDialog.Submit(ctx); err != nil {
		return none, err
	}

	key, err := p.flags.issueKey(ctx, p.session.Timeouts.Flag)
	if err != nil {
		return none, err
	}

	p.session.Logger.Info().
		Str("project", fields.Project).
		Str("result", key.String()).
		Msg("Issue submitted")

	return key, nil
}

// AUIMessageIsDisplayed waits for the flag container; a timeout yields false
func (p *GeneralPage) AUIMessageIsDisplayed(ctx context.Context) (bool, error) {
	return p.flags.shown(ctx, p.session.Timeouts.Flag)
}

// GoToSearchPage opens the issues menu and picks "Search for issues"
func (p *GeneralPage) GoToSearchPage(ctx context.Context) error {
	if err := p.issuesLink.Click(ctx); err != nil {
		return err
	}
	if _, err := p.issuesDropdownMenu.WaitToBeDisplayed(ctx, p.session.Timeouts.Menu); err != nil {
		return fmt.Errorf("issues menu: %w", err)
	}
	return p.issuesMenuItemSearch.Click(ctx)
}
