package pages

import (
	"context"
	"fmt"
	"time"

	"aktis-jira-pages/internal/interfaces"
	"aktis-jira-pages/internal/models"
)

// IssuesSearchPage locator names
const (
	AdvancedSearch    = "advanced_search"
	IssueList         = "issue_list"
	IssueContent      = "issue_content"
	EditIssueDialog   = "edit_issue_dialog"
	EditIssueButton   = "edit_issue_button"
	LoadingIndicator  = "loading_indicator"
	IssueListItemsRel = "issue_list_items"
)

func searchLocators() Locators {
	return Locators{
		AdvancedSearch:    interfaces.XPath("//*[@id='advanced-search']"),
		IssueList:         interfaces.XPath("//ol[contains(@class, 'issue-list')]"),
		IssueContent:      interfaces.XPath("//*[@id='issue-content']"),
		EditIssueDialog:   interfaces.XPath("//*[@id='edit-issue-dialog']"),
		EditIssueButton:   interfaces.XPath("//*[@id='issue-content']//*[@id='edit-issue']"),
		LoadingIndicator:  interfaces.XPath("//div[@class='loading']"),
		IssueListItemsRel: interfaces.XPath("./li"),
	}
}

// IssuesSearchPage is the JQL issue navigator
type IssuesSearchPage struct {
	*GeneralPage
	locators Locators

	searchField      *InputElement
	issueList        *Element
	issueDetails     *IssueDetails
	editIssueDialog  *IssueDialog
	loadingIndicator *Element
}

func NewIssuesSearchPage(s *Session) *IssuesSearchPage {
	locators := searchLocators()
	return &IssuesSearchPage{
		GeneralPage:      NewGeneralPage(s),
		locators:         locators,
		searchField:      newInputElement(s, locators[AdvancedSearch]),
		issueList:        newElement(s, locators[IssueList]),
		issueDetails:     newIssueDetails(s, locators[IssueContent], locators[EditIssueButton]),
		editIssueDialog:  newIssueDialog(s, locators[EditIssueDialog], "edit-issue-submit"),
		loadingIndicator: newElement(s, locators[LoadingIndicator]),
	}
}

// Locators returns the search page locators merged over the general ones
func (p *IssuesSearchPage) Locators() Locators {
	all := Locators{}
	for k, v := range p.GeneralPage.Locators() {
		all[k] = v
	}
	for k, v := range p.locators {
		all[k] = v
	}
	return all
}

func (p *IssuesSearchPage) EditIssueDialog() *IssueDialog {
	return p.editIssueDialog
}

// WaitForLoading waits for the loading indicator to go away, then settles.
// An indicator still visible after timeout is logged and ignored.
func (p *IssuesSearchPage) WaitForLoading(ctx context.Context, timeout time.Duration) error {
	err := p.loadingIndicator.WaitToBeHidden(ctx, timeout)
	if isTimeout(err) {
		p.session.Logger.Warn().Dur("timeout", timeout).Msg("Loading indicator still visible")
	} else if err != nil {
		return err
	}
	return p.session.settle(ctx)
}

// Search runs jql and waits for the result list to load
func (p *IssuesSearchPage) Search(ctx context.Context, jql string) error {
	p.session.Logger.Debug().Str("jql", jql).Msg("Searching issues")

	if err := p.searchField.SetValue(ctx, jql); err != nil {
		return err
	}
	if err := p.searchField.Press(ctx, interfaces.KeyEnter); err != nil {
		return err
	}
	return p.WaitForLoading(ctx, p.session.Timeouts.Loading)
}

// Update edits the issue open in the detail panel. Only fields set in u are written.
func (p *IssuesSearchPage) Update(ctx context.Context, u models.IssueUpdate) error {
	if err := p.issueDetails.OpenEdit(ctx); err != nil {
		return err
	}
	if _, err := p.editIssueDialog.WaitToBeDisplayed(ctx, p.session.Timeouts.Dialog); err != nil {
		return fmt.Errorf("edit issue dialog: %w", err)
	}
	if err := p.editIssueDialog.Apply(ctx, u); err != nil {
		return err
	}
	if err := p.editIssueDialog.Submit(ctx); err != nil {
		return err
	}

	shown, err := p.flags.shown(ctx, p.session.Timeouts.Flag)
	if err != nil {
		return err
	}
	if !shown {
		p.session.Logger.Warn().Msg("No confirmation flag after issue update")
	}
	return p.session.settle(ctx)
}

// FoundIssues returns the result rows in list order. A list that does not
// become visible within the list timeout yields an empty slice.
func (p *IssuesSearchPage) FoundIssues(ctx context.Context) ([]*IssueListItem, error) {
	items := []*IssueListItem{}

	list, err := p.issueList.WaitToBeDisplayed(ctx, p.session.Timeouts.List)
	if isTimeout(err) {
		return items, nil
	}
	if err != nil {
		return nil, err
	}

	rows, err := list.FindElements(ctx, p.locators[IssueListItemsRel])
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		items = append(items, &IssueListItem{handle: row})
	}
	return items, nil
}

// SelectIssue opens the result row with the given key and reports whether it was found
func (p *IssuesSearchPage) SelectIssue(ctx context.Context, key string) (bool, error) {
	items, err := p.FoundIssues(ctx)
	if err != nil {
		return false, err
	}
	for _, item := range items {
		k, err := item.Key(ctx)
		if err != nil {
			return false, err
		}
		if k == key {
			return true, item.Open(ctx)
		}
	}
	return false, nil
}
