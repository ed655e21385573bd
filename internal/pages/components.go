package pages

import (
	"context"
	"fmt"

	"aktis-jira-pages/internal/common"
	"aktis-jira-pages/internal/interfaces"
	"aktis-jira-pages/internal/models"
)

// Issue dialog field names
const (
	FieldProject     = "project"
	FieldIssueType   = "issue_type"
	FieldSummary     = "summary"
	FieldDescription = "description"
	FieldPriority    = "priority"
	FieldSubmit      = "submit"
)

// IssueDialog is the create or edit issue dialog
type IssueDialog struct {
	*Element
	locators Locators

	project     *InputElement
	issueType   *InputElement
	summary     *InputElement
	description *InputElement
	priority    *InputElement
	submit      *Element
}

func issueDialogLocators(root interfaces.Locator, submitID string) Locators {
	within := func(sel string) interfaces.Locator {
		return interfaces.XPath(root.Selector + sel)
	}
	return Locators{
		FieldProject:     within("//input[@id='project-field']"),
		FieldIssueType:   within("//input[@id='issuetype-field']"),
		FieldSummary:     within("//input[@id='summary']"),
		FieldDescription: within("//textarea[@id='description']"),
		FieldPriority:    within("//input[@id='priority-field']"),
		FieldSubmit:      within(fmt.Sprintf("//*[@id='%s']", submitID)),
	}
}

func newIssueDialog(s *Session, root interfaces.Locator, submitID string) *IssueDialog {
	locators := issueDialogLocators(root, submitID)
	return &IssueDialog{
		Element:     newElement(s, root),
		locators:    locators,
		project:     newInputElement(s, locators[FieldProject]),
		issueType:   newInputElement(s, locators[FieldIssueType]),
		summary:     newInputElement(s, locators[FieldSummary]),
		description: newInputElement(s, locators[FieldDescription]),
		priority:    newInputElement(s, locators[FieldPriority]),
		submit:      newElement(s, locators[FieldSubmit]),
	}
}

func (d *IssueDialog) Locators() Locators {
	return d.locators
}

// selectValue types into an autocomplete select and commits the suggestion
func selectValue(ctx context.Context, field *InputElement, value string) error {
	if err := field.SetValue(ctx, value); err != nil {
		return err
	}
	return field.Press(ctx, interfaces.KeyTab)
}

func (d *IssueDialog) SetProject(ctx context.Context, v string) error {
	return selectValue(ctx, d.project, v)
}

func (d *IssueDialog) SetIssueType(ctx context.Context, v string) error {
	return selectValue(ctx, d.issueType, v)
}

func (d *IssueDialog) SetPriority(ctx context.Context, v string) error {
	return selectValue(ctx, d.priority, v)
}

func (d *IssueDialog) SetSummary(ctx context.Context, v string) error {
	return d.summary.SetValue(ctx, v)
}

func (d *IssueDialog) SetDescription(ctx context.Context, v string) error {
	return d.description.SetValue(ctx, v)
}

func (d *IssueDialog) Submit(ctx context.Context) error {
	return d.submit.Click(ctx)
}

// Fill writes every create dialog field, in the order Jira reflows the form
func (d *IssueDialog) Fill(ctx context.Context, f models.IssueFields) error {
	steps := []struct {
		name  string
		set   func(context.Context, string) error
		value string
	}{
		{FieldProject, d.SetProject, f.Project},
		{FieldIssueType, d.SetIssueType, f.IssueType},
		{FieldSummary, d.SetSummary, f.Summary},
		{FieldDescription, d.SetDescription, f.Description},
		{FieldPriority, d.SetPriority, f.Priority},
	}
	for _, step := range steps {
		if err := step.set(ctx, step.value); err != nil {
			return fmt.Errorf("set %s: %w", step.name, err)
		}
	}
	return nil
}

// Apply writes only the fields present in u
func (d *IssueDialog) Apply(ctx context.Context, u models.IssueUpdate) error {
	steps := []struct {
		name  string
		set   func(context.Context, string) error
		value *string
	}{
		{FieldSummary, d.SetSummary, u.Summary},
		{FieldIssueType, d.SetIssueType, u.IssueType},
		{FieldPriority, d.SetPriority, u.Priority},
		{FieldDescription, d.SetDescription, u.Description},
	}
	for _, step := range steps {
		if step.value == nil {
			continue
		}
		if err := step.set(ctx, *step.value); err != nil {
			return fmt.Errorf("set %s: %w", step.name, err)
		}
	}
	return nil
}

// IssueDetails is the detail panel of the selected issue
type IssueDetails struct {
	*Element
	editButton *Element
}

func newIssueDetails(s *Session, root, edit interfaces.Locator) *IssueDetails {
	return &IssueDetails{
		Element:    newElement(s, root),
		editButton: newElement(s, edit),
	}
}

func (d *IssueDetails) OpenEdit(ctx context.Context) error {
	return d.editButton.Click(ctx)
}

// IssueListItem is one row of the search result list. It wraps the handle
// found when the list was read and is only valid until the next search.
type IssueListItem struct {
	handle interfaces.Element
}

func (i *IssueListItem) Row(ctx context.Context) (models.IssueRow, error) {
	outer, err := i.handle.OuterHTML(ctx)
	if err != nil {
		return models.IssueRow{}, err
	}
	return common.ParseIssueRow(outer)
}

func (i *IssueListItem) Key(ctx context.Context) (string, error) {
	row, err := i.Row(ctx)
	return row.Key, err
}

func (i *IssueListItem) Summary(ctx context.Context) (string, error) {
	row, err := i.Row(ctx)
	return row.Summary, err
}

// Open shows the issue in the detail panel
func (i *IssueListItem) Open(ctx context.Context) error {
	return i.handle.Click(ctx)
}
