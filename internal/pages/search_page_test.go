package pages

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aktis-jira-pages/internal/interfaces"
	"aktis-jira-pages/internal/models"
	"aktis-jira-pages/internal/testutil"
)

func issueRowHTML(key, summary string) string {
	return `<li data-key="` + key + `" title="` + summary + `"><a href="/browse/` + key + `">` +
		`<span class="issue-link-key">` + key + `</span></a></li>`
}

func TestSearchPressesEnterAndWaitsForLoading(t *testing.T) {
	s, drv, rec := newTestSession()
	page := NewIssuesSearchPage(s)
	loc := page.Locators()
	field := drv.Add(loc[AdvancedSearch])
	field.Value = "old query"

	require.NoError(t, page.Search(context.Background(), "project = DEMO"))

	assert.Equal(t, "project = DEMO", field.Value)
	assert.Equal(t, []string{interfaces.KeyEnter}, field.Presses)

	waits := drv.WaitsFor(loc[LoadingIndicator])
	require.Len(t, waits, 1)
	assert.True(t, waits[0].Hidden)
	assert.Equal(t, 60*time.Second, waits[0].Timeout)
	assert.Equal(t, []time.Duration{SettleDelay}, rec.delays)
}

func TestWaitForLoadingTimeoutStillSettles(t *testing.T) {
	s, drv, rec := newTestSession()
	page := NewIssuesSearchPage(s)
	drv.Add(page.Locators()[LoadingIndicator])

	require.NoError(t, page.WaitForLoading(context.Background(), time.Second))
	assert.Equal(t, []time.Duration{SettleDelay}, rec.delays)
}

func TestWaitForLoadingZeroSettleSkipsSleep(t *testing.T) {
	s, _, rec := newTestSession()
	s.Timeouts.Settle = 0

	require.NoError(t, NewIssuesSearchPage(s).WaitForLoading(context.Background(), time.Second))
	assert.Empty(t, rec.delays)
}

func TestWaitForLoadingCancelled(t *testing.T) {
	s, _, _ := newTestSession()
	s.sleep = sleepContext
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewIssuesSearchPage(s).WaitForLoading(ctx, time.Second)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFoundIssues(t *testing.T) {
	t.Run("hidden list yields empty slice", func(t *testing.T) {
		s, drv, _ := newTestSession()
		page := NewIssuesSearchPage(s)
		drv.Add(page.Locators()[IssueList]).Hidden()

		items, err := page.FoundIssues(context.Background())
		require.NoError(t, err)
		assert.NotNil(t, items)
		assert.Empty(t, items)

		waits := drv.WaitsFor(page.Locators()[IssueList])
		require.Len(t, waits, 1)
		assert.Equal(t, 10*time.Second, waits[0].Timeout)
	})

	t.Run("rows in list order", func(t *testing.T) {
		s, drv, _ := newTestSession()
		page := NewIssuesSearchPage(s)
		list := drv.Add(page.Locators()[IssueList])
		list.AddChild(issueRowHTML("DEMO-3", "Third"))
		list.AddChild(issueRowHTML("DEMO-1", "First"))
		list.AddChild(issueRowHTML("DEMO-2", "Second"))

		items, err := page.FoundIssues(context.Background())
		require.NoError(t, err)
		require.Len(t, items, 3)

		var keys []string
		for _, item := range items {
			key, err := item.Key(context.Background())
			require.NoError(t, err)
			keys = append(keys, key)
		}
		assert.Equal(t, []string{"DEMO-3", "DEMO-1", "DEMO-2"}, keys)

		row, err := items[1].Row(context.Background())
		require.NoError(t, err)
		assert.Equal(t, models.IssueRow{Key: "DEMO-1", Summary: "First", URL: "/browse/DEMO-1"}, row)
	})

	t.Run("driver error propagates", func(t *testing.T) {
		s, drv, _ := newTestSession()
		page := NewIssuesSearchPage(s)
		boom := errors.New("target closed")
		drv.Add(page.Locators()[IssueList]).Err = boom

		_, err := page.FoundIssues(context.Background())
		assert.ErrorIs(t, err, boom)
	})
}

func TestSelectIssue(t *testing.T) {
	s, drv, _ := newTestSession()
	page := NewIssuesSearchPage(s)
	list := drv.Add(page.Locators()[IssueList])
	list.AddChild(issueRowHTML("DEMO-1", "First"))
	second := list.AddChild(issueRowHTML("DEMO-2", "Second"))

	found, err := page.SelectIssue(context.Background(), "DEMO-2")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 1, second.Clicks)

	found, err = page.SelectIssue(context.Background(), "DEMO-9")
	require.NoError(t, err)
	assert.False(t, found)
}

// scriptEditDialog adds the edit button, edit dialog and its fields
func scriptEditDialog(drv *testutil.FakeDriver, p *IssuesSearchPage, flag bool) {
	edit := drv.Add(p.Locators()[EditIssueButton])
	edit.OnClick = func() { drv.Add(p.Locators()[EditIssueDialog]) }
	for name, l := range p.EditIssueDialog().Locators() {
		el := drv.Add(l)
		if name == FieldSubmit && flag {
			el.OnClick = func() { drv.Add(p.Locators()[FlagContainer]) }
		}
	}
}

func TestUpdateWritesOnlyGivenFields(t *testing.T) {
	s, drv, rec := newTestSession()
	page := NewIssuesSearchPage(s)
	scriptEditDialog(drv, page, true)

	summary := "Renamed"
	require.NoError(t, page.Update(context.Background(), models.IssueUpdate{Summary: &summary}))

	fields := page.EditIssueDialog().Locators()
	assert.Equal(t, "Renamed", drv.Element(fields[FieldSummary]).Value)
	for _, name := range []string{FieldProject, FieldIssueType, FieldDescription, FieldPriority} {
		assert.Zero(t, drv.Element(fields[name]).Writes, name)
	}
	assert.Equal(t, 1, drv.Element(fields[FieldSubmit]).Clicks)
	assert.Equal(t, []time.Duration{SettleDelay}, rec.delays)
}

func TestUpdateWithoutFlagStillSucceeds(t *testing.T) {
	s, drv, rec := newTestSession()
	page := NewIssuesSearchPage(s)
	scriptEditDialog(drv, page, false)

	priority := "High"
	require.NoError(t, page.Update(context.Background(), models.IssueUpdate{Priority: &priority}))

	fields := page.EditIssueDialog().Locators()
	assert.Equal(t, "High", drv.Element(fields[FieldPriority]).Value)
	assert.Equal(t, []string{interfaces.KeyTab}, drv.Element(fields[FieldPriority]).Presses)
	assert.Zero(t, drv.Element(fields[FieldSummary]).Writes)
	assert.Len(t, rec.delays, 1)
}

func TestUpdateDialogTimeoutIsAnError(t *testing.T) {
	s, drv, _ := newTestSession()
	page := NewIssuesSearchPage(s)
	drv.Add(page.Locators()[EditIssueButton])

	summary := "x"
	err := page.Update(context.Background(), models.IssueUpdate{Summary: &summary})
	assert.ErrorIs(t, err, interfaces.ErrTimeout)
}

func TestSearchLocatorsIncludeGeneral(t *testing.T) {
	s, _, _ := newTestSession()
	loc := NewIssuesSearchPage(s).Locators()

	assert.Contains(t, loc, CreateIssueLink)
	assert.Contains(t, loc, AdvancedSearch)
	assert.Equal(t, interfaces.XPath("//div[@class='loading']"), loc[LoadingIndicator])
}
