package common

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"aktis-jira-pages/internal/models"
)

func TestParseIssueRow(t *testing.T) {
	t.Run("data attributes", func(t *testing.T) {
		row, err := ParseIssueRow(`<li data-key="DEMO-7" data-id="10007" title="Login broken">
			<a class="splitview-issue-link" href="/browse/DEMO-7">
				<span class="issue-link-key">DEMO-7</span>
				<span class="issue-link-summary">Login broken</span>
			</a></li>`)
		require.NoError(t, err)
		assert.Equal(t, models.IssueRow{Key: "DEMO-7", Summary: "Login broken", URL: "/browse/DEMO-7"}, row)
	})

	t.Run("falls back to spans", func(t *testing.T) {
		row, err := ParseIssueRow(`<li><a href="/browse/OPS-1">
			<span class="issue-link-key"> OPS-1 </span>
			<span class="issue-link-summary">Disk full</span></a></li>`)
		require.NoError(t, err)
		assert.Equal(t, "OPS-1", row.Key)
		assert.Equal(t, "Disk full", row.Summary)
		assert.Equal(t, "/browse/OPS-1", row.URL)
	})

	t.Run("empty row", func(t *testing.T) {
		row, err := ParseIssueRow(`<li></li>`)
		require.NoError(t, err)
		assert.Equal(t, models.IssueRow{}, row)
	})
}

func TestHTMLHelpers(t *testing.T) {
	doc, err := html.Parse(strings.NewReader(`<div class="a b"><p id="x">one <b>two</b></p></div>`))
	require.NoError(t, err)

	div := FindFirst(doc, HasClass("b"))
	require.NotNil(t, div)
	assert.Equal(t, "div", div.Data)

	p := FindFirst(doc, HasAttribute("id"))
	require.NotNil(t, p)
	assert.Equal(t, "x", GetAttribute(p, "id"))
	assert.Equal(t, "one two", ExtractText(p))

	assert.Nil(t, FindFirst(doc, IsTag("table")))
	assert.Equal(t, "", GetAttribute(nil, "id"))
}
