package pages

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"aktis-jira-pages/internal/common"
	"aktis-jira-pages/internal/interfaces"
)

func TestGoNavigates(t *testing.T) {
	s, drv, _ := newTestSession()
	require.NoError(t, NewBasePage(s).Go(context.Background(), "http://jira.local/login.jsp"))
	assert.Equal(t, []string{"http://jira.local/login.jsp"}, drv.URLs)
}

func TestIsTitleContains(t *testing.T) {
	s, drv, _ := newTestSession()
	page := NewBasePage(s)
	drv.SetTitle("System Dashboard - Jira")

	ok, err := page.IsTitleContains(context.Background(), "Dashboard")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = page.IsTitleContains(context.Background(), "dashboard")
	require.NoError(t, err)
	assert.False(t, ok, "match is case sensitive")
}

func TestIsTitleContainsProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		prefix := rapid.String().Draw(t, "prefix")
		sub := rapid.String().Draw(t, "sub")
		suffix := rapid.String().Draw(t, "suffix")
		probe := rapid.String().Draw(t, "probe")

		s, drv, _ := newTestSession()
		page := NewBasePage(s)
		drv.SetTitle(prefix + sub + suffix)

		ok, err := page.IsTitleContains(context.Background(), sub)
		if err != nil || !ok {
			t.Fatalf("title %q should contain %q", prefix+sub+suffix, sub)
		}

		ok, _ = page.IsTitleContains(context.Background(), probe)
		if ok != strings.Contains(prefix+sub+suffix, probe) {
			t.Fatalf("IsTitleContains(%q) = %v for title %q", probe, ok, prefix+sub+suffix)
		}
	})
}

func TestElementIsDisplayed(t *testing.T) {
	s, drv, _ := newTestSession()
	loc := interfaces.CSS("#thing")
	el := newElement(s, loc)

	shown, err := el.IsDisplayed(context.Background())
	require.NoError(t, err)
	assert.False(t, shown, "missing element is not displayed")

	drv.Add(loc).Hidden()
	shown, err = el.IsDisplayed(context.Background())
	require.NoError(t, err)
	assert.False(t, shown)

	drv.Element(loc).Visible = true
	shown, err = el.IsDisplayed(context.Background())
	require.NoError(t, err)
	assert.True(t, shown)
}

func TestElementClickMissingIsNotFound(t *testing.T) {
	s, _, _ := newTestSession()
	err := newElement(s, interfaces.XPath("//button")).Click(context.Background())
	assert.ErrorIs(t, err, interfaces.ErrNotFound)
}

func TestInputSetValueReplaces(t *testing.T) {
	s, drv, _ := newTestSession()
	loc := interfaces.XPath("//input[@id='q']")
	field := drv.Add(loc)
	field.Value = "stale"

	require.NoError(t, newInputElement(s, loc).SetValue(context.Background(), "fresh"))
	assert.Equal(t, "fresh", field.Value)
	assert.Equal(t, 2, field.Writes)
}

func TestResult(t *testing.T) {
	found := Found(42)
	v, ok := found.Value()
	assert.True(t, ok)
	assert.Equal(t, 42, v)
	assert.Equal(t, "Found(42)", found.String())

	var zero Result[int]
	assert.Equal(t, NotFoundWithinTimeout[int](), zero)
	assert.False(t, zero.IsFound())
	assert.Equal(t, 0, zero.OrZero())
	assert.Equal(t, "NotFoundWithinTimeout", zero.String())

	// Found with a zero value is still found
	assert.True(t, Found("").IsFound())
}

func TestTimeoutsFromConfig(t *testing.T) {
	assert.Equal(t, DefaultTimeouts(), TimeoutsFromConfig(common.DefaultConfig().Timeouts))
}
