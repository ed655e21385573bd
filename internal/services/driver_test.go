package services

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/chromedp/chromedp"
	"github.com/playwright-community/playwright-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/arbor"

	"aktis-jira-pages/internal/common"
	"aktis-jira-pages/internal/interfaces"
)

func TestPlaywrightSelector(t *testing.T) {
	assert.Equal(t, "xpath=//*[@id='login']", playwrightSelector(interfaces.XPath("//*[@id='login']")))
	assert.Equal(t, "css=#login", playwrightSelector(interfaces.CSS("#login")))
}

func TestPlaywrightWaitError(t *testing.T) {
	loc := interfaces.XPath("//div")
	err := playwrightWaitError(loc, fmt.Errorf("waiting for locator: %w", playwright.ErrTimeout))
	assert.ErrorIs(t, err, interfaces.ErrTimeout)

	other := errors.New("target closed")
	assert.Equal(t, other, playwrightWaitError(loc, other))
}

func TestChromedpWaitError(t *testing.T) {
	loc := interfaces.CSS(".loading")

	assert.ErrorIs(t, chromedpWaitError(context.Background(), loc, chromedp.ErrPollingTimeout), interfaces.ErrTimeout)
	assert.ErrorIs(t, chromedpWaitError(context.Background(), loc, context.DeadlineExceeded), interfaces.ErrTimeout)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, chromedpWaitError(ctx, loc, context.Canceled), context.Canceled)
}

func TestVisibilityProbe(t *testing.T) {
	xp := visibilityProbe(interfaces.XPath(`//a[text()="Search for issues"]`))
	assert.Contains(t, xp, `document.evaluate("//a[text()=\"Search for issues\"]"`)

	css := visibilityProbe(interfaces.CSS("#find_link"))
	assert.Contains(t, css, `document.querySelector("#find_link")`)
}

func TestQueryOption(t *testing.T) {
	assert.NotNil(t, queryOption(interfaces.StrategyXPath))
	assert.NotNil(t, queryOption(interfaces.StrategyCSS))
}

func TestNewDriverUnknownBackend(t *testing.T) {
	cfg := common.DefaultConfig()
	cfg.Browser.Backend = "selenium"

	_, err := NewDriver(cfg, arbor.NewLogger())
	var pe *common.PageError
	assert.ErrorAs(t, err, &pe)
	assert.Equal(t, common.ErrorTypeDriver, pe.Type)
}

func TestLaunchWithinLeavesBrowserRunning(t *testing.T) {
	cancelled := make(chan struct{}, 1)
	cancel := func() { cancelled <- struct{}{} }

	err := launchWithin(20*time.Millisecond, cancel, func() error { return nil })
	require.NoError(t, err)

	// the bound must not fire once launch has returned
	select {
	case <-cancelled:
		t.Fatal("browser context cancelled after a successful launch")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestLaunchWithinCancelsSlowLaunch(t *testing.T) {
	cancelled := make(chan struct{})
	cancel := func() { close(cancelled) }

	err := launchWithin(10*time.Millisecond, cancel, func() error {
		<-cancelled
		return context.Canceled
	})
	assert.ErrorIs(t, err, errLaunchTimeout)
}

func TestLaunchWithinReturnsStartError(t *testing.T) {
	boom := errors.New("chrome not found")
	err := launchWithin(time.Second, func() {}, func() error { return boom })
	assert.Equal(t, boom, err)
}
