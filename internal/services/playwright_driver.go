package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"aktis-jira-pages/internal/common"
	"aktis-jira-pages/internal/interfaces"

	"github.com/playwright-community/playwright-go"
	"github.com/ternarybob/arbor"
)

// playwrightDriver drives one Chromium page through playwright-go. The
// playwright-go API takes no context, so ctx is only checked before each
// call: cancellation cannot interrupt a navigation or wait already in
// flight, which still runs until its own timeout.
type playwrightDriver struct {
	pw      *playwright.Playwright
	browser playwright.Browser
	page    playwright.Page
	logger  arbor.ILogger
}

// NewPlaywrightDriver launches Chromium through Playwright and opens one page
func NewPlaywrightDriver(cfg *common.BrowserConfig, logger arbor.ILogger) (interfaces.Driver, error) {
	if err := playwright.Install(&playwright.RunOptions{Browsers: []string{"chromium"}}); err != nil {
		return nil, common.WrapError(err, common.ErrorTypeDriver, "install_failed", "could not install playwright browsers")
	}

	pw, err := playwright.Run()
	if err != nil {
		return nil, common.WrapError(err, common.ErrorTypeDriver, "start_failed", "could not start playwright")
	}

	opts := playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(cfg.Headless),
		Timeout:  playwright.Float(float64(cfg.LaunchTimeout * 1000)),
	}
	if cfg.ExecPath != "" {
		opts.ExecutablePath = playwright.String(cfg.ExecPath)
	}

	browser, err := pw.Chromium.Launch(opts)
	if err != nil {
		pw.Stop()
		return nil, common.WrapError(err, common.ErrorTypeDriver, "launch_failed", "could not launch browser")
	}

	page, err := browser.NewPage()
	if err != nil {
		browser.Close()
		pw.Stop()
		return nil, common.WrapError(err, common.ErrorTypeDriver, "page_failed", "could not create page")
	}

	logger.Info().
		Str("headless", fmt.Sprintf("%v", cfg.Headless)).
		Msg("Playwright browser launched")

	return &playwrightDriver{
		pw:      pw,
		browser: browser,
		page:    page,
		logger:  logger,
	}, nil
}

func (d *playwrightDriver) Close() error {
	var errs []error
	if d.browser != nil {
		errs = append(errs, d.browser.Close())
	}
	if d.pw != nil {
		errs = append(errs, d.pw.Stop())
	}
	return errors.Join(errs...)
}

func (d *playwrightDriver) Navigate(ctx context.Context, url string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	d.logger.Debug().Str("url", url).Msg("Navigating")
	if _, err := d.page.Goto(url); err != nil {
		return common.WrapError(err, common.ErrorTypeNavigation, "goto_failed", "navigation failed").
			WithContext("url", url)
	}
	return nil
}

func (d *playwrightDriver) Title(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return d.page.Title()
}

func (d *playwrightDriver) FindElement(ctx context.Context, locator interfaces.Locator) (interfaces.Element, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	loc := d.page.Locator(playwrightSelector(locator))
	count, err := loc.Count()
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, fmt.Errorf("%s: %w", locator, interfaces.ErrNotFound)
	}
	return &playwrightElement{loc: loc.First()}, nil
}

func (d *playwrightDriver) FindElements(ctx context.Context, locator interfaces.Locator) ([]interfaces.Element, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return wrapLocators(d.page.Locator(playwrightSelector(locator)).All())
}

func (d *playwrightDriver) WaitUntilVisible(ctx context.Context, locator interfaces.Locator, timeout time.Duration) (interfaces.Element, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	loc := d.page.Locator(playwrightSelector(locator)).First()
	err := loc.WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateVisible,
		Timeout: playwright.Float(float64(timeout.Milliseconds())),
	})
	if err != nil {
		return nil, playwrightWaitError(locator, err)
	}
	return &playwrightElement{loc: loc}, nil
}

func (d *playwrightDriver) WaitUntilHidden(ctx context.Context, locator interfaces.Locator, timeout time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	err := d.page.Locator(playwrightSelector(locator)).First().WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateHidden,
		Timeout: playwright.Float(float64(timeout.Milliseconds())),
	})
	if err != nil {
		return playwrightWaitError(locator, err)
	}
	return nil
}

type playwrightElement struct {
	loc playwright.Locator
}

func (e *playwrightElement) Click(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return e.loc.Click()
}

func (e *playwrightElement) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return e.loc.Clear()
}

func (e *playwrightElement) SendKeys(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return e.loc.PressSequentially(text)
}

func (e *playwrightElement) Press(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return e.loc.Press(key)
}

func (e *playwrightElement) Text(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return e.loc.InnerText()
}

func (e *playwrightElement) OuterHTML(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	v, err := e.loc.Evaluate("el => el.outerHTML", nil)
	if err != nil {
		return "", err
	}
	s, _ := v.(string)
	return s, nil
}

func (e *playwrightElement) IsDisplayed(ctx context.Context) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	return e.loc.IsVisible()
}

func (e *playwrightElement) FindElements(ctx context.Context, locator interfaces.Locator) ([]interfaces.Element, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return wrapLocators(e.loc.Locator(playwrightSelector(locator)).All())
}

func wrapLocators(locs []playwright.Locator, err error) ([]interfaces.Element, error) {
	if err != nil {
		return nil, err
	}
	elements := make([]interfaces.Element, 0, len(locs))
	for _, l := range locs {
		elements = append(elements, &playwrightElement{loc: l})
	}
	return elements, nil
}

func playwrightSelector(locator interfaces.Locator) string {
	switch locator.Strategy {
	case interfaces.StrategyXPath:
		return "xpath=" + locator.Selector
	default:
		return "css=" + locator.Selector
	}
}

func playwrightWaitError(locator interfaces.Locator, err error) error {
	if errors.Is(err, playwright.ErrTimeout) {
		return fmt.Errorf("%s: %w", locator, interfaces.ErrTimeout)
	}
	return err
}
