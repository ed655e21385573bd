package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"aktis-jira-pages/internal/common"
	"aktis-jira-pages/internal/interfaces"

	"github.com/chromedp/cdproto/cdp"
	"github.com/chromedp/chromedp"
	"github.com/chromedp/chromedp/kb"
	"github.com/ternarybob/arbor"
)

type chromedpDriver struct {
	ctx    context.Context
	cancel context.CancelFunc
	logger arbor.ILogger
}

// NewChromedpDriver starts a local Chrome, or attaches to one already running
// with --remote-debugging-port when cfg.RemoteDebugPort is set.
func NewChromedpDriver(cfg *common.BrowserConfig, logger arbor.ILogger) (interfaces.Driver, error) {
	var (
		allocCtx    context.Context
		allocCancel context.CancelFunc
	)

	if cfg.RemoteDebugPort > 0 {
		debugURL := fmt.Sprintf("http://localhost:%d", cfg.RemoteDebugPort)
		allocCtx, allocCancel = chromedp.NewRemoteAllocator(context.Background(), debugURL)
	} else {
		opts := append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", cfg.Headless),
			chromedp.Flag("disable-gpu", true),
		)
		if cfg.ExecPath != "" {
			opts = append(opts, chromedp.ExecPath(cfg.ExecPath))
		}
		allocCtx, allocCancel = chromedp.NewExecAllocator(context.Background(), opts...)
	}

	ctx, cancel := chromedp.NewContext(allocCtx)

	wrappedCancel := func() {
		cancel()
		allocCancel()
	}

	// First Run starts the browser and must use the long-lived ctx, or the
	// browser dies with the launch bound.
	launch := func() error { return chromedp.Run(ctx) }
	if err := launchWithin(time.Duration(cfg.LaunchTimeout)*time.Second, wrappedCancel, launch); err != nil {
		wrappedCancel()
		return nil, common.WrapError(err, common.ErrorTypeDriver, "launch_failed", "could not start chrome")
	}

	logger.Info().
		Int("remote_debug_port", cfg.RemoteDebugPort).
		Msg("Chromedp browser attached")

	return &chromedpDriver{
		ctx:    ctx,
		cancel: wrappedCancel,
		logger: logger,
	}, nil
}

// errLaunchTimeout reports a browser that did not start within the launch bound
var errLaunchTimeout = errors.New("browser launch timed out")

// launchWithin runs start and calls cancel if it has not returned after
// timeout. A start that returns in time leaves cancel uncalled.
func launchWithin(timeout time.Duration, cancel func(), start func() error) error {
	var fired atomic.Bool
	timer := time.AfterFunc(timeout, func() {
		fired.Store(true)
		cancel()
	})
	err := start()
	if !timer.Stop() && fired.Load() {
		return fmt.Errorf("%w after %s", errLaunchTimeout, timeout)
	}
	return err
}

func (d *chromedpDriver) Close() error {
	if d.cancel != nil {
		d.cancel()
	}
	return nil
}

// run executes actions on the browser tab, bounded by the caller's context
func (d *chromedpDriver) run(ctx context.Context, actions ...chromedp.Action) error {
	runCtx, cancel := context.WithCancel(d.ctx)
	defer cancel()
	if deadline, ok := ctx.Deadline(); ok {
		var dc context.CancelFunc
		runCtx, dc = context.WithDeadline(runCtx, deadline)
		defer dc()
	}
	stop := context.AfterFunc(ctx, cancel)
	defer stop()

	return chromedp.Run(runCtx, actions...)
}

func (d *chromedpDriver) Navigate(ctx context.Context, url string) error {
	d.logger.Debug().Str("url", url).Msg("Navigating")
	if err := d.run(ctx, chromedp.Navigate(url)); err != nil {
		return common.WrapError(err, common.ErrorTypeNavigation, "navigate_failed", "navigation failed").
			WithContext("url", url)
	}
	return nil
}

func (d *chromedpDriver) Title(ctx context.Context) (string, error) {
	var title string
	err := d.run(ctx, chromedp.Title(&title))
	return title, err
}

func (d *chromedpDriver) FindElement(ctx context.Context, locator interfaces.Locator) (interfaces.Element, error) {
	elements, err := d.nodes(ctx, locator.Selector, queryOption(locator.Strategy))
	if err != nil {
		return nil, err
	}
	if len(elements) == 0 {
		return nil, fmt.Errorf("%s: %w", locator, interfaces.ErrNotFound)
	}
	return &chromedpElement{drv: d, selector: locator.Selector, strategy: locator.Strategy}, nil
}

func (d *chromedpDriver) FindElements(ctx context.Context, locator interfaces.Locator) ([]interfaces.Element, error) {
	by := chromedp.ByQueryAll
	if locator.Strategy == interfaces.StrategyXPath {
		by = chromedp.BySearch
	}
	return d.nodes(ctx, locator.Selector, by)
}

// nodes resolves sel to one element per matching node, addressed by full XPath
func (d *chromedpDriver) nodes(ctx context.Context, sel string, by chromedp.QueryOption) ([]interfaces.Element, error) {
	var nodes []*cdp.Node
	if err := d.run(ctx, chromedp.Nodes(sel, &nodes, by, chromedp.AtLeast(0))); err != nil {
		return nil, err
	}
	elements := make([]interfaces.Element, 0, len(nodes))
	for _, n := range nodes {
		elements = append(elements, &chromedpElement{
			drv:      d,
			selector: n.FullXPath(),
			strategy: interfaces.StrategyXPath,
		})
	}
	return elements, nil
}

func (d *chromedpDriver) WaitUntilVisible(ctx context.Context, locator interfaces.Locator, timeout time.Duration) (interfaces.Element, error) {
	waitCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	err := d.run(waitCtx, chromedp.WaitVisible(locator.Selector, queryOption(locator.Strategy)))
	if err != nil {
		return nil, chromedpWaitError(ctx, locator, err)
	}
	return &chromedpElement{drv: d, selector: locator.Selector, strategy: locator.Strategy}, nil
}

func (d *chromedpDriver) WaitUntilHidden(ctx context.Context, locator interfaces.Locator, timeout time.Duration) error {
	var hidden bool
	err := d.run(ctx, chromedp.Poll("!("+visibilityProbe(locator)+")", &hidden,
		chromedp.WithPollingTimeout(timeout)))
	if err != nil {
		return chromedpWaitError(ctx, locator, err)
	}
	return nil
}

type chromedpElement struct {
	drv      *chromedpDriver
	selector string
	strategy interfaces.Strategy
}

func (e *chromedpElement) by() chromedp.QueryOption {
	return queryOption(e.strategy)
}

func (e *chromedpElement) Click(ctx context.Context) error {
	return e.drv.run(ctx, chromedp.Click(e.selector, e.by()))
}

func (e *chromedpElement) Clear(ctx context.Context) error {
	return e.drv.run(ctx, chromedp.Clear(e.selector, e.by()))
}

func (e *chromedpElement) SendKeys(ctx context.Context, text string) error {
	return e.drv.run(ctx, chromedp.SendKeys(e.selector, text, e.by()))
}

func (e *chromedpElement) Press(ctx context.Context, key string) error {
	var k string
	switch key {
	case interfaces.KeyEnter:
		k = kb.Enter
	case interfaces.KeyTab:
		k = kb.Tab
	default:
		k = key
	}
	return e.drv.run(ctx, chromedp.SendKeys(e.selector, k, e.by()))
}

func (e *chromedpElement) Text(ctx context.Context) (string, error) {
	var text string
	err := e.drv.run(ctx, chromedp.Text(e.selector, &text, e.by()))
	return strings.TrimSpace(text), err
}

func (e *chromedpElement) OuterHTML(ctx context.Context) (string, error) {
	var outer string
	err := e.drv.run(ctx, chromedp.OuterHTML(e.selector, &outer, e.by()))
	return outer, err
}

func (e *chromedpElement) IsDisplayed(ctx context.Context) (bool, error) {
	var visible bool
	err := e.drv.run(ctx, chromedp.Evaluate(visibilityProbe(interfaces.Locator{
		Strategy: e.strategy,
		Selector: e.selector,
	}), &visible))
	return visible, err
}

func (e *chromedpElement) FindElements(ctx context.Context, locator interfaces.Locator) ([]interfaces.Element, error) {
	switch {
	case e.strategy == interfaces.StrategyXPath && locator.Strategy == interfaces.StrategyXPath:
		child := strings.TrimPrefix(locator.Selector, ".")
		return e.drv.nodes(ctx, "("+e.selector+")[1]"+child, chromedp.BySearch)
	case e.strategy == interfaces.StrategyCSS && locator.Strategy == interfaces.StrategyCSS:
		return e.drv.nodes(ctx, e.selector+" "+locator.Selector, chromedp.ByQueryAll)
	default:
		return nil, fmt.Errorf("cannot resolve %s relative to %s selector", locator, e.strategy)
	}
}

func queryOption(strategy interfaces.Strategy) chromedp.QueryOption {
	if strategy == interfaces.StrategyXPath {
		return chromedp.BySearch
	}
	return chromedp.ByQuery
}

// visibilityProbe builds a JS expression that is true when the located element
// exists and is rendered
func visibilityProbe(locator interfaces.Locator) string {
	sel, _ := json.Marshal(locator.Selector)
	var find string
	if locator.Strategy == interfaces.StrategyXPath {
		find = fmt.Sprintf("document.evaluate(%s, document, null, XPathResult.FIRST_ORDERED_NODE_TYPE, null).singleNodeValue", sel)
	} else {
		find = fmt.Sprintf("document.querySelector(%s)", sel)
	}
	return fmt.Sprintf(`((el) => !!el && !!(el.offsetWidth || el.offsetHeight || el.getClientRects().length) && getComputedStyle(el).visibility !== 'hidden')(%s)`, find)
}

func chromedpWaitError(ctx context.Context, locator interfaces.Locator, err error) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}
	if errors.Is(err, chromedp.ErrPollingTimeout) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s: %w", locator, interfaces.ErrTimeout)
	}
	return err
}
