// Package testutil provides an in-memory interfaces.Driver for page object tests.
package testutil

import (
	"context"
	"fmt"
	"time"

	"aktis-jira-pages/internal/interfaces"
)

// WaitCall records one WaitUntilVisible or WaitUntilHidden call
type WaitCall struct {
	Locator interfaces.Locator
	Timeout time.Duration
	Hidden  bool
}

// FakeDriver resolves locators against a fixed set of scripted elements.
// Waits never block: they succeed or fail with ErrTimeout immediately.
type FakeDriver struct {
	title    string
	elements map[interfaces.Locator]*FakeElement

	URLs   []string
	Waits  []WaitCall
	Closed bool
	// Log records element interactions in order, e.g. "click xpath=//a"
	Log []string
}

func NewFakeDriver() *FakeDriver {
	return &FakeDriver{elements: make(map[interfaces.Locator]*FakeElement)}
}

func (d *FakeDriver) SetTitle(title string) {
	d.title = title
}

// Add registers a visible element at locator and returns it for scripting
func (d *FakeDriver) Add(locator interfaces.Locator) *FakeElement {
	el := &FakeElement{Locator: locator, Visible: true, driver: d}
	d.elements[locator] = el
	return el
}

// Element returns the element at locator, or nil
func (d *FakeDriver) Element(locator interfaces.Locator) *FakeElement {
	return d.elements[locator]
}

func (d *FakeDriver) Remove(locator interfaces.Locator) {
	delete(d.elements, locator)
}

// WaitsFor returns the recorded waits on locator
func (d *FakeDriver) WaitsFor(locator interfaces.Locator) []WaitCall {
	var calls []WaitCall
	for _, w := range d.Waits {
		if w.Locator == locator {
			calls = append(calls, w)
		}
	}
	return calls
}

func (d *FakeDriver) Navigate(ctx context.Context, url string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	d.URLs = append(d.URLs, url)
	return nil
}

func (d *FakeDriver) Title(ctx context.Context) (string, error) {
	return d.title, ctx.Err()
}

func (d *FakeDriver) FindElement(ctx context.Context, locator interfaces.Locator) (interfaces.Element, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	el, ok := d.elements[locator]
	if !ok {
		return nil, fmt.Errorf("%s: %w", locator, interfaces.ErrNotFound)
	}
	return el, nil
}

func (d *FakeDriver) FindElements(ctx context.Context, locator interfaces.Locator) ([]interfaces.Element, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if el, ok := d.elements[locator]; ok {
		return []interfaces.Element{el}, nil
	}
	return []interfaces.Element{}, nil
}

func (d *FakeDriver) WaitUntilVisible(ctx context.Context, locator interfaces.Locator, timeout time.Duration) (interfaces.Element, error) {
	d.Waits = append(d.Waits, WaitCall{Locator: locator, Timeout: timeout})
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	el, ok := d.elements[locator]
	if ok && el.Err != nil {
		return nil, el.Err
	}
	if !ok || !el.Visible {
		return nil, fmt.Errorf("%s: %w", locator, interfaces.ErrTimeout)
	}
	return el, nil
}

func (d *FakeDriver) WaitUntilHidden(ctx context.Context, locator interfaces.Locator, timeout time.Duration) error {
	d.Waits = append(d.Waits, WaitCall{Locator: locator, Timeout: timeout, Hidden: true})
	if err := ctx.Err(); err != nil {
		return err
	}
	el, ok := d.elements[locator]
	if ok && el.Err != nil {
		return el.Err
	}
	if ok && el.Visible {
		return fmt.Errorf("%s: %w", locator, interfaces.ErrTimeout)
	}
	return nil
}

func (d *FakeDriver) Close() error {
	d.Closed = true
	return nil
}

// FakeElement is a scripted DOM element
type FakeElement struct {
	Locator  interfaces.Locator
	Visible  bool
	Value    string
	TextVal  string
	HTML     string
	Children []*FakeElement
	// Err, when set, is returned by every operation on the element
	Err error

	Clicks  int
	Presses []string
	// Writes counts Clear and SendKeys calls
	Writes int

	OnClick func()
	OnPress func(key string)

	driver *FakeDriver
}

// WithText sets the text returned by Text
func (e *FakeElement) WithText(text string) *FakeElement {
	e.TextVal = text
	return e
}

func (e *FakeElement) Hidden() *FakeElement {
	e.Visible = false
	return e
}

// AddChild appends a visible child row rendered as html
func (e *FakeElement) AddChild(html string) *FakeElement {
	child := &FakeElement{
		Locator: interfaces.XPath(fmt.Sprintf("%s/*[%d]", e.Locator.Selector, len(e.Children)+1)),
		Visible: true,
		HTML:    html,
		driver:  e.driver,
	}
	e.Children = append(e.Children, child)
	return child
}

func (e *FakeElement) log(format string, args ...interface{}) {
	if e.driver != nil {
		e.driver.Log = append(e.driver.Log, fmt.Sprintf(format, args...))
	}
}

func (e *FakeElement) Click(ctx context.Context) error {
	if e.Err != nil {
		return e.Err
	}
	e.Clicks++
	e.log("click %s", e.Locator)
	if e.OnClick != nil {
		e.OnClick()
	}
	return ctx.Err()
}

func (e *FakeElement) Clear(ctx context.Context) error {
	if e.Err != nil {
		return e.Err
	}
	e.Writes++
	e.Value = ""
	return ctx.Err()
}

func (e *FakeElement) SendKeys(ctx context.Context, text string) error {
	if e.Err != nil {
		return e.Err
	}
	e.Writes++
	e.Value += text
	e.log("type %s %q", e.Locator, text)
	return ctx.Err()
}

func (e *FakeElement) Press(ctx context.Context, key string) error {
	if e.Err != nil {
		return e.Err
	}
	e.Presses = append(e.Presses, key)
	e.log("press %s %s", e.Locator, key)
	if e.OnPress != nil {
		e.OnPress(key)
	}
	return ctx.Err()
}

func (e *FakeElement) Text(ctx context.Context) (string, error) {
	if e.Err != nil {
		return "", e.Err
	}
	return e.TextVal, ctx.Err()
}

func (e *FakeElement) OuterHTML(ctx context.Context) (string, error) {
	if e.Err != nil {
		return "", e.Err
	}
	return e.HTML, ctx.Err()
}

func (e *FakeElement) IsDisplayed(ctx context.Context) (bool, error) {
	if e.Err != nil {
		return false, e.Err
	}
	return e.Visible, ctx.Err()
}

// FindElements returns the children in insertion order regardless of locator
func (e *FakeElement) FindElements(ctx context.Context, _ interfaces.Locator) ([]interfaces.Element, error) {
	if e.Err != nil {
		return nil, e.Err
	}
	out := make([]interfaces.Element, 0, len(e.Children))
	for _, c := range e.Children {
		out = append(out, c)
	}
	return out, ctx.Err()
}
