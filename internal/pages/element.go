package pages

import (
	"context"
	"errors"
	"fmt"
	"time"

	"aktis-jira-pages/internal/interfaces"
)

// Element binds a locator to the session driver. The locator is resolved
// again on every call so no DOM handle survives a navigation.
type Element struct {
	session *Session
	locator interfaces.Locator
}

func newElement(s *Session, locator interfaces.Locator) *Element {
	return &Element{session: s, locator: locator}
}

func (e *Element) Locator() interfaces.Locator {
	return e.locator
}

func (e *Element) find(ctx context.Context) (interfaces.Element, error) {
	el, err := e.session.Driver.FindElement(ctx, e.locator)
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", e.locator, err)
	}
	return el, nil
}

func (e *Element) Click(ctx context.Context) error {
	el, err := e.find(ctx)
	if err != nil {
		return err
	}
	e.session.Logger.Debug().Str("locator", e.locator.String()).Msg("Click")
	return el.Click(ctx)
}

func (e *Element) Text(ctx context.Context) (string, error) {
	el, err := e.find(ctx)
	if err != nil {
		return "", err
	}
	return el.Text(ctx)
}

// IsDisplayed reports current visibility; a missing element is not displayed
func (e *Element) IsDisplayed(ctx context.Context) (bool, error) {
	el, err := e.session.Driver.FindElement(ctx, e.locator)
	if errors.Is(err, interfaces.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return el.IsDisplayed(ctx)
}

func (e *Element) WaitToBeDisplayed(ctx context.Context, timeout time.Duration) (interfaces.Element, error) {
	return e.session.Driver.WaitUntilVisible(ctx, e.locator, timeout)
}

func (e *Element) WaitToBeHidden(ctx context.Context, timeout time.Duration) error {
	return e.session.Driver.WaitUntilHidden(ctx, e.locator, timeout)
}

// FindElements resolves child relative to this element
func (e *Element) FindElements(ctx context.Context, child interfaces.Locator) ([]interfaces.Element, error) {
	el, err := e.find(ctx)
	if err != nil {
		return nil, err
	}
	return el.FindElements(ctx, child)
}

// InputElement is a text field
type InputElement struct {
	*Element
}

func newInputElement(s *Session, locator interfaces.Locator) *InputElement {
	return &InputElement{Element: newElement(s, locator)}
}

// SetValue replaces the field content with value
func (i *InputElement) SetValue(ctx context.Context, value string) error {
	el, err := i.find(ctx)
	if err != nil {
		return err
	}
	if err := el.Clear(ctx); err != nil {
		return err
	}
	return el.SendKeys(ctx, value)
}

func (i *InputElement) SendKeys(ctx context.Context, text string) error {
	el, err := i.find(ctx)
	if err != nil {
		return err
	}
	return el.SendKeys(ctx, text)
}

func (i *InputElement) Press(ctx context.Context, key string) error {
	el, err := i.find(ctx)
	if err != nil {
		return err
	}
	return el.Press(ctx, key)
}
