package interfaces

import (
	"context"
	"errors"
	"fmt"
	"time"
)

var (
	// ErrTimeout is returned when a wait condition does not hold within its timeout.
	// Backends wrap their native timeout errors so errors.Is(err, ErrTimeout) holds.
	ErrTimeout = errors.New("timed out waiting for element")
	// ErrNotFound is returned when a locator matches no element.
	ErrNotFound = errors.New("element not found")
)

// Key names understood by Element.Press.
const (
	KeyEnter = "Enter"
	KeyTab   = "Tab"
)

// Strategy selects how a Locator selector is interpreted
type Strategy string

const (
	StrategyXPath Strategy = "xpath"
	StrategyCSS   Strategy = "css"
)

// Locator identifies zero or one element in the current document
type Locator struct {
	Strategy Strategy `json:"strategy" toml:"strategy"`
	Selector string   `json:"selector" toml:"selector"`
}

func XPath(selector string) Locator {
	return Locator{Strategy: StrategyXPath, Selector: selector}
}

func CSS(selector string) Locator {
	return Locator{Strategy: StrategyCSS, Selector: selector}
}

func (l Locator) String() string {
	return fmt.Sprintf("%s=%s", l.Strategy, l.Selector)
}

// Element is a handle to a live DOM element
type Element interface {
	Click(ctx context.Context) error
	Clear(ctx context.Context) error
	SendKeys(ctx context.Context, text string) error
	Press(ctx context.Context, key string) error
	Text(ctx context.Context) (string, error)
	OuterHTML(ctx context.Context) (string, error)
	IsDisplayed(ctx context.Context) (bool, error)
	// FindElements resolves locator relative to this element
	FindElements(ctx context.Context, locator Locator) ([]Element, error)
}

// Driver is the browser automation backend consumed by the page objects
type Driver interface {
	Navigate(ctx context.Context, url string) error
	Title(ctx context.Context) (string, error)
	FindElement(ctx context.Context, locator Locator) (Element, error)
	FindElements(ctx context.Context, locator Locator) ([]Element, error)
	WaitUntilVisible(ctx context.Context, locator Locator, timeout time.Duration) (Element, error)
	WaitUntilHidden(ctx context.Context, locator Locator, timeout time.Duration) error
	Close() error
}
