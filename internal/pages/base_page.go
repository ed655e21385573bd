package pages

import (
	"context"
	"strings"
)

// BasePage provides navigation and the page title check
type BasePage struct {
	session *Session
}

func NewBasePage(s *Session) *BasePage {
	return &BasePage{session: s}
}

func (p *BasePage) Session() *Session {
	return p.session
}

// Go navigates to url and waits for the page load
func (p *BasePage) Go(ctx context.Context, url string) error {
	p.session.Logger.Debug().Str("url", url).Msg("Opening page")
	return p.session.Driver.Navigate(ctx, url)
}

// IsTitleContains reports whether title is a substring of the document title
func (p *BasePage) IsTitleContains(ctx context.Context, title string) (bool, error) {
	current, err := p.session.Driver.Title(ctx)
	if err != nil {
		return false, err
	}
	return strings.Contains(current, title), nil
}
