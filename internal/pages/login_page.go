package pages

import (
	"context"

	"aktis-jira-pages/internal/interfaces"
	"aktis-jira-pages/internal/models"
)

// LoginPage locator names
const (
	LoginUsername     = "login_form_username"
	LoginPassword     = "login_form_password"
	LoginButton       = "login_form_login_btn"
	LoginErrorMessage = "login_form_error_message"
	UserFullname      = "details_user_fullname"
)

func loginLocators() Locators {
	return Locators{
		LoginUsername:     interfaces.XPath("//input[@id='login-form-username']"),
		LoginPassword:     interfaces.XPath("//input[@id='login-form-password']"),
		LoginButton:       interfaces.XPath("//*[@id='login']"),
		LoginErrorMessage: interfaces.XPath("//div[@id='usernameerror']/p"),
		UserFullname:      interfaces.XPath("//a[@id='header-details-user-fullname']"),
	}
}

type LoginPage struct {
	*BasePage
	locators Locators

	loginText    *InputElement
	passwordText *InputElement
	loginBtn     *Element
	userFullname *Element
	errorMessage *Element
}

func NewLoginPage(s *Session) *LoginPage {
	locators := loginLocators()
	return &LoginPage{
		BasePage:     NewBasePage(s),
		locators:     locators,
		loginText:    newInputElement(s, locators[LoginUsername]),
		passwordText: newInputElement(s, locators[LoginPassword]),
		loginBtn:     newElement(s, locators[LoginButton]),
		userFullname: newElement(s, locators[UserFullname]),
		errorMessage: newElement(s, locators[LoginErrorMessage]),
	}
}

func (p *LoginPage) Locators() Locators {
	return p.locators
}

// Login submits the credentials. It does not check the outcome.
func (p *LoginPage) Login(ctx context.Context, username, password string) error {
	if err := p.loginText.SetValue(ctx, username); err != nil {
		return err
	}
	if err := p.passwordText.SetValue(ctx, password); err != nil {
		return err
	}
	p.session.Logger.Debug().Str("username", username).Msg("Submitting login form")
	return p.loginBtn.Click(ctx)
}

// IsLoggedIn waits for the user name in the header; a timeout yields false
func (p *LoginPage) IsLoggedIn(ctx context.Context) (bool, error) {
	el, err := p.userFullname.WaitToBeDisplayed(ctx, p.session.Timeouts.Login)
	if isTimeout(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return el.IsDisplayed(ctx)
}

// LoginErrorMessage waits for the login error text. NotFoundWithinTimeout
// covers both a successful login and an error rendered after the timeout.
func (p *LoginPage) LoginErrorMessage(ctx context.Context) (Result[string], error) {
	el, err := p.errorMessage.WaitToBeDisplayed(ctx, p.session.Timeouts.Login)
	if isTimeout(err) {
		return NotFoundWithinTimeout[string](), nil
	}
	if err != nil {
		return NotFoundWithinTimeout[string](), err
	}
	text, err := el.Text(ctx)
	if err != nil {
		return NotFoundWithinTimeout[string](), err
	}
	return Found(text), nil
}

// LoginOutcome classifies the last login attempt
func (p *LoginPage) LoginOutcome(ctx context.Context) (models.LoginOutcome, error) {
	loggedIn, err := p.IsLoggedIn(ctx)
	if err != nil {
		return models.LoginOutcomeIndeterminate, err
	}
	if loggedIn {
		return models.LoginOutcomeLoggedIn, nil
	}

	msg, err := p.LoginErrorMessage(ctx)
	if err != nil {
		return models.LoginOutcomeIndeterminate, err
	}
	if msg.IsFound() {
		return models.LoginOutcomeFailed, nil
	}
	return models.LoginOutcomeIndeterminate, nil
}
