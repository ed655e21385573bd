package models

// LoginOutcome classifies a login attempt
type LoginOutcome string

const (
	LoginOutcomeLoggedIn LoginOutcome = "logged_in"
	LoginOutcomeFailed   LoginOutcome = "login_failed"
	// LoginOutcomeIndeterminate means neither the user marker nor an error appeared in time
	LoginOutcomeIndeterminate LoginOutcome = "indeterminate"
)

// StepResult records one step of a smoke scenario
type StepResult struct {
	Name     string `json:"name"`
	OK       bool   `json:"ok"`
	Detail   string `json:"detail,omitempty"`
	Duration string `json:"duration"`
}
