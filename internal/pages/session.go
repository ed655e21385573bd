// Package pages models the Jira login, dashboard and issue search screens as
// page objects built on interfaces.Driver.
//
// Waits that only observe an outcome (flags, loading indicator, issue list,
// login markers) never fail on timeout; they report a false, empty or
// NotFoundWithinTimeout result instead. Every other error is returned.
package pages

import (
	"context"
	"errors"
	"time"

	"aktis-jira-pages/internal/common"
	"aktis-jira-pages/internal/interfaces"

	"github.com/ternarybob/arbor"
)

// SettleDelay is the fixed pause after the loading indicator disappears or an
// edit is confirmed. The issue navigator keeps re-rendering after the
// indicator hides and no DOM condition marks the end of it.
const SettleDelay = 5 * time.Second

// Timeouts are the per-call wait bounds used by the page objects
type Timeouts struct {
	Flag    time.Duration
	Menu    time.Duration
	Loading time.Duration
	Login   time.Duration
	Dialog  time.Duration
	List    time.Duration
	Settle  time.Duration
}

func DefaultTimeouts() Timeouts {
	return Timeouts{
		Flag:    10 * time.Second,
		Menu:    3 * time.Second,
		Loading: 60 * time.Second,
		Login:   30 * time.Second,
		Dialog:  10 * time.Second,
		List:    10 * time.Second,
		Settle:  SettleDelay,
	}
}

// TimeoutsFromConfig converts the [timeouts] config section, given in seconds
func TimeoutsFromConfig(cfg common.TimeoutsConfig) Timeouts {
	sec := func(v int) time.Duration { return time.Duration(v) * time.Second }
	return Timeouts{
		Flag:    sec(cfg.Flag),
		Menu:    sec(cfg.Menu),
		Loading: sec(cfg.Loading),
		Login:   sec(cfg.Login),
		Dialog:  sec(cfg.Dialog),
		List:    sec(cfg.List),
		Settle:  sec(cfg.Settle),
	}
}

// Session is the browser session shared by every page object built from it.
// Page objects only read it and must not outlive the driver.
type Session struct {
	Driver   interfaces.Driver
	Timeouts Timeouts
	Logger   arbor.ILogger

	sleep func(ctx context.Context, d time.Duration) error
}

func NewSession(driver interfaces.Driver, timeouts Timeouts, logger arbor.ILogger) *Session {
	return &Session{
		Driver:   driver,
		Timeouts: timeouts,
		Logger:   logger,
		sleep:    sleepContext,
	}
}

// settle blocks for the configured settle delay
func (s *Session) settle(ctx context.Context) error {
	if s.Timeouts.Settle <= 0 {
		return nil
	}
	s.Logger.Debug().Dur("delay", s.Timeouts.Settle).Msg("Waiting for page to settle")
	return s.sleep(ctx, s.Timeouts.Settle)
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func isTimeout(err error) bool {
	return errors.Is(err, interfaces.ErrTimeout)
}

// Locators maps semantic element names to their locators
type Locators map[string]interfaces.Locator
