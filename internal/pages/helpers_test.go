package pages

import (
	"context"
	"strings"
	"time"

	"github.com/ternarybob/arbor"

	"aktis-jira-pages/internal/testutil"
)

// sleepRecorder replaces the session sleep and records the requested delays
type sleepRecorder struct {
	delays []time.Duration
}

func (r *sleepRecorder) sleep(_ context.Context, d time.Duration) error {
	r.delays = append(r.delays, d)
	return nil
}

// newTestSession returns a session over a fresh fake driver whose settle
// delay is recorded instead of slept
func newTestSession() (*Session, *testutil.FakeDriver, *sleepRecorder) {
	drv := testutil.NewFakeDriver()
	s := NewSession(drv, DefaultTimeouts(), arbor.NewLogger())
	rec := &sleepRecorder{}
	s.sleep = rec.sleep
	return s, drv, rec
}

// typedInto returns the locators written to, in order, from the driver log
func typedInto(drv *testutil.FakeDriver) []string {
	var out []string
	for _, line := range drv.Log {
		fields := strings.Fields(line)
		if len(fields) >= 2 && fields[0] == "type" {
			out = append(out, fields[1])
		}
	}
	return out
}
