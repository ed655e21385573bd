package services

import (
	"aktis-jira-pages/internal/common"
	"aktis-jira-pages/internal/interfaces"

	"github.com/ternarybob/arbor"
)

// NewDriver builds the browser backend named by cfg.Browser.Backend
func NewDriver(cfg *common.Config, logger arbor.ILogger) (interfaces.Driver, error) {
	switch cfg.Browser.Backend {
	case common.BackendChromedp:
		return NewChromedpDriver(&cfg.Browser, logger)
	case common.BackendPlaywright, "":
		return NewPlaywrightDriver(&cfg.Browser, logger)
	default:
		return nil, common.NewDriverError("unknown_backend", "unknown browser backend").
			WithContext("backend", cfg.Browser.Backend)
	}
}
