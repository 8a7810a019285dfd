package httpapi

import (
	"context"
	"database/sql"
	"sync/atomic"

	"go.uber.org/zap"

	"jobfinder-engine/internal/config"
	"jobfinder-engine/internal/events"
)

type Deps struct {
	DB  *sql.DB
	Hub *events.Hub
	Log *zap.Logger

	// Atomic stores
	CfgVal       *atomic.Value // stores config.Config
	ScrapeStatus *atomic.Value // stores scrape.Status

	// Config persistence
	UserCfgPath string
	LoadCfg     func() (config.Config, error)

	// Scrape entrypoints (injected for testability)
	RunScrape      func(ctx context.Context, db *sql.DB, cfg config.Config, onNewPosting func(id int64)) (added int, err error)
	RunEmailScrape func(ctx context.Context, db *sql.DB, cfg config.Config, onNewPosting func(id int64)) (added int, err error)
}
