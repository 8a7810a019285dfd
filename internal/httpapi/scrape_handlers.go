package httpapi

import (
	"context"
	"database/sql"
	"net/http"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"jobfinder-engine/internal/config"
	"jobfinder-engine/internal/events"
	"jobfinder-engine/internal/scrape"
)

type ScrapeHandler struct {
	DB           *sql.DB
	CfgVal       *atomic.Value // config.Config
	ScrapeStatus *atomic.Value // scrape.Status
	Hub          *events.Hub
	Log          *zap.Logger

	RunScrape      func(ctx context.Context, db *sql.DB, cfg config.Config, onNewPosting func(id int64)) (added int, err error)
	RunEmailScrape func(ctx context.Context, db *sql.DB, cfg config.Config, onNewPosting func(id int64)) (added int, err error)
}

func (h ScrapeHandler) Status(w http.ResponseWriter, r *http.Request) {
	st := h.ScrapeStatus.Load().(scrape.Status)
	writeJSON(w, st)
}

// Run kicks off a board scrape (plus the email source when enabled) in the
// background. A second trigger while one is running is refused.
func (h ScrapeHandler) Run(w http.ResponseWriter, r *http.Request) {
	st := h.ScrapeStatus.Load().(scrape.Status)
	if st.Running {
		writeJSON(w, map[string]any{"ok": false, "msg": "already running"})
		return
	}

	h.ScrapeStatus.Store(scrape.Status{
		LastRunAt: time.Now().Format(time.RFC3339),
		Running:   true,
		LastOkAt:  st.LastOkAt,
	})
	h.Hub.Publish(events.MakeEvent(RequestIDFrom(r.Context()), events.TypeScrapeStarted, 1, nil))

	go func() {
		cfg := h.CfgVal.Load().(config.Config)
		onNew := func(id int64) {
			h.Hub.Publish(events.MakeEvent("", events.TypePostingAdded, 1, map[string]any{"id": id}))
		}

		ctx := context.Background()
		added, err := h.RunScrape(ctx, h.DB, cfg, onNew)
		if err == nil && cfg.Email.Enabled {
			var emailAdded int
			emailAdded, err = h.RunEmailScrape(ctx, h.DB, cfg, onNew)
			added += emailAdded
		}

		now := time.Now().Format(time.RFC3339)
		next := h.ScrapeStatus.Load().(scrape.Status)
		next.Running = false
		next.LastRunAt = now
		next.LastAdded = added
		if err != nil {
			next.LastError = err.Error()
			h.Log.Warn("scrape run failed", zap.Error(err))
		} else {
			next.LastError = ""
			next.LastOkAt = now
		}
		h.ScrapeStatus.Store(next)
		h.Hub.Publish(events.MakeEvent("", events.TypeScrapeFinished, 1, map[string]any{"added": added}))
	}()

	writeJSON(w, map[string]any{"ok": true})
}
