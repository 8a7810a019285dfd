package scrape

import (
	"context"
	"database/sql"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"jobfinder-engine/internal/config"
)

// RunScrapeOnce walks the board's landing page and ingests every listed job
// page. Individual page failures are logged and skipped so one broken
// posting never sinks the run. Returns how many postings were new.
func RunScrapeOnce(ctx context.Context, db *sql.DB, cfg config.Config, log *zap.Logger, onNewPosting func(id int64)) (added int, err error) {
	fetcher := NewFetcher(cfg.Scrape.RequestsPerSec, cfg.Scrape.Burst)

	landingURL := cfg.Scrape.BaseURL + cfg.Scrape.LandingPath
	landingHTML, err := fetcher.Get(ctx, landingURL)
	if err != nil {
		return 0, err
	}

	listings, err := Listings(landingHTML, cfg.Scrape.BaseURL)
	if err != nil {
		return 0, err
	}
	if cfg.Scrape.MaxJobs > 0 && len(listings) > cfg.Scrape.MaxJobs {
		listings = listings[:cfg.Scrape.MaxJobs]
	}
	log.Info("landing page scraped", zap.String("url", landingURL), zap.Int("listings", len(listings)))

	workers := cfg.Scrape.FetchWorkers
	if workers <= 0 {
		workers = 1
	}

	var newCount atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for _, l := range listings {
		l := l
		g.Go(func() error {
			pageHTML, ferr := fetcher.Get(gctx, l.URL)
			if ferr != nil {
				log.Warn("job page fetch failed", zap.String("url", l.URL), zap.Error(ferr))
				return nil // best-effort: don't cancel siblings
			}

			id, created, ierr := IngestPage(gctx, db, l.URL, pageHTML, l.Location, time.Now().UTC())
			if ierr != nil {
				log.Warn("job page ingest failed", zap.String("url", l.URL), zap.Error(ierr))
				return nil
			}
			if created {
				newCount.Add(1)
				if onNewPosting != nil {
					onNewPosting(id)
				}
			}
			return nil
		})
	}

	_ = g.Wait()
	if cerr := ctx.Err(); cerr != nil {
		return int(newCount.Load()), cerr
	}
	return int(newCount.Load()), nil
}
