package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gofrs/flock"
	"go.uber.org/zap"

	"jobfinder-engine/internal/config"
	"jobfinder-engine/internal/events"
	"jobfinder-engine/internal/httpapi"
	"jobfinder-engine/internal/logger"
	"jobfinder-engine/internal/scheduler"
	"jobfinder-engine/internal/scrape"
	"jobfinder-engine/internal/store"
)

func main() {
	jsonLog := flag.Bool("log-json", false, "emit json logs")
	debug := flag.Bool("debug", false, "debug logging")
	flag.Parse()

	log, err := logger.New(*jsonLog, *debug)
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	// Engine data dir: env if provided (a desktop shell can pass one), else local.
	dataDir := os.Getenv("JOBFINDER_DATA_DIR")
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		log.Fatal("data dir", zap.Error(err))
	}

	// One engine per data dir; a second instance would fight over sqlite.
	lock := flock.New(filepath.Join(dataDir, "engine.lock"))
	locked, err := lock.TryLock()
	if err != nil {
		log.Fatal("data dir lock", zap.Error(err))
	}
	if !locked {
		log.Fatal("another engine instance already owns this data dir", zap.String("dir", dataDir))
	}
	defer func() { _ = lock.Unlock() }()

	userCfgPath, err := config.EnsureUserConfig(dataDir)
	if err != nil {
		log.Fatal("config bootstrap failed", zap.Error(err))
	}

	// Load config and keep it reloadable.
	var cfgVal atomic.Value // stores config.Config
	loadCfg := func() (config.Config, error) {
		raw, err := config.Load(userCfgPath)
		if err != nil {
			return config.Config{}, err
		}
		normalized, vr := config.NormalizeAndValidate(raw)
		if !vr.OK() {
			return config.Config{}, fmt.Errorf("config invalid: %v", vr.Errors)
		}
		for _, warn := range vr.Warnings {
			log.Warn("config", zap.String("warning", warn))
		}
		return normalized, nil
	}
	cfg, err := loadCfg()
	if err != nil {
		log.Fatal("config load failed", zap.String("path", userCfgPath), zap.Error(err))
	}
	cfgVal.Store(cfg)

	dbPath := filepath.Join(dataDir, "jobfinder.db")
	db, err := store.Open(dbPath)
	if err != nil {
		log.Fatal("open db", zap.Error(err))
	}
	defer db.Close()
	if err := store.Migrate(db.Pool); err != nil {
		log.Fatal("migrate", zap.Error(err))
	}

	hub := events.NewHub()

	var scrapeStatus atomic.Value
	scrapeStatus.Store(scrape.Status{})

	mux := httpapi.NewMux(httpapi.Deps{
		DB:             db.Pool,
		Hub:            hub,
		Log:            log,
		CfgVal:         &cfgVal,
		ScrapeStatus:   &scrapeStatus,
		UserCfgPath:    userCfgPath,
		LoadCfg:        loadCfg,
		RunScrape:      runScrape(log),
		RunEmailScrape: runEmailScrape(log),
	})

	addr := fmt.Sprintf("127.0.0.1:%d", cfg.App.Port)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		log.Fatal("listen", zap.String("addr", addr), zap.Error(err))
	}

	srv := &http.Server{
		Handler: httpapi.Chain(mux,
			httpapi.Cors,
			httpapi.RequestID,
			httpapi.Recover(log),
			httpapi.AccessLog(log),
		),
		ReadHeaderTimeout: 5 * time.Second,
	}

	token, err := randomToken(16)
	if err != nil {
		log.Fatal("shutdown token", zap.Error(err))
	}
	mux.HandleFunc("/shutdown", shutdownHandler(&token, srv))
	if err := os.WriteFile(filepath.Join(dataDir, "engine.port"), []byte(fmt.Sprintf("%s\n%s\n", addr, token)), 0o600); err != nil {
		log.Warn("write port file", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	startSchedulers(ctx, log, db.Pool, &cfgVal, &scrapeStatus, hub)

	go func() {
		<-ctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(sctx)
	}()

	log.Info("engine listening",
		zap.String("addr", "http://"+addr),
		zap.String("db", dbPath),
	)
	if err := srv.Serve(ln); err != nil && err != http.ErrServerClosed {
		log.Error("serve", zap.Error(err))
	}
}

func runScrape(log *zap.Logger) func(ctx context.Context, db *sql.DB, cfg config.Config, onNewPosting func(id int64)) (int, error) {
	return func(ctx context.Context, db *sql.DB, cfg config.Config, onNewPosting func(id int64)) (int, error) {
		return scrape.RunScrapeOnce(ctx, db, cfg, log, onNewPosting)
	}
}

func runEmailScrape(log *zap.Logger) func(ctx context.Context, db *sql.DB, cfg config.Config, onNewPosting func(id int64)) (int, error) {
	return func(ctx context.Context, db *sql.DB, cfg config.Config, onNewPosting func(id int64)) (int, error) {
		return scrape.RunEmailScrapeOnce(ctx, db, cfg, log, onNewPosting)
	}
}

// startSchedulers runs the polling lanes: board scrape and, when enabled,
// the email alert source. Each lane updates the shared scrape status so the
// API reports scheduled runs the same way as manual ones.
func startSchedulers(ctx context.Context, log *zap.Logger, db *sql.DB, cfgVal, scrapeStatus *atomic.Value, hub *events.Hub) {
	cfg := cfgVal.Load().(config.Config)

	onNew := func(id int64) {
		hub.Publish(events.MakeEvent("", events.TypePostingAdded, 1, map[string]any{"id": id}))
	}

	run := func(name string, f func(context.Context, *sql.DB, config.Config, func(int64)) (int, error)) scheduler.Task {
		return func(ctx context.Context) error {
			st := scrapeStatus.Load().(scrape.Status)
			if st.Running {
				return nil // a manual run is in flight
			}
			st.Running = true
			st.LastRunAt = time.Now().Format(time.RFC3339)
			scrapeStatus.Store(st)

			cur := cfgVal.Load().(config.Config)
			added, err := f(ctx, db, cur, onNew)

			now := time.Now().Format(time.RFC3339)
			next := scrapeStatus.Load().(scrape.Status)
			next.Running = false
			next.LastRunAt = now
			next.LastAdded = added
			if err != nil {
				next.LastError = err.Error()
			} else {
				next.LastError = ""
				next.LastOkAt = now
			}
			scrapeStatus.Store(next)
			hub.Publish(events.MakeEvent("", events.TypeScrapeFinished, 1, map[string]any{"added": added, "source": name}))
			return err
		}
	}

	go scheduler.Every(ctx, log, time.Duration(cfg.Polling.ScrapeSeconds)*time.Second, "scrape",
		run("board", func(ctx context.Context, db *sql.DB, c config.Config, onNew func(int64)) (int, error) {
			return scrape.RunScrapeOnce(ctx, db, c, log, onNew)
		}))

	if cfg.Email.Enabled {
		go scheduler.Every(ctx, log, time.Duration(cfg.Polling.EmailSeconds)*time.Second, "email",
			run("email", func(ctx context.Context, db *sql.DB, c config.Config, onNew func(int64)) (int, error) {
				return scrape.RunEmailScrapeOnce(ctx, db, c, log, onNew)
			}))
	}
}
