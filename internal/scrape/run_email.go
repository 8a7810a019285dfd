package scrape

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/emersion/go-imap/v2"
	"go.uber.org/zap"

	"jobfinder-engine/internal/config"
	email_scrape "jobfinder-engine/internal/scrape/email"
	"jobfinder-engine/internal/secrets"
)

// RunEmailScrapeOnce scans unseen job-alert mails, extracts board job-page
// links and feeds them through the same fetch/parse pipeline as a board
// scrape. Matched mails are marked \Seen afterwards so the next run never
// rereads them; non-matching mails keep their flags.
func RunEmailScrapeOnce(ctx context.Context, db *sql.DB, cfg config.Config, log *zap.Logger, onNewPosting func(id int64)) (added int, err error) {
	if !cfg.Email.Enabled {
		return 0, nil
	}
	if cfg.Email.IMAPHost == "" || cfg.Email.Username == "" {
		return 0, errors.New("email enabled but missing imap_host/username")
	}

	password, err := secrets.GetIMAPPassword(secrets.IMAPKeyringAccount(cfg))
	if err != nil {
		return 0, err
	}

	addr := cfg.Email.IMAPHost
	if !strings.Contains(addr, ":") {
		port := cfg.Email.IMAPPort
		if port == 0 {
			port = 993
		}
		addr = fmt.Sprintf("%s:%d", addr, port)
	}

	ctx, cancel := context.WithTimeout(ctx, 2*time.Minute)
	defer cancel()

	c, err := email_scrape.DialAndLogin(ctx, addr, cfg.Email.IMAPHost, cfg.Email.Username, password)
	if err != nil {
		return 0, err
	}
	defer email_scrape.LogoutAndClose(c)

	msgs, err := email_scrape.FetchUnseen(ctx, c, cfg.Email.Mailbox, cfg.Email.MaxMessages)
	if err != nil {
		return 0, err
	}
	if len(msgs) == 0 {
		return 0, nil
	}

	var urls []string
	var processed []imap.UID
	seen := map[string]bool{}
	for _, m := range msgs {
		if !email_scrape.SubjectMatches(m.Subject, cfg.Email.SearchSubjectAny) {
			continue
		}
		for _, u := range email_scrape.JobLinks(m.Raw, cfg.Scrape.BaseURL) {
			if !seen[u] {
				seen[u] = true
				urls = append(urls, u)
			}
		}
		processed = append(processed, m.UID)
	}
	log.Info("alert mails scanned", zap.Int("messages", len(msgs)), zap.Int("links", len(urls)))

	fetcher := NewFetcher(cfg.Scrape.RequestsPerSec, cfg.Scrape.Burst)
	for _, u := range urls {
		pageHTML, ferr := fetcher.Get(ctx, u)
		if ferr != nil {
			log.Warn("job page fetch failed", zap.String("url", u), zap.Error(ferr))
			continue
		}
		// Alert mails carry no company location; the page parse fills what it can.
		id, created, ierr := IngestPage(ctx, db, u, pageHTML, "", time.Now().UTC())
		if ierr != nil {
			log.Warn("job page ingest failed", zap.String("url", u), zap.Error(ierr))
			continue
		}
		if created {
			added++
			if onNewPosting != nil {
				onNewPosting(id)
			}
		}
	}

	return added, email_scrape.MarkSeen(c, processed)
}
