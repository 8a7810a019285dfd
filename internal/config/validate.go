package config

import (
	"fmt"
	"net/url"
	"strings"
)

type Validation struct {
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

func (v *Validation) addErr(format string, args ...any) {
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}

func (v *Validation) addWarn(format string, args ...any) {
	v.Warnings = append(v.Warnings, fmt.Sprintf(format, args...))
}

func (v Validation) OK() bool { return len(v.Errors) == 0 }

// NormalizeAndValidate returns a normalized copy alongside the findings.
func NormalizeAndValidate(cfg Config) (Config, Validation) {
	out := cfg
	var res Validation

	trimList := func(xs []string) []string {
		seen := map[string]bool{}
		var ys []string
		for _, x := range xs {
			x = strings.TrimSpace(x)
			if x == "" {
				continue
			}
			key := strings.ToLower(x)
			if seen[key] {
				continue
			}
			seen[key] = true
			ys = append(ys, x)
		}
		return ys
	}

	out.Email.SearchSubjectAny = trimList(out.Email.SearchSubjectAny)
	out.Scrape.BaseURL = strings.TrimRight(strings.TrimSpace(out.Scrape.BaseURL), "/")

	if out.App.Port <= 0 || out.App.Port > 65535 {
		res.addErr("app.port must be 1..65535")
	}

	if out.Scrape.BaseURL == "" {
		res.addErr("scrape.base_url is required")
	} else if u, err := url.Parse(out.Scrape.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		res.addErr("scrape.base_url must be an absolute URL")
	}
	if out.Scrape.LandingPath == "" {
		res.addErr("scrape.landing_path is required")
	} else if !strings.HasPrefix(out.Scrape.LandingPath, "/") {
		res.addErr("scrape.landing_path must start with /")
	}
	if out.Scrape.RequestsPerSec <= 0 {
		res.addErr("scrape.requests_per_sec must be > 0")
	} else if out.Scrape.RequestsPerSec > 2 {
		res.addWarn("scrape.requests_per_sec is high (%g); the board may rate-limit or ban.", out.Scrape.RequestsPerSec)
	}
	if out.Scrape.Burst <= 0 {
		res.addErr("scrape.burst must be > 0")
	}
	if out.Scrape.FetchWorkers <= 0 {
		res.addErr("scrape.fetch_workers must be > 0")
	}
	if out.Scrape.MaxJobs < 0 {
		res.addErr("scrape.max_jobs must be >= 0")
	}

	if out.Polling.ScrapeSeconds <= 0 {
		res.addErr("polling.scrape_seconds must be > 0")
	} else if out.Polling.ScrapeSeconds < 60 {
		res.addWarn("polling.scrape_seconds is very low (%d); scraping a board that often is unfriendly.", out.Polling.ScrapeSeconds)
	}
	if out.Polling.EmailSeconds <= 0 {
		res.addErr("polling.email_seconds must be > 0")
	}

	// email required fields if enabled (password is not here; it lives in
	// the OS keyring)
	if out.Email.Enabled {
		if strings.TrimSpace(out.Email.IMAPHost) == "" {
			res.addErr("email.imap_host is required when email.enabled=true")
		}
		if out.Email.IMAPPort == 0 {
			res.addErr("email.imap_port is required when email.enabled=true")
		}
		if strings.TrimSpace(out.Email.Username) == "" {
			res.addErr("email.username is required when email.enabled=true")
		}
		if strings.TrimSpace(out.Email.Mailbox) == "" {
			res.addErr("email.mailbox is required when email.enabled=true")
		}
		if len(out.Email.SearchSubjectAny) == 0 {
			res.addWarn("email.search_subject_any is empty; the alert source may match nothing.")
		}
		if out.Email.MaxMessages <= 0 {
			res.addErr("email.max_messages must be > 0 when email.enabled=true")
		}
	}

	return out, res
}
