package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	App struct {
		Port    int    `yaml:"port" json:"port"`
		DataDir string `yaml:"data_dir" json:"data_dir"`
	} `yaml:"app" json:"app"`

	Scrape struct {
		BaseURL        string  `yaml:"base_url" json:"base_url"`
		LandingPath    string  `yaml:"landing_path" json:"landing_path"`
		MaxJobs        int     `yaml:"max_jobs" json:"max_jobs"` // 0 = no limit
		RequestsPerSec float64 `yaml:"requests_per_sec" json:"requests_per_sec"`
		Burst          int     `yaml:"burst" json:"burst"`
		FetchWorkers   int     `yaml:"fetch_workers" json:"fetch_workers"`
	} `yaml:"scrape" json:"scrape"`

	Email struct {
		Enabled          bool     `yaml:"enabled" json:"enabled"`
		IMAPHost         string   `yaml:"imap_host" json:"imap_host"`
		IMAPPort         int      `yaml:"imap_port" json:"imap_port"`
		Username         string   `yaml:"username" json:"username"`
		Mailbox          string   `yaml:"mailbox" json:"mailbox"`
		SearchSubjectAny []string `yaml:"search_subject_any" json:"search_subject_any"`
		MaxMessages      int      `yaml:"max_messages" json:"max_messages"`
	} `yaml:"email" json:"email"`

	Polling struct {
		ScrapeSeconds int `yaml:"scrape_seconds" json:"scrape_seconds"`
		EmailSeconds  int `yaml:"email_seconds" json:"email_seconds"`
	} `yaml:"polling" json:"polling"`
}

// Default is the configuration written into a fresh data dir.
func Default() Config {
	var cfg Config
	cfg.App.Port = 38471
	cfg.Scrape.BaseURL = "https://weworkremotely.com"
	cfg.Scrape.LandingPath = "/remote-jobs"
	cfg.Scrape.RequestsPerSec = 0.5
	cfg.Scrape.Burst = 1
	cfg.Scrape.FetchWorkers = 4
	cfg.Email.IMAPHost = "imap.gmail.com"
	cfg.Email.IMAPPort = 993
	cfg.Email.Mailbox = "INBOX"
	cfg.Email.MaxMessages = 50
	cfg.Polling.ScrapeSeconds = 900
	cfg.Polling.EmailSeconds = 300
	return cfg
}

func Load(path string) (Config, error) {
	var cfg Config
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	err = yaml.Unmarshal(b, &cfg)
	return cfg, err
}
