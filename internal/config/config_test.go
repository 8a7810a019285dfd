package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultValidates(t *testing.T) {
	_, vr := NormalizeAndValidate(Default())
	if !vr.OK() {
		t.Fatalf("default config invalid: %v", vr.Errors)
	}
}

func TestNormalizeAndValidate(t *testing.T) {
	cfg := Default()
	cfg.Scrape.BaseURL = "https://weworkremotely.com/ "
	cfg.Email.SearchSubjectAny = []string{" Job Alert ", "job alert", "", "Digest"}

	out, vr := NormalizeAndValidate(cfg)
	if !vr.OK() {
		t.Fatalf("unexpected errors: %v", vr.Errors)
	}
	if out.Scrape.BaseURL != "https://weworkremotely.com" {
		t.Errorf("base_url = %q", out.Scrape.BaseURL)
	}
	if len(out.Email.SearchSubjectAny) != 2 {
		t.Errorf("subjects = %v", out.Email.SearchSubjectAny)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cfg := Default()
	cfg.App.Port = 0
	cfg.Scrape.BaseURL = "not a url"
	cfg.Scrape.RequestsPerSec = -1
	cfg.Polling.ScrapeSeconds = 0

	_, vr := NormalizeAndValidate(cfg)
	if vr.OK() {
		t.Fatal("expected validation errors")
	}
	if len(vr.Errors) < 4 {
		t.Fatalf("expected at least 4 errors, got %v", vr.Errors)
	}
}

func TestValidateEmailRequirements(t *testing.T) {
	cfg := Default()
	cfg.Email.Enabled = true
	cfg.Email.Username = ""

	_, vr := NormalizeAndValidate(cfg)
	if vr.OK() {
		t.Fatal("expected error for missing email.username")
	}
}

func TestEnsureUserConfigRoundTrip(t *testing.T) {
	dir := t.TempDir()

	path, err := EnsureUserConfig(dir)
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Dir(path) != dir {
		t.Fatalf("config written outside data dir: %s", path)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.App.Port != Default().App.Port {
		t.Fatalf("loaded port = %d", cfg.App.Port)
	}

	// Second call must not clobber user edits.
	cfg.App.Port = 4242
	if err := SaveAtomic(path, cfg); err != nil {
		t.Fatal(err)
	}
	if _, err := EnsureUserConfig(dir); err != nil {
		t.Fatal(err)
	}
	again, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if again.App.Port != 4242 {
		t.Fatalf("bootstrap clobbered user config: port = %d", again.App.Port)
	}

	if _, err := os.Stat(path + ".bak"); err != nil {
		t.Fatalf("expected backup after save: %v", err)
	}
}
