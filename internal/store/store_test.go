package store

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"jobfinder-engine/internal/domain"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	d, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = d.Close() })
	if err := Migrate(d.Pool); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return d.Pool
}

func fp(v float64) *float64 { return &v }

func TestMigrateIdempotent(t *testing.T) {
	db := openTestDB(t)
	if err := Migrate(db); err != nil {
		t.Fatalf("second migrate: %v", err)
	}
}

func TestRawPageUpsert(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	now := time.Now()

	id1, created, err := SaveRawPage(ctx, db, "https://example.com/j/1", "<html>a</html>", now)
	if err != nil {
		t.Fatal(err)
	}
	if !created {
		t.Error("first save should create")
	}

	id2, created, err := SaveRawPage(ctx, db, "https://example.com/j/1", "<html>b</html>", now.Add(time.Hour))
	if err != nil {
		t.Fatal(err)
	}
	if created {
		t.Error("second save should update")
	}
	if id1 != id2 {
		t.Errorf("page id changed on refresh: %d -> %d", id1, id2)
	}

	_, html, err := RawPage(ctx, db, id1)
	if err != nil {
		t.Fatal(err)
	}
	if html != "<html>b</html>" {
		t.Errorf("raw html = %q", html)
	}
}

func TestPostingRoundTrip(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	now := time.Now()

	pageID, _, err := SaveRawPage(ctx, db, "https://example.com/j/2", "<html></html>", now)
	if err != nil {
		t.Fatal(err)
	}

	date := time.Date(2026, 8, 17, 0, 0, 0, 0, time.UTC)
	in := domain.JobPosting{
		Title:       "Senior Go Engineer",
		Employer:    "Acme",
		Location:    "Anywhere",
		JobType:     "Full-Time",
		Skills:      "go, sql",
		Description: "Build things.",
		Primary:     domain.SalaryRange{Min: fp(50), Max: fp(70), Rate: "hourly"},
		DatePosted:  &date,
	}

	id, err := UpsertPosting(ctx, db, pageID, in, fp(104000), fp(145600), now)
	if err != nil {
		t.Fatal(err)
	}

	out, err := GetPosting(ctx, db, id)
	if err != nil {
		t.Fatal(err)
	}
	if out.URL != "https://example.com/j/2" {
		t.Errorf("url = %q", out.URL)
	}
	if out.Title != in.Title || out.Employer != in.Employer || out.Skills != in.Skills {
		t.Errorf("fields lost: %+v", out)
	}
	if out.Primary.Min == nil || *out.Primary.Min != 50 || out.Primary.Rate != "hourly" {
		t.Errorf("primary salary = %+v", out.Primary)
	}
	if out.Secondary.Present() {
		t.Errorf("secondary should stay open: %+v", out.Secondary)
	}
	if out.DatePosted == nil || !out.DatePosted.Equal(date) {
		t.Errorf("date = %v", out.DatePosted)
	}
}

func TestPostingUpsertReplacesParse(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	now := time.Now()

	pageID, _, err := SaveRawPage(ctx, db, "https://example.com/j/3", "<html></html>", now)
	if err != nil {
		t.Fatal(err)
	}

	id1, err := UpsertPosting(ctx, db, pageID, domain.JobPosting{Title: "Old Title"}, nil, nil, now)
	if err != nil {
		t.Fatal(err)
	}
	id2, err := UpsertPosting(ctx, db, pageID, domain.JobPosting{Title: "New Title"}, nil, nil, now)
	if err != nil {
		t.Fatal(err)
	}
	if id1 != id2 {
		t.Errorf("posting id changed on reparse: %d -> %d", id1, id2)
	}

	n, err := CountPostings(ctx, db)
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Errorf("count = %d, want 1", n)
	}

	out, err := GetPosting(ctx, db, id1)
	if err != nil {
		t.Fatal(err)
	}
	if out.Title != "New Title" {
		t.Errorf("title = %q", out.Title)
	}
}

func TestListPostingsOrder(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	now := time.Now()

	for i, url := range []string{"https://x/1", "https://x/2", "https://x/3"} {
		pageID, _, err := SaveRawPage(ctx, db, url, "<html></html>", now)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := UpsertPosting(ctx, db, pageID, domain.JobPosting{Title: string(rune('a' + i))}, nil, nil, now); err != nil {
			t.Fatal(err)
		}
	}

	list, err := ListPostings(ctx, db)
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 3 {
		t.Fatalf("len = %d", len(list))
	}
	for i := 1; i < len(list); i++ {
		if list[i].ID <= list[i-1].ID {
			t.Errorf("list not ordered by id: %v", []int64{list[i-1].ID, list[i].ID})
		}
	}
}

func TestSearchRoundTrip(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	if _, ok, err := LastSearch(ctx, db); err != nil || ok {
		t.Fatalf("empty store: ok=%v err=%v", ok, err)
	}

	p := domain.CandidateProfile{
		DesiredSalaryMin: fp(80000),
		DesiredSkills:    []string{"go", "sql"},
		Seniority:        "Senior",
	}
	if _, err := SaveSearch(ctx, db, p, time.Now()); err != nil {
		t.Fatal(err)
	}
	p2 := p
	p2.Seniority = "Lead"
	if _, err := SaveSearch(ctx, db, p2, time.Now()); err != nil {
		t.Fatal(err)
	}

	got, ok, err := LastSearch(ctx, db)
	if err != nil || !ok {
		t.Fatalf("ok=%v err=%v", ok, err)
	}
	if got.Seniority != "Lead" {
		t.Errorf("seniority = %q, want newest search back", got.Seniority)
	}
	if got.DesiredSalaryMin == nil || *got.DesiredSalaryMin != 80000 {
		t.Errorf("salary min = %v", got.DesiredSalaryMin)
	}
}
