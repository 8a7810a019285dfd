package match

import (
	"math"
	"testing"
	"time"

	"jobfinder-engine/internal/domain"
)

func dt(s string) *time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return &t
}

func TestMatchEmptyProfileScoresEverythingOne(t *testing.T) {
	postings := []domain.JobPosting{
		{ID: 1, Title: "Plumber"},
		{ID: 2, Title: "Astronaut", Skills: "orbital mechanics"},
	}
	results, err := Match(domain.CandidateProfile{}, postings)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	for _, r := range results {
		if r.CompositeScore != 1 {
			t.Errorf("job %d: composite = %v, want 1", r.JobID, r.CompositeScore)
		}
	}
}

func TestMatchReferenceScenario(t *testing.T) {
	profile := domain.CandidateProfile{
		DesiredSkills:       []string{"Python"},
		DesiredSalaryMin:    fp(80000),
		DesiredSalaryPeriod: "yearly",
	}
	a := domain.JobPosting{
		ID:      1,
		Skills:  "Python, SQL",
		Primary: domain.SalaryRange{Min: fp(90000), Rate: "yearly"},
	}
	b := domain.JobPosting{
		ID:      2,
		Skills:  "Java",
		Primary: domain.SalaryRange{Min: fp(40000), Max: fp(45000), Rate: "yearly"},
	}

	results, err := Match(profile, []domain.JobPosting{b, a})
	if err != nil {
		t.Fatal(err)
	}

	if results[0].JobID != 1 {
		t.Fatalf("posting A should rank first, got job %d", results[0].JobID)
	}
	top := results[0]
	if top.SkillsScore != 1 || top.SalaryScore != 1 || top.JobTypeScore != 1 || top.TitleScore != 1 {
		t.Fatalf("posting A scores = %+v, want all 1", top)
	}
	if top.CompositeScore != 1 {
		t.Fatalf("posting A composite = %v, want 1", top.CompositeScore)
	}

	second := results[1]
	if second.SkillsScore != 0 {
		t.Fatalf("posting B skills = %v, want 0", second.SkillsScore)
	}
	if second.SalaryScore >= 1 || second.SalaryScore < 0 {
		t.Fatalf("posting B salary = %v, want in [0,1)", second.SalaryScore)
	}
	if second.CompositeScore >= top.CompositeScore {
		t.Fatalf("posting B composite %v not below posting A %v", second.CompositeScore, top.CompositeScore)
	}
}

func TestMatchOrderInvariance(t *testing.T) {
	profile := domain.CandidateProfile{
		DesiredSkills:    []string{"go", "sql", "docker"},
		DesiredJobTitles: []string{"Backend Engineer"},
	}
	postings := []domain.JobPosting{
		{ID: 1, Title: "Backend Engineer", Skills: "Go, SQL"},
		{ID: 2, Title: "Frontend Engineer", Skills: "TypeScript"},
		{ID: 3, Title: "Engineer", Skills: "Go, Docker, SQL"},
	}
	reversed := []domain.JobPosting{postings[2], postings[1], postings[0]}

	a, err := Match(profile, postings)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Match(profile, reversed)
	if err != nil {
		t.Fatal(err)
	}
	if len(a) != len(b) {
		t.Fatalf("result lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("result %d differs under input reordering: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestMatchTieBreaking(t *testing.T) {
	// All postings score identically; ordering must come from datePosted
	// desc, then id asc.
	postings := []domain.JobPosting{
		{ID: 30},
		{ID: 10, DatePosted: dt("2026-01-05")},
		{ID: 21, DatePosted: dt("2026-03-01")},
		{ID: 20, DatePosted: dt("2026-03-01")},
	}
	results, err := Match(domain.CandidateProfile{}, postings)
	if err != nil {
		t.Fatal(err)
	}
	wantOrder := []int64{20, 21, 10, 30}
	for i, want := range wantOrder {
		if results[i].JobID != want {
			t.Fatalf("position %d: got job %d, want %d (full order %+v)", i, results[i].JobID, want, results)
		}
	}
}

func TestMatchNeverDropsPostings(t *testing.T) {
	profile := domain.CandidateProfile{DesiredSkills: []string{"go"}}
	postings := []domain.JobPosting{
		{ID: 1}, // nothing scorable at all
		{ID: 2, Primary: domain.SalaryRange{Min: fp(-10), Rate: "bogus"}},
	}
	results, err := Match(profile, postings)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != len(postings) {
		t.Fatalf("got %d results, want %d", len(results), len(postings))
	}
	for _, r := range results {
		for _, s := range []float64{r.SkillsScore, r.TitleScore, r.JobTypeScore, r.SalaryScore, r.CompositeScore} {
			if s < 0 || s > 1 || math.IsNaN(s) {
				t.Fatalf("job %d: score out of range: %+v", r.JobID, r)
			}
		}
	}
}

func TestMatchWithRejectsBrokenWeights(t *testing.T) {
	_, err := MatchWith(Weights{Skills: 0.9, Title: 0.3, JobType: 0.2, Salary: 0.1},
		domain.CandidateProfile{}, nil)
	if err == nil {
		t.Fatal("expected error for weights not summing to 1")
	}
	_, err = MatchWith(Weights{Skills: -0.4, Title: 0.9, JobType: 0.4, Salary: 0.1},
		domain.CandidateProfile{}, nil)
	if err == nil {
		t.Fatal("expected error for negative weight")
	}
}

func TestDefaultWeightsValid(t *testing.T) {
	if err := DefaultWeights.Validate(); err != nil {
		t.Fatal(err)
	}
}

func TestMatchProfilePeriodAnnualization(t *testing.T) {
	// $40/hour desired = 83200/year, overlapping a 90k yearly posting.
	profile := domain.CandidateProfile{
		DesiredSalaryMin:    fp(40),
		DesiredSalaryPeriod: "hourly",
	}
	posting := domain.JobPosting{
		ID:      1,
		Primary: domain.SalaryRange{Min: fp(90000), Rate: "yearly"},
	}
	results, err := Match(profile, []domain.JobPosting{posting})
	if err != nil {
		t.Fatal(err)
	}
	if results[0].SalaryScore != 1 {
		t.Fatalf("salary score = %v, want 1", results[0].SalaryScore)
	}
}
