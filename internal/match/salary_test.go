package match

import (
	"testing"

	"jobfinder-engine/internal/domain"
)

func fp(v float64) *float64 { return &v }

func TestAnnualize(t *testing.T) {
	cases := []struct {
		amount float64
		period string
		want   float64
		ok     bool
	}{
		{25, "hourly", 52000, true},
		{1000, "weekly", 52000, true},
		{5000, "monthly", 60000, true},
		{90000, "yearly", 90000, true},
		{90000, "", 90000, true}, // missing rate defaults to yearly
		{90000, "Yearly", 90000, true},
		{90000, "other", 0, false},
		{90000, "biweekly", 0, false},
		{0, "yearly", 0, false},
		{-5, "hourly", 0, false},
	}
	for _, c := range cases {
		got, ok := Annualize(c.amount, c.period)
		if ok != c.ok || got != c.want {
			t.Errorf("Annualize(%v, %q) = (%v, %v), want (%v, %v)",
				c.amount, c.period, got, ok, c.want, c.ok)
		}
	}
}

func TestNormalizeSalaryPrefersPrimary(t *testing.T) {
	p := domain.JobPosting{
		Primary:   domain.SalaryRange{Min: fp(40), Max: fp(60), Rate: "hourly"},
		Secondary: domain.SalaryRange{Min: fp(90000), Rate: "yearly"},
	}
	min, max := NormalizeSalary(p)
	if min == nil || *min != 40*2080 {
		t.Fatalf("min = %v, want %v", min, 40*2080)
	}
	if max == nil || *max != 60*2080 {
		t.Fatalf("max = %v, want %v", max, 60*2080)
	}
}

func TestNormalizeSalaryFallsBackToSecondary(t *testing.T) {
	p := domain.JobPosting{
		Secondary: domain.SalaryRange{Min: fp(7000), Rate: "monthly"},
	}
	min, max := NormalizeSalary(p)
	if min == nil || *min != 84000 {
		t.Fatalf("min = %v, want 84000", min)
	}
	if max != nil {
		t.Fatalf("max = %v, want open bound", *max)
	}
}

func TestNormalizeSalaryOpenBoundStaysOpen(t *testing.T) {
	p := domain.JobPosting{
		Primary: domain.SalaryRange{Max: fp(120000), Rate: "yearly"},
	}
	min, max := NormalizeSalary(p)
	if min != nil {
		t.Fatalf("min = %v, want open bound", *min)
	}
	if max == nil || *max != 120000 {
		t.Fatalf("max = %v, want 120000", max)
	}
}

func TestNormalizeSalaryUnknownRateIsUnusable(t *testing.T) {
	p := domain.JobPosting{
		Primary: domain.SalaryRange{Min: fp(500), Max: fp(900), Rate: "other"},
	}
	min, max := NormalizeSalary(p)
	if min != nil || max != nil {
		t.Fatalf("got (%v, %v), want no usable salary", min, max)
	}
}

func TestNormalizeSalaryAbsent(t *testing.T) {
	min, max := NormalizeSalary(domain.JobPosting{})
	if min != nil || max != nil {
		t.Fatalf("got (%v, %v), want nil bounds", min, max)
	}
}
