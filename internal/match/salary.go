package match

import (
	"strings"

	"jobfinder-engine/internal/domain"
)

// Pay period multipliers to a yearly basis.
const (
	hoursPerYear  = 2080 // 40 h/week * 52 weeks
	weeksPerYear  = 52
	monthsPerYear = 12
)

func periodMultiplier(period string) (float64, bool) {
	switch strings.ToLower(strings.TrimSpace(period)) {
	case "", "yearly", "annual":
		return 1, true
	case "hourly":
		return hoursPerYear, true
	case "weekly":
		return weeksPerYear, true
	case "monthly":
		return monthsPerYear, true
	default:
		// "other" and anything unrecognized is non-normalizable
		return 0, false
	}
}

// Annualize converts an amount in the given pay period to a yearly figure.
// ok is false when the amount is absent (non-positive) or the period cannot
// be converted. An empty period means yearly.
func Annualize(amount float64, period string) (float64, bool) {
	if amount <= 0 {
		return 0, false
	}
	mult, ok := periodMultiplier(period)
	if !ok {
		return 0, false
	}
	return amount * mult, true
}

func annualizeBound(bound *float64, period string) *float64 {
	if bound == nil {
		return nil
	}
	v, ok := Annualize(*bound, period)
	if !ok {
		return nil
	}
	return &v
}

func annualizeRange(r domain.SalaryRange) (min, max *float64) {
	if _, ok := periodMultiplier(r.Rate); !ok {
		return nil, nil
	}
	return annualizeBound(r.Min, r.Rate), annualizeBound(r.Max, r.Rate)
}

// NormalizeSalary returns the posting's annualized bounds, preferring the
// primary range over the secondary. A nil return on one side is an open
// bound; nil on both sides means the posting has no usable salary.
func NormalizeSalary(p domain.JobPosting) (min, max *float64) {
	if p.Primary.Present() {
		return annualizeRange(p.Primary)
	}
	return annualizeRange(p.Secondary)
}
