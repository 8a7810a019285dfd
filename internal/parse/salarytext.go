package parse

import (
	"regexp"
	"strconv"
	"strings"

	"jobfinder-engine/internal/domain"
)

// Advertised salary text comes in shapes like "$80,000 - $120,000 USD",
// "$40 per hour", "70k to 90k" or just "$120k". Amounts may carry a k
// suffix; the period is inferred from rate words and defaults to yearly.

var (
	salaryRangeRe  = regexp.MustCompile(`\$?\s*([0-9][0-9,]*(?:\.[0-9]+)?)\s*([kK]?)\s*(?:to|-|–|—)\s*\$?\s*([0-9][0-9,]*(?:\.[0-9]+)?)\s*([kK]?)`)
	salarySingleRe = regexp.MustCompile(`\$?\s*([0-9][0-9,]*(?:\.[0-9]+)?)\s*([kK]?)`)
)

var ratePatterns = []struct {
	rate string
	re   *regexp.Regexp
}{
	{"hourly", regexp.MustCompile(`(?i)(?:per|/)\s*hour|hourly|\bhour\b`)},
	{"weekly", regexp.MustCompile(`(?i)(?:per|/)\s*week|weekly|\bweek\b`)},
	{"monthly", regexp.MustCompile(`(?i)(?:per|/)\s*month|monthly|\bmonth\b`)},
	{"yearly", regexp.MustCompile(`(?i)(?:per|/)\s*year|yearly|annual|\byear\b`)},
}

func toAmount(num, kSuffix string) *float64 {
	v, err := strconv.ParseFloat(strings.ReplaceAll(num, ",", ""), 64)
	if err != nil {
		return nil
	}
	if strings.EqualFold(kSuffix, "k") {
		v *= 1000
	}
	return &v
}

// SalaryText extracts a salary range from free text. An empty result
// (no bounds) means nothing parseable was found.
func SalaryText(s string) domain.SalaryRange {
	var r domain.SalaryRange
	s = strings.TrimSpace(s)
	if s == "" {
		return r
	}

	if m := salaryRangeRe.FindStringSubmatch(s); m != nil {
		r.Min = toAmount(m[1], m[2])
		r.Max = toAmount(m[3], m[4])
	} else if m := salarySingleRe.FindStringSubmatch(s); m != nil {
		r.Min = toAmount(m[1], m[2])
	}
	if !r.Present() {
		return r
	}

	r.Rate = "yearly"
	for _, p := range ratePatterns {
		if p.re.MatchString(s) {
			r.Rate = p.rate
			break
		}
	}
	return r
}
