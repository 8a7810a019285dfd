package match

import (
	"strings"
)

// Each scorer returns a value in [0,1]. The convention for missing data:
// an empty profile field means "no constraint" and scores 1; a posting
// field that is absent while the profile declares a preference scores 0.

// SkillsScore is the fraction of desired skills present in the posting.
// A posting skill matches a desired skill when either contains the other,
// case-insensitively, so "react" still hits "react.js".
func SkillsScore(desired []string, postingSkills string) float64 {
	if len(desired) == 0 {
		return 1
	}
	have := SkillTokens(postingSkills)
	if len(have) == 0 {
		return 0
	}
	hit := 0
	for _, want := range desired {
		for _, got := range have {
			if strings.Contains(got, want) || strings.Contains(want, got) {
				hit++
				break
			}
		}
	}
	return float64(hit) / float64(len(desired))
}

// TitleScore is the best Jaccard word-set overlap between the posting
// title and any desired title phrase.
func TitleScore(desiredTitles []string, postingTitle string) float64 {
	if len(desiredTitles) == 0 {
		return 1
	}
	words := TitleWords(postingTitle)
	if len(words) == 0 {
		return 0
	}
	best := 0.0
	for _, phrase := range desiredTitles {
		if j := jaccard(TitleWords(phrase), words); j > best {
			best = j
		}
	}
	return best
}

func jaccard(a, b []string) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	set := make(map[string]bool, len(a))
	for _, w := range a {
		set[w] = true
	}
	inter := 0
	for _, w := range b {
		if set[w] {
			inter++
		}
	}
	union := len(a) + len(b) - inter
	if union == 0 {
		return 0
	}
	return float64(inter) / float64(union)
}

// JobTypeScore is 1 when any desired type matches the posting's type by
// case-insensitive substring in either direction ("Full-time" vs
// "full time contract" style phrasing), 0 otherwise.
func JobTypeScore(desiredTypes []string, postingType string) float64 {
	if len(desiredTypes) == 0 {
		return 1
	}
	got := strings.ToLower(strings.TrimSpace(postingType))
	if got == "" {
		return 0
	}
	for _, want := range desiredTypes {
		if strings.Contains(got, want) || strings.Contains(want, got) {
			return 1
		}
	}
	return 0
}

// SalaryScore compares the candidate's annualized desired range against the
// posting's annualized range. Overlapping ranges score 1; disjoint ranges
// decay linearly with the gap between the nearer bounds, reaching 0 once
// the gap is half the desired range's midpoint. A near-miss salary keeps
// partial credit instead of being discarded.
func SalaryScore(desiredMin, desiredMax, postingMin, postingMax *float64) float64 {
	if desiredMin == nil && desiredMax == nil {
		return 1
	}
	if postingMin == nil && postingMax == nil {
		return 0
	}

	// An inverted desired range is tolerated as unbounded, which overlaps
	// any posting range.
	if desiredMin != nil && desiredMax != nil && *desiredMin > *desiredMax {
		return 1
	}

	var gap float64
	switch {
	case desiredMin != nil && postingMax != nil && *postingMax < *desiredMin:
		gap = *desiredMin - *postingMax
	case desiredMax != nil && postingMin != nil && *postingMin > *desiredMax:
		gap = *postingMin - *desiredMax
	default:
		return 1 // ranges overlap
	}

	limit := 0.5 * desiredMidpoint(desiredMin, desiredMax)
	if limit <= 0 {
		return 0
	}
	score := 1 - gap/limit
	if score < 0 {
		return 0
	}
	return score
}

// desiredMidpoint falls back to the single present bound for one-sided
// ranges.
func desiredMidpoint(min, max *float64) float64 {
	switch {
	case min != nil && max != nil:
		return (*min + *max) / 2
	case min != nil:
		return *min
	case max != nil:
		return *max
	default:
		return 0
	}
}
