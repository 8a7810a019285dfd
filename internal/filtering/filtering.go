// Package filtering narrows the posting set before scoring. It belongs to
// the serving layer, not the engine: the engine scores whatever it is
// given and never drops a posting.
package filtering

import (
	"strings"

	"jobfinder-engine/internal/domain"
)

// Requirement hierarchies. A posting whose requirement ranks above the
// candidate's level is not eligible; unknown labels rank 0 and never
// exclude.
var seniorityRank = map[string]int{
	"junior":    1,
	"mid-level": 2,
	"senior":    3,
	"lead":      4,
	"manager":   5,
}

var educationRank = map[string]int{
	"high school": 1,
	"bsc":         2,
	"msc":         3,
	"phd":         4,
}

func rankOf(table map[string]int, label string) int {
	return table[strings.ToLower(strings.TrimSpace(label))]
}

// Eligible reports whether a posting's stated requirements fit the
// candidate. Both sides must declare a level for it to exclude anything.
func Eligible(p domain.CandidateProfile, post domain.JobPosting) bool {
	if p.Seniority != "" && post.Seniority != "" {
		if rankOf(seniorityRank, post.Seniority) > rankOf(seniorityRank, p.Seniority) {
			return false
		}
	}
	if p.EducationLevel != "" && post.EducationLevel != "" {
		if rankOf(educationRank, post.EducationLevel) > rankOf(educationRank, p.EducationLevel) {
			return false
		}
	}
	return true
}

// Step describes one filtering pass, for logging and API responses.
type Step struct {
	Initial int `json:"initial"`
	Dropped int `json:"dropped"`
	Left    int `json:"left"`
}

// Apply returns the eligible subset in input order.
func Apply(p domain.CandidateProfile, postings []domain.JobPosting) ([]domain.JobPosting, Step) {
	kept := make([]domain.JobPosting, 0, len(postings))
	for _, post := range postings {
		if Eligible(p, post) {
			kept = append(kept, post)
		}
	}
	return kept, Step{Initial: len(postings), Dropped: len(postings) - len(kept), Left: len(kept)}
}
