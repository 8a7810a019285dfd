package match

import (
	"fmt"
	"math"
	"sort"
	"time"

	"jobfinder-engine/internal/domain"
)

// Weights combine the four dimension scores into the composite. They are
// fixed constants rather than user configuration so scores stay comparable
// across searches.
type Weights struct {
	Skills  float64
	Title   float64
	JobType float64
	Salary  float64
}

// DefaultWeights is the reference weighting: skills dominate, salary is a
// nudge.
var DefaultWeights = Weights{Skills: 0.4, Title: 0.3, JobType: 0.2, Salary: 0.1}

const weightSumTolerance = 1e-9

// Validate guards the scoring contract. A weight table that fails here is
// a programmer error, not an input problem.
func (w Weights) Validate() error {
	if w.Skills < 0 || w.Title < 0 || w.JobType < 0 || w.Salary < 0 {
		return fmt.Errorf("match: negative weight in %+v", w)
	}
	sum := w.Skills + w.Title + w.JobType + w.Salary
	if math.Abs(sum-1) > weightSumTolerance {
		return fmt.Errorf("match: weights sum to %g, want 1", sum)
	}
	return nil
}

func (w Weights) composite(r domain.MatchResult) float64 {
	return w.Skills*r.SkillsScore +
		w.Title*r.TitleScore +
		w.JobType*r.JobTypeScore +
		w.Salary*r.SalaryScore
}

type ranked struct {
	res  domain.MatchResult
	date *time.Time
}

// sortRanked orders by composite score descending, then datePosted
// descending (missing date last), then id ascending. The comparator is a
// total order, so the final ranking is deterministic regardless of input
// order.
func sortRanked(rs []ranked) {
	sort.Slice(rs, func(i, j int) bool {
		a, b := rs[i], rs[j]
		if a.res.CompositeScore != b.res.CompositeScore {
			return a.res.CompositeScore > b.res.CompositeScore
		}
		switch {
		case a.date != nil && b.date != nil && !a.date.Equal(*b.date):
			return a.date.After(*b.date)
		case a.date != nil && b.date == nil:
			return true
		case a.date == nil && b.date != nil:
			return false
		}
		return a.res.JobID < b.res.JobID
	})
}
