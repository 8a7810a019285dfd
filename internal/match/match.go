// Package match scores and ranks job postings against a candidate profile.
// It is a pure computation: no I/O, no shared mutable state, one ordered
// result per input posting.
package match

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"jobfinder-engine/internal/domain"
)

// profileView holds the canonicalized/annualized profile fields, computed
// once per run instead of once per posting.
type profileView struct {
	skills    []string
	titles    []string
	jobTypes  []string
	salaryMin *float64
	salaryMax *float64
	hasSalary bool
}

func newProfileView(p domain.CandidateProfile) profileView {
	v := profileView{
		skills:    CanonPhrases(p.DesiredSkills),
		titles:    CanonPhrases(p.DesiredJobTitles),
		jobTypes:  CanonPhrases(p.DesiredJobTypes),
		hasSalary: p.WantsSalary(),
	}
	v.salaryMin = annualizeBound(p.DesiredSalaryMin, p.DesiredSalaryPeriod)
	v.salaryMax = annualizeBound(p.DesiredSalaryMax, p.DesiredSalaryPeriod)
	return v
}

func (v profileView) score(p domain.JobPosting) domain.MatchResult {
	r := domain.MatchResult{
		JobID:        p.ID,
		SkillsScore:  SkillsScore(v.skills, p.Skills),
		TitleScore:   TitleScore(v.titles, p.Title),
		JobTypeScore: JobTypeScore(v.jobTypes, p.JobType),
	}
	if !v.hasSalary {
		r.SalaryScore = 1
	} else {
		nmin, nmax := NormalizeSalary(p)
		r.SalaryScore = SalaryScore(v.salaryMin, v.salaryMax, nmin, nmax)
	}
	return r
}

// Match scores every posting against the profile with DefaultWeights and
// returns the ranked results.
func Match(profile domain.CandidateProfile, postings []domain.JobPosting) ([]domain.MatchResult, error) {
	return MatchWith(DefaultWeights, profile, postings)
}

// MatchWith is Match with an explicit weight table. Postings are scored
// independently across a worker pool; ordering between posting computations
// does not matter because the final sort is a total order.
func MatchWith(w Weights, profile domain.CandidateProfile, postings []domain.JobPosting) ([]domain.MatchResult, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}

	view := newProfileView(profile)
	rs := make([]ranked, len(postings))

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := range postings {
		i := i
		g.Go(func() error {
			rs[i] = buildResult(w, view, postings[i])
			return nil
		})
	}
	_ = g.Wait() // workers never return errors

	sortRanked(rs)

	out := make([]domain.MatchResult, len(rs))
	for i, r := range rs {
		out[i] = r.res
	}
	return out, nil
}

// buildResult assembles the per-posting record: dimension scores plus the
// weighted composite. Pure assembly, no recomputation beyond the weighting.
func buildResult(w Weights, view profileView, p domain.JobPosting) ranked {
	res := view.score(p)
	res.CompositeScore = w.composite(res)
	return ranked{res: res, date: p.DatePosted}
}
