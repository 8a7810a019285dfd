package domain

// MatchResult is the scored output for one posting: the weighted composite
// plus the per-dimension breakdown, all in [0,1]. Results are derived
// values; they hold no reference back to the posting or profile.
type MatchResult struct {
	JobID          int64
	CompositeScore float64
	SkillsScore    float64
	TitleScore     float64
	JobTypeScore   float64
	SalaryScore    float64
}
