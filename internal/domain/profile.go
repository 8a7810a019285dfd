package domain

// CandidateProfile is the declared (or resume-derived) search criteria for
// one candidate. All fields are optional; an empty field means "no
// constraint" for the dimension it feeds.
type CandidateProfile struct {
	DesiredSalaryMin    *float64
	DesiredSalaryMax    *float64
	DesiredSalaryPeriod string // hourly/weekly/monthly/yearly; empty = yearly
	Seniority           string // Junior/Mid-level/Senior/Lead/Manager
	DesiredJobTypes     []string
	DesiredJobTitles    []string
	DesiredSkills       []string
	EducationLevel      string // high school/BSc/MSc/PhD
}

// WantsSalary reports whether the candidate declared any salary bound.
func (p CandidateProfile) WantsSalary() bool {
	return p.DesiredSalaryMin != nil || p.DesiredSalaryMax != nil
}
