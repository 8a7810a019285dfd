package domain

import "time"

// SalaryRange is one advertised pay range as scraped or extracted.
// A nil bound is open, not zero. Rate is a pay period label
// (hourly/weekly/monthly/yearly/other); empty means yearly.
type SalaryRange struct {
	Min  *float64
	Max  *float64
	Rate string
}

// Present reports whether the range carries at least one bound.
func (r SalaryRange) Present() bool {
	return r.Min != nil || r.Max != nil
}

// JobPosting is one scraped listing. Descriptive fields are free text and
// may be empty. Primary salary comes from the posting's salary widget,
// Secondary from description extraction upstream; primary wins when both
// are present.
type JobPosting struct {
	ID             int64
	URL            string
	Title          string
	Employer       string
	Location       string
	JobType        string
	Seniority      string
	EducationLevel string
	Description    string
	Skills         string // comma-separated phrases
	Primary        SalaryRange
	Secondary      SalaryRange
	DatePosted     *time.Time // tie-breaking only
}
