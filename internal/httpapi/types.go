package httpapi

import (
	"jobfinder-engine/internal/domain"
	"jobfinder-engine/internal/filtering"
)

// searchRequest is the wire form of a candidate profile plus search options.
type searchRequest struct {
	DesiredSalaryMin    *float64 `json:"desired_salary_min"`
	DesiredSalaryMax    *float64 `json:"desired_salary_max"`
	DesiredSalaryPeriod string   `json:"desired_salary_period"`
	Seniority           string   `json:"seniority"`
	DesiredJobTypes     []string `json:"desired_job_types"`
	DesiredJobTitles    []string `json:"desired_job_titles"`
	DesiredSkills       []string `json:"desired_skills"`
	EducationLevel      string   `json:"education_level"`

	// SkipEligibilityFilter disables the seniority/education pre-filter so
	// every stored posting gets scored.
	SkipEligibilityFilter bool `json:"skip_eligibility_filter"`
	Limit                 int  `json:"limit"` // 0 = all
}

func (r searchRequest) profile() domain.CandidateProfile {
	return domain.CandidateProfile{
		DesiredSalaryMin:    r.DesiredSalaryMin,
		DesiredSalaryMax:    r.DesiredSalaryMax,
		DesiredSalaryPeriod: r.DesiredSalaryPeriod,
		Seniority:           r.Seniority,
		DesiredJobTypes:     r.DesiredJobTypes,
		DesiredJobTitles:    r.DesiredJobTitles,
		DesiredSkills:       r.DesiredSkills,
		EducationLevel:      r.EducationLevel,
	}
}

type postingDTO struct {
	ID             int64    `json:"id"`
	URL            string   `json:"url"`
	Title          string   `json:"title"`
	Employer       string   `json:"employer"`
	Location       string   `json:"location"`
	JobType        string   `json:"job_type"`
	Seniority      string   `json:"seniority,omitempty"`
	EducationLevel string   `json:"education_level,omitempty"`
	Skills         string   `json:"skills"`
	SalaryMin      *float64 `json:"salary_min"`
	SalaryMax      *float64 `json:"salary_max"`
	SalaryRate     string   `json:"salary_rate,omitempty"`
	DatePosted     string   `json:"date_posted,omitempty"`
}

func toPostingDTO(p domain.JobPosting) postingDTO {
	dto := postingDTO{
		ID:             p.ID,
		URL:            p.URL,
		Title:          p.Title,
		Employer:       p.Employer,
		Location:       p.Location,
		JobType:        p.JobType,
		Seniority:      p.Seniority,
		EducationLevel: p.EducationLevel,
		Skills:         p.Skills,
		SalaryMin:      p.Primary.Min,
		SalaryMax:      p.Primary.Max,
		SalaryRate:     p.Primary.Rate,
	}
	if !p.Primary.Present() && p.Secondary.Present() {
		dto.SalaryMin = p.Secondary.Min
		dto.SalaryMax = p.Secondary.Max
		dto.SalaryRate = p.Secondary.Rate
	}
	if p.DatePosted != nil {
		dto.DatePosted = p.DatePosted.Format("2006-01-02")
	}
	return dto
}

type searchResultDTO struct {
	Posting        postingDTO `json:"posting"`
	CompositeScore float64    `json:"composite_score"`
	SkillsScore    float64    `json:"skills_score"`
	TitleScore     float64    `json:"title_score"`
	JobTypeScore   float64    `json:"job_type_score"`
	SalaryScore    float64    `json:"salary_score"`
}

type searchResponse struct {
	Results   []searchResultDTO `json:"results"`
	Total     int               `json:"total"`
	Filtering *filtering.Step   `json:"filtering,omitempty"`
	SearchID  int64             `json:"search_id"`
}
