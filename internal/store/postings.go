package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"jobfinder-engine/internal/domain"
)

const dateLayout = "2006-01-02"

// UpsertPosting stores the parsed posting for a raw page, replacing any
// earlier parse of the same page. The normalized annual bounds are computed
// at ingest so search never re-derives them. Returns the posting id.
func UpsertPosting(ctx context.Context, db *sql.DB, pageRawID int64, p domain.JobPosting, normMin, normMax *float64, parsedAt time.Time) (int64, error) {
	var date sql.NullString
	if p.DatePosted != nil {
		date = sql.NullString{String: p.DatePosted.UTC().Format(dateLayout), Valid: true}
	}

	_, err := db.ExecContext(ctx, `
INSERT INTO postings (
  page_raw_id, title, employer, location, date_posted,
  primary_salary_min, primary_salary_max, primary_salary_rate,
  secondary_salary_min, secondary_salary_max, secondary_salary_rate,
  normalized_salary_min, normalized_salary_max,
  job_type, skills, description, seniority, education_level, parsed_at
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(page_raw_id) DO UPDATE SET
  title = excluded.title,
  employer = excluded.employer,
  location = excluded.location,
  date_posted = excluded.date_posted,
  primary_salary_min = excluded.primary_salary_min,
  primary_salary_max = excluded.primary_salary_max,
  primary_salary_rate = excluded.primary_salary_rate,
  secondary_salary_min = excluded.secondary_salary_min,
  secondary_salary_max = excluded.secondary_salary_max,
  secondary_salary_rate = excluded.secondary_salary_rate,
  normalized_salary_min = excluded.normalized_salary_min,
  normalized_salary_max = excluded.normalized_salary_max,
  job_type = excluded.job_type,
  skills = excluded.skills,
  description = excluded.description,
  seniority = excluded.seniority,
  education_level = excluded.education_level,
  parsed_at = excluded.parsed_at;`,
		pageRawID, p.Title, p.Employer, p.Location, date,
		nullFloat(p.Primary.Min), nullFloat(p.Primary.Max), p.Primary.Rate,
		nullFloat(p.Secondary.Min), nullFloat(p.Secondary.Max), p.Secondary.Rate,
		nullFloat(normMin), nullFloat(normMax),
		p.JobType, p.Skills, p.Description, p.Seniority, p.EducationLevel,
		parsedAt.UTC().Format(time.RFC3339))
	if err != nil {
		return 0, fmt.Errorf("upsert posting: %w", err)
	}

	// LastInsertId is stale on the update path, so read the id back.
	var id int64
	err = db.QueryRowContext(ctx, `SELECT id FROM postings WHERE page_raw_id = ?;`, pageRawID).Scan(&id)
	return id, err
}

const postingCols = `
  p.id, r.url, p.title, p.employer, p.location, p.date_posted,
  p.primary_salary_min, p.primary_salary_max, p.primary_salary_rate,
  p.secondary_salary_min, p.secondary_salary_max, p.secondary_salary_rate,
  p.job_type, p.skills, p.description, p.seniority, p.education_level`

// ListPostings returns every stored posting, oldest first.
func ListPostings(ctx context.Context, db *sql.DB) ([]domain.JobPosting, error) {
	rows, err := db.QueryContext(ctx, `
SELECT `+postingCols+`
FROM postings p JOIN pages_raw r ON r.id = p.page_raw_id
ORDER BY p.id;`)
	if err != nil {
		return nil, fmt.Errorf("list postings: %w", err)
	}
	defer rows.Close()

	var out []domain.JobPosting
	for rows.Next() {
		p, err := scanPosting(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// GetPosting returns one posting by id; sql.ErrNoRows when absent.
func GetPosting(ctx context.Context, db *sql.DB, id int64) (domain.JobPosting, error) {
	row := db.QueryRowContext(ctx, `
SELECT `+postingCols+`
FROM postings p JOIN pages_raw r ON r.id = p.page_raw_id
WHERE p.id = ?;`, id)
	return scanPosting(row)
}

// CountPostings reports how many postings are stored.
func CountPostings(ctx context.Context, db *sql.DB) (int, error) {
	var n int
	err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM postings;`).Scan(&n)
	return n, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPosting(row rowScanner) (domain.JobPosting, error) {
	var (
		p    domain.JobPosting
		date sql.NullString

		title, employer, location, jobType        sql.NullString
		skills, description, seniority, education sql.NullString
		priRate, secRate                          sql.NullString
		priMin, priMax, secMin, secMax            sql.NullFloat64
	)

	err := row.Scan(
		&p.ID, &p.URL, &title, &employer, &location, &date,
		&priMin, &priMax, &priRate,
		&secMin, &secMax, &secRate,
		&jobType, &skills, &description, &seniority, &education,
	)
	if err != nil {
		return domain.JobPosting{}, err
	}

	p.Title = title.String
	p.Employer = employer.String
	p.Location = location.String
	p.JobType = jobType.String
	p.Skills = skills.String
	p.Description = description.String
	p.Seniority = seniority.String
	p.EducationLevel = education.String
	p.Primary = domain.SalaryRange{Min: floatPtr(priMin), Max: floatPtr(priMax), Rate: priRate.String}
	p.Secondary = domain.SalaryRange{Min: floatPtr(secMin), Max: floatPtr(secMax), Rate: secRate.String}

	if date.Valid && date.String != "" {
		if t, perr := time.Parse(dateLayout, date.String); perr == nil {
			p.DatePosted = &t
		}
	}
	return p, nil
}

func nullFloat(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}

func floatPtr(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}
