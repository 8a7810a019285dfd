package store

import "database/sql"

// Migrate brings the schema to the current version, tracked through
// PRAGMA user_version.
func Migrate(db *sql.DB) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	var v int
	if err := tx.QueryRow(`PRAGMA user_version;`).Scan(&v); err != nil {
		return err
	}
	if v >= 1 {
		return tx.Commit()
	}

	// ---- Schema v1 ----

	if _, err := tx.Exec(`
CREATE TABLE IF NOT EXISTS pages_raw (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  url TEXT NOT NULL UNIQUE,
  raw_html TEXT NOT NULL,
  fetched_at TEXT NOT NULL
);
`); err != nil {
		return err
	}

	if _, err := tx.Exec(`
CREATE TABLE IF NOT EXISTS postings (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  page_raw_id INTEGER NOT NULL UNIQUE REFERENCES pages_raw(id),
  title TEXT,
  employer TEXT,
  location TEXT,
  date_posted TEXT,
  primary_salary_min REAL,
  primary_salary_max REAL,
  primary_salary_rate TEXT,
  secondary_salary_min REAL,
  secondary_salary_max REAL,
  secondary_salary_rate TEXT,
  normalized_salary_min REAL,
  normalized_salary_max REAL,
  job_type TEXT,
  skills TEXT,
  description TEXT,
  seniority TEXT,
  education_level TEXT,
  parsed_at TEXT NOT NULL
);
`); err != nil {
		return err
	}

	if _, err := tx.Exec(`
CREATE TABLE IF NOT EXISTS searches (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  payload TEXT NOT NULL,
  created_at TEXT NOT NULL
);
`); err != nil {
		return err
	}

	if _, err := tx.Exec(`
CREATE INDEX IF NOT EXISTS idx_postings_date_posted
ON postings(date_posted);
`); err != nil {
		return err
	}

	if _, err := tx.Exec(`PRAGMA user_version = 1;`); err != nil {
		return err
	}

	return tx.Commit()
}
