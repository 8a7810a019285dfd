package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// SaveRawPage stores one fetched posting page, replacing the HTML when the
// URL was seen before. Returns the page id and whether the URL is new.
func SaveRawPage(ctx context.Context, db *sql.DB, url, rawHTML string, fetchedAt time.Time) (id int64, created bool, err error) {
	var existing int64
	err = db.QueryRowContext(ctx, `SELECT id FROM pages_raw WHERE url = ?;`, url).Scan(&existing)
	switch {
	case err == sql.ErrNoRows:
		res, ierr := db.ExecContext(ctx, `
INSERT INTO pages_raw (url, raw_html, fetched_at)
VALUES (?, ?, ?);`,
			url, rawHTML, fetchedAt.UTC().Format(time.RFC3339))
		if ierr != nil {
			return 0, false, fmt.Errorf("insert raw page: %w", ierr)
		}
		id, _ = res.LastInsertId()
		return id, true, nil
	case err != nil:
		return 0, false, fmt.Errorf("lookup raw page: %w", err)
	}

	_, err = db.ExecContext(ctx, `
UPDATE pages_raw SET raw_html = ?, fetched_at = ? WHERE id = ?;`,
		rawHTML, fetchedAt.UTC().Format(time.RFC3339), existing)
	if err != nil {
		return 0, false, fmt.Errorf("refresh raw page: %w", err)
	}
	return existing, false, nil
}

// RawPage returns the stored HTML for a page id.
func RawPage(ctx context.Context, db *sql.DB, id int64) (url, rawHTML string, err error) {
	err = db.QueryRowContext(ctx, `SELECT url, raw_html FROM pages_raw WHERE id = ?;`, id).
		Scan(&url, &rawHTML)
	return url, rawHTML, err
}
