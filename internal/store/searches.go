package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"jobfinder-engine/internal/domain"
)

// SaveSearch records the profile a search ran with, newest last.
func SaveSearch(ctx context.Context, db *sql.DB, p domain.CandidateProfile, at time.Time) (int64, error) {
	b, err := json.Marshal(p)
	if err != nil {
		return 0, fmt.Errorf("encode search: %w", err)
	}
	res, err := db.ExecContext(ctx, `
INSERT INTO searches (payload, created_at) VALUES (?, ?);`,
		string(b), at.UTC().Format(time.RFC3339))
	if err != nil {
		return 0, fmt.Errorf("save search: %w", err)
	}
	id, _ := res.LastInsertId()
	return id, nil
}

// LastSearch returns the most recently saved profile, or false when none
// has been saved yet.
func LastSearch(ctx context.Context, db *sql.DB) (domain.CandidateProfile, bool, error) {
	var payload string
	err := db.QueryRowContext(ctx, `
SELECT payload FROM searches ORDER BY id DESC LIMIT 1;`).Scan(&payload)
	if err == sql.ErrNoRows {
		return domain.CandidateProfile{}, false, nil
	}
	if err != nil {
		return domain.CandidateProfile{}, false, err
	}

	var p domain.CandidateProfile
	if err := json.Unmarshal([]byte(payload), &p); err != nil {
		return domain.CandidateProfile{}, false, fmt.Errorf("decode search: %w", err)
	}
	return p, true, nil
}
