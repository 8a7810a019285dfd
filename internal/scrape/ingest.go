package scrape

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"jobfinder-engine/internal/match"
	"jobfinder-engine/internal/parse"
	"jobfinder-engine/internal/store"
)

// IngestPage stores one fetched job page and its parsed posting. The
// normalized annual salary bounds are derived here so they are computed
// exactly once per parse. Returns the posting id and whether the page URL
// was new.
func IngestPage(ctx context.Context, db *sql.DB, url, rawHTML, location string, now time.Time) (postingID int64, created bool, err error) {
	pageID, created, err := store.SaveRawPage(ctx, db, url, rawHTML, now)
	if err != nil {
		return 0, false, err
	}

	posting, err := parse.Posting(rawHTML, location, now)
	if err != nil {
		return 0, created, fmt.Errorf("parse %s: %w", url, err)
	}

	normMin, normMax := match.NormalizeSalary(posting)

	postingID, err = store.UpsertPosting(ctx, db, pageID, posting, normMin, normMax, now)
	if err != nil {
		return 0, created, err
	}
	return postingID, created, nil
}
