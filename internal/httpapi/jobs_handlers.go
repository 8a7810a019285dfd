package httpapi

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"jobfinder-engine/internal/domain"
	"jobfinder-engine/internal/events"
	"jobfinder-engine/internal/filtering"
	"jobfinder-engine/internal/match"
	"jobfinder-engine/internal/store"
)

type JobsHandler struct {
	DB  *sql.DB
	Hub *events.Hub
	Log *zap.Logger
}

// List returns every stored posting, unscored.
func (h JobsHandler) List(w http.ResponseWriter, r *http.Request) {
	postings, err := store.ListPostings(r.Context(), h.DB)
	if err != nil {
		WriteError(w, r, 500, "db_error", err.Error())
		return
	}
	out := make([]postingDTO, 0, len(postings))
	for _, p := range postings {
		out = append(out, toPostingDTO(p))
	}
	writeJSON(w, out)
}

// GetByPath returns one posting with its full description. Expects /jobs/{id}.
func (h JobsHandler) GetByPath(w http.ResponseWriter, r *http.Request) {
	idStr := strings.TrimPrefix(r.URL.Path, "/jobs/")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		WriteError(w, r, 400, "bad_id", "invalid id")
		return
	}

	p, err := store.GetPosting(r.Context(), h.DB, id)
	if err == sql.ErrNoRows {
		WriteError(w, r, 404, "not_found", "no such posting")
		return
	}
	if err != nil {
		WriteError(w, r, 500, "db_error", err.Error())
		return
	}

	dto := toPostingDTO(p)
	writeJSON(w, struct {
		postingDTO
		Description string `json:"description"`
	}{dto, p.Description})
}

// Search scores every stored posting against the submitted profile and
// returns them ranked. The profile is also persisted so the last search can
// be replayed.
func (h JobsHandler) Search(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, r, 400, "bad_json", "invalid JSON: "+err.Error())
		return
	}

	profile := req.profile()

	searchID, err := store.SaveSearch(r.Context(), h.DB, profile, time.Now())
	if err != nil {
		WriteError(w, r, 500, "db_error", err.Error())
		return
	}
	reqID := RequestIDFrom(r.Context())
	h.Hub.Publish(events.MakeEvent(reqID, events.TypeSearchSaved, 1, map[string]any{"id": searchID}))

	postings, err := store.ListPostings(r.Context(), h.DB)
	if err != nil {
		WriteError(w, r, 500, "db_error", err.Error())
		return
	}

	var step *filtering.Step
	if !req.SkipEligibilityFilter {
		var s filtering.Step
		postings, s = filtering.Apply(profile, postings)
		step = &s
	}

	results, err := match.Match(profile, postings)
	if err != nil {
		WriteError(w, r, 500, "match_error", err.Error())
		return
	}

	byID := make(map[int64]domain.JobPosting, len(postings))
	for _, p := range postings {
		byID[p.ID] = p
	}

	resp := searchResponse{
		Results:   make([]searchResultDTO, 0, len(results)),
		Total:     len(results),
		Filtering: step,
		SearchID:  searchID,
	}
	for _, res := range results {
		if req.Limit > 0 && len(resp.Results) >= req.Limit {
			break
		}
		resp.Results = append(resp.Results, searchResultDTO{
			Posting:        toPostingDTO(byID[res.JobID]),
			CompositeScore: res.CompositeScore,
			SkillsScore:    res.SkillsScore,
			TitleScore:     res.TitleScore,
			JobTypeScore:   res.JobTypeScore,
			SalaryScore:    res.SalaryScore,
		})
	}

	h.Log.Info("search served",
		zap.String("request_id", reqID),
		zap.Int64("search_id", searchID),
		zap.Int("scored", len(results)),
	)
	writeJSON(w, resp)
}

// LastSearch returns the profile of the most recent search, for UI prefill.
func (h JobsHandler) LastSearch(w http.ResponseWriter, r *http.Request) {
	p, ok, err := store.LastSearch(r.Context(), h.DB)
	if err != nil {
		WriteError(w, r, 500, "db_error", err.Error())
		return
	}
	if !ok {
		WriteError(w, r, 404, "not_found", "no search saved yet")
		return
	}
	writeJSON(w, searchRequest{
		DesiredSalaryMin:    p.DesiredSalaryMin,
		DesiredSalaryMax:    p.DesiredSalaryMax,
		DesiredSalaryPeriod: p.DesiredSalaryPeriod,
		Seniority:           p.Seniority,
		DesiredJobTypes:     p.DesiredJobTypes,
		DesiredJobTitles:    p.DesiredJobTitles,
		DesiredSkills:       p.DesiredSkills,
		EducationLevel:      p.EducationLevel,
	})
}
