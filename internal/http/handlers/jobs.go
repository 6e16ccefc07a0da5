package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"assetgen/internal/domain"
)

type jobResponse struct {
	ID        string           `json:"id"`
	Status    domain.JobStatus `json:"status"`
	Error     string           `json:"error,omitempty"`
	CreatedAt string           `json:"created_at"`
	UpdatedAt string           `json:"updated_at"`
}

// GetJob returns job metadata. The raw image payload is never exposed here.
func (a *App) GetJob(w http.ResponseWriter, r *http.Request) {
	jobID := chi.URLParam(r, "job_id")
	job, err := a.Jobs.GetByID(r.Context(), jobID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			a.error(w, http.StatusNotFound, "not_found", "Job not found")
			return
		}
		a.Logger.Error().Err(err).Str("job_id", jobID).Msg("jobs: failed to load job")
		a.error(w, http.StatusInternalServerError, "internal", err.Error())
		return
	}

	a.json(w, http.StatusOK, jobResponse{
		ID:        job.ID,
		Status:    job.Status,
		Error:     job.ErrorMessage,
		CreatedAt: job.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt: job.UpdatedAt.UTC().Format(time.RFC3339Nano),
	})
}
