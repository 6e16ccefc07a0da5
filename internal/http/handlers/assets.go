package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"assetgen/internal/domain"
)

// maxAssetsPerJob caps how many assets one listing returns.
const maxAssetsPerJob = 1000

type assetResponse struct {
	ID            string            `json:"id"`
	JobID         string            `json:"job_id"`
	OutputType    domain.OutputType `json:"output_type"`
	Language      string            `json:"language"`
	Width         int               `json:"width"`
	Height        int               `json:"height"`
	Format        domain.Format     `json:"format"`
	Data          string            `json:"data"`
	AltText       string            `json:"alt_text,omitempty"`
	ContrastScore *float64          `json:"contrast_score,omitempty"`
	CreatedAt     string            `json:"created_at"`
}

// ListAssets returns all assets generated for a job. An unknown job simply
// yields an empty list.
func (a *App) ListAssets(w http.ResponseWriter, r *http.Request) {
	jobID := chi.URLParam(r, "job_id")
	assets, err := a.Assets.ListByJobID(r.Context(), jobID, maxAssetsPerJob)
	if err != nil {
		a.Logger.Error().Err(err).Str("job_id", jobID).Msg("assets: failed to list assets")
		a.error(w, http.StatusInternalServerError, "internal", err.Error())
		return
	}

	items := make([]assetResponse, 0, len(assets))
	for _, asset := range assets {
		items = append(items, assetResponse{
			ID:            asset.ID,
			JobID:         asset.JobID,
			OutputType:    asset.OutputType,
			Language:      asset.Language,
			Width:         asset.Width,
			Height:        asset.Height,
			Format:        asset.Format,
			Data:          asset.Data,
			AltText:       asset.AltText,
			ContrastScore: asset.ContrastScore,
			CreatedAt:     asset.CreatedAt.UTC().Format(time.RFC3339Nano),
		})
	}
	a.json(w, http.StatusOK, map[string]any{"assets": items})
}
