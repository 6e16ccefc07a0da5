package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"assetgen/internal/domain"
)

type outputConfigRequest struct {
	Type          string   `json:"type"`
	Language      string   `json:"language"`
	Width         int      `json:"width"`
	Height        int      `json:"height"`
	Formats       []string `json:"formats"`
	GeneratePrint bool     `json:"generate_print"`
}

// settingsRequest uses pointers so omitted toggles pick up their defaults
// (alt text and contrast checking on, brand guidelines off).
type settingsRequest struct {
	AutoAltText     *bool `json:"auto_alt_text"`
	ContrastCheck   *bool `json:"contrast_check"`
	BrandGuidelines *bool `json:"brand_guidelines"`
}

type generateRequest struct {
	JobID    string                `json:"job_id"`
	Outputs  []outputConfigRequest `json:"outputs"`
	Settings *settingsRequest      `json:"settings"`
}

// Generate marks the job processing and dispatches the asset pipeline as a
// fire-and-forget background task.
func (a *App) Generate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if req.JobID == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "job_id required")
		return
	}

	job, err := a.Jobs.GetByID(r.Context(), req.JobID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			a.error(w, http.StatusNotFound, "not_found", "Job not found")
			return
		}
		a.Logger.Error().Err(err).Str("job_id", req.JobID).Msg("generate: failed to load job")
		a.error(w, http.StatusInternalServerError, "internal", err.Error())
		return
	}

	if err := job.Status.Transition(domain.JobStatusProcessing); err != nil {
		a.error(w, http.StatusConflict, "conflict", err.Error())
		return
	}

	outputs := toOutputConfigs(req.Outputs)
	settings := toSettings(req.Settings)

	if err := a.Jobs.UpdateStatus(r.Context(), job.ID, domain.JobStatusProcessing, ""); err != nil {
		a.Logger.Error().Err(err).Str("job_id", job.ID).Msg("generate: failed to mark job processing")
		a.error(w, http.StatusInternalServerError, "internal", err.Error())
		return
	}

	imageData := job.ImageData
	a.Runner.Dispatch(job.ID, func(ctx context.Context) {
		a.Pipeline.Run(ctx, job.ID, imageData, outputs, settings)
	})

	a.json(w, http.StatusAccepted, map[string]any{"message": "Generation started", "job_id": job.ID})
}

func toOutputConfigs(reqs []outputConfigRequest) []domain.OutputConfig {
	outputs := make([]domain.OutputConfig, 0, len(reqs))
	for _, rc := range reqs {
		formats := make([]domain.Format, 0, len(rc.Formats))
		for _, f := range rc.Formats {
			formats = append(formats, domain.Format(strings.ToLower(strings.TrimSpace(f))))
		}
		outputs = append(outputs, domain.OutputConfig{
			Type:          domain.OutputType(rc.Type),
			Language:      rc.Language,
			Width:         rc.Width,
			Height:        rc.Height,
			Formats:       formats,
			GeneratePrint: rc.GeneratePrint,
		})
	}
	return outputs
}

func toSettings(req *settingsRequest) domain.GlobalSettings {
	settings := domain.DefaultGlobalSettings()
	if req == nil {
		return settings
	}
	if req.AutoAltText != nil {
		settings.AutoAltText = *req.AutoAltText
	}
	if req.ContrastCheck != nil {
		settings.ContrastCheck = *req.ContrastCheck
	}
	if req.BrandGuidelines != nil {
		settings.BrandGuidelines = *req.BrandGuidelines
	}
	return settings
}
