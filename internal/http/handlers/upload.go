package handlers

import (
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"assetgen/internal/domain"
	"assetgen/internal/imagecodec"
)

// Upload accepts a multipart image, validates it with a full decode, and
// creates a pending job. A rejected payload never creates a job record.
func (a *App) Upload(w http.ResponseWriter, r *http.Request) {
	if a.MaxUploadBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, a.MaxUploadBytes)
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "file field is required")
		return
	}
	defer file.Close()

	if ct := header.Header.Get("Content-Type"); !strings.HasPrefix(ct, "image/") {
		a.error(w, http.StatusBadRequest, "bad_request", "File must be an image")
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "failed to read upload")
		return
	}
	if _, err := imagecodec.DecodeAndValidate(data); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", fmt.Sprintf("Invalid image file: %v", err))
		return
	}

	now := time.Now().UTC()
	job := &domain.Job{
		ID:        uuid.NewString(),
		ImageData: base64.StdEncoding.EncodeToString(data),
		Status:    domain.JobStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := a.Jobs.Create(r.Context(), job); err != nil {
		a.Logger.Error().Err(err).Msg("upload: failed to create job")
		a.error(w, http.StatusInternalServerError, "internal", err.Error())
		return
	}

	a.json(w, http.StatusOK, map[string]any{"job_id": job.ID, "status": job.Status})
}
