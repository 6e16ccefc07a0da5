package handlers

import (
	"encoding/base64"
	"encoding/json"
	"net/http"

	"assetgen/internal/contrast"
	"assetgen/internal/prompt"
)

type analyzeRequest struct {
	ImageData string `json:"image_data"`
}

// Analyze generates alt text for an image synchronously, without a job.
// Generation failure degrades to the fixed fallback string.
func (a *App) Analyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	raw, err := base64.StdEncoding.DecodeString(req.ImageData)
	if err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "image_data must be base64")
		return
	}

	text, err := a.Gen.AltText(r.Context(), raw, http.DetectContentType(raw), prompt.AltTextInstruction)
	if err != nil {
		a.Logger.Warn().Err(err).Msg("analyze: alt text generation failed, using fallback")
		text = prompt.FallbackAltText
	}
	a.json(w, http.StatusOK, map[string]string{"alt_text": text})
}

// ContrastCheck scores an image's luminance contrast. Undecodable payloads
// score 0 and classify as fail; the check never errors.
func (a *App) ContrastCheck(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}

	var score float64
	if raw, err := base64.StdEncoding.DecodeString(req.ImageData); err == nil {
		score = contrast.Score(raw)
	}
	a.json(w, http.StatusOK, map[string]any{
		"contrast_score": score,
		"status":         contrast.Classify(score),
	})
}
