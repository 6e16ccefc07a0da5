package handlers

import (
	"encoding/json"
	"net/http"

	"assetgen/internal/domain"
	"assetgen/internal/infra"
	"assetgen/internal/pipeline"
)

// App bundles the collaborators shared by all HTTP handlers. Everything is
// injected; there is no package-level state.
type App struct {
	Jobs           domain.JobRepository
	Assets         domain.AssetRepository
	Pipeline       *pipeline.Pipeline
	Runner         *pipeline.Runner
	Gen            pipeline.Generator
	Logger         infra.Logger
	MaxUploadBytes int64
}

// NewApp constructs the handler container.
func NewApp(jobs domain.JobRepository, assets domain.AssetRepository, pipe *pipeline.Pipeline, runner *pipeline.Runner, gen pipeline.Generator, logger infra.Logger, maxUploadBytes int64) *App {
	return &App{
		Jobs:           jobs,
		Assets:         assets,
		Pipeline:       pipe,
		Runner:         runner,
		Gen:            gen,
		Logger:         logger,
		MaxUploadBytes: maxUploadBytes,
	}
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, code int, slug, detail string) {
	a.json(w, code, map[string]string{"error": slug, "detail": detail})
}
