package httpapi

import (
	stdhttp "net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"assetgen/internal/http/handlers"
	"assetgen/internal/infra"
	"assetgen/internal/middleware"
)

// NewRouter assembles the /api surface with the shared middleware stack.
func NewRouter(app *handlers.App, logger infra.Logger, corsOrigins []string) stdhttp.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RealIP, chimiddleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(corsOrigins))

	r.Get("/healthz", app.Health)

	r.Route("/api", func(r chi.Router) {
		r.Get("/", app.Root)
		r.Post("/upload", app.Upload)
		r.Post("/generate", app.Generate)
		r.Get("/jobs/{job_id}", app.GetJob)
		r.Get("/assets/{job_id}", app.ListAssets)
		r.Post("/analyze", app.Analyze)
		r.Post("/contrast-check", app.ContrastCheck)
	})

	return r
}
