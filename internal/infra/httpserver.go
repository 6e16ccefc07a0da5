package infra

import (
	"context"
	"net/http"
	"time"
)

// HTTPServer owns the process's single listener. Timeouts come from Config so
// a slow client cannot hold an upload connection open indefinitely.
type HTTPServer struct {
	srv *http.Server
}

// NewHTTPServer binds the handler to the configured port with the configured
// timeouts.
func NewHTTPServer(cfg *Config, handler http.Handler) *HTTPServer {
	return &HTTPServer{srv: &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadTimeout:       cfg.HTTPReadTimeout,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      cfg.HTTPWriteTimeout,
		IdleTimeout:       cfg.HTTPIdleTimeout,
	}}
}

// Addr returns the listen address, including the leading colon.
func (s *HTTPServer) Addr() string {
	return s.srv.Addr
}

// Start serves until Shutdown is called or the listener fails.
func (s *HTTPServer) Start() error {
	return s.srv.ListenAndServe()
}

// Shutdown stops accepting connections and drains in-flight requests until
// ctx expires.
func (s *HTTPServer) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
