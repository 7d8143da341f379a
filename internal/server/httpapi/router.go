package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter assembles the full HTTP surface of the media server.
func (s *Server) NewRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(RequestLogger(s.logger))
	r.Use(Metrics)
	r.Use(CORS(s.config.CORSAllowedOrigins))

	r.Post("/generatePresignedUrl", s.handlePresign)
	r.Route("/uploadApi", func(r chi.Router) {
		r.Post("/upload", s.handleUpload)
	})
	r.Get("/readAllMedia", s.handleReadAllMedia)
	r.Post("/writeAllMedia", s.handleWriteAllMedia)

	r.Get("/ping", s.handlePing)
	r.Handle("/metrics", promhttp.Handler())

	return r
}
