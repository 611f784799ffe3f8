// Package api provides the gateway's HTTP handlers.
package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"voicequery/internal/domain"
	"voicequery/internal/service"
)

// maxUploadMemory bounds the in-memory portion of multipart parsing; larger
// parts spill to temp files.
const maxUploadMemory = 10 << 20 // 10 MiB

// Handler serves the gateway API surface.
type Handler struct {
	ingestion     *service.IngestionService
	query         *service.QueryService
	transcription *service.TranscriptionService
	schema        domain.SchemaRepository
	log           *slog.Logger
}

// NewHandler creates a Handler over the given services.
func NewHandler(
	ingestion *service.IngestionService,
	query *service.QueryService,
	transcription *service.TranscriptionService,
	schema domain.SchemaRepository,
	log *slog.Logger,
) *Handler {
	return &Handler{
		ingestion:     ingestion,
		query:         query,
		transcription: transcription,
		schema:        schema,
		log:           log,
	}
}

// MountRoutes registers the gateway endpoints on the router.
func MountRoutes(r chi.Router, h *Handler) {
	r.Post("/upload", h.Upload)
	r.Post("/query", h.Query)
	r.Get("/results", h.Results)
	r.Post("/voice", h.Voice)
	r.Get("/tables", h.Tables)
	r.Get("/healthz", h.Health)
}

// Health reports liveness.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
