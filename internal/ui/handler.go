// Package ui serves the server-rendered browser front end.
package ui

import (
	"errors"
	"log/slog"
	"net/http"

	"voicequery/internal/domain"
	"voicequery/internal/service"

	gomponents "maragu.dev/gomponents"
)

type Handler struct {
	Ingestion *service.IngestionService
	Query     *service.QueryService
	Schema    domain.SchemaRepository
	Log       *slog.Logger
}

func NewHandler(
	ingestion *service.IngestionService,
	query *service.QueryService,
	schema domain.SchemaRepository,
	log *slog.Logger,
) *Handler {
	return &Handler{
		Ingestion: ingestion,
		Query:     query,
		Schema:    schema,
		Log:       log,
	}
}

func renderHTML(w http.ResponseWriter, status int, node gomponents.Node) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_ = node.Render(w)
}

func (h *Handler) renderServiceError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	title := "Unexpected Error"
	message := "An unexpected error occurred while loading this page."

	var missing *domain.MissingInputError
	var validation *domain.ValidationError
	var notFound *domain.NotFoundError
	var upstream *domain.UpstreamError
	switch {
	case errors.As(err, &missing):
		status = http.StatusBadRequest
		title = "Missing Input"
		message = missing.Error()
	case errors.As(err, &validation):
		status = http.StatusBadRequest
		title = "Invalid Request"
		message = validation.Error()
	case errors.As(err, &notFound):
		status = http.StatusNotFound
		title = "Not Found"
		message = notFound.Error()
	case errors.As(err, &upstream):
		status = http.StatusBadGateway
		title = "Upstream Error"
		message = upstream.Error()
	default:
		h.Log.Error("ui request failed", "error", err)
	}

	renderHTML(w, status, errorPage(title, message))
}
