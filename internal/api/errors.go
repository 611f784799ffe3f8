package api

import (
	"errors"
	"net/http"

	"voicequery/internal/domain"
)

// httpStatusFromDomainError maps domain errors to HTTP status codes.
func httpStatusFromDomainError(err error) int {
	var missing *domain.MissingInputError
	var validation *domain.ValidationError
	var notFound *domain.NotFoundError
	var upstream *domain.UpstreamError

	switch {
	case errors.As(err, &missing), errors.As(err, &validation):
		return http.StatusBadRequest
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &upstream):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// writeError renders a domain error as a JSON error body.
func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, httpStatusFromDomainError(err), map[string]string{"error": err.Error()})
}
