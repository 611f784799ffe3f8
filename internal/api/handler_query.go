package api

import (
	"encoding/json"
	"net/http"

	"voicequery/internal/domain"
)

type queryRequest struct {
	Query string `json:"query"`
	Voice string `json:"voice,omitempty"`
}

// Query translates a natural-language question through the NL-to-SQL engine
// and, on success, appends the rows to the result cache.
func (h *Handler) Query(w http.ResponseWriter, r *http.Request) {
	var req queryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, domain.ErrValidation("invalid JSON body: %v", err))
		return
	}

	result, err := h.query.Run(r.Context(), req.Query, req.Voice)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// Results returns the rows of the most recent result record, or an empty
// array when nothing has been cached yet. Used by disconnected clients to
// re-fetch what they last saw.
func (h *Handler) Results(w http.ResponseWriter, r *http.Request) {
	rows, err := h.query.LastResult(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]json.RawMessage{"rows": rows})
}
