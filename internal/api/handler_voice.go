package api

import (
	"errors"
	"io"
	"net/http"

	"voicequery/internal/domain"
)

// Voice accepts one audio clip as a multipart "audio" part and returns the
// transcription engine's text.
func (h *Handler) Voice(w http.ResponseWriter, r *http.Request) {
	file, hdr, err := r.FormFile("audio")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			writeError(w, domain.ErrMissingInput("audio file missing"))
			return
		}
		writeError(w, domain.ErrValidation("invalid multipart body: %v", err))
		return
	}
	defer file.Close() //nolint:errcheck

	audio, err := io.ReadAll(file)
	if err != nil {
		writeError(w, domain.ErrValidation("read audio: %v", err))
		return
	}

	text, err := h.transcription.Transcribe(r.Context(), audio, hdr.Filename, hdr.Header.Get("Content-Type"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"text": text})
}
