package api

import (
	"io"
	"net/http"

	"voicequery/internal/domain"
)

// Upload accepts one or more files as multipart "files" parts, forwards them
// to the inference engine, and relays its response.
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		writeError(w, domain.ErrValidation("invalid multipart body: %v", err))
		return
	}
	defer func() {
		_ = r.MultipartForm.RemoveAll()
	}()

	var files []domain.UploadFile
	for _, hdr := range r.MultipartForm.File["files"] {
		f, err := hdr.Open()
		if err != nil {
			writeError(w, domain.ErrValidation("open uploaded file %q: %v", hdr.Filename, err))
			return
		}
		content, err := io.ReadAll(f)
		_ = f.Close()
		if err != nil {
			writeError(w, domain.ErrValidation("read uploaded file %q: %v", hdr.Filename, err))
			return
		}
		files = append(files, domain.UploadFile{
			Name:        hdr.Filename,
			ContentType: hdr.Header.Get("Content-Type"),
			Content:     content,
		})
	}

	result, err := h.ingestion.Ingest(r.Context(), files)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}
