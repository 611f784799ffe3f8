package ui

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"

	"voicequery/internal/domain"
)

const maxUploadMemory = 10 << 20 // 10 MiB

func (h *Handler) Home(w http.ResponseWriter, _ *http.Request) {
	renderHTML(w, http.StatusOK, overviewPage([]overviewCardData{
		{Title: "Upload", Description: "Upload CSV or Excel files and register their tables.", Href: "/ui/upload", LinkLabel: "Open upload ->"},
		{Title: "Ask", Description: "Ask questions in plain language, by keyboard or voice.", Href: "/ui/query", LinkLabel: "Open ask ->"},
		{Title: "Results", Description: "Re-open the rows from your most recent question.", Href: "/ui/results", LinkLabel: "Open results ->"},
	}))
}

func (h *Handler) UploadPage(w http.ResponseWriter, r *http.Request) {
	tables, err := h.listTables(r.Context())
	if err != nil {
		h.renderServiceError(w, err)
		return
	}
	renderHTML(w, http.StatusOK, uploadPage(tables, nil))
}

func (h *Handler) UploadSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		h.renderServiceError(w, domain.ErrValidation("invalid multipart body: %v", err))
		return
	}
	defer func() {
		_ = r.MultipartForm.RemoveAll()
	}()

	var files []domain.UploadFile
	for _, hdr := range r.MultipartForm.File["files"] {
		f, err := hdr.Open()
		if err != nil {
			h.renderServiceError(w, domain.ErrValidation("open uploaded file %q: %v", hdr.Filename, err))
			return
		}
		content, err := io.ReadAll(f)
		_ = f.Close()
		if err != nil {
			h.renderServiceError(w, domain.ErrValidation("read uploaded file %q: %v", hdr.Filename, err))
			return
		}
		files = append(files, domain.UploadFile{
			Name:        hdr.Filename,
			ContentType: hdr.Header.Get("Content-Type"),
			Content:     content,
		})
	}

	outcome, err := h.Ingestion.Ingest(r.Context(), files)
	if err != nil {
		h.renderServiceError(w, err)
		return
	}

	tables, err := h.listTables(r.Context())
	if err != nil {
		h.renderServiceError(w, err)
		return
	}
	renderHTML(w, http.StatusOK, uploadPage(tables, outcome))
}

func (h *Handler) QueryPage(w http.ResponseWriter, r *http.Request) {
	lastRows, err := h.Query.LastResult(r.Context())
	if err != nil {
		h.renderServiceError(w, err)
		return
	}
	renderHTML(w, http.StatusOK, queryPage("", nil, lastRows, ""))
}

func (h *Handler) QuerySubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderServiceError(w, domain.ErrValidation("invalid form body: %v", err))
		return
	}
	question := strings.TrimSpace(r.PostFormValue("query"))

	result, err := h.Query.Run(r.Context(), question, "")
	if err != nil {
		// Keep the question in the form so the user can adjust it.
		var missing *domain.MissingInputError
		var upstream *domain.UpstreamError
		if errors.As(err, &missing) || errors.As(err, &upstream) {
			renderHTML(w, http.StatusOK, queryPage(question, nil, nil, err.Error()))
			return
		}
		h.renderServiceError(w, err)
		return
	}

	renderHTML(w, http.StatusOK, queryPage(question, result, nil, ""))
}

func (h *Handler) ResultsPage(w http.ResponseWriter, r *http.Request) {
	rows, err := h.Query.LastResult(r.Context())
	if err != nil {
		h.renderServiceError(w, err)
		return
	}
	renderHTML(w, http.StatusOK, resultsPage(rows))
}

func (h *Handler) listTables(ctx context.Context) ([]domain.TableInfo, error) {
	tables, err := h.Schema.ListTables(ctx)
	if err != nil {
		return nil, err
	}
	infos := make([]domain.TableInfo, 0, len(tables))
	for _, t := range tables {
		cols, err := h.Schema.ListColumns(ctx, t.ID)
		if err != nil {
			return nil, err
		}
		infos = append(infos, domain.TableInfo{ID: t.ID, Name: t.Name, Columns: cols})
	}
	return infos, nil
}
