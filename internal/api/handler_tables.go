package api

import (
	"net/http"

	"voicequery/internal/domain"
)

// Tables lists the table descriptors registered by the inference engine,
// joined with their columns.
func (h *Handler) Tables(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	tables, err := h.schema.ListTables(ctx)
	if err != nil {
		writeError(w, err)
		return
	}

	infos := make([]domain.TableInfo, 0, len(tables))
	for _, t := range tables {
		cols, err := h.schema.ListColumns(ctx, t.ID)
		if err != nil {
			writeError(w, err)
			return
		}
		infos = append(infos, domain.TableInfo{ID: t.ID, Name: t.Name, Columns: cols})
	}

	writeJSON(w, http.StatusOK, map[string][]domain.TableInfo{"tables": infos})
}
