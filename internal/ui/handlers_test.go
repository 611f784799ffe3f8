package ui

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internaldb "voicequery/internal/db"
	"voicequery/internal/db/repository"
	"voicequery/internal/nlu"
	"voicequery/internal/service"
)

func newTestUI(t *testing.T, nluHandler http.HandlerFunc) chi.Router {
	t.Helper()

	nluSrv := httptest.NewServer(nluHandler)
	t.Cleanup(nluSrv.Close)

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	client := nlu.New(nluSrv.URL, time.Second, log)

	writeDB, readDB := internaldb.OpenTestSQLite(t)
	results := repository.NewResultRepo(writeDB, readDB)
	schema := repository.NewSchemaRepo(readDB)

	h := NewHandler(
		service.NewIngestionService(client, log),
		service.NewQueryService(client, results, log),
		schema,
		log,
	)

	r := chi.NewRouter()
	r.Route("/ui", func(r chi.Router) {
		MountRoutes(r, h)
	})
	return r
}

func TestHomeRenders(t *testing.T) {
	r := newTestUI(t, func(http.ResponseWriter, *http.Request) {})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ui", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Voice Query")
	assert.Contains(t, rec.Body.String(), "/ui/upload")
}

func TestUploadPageEmptySchema(t *testing.T) {
	r := newTestUI(t, func(http.ResponseWriter, *http.Request) {})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ui/upload", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Nothing uploaded yet.")
}

func TestQueryPageEmptyCache(t *testing.T) {
	r := newTestUI(t, func(http.ResponseWriter, *http.Request) {})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ui/query", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Ask a question to see results.")
	assert.Contains(t, rec.Body.String(), "voice.js")
}

func TestQuerySubmitRendersResults(t *testing.T) {
	r := newTestUI(t, func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"sql":  "SELECT month FROM sales",
			"rows": []map[string]interface{}{{"month": "Jan"}},
		})
	})

	form := url.Values{"query": {"which months"}}
	req := httptest.NewRequest(http.MethodPost, "/ui/query", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "SELECT month FROM sales")
	assert.Contains(t, rec.Body.String(), "Jan")
}

func TestQuerySubmitDownstreamErrorStaysOnPage(t *testing.T) {
	r := newTestUI(t, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "engine offline", http.StatusInternalServerError)
	})

	form := url.Values{"query": {"anything"}}
	req := httptest.NewRequest(http.MethodPost, "/ui/query", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Query Error")
	assert.Contains(t, rec.Body.String(), "engine offline")
	// The question stays in the form.
	assert.Contains(t, rec.Body.String(), "anything")
}

func TestResultsPage_ShowsCachedRowsAfterQuery(t *testing.T) {
	r := newTestUI(t, func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"sql":  "SELECT 1",
			"rows": []map[string]interface{}{{"n": 42}},
		})
	})

	form := url.Values{"query": {"one"}}
	req := httptest.NewRequest(http.MethodPost, "/ui/query", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ui/results", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "42")
}

func TestResultsPage_Empty(t *testing.T) {
	r := newTestUI(t, func(http.ResponseWriter, *http.Request) {})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ui/results", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "No results cached yet.")
}

func TestStaticStylesheetServed(t *testing.T) {
	r := newTestUI(t, func(http.ResponseWriter, *http.Request) {})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ui/static/css/app.css", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), ".layout")
}
