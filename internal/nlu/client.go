// Package nlu implements the HTTP client for the external NLU service, which
// handles schema inference, NL-to-SQL translation, and speech transcription.
package nlu

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"voicequery/internal/domain"
)

// maxErrorBody caps how much of a downstream error body is carried into the
// returned error message.
const maxErrorBody = 2048

// Client is a synchronous client for the NLU service. Every call is
// single-shot: no retries, no partial success.
type Client struct {
	baseURL string
	http    *http.Client
	log     *slog.Logger
}

// New creates a Client for the service at baseURL (no trailing slash).
func New(baseURL string, timeout time.Duration, log *slog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

// IngestResponse is the inference engine's reply to an upload.
type IngestResponse struct {
	Tables []domain.IngestedTable `json:"tables"`
}

// QueryResponse is the NL-to-SQL engine's reply.
type QueryResponse struct {
	SQL   string          `json:"sql"`
	Rows  json.RawMessage `json:"rows"`
	Error string          `json:"error,omitempty"`
}

// TranscribeResponse is the transcription engine's reply.
type TranscribeResponse struct {
	Text string `json:"text"`
}

// Ingest submits the uploaded files as one multipart request to /ingest and
// returns the engine's response unmodified.
func (c *Client) Ingest(ctx context.Context, files []domain.UploadFile) (*IngestResponse, error) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for _, f := range files {
		// Each part carries the browser-reported content type; the engine
		// picks its parser (csv, excel, pdf) from it.
		contentType := f.ContentType
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		hdr := make(map[string][]string)
		hdr["Content-Disposition"] = []string{fmt.Sprintf(`form-data; name="files"; filename=%q`, f.Name)}
		hdr["Content-Type"] = []string{contentType}
		part, err := mw.CreatePart(hdr)
		if err != nil {
			return nil, fmt.Errorf("create form file %q: %w", f.Name, err)
		}
		if _, err := part.Write(f.Content); err != nil {
			return nil, fmt.Errorf("write form file %q: %w", f.Name, err)
		}
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("close multipart writer: %w", err)
	}

	var out IngestResponse
	if err := c.do(ctx, "/ingest", &body, mw.FormDataContentType(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// NL2SQL submits a natural-language question (and an optional pre-recognized
// voice transcript) to /nl2sql.
func (c *Client) NL2SQL(ctx context.Context, query, voice string) (*QueryResponse, error) {
	payload, err := json.Marshal(map[string]string{"query": query, "voice": voice})
	if err != nil {
		return nil, fmt.Errorf("encode nl2sql body: %w", err)
	}

	var out QueryResponse
	if err := c.do(ctx, "/nl2sql", bytes.NewReader(payload), "application/json", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Transcribe submits one audio clip as a multipart request to /transcribe.
func (c *Client) Transcribe(ctx context.Context, audio []byte, filename, mimeType string) (*TranscribeResponse, error) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	hdr := make(map[string][]string)
	hdr["Content-Disposition"] = []string{fmt.Sprintf(`form-data; name="audio"; filename=%q`, filename)}
	hdr["Content-Type"] = []string{mimeType}
	part, err := mw.CreatePart(hdr)
	if err != nil {
		return nil, fmt.Errorf("create audio part: %w", err)
	}
	if _, err := part.Write(audio); err != nil {
		return nil, fmt.Errorf("write audio part: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("close multipart writer: %w", err)
	}

	var out TranscribeResponse
	if err := c.do(ctx, "/transcribe", &body, mw.FormDataContentType(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// do issues one POST and decodes the JSON response into v. Transport errors
// and non-2xx statuses are returned as plain errors carrying the downstream
// message; the services wrap them into the error taxonomy.
func (c *Client) do(ctx context.Context, path string, body io.Reader, contentType string, v interface{}) error {
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request %s: %w", path, err)
	}
	req.Header.Set("Content-Type", contentType)

	res, err := c.http.Do(req)
	if err != nil {
		c.log.Error("nlu request failed", "path", path, "err", err)
		return fmt.Errorf("nlu %s: %w", path, err)
	}
	defer res.Body.Close() //nolint:errcheck

	c.log.Debug("nlu request", "path", path, "status", res.StatusCode,
		"duration_ms", time.Since(start).Milliseconds())

	if res.StatusCode < 200 || res.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(res.Body, maxErrorBody))
		c.log.Error("nlu request rejected", "path", path, "status", res.StatusCode,
			"body", string(msg))
		return fmt.Errorf("nlu %s: status %d: %s", path, res.StatusCode, strings.TrimSpace(string(msg)))
	}

	if err := json.NewDecoder(res.Body).Decode(v); err != nil {
		return fmt.Errorf("decode nlu %s response: %w", path, err)
	}
	return nil
}
