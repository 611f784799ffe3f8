package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"voicequery/internal/domain"
)

// APIError is a non-2xx response from the gateway.
type APIError struct {
	HTTPStatus int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("gateway returned status %d", e.HTTPStatus)
	}
	return e.Message
}

// Client talks to the gateway REST API.
type Client struct {
	BaseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 2 * time.Minute},
	}
}

// Upload sends the named local files for ingestion.
func (c *Client) Upload(ctx context.Context, paths []string) (*domain.IngestResult, error) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for _, p := range paths {
		content, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", p, err)
		}
		part, err := mw.CreateFormFile("files", filepath.Base(p))
		if err != nil {
			return nil, err
		}
		if _, err := part.Write(content); err != nil {
			return nil, err
		}
	}
	if err := mw.Close(); err != nil {
		return nil, err
	}

	var out domain.IngestResult
	if err := c.do(ctx, "/upload", &body, mw.FormDataContentType(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Ask runs a natural-language question.
func (c *Client) Ask(ctx context.Context, question, voiceHint string) (*domain.QueryResult, error) {
	payload, err := json.Marshal(map[string]string{"query": question, "voice": voiceHint})
	if err != nil {
		return nil, err
	}

	var out domain.QueryResult
	if err := c.do(ctx, "/query", bytes.NewReader(payload), "application/json", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Transcribe sends an audio clip through the gateway and returns the
// recognized text. Satisfies domain.Transcriber so the voice controller's
// fallback provider can use the gateway as its transcription engine.
func (c *Client) Transcribe(ctx context.Context, audio []byte, filename, mimeType string) (string, error) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	hdr := make(map[string][]string)
	hdr["Content-Disposition"] = []string{fmt.Sprintf(`form-data; name="audio"; filename=%q`, filename)}
	hdr["Content-Type"] = []string{mimeType}
	part, err := mw.CreatePart(hdr)
	if err != nil {
		return "", err
	}
	if _, err := part.Write(audio); err != nil {
		return "", err
	}
	if err := mw.Close(); err != nil {
		return "", err
	}

	var out struct {
		Text string `json:"text"`
	}
	if err := c.do(ctx, "/voice", &body, mw.FormDataContentType(), &out); err != nil {
		return "", err
	}
	return out.Text, nil
}

var _ domain.Transcriber = (*Client)(nil)

// Results fetches the most recently cached result rows.
func (c *Client) Results(ctx context.Context) (json.RawMessage, error) {
	var out struct {
		Rows json.RawMessage `json:"rows"`
	}
	if err := c.get(ctx, "/results", &out); err != nil {
		return nil, err
	}
	return out.Rows, nil
}

// Tables lists the registered schema.
func (c *Client) Tables(ctx context.Context) ([]domain.TableInfo, error) {
	var out struct {
		Tables []domain.TableInfo `json:"tables"`
	}
	if err := c.get(ctx, "/tables", &out); err != nil {
		return nil, err
	}
	return out.Tables, nil
}

func (c *Client) do(ctx context.Context, path string, body io.Reader, contentType string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", contentType)
	return c.send(req, out)
}

func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path, nil)
	if err != nil {
		return err
	}
	return c.send(req, out)
}

func (c *Client) send(req *http.Request, out interface{}) error {
	res, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close() //nolint:errcheck

	if res.StatusCode > 299 {
		apiErr := &APIError{HTTPStatus: res.StatusCode}
		var payload struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(res.Body).Decode(&payload); err == nil {
			apiErr.Message = payload.Error
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(res.Body).Decode(out)
}
