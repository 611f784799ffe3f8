package service

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"voicequery/internal/domain"
	"voicequery/internal/nlu"
)

// QueryService forwards a natural-language question to the external NL-to-SQL
// engine and persists the returned rows into the result cache. No transaction
// spans the translation call and the persistence write: if translation
// succeeds and persistence fails, the rows are still delivered to the caller
// but are not recoverable via LastResult later.
type QueryService struct {
	nlu     *nlu.Client
	results domain.ResultRepository
	log     *slog.Logger
}

// NewQueryService creates a new QueryService.
func NewQueryService(client *nlu.Client, results domain.ResultRepository, log *slog.Logger) *QueryService {
	return &QueryService{nlu: client, results: results, log: log}
}

// Run translates one question and appends exactly one result record on
// success. voiceHint is an optional pre-recognized transcript passed through
// unchanged; a voice-only request (empty question, non-empty hint) is valid.
// Downstream failure persists nothing. Repeated identical questions are not
// deduplicated; each call appends its own record.
func (s *QueryService) Run(ctx context.Context, question, voiceHint string) (*domain.QueryResult, error) {
	if strings.TrimSpace(question) == "" && strings.TrimSpace(voiceHint) == "" {
		return nil, domain.ErrMissingInput("query text is required")
	}

	resp, err := s.nlu.NL2SQL(ctx, question, voiceHint)
	if err != nil {
		return nil, domain.ErrUpstream("query", "%v", err)
	}
	// The engine can also report failure in-band with a 200 reply.
	if resp.Error != "" {
		return nil, domain.ErrUpstream("query", "%s", resp.Error)
	}

	rows := resp.Rows
	if len(rows) == 0 {
		rows = json.RawMessage("[]")
	}

	result := &domain.QueryResult{SQL: resp.SQL, Rows: rows}

	if _, err := s.results.Append(ctx, rows); err != nil {
		// Persistence failure after a successful translation is a warning,
		// not a query failure: the rows still go back to the caller.
		s.log.Warn("result cache write failed", "err", err)
		result.Warning = "result could not be cached: " + err.Error()
	}

	return result, nil
}

// LastResult returns the rows of the most recent result record. An empty
// cache yields an empty array, never an error.
func (s *QueryService) LastResult(ctx context.Context) (json.RawMessage, error) {
	rec, err := s.results.Latest(ctx)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return json.RawMessage("[]"), nil
	}
	return rec.Rows, nil
}
