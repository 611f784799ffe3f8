// Package service implements the orchestration services between the gateway
// HTTP surface and the external NLU engine.
package service

import (
	"context"
	"log/slog"

	"voicequery/internal/domain"
	"voicequery/internal/nlu"
)

// IngestionService forwards uploaded files to the external inference engine.
// It keeps no local state: schema descriptors are populated asynchronously by
// the engine through its own persistence.
type IngestionService struct {
	nlu *nlu.Client
	log *slog.Logger
}

// NewIngestionService creates a new IngestionService.
func NewIngestionService(client *nlu.Client, log *slog.Logger) *IngestionService {
	return &IngestionService{nlu: client, log: log}
}

// Ingest submits the files in one atomic call and relays the engine's
// response unmodified. At least one file is required; size and type
// validation is delegated downstream.
func (s *IngestionService) Ingest(ctx context.Context, files []domain.UploadFile) (*domain.IngestResult, error) {
	if len(files) == 0 {
		return nil, domain.ErrMissingInput("at least one file is required")
	}

	resp, err := s.nlu.Ingest(ctx, files)
	if err != nil {
		return nil, domain.ErrUpstream("ingestion", "%v", err)
	}

	s.log.Info("files ingested", "count", len(files), "tables", len(resp.Tables))
	return &domain.IngestResult{Tables: resp.Tables}, nil
}
