package domain

import (
	"context"
	"encoding/json"
)

// ResultRepository is the append-only result cache. Implemented by
// repository.ResultRepo.
type ResultRepository interface {
	Append(ctx context.Context, rows json.RawMessage) (*ResultRecord, error)
	Latest(ctx context.Context) (*ResultRecord, error)
}

// SchemaRepository provides read-only access to the table and column
// descriptors written by the external inference engine.
type SchemaRepository interface {
	ListTables(ctx context.Context) ([]TableDescriptor, error)
	ListColumns(ctx context.Context, tableID int64) ([]ColumnDescriptor, error)
}

// Transcriber converts a captured audio clip to text. Implemented by
// service.TranscriptionService; the voice fallback provider depends on this
// interface rather than the concrete service.
type Transcriber interface {
	Transcribe(ctx context.Context, audio []byte, filename, mimeType string) (string, error)
}
