package domain

import (
	"encoding/json"
	"time"
)

// TableDescriptor is one table registered by the external inference engine.
// The core never creates, mutates, or deletes descriptors; it only reads them.
type TableDescriptor struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ColumnDescriptor is one column of a registered table. TableID references an
// existing TableDescriptor; the constraint lives in the storage layer.
type ColumnDescriptor struct {
	ID      int64  `json:"id"`
	TableID int64  `json:"table_id"`
	Name    string `json:"name"`
	Type    string `json:"type"`
}

// TableInfo is a TableDescriptor joined with its columns, as served by the
// tables endpoint.
type TableInfo struct {
	ID      int64              `json:"id"`
	Name    string             `json:"name"`
	Columns []ColumnDescriptor `json:"columns"`
}

// ResultRecord is one persisted snapshot of query output rows. Records are
// append-only and immutable; the most recent result is the record with the
// maximum ID.
type ResultRecord struct {
	ID        int64           `json:"id"`
	Rows      json.RawMessage `json:"rows"`
	CreatedAt time.Time       `json:"created_at"`
}

// UploadFile is one file submitted for ingestion.
type UploadFile struct {
	Name        string
	ContentType string
	Content     []byte
}

// IngestResult is the inference engine's response to an upload, relayed
// unmodified to the caller.
type IngestResult struct {
	Tables []IngestedTable `json:"tables"`
}

// IngestedTable describes one table the inference engine created from an
// uploaded file. Error is set when that file could not be processed.
type IngestedTable struct {
	Name    string   `json:"name"`
	Columns []string `json:"columns,omitempty"`
	Error   string   `json:"error,omitempty"`
}

// QueryResult is the outcome of one natural-language query. Warning is set
// when the translated rows could not be persisted to the result cache.
type QueryResult struct {
	SQL     string          `json:"sql"`
	Rows    json.RawMessage `json:"rows"`
	Warning string          `json:"warning,omitempty"`
}
