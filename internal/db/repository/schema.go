package repository

import (
	"context"
	"database/sql"
	"fmt"

	"voicequery/internal/domain"
)

// SchemaRepo implements domain.SchemaRepository. The tables and columns
// descriptors are written by the external inference engine through its own
// persistence; this repo only reads them.
type SchemaRepo struct {
	readDB *sql.DB
}

// NewSchemaRepo creates a SchemaRepo on the read pool.
func NewSchemaRepo(readDB *sql.DB) *SchemaRepo {
	return &SchemaRepo{readDB: readDB}
}

// ListTables returns all registered table descriptors ordered by id.
func (r *SchemaRepo) ListTables(ctx context.Context) ([]domain.TableDescriptor, error) {
	rows, err := r.readDB.QueryContext(ctx,
		`SELECT id, name FROM tables ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list tables: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	var tables []domain.TableDescriptor
	for rows.Next() {
		var t domain.TableDescriptor
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, fmt.Errorf("scan table: %w", err)
		}
		tables = append(tables, t)
	}
	return tables, rows.Err()
}

// ListColumns returns the column descriptors of one table ordered by id.
func (r *SchemaRepo) ListColumns(ctx context.Context, tableID int64) ([]domain.ColumnDescriptor, error) {
	rows, err := r.readDB.QueryContext(ctx,
		`SELECT id, table_id, name, type FROM columns WHERE table_id = ? ORDER BY id`, tableID)
	if err != nil {
		return nil, fmt.Errorf("list columns: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	var cols []domain.ColumnDescriptor
	for rows.Next() {
		var c domain.ColumnDescriptor
		if err := rows.Scan(&c.ID, &c.TableID, &c.Name, &c.Type); err != nil {
			return nil, fmt.Errorf("scan column: %w", err)
		}
		cols = append(cols, c)
	}
	return cols, rows.Err()
}
