package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internaldb "voicequery/internal/db"
)

func setupResultRepo(t *testing.T) *ResultRepo {
	t.Helper()
	writeDB, readDB := internaldb.OpenTestSQLite(t)
	return NewResultRepo(writeDB, readDB)
}

func TestResultRepo_LatestEmpty(t *testing.T) {
	repo := setupResultRepo(t)

	rec, err := repo.Latest(context.Background())
	require.NoError(t, err)
	assert.Nil(t, rec)
}

func TestResultRepo_AppendAndLatest(t *testing.T) {
	repo := setupResultRepo(t)
	ctx := context.Background()

	rec, err := repo.Append(ctx, json.RawMessage(`[{"month":"Jan","total":100}]`))
	require.NoError(t, err)
	assert.Positive(t, rec.ID)
	assert.False(t, rec.CreatedAt.IsZero())

	latest, err := repo.Latest(ctx)
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, rec.ID, latest.ID)
	assert.JSONEq(t, `[{"month":"Jan","total":100}]`, string(latest.Rows))
}

func TestResultRepo_LatestIsMaxID(t *testing.T) {
	repo := setupResultRepo(t)
	ctx := context.Background()

	var lastID int64
	for i := 1; i <= 5; i++ {
		rec, err := repo.Append(ctx, json.RawMessage(fmt.Sprintf(`[{"n":%d}]`, i)))
		require.NoError(t, err)
		assert.Greater(t, rec.ID, lastID, "ids must be strictly increasing")
		lastID = rec.ID
	}

	latest, err := repo.Latest(ctx)
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, lastID, latest.ID)
	assert.JSONEq(t, `[{"n":5}]`, string(latest.Rows))
}

func TestResultRepo_AppendEmptyRows(t *testing.T) {
	repo := setupResultRepo(t)
	ctx := context.Background()

	rec, err := repo.Append(ctx, nil)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(rec.Rows))

	latest, err := repo.Latest(ctx)
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.JSONEq(t, `[]`, string(latest.Rows))
}
