// internal/repository/sql_test.go
package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskboard/taskboard/internal/config"
	"github.com/taskboard/taskboard/internal/database"
)

// setupSQLRepo opens an in-memory SQLite database and applies the schema.
func setupSQLRepo(t *testing.T) *SQLRepository {
	t.Helper()

	db, err := database.Open(config.DatabaseConfig{
		Driver:     "sqlite",
		SQLitePath: ":memory:",
	})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, EnsureSchema(context.Background(), db))
	return NewSQLRepository(db)
}

func TestSQLRepository_InsertAndGet(t *testing.T) {
	repo := setupSQLRepo(t)
	ctx := context.Background()
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	created, err := repo.Insert(ctx, "alice", "Write docs", "API section", now)
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	got, err := repo.GetByID(ctx, "alice", created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "Write docs", got.Title)
	assert.Equal(t, "API section", got.Description)
	assert.Equal(t, "alice", got.Owner)
	assert.False(t, got.Completed)
	assert.WithinDuration(t, now, got.CreatedAt, time.Second)
	assert.WithinDuration(t, now, got.UpdatedAt, time.Second)
}

func TestSQLRepository_OwnershipScoping(t *testing.T) {
	repo := setupSQLRepo(t)
	ctx := context.Background()
	now := time.Now().UTC()

	task, err := repo.Insert(ctx, "alice", "secret", "", now)
	require.NoError(t, err)

	_, err = repo.GetByID(ctx, "bob", task.ID)
	require.ErrorIs(t, err, ErrNotFound)

	_, err = repo.Update(ctx, "bob", task.ID, Patch{Completed: ptrBool(true)}, now)
	require.ErrorIs(t, err, ErrNotFound)

	require.ErrorIs(t, repo.Delete(ctx, "bob", task.ID), ErrNotFound)

	got, err := repo.GetByID(ctx, "alice", task.ID)
	require.NoError(t, err)
	assert.False(t, got.Completed)
}

func TestSQLRepository_ListNewestFirst(t *testing.T) {
	repo := setupSQLRepo(t)
	ctx := context.Background()
	base := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	for i, title := range []string{"A", "B", "C"} {
		_, err := repo.Insert(ctx, "alice", title, "", base.Add(time.Duration(i)*time.Minute))
		require.NoError(t, err)
	}
	_, err := repo.Insert(ctx, "bob", "other", "", base.Add(time.Hour))
	require.NoError(t, err)

	tasks, err := repo.ListByOwner(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, tasks, 3)
	assert.Equal(t, "C", tasks[0].Title)
	assert.Equal(t, "B", tasks[1].Title)
	assert.Equal(t, "A", tasks[2].Title)

	tasks, err = repo.ListByOwner(ctx, "nobody")
	require.NoError(t, err)
	assert.NotNil(t, tasks)
	assert.Empty(t, tasks)
}

func TestSQLRepository_UpdateAppliesOnlySuppliedFields(t *testing.T) {
	repo := setupSQLRepo(t)
	ctx := context.Background()
	created := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	updated := created.Add(time.Hour)

	task, err := repo.Insert(ctx, "alice", "title", "body", created)
	require.NoError(t, err)

	got, err := repo.Update(ctx, "alice", task.ID, Patch{
		Title:     ptrStr("new title"),
		Completed: ptrBool(true),
	}, updated)
	require.NoError(t, err)
	assert.Equal(t, "new title", got.Title)
	assert.Equal(t, "body", got.Description)
	assert.True(t, got.Completed)
	assert.WithinDuration(t, created, got.CreatedAt, time.Second)
	assert.WithinDuration(t, updated, got.UpdatedAt, time.Second)
}

func TestSQLRepository_UpdateUnknownID(t *testing.T) {
	repo := setupSQLRepo(t)

	_, err := repo.Update(context.Background(), "alice", "no-such-id", Patch{
		Completed: ptrBool(true),
	}, time.Now().UTC())
	require.ErrorIs(t, err, ErrNotFound)
}

func TestSQLRepository_Delete(t *testing.T) {
	repo := setupSQLRepo(t)
	ctx := context.Background()

	task, err := repo.Insert(ctx, "alice", "throwaway", "", time.Now().UTC())
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, "alice", task.ID))

	_, err = repo.GetByID(ctx, "alice", task.ID)
	require.ErrorIs(t, err, ErrNotFound)
	require.ErrorIs(t, repo.Delete(ctx, "alice", task.ID), ErrNotFound)
}

func TestSQLRepository_Ping(t *testing.T) {
	repo := setupSQLRepo(t)
	require.NoError(t, repo.Ping(context.Background()))
}
