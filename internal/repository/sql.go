// internal/repository/sql.go
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/taskboard/taskboard/internal/models"
)

const taskColumns = "id, title, description, completed, owner, created_at, updated_at"

// SQLRepository persists tasks in a single relational table through sqlx.
// Queries are written with ? bindvars and rebound per driver, so the same
// code runs against Postgres and SQLite.
type SQLRepository struct {
	db *sqlx.DB
}

var _ TaskRepository = (*SQLRepository)(nil)

func NewSQLRepository(db *sqlx.DB) *SQLRepository {
	return &SQLRepository{
		db: db,
	}
}

func (r *SQLRepository) Insert(ctx context.Context, owner, title, description string, now time.Time) (*models.Task, error) {
	t := &models.Task{
		ID:          uuid.New().String(),
		Title:       title,
		Description: description,
		Owner:       owner,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	query := r.db.Rebind(
		"INSERT INTO tasks (" + taskColumns + ") VALUES (?, ?, ?, ?, ?, ?, ?)",
	)
	if _, err := r.db.ExecContext(ctx, query,
		t.ID, t.Title, t.Description, t.Completed, t.Owner, t.CreatedAt, t.UpdatedAt,
	); err != nil {
		return nil, fmt.Errorf("insert task: %w", err)
	}

	return t, nil
}

func (r *SQLRepository) ListByOwner(ctx context.Context, owner string) ([]*models.Task, error) {
	query := r.db.Rebind(
		"SELECT " + taskColumns + " FROM tasks WHERE owner = ? ORDER BY created_at DESC",
	)

	tasks := make([]*models.Task, 0)
	if err := r.db.SelectContext(ctx, &tasks, query, owner); err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	return tasks, nil
}

func (r *SQLRepository) GetByID(ctx context.Context, owner, id string) (*models.Task, error) {
	query := r.db.Rebind(
		"SELECT " + taskColumns + " FROM tasks WHERE id = ? AND owner = ?",
	)

	var t models.Task
	if err := r.db.GetContext(ctx, &t, query, id, owner); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get task: %w", err)
	}

	return &t, nil
}

func (r *SQLRepository) Update(ctx context.Context, owner, id string, patch Patch, now time.Time) (*models.Task, error) {
	set := make([]string, 0, 4)
	args := make([]interface{}, 0, 6)

	if patch.Title != nil {
		set = append(set, "title = ?")
		args = append(args, *patch.Title)
	}
	if patch.Description != nil {
		set = append(set, "description = ?")
		args = append(args, *patch.Description)
	}
	if patch.Completed != nil {
		set = append(set, "completed = ?")
		args = append(args, *patch.Completed)
	}
	set = append(set, "updated_at = ?")
	args = append(args, now, id, owner)

	// One statement per mutation: the row is updated atomically and only
	// the supplied columns are written.
	query := r.db.Rebind(
		"UPDATE tasks SET " + strings.Join(set, ", ") + " WHERE id = ? AND owner = ?",
	)
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("update task: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("update task: %w", err)
	}
	if affected == 0 {
		return nil, ErrNotFound
	}

	return r.GetByID(ctx, owner, id)
}

func (r *SQLRepository) Delete(ctx context.Context, owner, id string) error {
	query := r.db.Rebind("DELETE FROM tasks WHERE id = ? AND owner = ?")
	res, err := r.db.ExecContext(ctx, query, id, owner)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *SQLRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}
