// internal/repository/repository.go
package repository

import (
	"context"
	"errors"
	"time"

	"github.com/taskboard/taskboard/internal/models"
)

// ErrNotFound is returned when a task does not exist or is not visible to
// the requesting owner. The two cases are deliberately indistinguishable so
// that existence never leaks to non-owners.
var ErrNotFound = errors.New("task not found")

// Patch carries a partial update. Nil fields are left untouched.
type Patch struct {
	Title       *string
	Description *string
	Completed   *bool
}

// Empty reports whether the patch supplies no fields at all.
func (p Patch) Empty() bool {
	return p.Title == nil && p.Description == nil && p.Completed == nil
}

// TaskRepository is the narrow store port. Every read, update and delete is
// scoped by (id, owner); mutations on a single record are applied
// atomically. Timestamps are supplied by the caller so both implementations
// stamp time from the same clock.
type TaskRepository interface {
	Insert(ctx context.Context, owner, title, description string, now time.Time) (*models.Task, error)
	ListByOwner(ctx context.Context, owner string) ([]*models.Task, error)
	GetByID(ctx context.Context, owner, id string) (*models.Task, error)
	Update(ctx context.Context, owner, id string, patch Patch, now time.Time) (*models.Task, error)
	Delete(ctx context.Context, owner, id string) error
	Ping(ctx context.Context) error
}
