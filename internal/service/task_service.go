// internal/service/task_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/taskboard/taskboard/internal/models"
	"github.com/taskboard/taskboard/internal/repository"
)

// TaskService enforces the ownership and field-validation rules on top of
// the task store. It caches nothing between requests; every call operates
// on a fresh read from the repository. The owner id is always an explicit
// argument, never ambient request state.
type TaskService struct {
	repo repository.TaskRepository
	now  func() time.Time
}

func NewTaskService(repo repository.TaskRepository) *TaskService {
	return &TaskService{
		repo: repo,
		now:  func() time.Time { return time.Now().UTC() },
	}
}

// List returns the owner's tasks ordered newest-created-first. An owner
// with no tasks gets an empty slice, not an error.
func (s *TaskService) List(ctx context.Context, owner string) ([]*models.Task, error) {
	tasks, err := s.repo.ListByOwner(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, nil
}

// Get returns the task only when it belongs to owner. A task owned by
// someone else looks exactly like a missing one.
func (s *TaskService) Get(ctx context.Context, owner, id string) (*models.Task, error) {
	task, err := s.repo.GetByID(ctx, owner, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get task: %w", err)
	}
	return task, nil
}

// Create validates the title, then persists a new task for owner with
// completed=false and created_at = updated_at = now.
func (s *TaskService) Create(ctx context.Context, owner, title, description string) (*models.Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}

	task, err := s.repo.Insert(ctx, owner, title, description, s.now())
	if err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}
	return task, nil
}

// Update applies the supplied patch fields to the owner's task and
// refreshes updated_at. An empty patch is rejected rather than silently
// accepted, and a title may not be patched to empty.
func (s *TaskService) Update(ctx context.Context, owner, id string, patch repository.Patch) (*models.Task, error) {
	if patch.Empty() {
		return nil, fmt.Errorf("%w: no fields to update", ErrInvalidInput)
	}
	if patch.Title != nil {
		title := strings.TrimSpace(*patch.Title)
		if title == "" {
			return nil, fmt.Errorf("%w: title cannot be empty", ErrInvalidInput)
		}
		patch.Title = &title
	}

	task, err := s.repo.Update(ctx, owner, id, patch, s.now())
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("update task: %w", err)
	}
	return task, nil
}

// Delete removes the owner's task permanently.
func (s *TaskService) Delete(ctx context.Context, owner, id string) error {
	if err := s.repo.Delete(ctx, owner, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("delete task: %w", err)
	}
	return nil
}

// Ping reports whether the task store is reachable.
func (s *TaskService) Ping(ctx context.Context) error {
	return s.repo.Ping(ctx)
}
