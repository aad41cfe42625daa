// internal/repository/memory.go
package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/taskboard/taskboard/internal/models"
)

// MemoryRepository keeps tasks in process memory. Data does not survive a
// restart; mutations on a record are serialized by the lock.
type MemoryRepository struct {
	mu    sync.RWMutex
	tasks map[string]models.Task
}

var _ TaskRepository = (*MemoryRepository)(nil)

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		tasks: make(map[string]models.Task),
	}
}

func (r *MemoryRepository) Insert(_ context.Context, owner, title, description string, now time.Time) (*models.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t := models.Task{
		ID:          uuid.New().String(),
		Title:       title,
		Description: description,
		Owner:       owner,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	r.tasks[t.ID] = t

	out := t
	return &out, nil
}

func (r *MemoryRepository) ListByOwner(_ context.Context, owner string) ([]*models.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*models.Task, 0)
	for _, t := range r.tasks {
		if t.Owner == owner {
			t := t
			out = append(out, &t)
		}
	}

	// Newest first. SliceStable keeps tasks with equal timestamps in a
	// fixed relative order for the duration of the call.
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	return out, nil
}

func (r *MemoryRepository) GetByID(_ context.Context, owner, id string) (*models.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.tasks[id]
	if !ok || t.Owner != owner {
		return nil, ErrNotFound
	}

	out := t
	return &out, nil
}

func (r *MemoryRepository) Update(_ context.Context, owner, id string, patch Patch, now time.Time) (*models.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.tasks[id]
	if !ok || t.Owner != owner {
		return nil, ErrNotFound
	}

	if patch.Title != nil {
		t.Title = *patch.Title
	}
	if patch.Description != nil {
		t.Description = *patch.Description
	}
	if patch.Completed != nil {
		t.Completed = *patch.Completed
	}
	t.UpdatedAt = now
	r.tasks[id] = t

	out := t
	return &out, nil
}

func (r *MemoryRepository) Delete(_ context.Context, owner, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.tasks[id]
	if !ok || t.Owner != owner {
		return ErrNotFound
	}

	delete(r.tasks, id)
	return nil
}

func (r *MemoryRepository) Ping(_ context.Context) error {
	return nil
}
