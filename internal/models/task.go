package models

import "time"

// Task is the sole persisted entity. Owner is the verified user id of the
// creator and never changes after creation; the store assigns ID and both
// timestamps.
type Task struct {
	ID          string    `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	Completed   bool      `json:"completed" db:"completed"`
	Owner       string    `json:"user_id" db:"owner"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}
