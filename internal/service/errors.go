// internal/service/errors.go
package service

import "errors"

var (
	// ErrInvalidInput means caller-supplied data violates a field
	// constraint. Maps to HTTP 400; never retried.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound means the task is absent or belongs to another owner.
	// The two cases are reported identically. Maps to HTTP 404.
	ErrNotFound = errors.New("task not found")
)
