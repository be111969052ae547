// Package service defines the backend-agnostic interface for remote task lists.
package service

import (
	"context"
	"errors"
)

var (
	// ErrListNotFound is returned when no remote list matches a name.
	ErrListNotFound = errors.New("list not found")

	// ErrAmbiguousList is returned when several remote lists match a name.
	ErrAmbiguousList = errors.New("ambiguous list name")

	// ErrUnauthorized is returned when credentials are missing, expired or revoked.
	ErrUnauthorized = errors.New("not authorized")
)

// Service defines the interface for remote task list operations used by
// push and pull. Commands never import the Google SDK directly.
type Service interface {
	// DefaultList returns the user's default task list.
	DefaultList(ctx context.Context) (TaskList, error)

	// ListLists returns all task lists in API order.
	ListLists(ctx context.Context) ([]TaskList, error)

	// ResolveList finds a list by name (case-insensitive, trimmed).
	// Returns ErrListNotFound or ErrAmbiguousList.
	ResolveList(ctx context.Context, name string) (TaskList, error)

	// ListTasks returns every task of a list, open and completed, in API order.
	ListTasks(ctx context.Context, listID string) ([]Task, error)

	// CreateTask creates a new task in the specified list.
	// Only Title, Notes and Status of task are used.
	CreateTask(ctx context.Context, listID string, task Task) error

	// CompleteTask marks a task as completed.
	CompleteTask(ctx context.Context, listID, taskID string) error
}
