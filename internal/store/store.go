// Package store persists the todo list.
package store

import (
	"context"
	"errors"

	"todo/internal/todo"
)

// ErrCorrupted is returned when stored content cannot be decoded into a list of items.
var ErrCorrupted = errors.New("corrupted data")

// Store defines the interface for loading and saving the whole todo list.
// The list is always read and written as a unit; there are no partial updates.
type Store interface {
	// Load returns every stored item in order.
	// An absent store is created empty.
	Load(ctx context.Context) ([]todo.Item, error)

	// Save replaces the stored list with items.
	Save(ctx context.Context, items []todo.Item) error
}
