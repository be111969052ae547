package testutil

import (
	"context"
	"sync"

	"todo/internal/store"
	"todo/internal/todo"
)

// FakeStore is an in-memory implementation of store.Store for testing.
type FakeStore struct {
	mu    sync.Mutex
	items []todo.Item
	saves int

	// Error injection for testing
	LoadErr error
	SaveErr error
}

var _ store.Store = (*FakeStore)(nil)

// NewFakeStore creates a FakeStore holding a copy of items.
func NewFakeStore(items ...todo.Item) *FakeStore {
	return &FakeStore{items: cloneItems(items)}
}

// Load implements store.Store.
func (f *FakeStore) Load(ctx context.Context) ([]todo.Item, error) {
	if f.LoadErr != nil {
		return nil, f.LoadErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return cloneItems(f.items), nil
}

// Save implements store.Store.
func (f *FakeStore) Save(ctx context.Context, items []todo.Item) error {
	if f.SaveErr != nil {
		return f.SaveErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items = cloneItems(items)
	f.saves++
	return nil
}

// Items returns a copy of the stored items.
func (f *FakeStore) Items() []todo.Item {
	f.mu.Lock()
	defer f.mu.Unlock()
	return cloneItems(f.items)
}

// Saves returns how many times Save succeeded.
func (f *FakeStore) Saves() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.saves
}

// cloneItems deep-copies items, including due strings.
func cloneItems(items []todo.Item) []todo.Item {
	out := make([]todo.Item, len(items))
	for i, it := range items {
		if it.Due != nil {
			due := *it.Due
			it.Due = &due
		}
		out[i] = it
	}
	return out
}
