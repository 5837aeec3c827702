package memory

import (
	"context"
	"sync"
)

// Backend is an in-memory key-value store. It backs the testing environment
// and any session that should not touch disk.
type Backend struct {
	mu     sync.RWMutex
	values map[string]string
}

// New creates an empty in-memory backend
func New() *Backend {
	return &Backend{
		values: make(map[string]string),
	}
}

// Get returns the value stored under key, or ("", false, nil) if absent.
func (b *Backend) Get(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}

	b.mu.RLock()
	defer b.mu.RUnlock()

	value, found := b.values[key]
	return value, found, nil
}

// Set stores value under key, replacing any previous value.
func (b *Backend) Set(ctx context.Context, key string, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.values[key] = value
	return nil
}

// Close is a no-op for the in-memory backend
func (b *Backend) Close() error {
	return nil
}
