package storage

import "context"

// Backend defines the key-value persistence contract the task store writes
// through. Keys and values are both strings; the store keeps the whole task
// list under a single key.
//
// Get returns the stored value and true, or ("", false, nil) when the key is
// absent. Backend failures are returned as errors; callers decide whether to
// absorb them.
type Backend interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key string, value string) error
	Close() error
}
