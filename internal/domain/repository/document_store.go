package repository

import (
	"context"
)

// DocumentStore is the hierarchical document tree addressed by slash paths.
// Individual operations are atomic; multi-step sequences built on top of
// them are not. Absent paths read as empty and delete as a no-op.
type DocumentStore interface {
	// Get reads the subtree at path into the given value. An absent path
	// leaves the value untouched.
	Get(ctx context.Context, path string, into interface{}) error

	// Set replaces the subtree at path.
	Set(ctx context.Context, path string, value interface{}) error

	// Update merges the given fields into the node at path.
	Update(ctx context.Context, path string, fields map[string]interface{}) error

	// Delete removes the subtree at path.
	Delete(ctx context.Context, path string) error

	// Push appends a child with a store-generated key under path and
	// returns that key.
	Push(ctx context.Context, path string, value interface{}) (string, error)
}
