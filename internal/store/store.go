// Package store provides the check-in storage interface and SQLite implementation.
package store

import (
	"context"

	"github.com/nazma5979/moodlog/internal/model"
)

// Store defines check-in persistence.
type Store interface {
	// Save inserts a new check-in or, when the id already exists,
	// updates it in place and stamps ModifiedAt. An empty id gets a
	// fresh one. Returns the stored record.
	Save(ctx context.Context, c model.CheckIn) (model.CheckIn, error)

	// Get retrieves a check-in by id.
	Get(ctx context.Context, id string) (model.CheckIn, error)

	// GetAll returns every check-in, ascending by timestamp.
	GetAll(ctx context.Context) ([]model.CheckIn, error)

	// Delete removes a check-in by id.
	Delete(ctx context.Context, id string) error

	// Count returns the number of stored check-ins.
	Count(ctx context.Context) (int, error)

	// Oldest returns the earliest check-in by timestamp.
	Oldest(ctx context.Context) (model.CheckIn, error)

	// Close closes the store.
	Close() error
}
